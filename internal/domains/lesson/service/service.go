package service

import (
	"context"
	"fmt"
	"lessons/config"
	"lessons/infras/otel"
	"lessons/internal/domains/lesson/model"
	"lessons/internal/domains/lesson/model/dto"
	"lessons/internal/domains/lesson/repository"
	"lessons/shared"
	"lessons/shared/cache"
	"lessons/shared/constant"
	gDto "lessons/shared/dto"
	"lessons/shared/failure"
	"lessons/shared/timezone"

	"github.com/rs/zerolog/log"
)

const (
	cacheGetAllLessonBooking = "lesson_booking:gets"
	cacheCountLessonBooking  = "lesson_booking:count"
)

type LessonBooking interface {
	Create(ctx context.Context, req dto.CreateLessonBookingRequest) (dto.LessonBookingResponse, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetLessonBookingsResponse, error)
	Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (int, error)
}

type serviceImpl struct {
	repo  repository.LessonBooking
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
}

func New(repo repository.LessonBooking, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) LessonBooking {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
	}
}

// UserFilter restricts a listing to one user's lesson bookings, optionally by status.
func UserFilter(userID, status string) gDto.FilterGroup {
	filter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters:  []any{},
	}

	if userID != "" {
		filter.Filters = append(filter.Filters, gDto.Filter{
			Field:    model.FieldUserID,
			Operator: gDto.FilterOperatorEq,
			Value:    userID,
			Table:    model.TableName,
		})
	}

	if status != "" {
		filter.Filters = append(filter.Filters, gDto.Filter{
			Field:    model.FieldStatus,
			Operator: gDto.FilterOperatorEq,
			Value:    status,
			Table:    model.TableName,
		})
	}

	return filter
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateLessonBookingRequest) (res dto.LessonBookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	if user == constant.Empty {
		return res, failure.Unauthorized("missing user identity") // nolint:wrapcheck
	}

	booking, err := req.ToModel(user, timezone.Now())
	if err != nil {
		log.Error().Err(err).Msg("failed to parse lesson booking request")

		return res, failure.BadRequestFromString(fmt.Sprintf("invalid lesson_date %q", req.LessonDate)) // nolint:wrapcheck
	}

	if err = s.repo.Insert(ctx, booking); err != nil {
		log.Error().Err(err).Msg("failed to create lesson booking")

		return res, fmt.Errorf("failed to create lesson booking: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllLessonBooking)
		shared.InvalidateCaches(c, s.cache, cacheCountLessonBooking)
	}()

	res.FromModel(booking)

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetLessonBookingsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	req.RestrictSort(model.FieldLessonDate, model.FieldLessonDate, constant.FieldCreatedAt, model.FieldStatus)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllLessonBooking, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for lesson bookings")

		return res, nil
	}

	total, err := s.Count(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count lesson bookings")

		return res, fmt.Errorf("failed to count lesson bookings: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get lesson bookings")

		return res, fmt.Errorf("failed to get lesson bookings: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save lesson bookings to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Count")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountLessonBooking, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for lesson booking count")

		return res, nil
	}

	res, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count lesson bookings")

		return res, fmt.Errorf("failed to count lesson bookings: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save lesson booking count to cache")
		}
	}()

	return res, nil
}
