package service

import (
	"context"
	"errors"
	"fmt"
	"lessons/config"
	"lessons/infras/broker"
	"lessons/infras/otel"
	"lessons/internal/domains/booking/model"
	"lessons/internal/domains/booking/model/dto"
	"lessons/internal/domains/booking/repository"
	"lessons/shared"
	"lessons/shared/cache"
	"lessons/shared/constant"
	"lessons/shared/failure"
	"lessons/shared/timezone"
	"lessons/shared/validator"
	"sync/atomic"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

const (
	cacheListBooking  = "booking:list"
	cacheAvailability = "booking:availability"

	msgSlotTaken        = "slot already booked"
	msgAlreadyConfirmed = "booking already confirmed"
	msgDeleteConfirmed  = "cannot delete confirmed booking"
	msgNotFound         = "booking not found"
)

type Booking interface {
	List(ctx context.Context) ([]model.Booking, error)
	Availability(ctx context.Context, day string) ([]model.Slot, error)
	Get(ctx context.Context, id string) (model.Booking, error)
	Create(ctx context.Context, req dto.CreateBookingRequest) (model.Booking, error)
	Confirm(ctx context.Context, req dto.ConfirmPaymentRequest) (model.Booking, error)
	Delete(ctx context.Context, req dto.DeleteBookingRequest) error
}

type serviceImpl struct {
	repo      repository.Booking
	cfg       *config.Config
	cache     cache.RedisCache
	publisher broker.Publisher
	otel      otel.Otel

	// generation counts invalidations. A read only caches its result when no write
	// invalidated in between.
	generation atomic.Uint64
}

func New(repo repository.Booking, cfg *config.Config, cache cache.RedisCache, publisher broker.Publisher, otel otel.Otel) Booking {
	return &serviceImpl{
		repo:      repo,
		cfg:       cfg,
		cache:     cache,
		publisher: publisher,
		otel:      otel,
	}
}

func (s *serviceImpl) List(ctx context.Context) (res []model.Booking, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".List")
	defer scope.End()
	defer scope.TraceIfError(err)

	err = s.cache.Get(ctx, cacheListBooking, &res)
	if err == nil {
		log.Debug().Str("cacheKey", cacheListBooking).Msg("cache hit for bookings")

		return res, nil
	}

	generation := s.generation.Load()

	res, err = withRetry(ctx, "List", func() ([]model.Booking, error) {
		return s.repo.List(ctx)
	})
	if err != nil {
		return nil, translate(err)
	}

	if res == nil {
		res = []model.Booking{}
	}

	s.saveCache(ctx, cacheListBooking, res, generation)

	return res, nil
}

func (s *serviceImpl) Availability(ctx context.Context, day string) (res []model.Slot, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Availability")
	defer scope.End()
	defer scope.TraceIfError(err)

	if !model.ValidDay(day) {
		return nil, failure.BadRequestFromString(fmt.Sprintf("invalid day %q", day)) // nolint:wrapcheck
	}

	cacheKey := shared.BuildCacheKey(cacheAvailability, day)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Debug().Str("cacheKey", cacheKey).Msg("cache hit for availability")

		return res, nil
	}

	generation := s.generation.Load()

	confirmed, err := withRetry(ctx, "Availability", func() ([]model.Booking, error) {
		return s.repo.ListConfirmed(ctx, day)
	})
	if err != nil {
		return nil, translate(err)
	}

	res = model.Schedule(day, confirmed)

	s.saveCache(ctx, cacheKey, res, generation)

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res model.Booking, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	res, err = s.get(ctx, id)
	if err != nil {
		return res, translate(err)
	}

	return res, nil
}

func (s *serviceImpl) get(ctx context.Context, id string) (model.Booking, error) {
	// Ids are uuids. Anything else cannot be in the ledger.
	if uuid.Validate(id) != nil {
		return model.Booking{}, model.ErrNotFound
	}

	return withRetry(ctx, "Get", func() (model.Booking, error) {
		return s.repo.Get(ctx, id)
	})
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateBookingRequest) (res model.Booking, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = validator.ValidateStruct(&req); err != nil {
		return res, err // nolint:wrapcheck
	}

	booking := req.ToModel(timezone.Now())

	_, err = withRetry(ctx, "Create", func() (struct{}, error) {
		return struct{}{}, s.repo.Insert(ctx, booking)
	})
	if err != nil {
		return res, translate(err)
	}

	scope.SetAttributes(map[string]any{"booking.id": booking.ID, "booking.day": booking.Day, "booking.time": booking.Time})

	s.invalidate(ctx, booking.Day)
	s.publish(ctx, dto.EventBookingCreated, booking)

	return booking, nil
}

// Confirm is idempotent for the reference the booking was confirmed with. A confirmation that
// loses a race re-reads once and decides again.
func (s *serviceImpl) Confirm(ctx context.Context, req dto.ConfirmPaymentRequest) (res model.Booking, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Confirm")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = validator.ValidateStruct(&req); err != nil {
		return res, err // nolint:wrapcheck
	}

	current, err := s.get(ctx, req.BookingID)
	if err != nil {
		return res, translate(err)
	}

	if current.Confirmed() {
		return alreadyConfirmed(current, req.PaymentReference)
	}

	res, err = withRetry(ctx, "Confirm", func() (model.Booking, error) {
		return s.repo.Confirm(ctx, req.BookingID, req.PaymentReference)
	})

	if errors.Is(err, model.ErrStatusChanged) {
		current, err = s.get(ctx, req.BookingID)
		if err != nil {
			return res, translate(err)
		}

		return alreadyConfirmed(current, req.PaymentReference)
	}

	if err != nil {
		return res, translate(err)
	}

	s.invalidate(ctx, res.Day)
	s.publish(ctx, dto.EventBookingConfirmed, res)

	return res, nil
}

func alreadyConfirmed(booking model.Booking, reference string) (model.Booking, error) {
	if booking.ConfirmedWith(reference) {
		return booking, nil
	}

	return model.Booking{}, failure.BadRequestFromString(msgAlreadyConfirmed) // nolint:wrapcheck
}

func (s *serviceImpl) Delete(ctx context.Context, req dto.DeleteBookingRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = validator.ValidateStruct(&req); err != nil {
		return err // nolint:wrapcheck
	}

	booking, err := s.get(ctx, req.BookingID)
	if err != nil {
		return translate(err)
	}

	_, err = withRetry(ctx, "Delete", func() (struct{}, error) {
		return struct{}{}, s.repo.DeletePending(ctx, req.BookingID)
	})
	if err != nil {
		return translate(err)
	}

	s.invalidate(ctx, booking.Day)
	s.publish(ctx, dto.EventBookingDeleted, booking)

	return nil
}

// withRetry gives the store one more chance after it reported itself unavailable.
func withRetry[T any](ctx context.Context, operation string, fn func() (T, error)) (T, error) {
	res, err := fn()
	if errors.Is(err, model.ErrStoreUnavailable) && ctx.Err() == nil {
		log.Warn().Err(err).Str("operation", operation).Msg("booking store unavailable, retrying once")

		res, err = fn()
	}

	return res, err
}

func translate(err error) error {
	switch {
	case errors.Is(err, model.ErrNotFound):
		return failure.NotFound(msgNotFound) // nolint:wrapcheck
	case errors.Is(err, model.ErrSlotTaken):
		return failure.BadRequestFromString(msgSlotTaken) // nolint:wrapcheck
	case errors.Is(err, model.ErrConfirmed):
		return failure.BadRequestFromString(msgDeleteConfirmed) // nolint:wrapcheck
	case errors.Is(err, model.ErrStatusChanged):
		return failure.BadRequestFromString(msgAlreadyConfirmed) // nolint:wrapcheck
	case errors.Is(err, model.ErrInvalidSlot):
		return failure.BadRequest(err) // nolint:wrapcheck
	default:
		log.Error().Err(err).Msg("booking store unavailable")

		return failure.StoreUnavailable() // nolint:wrapcheck
	}
}

// invalidate drops cached reads before the write is acknowledged.
func (s *serviceImpl) invalidate(ctx context.Context, day string) {
	s.generation.Add(1)

	if err := s.cache.Delete(ctx, cacheListBooking); err != nil {
		log.Error().Err(err).Msg("failed to delete bookings from cache")
	}

	if err := s.cache.Delete(ctx, shared.BuildCacheKey(cacheAvailability, day)); err != nil {
		log.Error().Err(err).Str("day", day).Msg("failed to delete availability from cache")
	}
}

// saveCache stores a read taken at generation. It skips the save when a write invalidated
// since, and drops the key again when one lands while the save is in flight.
func (s *serviceImpl) saveCache(ctx context.Context, key string, value any, generation uint64) {
	if s.generation.Load() != generation {
		log.Debug().Str("cacheKey", key).Msg("skipping cache save, bookings changed during read")

		return
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, key, value, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Str("cacheKey", key).Msg("failed to save to cache")

			return
		}

		if s.generation.Load() != generation {
			if err := s.cache.Delete(c, key); err != nil {
				log.Error().Err(err).Str("cacheKey", key).Msg("failed to delete stale cache entry")
			}
		}
	}()
}

// publish logs failures and never fails the caller.
func (s *serviceImpl) publish(ctx context.Context, eventType string, booking model.Booking) {
	event := dto.BookingEvent{Type: eventType, Booking: booking, OccurredAt: timezone.Now()}

	if err := s.publisher.Publish(ctx, s.cfg.Broker.Topics.Booking, booking.ID, event); err != nil {
		log.Error().Err(err).Str("event", eventType).Str("bookingId", booking.ID).Msg("failed to publish booking event")
	}
}
