package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"lessons/config"
	"lessons/infras/otel/mocks"
	lessonMocks "lessons/internal/domains/lesson/mocks"
	"lessons/internal/domains/lesson/model"
	"lessons/internal/domains/lesson/model/dto"
	"lessons/internal/domains/lesson/service"
	"lessons/shared/cache"
	cacheMocks "lessons/shared/cache/mocks"
	"lessons/shared/constant"
	gDto "lessons/shared/dto"
	"lessons/shared/failure"
)

func TestLessonBookingService_Create(t *testing.T) {
	tests := []struct {
		name      string
		ctx       context.Context
		req       dto.CreateLessonBookingRequest
		setupMock func(repo *lessonMocks.MockLessonBooking)
		code      int
	}{
		{
			name: "pending booking for the signed-in user",
			ctx:  context.WithValue(context.Background(), constant.ContextKeyUserID, "user-1"),
			req:  dto.CreateLessonBookingRequest{LessonDate: "2026-11-02", LessonType: "Beginner"},
			setupMock: func(repo *lessonMocks.MockLessonBooking) {
				repo.EXPECT().Insert(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, booking model.LessonBooking) error {
						assert.Equal(t, "user-1", booking.UserID)
						assert.Equal(t, model.StatusPending, booking.Status)
						assert.Equal(t, 2, booking.LessonDate.Day())

						return nil
					})
			},
		},
		{
			name:      "missing identity",
			ctx:       context.Background(),
			req:       dto.CreateLessonBookingRequest{LessonDate: "2026-11-02", LessonType: "Beginner"},
			setupMock: func(_ *lessonMocks.MockLessonBooking) {},
			code:      http.StatusUnauthorized,
		},
		{
			name:      "unparseable date",
			ctx:       context.WithValue(context.Background(), constant.ContextKeyUserID, "user-1"),
			req:       dto.CreateLessonBookingRequest{LessonDate: "next tuesday", LessonType: "Beginner"},
			setupMock: func(_ *lessonMocks.MockLessonBooking) {},
			code:      http.StatusBadRequest,
		},
		{
			name: "repository error",
			ctx:  context.WithValue(context.Background(), constant.ContextKeyUserID, "user-1"),
			req:  dto.CreateLessonBookingRequest{LessonDate: "2026-11-02T18:00:00Z", LessonType: "Advanced"},
			setupMock: func(repo *lessonMocks.MockLessonBooking) {
				repo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(errors.New("db down"))
			},
			code: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			repo := lessonMocks.NewMockLessonBooking(ctrl)
			redis := cacheMocks.NewMockRedisCache(ctrl)
			redis.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

			tt.setupMock(repo)

			svc := service.New(repo, &config.Config{}, redis, mocks.NewOtel())

			res, err := svc.Create(tt.ctx, tt.req)

			if tt.code == 0 {
				assert.NoError(t, err)
				assert.NotEmpty(t, res.ID)
				assert.Equal(t, model.StatusPending, res.Status)

				return
			}

			assert.Error(t, err)
			assert.Equal(t, tt.code, failure.GetCode(err))
		})
	}
}

func TestLessonBookingService_GetAll(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := lessonMocks.NewMockLessonBooking(ctrl)
	redis := cacheMocks.NewMockRedisCache(ctrl)

	redis.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(cache.Nil).Times(2)
	redis.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	filter := service.UserFilter("user-1", model.StatusPending)
	params := gDto.QueryParams{Page: 1, Limit: 10, SortBy: "password; DROP TABLE users"}

	repo.EXPECT().Count(gomock.Any(), filter).Return(11, nil)
	repo.EXPECT().GetAll(gomock.Any(), gomock.Any(), filter).
		DoAndReturn(func(_ context.Context, p gDto.QueryParams, _ gDto.FilterGroup, _ ...string) ([]model.LessonBooking, error) {
			assert.Equal(t, model.FieldLessonDate, p.SortBy)
			assert.Equal(t, gDto.SortDirDesc, p.SortDir)

			return []model.LessonBooking{{ID: "lb-1", UserID: "user-1", LessonDate: time.Now(), Status: model.StatusPending}}, nil
		})

	svc := service.New(repo, &config.Config{}, redis, mocks.NewOtel())

	res, err := svc.GetAll(context.Background(), params, filter)
	assert.NoError(t, err)
	assert.Equal(t, 11, res.TotalData)
	assert.Equal(t, 2, res.TotalPage)
	assert.Len(t, res.Bookings, 1)
}

func TestUserFilter(t *testing.T) {
	filter := service.UserFilter("user-1", "")
	where, args := filter.GetWhereClause()
	assert.Equal(t, "(lesson_bookings.user_id = :user_id)", where)
	assert.Equal(t, "user-1", args["user_id"])

	empty := service.UserFilter("", "")
	where, _ = empty.GetWhereClause()
	assert.Empty(t, where)
}
