package service_test

import (
	"context"
	"errors"
	"net/http"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"lessons/config"
	brokerMocks "lessons/infras/broker/mocks"
	"lessons/infras/otel/mocks"
	bookingMocks "lessons/internal/domains/booking/mocks"
	"lessons/internal/domains/booking/model"
	"lessons/internal/domains/booking/model/dto"
	"lessons/internal/domains/booking/repository"
	"lessons/internal/domains/booking/service"
	"lessons/shared/cache"
	cacheMocks "lessons/shared/cache/mocks"
	"lessons/shared/failure"
)

const validID = "6f1c2f2e-8d1a-4a53-9d7e-3f7d3c7c2b11"

var errDown = errors.New("connection refused")

func newConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Cache.TTL = 60
	cfg.Broker.Topics.Booking = "booking"

	return cfg
}

// missCache answers every read with a miss and accepts every write.
func missCache(ctrl *gomock.Controller) *cacheMocks.MockRedisCache {
	c := cacheMocks.NewMockRedisCache(ctrl)
	c.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(cache.Nil).AnyTimes()
	c.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	c.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	return c
}

func quietPublisher(ctrl *gomock.Controller) *brokerMocks.MockPublisher {
	p := brokerMocks.NewMockPublisher(ctrl)
	p.EXPECT().Publish(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	return p
}

func newLedger(t *testing.T) service.Booking {
	t.Helper()

	ctrl := gomock.NewController(t)
	repo := repository.NewDocument(repository.NewMemoryDocument(), 0, mocks.NewOtel())

	return service.New(repo, newConfig(), missCache(ctrl), quietPublisher(ctrl), mocks.NewOtel())
}

func ptr(s string) *string {
	return &s
}

func TestBookingService_ConfirmFlow(t *testing.T) {
	ctx := context.Background()
	svc := newLedger(t)

	created, err := svc.Create(ctx, dto.CreateBookingRequest{Day: "Monday", Time: "2:00 PM", PaymentMethod: "paypal"})
	assert.NoError(t, err)
	assert.Equal(t, model.StatusPending, created.PaymentStatus)

	list, err := svc.List(ctx)
	assert.NoError(t, err)
	assert.Len(t, list, 1)
	assert.Equal(t, "Monday", list[0].Day)
	assert.Equal(t, "2:00 PM", list[0].Time)
	assert.Equal(t, "paypal", list[0].PaymentMethod)
	assert.Equal(t, model.StatusPending, list[0].PaymentStatus)

	confirmed, err := svc.Confirm(ctx, dto.ConfirmPaymentRequest{BookingID: created.ID, PaymentReference: "REF123"})
	assert.NoError(t, err)
	assert.Equal(t, model.StatusConfirmed, confirmed.PaymentStatus)
	assert.Equal(t, "REF123", *confirmed.PaymentReference)

	again, err := svc.Confirm(ctx, dto.ConfirmPaymentRequest{BookingID: created.ID, PaymentReference: "REF123"})
	assert.NoError(t, err, "same reference is a no-op")
	assert.Equal(t, confirmed, again)

	_, err = svc.Confirm(ctx, dto.ConfirmPaymentRequest{BookingID: created.ID, PaymentReference: "REF999"})
	assert.EqualError(t, err, "booking already confirmed")
	assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))

	_, err = svc.Create(ctx, dto.CreateBookingRequest{Day: "Monday", Time: "2:00 PM", PaymentMethod: "stripe"})
	assert.EqualError(t, err, "slot already booked")
	assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))

	err = svc.Delete(ctx, dto.DeleteBookingRequest{BookingID: created.ID})
	assert.EqualError(t, err, "cannot delete confirmed booking")
	assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))

	kept, err := svc.Get(ctx, created.ID)
	assert.NoError(t, err)
	assert.True(t, kept.ConfirmedWith("REF123"))

	slots, err := svc.Availability(ctx, "Monday")
	assert.NoError(t, err)

	for _, slot := range slots {
		assert.Equal(t, slot.Time != "2:00 PM", slot.Available, slot.Time)
	}
}

func TestBookingService_PendingNeverBlocks(t *testing.T) {
	ctx := context.Background()
	svc := newLedger(t)

	first, err := svc.Create(ctx, dto.CreateBookingRequest{Day: "Tuesday", Time: "5:00 PM", PaymentMethod: "stripe"})
	assert.NoError(t, err)

	second, err := svc.Create(ctx, dto.CreateBookingRequest{Day: "Tuesday", Time: "5:00 PM", PaymentMethod: "paypal", PaymentReference: ptr("pre-ref")})
	assert.NoError(t, err)
	assert.Equal(t, "pre-ref", *second.PaymentReference)

	slots, err := svc.Availability(ctx, "Tuesday")
	assert.NoError(t, err)

	for _, slot := range slots {
		assert.True(t, slot.Available)
	}

	_, err = svc.Confirm(ctx, dto.ConfirmPaymentRequest{BookingID: second.ID, PaymentReference: "REF-2"})
	assert.NoError(t, err)

	_, err = svc.Confirm(ctx, dto.ConfirmPaymentRequest{BookingID: first.ID, PaymentReference: "REF-1"})
	assert.EqualError(t, err, "slot already booked")

	assert.NoError(t, svc.Delete(ctx, dto.DeleteBookingRequest{BookingID: first.ID}))

	list, err := svc.List(ctx)
	assert.NoError(t, err)
	assert.Len(t, list, 1)
	assert.Equal(t, second.ID, list[0].ID)
}

func TestBookingService_Validation(t *testing.T) {
	ctx := context.Background()
	svc := newLedger(t)

	tests := []struct {
		name string
		req  dto.CreateBookingRequest
	}{
		{name: "unknown day", req: dto.CreateBookingRequest{Day: "Funday", Time: "1:00 PM", PaymentMethod: "paypal"}},
		{name: "morning hour", req: dto.CreateBookingRequest{Day: "Monday", Time: "9:00 AM", PaymentMethod: "paypal"}},
		{name: "noon", req: dto.CreateBookingRequest{Day: "Monday", Time: "12:00 PM", PaymentMethod: "paypal"}},
		{name: "missing method", req: dto.CreateBookingRequest{Day: "Monday", Time: "1:00 PM"}},
		{name: "blank method", req: dto.CreateBookingRequest{Day: "Monday", Time: "1:00 PM", PaymentMethod: "  "}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Create(ctx, tt.req)

			assert.Error(t, err)
			assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
		})
	}

	list, err := svc.List(ctx)
	assert.NoError(t, err)
	assert.Empty(t, list)

	_, err = svc.Availability(ctx, "someday")
	assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))

	_, err = svc.Get(ctx, "not-a-uuid")
	assert.Equal(t, http.StatusNotFound, failure.GetCode(err))

	err = svc.Delete(ctx, dto.DeleteBookingRequest{BookingID: validID})
	assert.EqualError(t, err, "booking not found")

	_, err = svc.Confirm(ctx, dto.ConfirmPaymentRequest{BookingID: validID})
	assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
}

func TestBookingService_ConcurrentConfirm(t *testing.T) {
	ctx := context.Background()
	svc := newLedger(t)

	const contenders = 12

	ids := make([]string, 0, contenders)

	for range contenders {
		b, err := svc.Create(ctx, dto.CreateBookingRequest{Day: "Saturday", Time: "9:00 PM", PaymentMethod: "checkout"})
		assert.NoError(t, err)

		ids = append(ids, b.ID)
	}

	var (
		wg   sync.WaitGroup
		mu   sync.Mutex
		wins int
	)

	for _, id := range ids {
		wg.Add(1)

		go func() {
			defer wg.Done()

			if _, err := svc.Confirm(ctx, dto.ConfirmPaymentRequest{BookingID: id, PaymentReference: "REF-" + id}); err == nil {
				mu.Lock()
				wins++
				mu.Unlock()
			}
		}()
	}

	wg.Wait()

	assert.Equal(t, 1, wins)

	list, err := svc.List(ctx)
	assert.NoError(t, err)

	confirmed := 0

	for _, b := range list {
		if b.Confirmed() {
			confirmed++
		}
	}

	assert.Equal(t, 1, confirmed)
}

func TestBookingService_StoreErrors(t *testing.T) {
	ctx := context.Background()
	unavailable := errors.Join(model.ErrStoreUnavailable, errDown)
	pending := model.New("Monday", "3:00 PM", "stripe", nil, time.Now())
	pending.ID = validID
	ref := "REF123"
	confirmed := pending
	confirmed.PaymentStatus = model.StatusConfirmed
	confirmed.PaymentReference = &ref

	tests := []struct {
		name      string
		setupMock func(repo *bookingMocks.MockBooking, publisher *brokerMocks.MockPublisher)
		run       func(svc service.Booking) error
		code      int
		message   string
	}{
		{
			name: "list retries once then succeeds",
			setupMock: func(repo *bookingMocks.MockBooking, _ *brokerMocks.MockPublisher) {
				gomock.InOrder(
					repo.EXPECT().List(gomock.Any()).Return(nil, unavailable),
					repo.EXPECT().List(gomock.Any()).Return([]model.Booking{pending}, nil),
				)
			},
			run: func(svc service.Booking) error {
				_, err := svc.List(ctx)

				return err
			},
		},
		{
			name: "list gives up after the retry",
			setupMock: func(repo *bookingMocks.MockBooking, _ *brokerMocks.MockPublisher) {
				repo.EXPECT().List(gomock.Any()).Return(nil, unavailable).Times(2)
			},
			run: func(svc service.Booking) error {
				_, err := svc.List(ctx)

				return err
			},
			code:    http.StatusInternalServerError,
			message: "booking store unavailable",
		},
		{
			name: "create surfaces store failure",
			setupMock: func(repo *bookingMocks.MockBooking, _ *brokerMocks.MockPublisher) {
				repo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(unavailable).Times(2)
			},
			run: func(svc service.Booking) error {
				_, err := svc.Create(ctx, dto.CreateBookingRequest{Day: "Monday", Time: "3:00 PM", PaymentMethod: "stripe"})

				return err
			},
			code:    http.StatusInternalServerError,
			message: "booking store unavailable",
		},
		{
			name: "publish failure does not fail create",
			setupMock: func(repo *bookingMocks.MockBooking, publisher *brokerMocks.MockPublisher) {
				repo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(nil)
				publisher.EXPECT().Publish(gomock.Any(), "booking", gomock.Any(), gomock.Any()).Return(errDown)
			},
			run: func(svc service.Booking) error {
				_, err := svc.Create(ctx, dto.CreateBookingRequest{Day: "Monday", Time: "3:00 PM", PaymentMethod: "stripe"})

				return err
			},
		},
		{
			name: "confirm lost race to the same reference succeeds",
			setupMock: func(repo *bookingMocks.MockBooking, _ *brokerMocks.MockPublisher) {
				gomock.InOrder(
					repo.EXPECT().Get(gomock.Any(), validID).Return(pending, nil),
					repo.EXPECT().Confirm(gomock.Any(), validID, ref).Return(model.Booking{}, model.ErrStatusChanged),
					repo.EXPECT().Get(gomock.Any(), validID).Return(confirmed, nil),
				)
			},
			run: func(svc service.Booking) error {
				_, err := svc.Confirm(ctx, dto.ConfirmPaymentRequest{BookingID: validID, PaymentReference: ref})

				return err
			},
		},
		{
			name: "confirm lost race to another reference conflicts",
			setupMock: func(repo *bookingMocks.MockBooking, _ *brokerMocks.MockPublisher) {
				gomock.InOrder(
					repo.EXPECT().Get(gomock.Any(), validID).Return(pending, nil),
					repo.EXPECT().Confirm(gomock.Any(), validID, "OTHER").Return(model.Booking{}, model.ErrStatusChanged),
					repo.EXPECT().Get(gomock.Any(), validID).Return(confirmed, nil),
				)
			},
			run: func(svc service.Booking) error {
				_, err := svc.Confirm(ctx, dto.ConfirmPaymentRequest{BookingID: validID, PaymentReference: "OTHER"})

				return err
			},
			code:    http.StatusBadRequest,
			message: "booking already confirmed",
		},
		{
			name: "confirm of a booking deleted concurrently",
			setupMock: func(repo *bookingMocks.MockBooking, _ *brokerMocks.MockPublisher) {
				gomock.InOrder(
					repo.EXPECT().Get(gomock.Any(), validID).Return(pending, nil),
					repo.EXPECT().Confirm(gomock.Any(), validID, ref).Return(model.Booking{}, model.ErrNotFound),
				)
			},
			run: func(svc service.Booking) error {
				_, err := svc.Confirm(ctx, dto.ConfirmPaymentRequest{BookingID: validID, PaymentReference: ref})

				return err
			},
			code:    http.StatusNotFound,
			message: "booking not found",
		},
		{
			name: "delete of a booking confirmed concurrently",
			setupMock: func(repo *bookingMocks.MockBooking, _ *brokerMocks.MockPublisher) {
				repo.EXPECT().Get(gomock.Any(), validID).Return(pending, nil)
				repo.EXPECT().DeletePending(gomock.Any(), validID).Return(model.ErrConfirmed)
			},
			run: func(svc service.Booking) error {
				return svc.Delete(ctx, dto.DeleteBookingRequest{BookingID: validID})
			},
			code:    http.StatusBadRequest,
			message: "cannot delete confirmed booking",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			repo := bookingMocks.NewMockBooking(ctrl)
			publisher := brokerMocks.NewMockPublisher(ctrl)

			tt.setupMock(repo, publisher)
			publisher.EXPECT().Publish(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

			svc := service.New(repo, newConfig(), missCache(ctrl), publisher, mocks.NewOtel())

			err := tt.run(svc)

			if tt.message == "" {
				assert.NoError(t, err)

				return
			}

			assert.EqualError(t, err, tt.message)
			assert.Equal(t, tt.code, failure.GetCode(err))
		})
	}
}

func TestBookingService_CacheHit(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := bookingMocks.NewMockBooking(ctrl)
	redis := cacheMocks.NewMockRedisCache(ctrl)

	redis.EXPECT().Get(gomock.Any(), "booking:availability:Sunday", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, value any) error {
			slots, _ := value.(*[]model.Slot)
			*slots = []model.Slot{{Day: "Sunday", Time: "1:00 PM", Available: false}}

			return nil
		})

	svc := service.New(repo, newConfig(), redis, quietPublisher(ctrl), mocks.NewOtel())

	slots, err := svc.Availability(context.Background(), "Sunday")
	assert.NoError(t, err)
	assert.Len(t, slots, 1)
	assert.False(t, slots[0].Available)
}

func TestBookingService_ListCacheSkipsReadOverlappingWrite(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	repo := bookingMocks.NewMockBooking(ctrl)

	redis := cacheMocks.NewMockRedisCache(ctrl)
	redis.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(cache.Nil).AnyTimes()
	redis.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	var svc service.Booking

	stale := model.New("Monday", "2:00 PM", "paypal", nil, time.Now())

	repo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(nil)
	repo.EXPECT().List(gomock.Any()).DoAndReturn(func(ctx context.Context) ([]model.Booking, error) {
		_, err := svc.Create(ctx, dto.CreateBookingRequest{Day: "Monday", Time: "4:00 PM", PaymentMethod: "paypal"})
		assert.NoError(t, err)

		return []model.Booking{stale}, nil
	})

	svc = service.New(repo, newConfig(), redis, quietPublisher(ctrl), mocks.NewOtel())

	res, err := svc.List(ctx)

	assert.NoError(t, err)
	assert.Equal(t, []model.Booking{stale}, res, "the read itself is still answered")
}

func TestBookingService_ListCacheSavesQuietRead(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	repo := bookingMocks.NewMockBooking(ctrl)

	saved := make(chan string, 1)

	redis := cacheMocks.NewMockRedisCache(ctrl)
	redis.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(cache.Nil)
	redis.EXPECT().Save(gomock.Any(), "booking:list", gomock.Any(), 60).
		DoAndReturn(func(_ context.Context, key string, _ any, _ int) error {
			saved <- key

			return nil
		})

	repo.EXPECT().List(gomock.Any()).Return(nil, nil)

	svc := service.New(repo, newConfig(), redis, quietPublisher(ctrl), mocks.NewOtel())

	res, err := svc.List(ctx)
	assert.NoError(t, err)
	assert.Empty(t, res)

	select {
	case key := <-saved:
		assert.Equal(t, "booking:list", key)
	case <-time.After(time.Second):
		t.Fatal("list was not cached")
	}
}
