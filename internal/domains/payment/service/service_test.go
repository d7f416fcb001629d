package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"lessons/config"
	brokerMocks "lessons/infras/broker/mocks"
	"lessons/infras/otel/mocks"
	bookingModel "lessons/internal/domains/booking/model"
	bookingDto "lessons/internal/domains/booking/model/dto"
	bookingRepo "lessons/internal/domains/booking/repository"
	bookingService "lessons/internal/domains/booking/service"
	paymentMocks "lessons/internal/domains/payment/mocks"
	"lessons/internal/domains/payment/model/dto"
	"lessons/internal/domains/payment/provider"
	"lessons/internal/domains/payment/service"
	"lessons/shared/cache"
	cacheMocks "lessons/shared/cache/mocks"
	"lessons/shared/failure"
)

func newBookings(ctrl *gomock.Controller) bookingService.Booking {
	redis := cacheMocks.NewMockRedisCache(ctrl)
	redis.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(cache.Nil).AnyTimes()
	redis.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	redis.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	publisher := brokerMocks.NewMockPublisher(ctrl)
	publisher.EXPECT().Publish(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	repo := bookingRepo.NewDocument(bookingRepo.NewMemoryDocument(), 0, mocks.NewOtel())

	return bookingService.New(repo, &config.Config{}, redis, publisher, mocks.NewOtel())
}

func TestPaymentService_Confirm(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name      string
		provider  string
		method    string
		reference string
		setupMock func(p *paymentMocks.MockProvider, bookingID string)
		code      int
		message   string
		confirmed string
	}{
		{
			name:      "verified stripe payment confirms with the intent id",
			provider:  "stripe",
			method:    "stripe",
			reference: "cs_test_1",
			setupMock: func(p *paymentMocks.MockProvider, bookingID string) {
				p.EXPECT().Verify(gomock.Any(), "cs_test_1").
					Return(provider.Verification{Paid: true, Reference: "pi_123", BookingID: bookingID}, nil)
			},
			confirmed: "pi_123",
		},
		{
			name:      "unknown provider",
			provider:  "bitcoin",
			method:    "stripe",
			reference: "tx",
			setupMock: func(_ *paymentMocks.MockProvider, _ string) {},
			code:      http.StatusBadRequest,
			message:   `unknown payment provider "bitcoin"`,
		},
		{
			name:      "booking paid with another method",
			provider:  "stripe",
			method:    "paypal",
			reference: "cs_test_1",
			setupMock: func(_ *paymentMocks.MockProvider, _ string) {},
			code:      http.StatusBadRequest,
			message:   "booking is paid with paypal, not stripe",
		},
		{
			name:      "unpaid session",
			provider:  "stripe",
			method:    "stripe",
			reference: "cs_test_2",
			setupMock: func(p *paymentMocks.MockProvider, _ string) {
				p.EXPECT().Verify(gomock.Any(), "cs_test_2").Return(provider.Verification{Reference: "cs_test_2"}, nil)
			},
			code:    http.StatusBadRequest,
			message: "payment not completed",
		},
		{
			name:      "payment for another booking",
			provider:  "stripe",
			method:    "stripe",
			reference: "cs_test_3",
			setupMock: func(p *paymentMocks.MockProvider, _ string) {
				p.EXPECT().Verify(gomock.Any(), "cs_test_3").
					Return(provider.Verification{Paid: true, Reference: "pi_9", BookingID: "someone-else"}, nil)
			},
			code:    http.StatusBadRequest,
			message: "payment belongs to another booking",
		},
		{
			name:      "unknown payment",
			provider:  "stripe",
			method:    "stripe",
			reference: "cs_missing",
			setupMock: func(p *paymentMocks.MockProvider, _ string) {
				p.EXPECT().Verify(gomock.Any(), "cs_missing").Return(provider.Verification{}, provider.ErrPaymentNotFound)
			},
			code:    http.StatusBadRequest,
			message: "payment not found",
		},
		{
			name:      "provider down",
			provider:  "stripe",
			method:    "stripe",
			reference: "cs_test_4",
			setupMock: func(p *paymentMocks.MockProvider, _ string) {
				p.EXPECT().Verify(gomock.Any(), "cs_test_4").Return(provider.Verification{}, errors.Join(provider.ErrUnavailable, errors.New("timeout")))
			},
			code:    http.StatusServiceUnavailable,
			message: "payment provider unavailable",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			bookings := newBookings(ctrl)

			stripe := paymentMocks.NewMockProvider(ctrl)
			stripe.EXPECT().Name().Return("stripe").AnyTimes()

			registry := provider.Registry{"stripe": stripe, "paypal": provider.NewTrusted("paypal")}
			svc := service.New(bookings, registry, mocks.NewOtel())

			booking, err := bookings.Create(ctx, bookingDto.CreateBookingRequest{Day: "Monday", Time: "4:00 PM", PaymentMethod: tt.method})
			assert.NoError(t, err)

			tt.setupMock(stripe, booking.ID)

			res, err := svc.Confirm(ctx, tt.provider, dto.ConfirmPaymentRequest{BookingID: booking.ID, Reference: tt.reference})

			if tt.code != 0 {
				assert.EqualError(t, err, tt.message)
				assert.Equal(t, tt.code, failure.GetCode(err))

				stored, err := bookings.Get(ctx, booking.ID)
				assert.NoError(t, err)
				assert.Equal(t, bookingModel.StatusPending, stored.PaymentStatus)

				return
			}

			assert.NoError(t, err)
			assert.True(t, res.ConfirmedWith(tt.confirmed))
		})
	}
}

func TestPaymentService_TrustedProvider(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	bookings := newBookings(ctrl)

	svc := service.New(bookings, provider.Registry{"paypal": provider.NewTrusted("paypal")}, mocks.NewOtel())

	booking, err := bookings.Create(ctx, bookingDto.CreateBookingRequest{Day: "Monday", Time: "2:00 PM", PaymentMethod: "paypal"})
	assert.NoError(t, err)

	res, err := svc.Confirm(ctx, "paypal", dto.ConfirmPaymentRequest{BookingID: booking.ID, Reference: "REF123"})
	assert.NoError(t, err)
	assert.True(t, res.ConfirmedWith("REF123"))

	again, err := svc.Confirm(ctx, "paypal", dto.ConfirmPaymentRequest{BookingID: booking.ID, Reference: "REF123"})
	assert.NoError(t, err)
	assert.Equal(t, res, again)

	_, err = svc.Confirm(ctx, "paypal", dto.ConfirmPaymentRequest{BookingID: "6f1c2f2e-8d1a-4a53-9d7e-3f7d3c7c2b11", Reference: "REF123"})
	assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
}

type checkoutProvider struct {
	*paymentMocks.MockProvider
	*paymentMocks.MockSessionCreator
}

func TestPaymentService_CreateSession(t *testing.T) {
	ctx := context.Background()

	customer := dto.CustomerDetails{FirstName: "Ana", LastName: "Vidovic", Email: "ana@example.com"}

	tests := []struct {
		name      string
		provider  string
		method    string
		confirm   bool
		amount    int64
		setupMock func(c *paymentMocks.MockSessionCreator, bookingID string)
		code      int
		message   string
	}{
		{
			name:     "pending stripe booking gets a session",
			provider: "stripe",
			method:   "stripe",
			amount:   50,
			setupMock: func(c *paymentMocks.MockSessionCreator, bookingID string) {
				c.EXPECT().CreateSession(gomock.Any(), provider.CheckoutRequest{
					BookingID:     bookingID,
					Day:           "Monday",
					Time:          "4:00 PM",
					Amount:        50,
					Description:   "Beginner lesson",
					CustomerName:  "Ana Vidovic",
					CustomerEmail: "ana@example.com",
				}).Return(provider.CheckoutSession{ID: "cs_test_1", URL: "https://checkout.stripe.com/c/cs_test_1", Status: "open"}, nil)
			},
		},
		{
			name:      "missing amount",
			provider:  "stripe",
			method:    "stripe",
			setupMock: func(_ *paymentMocks.MockSessionCreator, _ string) {},
			code:      http.StatusBadRequest,
		},
		{
			name:      "provider without hosted checkout",
			provider:  "paypal",
			method:    "paypal",
			amount:    50,
			setupMock: func(_ *paymentMocks.MockSessionCreator, _ string) {},
			code:      http.StatusBadRequest,
			message:   "paypal does not use checkout sessions",
		},
		{
			name:      "booking paid with another method",
			provider:  "stripe",
			method:    "payoneer",
			amount:    50,
			setupMock: func(_ *paymentMocks.MockSessionCreator, _ string) {},
			code:      http.StatusBadRequest,
			message:   "booking is paid with payoneer, not stripe",
		},
		{
			name:      "booking already confirmed",
			provider:  "stripe",
			method:    "stripe",
			confirm:   true,
			amount:    50,
			setupMock: func(_ *paymentMocks.MockSessionCreator, _ string) {},
			code:      http.StatusBadRequest,
			message:   "booking already confirmed",
		},
		{
			name:     "stripe down",
			provider: "stripe",
			method:   "stripe",
			amount:   50,
			setupMock: func(c *paymentMocks.MockSessionCreator, _ string) {
				c.EXPECT().CreateSession(gomock.Any(), gomock.Any()).Return(provider.CheckoutSession{}, provider.ErrUnavailable)
			},
			code:    http.StatusServiceUnavailable,
			message: "payment provider unavailable",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			bookings := newBookings(ctrl)

			stripe := checkoutProvider{paymentMocks.NewMockProvider(ctrl), paymentMocks.NewMockSessionCreator(ctrl)}
			stripe.MockProvider.EXPECT().Name().Return("stripe").AnyTimes()

			registry := provider.Registry{"stripe": stripe, "paypal": provider.NewTrusted("paypal")}
			svc := service.New(bookings, registry, mocks.NewOtel())

			booking, err := bookings.Create(ctx, bookingDto.CreateBookingRequest{Day: "Monday", Time: "4:00 PM", PaymentMethod: tt.method})
			assert.NoError(t, err)

			if tt.confirm {
				_, err = bookings.Confirm(ctx, bookingDto.ConfirmPaymentRequest{BookingID: booking.ID, PaymentReference: "pi_1"})
				assert.NoError(t, err)
			}

			tt.setupMock(stripe.MockSessionCreator, booking.ID)

			res, err := svc.CreateSession(ctx, tt.provider, dto.CreateSessionRequest{
				BookingID:       booking.ID,
				Amount:          tt.amount,
				Description:     "Beginner lesson",
				CustomerDetails: customer,
			})

			if tt.code != 0 {
				assert.Error(t, err)
				assert.Equal(t, tt.code, failure.GetCode(err))

				if tt.message != "" {
					assert.EqualError(t, err, tt.message)
				}

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, dto.CreateSessionResponse{
				PaymentURL: "https://checkout.stripe.com/c/cs_test_1",
				ID:         "cs_test_1",
				Status:     "open",
			}, res)
		})
	}
}
