package payment_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"lessons/config"
	"lessons/infras/broker"
	brokerMocks "lessons/infras/broker/mocks"
	"lessons/infras/otel/mocks"
	"lessons/internal/consumers/payment"
	bookingModel "lessons/internal/domains/booking/model"
	"lessons/internal/domains/payment/model/dto"
	"lessons/internal/domains/payment/service"
	"lessons/shared/failure"
)

// fakePayments records confirmations. The consumer never opens checkout sessions, so the
// embedded interface stays nil.
type fakePayments struct {
	service.Payment

	calls    []dto.ConfirmPaymentRequest
	provider string
	err      error
}

func (f *fakePayments) Confirm(_ context.Context, provider string, req dto.ConfirmPaymentRequest) (bookingModel.Booking, error) {
	f.calls = append(f.calls, req)
	f.provider = provider

	return bookingModel.Booking{ID: req.BookingID}, f.err
}

func TestConsumer_Handle(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		err     error
		calls   int
		wantErr bool
	}{
		{name: "confirms a paid booking", body: `{"bookingId":"b-1","provider":"paypal","reference":"REF123"}`, calls: 1},
		{name: "malformed json is dropped", body: `{"bookingId":`},
		{name: "missing reference is dropped", body: `{"bookingId":"b-1","provider":"paypal"}`},
		{
			name:  "rejected payment is dropped",
			body:  `{"bookingId":"b-1","provider":"paypal","reference":"REF123"}`,
			err:   failure.BadRequestFromString("slot already booked"),
			calls: 1,
		},
		{
			name:    "store failure is redelivered",
			body:    `{"bookingId":"b-1","provider":"paypal","reference":"REF123"}`,
			err:     failure.StoreUnavailable(),
			calls:   1,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			payments := &fakePayments{err: tt.err}
			c := payment.New(nil, payments, &config.Config{}, mocks.NewOtel())

			err := c.Handle(context.Background(), broker.Message{Topic: "payment.paid", Key: "b-1", Body: []byte(tt.body)})

			assert.Equal(t, tt.wantErr, err != nil)
			assert.Len(t, payments.calls, tt.calls)

			if tt.calls > 0 {
				assert.Equal(t, "paypal", payments.provider)
				assert.Equal(t, "REF123", payments.calls[0].Reference)
			}
		})
	}
}

func TestConsumer_Run(t *testing.T) {
	ctrl := gomock.NewController(t)
	consumer := brokerMocks.NewMockConsumer(ctrl)

	cfg := &config.Config{}
	cfg.Broker.Topics.PaymentPaid = "payment.paid"

	consumer.EXPECT().Consume(gomock.Any(), "payment.paid", gomock.Any()).Return(errors.New("broker gone"))

	err := payment.New(consumer, &fakePayments{}, cfg, mocks.NewOtel()).Run(context.Background())
	assert.ErrorContains(t, err, "broker gone")
}
