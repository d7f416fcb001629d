package provider_test

import (
	"context"
	"errors"
	"lessons/config"
	"lessons/internal/domains/payment/provider"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stripe/stripe-go/v76"
)

type fakeSessions struct {
	session *stripe.CheckoutSession
	err     error
	gotID   string
	expand  []*string
	created *stripe.CheckoutSessionParams
}

func (f *fakeSessions) New(params *stripe.CheckoutSessionParams) (*stripe.CheckoutSession, error) {
	f.created = params

	return f.session, f.err
}

func (f *fakeSessions) Get(id string, params *stripe.CheckoutSessionParams) (*stripe.CheckoutSession, error) {
	f.gotID = id
	f.expand = params.Expand

	return f.session, f.err
}

func TestStripe_Verify(t *testing.T) {
	tests := []struct {
		name     string
		sessions *fakeSessions
		want     provider.Verification
		err      error
	}{
		{
			name: "paid session resolves to its payment intent",
			sessions: &fakeSessions{session: &stripe.CheckoutSession{
				ID:            "cs_test_1",
				PaymentStatus: stripe.CheckoutSessionPaymentStatusPaid,
				PaymentIntent: &stripe.PaymentIntent{ID: "pi_123"},
				Metadata:      map[string]string{"bookingId": "b-1"},
			}},
			want: provider.Verification{Paid: true, Reference: "pi_123", BookingID: "b-1"},
		},
		{
			name: "unpaid session",
			sessions: &fakeSessions{session: &stripe.CheckoutSession{
				ID:            "cs_test_2",
				PaymentStatus: stripe.CheckoutSessionPaymentStatusUnpaid,
			}},
			want: provider.Verification{Paid: false, Reference: "cs_test_2"},
		},
		{
			name:     "unknown session",
			sessions: &fakeSessions{err: &stripe.Error{HTTPStatusCode: http.StatusNotFound}},
			err:      provider.ErrPaymentNotFound,
		},
		{
			name:     "stripe unreachable",
			sessions: &fakeSessions{err: errors.New("dial tcp: timeout")},
			err:      provider.ErrUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := provider.NewStripeWithSessions(tt.sessions, provider.StripeOptions{})

			got, err := p.Verify(context.Background(), "cs_test")

			assert.Equal(t, "cs_test", tt.sessions.gotID)
			assert.Equal(t, "payment_intent", *tt.sessions.expand[0])

			if tt.err != nil {
				assert.ErrorIs(t, err, tt.err)

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestStripe_CreateSession(t *testing.T) {
	options := provider.StripeOptions{
		SuccessURL: "https://lessons.example/booking/success?session_id={CHECKOUT_SESSION_ID}",
		CancelURL:  "https://lessons.example/booking",
	}
	req := provider.CheckoutRequest{
		BookingID:     "b-1",
		Day:           "Monday",
		Time:          "4:00 PM",
		Amount:        45,
		Description:   "Beginner lesson",
		CustomerName:  "Ana Vidovic",
		CustomerEmail: "ana@example.com",
	}

	t.Run("session carries the booking id", func(t *testing.T) {
		sessions := &fakeSessions{session: &stripe.CheckoutSession{
			ID:     "cs_test_1",
			URL:    "https://checkout.stripe.com/c/cs_test_1",
			Status: stripe.CheckoutSessionStatusOpen,
		}}

		creator, ok := provider.NewStripeWithSessions(sessions, options).(provider.SessionCreator)
		assert.True(t, ok)

		got, err := creator.CreateSession(context.Background(), req)

		assert.NoError(t, err)
		assert.Equal(t, provider.CheckoutSession{ID: "cs_test_1", URL: "https://checkout.stripe.com/c/cs_test_1", Status: "open"}, got)

		params := sessions.created
		assert.NotNil(t, params.Context)
		assert.Equal(t, "payment", *params.Mode)
		assert.Equal(t, options.SuccessURL, *params.SuccessURL)
		assert.Equal(t, options.CancelURL, *params.CancelURL)
		assert.Equal(t, "ana@example.com", *params.CustomerEmail)
		assert.Equal(t, map[string]string{
			"bookingId":    "b-1",
			"lessonDay":    "Monday",
			"lessonTime":   "4:00 PM",
			"customerName": "Ana Vidovic",
		}, params.Metadata)

		assert.Len(t, params.LineItems, 1)
		price := params.LineItems[0].PriceData
		assert.Equal(t, "usd", *price.Currency)
		assert.Equal(t, int64(4500), *price.UnitAmount)
		assert.Equal(t, "Guitar Lesson", *price.ProductData.Name)
		assert.Equal(t, int64(1), *params.LineItems[0].Quantity)
	})

	t.Run("stripe unreachable", func(t *testing.T) {
		sessions := &fakeSessions{err: errors.New("dial tcp: timeout")}
		creator, _ := provider.NewStripeWithSessions(sessions, provider.StripeOptions{Currency: "eur"}).(provider.SessionCreator)

		_, err := creator.CreateSession(context.Background(), req)

		assert.ErrorIs(t, err, provider.ErrUnavailable)
		assert.Equal(t, "eur", *sessions.created.LineItems[0].PriceData.Currency)
	})
}

func TestTrusted_Verify(t *testing.T) {
	p := provider.NewTrusted(provider.NamePayPal)

	got, err := p.Verify(context.Background(), "REF123")
	assert.NoError(t, err)
	assert.Equal(t, provider.Verification{Paid: true, Reference: "REF123"}, got)
	assert.Equal(t, "paypal", p.Name())
}

func TestNewRegistry(t *testing.T) {
	cfg := &config.Config{}
	cfg.Payment.Providers = []string{"stripe", " PayPal ", "payoneer", "bitcoin", ""}

	registry := provider.NewRegistry(cfg)
	assert.Equal(t, []string{"payoneer", "paypal"}, registry.Names(), "stripe needs a secret key")

	cfg.Payment.Stripe.SecretKey = "sk_test_123"
	registry = provider.NewRegistry(cfg)
	assert.Equal(t, []string{"payoneer", "paypal", "stripe"}, registry.Names())

	_, ok := registry.Get("checkout")
	assert.False(t, ok)
}
