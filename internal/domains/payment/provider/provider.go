package provider

//go:generate go run go.uber.org/mock/mockgen -source=./provider.go -destination=../mocks/provider_mock.go -package=mocks

import (
	"context"
	"errors"
	"lessons/config"
	"slices"
	"strings"

	"github.com/rs/zerolog/log"
)

const (
	NameStripe   = "stripe"
	NamePayPal   = "paypal"
	NamePayoneer = "payoneer"
	NameCheckout = "checkout"
)

var (
	ErrPaymentNotFound = errors.New("payment not found at provider")
	ErrUnavailable     = errors.New("payment provider unavailable")
)

// Verification is what a provider reports about a payment reference.
type Verification struct {
	Paid bool
	// Reference is the id the booking should be confirmed with. It may differ from the
	// reference the client submitted, e.g. a checkout session resolves to its payment intent.
	Reference string
	// BookingID is set when the provider carries the booking id itself.
	BookingID string
}

type Provider interface {
	Name() string
	Verify(ctx context.Context, reference string) (Verification, error)
}

// CheckoutRequest describes the hosted payment page to open for a pending booking.
type CheckoutRequest struct {
	BookingID string
	Day       string
	Time      string
	// Amount is in whole currency units.
	Amount        int64
	Description   string
	CustomerName  string
	CustomerEmail string
}

type CheckoutSession struct {
	ID     string
	URL    string
	Status string
}

// SessionCreator is implemented by providers that host their own checkout page.
// The created session carries the booking id so Verify can tie the payment back to it.
type SessionCreator interface {
	CreateSession(ctx context.Context, req CheckoutRequest) (CheckoutSession, error)
}

// Registry holds the providers enabled by PAYMENT_PROVIDERS.
type Registry map[string]Provider

func NewRegistry(cfg *config.Config) Registry {
	registry := Registry{}

	for _, name := range cfg.Payment.Providers {
		name = strings.ToLower(strings.TrimSpace(name))

		switch name {
		case NameStripe:
			if cfg.Payment.Stripe.SecretKey == "" {
				log.Warn().Msg("stripe enabled without PAYMENT_STRIPE_SECRET_KEY, skipping")

				continue
			}

			registry[name] = NewStripe(cfg.Payment.Stripe.SecretKey, StripeOptions{
				Currency:   cfg.Payment.Currency,
				SuccessURL: cfg.Payment.Stripe.SuccessURL,
				CancelURL:  cfg.Payment.Stripe.CancelURL,
			})
		case NamePayPal, NamePayoneer, NameCheckout:
			registry[name] = NewTrusted(name)
		case "":
		default:
			log.Warn().Str("provider", name).Msg("unknown payment provider, skipping")
		}
	}

	return registry
}

func (r Registry) Get(name string) (Provider, bool) {
	p, ok := r[name]

	return p, ok
}

func (r Registry) Names() []string {
	names := make([]string, 0, len(r))
	for name := range r {
		names = append(names, name)
	}

	slices.Sort(names)

	return names
}
