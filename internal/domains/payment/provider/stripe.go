package provider

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/client"
)

const (
	stripeMetadataBookingID    = "bookingId"
	stripeMetadataLessonDay    = "lessonDay"
	stripeMetadataLessonTime   = "lessonTime"
	stripeMetadataCustomerName = "customerName"
	stripeExpandIntent         = "payment_intent"
	stripeProductName          = "Guitar Lesson"
	stripeDefaultCurrency      = "usd"
	centsPerUnit               = 100
)

type checkoutSessions interface {
	New(params *stripe.CheckoutSessionParams) (*stripe.CheckoutSession, error)
	Get(id string, params *stripe.CheckoutSessionParams) (*stripe.CheckoutSession, error)
}

type StripeOptions struct {
	Currency   string
	SuccessURL string
	CancelURL  string
}

// stripeProvider opens checkout sessions for bookings and verifies them by session id.
type stripeProvider struct {
	sessions checkoutSessions
	options  StripeOptions
}

func NewStripe(secretKey string, options StripeOptions) Provider {
	return NewStripeWithSessions(client.New(secretKey, nil).CheckoutSessions, options)
}

func NewStripeWithSessions(sessions checkoutSessions, options StripeOptions) Provider {
	if options.Currency == "" {
		options.Currency = stripeDefaultCurrency
	}

	return &stripeProvider{sessions: sessions, options: options}
}

func (s *stripeProvider) Name() string {
	return NameStripe
}

func (s *stripeProvider) Verify(ctx context.Context, reference string) (Verification, error) {
	params := &stripe.CheckoutSessionParams{}
	params.Context = ctx
	params.AddExpand(stripeExpandIntent)

	session, err := s.sessions.Get(reference, params)
	if err != nil {
		var stripeErr *stripe.Error
		if errors.As(err, &stripeErr) && stripeErr.HTTPStatusCode == http.StatusNotFound {
			return Verification{}, ErrPaymentNotFound
		}

		return Verification{}, fmt.Errorf("%w: %w", ErrUnavailable, err)
	}

	res := Verification{
		Paid:      session.PaymentStatus == stripe.CheckoutSessionPaymentStatusPaid,
		Reference: session.ID,
		BookingID: session.Metadata[stripeMetadataBookingID],
	}

	if session.PaymentIntent != nil && session.PaymentIntent.ID != "" {
		res.Reference = session.PaymentIntent.ID
	}

	return res, nil
}

func (s *stripeProvider) CreateSession(ctx context.Context, req CheckoutRequest) (CheckoutSession, error) {
	params := &stripe.CheckoutSessionParams{
		Mode:               stripe.String(string(stripe.CheckoutSessionModePayment)),
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
					Currency: stripe.String(s.options.Currency),
					ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
						Name:        stripe.String(stripeProductName),
						Description: stripe.String(req.Description),
					},
					UnitAmount: stripe.Int64(req.Amount * centsPerUnit),
				},
				Quantity: stripe.Int64(1),
			},
		},
		SuccessURL: stripe.String(s.options.SuccessURL),
		CancelURL:  stripe.String(s.options.CancelURL),
	}
	params.Context = ctx

	if req.CustomerEmail != "" {
		params.CustomerEmail = stripe.String(req.CustomerEmail)
	}

	params.AddMetadata(stripeMetadataBookingID, req.BookingID)
	params.AddMetadata(stripeMetadataLessonDay, req.Day)
	params.AddMetadata(stripeMetadataLessonTime, req.Time)

	if req.CustomerName != "" {
		params.AddMetadata(stripeMetadataCustomerName, req.CustomerName)
	}

	session, err := s.sessions.New(params)
	if err != nil {
		return CheckoutSession{}, fmt.Errorf("%w: %w", ErrUnavailable, err)
	}

	return CheckoutSession{
		ID:     session.ID,
		URL:    session.URL,
		Status: string(session.Status),
	}, nil
}
