package service

import (
	"context"
	"errors"
	"fmt"
	"lessons/infras/otel"
	bookingModel "lessons/internal/domains/booking/model"
	bookingDto "lessons/internal/domains/booking/model/dto"
	bookingService "lessons/internal/domains/booking/service"
	"lessons/internal/domains/payment/model/dto"
	"lessons/internal/domains/payment/provider"
	"lessons/shared/constant"
	"lessons/shared/failure"
	"lessons/shared/validator"

	"github.com/rs/zerolog/log"
)

type Payment interface {
	// Confirm verifies reference with the named provider and then confirms the booking.
	Confirm(ctx context.Context, providerName string, req dto.ConfirmPaymentRequest) (bookingModel.Booking, error)
	// CreateSession opens the provider's hosted checkout page for a pending booking.
	CreateSession(ctx context.Context, providerName string, req dto.CreateSessionRequest) (dto.CreateSessionResponse, error)
}

type serviceImpl struct {
	bookings  bookingService.Booking
	providers provider.Registry
	otel      otel.Otel
}

func New(bookings bookingService.Booking, providers provider.Registry, otel otel.Otel) Payment {
	return &serviceImpl{
		bookings:  bookings,
		providers: providers,
		otel:      otel,
	}
}

func (s *serviceImpl) Confirm(ctx context.Context, providerName string, req dto.ConfirmPaymentRequest) (res bookingModel.Booking, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".payment.Confirm")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = validator.ValidateStruct(&req); err != nil {
		return res, err // nolint:wrapcheck
	}

	p, ok := s.providers.Get(providerName)
	if !ok {
		return res, failure.BadRequestFromString(fmt.Sprintf("unknown payment provider %q", providerName)) // nolint:wrapcheck
	}

	booking, err := s.bookings.Get(ctx, req.BookingID)
	if err != nil {
		return res, err // nolint:wrapcheck
	}

	if booking.PaymentMethod != p.Name() {
		return res, failure.BadRequestFromString(fmt.Sprintf("booking is paid with %s, not %s", booking.PaymentMethod, p.Name())) // nolint:wrapcheck
	}

	verification, err := p.Verify(ctx, req.Reference)
	if err != nil {
		if errors.Is(err, provider.ErrPaymentNotFound) {
			return res, failure.BadRequestFromString("payment not found") // nolint:wrapcheck
		}

		log.Error().Err(err).Str("provider", p.Name()).Msg("failed to verify payment")

		return res, failure.ServiceUnavailable("payment provider unavailable") // nolint:wrapcheck
	}

	if !verification.Paid {
		return res, failure.BadRequestFromString("payment not completed") // nolint:wrapcheck
	}

	if verification.BookingID != "" && verification.BookingID != booking.ID {
		log.Warn().Str("bookingId", booking.ID).Str("paidFor", verification.BookingID).Msg("payment belongs to another booking")

		return res, failure.BadRequestFromString("payment belongs to another booking") // nolint:wrapcheck
	}

	return s.bookings.Confirm(ctx, bookingDto.ConfirmPaymentRequest{ //nolint:wrapcheck
		BookingID:        booking.ID,
		PaymentReference: verification.Reference,
	})
}

func (s *serviceImpl) CreateSession(ctx context.Context, providerName string, req dto.CreateSessionRequest) (res dto.CreateSessionResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".payment.CreateSession")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = validator.ValidateStruct(&req); err != nil {
		return res, err // nolint:wrapcheck
	}

	p, ok := s.providers.Get(providerName)
	if !ok {
		return res, failure.BadRequestFromString(fmt.Sprintf("unknown payment provider %q", providerName)) // nolint:wrapcheck
	}

	creator, ok := p.(provider.SessionCreator)
	if !ok {
		return res, failure.BadRequestFromString(fmt.Sprintf("%s does not use checkout sessions", p.Name())) // nolint:wrapcheck
	}

	booking, err := s.bookings.Get(ctx, req.BookingID)
	if err != nil {
		return res, err // nolint:wrapcheck
	}

	if booking.PaymentMethod != p.Name() {
		return res, failure.BadRequestFromString(fmt.Sprintf("booking is paid with %s, not %s", booking.PaymentMethod, p.Name())) // nolint:wrapcheck
	}

	if booking.Confirmed() {
		return res, failure.BadRequestFromString("booking already confirmed") // nolint:wrapcheck
	}

	session, err := creator.CreateSession(ctx, provider.CheckoutRequest{
		BookingID:     booking.ID,
		Day:           booking.Day,
		Time:          booking.Time,
		Amount:        req.Amount,
		Description:   req.Description,
		CustomerName:  req.CustomerDetails.FirstName + " " + req.CustomerDetails.LastName,
		CustomerEmail: req.CustomerDetails.Email,
	})
	if err != nil {
		log.Error().Err(err).Str("provider", p.Name()).Str("bookingId", booking.ID).Msg("failed to create checkout session")

		return res, failure.ServiceUnavailable("payment provider unavailable") // nolint:wrapcheck
	}

	return dto.CreateSessionResponse{
		PaymentURL: session.URL,
		ID:         session.ID,
		Status:     session.Status,
	}, nil
}
