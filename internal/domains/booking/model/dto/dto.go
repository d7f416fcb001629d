package dto

import (
	"lessons/internal/domains/booking/model"
	"time"
)

const (
	EventBookingCreated   = "booking.created"
	EventBookingConfirmed = "booking.confirmed"
	EventBookingDeleted   = "booking.deleted"
)

type CreateBookingRequest struct {
	Day              string  `json:"day"                        validate:"required,lessonday"`
	Time             string  `json:"time"                       validate:"required,lessontime"`
	PaymentMethod    string  `json:"paymentMethod"              validate:"required,notblank,max=50"`
	PaymentReference *string `json:"paymentReference,omitempty" validate:"omitempty,max=255"`
}

func (c *CreateBookingRequest) ToModel(now time.Time) model.Booking {
	return model.New(c.Day, c.Time, c.PaymentMethod, c.PaymentReference, now)
}

type ConfirmPaymentRequest struct {
	BookingID        string `json:"bookingId"        validate:"required,notblank"`
	PaymentReference string `json:"paymentReference" validate:"required,notblank,max=255"`
}

type DeleteBookingRequest struct {
	BookingID string `json:"bookingId" validate:"required,notblank"`
}

type DeleteBookingResponse struct {
	Success bool `json:"success"`
}

// BookingEvent is published on every ledger transition.
type BookingEvent struct {
	Type       string        `json:"type"`
	Booking    model.Booking `json:"booking"`
	OccurredAt time.Time     `json:"occurredAt"`
}
