package model

import (
	"time"

	"github.com/google/uuid"
)

const (
	TableName  = "slot_bookings"
	EntityName = "booking"

	FieldID               = "id"
	FieldDay              = "slot_day"
	FieldTime             = "slot_time"
	FieldBookedAt         = "booked_at"
	FieldPaymentStatus    = "payment_status"
	FieldPaymentMethod    = "payment_method"
	FieldPaymentReference = "payment_reference"
)

const (
	StatusPending   = "pending"
	StatusConfirmed = "confirmed"
)

// Booking claims one slot. The json tags are the persisted document format.
type Booking struct {
	ID               string    `db:"id"                json:"id"`
	Day              string    `db:"slot_day"          json:"day"`
	Time             string    `db:"slot_time"         json:"time"`
	BookedAt         time.Time `db:"booked_at"         json:"bookedAt"`
	PaymentStatus    string    `db:"payment_status"    json:"paymentStatus"`
	PaymentMethod    string    `db:"payment_method"    json:"paymentMethod"`
	PaymentReference *string   `db:"payment_reference" json:"paymentReference,omitempty"`
}

func New(day, slotTime, paymentMethod string, paymentReference *string, bookedAt time.Time) Booking {
	return Booking{
		ID:               uuid.NewString(),
		Day:              day,
		Time:             slotTime,
		BookedAt:         bookedAt,
		PaymentStatus:    StatusPending,
		PaymentMethod:    paymentMethod,
		PaymentReference: paymentReference,
	}
}

func (b Booking) Confirmed() bool {
	return b.PaymentStatus == StatusConfirmed
}

// Holds reports whether b is the confirmed booking occupying (day, slotTime).
func (b Booking) Holds(day, slotTime string) bool {
	return b.Confirmed() && b.Day == day && b.Time == slotTime
}

// ConfirmedWith reports whether b is confirmed with exactly reference.
func (b Booking) ConfirmedWith(reference string) bool {
	return b.Confirmed() && b.PaymentReference != nil && *b.PaymentReference == reference
}
