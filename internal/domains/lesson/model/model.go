package model

import (
	"lessons/shared/model"
	"time"
)

const (
	TableName  = "lesson_bookings"
	EntityName = "lesson_booking"

	FieldID         = "id"
	FieldUserID     = "user_id"
	FieldLessonDate = "lesson_date"
	FieldLessonType = "lesson_type"
	FieldStatus     = "status"
)

const (
	StatusPending   = "pending"
	StatusConfirmed = "confirmed"
	StatusCancelled = "cancelled"
)

// LessonBooking is a lesson a signed-in user asked for. It is independent of the slot ledger.
type LessonBooking struct {
	ID         string    `db:"id"`
	UserID     string    `db:"user_id"`
	LessonDate time.Time `db:"lesson_date"`
	LessonType string    `db:"lesson_type"`
	Status     string    `db:"status"`
	model.Metadata
}
