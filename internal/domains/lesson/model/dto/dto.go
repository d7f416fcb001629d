package dto

import (
	"lessons/internal/domains/lesson/model"
	"lessons/shared"
	gDto "lessons/shared/dto"
	gModel "lessons/shared/model"
	"lessons/shared/timezone"
	"strings"
	"time"

	"github.com/google/uuid"
)

const lessonDateOnly = time.DateOnly

type CreateLessonBookingRequest struct {
	LessonDate string `json:"lesson_date" validate:"required"`
	LessonType string `json:"lesson_type" validate:"required,notblank,max=100"`
}

// ParseLessonDate accepts RFC3339 timestamps or a plain date in the application timezone.
func ParseLessonDate(value string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}

	return timezone.Parse(lessonDateOnly, value) //nolint:wrapcheck
}

func (c *CreateLessonBookingRequest) ToModel(userID string, now time.Time) (model.LessonBooking, error) {
	lessonDate, err := ParseLessonDate(c.LessonDate)
	if err != nil {
		return model.LessonBooking{}, err
	}

	return model.LessonBooking{
		ID:         uuid.NewString(),
		UserID:     userID,
		LessonDate: lessonDate,
		LessonType: strings.TrimSpace(c.LessonType),
		Status:     model.StatusPending,
		Metadata:   gModel.NewMetadata(now, userID),
	}, nil
}

type LessonBookingResponse struct {
	ID         string `json:"id"`
	UserID     string `json:"user_id"`
	LessonDate string `json:"lesson_date"`
	LessonType string `json:"lesson_type"`
	Status     string `json:"status"`
	gDto.Metadata
}

func (r *LessonBookingResponse) FromModel(model model.LessonBooking) {
	r.ID = model.ID
	r.UserID = model.UserID
	r.LessonDate = timezone.Format(model.LessonDate, time.RFC3339)
	r.LessonType = model.LessonType
	r.Status = model.Status
	r.Metadata.FromModel(model.Metadata)
}

type GetLessonBookingsResponse struct {
	Bookings  []LessonBookingResponse `json:"bookings"`
	TotalPage int                     `json:"total_page"`
	TotalData int                     `json:"total_data"`
}

func (r *GetLessonBookingsResponse) FromModels(models []model.LessonBooking, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Bookings = make([]LessonBookingResponse, len(models))
	for i, mod := range models {
		r.Bookings[i].FromModel(mod)
	}
}
