package model_test

import (
	"lessons/internal/domains/booking/model"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestValidateSlot(t *testing.T) {
	tests := []struct {
		name    string
		day     string
		time    string
		wantErr bool
	}{
		{name: "first lesson of the day", day: "Monday", time: "1:00 PM"},
		{name: "late evening", day: "Saturday", time: "11:00 PM"},
		{name: "midnight closes the band", day: "Sunday", time: "12:00 AM"},
		{name: "unknown day", day: "Funday", time: "1:00 PM", wantErr: true},
		{name: "lower case day", day: "monday", time: "1:00 PM", wantErr: true},
		{name: "morning hour", day: "Monday", time: "9:00 AM", wantErr: true},
		{name: "noon is outside the band", day: "Monday", time: "12:00 PM", wantErr: true},
		{name: "half hour", day: "Monday", time: "2:30 PM", wantErr: true},
		{name: "leading zero", day: "Monday", time: "02:00 PM", wantErr: true},
		{name: "24 hour clock", day: "Monday", time: "14:00", wantErr: true},
		{name: "empty time", day: "Monday", time: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := model.ValidateSlot(tt.day, tt.time)

			if tt.wantErr {
				assert.ErrorIs(t, err, model.ErrInvalidSlot)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestSchedule(t *testing.T) {
	ref := "REF123"
	now := time.Now()

	confirmed := model.New("Monday", "2:00 PM", "paypal", nil, now)
	confirmed.PaymentStatus = model.StatusConfirmed
	confirmed.PaymentReference = &ref

	pending := model.New("Monday", "3:00 PM", "stripe", nil, now)
	otherDay := model.New("Tuesday", "4:00 PM", "stripe", nil, now)
	otherDay.PaymentStatus = model.StatusConfirmed

	slots := model.Schedule("Monday", []model.Booking{confirmed, pending, otherDay})

	assert.Len(t, slots, len(model.Times()))
	assert.Equal(t, model.Slot{Day: "Monday", Time: "1:00 PM", Available: true}, slots[0])

	for _, slot := range slots {
		assert.Equal(t, "Monday", slot.Day)
		assert.Equal(t, slot.Time != "2:00 PM", slot.Available, slot.Time)
	}
}

func TestSlotHeld(t *testing.T) {
	held := model.New("Friday", "8:00 PM", "checkout", nil, time.Now())
	held.PaymentStatus = model.StatusConfirmed

	bookings := []model.Booking{held}

	assert.True(t, model.SlotHeld(bookings, "Friday", "8:00 PM", ""))
	assert.False(t, model.SlotHeld(bookings, "Friday", "8:00 PM", held.ID))
	assert.False(t, model.SlotHeld(bookings, "Friday", "9:00 PM", ""))
}

func TestBookingState(t *testing.T) {
	ref := "pi_123"

	b := model.New("Wednesday", "5:00 PM", "stripe", nil, time.Now())
	assert.Equal(t, model.StatusPending, b.PaymentStatus)
	assert.NotEmpty(t, b.ID)
	assert.False(t, b.Confirmed())
	assert.False(t, b.ConfirmedWith(ref))

	b.PaymentStatus = model.StatusConfirmed
	b.PaymentReference = &ref

	assert.True(t, b.ConfirmedWith("pi_123"))
	assert.False(t, b.ConfirmedWith("pi_456"))
	assert.True(t, b.Holds("Wednesday", "5:00 PM"))
}

func TestDaysAndTimesAreCopies(t *testing.T) {
	d := model.Days()
	d[0] = "Funday"

	assert.False(t, model.ValidDay("Funday"))
	assert.Equal(t, "Sunday", model.Days()[0])
	assert.Equal(t, "12:00 AM", model.Times()[len(model.Times())-1])
}
