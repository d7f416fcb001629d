package model

import (
	"fmt"
	"lessons/shared/validator"
	"regexp"
	"slices"
)

var (
	days = []string{"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday"}

	// 1 PM through 11 PM, then midnight.
	times = []string{
		"1:00 PM", "2:00 PM", "3:00 PM", "4:00 PM", "5:00 PM", "6:00 PM",
		"7:00 PM", "8:00 PM", "9:00 PM", "10:00 PM", "11:00 PM", "12:00 AM",
	}

	timePattern = regexp.MustCompile(`^(1[0-2]|[1-9]):00 (AM|PM)$`)
)

// Slot is a schedule entry for a day. Slots are derived from bookings, never stored.
type Slot struct {
	Day       string `json:"day"`
	Time      string `json:"time"`
	Available bool   `json:"available"`
}

func init() {
	if err := validator.RegisterStringRule("lessonday", "{field} must be a day of the week", ValidDay); err != nil {
		panic(err)
	}

	if err := validator.RegisterStringRule("lessontime", "{field} must be an hour between 1:00 PM and 12:00 AM", ValidTime); err != nil {
		panic(err)
	}
}

func Days() []string {
	return slices.Clone(days)
}

func Times() []string {
	return slices.Clone(times)
}

func ValidDay(day string) bool {
	return slices.Contains(days, day)
}

// ValidTime accepts "H:00 AM|PM" inside the lesson band. 12:00 PM is noon and is outside it.
func ValidTime(slotTime string) bool {
	return timePattern.MatchString(slotTime) && slices.Contains(times, slotTime)
}

func ValidateSlot(day, slotTime string) error {
	if !ValidDay(day) {
		return fmt.Errorf("%w: unknown day %q", ErrInvalidSlot, day)
	}

	if !ValidTime(slotTime) {
		return fmt.Errorf("%w: time %q is outside 1:00 PM to 12:00 AM", ErrInvalidSlot, slotTime)
	}

	return nil
}

// Schedule lists every slot of day. A slot is unavailable only while a confirmed booking holds it.
func Schedule(day string, bookings []Booking) []Slot {
	slots := make([]Slot, 0, len(times))

	for _, t := range times {
		held := slices.ContainsFunc(bookings, func(b Booking) bool {
			return b.Holds(day, t)
		})

		slots = append(slots, Slot{Day: day, Time: t, Available: !held})
	}

	return slots
}

// SlotHeld reports whether any booking other than exceptID holds (day, slotTime).
func SlotHeld(bookings []Booking, day, slotTime, exceptID string) bool {
	return slices.ContainsFunc(bookings, func(b Booking) bool {
		return b.ID != exceptID && b.Holds(day, slotTime)
	})
}
