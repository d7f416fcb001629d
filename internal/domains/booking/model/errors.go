package model

import "errors"

var (
	ErrInvalidSlot      = errors.New("invalid slot")
	ErrSlotTaken        = errors.New("slot already booked")
	ErrNotFound         = errors.New("booking not found")
	ErrConfirmed        = errors.New("booking already confirmed")
	ErrStatusChanged    = errors.New("booking status changed concurrently")
	ErrStoreUnavailable = errors.New("booking store unavailable")
)
