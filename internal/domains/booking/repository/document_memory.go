package repository

import (
	"context"
	"lessons/internal/domains/booking/model"
	"strconv"
	"sync"
)

// memoryDocument holds the encoded ledger in process. Useful for local runs and tests.
type memoryDocument struct {
	mu      sync.Mutex
	data    []byte
	version int
}

func NewMemoryDocument() Document {
	return &memoryDocument{}
}

func (d *memoryDocument) Load(_ context.Context) ([]model.Booking, string, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	bookings, err := decodeLedger(d.data)
	if err != nil {
		return nil, "", err
	}

	return bookings, strconv.Itoa(d.version), nil
}

func (d *memoryDocument) Save(_ context.Context, bookings []model.Booking, version string) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if version != strconv.Itoa(d.version) {
		return ErrVersionConflict
	}

	data, err := encodeLedger(bookings)
	if err != nil {
		return err
	}

	d.data = data
	d.version++

	return nil
}
