package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"
	"lessons/config"
	"lessons/infras/otel"
	"lessons/infras/postgres"
	"lessons/infras/s3"
	"lessons/internal/domains/booking/model"
)

const (
	DriverPostgres = "postgres"
	DriverFile     = "file"
	DriverS3       = "s3"
	DriverMemory   = "memory"
)

// Booking is the ledger store. Every write is atomic and keeps at most one confirmed
// booking per slot. Failures to reach the backend are wrapped in model.ErrStoreUnavailable.
type Booking interface {
	// List returns every booking, newest first.
	List(ctx context.Context) ([]model.Booking, error)
	ListConfirmed(ctx context.Context, day string) ([]model.Booking, error)
	// Get returns model.ErrNotFound when id is unknown.
	Get(ctx context.Context, id string) (model.Booking, error)
	// Insert stores a pending booking, failing with model.ErrSlotTaken while the slot is held.
	Insert(ctx context.Context, booking model.Booking) error
	// Confirm moves a pending booking to confirmed. It fails with model.ErrNotFound,
	// model.ErrStatusChanged when the booking is no longer pending, or model.ErrSlotTaken
	// when another confirmed booking holds the slot.
	Confirm(ctx context.Context, id, reference string) (model.Booking, error)
	// DeletePending fails with model.ErrNotFound or model.ErrConfirmed.
	DeletePending(ctx context.Context, id string) error
}

// New picks the ledger backend named by LEDGER_DRIVER.
func New(cfg *config.Config, db *postgres.Connection, objects s3.S3, otel otel.Otel) (Booking, error) {
	switch cfg.Ledger.Driver {
	case DriverPostgres, "":
		return NewPostgres(db, otel), nil
	case DriverFile:
		return NewDocument(NewFileDocument(cfg.Ledger.FilePath), cfg.Ledger.MaxAttempts, otel), nil
	case DriverS3:
		return NewDocument(NewObjectDocument(objects, cfg.Ledger.ObjectKey), cfg.Ledger.MaxAttempts, otel), nil
	case DriverMemory:
		return NewDocument(NewMemoryDocument(), cfg.Ledger.MaxAttempts, otel), nil
	default:
		return nil, fmt.Errorf("unknown ledger driver %q", cfg.Ledger.Driver)
	}
}

func unavailable(err error) error {
	return fmt.Errorf("%w: %w", model.ErrStoreUnavailable, err)
}
