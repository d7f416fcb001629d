package repository

import (
	"context"
	"errors"
	"lessons/infras/s3"
	"lessons/internal/domains/booking/model"
)

// objectDocument keeps the ledger in one bucket object and uses its ETag as the version.
// Conditional puts make the version check atomic on the storage side.
type objectDocument struct {
	objects s3.S3
	key     string
}

func NewObjectDocument(objects s3.S3, key string) Document {
	return &objectDocument{objects: objects, key: key}
}

func (d *objectDocument) Load(ctx context.Context) ([]model.Booking, string, error) {
	obj, err := d.objects.GetObject(ctx, d.key)
	if errors.Is(err, s3.ErrObjectNotFound) {
		return []model.Booking{}, "", nil
	}

	if err != nil {
		return nil, "", err //nolint:wrapcheck
	}

	bookings, err := decodeLedger(obj.Body)
	if err != nil {
		return nil, "", err
	}

	return bookings, obj.ETag, nil
}

func (d *objectDocument) Save(ctx context.Context, bookings []model.Booking, version string) error {
	data, err := encodeLedger(bookings)
	if err != nil {
		return err
	}

	_, err = d.objects.PutObject(ctx, d.key, data, version)
	if errors.Is(err, s3.ErrPreconditionFailed) {
		return ErrVersionConflict
	}

	return err //nolint:wrapcheck
}
