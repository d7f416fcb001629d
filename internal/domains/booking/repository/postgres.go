package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"lessons/infras/otel"
	"lessons/infras/postgres"
	"lessons/internal/domains/booking/model"
	"lessons/shared"
	"lessons/shared/constant"
	gDto "lessons/shared/dto"
	"lessons/shared/logger"
	gRepo "lessons/shared/repository"

	"github.com/lib/pq"
)

type postgresImpl struct {
	gRepo.Repository[model.Booking]
	db   *postgres.Connection
	otel otel.Otel
}

func NewPostgres(db *postgres.Connection, otel otel.Otel) Booking {
	return &postgresImpl{
		Repository: gRepo.NewRepository[model.Booking](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

func (r *postgresImpl) List(ctx context.Context) ([]model.Booking, error) {
	params := gDto.QueryParams{SortBy: model.FieldBookedAt, SortDir: gDto.SortDirDesc}

	bookings, err := r.Repository.GetAll(ctx, params, gDto.FilterGroup{})
	if err != nil {
		return nil, unavailable(err)
	}

	return bookings, nil
}

func (r *postgresImpl) ListConfirmed(ctx context.Context, day string) ([]model.Booking, error) {
	filter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{Field: model.FieldDay, Operator: gDto.FilterOperatorEq, Value: day, Table: model.TableName},
			gDto.Filter{Field: model.FieldPaymentStatus, Operator: gDto.FilterOperatorEq, Value: model.StatusConfirmed, Table: model.TableName},
		},
	}

	bookings, err := r.Repository.GetAll(ctx, gDto.QueryParams{}, filter)
	if err != nil {
		return nil, unavailable(err)
	}

	return bookings, nil
}

func (r *postgresImpl) Get(ctx context.Context, id string) (model.Booking, error) {
	booking, err := r.Repository.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		return booking, unavailable(err)
	}

	if booking.ID == constant.Empty {
		return booking, model.ErrNotFound
	}

	return booking, nil
}

// Insert only writes when no confirmed booking holds the slot. Pending rows never conflict.
func (r *postgresImpl) Insert(ctx context.Context, booking model.Booking) error {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".booking.Insert")
	defer scope.End()

	query := fmt.Sprintf(`INSERT INTO %[1]s (id, slot_day, slot_time, booked_at, payment_status, payment_method, payment_reference)
		SELECT CAST(:id AS uuid), CAST(:slot_day AS text), CAST(:slot_time AS text), CAST(:booked_at AS timestamptz),
			CAST(:payment_status AS text), CAST(:payment_method AS text), CAST(:payment_reference AS text)
		WHERE NOT EXISTS (
			SELECT 1 FROM %[1]s WHERE slot_day = :slot_day AND slot_time = :slot_time AND payment_status = '%[2]s'
		)`, model.TableName, model.StatusConfirmed)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	result, err := r.db.Write.NamedExecContext(ctx, query, booking)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return unavailable(fmt.Errorf("failed to insert booking: %w", err))
	}

	inserted, err := result.RowsAffected()
	if err != nil {
		return unavailable(err)
	}

	if inserted == 0 {
		return model.ErrSlotTaken
	}

	return nil
}

// Confirm is a compare-and-swap on payment_status. The partial unique index on confirmed
// slots rejects a second confirmation for the same slot.
func (r *postgresImpl) Confirm(ctx context.Context, id, reference string) (booking model.Booking, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".booking.Confirm")
	defer scope.End()

	query := fmt.Sprintf(`UPDATE %s SET payment_status = :confirmed, payment_reference = :reference
		WHERE id = :id AND payment_status = :pending RETURNING %s`, model.TableName, r.SelectColumns())
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	args := map[string]any{
		"id":        id,
		"reference": reference,
		"confirmed": model.StatusConfirmed,
		"pending":   model.StatusPending,
	}

	prepare, err := r.db.Write.PrepareNamedContext(ctx, query)
	if err != nil {
		scope.TraceError(err)

		return booking, unavailable(fmt.Errorf("failed to prepare statement: %w", err))
	}
	defer prepare.Close()

	err = prepare.GetContext(ctx, &booking, args)

	var pqErr *pq.Error
	switch {
	case err == nil:
		return booking, nil
	case errors.As(err, &pqErr) && pqErr.Code == constant.PqErrorCodeUniqueViolation:
		return booking, model.ErrSlotTaken
	case errors.Is(err, sql.ErrNoRows):
		return booking, r.missedTransition(ctx, id)
	default:
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return booking, unavailable(fmt.Errorf("failed to confirm booking: %w", err))
	}
}

func (r *postgresImpl) DeletePending(ctx context.Context, id string) error {
	filter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{Field: model.FieldID, Operator: gDto.FilterOperatorEq, Value: id, Table: model.TableName},
			gDto.Filter{Field: model.FieldPaymentStatus, Operator: gDto.FilterOperatorEq, Value: model.StatusPending, Table: model.TableName},
		},
	}

	deleted, err := r.Repository.DeleteAffected(ctx, filter)
	if err != nil {
		return unavailable(err)
	}

	if deleted > 0 {
		return nil
	}

	err = r.missedTransition(ctx, id)
	if errors.Is(err, model.ErrStatusChanged) {
		return model.ErrConfirmed
	}

	return err
}

// missedTransition explains why a write guarded on the pending status touched no row.
// It reads from the write pool so a replica lagging behind cannot hide the row.
func (r *postgresImpl) missedTransition(ctx context.Context, id string) error {
	query := fmt.Sprintf("SELECT payment_status FROM %s WHERE id = $1", model.TableName)

	var status string

	err := r.db.Write.GetContext(ctx, &status, query, id)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return model.ErrNotFound
	case err != nil:
		return unavailable(fmt.Errorf("failed to read booking status: %w", err))
	default:
		return model.ErrStatusChanged
	}
}
