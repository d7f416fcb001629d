package repository

import (
	"context"
	"errors"
	"fmt"
	"lessons/infras/otel"
	"lessons/internal/domains/booking/model"
	"lessons/shared/constant"
	"slices"
	"sync"

	"github.com/rs/zerolog/log"
)

const defaultMaxAttempts = 5

var ErrVersionConflict = errors.New("ledger document changed since it was loaded")

// Document stores the whole ledger as one JSON array. Save must fail with ErrVersionConflict
// when the stored document no longer has the version returned by Load.
type Document interface {
	Load(ctx context.Context) (bookings []model.Booking, version string, err error)
	Save(ctx context.Context, bookings []model.Booking, version string) error
}

// documentImpl serializes writers inside the process and relies on the document version
// check to detect writers outside it.
type documentImpl struct {
	doc         Document
	mu          sync.Mutex
	maxAttempts int
	otel        otel.Otel
}

func NewDocument(doc Document, maxAttempts int, otel otel.Otel) Booking {
	if maxAttempts <= 0 {
		maxAttempts = defaultMaxAttempts
	}

	return &documentImpl{
		doc:         doc,
		maxAttempts: maxAttempts,
		otel:        otel,
	}
}

func (r *documentImpl) load(ctx context.Context) ([]model.Booking, string, error) {
	bookings, version, err := r.doc.Load(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to load booking ledger")

		return nil, "", unavailable(err)
	}

	return bookings, version, nil
}

// mutate runs a read-modify-write cycle, reloading and reapplying fn whenever another
// writer saved in between. fn must not keep references to the slice it receives.
func (r *documentImpl) mutate(ctx context.Context, fn func([]model.Booking) ([]model.Booking, error)) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for attempt := 1; attempt <= r.maxAttempts; attempt++ {
		bookings, version, err := r.load(ctx)
		if err != nil {
			return err
		}

		next, err := fn(bookings)
		if err != nil {
			return err
		}

		err = r.doc.Save(ctx, next, version)
		if err == nil {
			return nil
		}

		if !errors.Is(err, ErrVersionConflict) {
			log.Error().Err(err).Msg("failed to save booking ledger")

			return unavailable(err)
		}

		log.Warn().Int("attempt", attempt).Msg("booking ledger changed concurrently, retrying")
	}

	return unavailable(fmt.Errorf("ledger still contended after %d attempts", r.maxAttempts))
}

func (r *documentImpl) List(ctx context.Context) (res []model.Booking, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".booking.List")
	defer scope.End()
	defer scope.TraceIfError(err)

	bookings, _, err := r.load(ctx)
	if err != nil {
		return nil, err
	}

	// The document is in append order. Reversing first keeps later appends ahead on equal timestamps.
	slices.Reverse(bookings)
	slices.SortStableFunc(bookings, func(a, b model.Booking) int {
		return b.BookedAt.Compare(a.BookedAt)
	})

	return bookings, nil
}

func (r *documentImpl) ListConfirmed(ctx context.Context, day string) (res []model.Booking, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".booking.ListConfirmed")
	defer scope.End()
	defer scope.TraceIfError(err)

	bookings, _, err := r.load(ctx)
	if err != nil {
		return nil, err
	}

	res = []model.Booking{}

	for _, b := range bookings {
		if b.Confirmed() && b.Day == day {
			res = append(res, b)
		}
	}

	return res, nil
}

func (r *documentImpl) Get(ctx context.Context, id string) (res model.Booking, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".booking.Get")
	defer scope.End()

	bookings, _, err := r.load(ctx)
	if err != nil {
		scope.TraceError(err)

		return res, err
	}

	idx := indexOf(bookings, id)
	if idx < 0 {
		return res, model.ErrNotFound
	}

	return bookings[idx], nil
}

func (r *documentImpl) Insert(ctx context.Context, booking model.Booking) (err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".booking.Insert")
	defer scope.End()

	return r.mutate(ctx, func(bookings []model.Booking) ([]model.Booking, error) {
		if model.SlotHeld(bookings, booking.Day, booking.Time, "") {
			return nil, model.ErrSlotTaken
		}

		return append(bookings, booking), nil
	})
}

func (r *documentImpl) Confirm(ctx context.Context, id, reference string) (res model.Booking, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".booking.Confirm")
	defer scope.End()

	err = r.mutate(ctx, func(bookings []model.Booking) ([]model.Booking, error) {
		idx := indexOf(bookings, id)
		if idx < 0 {
			return nil, model.ErrNotFound
		}

		booking := bookings[idx]
		if booking.Confirmed() {
			return nil, model.ErrStatusChanged
		}

		if model.SlotHeld(bookings, booking.Day, booking.Time, booking.ID) {
			return nil, model.ErrSlotTaken
		}

		booking.PaymentStatus = model.StatusConfirmed
		booking.PaymentReference = &reference
		bookings[idx] = booking
		res = booking

		return bookings, nil
	})

	return res, err
}

func (r *documentImpl) DeletePending(ctx context.Context, id string) error {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".booking.DeletePending")
	defer scope.End()

	return r.mutate(ctx, func(bookings []model.Booking) ([]model.Booking, error) {
		idx := indexOf(bookings, id)
		if idx < 0 {
			return nil, model.ErrNotFound
		}

		if bookings[idx].Confirmed() {
			return nil, model.ErrConfirmed
		}

		return slices.Delete(bookings, idx, idx+1), nil
	})
}

func indexOf(bookings []model.Booking, id string) int {
	return slices.IndexFunc(bookings, func(b model.Booking) bool {
		return b.ID == id
	})
}
