package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"lessons/internal/domains/booking/model"
	"os"
	"path/filepath"

	"github.com/cespare/xxhash/v2"
)

const (
	fileDirPerm  = 0o755
	fileDocPerm  = 0o644
	fileTempGlob = ".bookings-*.tmp"
)

// fileDocument keeps the ledger in one local JSON file. The version is a fingerprint of the
// file contents and writes go through a temp file renamed over the original, so readers never
// see a partial array. The version check and the rename are not atomic across processes.
type fileDocument struct {
	path string
}

func NewFileDocument(path string) Document {
	return &fileDocument{path: path}
}

func fingerprint(data []byte) string {
	return fmt.Sprintf("%016x", xxhash.Sum64(data))
}

func (d *fileDocument) read() ([]byte, string, error) {
	data, err := os.ReadFile(d.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, "", nil
	}

	if err != nil {
		return nil, "", fmt.Errorf("failed to read ledger file: %w", err)
	}

	return data, fingerprint(data), nil
}

func (d *fileDocument) Load(_ context.Context) ([]model.Booking, string, error) {
	data, version, err := d.read()
	if err != nil {
		return nil, "", err
	}

	bookings, err := decodeLedger(data)
	if err != nil {
		return nil, "", err
	}

	return bookings, version, nil
}

func (d *fileDocument) Save(_ context.Context, bookings []model.Booking, version string) error {
	_, current, err := d.read()
	if err != nil {
		return err
	}

	if current != version {
		return ErrVersionConflict
	}

	data, err := encodeLedger(bookings)
	if err != nil {
		return err
	}

	dir := filepath.Dir(d.path)
	if err = os.MkdirAll(dir, fileDirPerm); err != nil {
		return fmt.Errorf("failed to create ledger directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, fileTempGlob)
	if err != nil {
		return fmt.Errorf("failed to create ledger temp file: %w", err)
	}
	defer os.Remove(tmp.Name()) //nolint:errcheck

	if _, err = tmp.Write(data); err != nil {
		tmp.Close()

		return fmt.Errorf("failed to write ledger temp file: %w", err)
	}

	if err = tmp.Sync(); err != nil {
		tmp.Close()

		return fmt.Errorf("failed to sync ledger temp file: %w", err)
	}

	if err = tmp.Close(); err != nil {
		return fmt.Errorf("failed to close ledger temp file: %w", err)
	}

	if err = os.Chmod(tmp.Name(), fileDocPerm); err != nil {
		return fmt.Errorf("failed to set ledger file mode: %w", err)
	}

	if err = os.Rename(tmp.Name(), d.path); err != nil {
		return fmt.Errorf("failed to replace ledger file: %w", err)
	}

	return nil
}

func decodeLedger(data []byte) ([]model.Booking, error) {
	bookings := []model.Booking{}
	if len(data) == 0 {
		return bookings, nil
	}

	if err := json.Unmarshal(data, &bookings); err != nil {
		return nil, fmt.Errorf("failed to decode ledger: %w", err)
	}

	return bookings, nil
}

func encodeLedger(bookings []model.Booking) ([]byte, error) {
	if bookings == nil {
		bookings = []model.Booking{}
	}

	data, err := json.MarshalIndent(bookings, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode ledger: %w", err)
	}

	return data, nil
}
