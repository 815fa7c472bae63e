package storage

import (
	"context"
	"encoding/json"
	"errors"
	"os"

	"github.com/dreamsourcil/booking/internal/domain"
)

// FileStore keeps the booking collection in a single JSON file. A missing
// file means an empty collection; an unreadable or malformed file is a
// StorageError. Saves go through a temp file plus rename so a crashed
// write never leaves a half-written collection behind.
type FileStore struct {
	path string
}

func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

func (s *FileStore) LoadAll(_ context.Context) ([]domain.Booking, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return []domain.Booking{}, nil
	}
	if err != nil {
		return nil, &domain.StorageError{Op: "read", Err: err}
	}

	var records []bookingRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, &domain.StorageError{Op: "decode", Err: err}
	}

	bookings := make([]domain.Booking, 0, len(records))
	for _, rec := range records {
		b, err := rec.toBooking()
		if err != nil {
			return nil, &domain.StorageError{Op: "decode", Err: err}
		}
		bookings = append(bookings, b)
	}
	return bookings, nil
}

func (s *FileStore) SaveAll(_ context.Context, bookings []domain.Booking) error {
	records := make([]bookingRecord, 0, len(bookings))
	for _, b := range bookings {
		records = append(records, toRecord(b))
	}

	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return &domain.StorageError{Op: "encode", Err: err}
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return &domain.StorageError{Op: "write", Err: err}
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return &domain.StorageError{Op: "write", Err: err}
	}
	return nil
}

var _ BookingStore = (*FileStore)(nil)
