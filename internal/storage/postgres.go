package storage

import (
	"context"

	"github.com/dreamsourcil/booking/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PGStore implements the same full-replace contract on Postgres for
// deployments that already run one. SaveAll rewrites the table inside a
// single transaction; with one provider and one calendar the volume
// stays tiny, so no diffing is worth the complexity.
type PGStore struct {
	db *pgxpool.Pool
}

func NewPGStore(db *pgxpool.Pool) *PGStore {
	return &PGStore{db: db}
}

func (s *PGStore) LoadAll(ctx context.Context) ([]domain.Booking, error) {
	rows, err := s.db.Query(ctx, `SELECT booking_date, start_time, duration_minutes, service FROM bookings ORDER BY booking_date, start_time`)
	if err != nil {
		return nil, &domain.StorageError{Op: "query", Err: err}
	}
	defer rows.Close()

	bookings := make([]domain.Booking, 0)
	for rows.Next() {
		var rec bookingRecord
		if err := rows.Scan(&rec.Date, &rec.Time, &rec.Duration, &rec.Service); err != nil {
			return nil, &domain.StorageError{Op: "scan", Err: err}
		}
		b, err := rec.toBooking()
		if err != nil {
			return nil, &domain.StorageError{Op: "decode", Err: err}
		}
		bookings = append(bookings, b)
	}
	if err := rows.Err(); err != nil {
		return nil, &domain.StorageError{Op: "query", Err: err}
	}
	return bookings, nil
}

func (s *PGStore) SaveAll(ctx context.Context, bookings []domain.Booking) error {
	tx, err := s.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return &domain.StorageError{Op: "begin", Err: err}
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `DELETE FROM bookings`); err != nil {
		return &domain.StorageError{Op: "replace", Err: err}
	}

	batch := &pgx.Batch{}
	for _, b := range bookings {
		rec := toRecord(b)
		batch.Queue(`INSERT INTO bookings (booking_date, start_time, duration_minutes, service) VALUES ($1, $2, $3, $4)`,
			rec.Date, rec.Time, rec.Duration, rec.Service)
	}
	br := tx.SendBatch(ctx, batch)
	for range bookings {
		if _, err := br.Exec(); err != nil {
			br.Close()
			return &domain.StorageError{Op: "insert", Err: err}
		}
	}
	if err := br.Close(); err != nil {
		return &domain.StorageError{Op: "insert", Err: err}
	}

	if err := tx.Commit(ctx); err != nil {
		return &domain.StorageError{Op: "commit", Err: err}
	}
	return nil
}

var _ BookingStore = (*PGStore)(nil)
