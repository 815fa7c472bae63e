package storage

import (
	"context"
	"fmt"

	"github.com/dreamsourcil/booking/internal/domain"
)

// BookingStore is the durable owner of the booking collection. There is
// no partial update: appends are load-modify-save on the caller's side,
// which is why the booking service serializes its commit path.
type BookingStore interface {
	// LoadAll returns the full persisted collection, empty if nothing has
	// been persisted yet. Order is not guaranteed.
	LoadAll(ctx context.Context) ([]domain.Booking, error)

	// SaveAll replaces the entire persisted collection. The replacement is
	// atomic from the caller's point of view: readers never observe a
	// partial write.
	SaveAll(ctx context.Context, bookings []domain.Booking) error
}

// bookingRecord is the persisted wire form: ISO date, 24-hour HH:MM,
// integer minutes and a free-text label. No schema version field.
type bookingRecord struct {
	Date     string `json:"date"`
	Time     string `json:"time"`
	Duration int    `json:"duration"`
	Service  string `json:"service"`
}

func toRecord(b domain.Booking) bookingRecord {
	return bookingRecord{
		Date:     b.Date.String(),
		Time:     b.Start.String(),
		Duration: b.DurationMinutes,
		Service:  b.Service,
	}
}

func (r bookingRecord) toBooking() (domain.Booking, error) {
	date, err := domain.ParseDate(r.Date)
	if err != nil {
		return domain.Booking{}, err
	}
	start, err := domain.ParseTimeOfDay(r.Time)
	if err != nil {
		return domain.Booking{}, err
	}
	// A zero-length interval overlaps nothing, so a hand-edited record
	// with duration 0 would let a second booking share its start time.
	if r.Duration <= 0 {
		return domain.Booking{}, fmt.Errorf("duration must be positive, got %d", r.Duration)
	}
	return domain.Booking{
		Date:            date,
		Start:           start,
		DurationMinutes: r.Duration,
		Service:         r.Service,
	}, nil
}
