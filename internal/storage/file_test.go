package storage

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/dreamsourcil/booking/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testBookings() []domain.Booking {
	return []domain.Booking{
		{Date: domain.NewDate(2026, time.September, 1), Start: 570, DurationMinutes: 30, Service: "Classic Brow"},
		{Date: domain.NewDate(2026, time.September, 3), Start: 600, DurationMinutes: 45, Service: "Henna Brow"},
	}
}

func TestFileStore_LoadAll_MissingFile(t *testing.T) {
	store := NewFileStore(filepath.Join(t.TempDir(), "bookings.json"))

	bookings, err := store.LoadAll(context.Background())
	assert.NoError(t, err)
	assert.Empty(t, bookings)
}

func TestFileStore_SaveAllLoadAll_RoundTrip(t *testing.T) {
	store := NewFileStore(filepath.Join(t.TempDir(), "bookings.json"))
	ctx := context.Background()

	require.NoError(t, store.SaveAll(ctx, testBookings()))

	loaded, err := store.LoadAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, testBookings(), loaded)
}

func TestFileStore_SaveAll_Idempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bookings.json")
	store := NewFileStore(path)
	ctx := context.Background()

	require.NoError(t, store.SaveAll(ctx, testBookings()))
	first, err := os.ReadFile(path)
	require.NoError(t, err)

	loaded, err := store.LoadAll(ctx)
	require.NoError(t, err)
	require.NoError(t, store.SaveAll(ctx, loaded))

	second, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, first, second, "saveAll(loadAll()) must leave the collection unchanged")
}

func TestFileStore_LoadAll_CorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bookings.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	store := NewFileStore(path)
	_, err := store.LoadAll(context.Background())
	require.Error(t, err)

	var storageErr *domain.StorageError
	assert.ErrorAs(t, err, &storageErr)
}

func TestFileStore_LoadAll_MalformedRecord(t *testing.T) {
	testCases := []struct {
		name    string
		payload string
	}{
		{"bad time", `[{"date": "2026-09-01", "time": "9h30", "duration": 30, "service": "Classic Brow"}]`},
		{"bad date", `[{"date": "01/09/2026", "time": "09:30", "duration": 30, "service": "Classic Brow"}]`},
		// A duration of 0 makes the interval overlap nothing, so a second
		// booking could silently land on the same start time.
		{"zero duration", `[{"date": "2026-09-01", "time": "09:30", "duration": 0, "service": "Classic Brow"}]`},
		{"negative duration", `[{"date": "2026-09-01", "time": "09:30", "duration": -15, "service": "Classic Brow"}]`},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "bookings.json")
			require.NoError(t, os.WriteFile(path, []byte(tc.payload), 0o644))

			store := NewFileStore(path)
			_, err := store.LoadAll(context.Background())
			require.Error(t, err)

			var storageErr *domain.StorageError
			assert.ErrorAs(t, err, &storageErr)
		})
	}
}

func TestFileStore_SaveAll_WireFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bookings.json")
	store := NewFileStore(path)
	ctx := context.Background()

	require.NoError(t, store.SaveAll(ctx, testBookings()[:1]))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.JSONEq(t, `[{"date": "2026-09-01", "time": "09:30", "duration": 30, "service": "Classic Brow"}]`, string(data))
}

func TestFileStore_SaveAll_LeavesNoTempFile(t *testing.T) {
	dir := t.TempDir()
	store := NewFileStore(filepath.Join(dir, "bookings.json"))

	require.NoError(t, store.SaveAll(context.Background(), testBookings()))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "bookings.json", entries[0].Name())
}
