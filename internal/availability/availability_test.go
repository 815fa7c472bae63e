package availability

import (
	"testing"
	"time"

	"github.com/dreamsourcil/booking/internal/domain"
	"github.com/dreamsourcil/booking/internal/schedule"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestEngine(t *testing.T) *Engine {
	t.Helper()
	policy, err := schedule.NewPolicy(schedule.Config{
		OpenWeekdays:    []string{"Tuesday", "Thursday", "Friday", "Saturday"},
		Opening:         "09:30",
		Closing:         "15:45",
		SlotStepMinutes: 15,
		LookaheadDays:   35,
	})
	require.NoError(t, err)
	return NewEngine(policy)
}

func mustTime(t *testing.T, s string) domain.TimeOfDay {
	t.Helper()
	tod, err := domain.ParseTimeOfDay(s)
	require.NoError(t, err)
	return tod
}

var openTuesday = domain.NewDate(2026, time.September, 1)

func TestEngine_WithinHours(t *testing.T) {
	engine := newTestEngine(t)

	testCases := []struct {
		name     string
		start    string
		duration int
		ok       bool
	}{
		{"at opening", "09:30", 30, true},
		{"before opening", "09:15", 30, false},
		{"ends exactly at closing", "15:15", 30, true},
		{"ends one minute past closing", "15:16", 30, true}, // tolerance
		{"ends two minutes past closing", "15:17", 30, false},
		{"ends well past closing", "15:30", 30, false},
		{"zero duration", "10:00", 0, false},
		{"negative duration", "10:00", -15, false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.ok, engine.WithinHours(mustTime(t, tc.start), tc.duration))
		})
	}
}

func TestEngine_IsSlotAvailable_EmptyCalendar(t *testing.T) {
	engine := newTestEngine(t)

	assert.True(t, engine.IsSlotAvailable(openTuesday, mustTime(t, "09:30"), 30, nil))
}

func TestEngine_IsSlotAvailable_Conflicts(t *testing.T) {
	engine := newTestEngine(t)

	existing := []domain.Booking{
		{Date: openTuesday, Start: mustTime(t, "09:30"), DurationMinutes: 30, Service: "Classic Brow"},
	}

	// Same slot again is blocked.
	assert.False(t, engine.IsSlotAvailable(openTuesday, mustTime(t, "09:30"), 30, existing))
	// Partial overlap on either side is blocked.
	assert.False(t, engine.IsSlotAvailable(openTuesday, mustTime(t, "09:45"), 30, existing))
	assert.False(t, engine.IsSlotAvailable(openTuesday, mustTime(t, "09:15"), 30, existing))
	// Back-to-back is fine: intervals are half-open.
	assert.True(t, engine.IsSlotAvailable(openTuesday, mustTime(t, "10:00"), 30, existing))
	// A booking on another date never blocks.
	otherDay := openTuesday.AddDays(2)
	assert.True(t, engine.IsSlotAvailable(otherDay, mustTime(t, "09:30"), 30, existing))
}

func TestEngine_IsSlotAvailable_ClosingBoundary(t *testing.T) {
	engine := newTestEngine(t)

	// 15:30 + 30min ends 16:00, fifteen minutes past the 15:45 closing.
	assert.False(t, engine.IsSlotAvailable(openTuesday, mustTime(t, "15:30"), 30, nil))
	// 15:15 + 30min ends exactly at closing.
	assert.True(t, engine.IsSlotAvailable(openTuesday, mustTime(t, "15:15"), 30, nil))
}

func TestEngine_Slots_MatchesCandidateTimes(t *testing.T) {
	engine := newTestEngine(t)

	existing := []domain.Booking{
		{Date: openTuesday, Start: mustTime(t, "11:00"), DurationMinutes: 45, Service: "Henna Brow"},
	}

	slots := engine.Slots(openTuesday, 30, existing)
	times := engine.policy.CandidateStartTimes()
	require.Len(t, slots, len(times))

	for i, slot := range slots {
		assert.Equal(t, times[i], slot.Start)
		assert.Equal(t, engine.IsSlotAvailable(openTuesday, slot.Start, 30, existing), slot.Available)
	}
}

func TestEngine_Slots_ClosedWeekday(t *testing.T) {
	engine := newTestEngine(t)

	// 2026-08-31 is a Monday, not in the open set.
	closedMonday := domain.NewDate(2026, time.August, 31)
	assert.Empty(t, engine.Slots(closedMonday, 30, nil))
}

func TestEngine_Slots_BookThenRequestAgain(t *testing.T) {
	engine := newTestEngine(t)

	slots := engine.Slots(openTuesday, 30, nil)
	require.NotEmpty(t, slots)
	assert.Equal(t, mustTime(t, "09:30"), slots[0].Start)
	assert.True(t, slots[0].Available)

	booked := []domain.Booking{
		{Date: openTuesday, Start: mustTime(t, "09:30"), DurationMinutes: 30, Service: "Classic Brow"},
	}
	slots = engine.Slots(openTuesday, 30, booked)
	assert.False(t, slots[0].Available)
}
