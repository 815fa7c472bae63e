package availability

import (
	"github.com/dreamsourcil/booking/internal/domain"
	"github.com/dreamsourcil/booking/internal/schedule"
)

// closingToleranceMinutes lets a slot end up to one minute past closing
// time. Inherited boundary-rounding behavior; do not change it.
const closingToleranceMinutes = 1

// Slot labels one candidate start time for a given date and duration.
// Blocked entries are kept so the caller can render them greyed out.
type Slot struct {
	Start     domain.TimeOfDay
	Available bool
}

// Engine answers availability questions against the committed booking
// set. It holds no state besides the policy; callers pass the freshly
// loaded bookings on every query.
type Engine struct {
	policy *schedule.Policy
}

func NewEngine(policy *schedule.Policy) *Engine {
	return &Engine{policy: policy}
}

// WithinHours reports whether a slot of the given duration fits the
// business hours: it must not start before opening and must not end more
// than the tolerance past closing.
func (e *Engine) WithinHours(start domain.TimeOfDay, durationMinutes int) bool {
	if durationMinutes <= 0 {
		return false
	}
	if start < e.policy.Opening() {
		return false
	}
	end := start.Add(durationMinutes)
	return end <= e.policy.Closing().Add(closingToleranceMinutes)
}

// IsSlotAvailable reports whether the candidate slot is inside business
// hours and free of overlap with every existing booking on the same date.
func (e *Engine) IsSlotAvailable(date domain.Date, start domain.TimeOfDay, durationMinutes int, existing []domain.Booking) bool {
	if !e.WithinHours(start, durationMinutes) {
		return false
	}
	candidate := domain.Interval{Start: start, End: start.Add(durationMinutes)}
	for _, b := range existing {
		if b.Date != date {
			continue
		}
		if candidate.Overlaps(b.Interval()) {
			return false
		}
	}
	return true
}

// Slots evaluates every candidate start time from the policy for the
// given date and duration, in ascending order. A date whose weekday is
// closed yields no slots at all.
func (e *Engine) Slots(date domain.Date, durationMinutes int, existing []domain.Booking) []Slot {
	if !e.policy.IsOpenDay(date) {
		return nil
	}
	times := e.policy.CandidateStartTimes()
	slots := make([]Slot, 0, len(times))
	for _, t := range times {
		slots = append(slots, Slot{
			Start:     t,
			Available: e.IsSlotAvailable(date, t, durationMinutes, existing),
		})
	}
	return slots
}
