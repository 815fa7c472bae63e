package schedule

import (
	"errors"
	"fmt"
	"time"

	"github.com/dreamsourcil/booking/internal/domain"
)

// Config holds the raw scheduling policy values, typically read from the
// yaml config file. Times are 24-hour "HH:MM" strings, weekdays English
// names ("Tuesday"). Tests construct alternate business hours directly.
type Config struct {
	OpenWeekdays    []string
	Opening         string
	Closing         string
	SlotStepMinutes int
	LookaheadDays   int
}

// Policy is the immutable scheduling configuration plus its derived
// queries. It is fixed for the process lifetime.
type Policy struct {
	openDays      map[time.Weekday]bool
	opening       domain.TimeOfDay
	closing       domain.TimeOfDay
	stepMinutes   int
	lookaheadDays int
}

var weekdayNames = map[string]time.Weekday{
	"Sunday":    time.Sunday,
	"Monday":    time.Monday,
	"Tuesday":   time.Tuesday,
	"Wednesday": time.Wednesday,
	"Thursday":  time.Thursday,
	"Friday":    time.Friday,
	"Saturday":  time.Saturday,
}

func NewPolicy(cfg Config) (*Policy, error) {
	if len(cfg.OpenWeekdays) == 0 {
		return nil, errors.New("at least one open weekday is required")
	}
	if cfg.SlotStepMinutes <= 0 {
		return nil, errors.New("slot step must be positive")
	}
	if cfg.LookaheadDays <= 0 {
		return nil, errors.New("lookahead days must be positive")
	}

	openDays := make(map[time.Weekday]bool, len(cfg.OpenWeekdays))
	for _, name := range cfg.OpenWeekdays {
		day, ok := weekdayNames[name]
		if !ok {
			return nil, fmt.Errorf("unknown weekday %q", name)
		}
		openDays[day] = true
	}

	opening, err := domain.ParseTimeOfDay(cfg.Opening)
	if err != nil {
		return nil, fmt.Errorf("opening time: %w", err)
	}
	closing, err := domain.ParseTimeOfDay(cfg.Closing)
	if err != nil {
		return nil, fmt.Errorf("closing time: %w", err)
	}
	if closing <= opening {
		return nil, errors.New("closing time must be after opening time")
	}

	return &Policy{
		openDays:      openDays,
		opening:       opening,
		closing:       closing,
		stepMinutes:   cfg.SlotStepMinutes,
		lookaheadDays: cfg.LookaheadDays,
	}, nil
}

func (p *Policy) Opening() domain.TimeOfDay { return p.opening }
func (p *Policy) Closing() domain.TimeOfDay { return p.closing }
func (p *Policy) LookaheadDays() int        { return p.lookaheadDays }

// IsOpenDay reports whether the date's weekday is in the open set.
func (p *Policy) IsOpenDay(d domain.Date) bool {
	return p.openDays[d.Weekday()]
}

// CandidateStartTimes returns every time of day from opening to closing
// inclusive, stepped by the slot granularity, ascending.
func (p *Policy) CandidateStartTimes() []domain.TimeOfDay {
	var times []domain.TimeOfDay
	for t := p.opening; t <= p.closing; t = t.Add(p.stepMinutes) {
		times = append(times, t)
	}
	return times
}

// CandidateDays returns every open date in [today, today+lookaheadDays),
// ascending.
func (p *Policy) CandidateDays(today domain.Date, lookaheadDays int) []domain.Date {
	var days []domain.Date
	for i := 0; i < lookaheadDays; i++ {
		d := today.AddDays(i)
		if p.IsOpenDay(d) {
			days = append(days, d)
		}
	}
	return days
}
