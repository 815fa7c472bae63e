package scheduling

import (
	"context"
	"errors"
	"log"
	"sync"
	"time"

	"github.com/dreamsourcil/booking/internal/availability"
	"github.com/dreamsourcil/booking/internal/domain"
	"github.com/dreamsourcil/booking/internal/kafka"
	"github.com/dreamsourcil/booking/internal/schedule"
	"github.com/dreamsourcil/booking/internal/storage"
	"github.com/google/uuid"
)

type SchedulingUseCase interface {
	CandidateDays(today domain.Date) []domain.Date
	Slots(ctx context.Context, date domain.Date, durationMinutes int) ([]availability.Slot, error)
	Book(ctx context.Context, input BookInput) (*domain.Booking, error)
}

// Locker is the optional cross-instance slot lock (redis in production).
type Locker interface {
	AcquireSlotLock(ctx context.Context, date domain.Date, start domain.TimeOfDay, ttl time.Duration) (bool, error)
	ReleaseSlotLock(ctx context.Context, date domain.Date, start domain.TimeOfDay) error
}

type Producer interface {
	Publish(ctx context.Context, topic, key string, value interface{}) error
}

type BookInput struct {
	Date            domain.Date
	Start           domain.TimeOfDay
	DurationMinutes int
	Service         string
}

// Service orchestrates the commit path: it re-validates availability
// against the freshly loaded booking set at write time, never trusting an
// earlier "available" answer shown to the user. The whole
// load-modify-save sequence runs under mu; without that, two racing
// commits could both pass the check against a stale snapshot and
// double-book the slot.
type Service struct {
	store              storage.BookingStore
	policy             *schedule.Policy
	engine             *availability.Engine
	locker             Locker
	producer           Producer
	bookingsTopic      string
	notificationsTopic string
	lockTTL            time.Duration
	now                func() time.Time

	mu sync.Mutex
}

// A zero or negative TTL would make SetNX keys immortal: a crashed
// instance would then block its slot for every instance until someone
// deletes the key by hand.
const defaultSlotLockTTL = 30 * time.Second

type ServiceOption func(*Service)

func WithLocker(locker Locker, ttl time.Duration) ServiceOption {
	return func(s *Service) {
		if ttl <= 0 {
			ttl = defaultSlotLockTTL
		}
		s.locker = locker
		s.lockTTL = ttl
	}
}

func WithProducer(producer Producer, bookingsTopic, notificationsTopic string) ServiceOption {
	return func(s *Service) {
		s.producer = producer
		s.bookingsTopic = bookingsTopic
		s.notificationsTopic = notificationsTopic
	}
}

func WithNow(now func() time.Time) ServiceOption {
	return func(s *Service) {
		s.now = now
	}
}

func NewService(store storage.BookingStore, policy *schedule.Policy, engine *availability.Engine, opts ...ServiceOption) *Service {
	s := &Service{
		store:  store,
		policy: policy,
		engine: engine,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// CandidateDays lists the open dates in the policy's lookahead window.
func (s *Service) CandidateDays(today domain.Date) []domain.Date {
	return s.policy.CandidateDays(today, s.policy.LookaheadDays())
}

// Slots re-reads the authoritative booking set and labels every candidate
// start time for the date. Blocked entries are included.
func (s *Service) Slots(ctx context.Context, date domain.Date, durationMinutes int) ([]availability.Slot, error) {
	if durationMinutes <= 0 {
		return nil, errors.New("duration must be positive")
	}
	bookings, err := s.store.LoadAll(ctx)
	if err != nil {
		return nil, err
	}
	return s.engine.Slots(date, durationMinutes, bookings), nil
}

// Book commits one slot. Availability is re-checked against the set
// loaded inside the critical section; on conflict nothing is written and
// the caller must offer the user another slot.
func (s *Service) Book(ctx context.Context, input BookInput) (*domain.Booking, error) {
	if input.DurationMinutes <= 0 {
		return nil, errors.New("duration must be positive")
	}
	if input.Service == "" {
		return nil, errors.New("service label is required")
	}
	if !s.policy.IsOpenDay(input.Date) {
		return nil, domain.ErrClosedDay
	}
	if !s.engine.WithinHours(input.Start, input.DurationMinutes) {
		return nil, domain.ErrOutsideHours
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.locker != nil {
		ok, err := s.locker.AcquireSlotLock(ctx, input.Date, input.Start, s.lockTTL)
		switch {
		case err != nil:
			// The lock is advisory; correctness comes from the mutex plus
			// the availability re-check below. A lost lock backend must not
			// take booking down with it.
			log.Printf("WARNING: slot lock unavailable for %s %s: %v", input.Date, input.Start, err)
		case !ok:
			return nil, domain.ErrSlotTaken
		default:
			defer func() {
				_ = s.locker.ReleaseSlotLock(ctx, input.Date, input.Start)
			}()
		}
	}

	bookings, err := s.store.LoadAll(ctx)
	if err != nil {
		return nil, err
	}
	if !s.engine.IsSlotAvailable(input.Date, input.Start, input.DurationMinutes, bookings) {
		return nil, domain.ErrSlotTaken
	}

	booking := domain.Booking{
		Date:            input.Date,
		Start:           input.Start,
		DurationMinutes: input.DurationMinutes,
		Service:         input.Service,
	}
	if err := s.store.SaveAll(ctx, append(bookings, booking)); err != nil {
		return nil, err
	}

	if err := s.publish(ctx, "booking_created", booking); err != nil {
		log.Printf("WARNING: failed to publish booking_created event for %s %s: %v", booking.Date, booking.Start, err)
	}
	return &booking, nil
}

func (s *Service) publish(ctx context.Context, eventType string, b domain.Booking) error {
	if s.producer == nil || s.bookingsTopic == "" {
		return nil
	}
	event := kafka.BookingEvent{
		Type:     eventType,
		EventID:  uuid.NewString(),
		Date:     b.Date.String(),
		Time:     b.Start.String(),
		Duration: b.DurationMinutes,
		Service:  b.Service,
		BookedAt: s.now(),
	}
	if err := s.producer.Publish(ctx, s.bookingsTopic, event.EventID, event); err != nil {
		return err
	}
	if s.notificationsTopic != "" {
		return s.producer.Publish(ctx, s.notificationsTopic, event.EventID, event)
	}
	return nil
}

var _ SchedulingUseCase = (*Service)(nil)
