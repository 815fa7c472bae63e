package email

import (
	"context"
	"fmt"

	"github.com/dreamsourcil/booking/internal/domain"
	"github.com/dreamsourcil/booking/internal/kafka"
)

// Sender turns booking events into confirmation messages. Delivery is a
// stub: the worker prints what a mail integration would send.
type Sender struct {
	address string
}

func NewSender(address string) *Sender {
	return &Sender{address: address}
}

func (s *Sender) Send(_ context.Context, event kafka.BookingEvent) error {
	end := event.Time
	if start, err := domain.ParseTimeOfDay(event.Time); err == nil {
		end = start.Add(event.Duration).String()
	}
	fmt.Printf("confirmation: %s on %s, %s-%s\n%s\n", event.Service, event.Date, event.Time, end, s.address)
	return nil
}
