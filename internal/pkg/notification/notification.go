package notification

import (
	"context"
	"fmt"
	"time"

	"phoenix-booking-service/internal/pkg/errors"
	"phoenix-booking-service/internal/pkg/messagestream"

	"github.com/ThreeDotsLabs/watermill/message"
)

const (
	TypeBookingConfirmation = "booking_confirmation"
	TypeBookingUpdated      = "booking_updated"
	TypeBookingCancelled    = "booking_cancelled"
	TypeWaitlistJoined      = "waitlist_joined"
	TypeWaitlistAvailable   = "waitlist_available"

	ChannelEmail = "email"
)

type Notification struct {
	Channel  string                 `json:"channel"`
	Type     string                 `json:"type"`
	To       string                 `json:"to"`
	Subject  string                 `json:"subject"`
	Message  string                 `json:"message"`
	Metadata map[string]interface{} `json:"metadata,omitempty"`
}

// Sink is fire-and-forget delivery towards the notification service.
type Sink interface {
	Send(ctx context.Context, n Notification) error
}

type publisherSink struct {
	publisher message.Publisher
	topic     string
	timeout   time.Duration
}

func NewPublisherSink(publisher message.Publisher, topic string, timeout time.Duration) Sink {
	return &publisherSink{
		publisher: publisher,
		topic:     topic,
		timeout:   timeout,
	}
}

// Send skips notifications without a recipient. A publish that fails or does
// not finish within the timeout is reported as ErrNotificationFailed.
func (s *publisherSink) Send(ctx context.Context, n Notification) error {
	if n.To == "" {
		return nil
	}
	if s.publisher == nil {
		return fmt.Errorf("%w: %s to %s: no publisher", errors.ErrNotificationFailed, n.Type, n.To)
	}
	if n.Channel == "" {
		n.Channel = ChannelEmail
	}

	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	done := make(chan error, 1)
	go func() {
		defer func() {
			if r := recover(); r != nil {
				done <- fmt.Errorf("publish panicked: %v", r)
			}
		}()
		done <- messagestream.PublishJSON(ctx, s.publisher, s.topic, n)
	}()

	select {
	case err := <-done:
		if err != nil {
			return fmt.Errorf("%w: %s to %s: %v", errors.ErrNotificationFailed, n.Type, n.To, err)
		}
		return nil
	case <-ctx.Done():
		return fmt.Errorf("%w: %s to %s: %v", errors.ErrNotificationFailed, n.Type, n.To, ctx.Err())
	}
}
