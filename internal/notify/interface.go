package notify

//go:generate mockgen -package=mocks -destination=mocks/mock_sink.go github.com/crewcall-bot/crewcall/internal/notify Sink

import (
	"context"
	"errors"
)

// ErrDelivery is returned when a message could not be delivered. Delivery
// failures never unwind a mutation that already persisted; callers log
// them and move on.
var ErrDelivery = errors.New("message delivery failed")

// Sink abstracts sending a message or card toward a user or channel
type Sink interface {
	// NotifyUser sends a direct message to a user
	NotifyUser(ctx context.Context, input *NotifyUserInput) error

	// NotifyChannel sends a message to a channel
	NotifyChannel(ctx context.Context, input *NotifyChannelInput) error
}
