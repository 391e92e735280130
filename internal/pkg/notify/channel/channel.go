package channel

import "context"

// INotifyChannel defines the interface for notification channels
type INotifyChannel interface {
	// Send sends a message to an address (email, device token, ...)
	Send(ctx context.Context, address, subject, body string) error
	// Validate validates the channel configuration
	Validate() error
}
