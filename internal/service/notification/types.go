package notification

import "context"

// Service is a push-message channel. Delivery is fire-and-forget from the
// caller's point of view: implementations may retry internally, but a final
// failure is just returned, never escalated.
type Service interface {
	SendHTML(ctx context.Context, text string) error
}
