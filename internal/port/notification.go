package port

import (
	"context"

	"mediaguard/internal/domain"
)

// NotificationPublisher delivers one alert message and returns the provider's message ID.
type NotificationPublisher interface {
	Publish(ctx context.Context, n domain.Notification) (string, error)
}
