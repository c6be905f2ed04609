package noop

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"mediaguard/internal/domain"
	"mediaguard/internal/port"
)

type noopPublisher struct {
	logger *zap.Logger
}

// NewNoopPublisher creates a NotificationPublisher that only logs the alert.
func NewNoopPublisher(logger *zap.Logger) port.NotificationPublisher {
	return &noopPublisher{logger: logger}
}

func (p *noopPublisher) Publish(_ context.Context, n domain.Notification) (string, error) {
	id := uuid.New().String()
	p.logger.Info("[NOOP NOTIFY] alert not delivered",
		zap.String("message_id", id),
		zap.String("topic", n.Topic),
		zap.String("subject", n.Subject),
		zap.String("message", n.Message),
	)
	return id, nil
}
