package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"mediaguard/internal/domain"
)

// MockNotificationPublisher is a mock implementation of port.NotificationPublisher.
type MockNotificationPublisher struct {
	mock.Mock
}

func (m *MockNotificationPublisher) Publish(ctx context.Context, n domain.Notification) (string, error) {
	args := m.Called(ctx, n)
	return args.String(0), args.Error(1)
}
