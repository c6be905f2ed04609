package mocks

import (
	"context"

	"github.com/aws/aws-lambda-go/events"
	"github.com/stretchr/testify/mock"

	"mediaguard/internal/domain"
)

// MockNotifierService is a mock implementation of service.NotifierService.
type MockNotifierService struct {
	mock.Mock
}

func (m *MockNotifierService) HandleEvent(ctx context.Context, evt events.S3Event) (*domain.InvocationResponse, error) {
	args := m.Called(ctx, evt)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.InvocationResponse), args.Error(1)
}

func (m *MockNotifierService) Classify(ctx context.Context, ref domain.ObjectRef) (domain.Decision, domain.LabelSet, error) {
	args := m.Called(ctx, ref)
	var labels domain.LabelSet
	if args.Get(1) != nil {
		labels = args.Get(1).(domain.LabelSet)
	}
	return args.Get(0).(domain.Decision), labels, args.Error(2)
}
