package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"mediaguard/internal/domain"
)

// MockLabelDetector is a mock implementation of port.LabelDetector.
type MockLabelDetector struct {
	mock.Mock
}

func (m *MockLabelDetector) DetectLabels(ctx context.Context, ref domain.ObjectRef, maxLabels int, minConfidence float64) (domain.LabelSet, error) {
	args := m.Called(ctx, ref, maxLabels, minConfidence)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(domain.LabelSet), args.Error(1)
}
