package port

import (
	"context"

	"mediaguard/internal/domain"
)

// LabelDetector abstracts an image label-detection service. Implementations
// return at most maxLabels labels, each with confidence >= minConfidence.
type LabelDetector interface {
	DetectLabels(ctx context.Context, ref domain.ObjectRef, maxLabels int, minConfidence float64) (domain.LabelSet, error)
}
