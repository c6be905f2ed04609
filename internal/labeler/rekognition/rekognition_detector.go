package rekognition

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/rekognition"
	"github.com/aws/aws-sdk-go-v2/service/rekognition/types"

	"mediaguard/internal/domain"
	"mediaguard/internal/port"
)

// Client is the subset of the Rekognition API used by the detector.
type Client interface {
	DetectLabels(
		ctx context.Context,
		params *rekognition.DetectLabelsInput,
		optFns ...func(*rekognition.Options),
	) (*rekognition.DetectLabelsOutput, error)
}

type detector struct {
	client Client
}

// NewDetector creates a Rekognition-backed LabelDetector.
func NewDetector(client Client) port.LabelDetector {
	return &detector{client: client}
}

// NewDetectorFromConfig creates a LabelDetector from a resolved AWS config.
func NewDetectorFromConfig(cfg aws.Config) port.LabelDetector {
	return NewDetector(rekognition.NewFromConfig(cfg))
}

func (d *detector) DetectLabels(ctx context.Context, ref domain.ObjectRef, maxLabels int, minConfidence float64) (domain.LabelSet, error) {
	out, err := d.client.DetectLabels(ctx, &rekognition.DetectLabelsInput{
		Image: &types.Image{
			S3Object: &types.S3Object{
				Bucket: aws.String(ref.Bucket),
				Name:   aws.String(ref.Key),
			},
		},
		MaxLabels:     aws.Int32(int32(maxLabels)),
		MinConfidence: aws.Float32(float32(minConfidence)),
	})
	if err != nil {
		return nil, fmt.Errorf("rekognition DetectLabels: %w", err)
	}

	labels := make(domain.LabelSet, 0, len(out.Labels))
	for _, l := range out.Labels {
		labels = append(labels, domain.Label{
			Name:       aws.ToString(l.Name),
			Confidence: float64(aws.ToFloat32(l.Confidence)),
		})
	}
	return labels, nil
}
