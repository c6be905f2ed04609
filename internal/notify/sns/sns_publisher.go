package sns

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sns"

	"mediaguard/internal/domain"
	"mediaguard/internal/port"
)

// Client is the subset of the SNS API used by the publisher.
type Client interface {
	Publish(ctx context.Context, params *sns.PublishInput, optFns ...func(*sns.Options)) (*sns.PublishOutput, error)
}

type snsPublisher struct {
	client Client
}

// NewPublisher creates an SNS-backed NotificationPublisher.
func NewPublisher(client Client) port.NotificationPublisher {
	return &snsPublisher{client: client}
}

// NewPublisherFromConfig creates an SNS publisher from a resolved AWS config.
func NewPublisherFromConfig(cfg aws.Config) port.NotificationPublisher {
	return NewPublisher(sns.NewFromConfig(cfg))
}

func (p *snsPublisher) Publish(ctx context.Context, n domain.Notification) (string, error) {
	input := &sns.PublishInput{
		TopicArn: aws.String(n.Topic),
		Message:  aws.String(n.Message),
	}
	if n.Subject != "" {
		input.Subject = aws.String(n.Subject)
	}

	out, err := p.client.Publish(ctx, input)
	if err != nil {
		return "", fmt.Errorf("SNS Publish: %w", err)
	}
	return aws.ToString(out.MessageId), nil
}
