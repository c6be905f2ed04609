package ses

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sesv2"
	"github.com/aws/aws-sdk-go-v2/service/sesv2/types"

	"mediaguard/internal/domain"
	"mediaguard/internal/port"
)

// Client is the subset of the SES v2 API used by the publisher.
type Client interface {
	SendEmail(ctx context.Context, params *sesv2.SendEmailInput, optFns ...func(*sesv2.Options)) (*sesv2.SendEmailOutput, error)
}

type sesPublisher struct {
	client      Client
	fromAddress string
	toAddresses []string
}

// NewPublisher creates an SES-backed NotificationPublisher. Alerts go to the
// fixed recipient list; the notification topic is carried in the body footer.
func NewPublisher(client Client, fromAddress string, toAddresses []string) port.NotificationPublisher {
	return &sesPublisher{
		client:      client,
		fromAddress: fromAddress,
		toAddresses: toAddresses,
	}
}

// NewPublisherFromConfig creates an SES publisher from a resolved AWS config.
func NewPublisherFromConfig(cfg aws.Config, fromAddress string, toAddresses []string) port.NotificationPublisher {
	return NewPublisher(sesv2.NewFromConfig(cfg), fromAddress, toAddresses)
}

func (p *sesPublisher) Publish(ctx context.Context, n domain.Notification) (string, error) {
	textBody := n.Message
	if n.Topic != "" {
		textBody = fmt.Sprintf("%s\n\n-- \nTopic: %s", n.Message, n.Topic)
	}

	out, err := p.client.SendEmail(ctx, &sesv2.SendEmailInput{
		FromEmailAddress: aws.String(p.fromAddress),
		Destination: &types.Destination{
			ToAddresses: p.toAddresses,
		},
		Content: &types.EmailContent{
			Simple: &types.Message{
				Subject: &types.Content{Data: aws.String(n.Subject)},
				Body: &types.Body{
					Text: &types.Content{Data: aws.String(textBody)},
				},
			},
		},
	})
	if err != nil {
		return "", fmt.Errorf("SES SendEmail: %w", err)
	}
	return aws.ToString(out.MessageId), nil
}
