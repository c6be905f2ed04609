package sns_test

import (
	"context"
	"errors"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	awssns "github.com/aws/aws-sdk-go-v2/service/sns"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mediaguard/internal/domain"
	"mediaguard/internal/notify/sns"
)

type fakeClient struct {
	input *awssns.PublishInput
	err   error
}

func (f *fakeClient) Publish(_ context.Context, params *awssns.PublishInput, _ ...func(*awssns.Options)) (*awssns.PublishOutput, error) {
	f.input = params
	if f.err != nil {
		return nil, f.err
	}
	return &awssns.PublishOutput{MessageId: aws.String("5f1c7d6e-0000-0000-0000-000000000001")}, nil
}

func TestSNSPublisher_Publish(t *testing.T) {
	client := &fakeClient{}
	p := sns.NewPublisher(client)

	id, err := p.Publish(context.Background(), domain.Notification{
		Topic:   "arn:aws:sns:us-east-1:123456789012:alerts",
		Subject: "Non-Cat Image Alert",
		Message: "Non-cat image detected in s3://cats-only-bucket/dog1.jpeg\nLabels: Dog",
	})

	require.NoError(t, err)
	assert.Equal(t, "5f1c7d6e-0000-0000-0000-000000000001", id)
	assert.Equal(t, "arn:aws:sns:us-east-1:123456789012:alerts", aws.ToString(client.input.TopicArn))
	assert.Equal(t, "Non-Cat Image Alert", aws.ToString(client.input.Subject))
	assert.Contains(t, aws.ToString(client.input.Message), "Labels: Dog")
}

func TestSNSPublisher_Publish_NoSubject(t *testing.T) {
	client := &fakeClient{}
	p := sns.NewPublisher(client)

	_, err := p.Publish(context.Background(), domain.Notification{Topic: "arn", Message: "m"})

	require.NoError(t, err)
	assert.Nil(t, client.input.Subject)
}

func TestSNSPublisher_Publish_Error(t *testing.T) {
	apiErr := errors.New("NotFound: topic does not exist")
	p := sns.NewPublisher(&fakeClient{err: apiErr})

	id, err := p.Publish(context.Background(), domain.Notification{Topic: "arn", Message: "m"})

	assert.Empty(t, id)
	assert.ErrorIs(t, err, apiErr)
}
