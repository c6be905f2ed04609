package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/aws/aws-lambda-go/events"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"mediaguard/internal/config"
	"mediaguard/internal/domain"
	"mediaguard/internal/service"
	"mediaguard/mocks"
)

const testTopicARN = "arn:aws:sns:us-east-1:123456789012:non-cat-alerts"

func testNotifierConfig() config.NotifierConfig {
	return config.NotifierConfig{
		TopicARN:            testTopicARN,
		TargetLabel:         "Cat",
		ConfidenceThreshold: 90.0,
		MaxLabels:           5,
		Subject:             "Non-Cat Image Alert",
	}
}

func newNotifierService() (service.NotifierService, *mocks.MockLabelDetector, *mocks.MockNotificationPublisher) {
	detector := new(mocks.MockLabelDetector)
	publisher := new(mocks.MockNotificationPublisher)
	svc := service.NewNotifierService(detector, publisher, testNotifierConfig(), zap.NewNop())
	return svc, detector, publisher
}

func s3Event(bucket string, keys ...string) events.S3Event {
	var evt events.S3Event
	for _, key := range keys {
		evt.Records = append(evt.Records, events.S3EventRecord{
			EventSource: "aws:s3",
			EventName:   "ObjectCreated:Put",
			S3: events.S3Entity{
				Bucket: events.S3Bucket{Name: bucket},
				Object: events.S3Object{Key: key},
			},
		})
	}
	return evt
}

func TestNotifierService_HandleEvent_NonCatPublishesAlert(t *testing.T) {
	svc, detector, publisher := newNotifierService()

	ref := domain.ObjectRef{Bucket: "cats-only-bucket", Key: "dog1.jpeg"}
	detector.On("DetectLabels", mock.Anything, ref, 5, 90.0).
		Return(domain.LabelSet{{Name: "Dog", Confidence: 98.2}}, nil)

	var sent domain.Notification
	publisher.On("Publish", mock.Anything, mock.AnythingOfType("domain.Notification")).
		Run(func(args mock.Arguments) { sent = args.Get(1).(domain.Notification) }).
		Return("msg-1", nil)

	resp, err := svc.HandleEvent(context.Background(), s3Event("cats-only-bucket", "dog1.jpeg"))

	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)
	assert.Equal(t, `"Image processed successfully"`, resp.Body)

	assert.Equal(t, testTopicARN, sent.Topic)
	assert.Equal(t, "Non-Cat Image Alert", sent.Subject)
	assert.Contains(t, sent.Message, "s3://cats-only-bucket/dog1.jpeg")
	assert.Contains(t, sent.Message, "Dog")
	assert.Equal(t, "Non-cat image detected in s3://cats-only-bucket/dog1.jpeg\nLabels: Dog", sent.Message)

	publisher.AssertNumberOfCalls(t, "Publish", 1)
	detector.AssertExpectations(t)
}

func TestNotifierService_HandleEvent_CatSkipsAlert(t *testing.T) {
	labelSets := map[string]domain.LabelSet{
		"only cat": {{Name: "Cat", Confidence: 99.1}},
		"cat first": {
			{Name: "Cat", Confidence: 99.1},
			{Name: "Pet", Confidence: 97.0},
		},
		"cat last": {
			{Name: "Animal", Confidence: 99.5},
			{Name: "Mammal", Confidence: 99.0},
			{Name: "Pet", Confidence: 95.2},
			{Name: "Kitten", Confidence: 93.0},
			{Name: "Cat", Confidence: 91.4},
		},
	}

	for name, labels := range labelSets {
		t.Run(name, func(t *testing.T) {
			svc, detector, publisher := newNotifierService()
			detector.On("DetectLabels", mock.Anything, mock.Anything, 5, 90.0).Return(labels, nil)

			resp, err := svc.HandleEvent(context.Background(), s3Event("cats-only-bucket", "cat1.jpeg"))

			require.NoError(t, err)
			assert.Equal(t, 200, resp.StatusCode)
			publisher.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything)
		})
	}
}

func TestNotifierService_HandleEvent_MultipleLabelsJoined(t *testing.T) {
	svc, detector, publisher := newNotifierService()

	detector.On("DetectLabels", mock.Anything, mock.Anything, 5, 90.0).
		Return(domain.LabelSet{
			{Name: "Dog", Confidence: 98.2},
			{Name: "Grass", Confidence: 95.0},
			{Name: "Outdoors", Confidence: 92.3},
		}, nil)
	publisher.On("Publish", mock.Anything, mock.MatchedBy(func(n domain.Notification) bool {
		return n.Message == "Non-cat image detected in s3://pets/park/dog.png\nLabels: Dog, Grass, Outdoors"
	})).Return("msg-2", nil)

	_, err := svc.HandleEvent(context.Background(), s3Event("pets", "park/dog.png"))

	require.NoError(t, err)
	publisher.AssertExpectations(t)
}

func TestNotifierService_HandleEvent_EmptyLabelSetAlerts(t *testing.T) {
	svc, detector, publisher := newNotifierService()

	detector.On("DetectLabels", mock.Anything, mock.Anything, 5, 90.0).Return(domain.LabelSet{}, nil)
	publisher.On("Publish", mock.Anything, mock.AnythingOfType("domain.Notification")).Return("msg-3", nil)

	resp, err := svc.HandleEvent(context.Background(), s3Event("cats-only-bucket", "blurry.jpeg"))

	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)
	publisher.AssertNumberOfCalls(t, "Publish", 1)
}

func TestNotifierService_HandleEvent_DecodesKey(t *testing.T) {
	for _, key := range []string{"my+photo.jpg", "my%20photo.jpg"} {
		t.Run(key, func(t *testing.T) {
			svc, detector, _ := newNotifierService()

			want := domain.ObjectRef{Bucket: "cats-only-bucket", Key: "my photo.jpg"}
			detector.On("DetectLabels", mock.Anything, want, 5, 90.0).
				Return(domain.LabelSet{{Name: "Cat", Confidence: 96.0}}, nil)

			_, err := svc.HandleEvent(context.Background(), s3Event("cats-only-bucket", key))

			require.NoError(t, err)
			detector.AssertExpectations(t)
		})
	}
}

func TestNotifierService_HandleEvent_OnlyFirstRecord(t *testing.T) {
	svc, detector, _ := newNotifierService()

	first := domain.ObjectRef{Bucket: "cats-only-bucket", Key: "first.jpeg"}
	detector.On("DetectLabels", mock.Anything, first, 5, 90.0).
		Return(domain.LabelSet{{Name: "Cat", Confidence: 99.0}}, nil)

	_, err := svc.HandleEvent(context.Background(), s3Event("cats-only-bucket", "first.jpeg", "second.jpeg"))

	require.NoError(t, err)
	detector.AssertNumberOfCalls(t, "DetectLabels", 1)
}

func TestNotifierService_HandleEvent_DetectionError(t *testing.T) {
	svc, detector, publisher := newNotifierService()

	detectErr := errors.New("InvalidS3ObjectException: unable to get object metadata")
	detector.On("DetectLabels", mock.Anything, mock.Anything, 5, 90.0).Return(nil, detectErr)

	resp, err := svc.HandleEvent(context.Background(), s3Event("cats-only-bucket", "missing.jpeg"))

	assert.Nil(t, resp)
	assert.ErrorIs(t, err, domain.ErrLabelDetection)
	assert.ErrorIs(t, err, detectErr)
	publisher.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything)
}

func TestNotifierService_HandleEvent_PublishError(t *testing.T) {
	svc, detector, publisher := newNotifierService()

	publishErr := errors.New("AuthorizationError: not authorized to publish")
	detector.On("DetectLabels", mock.Anything, mock.Anything, 5, 90.0).
		Return(domain.LabelSet{{Name: "Dog", Confidence: 98.2}}, nil)
	publisher.On("Publish", mock.Anything, mock.Anything).Return("", publishErr)

	resp, err := svc.HandleEvent(context.Background(), s3Event("cats-only-bucket", "dog1.jpeg"))

	assert.Nil(t, resp)
	assert.ErrorIs(t, err, domain.ErrNotificationPublish)
	assert.ErrorIs(t, err, publishErr)
}

func TestNotifierService_HandleEvent_InvalidEvent(t *testing.T) {
	cases := map[string]events.S3Event{
		"no records":       {},
		"empty key":        s3Event("cats-only-bucket", ""),
		"empty bucket":     s3Event("", "cat.jpeg"),
		"bad escape":       s3Event("cats-only-bucket", "cat%zz.jpeg"),
		"truncated escape": s3Event("cats-only-bucket", "%"),
	}

	for name, evt := range cases {
		t.Run(name, func(t *testing.T) {
			svc, detector, publisher := newNotifierService()

			resp, err := svc.HandleEvent(context.Background(), evt)

			assert.Nil(t, resp)
			assert.ErrorIs(t, err, domain.ErrInvalidEvent)
			detector.AssertNotCalled(t, "DetectLabels", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
			publisher.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything)
		})
	}
}

func TestNotifierService_HandleEvent_UsesConfiguredLimits(t *testing.T) {
	detector := new(mocks.MockLabelDetector)
	publisher := new(mocks.MockNotificationPublisher)
	cfg := testNotifierConfig()
	cfg.MaxLabels = 10
	cfg.ConfidenceThreshold = 75.5
	svc := service.NewNotifierService(detector, publisher, cfg, zap.NewNop())

	detector.On("DetectLabels", mock.Anything, mock.Anything, 10, 75.5).
		Return(domain.LabelSet{{Name: "Cat", Confidence: 80.0}}, nil)

	_, err := svc.HandleEvent(context.Background(), s3Event("cats-only-bucket", "cat.jpeg"))

	require.NoError(t, err)
	detector.AssertExpectations(t)
}

func TestNotifierService_Classify(t *testing.T) {
	svc, detector, publisher := newNotifierService()

	ref := domain.ObjectRef{Bucket: "cats-only-bucket", Key: "dog1.jpeg"}
	detector.On("DetectLabels", mock.Anything, ref, 5, 90.0).
		Return(domain.LabelSet{{Name: "Dog", Confidence: 98.2}}, nil)

	decision, labels, err := svc.Classify(context.Background(), ref)

	require.NoError(t, err)
	assert.Equal(t, domain.DecisionMismatch, decision)
	assert.Equal(t, []string{"Dog"}, labels.Names())
	publisher.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything)
}
