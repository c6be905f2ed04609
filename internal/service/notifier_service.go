package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/smithy-go"
	"go.uber.org/zap"

	"mediaguard/internal/config"
	"mediaguard/internal/domain"
	"mediaguard/internal/event"
	"mediaguard/internal/logging"
	"mediaguard/internal/port"
)

// SuccessMessage is JSON-encoded into the body of every successful response.
const SuccessMessage = "Image processed successfully"

// NotifierService defines the storage-event classification workflow.
type NotifierService interface {
	HandleEvent(ctx context.Context, evt events.S3Event) (*domain.InvocationResponse, error)
	Classify(ctx context.Context, ref domain.ObjectRef) (domain.Decision, domain.LabelSet, error)
}

type notifierService struct {
	detector  port.LabelDetector
	publisher port.NotificationPublisher
	cfg       config.NotifierConfig
	logger    *zap.Logger
}

// NewNotifierService creates a new NotifierService implementation.
func NewNotifierService(
	detector port.LabelDetector,
	publisher port.NotificationPublisher,
	cfg config.NotifierConfig,
	logger *zap.Logger,
) NotifierService {
	return &notifierService{
		detector:  detector,
		publisher: publisher,
		cfg:       cfg,
		logger:    logger,
	}
}

// HandleEvent processes the first record of evt. Errors are logged and
// returned wrapped in one of domain.ErrInvalidEvent, domain.ErrLabelDetection
// or domain.ErrNotificationPublish so the host can apply its retry policy.
func (s *notifierService) HandleEvent(ctx context.Context, evt events.S3Event) (*domain.InvocationResponse, error) {
	log := logging.WithOperation(s.logger, "notifier.HandleEvent", logging.RequestID(ctx))

	if n := event.RecordCount(evt); n > 1 {
		log.Warn("notifierService.HandleEvent: payload has multiple records, processing only the first",
			zap.Int("records", n))
	}

	ref, err := event.FirstObjectRef(evt)
	if err != nil {
		log.Error("notifierService.HandleEvent: error processing image", zap.Error(err))
		return nil, err
	}

	decision, labels, err := s.classify(ctx, log, ref)
	if err != nil {
		return nil, err
	}

	if decision == domain.DecisionMismatch {
		if err := s.alert(ctx, log, ref, labels); err != nil {
			return nil, err
		}
	} else {
		log.Info(fmt.Sprintf("%s image detected: %s", s.cfg.TargetLabel, ref.Key), zap.String("object", ref.URI()))
	}

	body, err := json.Marshal(SuccessMessage)
	if err != nil {
		return nil, fmt.Errorf("encoding response body: %w", err)
	}
	return &domain.InvocationResponse{StatusCode: http.StatusOK, Body: string(body)}, nil
}

func (s *notifierService) Classify(ctx context.Context, ref domain.ObjectRef) (domain.Decision, domain.LabelSet, error) {
	log := logging.WithOperation(s.logger, "notifier.Classify", logging.RequestID(ctx))
	return s.classify(ctx, log, ref)
}

func (s *notifierService) classify(ctx context.Context, log *zap.Logger, ref domain.ObjectRef) (domain.Decision, domain.LabelSet, error) {
	labels, err := s.detector.DetectLabels(ctx, ref, s.cfg.MaxLabels, s.cfg.ConfidenceThreshold)
	if err != nil {
		log.Error("notifierService.classify: error processing image",
			append(apiErrorFields(err), zap.String("object", ref.URI()), zap.Error(err))...)
		return "", nil, fmt.Errorf("%w: %w", domain.ErrLabelDetection, err)
	}

	log.Debug("notifierService.classify: labels detected",
		zap.String("object", ref.URI()),
		zap.Strings("labels", labels.Names()))

	if labels.Contains(s.cfg.TargetLabel) {
		return domain.DecisionMatch, labels, nil
	}
	return domain.DecisionMismatch, labels, nil
}

func (s *notifierService) alert(ctx context.Context, log *zap.Logger, ref domain.ObjectRef, labels domain.LabelSet) error {
	message := fmt.Sprintf("Non-%s image detected in %s\nLabels: %s",
		strings.ToLower(s.cfg.TargetLabel), ref.URI(), strings.Join(labels.Names(), ", "))

	messageID, err := s.publisher.Publish(ctx, domain.Notification{
		Topic:   s.cfg.TopicARN,
		Subject: s.cfg.Subject,
		Message: message,
	})
	if err != nil {
		log.Error("notifierService.alert: error processing image",
			append(apiErrorFields(err), zap.String("object", ref.URI()), zap.Error(err))...)
		return fmt.Errorf("%w: %w", domain.ErrNotificationPublish, err)
	}

	log.Info("Alert sent: "+message, zap.String("message_id", messageID))
	return nil
}

// apiErrorFields extracts the AWS error code and fault from err, if present.
func apiErrorFields(err error) []zap.Field {
	var apiErr smithy.APIError
	if !errors.As(err, &apiErr) {
		return nil
	}
	return []zap.Field{
		zap.String("error_code", apiErr.ErrorCode()),
		zap.String("error_fault", apiErr.ErrorFault().String()),
	}
}
