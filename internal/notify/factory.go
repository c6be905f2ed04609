package notify

import (
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"go.uber.org/zap"

	"mediaguard/internal/config"
	"mediaguard/internal/domain"
	"mediaguard/internal/notify/noop"
	"mediaguard/internal/notify/ses"
	"mediaguard/internal/notify/sns"
	"mediaguard/internal/port"
)

// NewPublisher creates the NotificationPublisher selected by cfg.Provider.
func NewPublisher(cfg *config.NotificationConfig, awsCfg aws.Config, logger *zap.Logger) (port.NotificationPublisher, error) {
	switch domain.NotificationProvider(cfg.Provider) {
	case domain.NotificationProviderSNS:
		return sns.NewPublisherFromConfig(awsCfg), nil
	case domain.NotificationProviderSES:
		return ses.NewPublisherFromConfig(awsCfg, cfg.SESFromAddress, cfg.SESToAddresses), nil
	case domain.NotificationProviderNoop:
		return noop.NewNoopPublisher(logger), nil
	default:
		return nil, fmt.Errorf("unknown notification provider: %s", cfg.Provider)
	}
}
