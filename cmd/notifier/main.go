package main

import (
	"context"
	"fmt"
	"log"

	"github.com/aws/aws-lambda-go/lambda"
	"go.uber.org/zap"

	"mediaguard/internal/awsclient"
	"mediaguard/internal/config"
	"mediaguard/internal/labeler/rekognition"
	"mediaguard/internal/logging"
	"mediaguard/internal/notify"
	"mediaguard/internal/service"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	svc, logger, err := bootstrap(context.Background())
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	logger.Info("notifier starting")
	lambda.Start(svc.HandleEvent)
	return nil
}

func bootstrap(ctx context.Context) (service.NotifierService, *zap.Logger, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, nil, fmt.Errorf("invalid config: %w", err)
	}

	logger, err := logging.NewLogger(cfg.Log)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to build logger: %w", err)
	}

	awsCfg, err := awsclient.Load(ctx, &cfg.AWS, "")
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	publisher, err := notify.NewPublisher(&cfg.Notification, awsCfg, logger)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize publisher: %w", err)
	}

	detector := rekognition.NewDetectorFromConfig(awsCfg)
	return service.NewNotifierService(detector, publisher, cfg.Notifier, logger), logger, nil
}
