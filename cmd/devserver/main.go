package main

import (
	"context"
	"fmt"
	"log"

	"go.uber.org/zap"

	"mediaguard/internal/awsclient"
	"mediaguard/internal/config"
	"mediaguard/internal/handler"
	"mediaguard/internal/labeler/rekognition"
	"mediaguard/internal/logging"
	"mediaguard/internal/notify"
	"mediaguard/internal/router"
	"mediaguard/internal/service"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	logger, err := logging.NewLogger(cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to build logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	awsCfg, err := awsclient.Load(context.Background(), &cfg.AWS, "")
	if err != nil {
		return fmt.Errorf("failed to load AWS config: %w", err)
	}

	// Initialize collaborators
	publisher, err := notify.NewPublisher(&cfg.Notification, awsCfg, logger)
	if err != nil {
		return fmt.Errorf("failed to initialize publisher: %w", err)
	}
	detector := rekognition.NewDetectorFromConfig(awsCfg)

	notifierSvc := service.NewNotifierService(detector, publisher, cfg.Notifier, logger)

	r := router.Setup(handler.NewEventHandler(notifierSvc), handler.NewHealthHandler(), logger)

	logger.Info("Dev server starting", zap.String("addr", cfg.Server.Port))
	if err := r.Run(cfg.Server.Port); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}
	return nil
}
