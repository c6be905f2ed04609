package main

import (
	"context"
	"fmt"
	"log"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"mediaguard/internal/config"
	"mediaguard/internal/domain"
	"mediaguard/internal/logging"
	"mediaguard/internal/service"
	s3storage "mediaguard/internal/storage/s3"
)

// uploadFunc performs one upload and reports whether it succeeded.
type uploadFunc func(ctx context.Context, cfg *config.Config, logger *zap.Logger, req domain.UploadRequest) bool

func main() {
	if err := newRootCommand(uploadToS3).Execute(); err != nil {
		log.Fatal(err)
	}
}

func uploadToS3(ctx context.Context, cfg *config.Config, logger *zap.Logger, req domain.UploadRequest) bool {
	svc := service.NewUploadService(s3storage.NewFactory(&cfg.AWS), cfg.AWS.Region, logger)
	return svc.Upload(ctx, req)
}

// newRootCommand builds the uploader CLI. Run without flags it uploads the
// configured default file to the default bucket. A failed upload is reported
// on stdout and does not change the exit status.
func newRootCommand(upload uploadFunc) *cobra.Command {
	var req domain.UploadRequest

	cmd := &cobra.Command{
		Use:           "uploader",
		Short:         "Upload a local image to an S3 bucket",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}
			logger, err := logging.NewLogger(cfg.Log)
			if err != nil {
				return fmt.Errorf("failed to build logger: %w", err)
			}
			defer func() { _ = logger.Sync() }()

			if req.LocalPath == "" {
				req.LocalPath = cfg.Uploader.DefaultFile
			}
			if req.Bucket == "" {
				req.Bucket = cfg.Uploader.DefaultBucket
			}

			if upload(cmd.Context(), cfg, logger, req) {
				fmt.Fprintf(cmd.OutOrStdout(), "Upload Successful: %s\n", req.ResolvedObjectName())
			} else {
				fmt.Fprintf(cmd.OutOrStdout(), "Upload failed: %s\n", req.LocalPath)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&req.LocalPath, "file", "f", "", "Local file to upload (default from config)")
	cmd.Flags().StringVarP(&req.Bucket, "bucket", "b", "", "Destination bucket (default from config)")
	cmd.Flags().StringVarP(&req.ObjectName, "key", "k", "", "Object key (default: file base name)")
	cmd.Flags().StringVarP(&req.Region, "region", "r", "", "AWS region (default from config)")

	return cmd
}
