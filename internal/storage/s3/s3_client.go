package s3

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"mediaguard/internal/awsclient"
	"mediaguard/internal/config"
	"mediaguard/internal/port"
)

type s3Client struct {
	uploader *manager.Uploader
}

// NewS3Client creates a new S3-backed ObjectStorage implementation for region.
func NewS3Client(ctx context.Context, cfg *config.AWSConfig, region string) (port.ObjectStorage, error) {
	awsCfg, err := awsclient.Load(ctx, cfg, region)
	if err != nil {
		return nil, err
	}

	var s3Opts []func(*s3.Options)
	if cfg.Endpoint != "" {
		s3Opts = append(s3Opts, func(o *s3.Options) {
			o.UsePathStyle = true
		})
	}

	client := s3.NewFromConfig(awsCfg, s3Opts...)
	return &s3Client{uploader: manager.NewUploader(client)}, nil
}

// NewFactory returns a port.StorageFactory that builds S3 clients from cfg.
func NewFactory(cfg *config.AWSConfig) port.StorageFactory {
	return func(ctx context.Context, region string) (port.ObjectStorage, error) {
		return NewS3Client(ctx, cfg, region)
	}
}

func (c *s3Client) Upload(ctx context.Context, input port.UploadInput) (*port.UploadOutput, error) {
	params := &s3.PutObjectInput{
		Bucket: aws.String(input.Bucket),
		Key:    aws.String(input.Key),
		Body:   input.Body,
	}
	if input.ContentType != "" {
		params.ContentType = aws.String(input.ContentType)
	}

	result, err := c.uploader.Upload(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("s3 upload: %w", err)
	}

	etag := ""
	if result.ETag != nil {
		etag = *result.ETag
	}

	return &port.UploadOutput{
		Location: result.Location,
		ETag:     etag,
	}, nil
}
