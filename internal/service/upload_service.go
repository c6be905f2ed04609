package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"

	"go.uber.org/zap"

	"mediaguard/internal/domain"
	"mediaguard/internal/port"
)

// UploadService copies local files into object storage.
type UploadService interface {
	Upload(ctx context.Context, req domain.UploadRequest) bool
}

type uploadService struct {
	storageFor    port.StorageFactory
	defaultRegion string
	logger        *zap.Logger
}

// NewUploadService creates a new UploadService implementation. Requests
// without a region use defaultRegion.
func NewUploadService(storageFor port.StorageFactory, defaultRegion string, logger *zap.Logger) UploadService {
	return &uploadService{
		storageFor:    storageFor,
		defaultRegion: defaultRegion,
		logger:        logger,
	}
}

// Upload reports whether the file reached the bucket. Failures are logged,
// never returned.
func (s *uploadService) Upload(ctx context.Context, req domain.UploadRequest) bool {
	objectName := req.ResolvedObjectName()
	if err := s.upload(ctx, req, objectName); err != nil {
		s.logger.Error("uploadService.Upload: Error: "+err.Error(),
			zap.String("path", req.LocalPath),
			zap.String("bucket", req.Bucket),
			zap.String("key", objectName),
			zap.Error(err))
		return false
	}
	s.logger.Info("uploadService.Upload: upload complete",
		zap.String("bucket", req.Bucket),
		zap.String("key", objectName))
	return true
}

func (s *uploadService) upload(ctx context.Context, req domain.UploadRequest, objectName string) error {
	if req.Bucket == "" {
		return fmt.Errorf("%w: bucket name is empty", domain.ErrUploadFailed)
	}

	f, err := os.Open(req.LocalPath)
	if err != nil {
		return fmt.Errorf("%w: %w", domain.ErrFileAccess, err)
	}
	defer f.Close()

	contentType, err := sniffContentType(f)
	if err != nil {
		return fmt.Errorf("%w: %w", domain.ErrFileAccess, err)
	}

	region := req.Region
	if region == "" {
		region = s.defaultRegion
	}
	storage, err := s.storageFor(ctx, region)
	if err != nil {
		return fmt.Errorf("%w: %w", domain.ErrUploadFailed, err)
	}

	if _, err := storage.Upload(ctx, port.UploadInput{
		Bucket:      req.Bucket,
		Key:         objectName,
		Body:        f,
		ContentType: contentType,
	}); err != nil {
		return fmt.Errorf("%w: %w", domain.ErrUploadFailed, err)
	}
	return nil
}

// sniffContentType reads up to 512 bytes for magic-byte detection and rewinds f.
func sniffContentType(f io.ReadSeeker) (string, error) {
	buf := make([]byte, 512)
	n, err := f.Read(buf)
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("reading file header: %w", err)
	}
	if _, err := f.Seek(0, io.SeekStart); err != nil {
		return "", fmt.Errorf("seeking file: %w", err)
	}
	return http.DetectContentType(buf[:n]), nil
}
