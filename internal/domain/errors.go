package domain

import "errors"

var (
	ErrInvalidEvent        = errors.New("invalid storage event")
	ErrLabelDetection      = errors.New("label detection failed")
	ErrNotificationPublish = errors.New("notification publish failed")
	ErrFileAccess          = errors.New("local file not readable")
	ErrUploadFailed        = errors.New("file upload to storage failed")
	ErrInvalidConfig       = errors.New("invalid configuration")
)
