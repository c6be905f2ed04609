package domain

import (
	"fmt"
	"path/filepath"
)

// ObjectRef identifies one object in a storage bucket.
type ObjectRef struct {
	Bucket string
	Key    string
}

// URI returns the fully-qualified s3:// reference of the object.
func (r ObjectRef) URI() string {
	return fmt.Sprintf("s3://%s/%s", r.Bucket, r.Key)
}

// Label is a single category reported by the label-detection service.
// Confidence is on a 0-100 scale.
type Label struct {
	Name       string  `json:"name"`
	Confidence float64 `json:"confidence"`
}

// LabelSet is the ordered result of one label-detection call.
type LabelSet []Label

// Names returns the label names in service order.
func (s LabelSet) Names() []string {
	names := make([]string, 0, len(s))
	for _, l := range s {
		names = append(names, l.Name)
	}
	return names
}

// Contains reports whether a label with the exact name is present.
func (s LabelSet) Contains(name string) bool {
	for _, l := range s {
		if l.Name == name {
			return true
		}
	}
	return false
}

// Notification is one message destined for a notification topic.
type Notification struct {
	Topic   string
	Subject string
	Message string
}

// UploadRequest describes a local file to copy into a bucket.
type UploadRequest struct {
	LocalPath  string
	Bucket     string
	ObjectName string
	Region     string
}

// ResolvedObjectName returns ObjectName, or the base name of LocalPath when unset.
func (r UploadRequest) ResolvedObjectName() string {
	if r.ObjectName != "" {
		return r.ObjectName
	}
	return filepath.Base(r.LocalPath)
}

// InvocationResponse is the terminal status returned by the notifier function.
type InvocationResponse struct {
	StatusCode int    `json:"statusCode"`
	Body       string `json:"body"`
}
