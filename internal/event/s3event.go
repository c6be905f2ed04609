package event

import (
	"fmt"
	"net/url"

	"github.com/aws/aws-lambda-go/events"

	"mediaguard/internal/domain"
)

// FirstObjectRef extracts the object reference of the first record in evt.
// Later records are ignored. The key is query-unescaped, so both "+" and
// "%20" decode to a space.
func FirstObjectRef(evt events.S3Event) (domain.ObjectRef, error) {
	if len(evt.Records) == 0 {
		return domain.ObjectRef{}, fmt.Errorf("%w: no records", domain.ErrInvalidEvent)
	}
	entity := evt.Records[0].S3

	bucket := entity.Bucket.Name
	if bucket == "" {
		return domain.ObjectRef{}, fmt.Errorf("%w: empty bucket name", domain.ErrInvalidEvent)
	}

	key, err := url.QueryUnescape(entity.Object.Key)
	if err != nil {
		return domain.ObjectRef{}, fmt.Errorf("%w: decoding key %q: %w", domain.ErrInvalidEvent, entity.Object.Key, err)
	}
	if key == "" {
		return domain.ObjectRef{}, fmt.Errorf("%w: empty object key", domain.ErrInvalidEvent)
	}

	return domain.ObjectRef{Bucket: bucket, Key: key}, nil
}

// RecordCount returns the number of records carried by evt.
func RecordCount(evt events.S3Event) int {
	return len(evt.Records)
}
