package retryqueue

import (
	"context"

	"github.com/cockroachdb/errors"
)

var errMalformed = errors.New("malformed retry item")

// Policy bounds re-enqueueing. MaxAttempts of zero re-enqueues failures forever.
type Policy struct {
	MaxAttempts int
}

type Stats struct {
	Queue        string `json:"queue"`
	Processed    int    `json:"processed"`
	Succeeded    int    `json:"succeeded"`
	Requeued     int    `json:"requeued"`
	DeadLettered int    `json:"deadLettered"`
	Dropped      int    `json:"dropped"`
}

type Drainer interface {
	Name() string
	Drain(ctx context.Context) (Stats, error)
}

// handler processes one raw item. On failure it returns the payload to re-enqueue and the attempt count so far.
type handler func(ctx context.Context, raw []byte) (requeue []byte, attempts int, err error)
