package retryqueue

import (
	"context"

	"github.com/skynet2/whatsapp-finance-worker/pkg/database"
)

//go:generate mockgen -destination interfaces_mocks_test.go -package retryqueue_test -source=interfaces.go

type Queue interface {
	QueueLength(ctx context.Context, queue string) (int64, error)
	PopQueue(ctx context.Context, queue string) ([]byte, bool, error)
	PushQueue(ctx context.Context, queue string, payload []byte) error
}

type Repo interface {
	GetUser(ctx context.Context, phoneNumber string) (*database.User, error)
	SaveTransaction(ctx context.Context, tx *database.Transaction) error
	UpdateEmbedding(ctx context.Context, transactionID string, embedding []float64) error
}

type Embedder interface {
	Embed(ctx context.Context, text string) ([]float64, error)
}
