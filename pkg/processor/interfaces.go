package processor

import (
	"context"
	"time"

	"github.com/skynet2/whatsapp-finance-worker/pkg/aiservice"
	"github.com/skynet2/whatsapp-finance-worker/pkg/database"
	"github.com/skynet2/whatsapp-finance-worker/pkg/intent"
)

//go:generate mockgen -destination interfaces_mocks_test.go -package processor_test -source=interfaces.go

type Repo interface {
	GetUser(ctx context.Context, phoneNumber string) (*database.User, error)
	AddUser(ctx context.Context, user *database.User) error
	CreateAccountWithOwner(ctx context.Context, accountName string, owner *database.User) (*database.Account, error)
	SaveTransaction(ctx context.Context, tx *database.Transaction) error
	GetTransactions(ctx context.Context, accountID string, from time.Time, to time.Time) ([]*database.Transaction, error)
	DeleteTransaction(ctx context.Context, accountID string, record database.TransactionRecord) error
	UpdateEmbedding(ctx context.Context, transactionID string, embedding []float64) error
	GetCategories(ctx context.Context, accountID string) ([]string, error)
	EnsureCategory(ctx context.Context, accountID string, name string, txType database.TransactionType) error
}

type AIService interface {
	Classify(ctx context.Context, text string, phone string) (intent.Intent, error)
	ExtractText(ctx context.Context, text string, phone string, categories []string) (*database.Extraction, error)
	ExtractImage(
		ctx context.Context,
		media aiservice.Media,
		caption string,
		phone string,
		categories []string,
	) (*database.Extraction, error)
	ExtractVoice(ctx context.Context, media aiservice.Media, phone string) (*database.Extraction, error)
	Consult(ctx context.Context, message string, phone string) (string, error)
	Embed(ctx context.Context, text string) ([]float64, error)
}

type StateStore interface {
	SetLastTransaction(ctx context.Context, handle string, tx database.LastTransaction)
	GetLastTransaction(ctx context.Context, handle string) (*database.LastTransaction, bool)
	DeleteLastTransaction(ctx context.Context, handle string)
}

type RetryQueue interface {
	PushQueue(ctx context.Context, queue string, payload []byte) error
}

type NotificationSvc interface {
	SendMessage(ctx context.Context, to string, text string) error
}

type DuplicateCleaner interface {
	IsDuplicate(ctx context.Context, key string) (bool, error)
	AddDuplicateKey(ctx context.Context, key string) error
}

type MessageHandler interface {
	ProcessMessage(ctx context.Context, msg database.InboundMessage) error
}
