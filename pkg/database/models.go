package database

import (
	"time"

	"github.com/shopspring/decimal"
)

type Role string

const (
	RoleOwner  = Role("owner")
	RoleEditor = Role("editor")
)

type Account struct {
	ID            string `gorm:"primaryKey"`
	Name          string
	SpreadsheetID *string
	CreatedAt     time.Time
}

type User struct {
	ID                   string `gorm:"primaryKey"`
	PhoneNumber          string `gorm:"uniqueIndex"`
	Name                 string
	AccountID            string `gorm:"index"`
	Role                 Role
	EnableText           bool
	EnableImage          bool
	EnableVoice          bool
	CanViewSummary       bool
	CanAddTransaction    bool
	CanDeleteTransaction bool
	CreatedAt            time.Time
}

func (u *User) FeatureEnabled(kind MessageKind) bool {
	switch kind {
	case MessageKindText:
		return u.EnableText
	case MessageKindImage:
		return u.EnableImage
	case MessageKindVoice:
		return u.EnableVoice
	default:
		return false
	}
}

type Transaction struct {
	ID          string `gorm:"primaryKey"`
	UserID      string `gorm:"index"`
	AccountID   string `gorm:"index"`
	Source      MessageKind
	Type        TransactionType
	Category    string
	Amount      decimal.Decimal `gorm:"type:decimal(20,2)"`
	Description string
	Merchant    string
	Date        time.Time `gorm:"index"`
	MessageID   *string
	Embedding   []float64 `gorm:"serializer:json"`
	CreatedAt   time.Time
}

func (t *Transaction) Record() TransactionRecord {
	return TransactionRecord{
		Date:        t.Date,
		Type:        t.Type,
		Category:    t.Category,
		Amount:      t.Amount,
		Description: t.Description,
		Merchant:    t.Merchant,
	}
}

type Category struct {
	ID        string `gorm:"primaryKey"`
	AccountID string `gorm:"uniqueIndex:idx_category_account_name"`
	Name      string `gorm:"uniqueIndex:idx_category_account_name"`
	Type      TransactionType
	CreatedAt time.Time
}

type DuplicateKey struct {
	ID        string `gorm:"primaryKey"`
	CreatedAt time.Time
}
