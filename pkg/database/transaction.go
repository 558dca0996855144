package database

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

type TransactionType string

const (
	TransactionTypeIncome  = TransactionType("income")
	TransactionTypeExpense = TransactionType("expense")
)

const (
	DefaultCategory    = "Lainnya"
	DefaultDescription = "Tidak ada deskripsi"
)

func ParseTransactionType(raw string) TransactionType {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "income", "pemasukan", "masuk", "credit":
		return TransactionTypeIncome
	default:
		return TransactionTypeExpense
	}
}

type TransactionRecord struct {
	Date        time.Time       `json:"date"`
	Type        TransactionType `json:"type"`
	Category    string          `json:"category"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description"`
	Merchant    string          `json:"merchant,omitempty"`
}

// Normalize fills every missing field with its default and forces a non-negative amount.
func (r TransactionRecord) Normalize(now time.Time, fallbackDescription string) TransactionRecord {
	if r.Date.IsZero() {
		r.Date = now
	}

	r.Category = strings.TrimSpace(r.Category)
	if r.Category == "" {
		r.Category = DefaultCategory
	}

	r.Amount = r.Amount.Abs()
	r.Type = ParseTransactionType(string(r.Type))

	r.Description = strings.TrimSpace(r.Description)
	if r.Description == "" {
		r.Description = strings.TrimSpace(fallbackDescription)
	}
	if r.Description == "" {
		r.Description = DefaultDescription
	}

	r.Merchant = strings.TrimSpace(r.Merchant)

	return r
}

type LastTransaction struct {
	SourceKind MessageKind       `json:"type"`
	RawInput   string            `json:"raw"`
	Result     TransactionRecord `json:"result"`
	MessageID  string            `json:"messageId"`
	Timestamp  time.Time         `json:"timestamp"`
}

type FailedTransaction struct {
	From      string            `json:"from"`
	Source    MessageKind       `json:"source"`
	Data      TransactionRecord `json:"data"`
	Timestamp int64             `json:"timestamp"`
	MessageID string            `json:"messageId,omitempty"`
	Attempts  int               `json:"attempts,omitempty"`
	LastError string            `json:"lastError,omitempty"`
}

type EmbeddingRetry struct {
	TransactionID string `json:"transactionId,omitempty"`
	ID            string `json:"id,omitempty"`
	Context       string `json:"context,omitempty"`
	Description   string `json:"description,omitempty"`
	RetryCount    int    `json:"retryCount,omitempty"`
	LastError     string `json:"lastError,omitempty"`
}

func (e EmbeddingRetry) TargetID() string {
	if e.TransactionID != "" {
		return e.TransactionID
	}

	return e.ID
}

func (e EmbeddingRetry) Text() string {
	if e.Context != "" {
		return e.Context
	}

	return e.Description
}

type Extraction struct {
	Records []TransactionRecord
	Message string
}

func EmbeddingContext(record TransactionRecord) string {
	merchant := record.Merchant
	if merchant == "" {
		merchant = "-"
	}

	return strings.Join([]string{
		fmt.Sprintf("Deskripsi: %s", record.Description),
		fmt.Sprintf("Kategori: %s", record.Category),
		fmt.Sprintf("Nominal: %s", record.Amount.String()),
		fmt.Sprintf("Tipe: %s", record.Type),
		fmt.Sprintf("Merchant: %s", merchant),
		fmt.Sprintf("Tanggal: %s", record.Date.Format(time.RFC3339)),
	}, "\n")
}
