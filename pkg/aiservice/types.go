package aiservice

import (
	"encoding/json"
	"fmt"
	"time"
)

const (
	pathClassify               = "/classify"
	pathProcessText            = "/process_text"
	pathProcessTextCategories  = "/process_text_with_categories"
	pathProcessImage           = "/process_image"
	pathProcessImageCategories = "/process_image_with_categories"
	pathProcessVoice           = "/process_voice"
	pathConsult                = "/consult"
	pathEmbed                  = "/embed"
	pathHealth                 = "/health"
)

const maxRetryAfter = 60 * time.Second

type Media struct {
	Content  []byte
	MimeType string
}

type classifyRequest struct {
	Text        string `json:"text"`
	PhoneNumber string `json:"phone_number"`
}

type classifyResponse struct {
	Intent     string         `json:"intent"`
	Confidence float64        `json:"confidence"`
	Context    map[string]any `json:"context"`
}

type processTextRequest struct {
	Text        string   `json:"text"`
	PhoneNumber string   `json:"phone_number"`
	Categories  []string `json:"categories,omitempty"`
}

type extractionResponse struct {
	Status  string          `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

type rawRecord struct {
	Date            string          `json:"date"`
	Category        string          `json:"category"`
	Amount          json.RawMessage `json:"amount"`
	Description     string          `json:"description"`
	Type            string          `json:"type"`
	TransactionType string          `json:"transaction_type"`
	Merchant        *string         `json:"merchant"`
}

type consultRequest struct {
	Message     string `json:"message"`
	PhoneNumber string `json:"phone_number"`
}

type consultResponse struct {
	Reply string `json:"reply"`
}

type embedRequest struct {
	Text string `json:"text"`
}

type embedResponse struct {
	Embedding []float64 `json:"embedding"`
}

// StatusError is a non-2xx answer from the service.
type StatusError struct {
	Op         string
	StatusCode int
	Body       string
	RetryAfter time.Duration
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s: unexpected status code %d: %s", e.Op, e.StatusCode, e.Body)
}
