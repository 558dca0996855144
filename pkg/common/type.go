package common

import "strings"

const (
	ChannelIncomingMessage = "incoming-message"
	ChannelResponse        = "whatsapp-response"

	QueueFailedTransactions = "failed:transactions"
	QueueEmbeddingRetry     = "embedding:retry_queue"
	DeadLetterSuffix        = ":dead"

	LastTransactionKeyPrefix = "last_transaction:"
)

const whatsappSuffix = "@s.whatsapp.net"

// NormalizeHandle turns a gateway sender id into the bare phone number used as user key.
func NormalizeHandle(from string) string {
	handle := strings.TrimSpace(from)
	handle = strings.TrimSuffix(handle, whatsappSuffix)

	return strings.ReplaceAll(handle, "+", "")
}

func LastTransactionKey(handle string) string {
	return LastTransactionKeyPrefix + handle
}

func DeadLetterQueue(queue string) string {
	return queue + DeadLetterSuffix
}
