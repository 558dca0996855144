package intent

import (
	"strings"
)

type Kind string

const (
	KindUnknown           = Kind("unknown")
	KindRegister          = Kind("register")
	KindInvite            = Kind("invite")
	KindAddCategory       = Kind("add_category")
	KindAddTransaction    = Kind("add_transaction")
	KindViewTransaction   = Kind("view_transaction")
	KindDeleteTransaction = Kind("delete_transaction")
	KindReport            = Kind("report")
	KindConsultation      = Kind("consultation")
)

const DefaultConfidenceThreshold = 0.7

// Intent is the single routing decision for a message, whether it came from a typed command or the classifier.
// Exactly one of the command payloads is set for command kinds.
type Intent struct {
	Kind       Kind
	Confidence float64
	Context    map[string]any

	// Fallback marks an intent chosen because classification failed.
	Fallback bool

	Register *RegisterCommand
	Invite   *InviteCommand
	Category *CategoryCommand
}

func (i Intent) IsCommand() bool {
	switch i.Kind {
	case KindRegister, KindInvite, KindAddCategory:
		return true
	default:
		return false
	}
}

// Actionable reports whether the intent is known and confident enough to act on.
func (i Intent) Actionable(threshold float64) bool {
	if i.Kind == KindUnknown || i.Kind == "" {
		return false
	}

	return i.Fallback || i.IsCommand() || i.Confidence >= threshold
}

var classifierLabels = map[string]Kind{
	"add_transaction":    KindAddTransaction,
	"transaction":        KindAddTransaction,
	"transaksi":          KindAddTransaction,
	"view_transaction":   KindViewTransaction,
	"view_transactions":  KindViewTransaction,
	"delete_transaction": KindDeleteTransaction,
	"report":             KindReport,
	"laporan":            KindReport,
	"konsultasi":         KindConsultation,
	"consultation":       KindConsultation,
	"consult":            KindConsultation,
}

func FromClassification(label string, confidence float64, context map[string]any) Intent {
	kind, ok := classifierLabels[strings.ToLower(strings.TrimSpace(label))]
	if !ok {
		kind = KindUnknown
	}

	return Intent{
		Kind:       kind,
		Confidence: min(max(confidence, 0), 1),
		Context:    context,
	}
}

// ClassificationFallback is used when the classifier is unavailable.
func ClassificationFallback() Intent {
	return Intent{
		Kind:     KindAddTransaction,
		Fallback: true,
	}
}
