package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "finance_worker"

// Metrics is safe to use as a nil pointer, every method is then a no-op.
type Metrics struct {
	messages   *prometheus.CounterVec
	duration   *prometheus.HistogramVec
	errors     *prometheus.CounterVec
	retryItems *prometheus.CounterVec
}

func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		messages: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "messages_total",
				Help:      "Inbound messages handled, by message type.",
			},
			[]string{"type"},
		),
		duration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "message_processing_seconds",
				Help:      "Time from decode to published reply.",
				Buckets:   []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30, 60},
			},
			[]string{"type"},
		),
		errors: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "errors_total",
				Help:      "Failures while handling messages, by message type.",
			},
			[]string{"type"},
		),
		retryItems: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "retry_items_total",
				Help:      "Retry queue items by outcome.",
			},
			[]string{"queue", "outcome"},
		),
	}

	reg.MustRegister(m.messages, m.duration, m.errors, m.retryItems)

	return m
}

func (m *Metrics) ObserveMessage(kind string, started time.Time) {
	if m == nil {
		return
	}

	m.messages.WithLabelValues(kind).Inc()
	m.duration.WithLabelValues(kind).Observe(time.Since(started).Seconds())
}

func (m *Metrics) Error(kind string) {
	if m == nil {
		return
	}

	m.errors.WithLabelValues(kind).Inc()
}

func (m *Metrics) RetryItems(queue string, outcome string, count int) {
	if m == nil || count <= 0 {
		return
	}

	m.retryItems.WithLabelValues(queue, outcome).Add(float64(count))
}
