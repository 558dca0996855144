package processor

import (
	"context"
	"runtime/debug"
	"time"

	"github.com/gammazero/workerpool"
	"github.com/rs/zerolog"

	"github.com/skynet2/whatsapp-finance-worker/pkg/database"
	"github.com/skynet2/whatsapp-finance-worker/pkg/metrics"
)

const defaultMaxInFlight = 10

// Dispatcher decodes subscription payloads and hands them to a bounded pool of handlers.
// Handle blocks while maxInFlight messages are being processed.
type Dispatcher struct {
	handler MessageHandler
	metrics *metrics.Metrics
	pool    *workerpool.WorkerPool
	slots   chan struct{}
}

func NewDispatcher(
	handler MessageHandler,
	maxInFlight int,
	m *metrics.Metrics,
) *Dispatcher {
	if maxInFlight <= 0 {
		maxInFlight = defaultMaxInFlight
	}

	return &Dispatcher{
		handler: handler,
		metrics: m,
		pool:    workerpool.New(maxInFlight),
		slots:   make(chan struct{}, maxInFlight),
	}
}

func (d *Dispatcher) Handle(ctx context.Context, payload []byte) {
	msg, err := database.DecodeInbound(payload)
	if err != nil {
		zerolog.Ctx(ctx).Error().Err(err).Bytes("payload", payload).Msg("dropping invalid incoming message")
		d.metrics.Error("invalid")

		return
	}

	select {
	case d.slots <- struct{}{}:
	case <-ctx.Done():
		zerolog.Ctx(ctx).Warn().Str("message_id", msg.MessageID).Msg("shutting down, message not processed")
		return
	}

	// in-flight messages finish even when the subscription is cancelled
	jobCtx := context.WithoutCancel(ctx)

	d.pool.Submit(func() {
		started := time.Now()

		defer func() {
			<-d.slots

			if rec := recover(); rec != nil {
				zerolog.Ctx(jobCtx).Error().
					Interface("panic", rec).
					Str("stack", string(debug.Stack())).
					Msg("panic while processing message")
				d.metrics.Error("panic")
			}

			d.metrics.ObserveMessage(string(msg.Kind), started)
		}()

		if err := d.handler.ProcessMessage(jobCtx, msg); err != nil {
			d.metrics.Error("publish")
		}
	})
}

// Stop waits for every submitted message to finish.
func (d *Dispatcher) Stop() {
	d.pool.StopWait()
}
