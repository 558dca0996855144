package retryqueue

import (
	"context"
	"encoding/json"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/skynet2/whatsapp-finance-worker/pkg/common"
	"github.com/skynet2/whatsapp-finance-worker/pkg/database"
)

type worker struct {
	queue  Queue
	name   string
	policy Policy
}

// drain handles a snapshot of the queue: only the items present when the pass starts are popped,
// so items re-enqueued during the pass wait for the next one.
// Cancellation of ctx is observed between items only. A popped item is always finished and
// re-enqueued on a context that outlives the cancellation.
func (w *worker) drain(ctx context.Context, h handler) (Stats, error) {
	stats := Stats{Queue: w.name}
	lg := zerolog.Ctx(ctx).With().Str("queue", w.name).Logger()
	itemCtx := context.WithoutCancel(ctx)

	length, err := w.queue.QueueLength(ctx, w.name)
	if err != nil {
		return stats, errors.Wrapf(err, "length of %s", w.name)
	}

	for i := int64(0); i < length; i++ {
		if err = ctx.Err(); err != nil {
			return stats, err
		}

		raw, ok, err := w.queue.PopQueue(itemCtx, w.name)
		if err != nil {
			return stats, errors.Wrapf(err, "pop %s", w.name)
		}

		if !ok {
			break
		}

		stats.Processed++

		requeue, attempts, err := h(itemCtx, raw)
		switch {
		case err == nil:
			stats.Succeeded++
			continue
		case errors.Is(err, errMalformed):
			stats.Dropped++
			lg.Warn().Err(err).Str("payload", string(raw)).Msg("dropping malformed retry item")
			continue
		}

		dead := w.policy.MaxAttempts > 0 && attempts >= w.policy.MaxAttempts

		target := w.name
		if dead {
			target = common.DeadLetterQueue(w.name)
		}

		lg.Warn().Err(err).Int("attempts", attempts).Str("target", target).Msg("retry failed")

		if pushErr := w.queue.PushQueue(itemCtx, target, requeue); pushErr != nil {
			lg.Error().Err(pushErr).Str("payload", string(requeue)).Msg("can not re-enqueue retry item")

			return stats, errors.Wrapf(pushErr, "push %s", target)
		}

		if dead {
			stats.DeadLettered++
		} else {
			stats.Requeued++
		}
	}

	return stats, nil
}

type TransactionWorker struct {
	worker
	repo Repo
	now  func() time.Time
}

func NewTransactionWorker(
	queue Queue,
	repo Repo,
	policy Policy,
) *TransactionWorker {
	return &TransactionWorker{
		worker: worker{
			queue:  queue,
			name:   common.QueueFailedTransactions,
			policy: policy,
		},
		repo: repo,
		now:  time.Now,
	}
}

func (w *TransactionWorker) Name() string {
	return w.name
}

func (w *TransactionWorker) Drain(ctx context.Context) (Stats, error) {
	return w.drain(ctx, w.handle)
}

func (w *TransactionWorker) handle(ctx context.Context, raw []byte) ([]byte, int, error) {
	var item database.FailedTransaction
	if err := json.Unmarshal(raw, &item); err != nil {
		return nil, 0, errors.Mark(errors.Wrap(err, "decode failed transaction"), errMalformed)
	}

	handle := common.NormalizeHandle(item.From)
	if handle == "" {
		return nil, 0, errors.Wrap(errMalformed, "failed transaction without sender")
	}

	if err := w.save(ctx, handle, item); err != nil {
		item.Attempts++
		item.LastError = err.Error()

		requeue, marshalErr := json.Marshal(item)
		if marshalErr != nil {
			return nil, 0, errors.Mark(marshalErr, errMalformed)
		}

		return requeue, item.Attempts, err
	}

	return nil, item.Attempts, nil
}

func (w *TransactionWorker) save(ctx context.Context, handle string, item database.FailedTransaction) error {
	user, err := w.repo.GetUser(ctx, handle)
	if err != nil {
		return errors.Wrapf(err, "user %s", handle)
	}

	capturedAt := w.now()
	if item.Timestamp > 0 {
		capturedAt = time.UnixMilli(item.Timestamp)
	}

	record := item.Data.Normalize(capturedAt, "")

	source := item.Source
	if source == "" {
		source = database.MessageKindText
	}

	tx := &database.Transaction{
		ID:          uuid.NewString(),
		UserID:      user.ID,
		AccountID:   user.AccountID,
		Source:      source,
		Type:        record.Type,
		Category:    record.Category,
		Amount:      record.Amount,
		Description: record.Description,
		Merchant:    record.Merchant,
		Date:        record.Date,
	}

	if item.MessageID != "" {
		tx.MessageID = &item.MessageID
	}

	if err = w.repo.SaveTransaction(ctx, tx); err != nil {
		return err
	}

	job, err := json.Marshal(database.EmbeddingRetry{
		TransactionID: tx.ID,
		Context:       database.EmbeddingContext(record),
	})
	if err == nil {
		err = w.queue.PushQueue(ctx, common.QueueEmbeddingRetry, job)
	}

	if err != nil {
		zerolog.Ctx(ctx).Warn().Err(err).Str("transaction_id", tx.ID).Msg("can not schedule embedding")
	}

	return nil
}

type EmbeddingWorker struct {
	worker
	repo     Repo
	embedder Embedder
}

func NewEmbeddingWorker(
	queue Queue,
	repo Repo,
	embedder Embedder,
	policy Policy,
) *EmbeddingWorker {
	return &EmbeddingWorker{
		worker: worker{
			queue:  queue,
			name:   common.QueueEmbeddingRetry,
			policy: policy,
		},
		repo:     repo,
		embedder: embedder,
	}
}

func (w *EmbeddingWorker) Name() string {
	return w.name
}

func (w *EmbeddingWorker) Drain(ctx context.Context) (Stats, error) {
	return w.drain(ctx, w.handle)
}

func (w *EmbeddingWorker) handle(ctx context.Context, raw []byte) ([]byte, int, error) {
	var item database.EmbeddingRetry
	if err := json.Unmarshal(raw, &item); err != nil {
		return nil, 0, errors.Mark(errors.Wrap(err, "decode embedding retry"), errMalformed)
	}

	if item.TargetID() == "" || item.Text() == "" {
		return nil, 0, errors.Wrap(errMalformed, "embedding retry without target or text")
	}

	err := w.embed(ctx, item)
	if err == nil {
		return nil, item.RetryCount, nil
	}

	item.RetryCount++
	item.LastError = err.Error()

	requeue, marshalErr := json.Marshal(item)
	if marshalErr != nil {
		return nil, 0, errors.Mark(marshalErr, errMalformed)
	}

	return requeue, item.RetryCount, err
}

func (w *EmbeddingWorker) embed(ctx context.Context, item database.EmbeddingRetry) error {
	vector, err := w.embedder.Embed(ctx, item.Text())
	if err != nil {
		return errors.Wrap(err, "embed")
	}

	return w.repo.UpdateEmbedding(ctx, item.TargetID(), vector)
}
