package processor

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/samber/lo"

	"github.com/skynet2/whatsapp-finance-worker/pkg/aiservice"
	"github.com/skynet2/whatsapp-finance-worker/pkg/common"
	"github.com/skynet2/whatsapp-finance-worker/pkg/database"
	"github.com/skynet2/whatsapp-finance-worker/pkg/duplicatecleaner"
	"github.com/skynet2/whatsapp-finance-worker/pkg/intent"
	"github.com/skynet2/whatsapp-finance-worker/pkg/printer"
)

// AddTransaction extracts records from the message, stores them and confirms.
// Extraction failures degrade to a default record. Failed writes go to the retry queue.
func (p *Processor) AddTransaction(
	ctx context.Context,
	user *database.User,
	msg database.InboundMessage,
) string {
	if !user.CanAddTransaction {
		return printer.MsgFeatureDenied
	}

	categories, err := p.cfg.Repo.GetCategories(ctx, user.AccountID)
	if err != nil {
		zerolog.Ctx(ctx).Warn().Err(err).Msg("failed to load categories, extracting without them")
	}

	extraction, err := p.extract(ctx, user.PhoneNumber, msg, categories)
	if err != nil || extraction == nil {
		zerolog.Ctx(ctx).Warn().Err(err).Msg("extraction failed, using default record")

		extraction = &database.Extraction{}
	}

	if len(extraction.Records) == 0 {
		if extraction.Message != "" {
			return extraction.Message
		}

		extraction.Records = []database.TransactionRecord{{}}
	}

	now := p.now()
	records := lo.Map(extraction.Records, func(rec database.TransactionRecord, _ int) database.TransactionRecord {
		return rec.Normalize(now, msg.RawInput())
	})

	duplicate, key := p.isDuplicate(ctx, msg)
	if duplicate {
		zerolog.Ctx(ctx).Info().Msg("message already processed, skipping persistence")

		return p.cfg.Printer.TransactionSaved(records, false)
	}

	pending := false

	for _, rec := range records {
		if !p.persist(ctx, user, msg, rec) {
			pending = true
		}
	}

	if key != "" {
		if err = p.cfg.DuplicateCleaner.AddDuplicateKey(ctx, key); err != nil {
			zerolog.Ctx(ctx).Warn().Err(err).Msg("failed to remember message id")
		}
	}

	p.cfg.StateStore.SetLastTransaction(ctx, user.PhoneNumber, database.LastTransaction{
		SourceKind: msg.Kind,
		RawInput:   msg.RawInput(),
		Result:     records[len(records)-1],
		MessageID:  msg.MessageID,
		Timestamp:  now,
	})

	return p.cfg.Printer.TransactionSaved(records, pending)
}

func (p *Processor) extract(
	ctx context.Context,
	phone string,
	msg database.InboundMessage,
	categories []string,
) (*database.Extraction, error) {
	media := aiservice.Media{
		Content:  msg.Content,
		MimeType: msg.MimeType,
	}

	switch msg.Kind {
	case database.MessageKindImage:
		return p.cfg.AIService.ExtractImage(ctx, media, msg.Caption, phone, categories)
	case database.MessageKindVoice:
		return p.cfg.AIService.ExtractVoice(ctx, media, phone)
	default:
		return p.cfg.AIService.ExtractText(ctx, msg.Text, phone, categories)
	}
}

func (p *Processor) isDuplicate(ctx context.Context, msg database.InboundMessage) (bool, string) {
	if p.cfg.DuplicateCleaner == nil {
		return false, ""
	}

	key := duplicatecleaner.MessageKey(msg.From, msg.MessageID)
	if key == "" {
		return false, ""
	}

	duplicate, err := p.cfg.DuplicateCleaner.IsDuplicate(ctx, key)
	if err != nil {
		zerolog.Ctx(ctx).Warn().Err(err).Msg("duplicate check failed, processing message")

		return false, key
	}

	return duplicate, key
}

// persist reports whether the record reached the database.
func (p *Processor) persist(
	ctx context.Context,
	user *database.User,
	msg database.InboundMessage,
	rec database.TransactionRecord,
) bool {
	tx := &database.Transaction{
		ID:          uuid.NewString(),
		UserID:      user.ID,
		AccountID:   user.AccountID,
		Source:      msg.Kind,
		Type:        rec.Type,
		Category:    rec.Category,
		Amount:      rec.Amount,
		Description: rec.Description,
		Merchant:    rec.Merchant,
		Date:        rec.Date,
	}

	if msg.MessageID != "" {
		tx.MessageID = lo.ToPtr(msg.MessageID)
	}

	if err := p.cfg.Repo.SaveTransaction(ctx, tx); err != nil {
		zerolog.Ctx(ctx).Error().Err(err).Msg("failed to save transaction, queueing for retry")

		p.enqueue(ctx, common.QueueFailedTransactions, database.FailedTransaction{
			From:      msg.From,
			Source:    msg.Kind,
			Data:      rec,
			Timestamp: p.cfg.Now().UnixMilli(),
			MessageID: msg.MessageID,
			LastError: err.Error(),
		})

		return false
	}

	p.embed(ctx, tx.ID, rec)

	return true
}

// embed runs on the background pool so the confirmation never waits for the embedding call.
func (p *Processor) embed(ctx context.Context, transactionID string, rec database.TransactionRecord) {
	bgCtx := context.WithoutCancel(ctx)
	text := database.EmbeddingContext(rec)

	p.background.Submit(func() {
		embedding, err := p.cfg.AIService.Embed(bgCtx, text)
		if err == nil {
			err = p.cfg.Repo.UpdateEmbedding(bgCtx, transactionID, embedding)
		}

		if err != nil {
			zerolog.Ctx(bgCtx).Warn().Err(err).
				Str("transaction_id", transactionID).
				Msg("embedding failed, queueing for retry")

			p.enqueue(bgCtx, common.QueueEmbeddingRetry, database.EmbeddingRetry{
				TransactionID: transactionID,
				Context:       text,
				LastError:     err.Error(),
			})
		}
	})
}

func (p *Processor) enqueue(ctx context.Context, queue string, item any) {
	payload, err := json.Marshal(item)
	if err == nil {
		err = p.cfg.RetryQueue.PushQueue(ctx, queue, payload)
	}

	if err != nil {
		zerolog.Ctx(ctx).Error().Err(err).
			Str("queue", queue).
			Bytes("payload", payload).
			Msg("failed to enqueue retry item")
	}
}

func (p *Processor) ViewTransactions(
	ctx context.Context,
	user *database.User,
) string {
	period := intent.CurrentMonth(p.now())

	records, err := p.cfg.Repo.GetTransactions(ctx, user.AccountID, period.Start, period.End)
	if err != nil {
		zerolog.Ctx(ctx).Error().Err(err).Msg("failed to load transactions")

		return printer.MsgGenericFailure
	}

	return p.cfg.Printer.TransactionHistory(records)
}

// DeleteLastTransaction undoes the sender's most recent capture within the last-transaction window.
func (p *Processor) DeleteLastTransaction(
	ctx context.Context,
	user *database.User,
) string {
	last, ok := p.cfg.StateStore.GetLastTransaction(ctx, user.PhoneNumber)
	if !ok {
		return printer.MsgNothingToDelete
	}

	if err := p.cfg.Repo.DeleteTransaction(ctx, user.AccountID, last.Result); err != nil {
		zerolog.Ctx(ctx).Error().Err(err).Msg("failed to delete last transaction")

		return printer.MsgDeleteFailed
	}

	p.cfg.StateStore.DeleteLastTransaction(ctx, user.PhoneNumber)

	return printer.MsgDeleted
}

func (p *Processor) Report(
	ctx context.Context,
	user *database.User,
	text string,
) string {
	if !user.CanViewSummary {
		return printer.MsgReportDenied
	}

	query, err := intent.ParseReportQuery(text, p.now())
	if err != nil {
		reply, ok := intent.UserMessage(err)
		if !ok {
			return printer.MsgReportUnknown
		}

		return reply
	}

	records, err := p.cfg.Repo.GetTransactions(ctx, user.AccountID, query.Period.Start, query.Period.End)
	if err != nil {
		zerolog.Ctx(ctx).Error().Err(err).Msg("failed to load report transactions")

		return printer.MsgReportFailed
	}

	return p.cfg.Printer.Report(query, records)
}

func (p *Processor) Consult(
	ctx context.Context,
	handle string,
	text string,
) string {
	reply, err := p.cfg.AIService.Consult(ctx, text, handle)
	if err != nil {
		zerolog.Ctx(ctx).Warn().Err(err).Msg("consultation failed")

		return printer.MsgConsultFallback
	}

	if strings.TrimSpace(reply) == "" {
		return printer.MsgConsultFallback
	}

	return reply
}
