package processor

import (
	"context"
	"sync"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/gammazero/workerpool"
	"github.com/rs/zerolog"
	"golang.org/x/time/rate"

	"github.com/skynet2/whatsapp-finance-worker/pkg/common"
	"github.com/skynet2/whatsapp-finance-worker/pkg/database"
	"github.com/skynet2/whatsapp-finance-worker/pkg/intent"
	"github.com/skynet2/whatsapp-finance-worker/pkg/printer"
)

type Config struct {
	Repo            Repo
	AIService       AIService
	StateStore      StateStore
	RetryQueue      RetryQueue
	NotificationSvc NotificationSvc

	// DuplicateCleaner enables message id idempotency when set.
	DuplicateCleaner DuplicateCleaner
	Printer          *printer.Printer

	ConfidenceThreshold float64
	Location            *time.Location

	// RateLimitMessages per RateLimitWindow per user. Zero disables limiting.
	RateLimitMessages int
	RateLimitWindow   time.Duration

	// BackgroundWorkers bounds concurrent embedding calls made after a reply.
	BackgroundWorkers int

	Now func() time.Time
}

const defaultBackgroundWorkers = 4

type Processor struct {
	cfg        Config
	background *workerpool.WorkerPool

	limitersMu sync.Mutex
	limiters   map[string]*rate.Limiter
}

func NewProcessor(cfg Config) *Processor {
	if cfg.ConfidenceThreshold <= 0 {
		cfg.ConfidenceThreshold = intent.DefaultConfidenceThreshold
	}
	if cfg.Location == nil {
		cfg.Location = time.UTC
	}
	if cfg.Printer == nil {
		cfg.Printer = printer.NewPrinter(cfg.Location)
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	if cfg.BackgroundWorkers <= 0 {
		cfg.BackgroundWorkers = defaultBackgroundWorkers
	}

	return &Processor{
		cfg:        cfg,
		background: workerpool.New(cfg.BackgroundWorkers),
		limiters:   map[string]*rate.Limiter{},
	}
}

// Close waits for background embedding jobs to finish.
func (p *Processor) Close() {
	p.background.StopWait()
}

// ProcessMessage routes one inbound message and publishes exactly one reply to the sender.
// Only a failure to publish that reply is returned.
func (p *Processor) ProcessMessage(
	ctx context.Context,
	msg database.InboundMessage,
) error {
	handle := common.NormalizeHandle(msg.From)

	lg := zerolog.Ctx(ctx).With().
		Str("from", handle).
		Str("message_id", msg.MessageID).
		Str("type", string(msg.Kind)).
		Logger()
	ctx = lg.WithContext(ctx)

	reply := p.route(ctx, handle, msg)

	if err := p.cfg.NotificationSvc.SendMessage(ctx, msg.From, reply); err != nil {
		lg.Error().Err(err).Msg("failed to publish reply")

		return err
	}

	return nil
}

func (p *Processor) route(
	ctx context.Context,
	handle string,
	msg database.InboundMessage,
) string {
	if msg.Kind == database.MessageKindText {
		cmd, isCommand, err := intent.ParseCommand(msg.Text)
		if isCommand {
			if err != nil {
				reply, _ := intent.UserMessage(err)

				return reply
			}

			switch cmd.Kind {
			case intent.KindRegister:
				return p.Register(ctx, handle, cmd.Register)
			case intent.KindInvite:
				return p.Invite(ctx, handle, cmd.Invite)
			case intent.KindAddCategory:
				return p.AddCategory(ctx, handle, cmd.Category)
			}
		}
	}

	user, err := p.cfg.Repo.GetUser(ctx, handle)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return printer.MsgRegisterHint
		}

		zerolog.Ctx(ctx).Error().Err(err).Msg("failed to resolve user")

		return printer.MsgGenericFailure
	}

	if !p.allow(handle) {
		zerolog.Ctx(ctx).Warn().Msg("rate limited")

		return printer.MsgRateLimited
	}

	if !user.FeatureEnabled(msg.Kind) {
		return printer.MsgFeatureDenied
	}

	if msg.Kind != database.MessageKindText {
		return p.AddTransaction(ctx, user, msg)
	}

	in := p.classify(ctx, handle, msg.Text)
	if !in.Actionable(p.cfg.ConfidenceThreshold) {
		zerolog.Ctx(ctx).Info().
			Str("intent", string(in.Kind)).
			Float64("confidence", in.Confidence).
			Msg("intent not actionable, asking to clarify")

		return printer.MsgClarify
	}

	switch in.Kind {
	case intent.KindAddTransaction:
		return p.AddTransaction(ctx, user, msg)
	case intent.KindViewTransaction:
		return p.ViewTransactions(ctx, user)
	case intent.KindDeleteTransaction:
		return p.DeleteLastTransaction(ctx, user)
	case intent.KindReport:
		return p.Report(ctx, user, msg.Text)
	case intent.KindConsultation:
		return p.Consult(ctx, handle, msg.Text)
	default:
		return printer.MsgClarify
	}
}

func (p *Processor) classify(ctx context.Context, handle string, text string) intent.Intent {
	in, err := p.cfg.AIService.Classify(ctx, text, handle)
	if err != nil {
		zerolog.Ctx(ctx).Warn().Err(err).Msg("classification failed, treating message as transaction")

		return intent.ClassificationFallback()
	}

	return in
}

func (p *Processor) allow(handle string) bool {
	if p.cfg.RateLimitMessages <= 0 {
		return true
	}

	p.limitersMu.Lock()
	defer p.limitersMu.Unlock()

	limiter, ok := p.limiters[handle]
	if !ok {
		every := rate.Every(p.cfg.RateLimitWindow / time.Duration(p.cfg.RateLimitMessages))
		limiter = rate.NewLimiter(every, p.cfg.RateLimitMessages)
		p.limiters[handle] = limiter
	}

	return limiter.AllowN(p.cfg.Now(), 1)
}

func (p *Processor) now() time.Time {
	return p.cfg.Now().In(p.cfg.Location)
}
