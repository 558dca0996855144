package breaker

import (
	"context"
	"sync"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/rs/zerolog/log"

	"github.com/skynet2/whatsapp-finance-worker/pkg/common"
)

const (
	DefaultFailureThreshold = 5
	DefaultResetTimeout     = 60 * time.Second
)

type Config struct {
	Name             string
	FailureThreshold int
	ResetTimeout     time.Duration

	// IsFailure decides whether an error counts against the dependency. Nil counts every error.
	IsFailure func(err error) bool
	Now       func() time.Time
}

type Status struct {
	Name            string    `json:"name"`
	IsOpen          bool      `json:"isOpen"`
	Failures        int       `json:"failures"`
	LastFailureTime time.Time `json:"lastFailureTime,omitempty"`
}

type Breaker struct {
	cfg Config

	mu          sync.Mutex
	failures    int
	lastFailure time.Time
	open        bool
}

func New(cfg Config) *Breaker {
	if cfg.FailureThreshold <= 0 {
		cfg.FailureThreshold = DefaultFailureThreshold
	}
	if cfg.ResetTimeout <= 0 {
		cfg.ResetTimeout = DefaultResetTimeout
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}

	return &Breaker{
		cfg: cfg,
	}
}

func (b *Breaker) Execute(
	ctx context.Context,
	fn func(ctx context.Context) error,
) error {
	if err := b.allow(); err != nil {
		return err
	}

	err := fn(ctx)
	b.record(err)

	return err
}

// Do runs fn through b and hands back its result.
func Do[T any](
	ctx context.Context,
	b *Breaker,
	fn func(ctx context.Context) (T, error),
) (T, error) {
	var result T

	err := b.Execute(ctx, func(ctx context.Context) error {
		var innerErr error
		result, innerErr = fn(ctx)

		return innerErr
	})

	return result, err
}

func (b *Breaker) allow() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.open {
		return nil
	}

	if b.cfg.Now().Sub(b.lastFailure) < b.cfg.ResetTimeout {
		return errors.Wrapf(common.ErrCircuitOpen, "breaker %s", b.cfg.Name)
	}

	b.open = false
	b.failures = 0

	log.Info().Str("breaker", b.cfg.Name).Msg("circuit breaker reset, allowing a trial call")

	return nil
}

func (b *Breaker) record(err error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if err == nil || (b.cfg.IsFailure != nil && !b.cfg.IsFailure(err)) {
		b.failures = 0
		return
	}

	b.failures++
	b.lastFailure = b.cfg.Now()

	if !b.open && b.failures >= b.cfg.FailureThreshold {
		b.open = true

		log.Warn().Str("breaker", b.cfg.Name).Int("failures", b.failures).
			Err(err).Msg("circuit breaker opened")
	}
}

func (b *Breaker) Status() Status {
	b.mu.Lock()
	defer b.mu.Unlock()

	return Status{
		Name:            b.cfg.Name,
		IsOpen:          b.open,
		Failures:        b.failures,
		LastFailureTime: b.lastFailure,
	}
}
