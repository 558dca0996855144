package broker

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/skynet2/whatsapp-finance-worker/pkg/breaker"
	"github.com/skynet2/whatsapp-finance-worker/pkg/cache"
	"github.com/skynet2/whatsapp-finance-worker/pkg/common"
	"github.com/skynet2/whatsapp-finance-worker/pkg/database"
)

type Config struct {
	Addr     string
	Password string
	DB       int

	OperationTimeout     time.Duration
	MaxReconnectAttempts int
	ReconnectDelay       time.Duration
	ReconnectMaxDelay    time.Duration
	LastTransactionTTL   time.Duration

	Breaker  breaker.Config
	Fallback cache.Config
}

type Handler func(ctx context.Context, payload []byte)

type Status struct {
	Connected         bool           `json:"connected"`
	ReconnectAttempts int            `json:"reconnectAttempts"`
	Breaker           breaker.Status `json:"circuitBreaker"`
	FallbackSize      int            `json:"fallbackSize"`
}

type Redis struct {
	cfg      Config
	breaker  *breaker.Breaker
	fallback *cache.Memory[database.LastTransaction]
	// keys whose redis DEL failed; redis is not trusted for them until a DEL or SET lands
	tombstones *cache.Memory[struct{}]

	connMu sync.Mutex
	client *redis.Client

	mu                sync.RWMutex
	connected         bool
	reconnectAttempts int
}

func NewRedis(cfg Config) *Redis {
	if cfg.OperationTimeout <= 0 {
		cfg.OperationTimeout = 5 * time.Second
	}
	if cfg.MaxReconnectAttempts <= 0 {
		cfg.MaxReconnectAttempts = 5
	}
	if cfg.ReconnectDelay <= 0 {
		cfg.ReconnectDelay = time.Second
	}
	if cfg.ReconnectMaxDelay <= 0 {
		cfg.ReconnectMaxDelay = 10 * time.Second
	}
	if cfg.LastTransactionTTL <= 0 {
		cfg.LastTransactionTTL = 24 * time.Hour
	}
	if cfg.Breaker.Name == "" {
		cfg.Breaker.Name = "redis"
	}
	if cfg.Fallback.TTL <= 0 {
		cfg.Fallback.TTL = cfg.LastTransactionTTL
	}

	return &Redis{
		cfg:      cfg,
		breaker:  breaker.New(cfg.Breaker),
		fallback: cache.NewMemory[database.LastTransaction](cfg.Fallback),

		tombstones: cache.NewMemory[struct{}](cfg.Fallback),
	}
}

func (r *Redis) ensureConnected(ctx context.Context) (*redis.Client, error) {
	r.connMu.Lock()
	defer r.connMu.Unlock()

	if r.isConnected() {
		return r.client, nil
	}

	if r.client == nil {
		r.client = redis.NewClient(&redis.Options{
			Addr:        r.cfg.Addr,
			Password:    r.cfg.Password,
			DB:          r.cfg.DB,
			DialTimeout: r.cfg.OperationTimeout,
			MaxRetries:  -1,
		})
	}

	var lastErr error

	for attempt := 1; attempt <= r.cfg.MaxReconnectAttempts; attempt++ {
		pingCtx, cancel := context.WithTimeout(ctx, r.cfg.OperationTimeout)
		lastErr = r.client.Ping(pingCtx).Err()
		cancel()

		if lastErr == nil {
			r.setConnected(true, 0)
			zerolog.Ctx(ctx).Info().Str("addr", r.cfg.Addr).Msg("connected to redis")

			return r.client, nil
		}

		r.setConnected(false, attempt)

		if attempt == r.cfg.MaxReconnectAttempts {
			break
		}

		delay := min(time.Duration(attempt)*r.cfg.ReconnectDelay, r.cfg.ReconnectMaxDelay)
		zerolog.Ctx(ctx).Warn().Err(lastErr).Int("attempt", attempt).
			Dur("delay", delay).Msg("redis unreachable, retrying")

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(delay):
		}
	}

	return nil, errors.Mark(
		errors.Wrapf(lastErr, "redis unreachable after %d attempts", r.cfg.MaxReconnectAttempts),
		common.ErrNotConnected,
	)
}

func (r *Redis) isConnected() bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.connected
}

func (r *Redis) setConnected(connected bool, attempts int) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.connected = connected
	r.reconnectAttempts = attempts
}

// exec runs fn inside the breaker, racing it against the operation timeout.
func (r *Redis) exec(
	ctx context.Context,
	op string,
	fn func(ctx context.Context, cl *redis.Client) error,
) error {
	return r.breaker.Execute(ctx, func(ctx context.Context) error {
		cl, err := r.ensureConnected(ctx)
		if err != nil {
			return err
		}

		opCtx, cancel := context.WithTimeout(ctx, r.cfg.OperationTimeout)
		defer cancel()

		done := make(chan error, 1)
		go func() {
			done <- fn(opCtx, cl)
		}()

		select {
		case err = <-done:
		case <-opCtx.Done():
			if ctx.Err() != nil {
				return ctx.Err()
			}

			err = errors.Mark(
				errors.Newf("redis %s timed out after %s", op, r.cfg.OperationTimeout),
				common.ErrOperationTimeout,
			)
		}

		if isConnectionError(err) {
			r.setConnected(false, 0)
		}

		return err
	})
}

func isConnectionError(err error) bool {
	if err == nil || errors.Is(err, redis.Nil) {
		return false
	}

	var replyErr redis.Error
	if errors.As(err, &replyErr) {
		return false
	}

	return !errors.Is(err, context.Canceled)
}

func (r *Redis) Publish(ctx context.Context, channel string, payload []byte) error {
	err := r.exec(ctx, "publish", func(ctx context.Context, cl *redis.Client) error {
		return cl.Publish(ctx, channel, payload).Err()
	})

	return errors.Wrapf(err, "publish to %s", channel)
}

// Subscribe confirms the subscription and starts a single consumer that feeds handler until ctx ends.
func (r *Redis) Subscribe(ctx context.Context, channel string, handler Handler) error {
	var ps *redis.PubSub

	err := r.exec(ctx, "subscribe", func(opCtx context.Context, cl *redis.Client) error {
		sub := cl.Subscribe(ctx, channel)
		if _, err := sub.Receive(opCtx); err != nil {
			_ = sub.Close()
			return err
		}

		ps = sub

		return nil
	})
	if err != nil {
		return errors.Wrapf(err, "subscribe to %s", channel)
	}

	zerolog.Ctx(ctx).Info().Str("channel", channel).Msg("subscribed")

	go r.consume(ctx, channel, ps, handler)

	return nil
}

func (r *Redis) consume(ctx context.Context, channel string, ps *redis.PubSub, handler Handler) {
	defer func() {
		_ = ps.Close()
	}()

	messages := ps.Channel()

	for {
		select {
		case <-ctx.Done():
			return
		case msg, ok := <-messages:
			if !ok {
				zerolog.Ctx(ctx).Warn().Str("channel", channel).Msg("subscription channel closed")
				return
			}

			handler(ctx, []byte(msg.Payload))
		}
	}
}

func (r *Redis) SetLastTransaction(ctx context.Context, handle string, tx database.LastTransaction) {
	key := common.LastTransactionKey(handle)

	payload, err := json.Marshal(tx)
	if err != nil {
		zerolog.Ctx(ctx).Error().Err(err).Str("key", key).Msg("can not encode last transaction")
		return
	}

	err = r.exec(ctx, "set", func(ctx context.Context, cl *redis.Client) error {
		return cl.Set(ctx, key, payload, r.cfg.LastTransactionTTL).Err()
	})
	if err != nil {
		zerolog.Ctx(ctx).Warn().Err(err).Str("key", key).Msg("redis set failed, using fallback cache")
		r.fallback.Set(key, tx, r.cfg.LastTransactionTTL)

		return
	}

	r.fallback.Delete(key)
	r.tombstones.Delete(key)
}

func (r *Redis) GetLastTransaction(ctx context.Context, handle string) (*database.LastTransaction, bool) {
	key := common.LastTransactionKey(handle)

	if _, deleted := r.tombstones.Get(key); deleted {
		if r.deleteKey(ctx, key) == nil {
			r.tombstones.Delete(key)
		}

		return r.fromFallback(key)
	}

	var payload []byte
	found := false

	err := r.exec(ctx, "get", func(ctx context.Context, cl *redis.Client) error {
		data, err := cl.Get(ctx, key).Bytes()
		if errors.Is(err, redis.Nil) {
			return nil
		}
		if err != nil {
			return err
		}

		payload = data
		found = true

		return nil
	})
	if err != nil {
		zerolog.Ctx(ctx).Warn().Err(err).Str("key", key).Msg("redis get failed, using fallback cache")
		return r.fromFallback(key)
	}

	if !found {
		return r.fromFallback(key)
	}

	var tx database.LastTransaction
	if err = json.Unmarshal(payload, &tx); err != nil {
		zerolog.Ctx(ctx).Warn().Err(err).Str("key", key).Msg("corrupted last transaction in redis")
		return r.fromFallback(key)
	}

	return &tx, true
}

func (r *Redis) fromFallback(key string) (*database.LastTransaction, bool) {
	tx, ok := r.fallback.Get(key)
	if !ok {
		return nil, false
	}

	return &tx, true
}

func (r *Redis) DeleteLastTransaction(ctx context.Context, handle string) {
	key := common.LastTransactionKey(handle)

	r.fallback.Delete(key)

	if err := r.deleteKey(ctx, key); err != nil {
		zerolog.Ctx(ctx).Warn().Err(err).Str("key", key).Msg("redis del failed, key tombstoned until redis recovers")
		r.tombstones.Set(key, struct{}{}, r.cfg.LastTransactionTTL)

		return
	}

	r.tombstones.Delete(key)
}

func (r *Redis) deleteKey(ctx context.Context, key string) error {
	return r.exec(ctx, "del", func(ctx context.Context, cl *redis.Client) error {
		return cl.Del(ctx, key).Err()
	})
}

func (r *Redis) QueueLength(ctx context.Context, queue string) (int64, error) {
	var length int64

	err := r.exec(ctx, "llen", func(ctx context.Context, cl *redis.Client) error {
		res, err := cl.LLen(ctx, queue).Result()
		length = res

		return err
	})
	if err != nil {
		return 0, errors.Wrapf(err, "llen %s", queue)
	}

	return length, nil
}

// PopQueue takes the head of queue. The bool is false when the list is empty.
func (r *Redis) PopQueue(ctx context.Context, queue string) ([]byte, bool, error) {
	var payload []byte
	found := false

	err := r.exec(ctx, "lpop", func(ctx context.Context, cl *redis.Client) error {
		data, err := cl.LPop(ctx, queue).Bytes()
		if errors.Is(err, redis.Nil) {
			return nil
		}
		if err != nil {
			return err
		}

		payload = data
		found = true

		return nil
	})
	if err != nil {
		return nil, false, errors.Wrapf(err, "lpop %s", queue)
	}

	return payload, found, nil
}

func (r *Redis) PushQueue(ctx context.Context, queue string, payload []byte) error {
	err := r.exec(ctx, "rpush", func(ctx context.Context, cl *redis.Client) error {
		return cl.RPush(ctx, queue, payload).Err()
	})

	return errors.Wrapf(err, "rpush %s", queue)
}

func (r *Redis) Status() Status {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return Status{
		Connected:         r.connected,
		ReconnectAttempts: r.reconnectAttempts,
		Breaker:           r.breaker.Status(),
		FallbackSize:      r.fallback.Len(),
	}
}

func (r *Redis) Close() error {
	r.connMu.Lock()
	defer r.connMu.Unlock()

	r.setConnected(false, 0)

	if r.client == nil {
		return nil
	}

	err := r.client.Close()
	r.client = nil

	if err != nil {
		log.Warn().Err(err).Msg("error closing redis client")
	}

	return err
}
