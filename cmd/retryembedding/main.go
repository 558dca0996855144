package main

import (
	"context"
	"os"

	"github.com/imroc/req/v3"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/skynet2/whatsapp-finance-worker/pkg/aiservice"
	"github.com/skynet2/whatsapp-finance-worker/pkg/breaker"
	"github.com/skynet2/whatsapp-finance-worker/pkg/broker"
	"github.com/skynet2/whatsapp-finance-worker/pkg/config"
	"github.com/skynet2/whatsapp-finance-worker/pkg/repo"
	"github.com/skynet2/whatsapp-finance-worker/pkg/retryqueue"
)

// Drains the embedding retry queue once and exits.
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}

	zerolog.SetGlobalLevel(cfg.Level())
	if cfg.LogPretty {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}

	ctx := log.Logger.WithContext(context.Background())

	db, err := gorm.Open(postgres.Open(cfg.PostgresConnectionString), &gorm.Config{
		TranslateError: true,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to get postgres")
	}

	redisBroker := broker.NewRedis(broker.Config{
		Addr:                 cfg.RedisAddr(),
		Password:             cfg.RedisPassword,
		DB:                   cfg.RedisDB,
		OperationTimeout:     cfg.RedisOperationTimeout,
		MaxReconnectAttempts: cfg.RedisMaxReconnectAttempts,
		ReconnectDelay:       cfg.RedisReconnectDelay,
		ReconnectMaxDelay:    cfg.RedisReconnectMaxDelay,
	})
	defer func() {
		_ = redisBroker.Close()
	}()

	aiClient := aiservice.NewClient(aiservice.Config{
		BaseURL:    cfg.AIServiceURL,
		APIKey:     cfg.AIServiceAPIKey,
		MaxRetries: cfg.AIServiceMaxRetries,
		RetryDelay: cfg.AIServiceRetryDelay,
		Location:   cfg.Location(),
		Breaker: breaker.Config{
			FailureThreshold: cfg.AIBreakerThreshold,
			ResetTimeout:     cfg.AIBreakerReset,
		},
	}, req.C().SetTimeout(cfg.AIServiceTimeout))

	w := retryqueue.NewEmbeddingWorker(redisBroker, repo.NewGorm(db), aiClient,
		retryqueue.Policy{MaxAttempts: cfg.RetryMaxAttempts})

	stats, err := w.Drain(ctx)
	if err != nil {
		log.Fatal().Err(err).Interface("stats", stats).Msg("embedding retry failed")
	}

	log.Info().Interface("stats", stats).Msg("embedding retry finished")
}
