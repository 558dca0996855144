package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/imroc/req/v3"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/skynet2/whatsapp-finance-worker/pkg/aiservice"
	"github.com/skynet2/whatsapp-finance-worker/pkg/breaker"
	"github.com/skynet2/whatsapp-finance-worker/pkg/broker"
	"github.com/skynet2/whatsapp-finance-worker/pkg/cache"
	"github.com/skynet2/whatsapp-finance-worker/pkg/common"
	"github.com/skynet2/whatsapp-finance-worker/pkg/config"
	"github.com/skynet2/whatsapp-finance-worker/pkg/duplicatecleaner"
	"github.com/skynet2/whatsapp-finance-worker/pkg/metrics"
	"github.com/skynet2/whatsapp-finance-worker/pkg/notifications"
	"github.com/skynet2/whatsapp-finance-worker/pkg/printer"
	"github.com/skynet2/whatsapp-finance-worker/pkg/processor"
	"github.com/skynet2/whatsapp-finance-worker/pkg/repo"
	"github.com/skynet2/whatsapp-finance-worker/pkg/retryqueue"
)

const shutdownTimeout = 30 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}

	zerolog.SetGlobalLevel(cfg.Level())
	if cfg.LogPretty {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	ctx = log.Logger.WithContext(ctx)
	loc := cfg.Location()

	db, err := gorm.Open(postgres.Open(cfg.PostgresConnectionString), &gorm.Config{
		TranslateError: true,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to get postgres")
	}

	log.Info().Msg("[Db] start migrations")

	if err = repo.Migrate(db); err != nil {
		log.Fatal().Err(err).Msg("failed to migrate")
	}

	dataRepo := repo.NewGorm(db)

	redisBroker := broker.NewRedis(broker.Config{
		Addr:                 cfg.RedisAddr(),
		Password:             cfg.RedisPassword,
		DB:                   cfg.RedisDB,
		OperationTimeout:     cfg.RedisOperationTimeout,
		MaxReconnectAttempts: cfg.RedisMaxReconnectAttempts,
		ReconnectDelay:       cfg.RedisReconnectDelay,
		ReconnectMaxDelay:    cfg.RedisReconnectMaxDelay,
		LastTransactionTTL:   cfg.LastTransactionTTL,
		Breaker: breaker.Config{
			FailureThreshold: cfg.RedisBreakerThreshold,
			ResetTimeout:     cfg.RedisBreakerReset,
		},
		Fallback: cache.Config{
			TTL:     cfg.LastTransactionTTL,
			MaxSize: cfg.FallbackCacheSize,
		},
	})
	defer func() {
		_ = redisBroker.Close()
	}()

	if _, err = redisBroker.QueueLength(ctx, common.QueueFailedTransactions); err != nil {
		log.Fatal().Err(err).Msg("failed to connect to redis")
	}

	aiClient := aiservice.NewClient(aiservice.Config{
		BaseURL:    cfg.AIServiceURL,
		APIKey:     cfg.AIServiceAPIKey,
		MaxRetries: cfg.AIServiceMaxRetries,
		RetryDelay: cfg.AIServiceRetryDelay,
		Location:   loc,
		Breaker: breaker.Config{
			FailureThreshold: cfg.AIBreakerThreshold,
			ResetTimeout:     cfg.AIBreakerReset,
		},
	}, req.C().SetTimeout(cfg.AIServiceTimeout))

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	appMetrics := metrics.New(registry)

	processorCfg := processor.Config{
		Repo:                dataRepo,
		AIService:           aiClient,
		StateStore:          redisBroker,
		RetryQueue:          redisBroker,
		NotificationSvc:     notifications.NewWhatsApp(redisBroker),
		Printer:             printer.NewPrinter(loc),
		ConfidenceThreshold: cfg.ConfidenceThreshold,
		Location:            loc,
		RateLimitMessages:   cfg.RateLimitMessages,
		RateLimitWindow:     cfg.RateLimitWindow,
	}

	if cfg.DeduplicateMessages {
		processorCfg.DuplicateCleaner = duplicatecleaner.NewDuplicateCleaner(dataRepo)
	}

	processorSvc := processor.NewProcessor(processorCfg)
	dispatcher := processor.NewDispatcher(processorSvc, cfg.MaxInFlight, appMetrics)

	if err = redisBroker.Subscribe(ctx, common.ChannelIncomingMessage, dispatcher.Handle); err != nil {
		log.Fatal().Err(err).Msg("failed to subscribe")
	}

	policy := retryqueue.Policy{MaxAttempts: cfg.RetryMaxAttempts}
	scheduler := retryqueue.NewScheduler(cfg.RetryInterval, func(stats retryqueue.Stats) {
		appMetrics.RetryItems(stats.Queue, "succeeded", stats.Succeeded)
		appMetrics.RetryItems(stats.Queue, "requeued", stats.Requeued)
		appMetrics.RetryItems(stats.Queue, "dead_lettered", stats.DeadLettered)
		appMetrics.RetryItems(stats.Queue, "dropped", stats.Dropped)
	},
		retryqueue.NewTransactionWorker(redisBroker, dataRepo, policy),
		retryqueue.NewEmbeddingWorker(redisBroker, dataRepo, aiClient, policy),
	)
	scheduler.Start(ctx)

	srv := &http.Server{
		Handler:      NewRouter(NewHandler(redisBroker, aiClient), registry),
		Addr:         ":" + strconv.Itoa(cfg.WorkerPort),
		WriteTimeout: 60 * time.Second,
		ReadTimeout:  60 * time.Second,
	}

	go func() {
		if srvErr := srv.ListenAndServe(); srvErr != nil && !errors.Is(srvErr, http.ErrServerClosed) {
			log.Fatal().Err(srvErr).Msg("http server failed")
		}
	}()

	log.Info().
		Str("channel", common.ChannelIncomingMessage).
		Int("port", cfg.WorkerPort).
		Msg("worker started")

	<-ctx.Done()

	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err = srv.Shutdown(shutdownCtx); err != nil {
		log.Err(err).Msg("failed to stop http server")
	}

	scheduler.Stop()
	dispatcher.Stop()
	processorSvc.Close()
}
