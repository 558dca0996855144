package config

import (
	"net"
	"strconv"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/cockroachdb/errors"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const defaultTimezoneOffset = 7 * 3600

type Config struct {
	RedisHost                 string        `env:"REDIS_HOST" envDefault:"localhost"`
	RedisPort                 int           `env:"REDIS_PORT" envDefault:"6379"`
	RedisPassword             string        `env:"REDIS_PASSWORD"`
	RedisDB                   int           `env:"REDIS_DB" envDefault:"0"`
	RedisOperationTimeout     time.Duration `env:"REDIS_OPERATION_TIMEOUT" envDefault:"5s"`
	RedisMaxReconnectAttempts int           `env:"REDIS_MAX_RECONNECT_ATTEMPTS" envDefault:"5"`
	RedisReconnectDelay       time.Duration `env:"REDIS_RECONNECT_DELAY" envDefault:"1s"`
	RedisReconnectMaxDelay    time.Duration `env:"REDIS_RECONNECT_MAX_DELAY" envDefault:"10s"`
	RedisBreakerThreshold     int           `env:"REDIS_BREAKER_THRESHOLD" envDefault:"5"`
	RedisBreakerReset         time.Duration `env:"REDIS_BREAKER_RESET" envDefault:"60s"`

	AIServiceURL        string        `env:"AI_SERVICE_URL" envDefault:"http://localhost:8000"`
	AIServiceAPIKey     string        `env:"AI_SERVICE_API_KEY"`
	AIServiceTimeout    time.Duration `env:"AI_SERVICE_TIMEOUT" envDefault:"10s"`
	AIServiceMaxRetries int           `env:"AI_SERVICE_MAX_RETRIES" envDefault:"3"`
	AIServiceRetryDelay time.Duration `env:"AI_SERVICE_RETRY_DELAY" envDefault:"1s"`
	AIBreakerThreshold  int           `env:"AI_BREAKER_THRESHOLD" envDefault:"5"`
	AIBreakerReset      time.Duration `env:"AI_BREAKER_RESET" envDefault:"60s"`

	PostgresConnectionString string `env:"POSTGRES_CONNECTION_STRING,required"`

	LastTransactionTTL  time.Duration `env:"LAST_TRANSACTION_TTL" envDefault:"24h"`
	FallbackCacheSize   int           `env:"FALLBACK_CACHE_SIZE" envDefault:"1000"`
	RetryInterval       time.Duration `env:"RETRY_INTERVAL" envDefault:"60s"`
	RetryMaxAttempts    int           `env:"RETRY_MAX_ATTEMPTS" envDefault:"0"`
	MaxInFlight         int           `env:"MAX_IN_FLIGHT" envDefault:"10"`
	ConfidenceThreshold float64       `env:"CONFIDENCE_THRESHOLD" envDefault:"0.7"`
	Timezone            string        `env:"TIMEZONE" envDefault:"Asia/Jakarta"`
	DeduplicateMessages bool          `env:"DEDUPLICATE_MESSAGES" envDefault:"false"`
	RateLimitMessages   int           `env:"RATE_LIMIT_MESSAGES" envDefault:"10"`
	RateLimitWindow     time.Duration `env:"RATE_LIMIT_WINDOW" envDefault:"60s"`

	WorkerPort int    `env:"WORKER_PORT" envDefault:"3100"`
	LogLevel   string `env:"LOG_LEVEL" envDefault:"info"`
	LogPretty  bool   `env:"LOG_PRETTY" envDefault:"false"`
}

// Load reads an optional .env file and then the process environment. Real environment values win.
func Load(files ...string) (*Config, error) {
	if len(files) == 0 {
		files = []string{".env"}
	}

	for _, file := range files {
		if err := godotenv.Load(file); err != nil {
			log.Debug().Str("file", file).Msg("env file not loaded")
		}
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, errors.Wrap(err, "parse config")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) Validate() error {
	var errs []error

	if c.RedisPort <= 0 || c.RedisPort > 65535 {
		errs = append(errs, errors.Newf("REDIS_PORT out of range: %d", c.RedisPort))
	}
	if c.RedisOperationTimeout <= 0 {
		errs = append(errs, errors.New("REDIS_OPERATION_TIMEOUT must be positive"))
	}
	if c.RedisMaxReconnectAttempts < 1 {
		errs = append(errs, errors.New("REDIS_MAX_RECONNECT_ATTEMPTS must be at least 1"))
	}
	if c.RedisBreakerThreshold < 1 || c.AIBreakerThreshold < 1 {
		errs = append(errs, errors.New("breaker thresholds must be at least 1"))
	}
	if c.AIServiceURL == "" {
		errs = append(errs, errors.New("AI_SERVICE_URL is empty"))
	}
	if c.AIServiceMaxRetries < 0 {
		errs = append(errs, errors.New("AI_SERVICE_MAX_RETRIES can not be negative"))
	}
	if c.RetryInterval < time.Second {
		errs = append(errs, errors.New("RETRY_INTERVAL must be at least 1s"))
	}
	if c.RetryMaxAttempts < 0 {
		errs = append(errs, errors.New("RETRY_MAX_ATTEMPTS can not be negative"))
	}
	if c.MaxInFlight < 1 {
		errs = append(errs, errors.New("MAX_IN_FLIGHT must be at least 1"))
	}
	if c.FallbackCacheSize < 1 {
		errs = append(errs, errors.New("FALLBACK_CACHE_SIZE must be at least 1"))
	}
	if c.ConfidenceThreshold < 0 || c.ConfidenceThreshold > 1 {
		errs = append(errs, errors.Newf("CONFIDENCE_THRESHOLD must be within [0,1]: %v", c.ConfidenceThreshold))
	}
	if c.RateLimitMessages < 0 {
		errs = append(errs, errors.New("RATE_LIMIT_MESSAGES can not be negative"))
	}
	if c.RateLimitMessages > 0 && c.RateLimitWindow <= 0 {
		errs = append(errs, errors.New("RATE_LIMIT_WINDOW must be positive"))
	}
	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		errs = append(errs, errors.Wrap(err, "LOG_LEVEL"))
	}

	return errors.Join(errs...)
}

func (c *Config) RedisAddr() string {
	return net.JoinHostPort(c.RedisHost, strconv.Itoa(c.RedisPort))
}

// Location resolves TIMEZONE. Hosts without tzdata fall back to a fixed UTC+7.
func (c *Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		log.Warn().Err(err).Str("timezone", c.Timezone).Msg("timezone not available, using UTC+7")

		return time.FixedZone("WIB", defaultTimezoneOffset)
	}

	return loc
}

func (c *Config) Level() zerolog.Level {
	level, err := zerolog.ParseLevel(c.LogLevel)
	if err != nil {
		return zerolog.InfoLevel
	}

	return level
}
