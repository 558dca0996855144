package retryqueue

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog/log"
)

type Scheduler struct {
	cron     *cron.Cron
	interval time.Duration
	drainers []Drainer
	onStats  func(stats Stats)
}

func NewScheduler(
	interval time.Duration,
	onStats func(stats Stats),
	drainers ...Drainer,
) *Scheduler {
	logger := cronLogger{}

	return &Scheduler{
		cron: cron.New(
			cron.WithLogger(logger),
			cron.WithChain(cron.Recover(logger), cron.SkipIfStillRunning(logger)),
		),
		interval: interval,
		drainers: drainers,
		onStats:  onStats,
	}
}

// Start schedules every drainer on its own entry so a slow queue never delays another.
// A pass still running when the next tick fires is skipped.
func (s *Scheduler) Start(ctx context.Context) {
	for _, d := range s.drainers {
		d := d

		s.cron.Schedule(cron.Every(s.interval), cron.FuncJob(func() {
			s.run(ctx, d)
		}))
	}

	s.cron.Start()
}

// Stop waits for running passes to finish.
func (s *Scheduler) Stop() {
	<-s.cron.Stop().Done()
}

func (s *Scheduler) run(ctx context.Context, d Drainer) {
	lg := log.Logger.With().Str("queue", d.Name()).Logger()
	ctx = lg.WithContext(ctx)

	stats, err := d.Drain(ctx)
	if err != nil {
		lg.Err(err).Msg("retry pass failed")
	}

	if stats.Processed > 0 {
		lg.Info().
			Int("processed", stats.Processed).
			Int("succeeded", stats.Succeeded).
			Int("requeued", stats.Requeued).
			Int("dead_lettered", stats.DeadLettered).
			Int("dropped", stats.Dropped).
			Msg("retry pass finished")
	}

	if s.onStats != nil {
		s.onStats(stats)
	}
}

type cronLogger struct{}

func (cronLogger) Info(msg string, keysAndValues ...interface{}) {
	log.Debug().Fields(keysAndValues).Msg(msg)
}

func (cronLogger) Error(err error, msg string, keysAndValues ...interface{}) {
	log.Error().Err(err).Fields(keysAndValues).Msg(msg)
}

var _ cron.Logger = cronLogger{}
