package scheduler

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/robfig/cron/v3"

	"summarygateway/internal/summarizer"
)

const (
	DefaultInterval = 300 * time.Second
	DefaultTimeout  = 60 * time.Second
	Timezone        = "UTC"

	// WarmupText is the fixed dummy input sent on every tick.
	WarmupText = "서버 예열을 위한 요청입니다. 이 문장을 한 문장으로 요약하세요."
)

// Result is the outcome of a single warmup tick. It is only logged.
type Result struct {
	OK      bool
	Kind    summarizer.FailureKind
	Detail  string
	Latency time.Duration
}

type Options struct {
	Interval time.Duration
	Timeout  time.Duration
}

// Scheduler periodically sends WarmupText to the backend so real traffic
// does not hit a cold model.
type Scheduler struct {
	ctx      context.Context
	cancel   context.CancelFunc
	cron     *cron.Cron
	backend  summarizer.Backend
	prompt   summarizer.Prompt
	interval time.Duration
	timeout  time.Duration
	log      *slog.Logger

	stopOnce sync.Once
}

func New(
	ctx context.Context,
	backend summarizer.Backend,
	builder *summarizer.PromptBuilder,
	opts Options,
	log *slog.Logger,
) *Scheduler {
	if opts.Interval == 0 {
		opts.Interval = DefaultInterval
	}
	if opts.Timeout == 0 {
		opts.Timeout = DefaultTimeout
	}

	ctx, cancel := context.WithCancel(ctx)
	cronLog := newCronLogger(log)

	c := cron.New(
		cron.WithLocation(time.UTC),
		cron.WithLogger(cronLog),
		// Recover must wrap the job directly: SkipIfStillRunning only
		// releases its slot when the job returns normally.
		cron.WithChain(
			cron.SkipIfStillRunning(cronLog),
			cron.Recover(cronLog),
		),
	)

	return &Scheduler{
		ctx:      ctx,
		cancel:   cancel,
		cron:     c,
		backend:  backend,
		prompt:   builder.Build(WarmupText),
		interval: opts.Interval,
		timeout:  opts.Timeout,
		log:      log,
	}
}

func (s *Scheduler) Interval() time.Duration {
	return s.interval
}

// Start runs the first tick immediately and then one tick per interval.
func (s *Scheduler) Start() error {
	if s.interval <= 0 {
		return errors.New("interval must be positive")
	}

	s.cron.Schedule(newWarmupSchedule(s.interval), cron.FuncJob(s.tick))
	s.cron.Start()

	return nil
}

// Stop cancels an in-flight tick and waits for it to return.
func (s *Scheduler) Stop() {
	s.stopOnce.Do(func() {
		s.cancel()
		<-s.cron.Stop().Done()
	})
}

func (s *Scheduler) tick() {
	select {
	case <-s.ctx.Done():
		s.log.InfoContext(s.ctx, "Scheduler context is done",
			"error", s.ctx.Err())
		return
	default:
	}

	s.Warmup(s.ctx)
}

// Warmup sends the dummy prompt once and logs the outcome. Failures are
// never returned as errors.
func (s *Scheduler) Warmup(ctx context.Context) Result {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	start := time.Now()
	_, err := s.backend.Complete(ctx, s.prompt)
	latency := time.Since(start)

	if err != nil {
		if s.ctx.Err() != nil {
			s.log.InfoContext(ctx, "Warmup is interrupted",
				"error", err,
				"latencyMs", latency.Milliseconds())

			return Result{Kind: summarizer.Classify(err), Detail: err.Error(), Latency: latency}
		}

		result := Result{
			Kind:    summarizer.Classify(err),
			Detail:  err.Error(),
			Latency: latency,
		}

		attrs := []any{
			"error", err,
			"kind", result.Kind.String(),
			"latencyMs", latency.Milliseconds(),
			"intervalSeconds", s.interval.Seconds(),
		}
		var statusErr *summarizer.StatusError
		if errors.As(err, &statusErr) {
			attrs = append(attrs,
				"statusCode", statusErr.Code,
				"body", statusErr.Body)
		}
		s.log.ErrorContext(ctx, "Failed to warm up backend", attrs...)

		return result
	}

	s.log.InfoContext(ctx, "Backend is warmed up",
		"latencyMs", latency.Milliseconds(),
		"intervalSeconds", s.interval.Seconds())

	return Result{OK: true, Latency: latency}
}
