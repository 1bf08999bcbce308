package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"golang.org/x/sync/errgroup"

	"summarygateway/internal/config"
	"summarygateway/internal/gateway"
	"summarygateway/internal/scheduler"
	"summarygateway/internal/summarizer"
)

const readHeaderTimeout = 5 * time.Second

// App owns the HTTP server and the warmup scheduler for the process lifetime.
type App struct {
	cfg     config.Config
	log     *slog.Logger
	backend *summarizer.HTTPBackend
	builder *summarizer.PromptBuilder
	server  *http.Server
}

func New(ctx context.Context, cfg config.Config, log *slog.Logger) *App {
	backend := summarizer.NewHTTPBackend(cfg.Backend(), log)
	builder := summarizer.NewPromptBuilder(cfg.BackendMode)
	service := summarizer.NewService(builder, backend, log)

	router := gateway.NewRouter(
		gateway.NewHandler(service, log),
		gateway.RouterOptions{AllowedOrigins: cfg.AllowedOrigins},
		log,
	)

	a := &App{
		cfg:     cfg,
		log:     log,
		backend: backend,
		builder: builder,
		server: &http.Server{
			Addr:              cfg.Addr,
			Handler:           router,
			ReadHeaderTimeout: readHeaderTimeout,
			BaseContext:       func(net.Listener) context.Context { return context.WithoutCancel(ctx) },
		},
	}

	return a
}

func (a *App) newScheduler(ctx context.Context) *scheduler.Scheduler {
	return scheduler.New(ctx, a.backend, a.builder, scheduler.Options{
		Interval: a.cfg.WarmupInterval,
		Timeout:  a.cfg.WarmupTimeout,
	}, a.log)
}

// Handler exposes the router, mainly for tests.
func (a *App) Handler() http.Handler {
	return a.server.Handler
}

// Run serves until ctx is cancelled, then drains in-flight requests and
// joins the scheduler.
func (a *App) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", a.cfg.Addr)
	if err != nil {
		return fmt.Errorf("listen: %w", err)
	}

	return a.Serve(ctx, ln)
}

func (a *App) Serve(ctx context.Context, ln net.Listener) error {
	start := time.Now()

	if a.cfg.WarmupEnabled {
		sched := a.newScheduler(ctx)
		if err := sched.Start(); err != nil {
			sched.Stop()
			_ = ln.Close()

			return fmt.Errorf("start scheduler: %w", err)
		}
		defer sched.Stop()

		a.log.InfoContext(ctx, "Scheduler is started",
			"intervalSeconds", sched.Interval().Seconds(),
			"timezone", scheduler.Timezone)
	} else {
		a.log.InfoContext(ctx, "Scheduler is disabled")
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		a.log.InfoContext(gctx, "Server is started",
			"addr", ln.Addr().String(),
			"mode", a.cfg.BackendMode,
			"model", a.cfg.BackendModel)

		if err := a.server.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("serve: %w", err)
		}

		return nil
	})

	g.Go(func() error {
		<-gctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), a.cfg.ShutdownTimeout)
		defer cancel()

		if err := a.server.Shutdown(shutdownCtx); err != nil {
			a.log.ErrorContext(shutdownCtx, "Failed to shut down server gracefully",
				"error", err,
				"shutdownTimeoutSeconds", a.cfg.ShutdownTimeout.Seconds())

			if closeErr := a.server.Close(); closeErr != nil {
				return fmt.Errorf("close server: %w", errors.Join(err, closeErr))
			}

			return fmt.Errorf("shutdown server: %w", err)
		}

		a.log.InfoContext(shutdownCtx, "Server is stopped",
			"uptimeSeconds", time.Since(start).Seconds())

		return nil
	})

	return g.Wait()
}

// Warmup sends a single warmup request outside the schedule.
func (a *App) Warmup(ctx context.Context) scheduler.Result {
	s := a.newScheduler(ctx)
	defer s.Stop()

	return s.Warmup(ctx)
}
