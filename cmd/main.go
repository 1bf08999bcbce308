package main

import (
	"context"
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"os/signal"
	"summarygateway/internal/app"
	"summarygateway/internal/config"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

func main() {
	level := new(slog.LevelVar)
	log := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(log)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd(log, level).ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}

func newRootCmd(log *slog.Logger, level *slog.LevelVar) *cobra.Command {
	var envFile string

	root := &cobra.Command{
		Use:           "summarygateway",
		Short:         "HTTP gateway that summarizes text with a vLLM backend",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(cmd.Context(), log, level, envFile)
			if err != nil {
				return err
			}

			return serve(cmd.Context(), cfg, log)
		},
	}

	root.PersistentFlags().StringVar(&envFile, "env-file", ".env", "dotenv file loaded before reading the environment")

	root.AddCommand(&cobra.Command{
		Use:   "warmup",
		Short: "Send a single warmup request to the backend and exit",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(cmd.Context(), log, level, envFile)
			if err != nil {
				return err
			}

			res := app.New(cmd.Context(), cfg, log).Warmup(cmd.Context())
			if !res.OK {
				return errors.New(res.Detail)
			}

			return nil
		},
	})

	return root
}

func loadConfig(
	ctx context.Context,
	log *slog.Logger,
	level *slog.LevelVar,
	envFile string,
) (config.Config, error) {
	if err := godotenv.Load(envFile); err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			log.ErrorContext(ctx, "Failed to load env file",
				"error", err,
				"envFile", envFile)

			return config.Config{}, err
		}

		log.InfoContext(ctx, "Env file is missing so process environment will be used",
			"envFile", envFile)
	}

	cfg, err := config.Load()
	if err != nil {
		log.ErrorContext(ctx, "Failed to load config",
			"error", err)

		return config.Config{}, err
	}
	level.Set(cfg.LogLevel)

	return cfg, nil
}

func serve(ctx context.Context, cfg config.Config, log *slog.Logger) error {
	start := time.Now()

	a := app.New(ctx, cfg, log)
	log.InfoContext(ctx, "App is initialized",
		"addr", cfg.Addr,
		"backendURL", cfg.BackendURL,
		"warmupEnabled", cfg.WarmupEnabled)

	if err := a.Run(ctx); err != nil {
		log.ErrorContext(ctx, "Failed to run app",
			"error", err,
			"uptimeSeconds", time.Since(start).Seconds())

		return err
	}

	log.InfoContext(ctx, "Exiting...",
		"uptimeSeconds", time.Since(start).Seconds())

	return nil
}
