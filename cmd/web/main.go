package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/joho/godotenv"

	"github.com/ejovwogfreeman/gofroma2zafrica-sub001/internal/api"
	"github.com/ejovwogfreeman/gofroma2zafrica-sub001/internal/config"
	apphttp "github.com/ejovwogfreeman/gofroma2zafrica-sub001/internal/http"
	"github.com/ejovwogfreeman/gofroma2zafrica-sub001/internal/mailer"
	"github.com/ejovwogfreeman/gofroma2zafrica-sub001/internal/storage"
)

func main() {
	// .env is a dev convenience; production uses real env vars.
	_ = godotenv.Load()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	cfg, err := config.FromEnv()
	if err != nil {
		logger.Error("bad configuration", slog.Any("err", err))
		os.Exit(1)
	}

	client := api.New(api.Config{
		BaseURL:   cfg.APIBaseURL,
		Timeout:   cfg.APITimeout,
		RetryMax:  cfg.APIRetryMax,
		RetryBase: cfg.APIRetryBase,
		Logger:    logger,
	})

	uploads, err := storage.FromEnv(context.Background())
	if err != nil {
		logger.Error("storage setup failed", slog.Any("err", err))
		os.Exit(1)
	}
	logger.Info("uploads ready", slog.String("driver", uploads.Driver))

	mail := mailer.FromEnv()

	r, err := apphttp.NewRouter(logger, cfg, client, uploads.Storage, mail, "templates")
	if err != nil {
		logger.Error("router setup failed", slog.Any("err", err))
		os.Exit(1)
	}

	// Local uploads are served straight from disk; S3 serves its own URLs.
	if l, ok := uploads.Storage.(*storage.Local); ok {
		r.Static(l.URLPrefix, l.BaseDir)
	}

	addr := fmt.Sprintf(":%d", cfg.Port)
	logger.Info("listening", slog.String("addr", addr), slog.String("env", cfg.Env))
	if err := r.Run(addr); err != nil {
		logger.Error("server stopped", slog.Any("err", err))
		os.Exit(1)
	}
}
