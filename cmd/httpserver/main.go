package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	sentrygo "github.com/getsentry/sentry-go"

	"movielookup/dynamodb"
	"movielookup/httpserver"
	"movielookup/movie"
	"movielookup/pkg/config"
	"movielookup/pkg/logger"
	"movielookup/pkg/sentry"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("Cannot load config", "error", err)
		os.Exit(1)
	}
	if err := cfg.Validate(); err != nil {
		slog.Error("Invalid config", "error", err)
		os.Exit(1)
	}

	log, err := logger.New(cfg.AppEnv)
	if err != nil {
		slog.Error("Cannot init logger", "error", err)
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()

	err = sentrygo.Init(sentrygo.ClientOptions{
		Dsn:              cfg.SentryDSN,
		Environment:      cfg.AppEnv,
		AttachStacktrace: true,
	})
	if err != nil {
		log.Fatalw("Cannot init sentry", "error", err)
	}
	defer sentry.Flush()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	client, err := dynamodb.NewClient(ctx, dynamodb.Options{
		Region:       cfg.DynamoDB.Region,
		Endpoint:     cfg.DynamoDB.Endpoint,
		AccessKey:    cfg.DynamoDB.AccessKey,
		SecretKey:    cfg.DynamoDB.SecretKey,
		SessionToken: cfg.DynamoDB.SessionToken,
	})
	if err != nil {
		log.Fatalw("Cannot create dynamodb client", "error", err)
	}

	server := httpserver.Default(cfg)
	server.Addr = fmt.Sprintf(":%d", cfg.Port)
	server.Logger = log
	server.MovieService = movie.NewUsecase(
		dynamodb.NewMovieRepository(client, cfg.DynamoDB.MoviesTable, cfg.DynamoDB.CastTable),
	)

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			log.Errorw("server shutdown failed", "error", err)
		}
	}()

	log.Infow("server started!", "addr", server.Addr)
	if err := server.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Errorw("server stopped with error", "error", err)
	}
}
