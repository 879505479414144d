package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	sentrygo "github.com/getsentry/sentry-go"

	"movielookup/apigateway"
	"movielookup/dynamodb"
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

	// One client per execution environment, reused by every invocation.
	client, err := dynamodb.NewClient(context.Background(), dynamodb.Options{
		Region:       cfg.DynamoDB.Region,
		Endpoint:     cfg.DynamoDB.Endpoint,
		AccessKey:    cfg.DynamoDB.AccessKey,
		SecretKey:    cfg.DynamoDB.SecretKey,
		SessionToken: cfg.DynamoDB.SessionToken,
	})
	if err != nil {
		log.Fatalw("Cannot create dynamodb client", "error", err)
	}

	repo := dynamodb.NewMovieRepository(client, cfg.DynamoDB.MoviesTable, cfg.DynamoDB.CastTable)
	handler := apigateway.NewHandler(movie.NewUsecase(repo), log)

	lambda.Start(func(ctx context.Context, req events.APIGatewayV2HTTPRequest) (events.APIGatewayV2HTTPResponse, error) {
		defer sentry.Flush()
		return handler.Handle(ctx, req)
	})
}
