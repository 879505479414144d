package apigateway

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/aws/aws-lambda-go/events"
	"go.uber.org/zap"

	"movielookup/errs"
	"movielookup/movie"
	"movielookup/pkg/logger"
	"movielookup/pkg/metrics"
	"movielookup/pkg/sentry"
)

const transport = "lambda"

// Handler serves GET /movies/{movieId}?cast=true behind an API Gateway HTTP
// API. It holds no per-request state and is safe for concurrent invocations.
type Handler struct {
	Service movie.Service
	Logger  *zap.SugaredLogger
}

func NewHandler(svc movie.Service, log *zap.SugaredLogger) *Handler {
	if log == nil {
		log = logger.NOOPLogger
	}
	return &Handler{Service: svc, Logger: log}
}

// Handle never returns an error: every failure is turned into a JSON response.
func (h *Handler) Handle(ctx context.Context, req events.APIGatewayV2HTTPRequest) (resp events.APIGatewayV2HTTPResponse, _ error) {
	h.Logger.Infow("[EVENT]", "event", req)

	defer func() {
		if r := recover(); r != nil {
			resp = h.failure(ctx, fmt.Errorf("%v", r))
		}
	}()

	q, err := movie.NewQuery(req.PathParameters["movieId"], req.QueryStringParameters["cast"])
	if err != nil {
		metrics.ObserveLookup(transport, false, err)
		return h.message(http.StatusNotFound, errs.ErrorMessage(err)), nil
	}

	env, err := h.Service.Lookup(ctx, q)
	metrics.ObserveLookup(transport, q.IncludeCast, err)
	if err != nil {
		if errs.ErrorCode(err) == errs.ENOTFOUND {
			return h.message(http.StatusNotFound, errs.ErrorMessage(err)), nil
		}
		return h.failure(ctx, err), nil
	}

	body, err := json.Marshal(env)
	if err != nil {
		return h.failure(ctx, fmt.Errorf("encode response: %w", err)), nil
	}

	return respond(http.StatusOK, body), nil
}

func (h *Handler) message(status int, msg string) events.APIGatewayV2HTTPResponse {
	body, _ := json.Marshal(map[string]string{"message": msg})
	return respond(status, body)
}

func (h *Handler) failure(ctx context.Context, err error) events.APIGatewayV2HTTPResponse {
	h.Logger.Errorw("movie lookup failed", zap.Error(err))
	sentry.WithContext(ctx).WithTags(map[string]string{"transport": transport}).Error(err)

	body, _ := json.Marshal(map[string]string{"error": err.Error()})
	return respond(http.StatusInternalServerError, body)
}

func respond(status int, body []byte) events.APIGatewayV2HTTPResponse {
	return events.APIGatewayV2HTTPResponse{
		StatusCode: status,
		Headers:    map[string]string{"content-type": "application/json"},
		Body:       string(body),
	}
}
