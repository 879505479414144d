package httpserver

import (
	"strconv"

	sentrygo "github.com/getsentry/sentry-go"
	sentryecho "github.com/getsentry/sentry-go/echo"
	"github.com/labstack/echo/v4"

	"movielookup/pkg/sentry"
)

const successMessage = "OK"

// APIResponse wraps the operational endpoints. Movie lookups keep their own
// bare envelope.
type APIResponse struct {
	Code    string      `json:"code"`
	Message string      `json:"message"`
	Result  interface{} `json:"result,omitempty"`
}

func writeSuccess(c echo.Context, status int, result interface{}) error {
	return c.JSON(status, APIResponse{
		Code:    strconv.Itoa(status),
		Message: successMessage,
		Result:  result,
	})
}

func reportError(c echo.Context, err error) {
	ctx := c.Request().Context()
	if hub := sentryecho.GetHubFromContext(c); hub != nil {
		ctx = sentrygo.SetHubOnContext(ctx, hub)
	}
	sentry.WithContext(ctx).WithTags(map[string]string{
		"transport":  "http",
		"request_id": c.Response().Header().Get(echo.HeaderXRequestID),
	}).Error(err)
}
