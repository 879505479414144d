package httpserver

import (
	"context"
	"net/http"
	"strings"

	sentryecho "github.com/getsentry/sentry-go/echo"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	"movielookup/errs"
	"movielookup/movie"
	"movielookup/pkg/config"
	"movielookup/pkg/logger"
)

type Server struct {
	// Router is the Echo router instance
	Router *echo.Echo

	// Addr represents the address the server will listen on
	Addr string

	// Allowed origins for CORS
	AllowOrigins []string

	Logger *zap.SugaredLogger

	MovieService movie.Service
}

func Default(cfg *config.Config) *Server {
	if cfg == nil {
		cfg = config.Empty
	}

	s := Server{
		Router: echo.New(),
		Addr:   ":8080",
		Logger: logger.NOOPLogger,
	}
	if cfg.AllowOrigins != "" {
		s.AllowOrigins = strings.Split(cfg.AllowOrigins, ",")
	}

	s.Router.HideBanner = true
	s.Router.HTTPErrorHandler = s.customHTTPErrorHandler
	s.RegisterGlobalMiddlewares()

	s.RegisterHealthRoutes()
	s.RegisterMetricsRoutes()
	s.RegisterMovieRoutes(s.Router.Group(""))
	return &s
}

func (s *Server) RegisterGlobalMiddlewares() {
	s.Router.Use(middleware.Recover())
	s.Router.Use(middleware.Secure())
	s.Router.Use(middleware.RequestID())
	s.Router.Use(sentryecho.New(sentryecho.Options{Repanic: true}))

	// CORS
	if len(s.AllowOrigins) > 0 {
		s.Router.Use(middleware.CORSWithConfig(middleware.CORSConfig{
			AllowOrigins: s.AllowOrigins,
		}))
	}
}

func (s *Server) Start() error {
	return s.Router.Start(s.Addr)
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.Router.Shutdown(ctx)
}

// customHTTPErrorHandler writes {"message": ...} for not-found conditions and
// {"error": ...} for everything else.
func (s *Server) customHTTPErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	var (
		code int
		body map[string]string
	)
	if he, ok := err.(*echo.HTTPError); ok {
		code = he.Code
		body = map[string]string{"message": httpErrorMessage(he)}
	} else if errs.ErrorCode(err) == errs.ENOTFOUND {
		code = http.StatusNotFound
		body = map[string]string{"message": errs.ErrorMessage(err)}
	} else {
		code = http.StatusInternalServerError
		body = map[string]string{"error": err.Error()}
		s.Logger.Errorw("movie lookup failed",
			zap.Error(err),
			zap.String("request_id", s.requestID(c)),
		)
		reportError(c, err)
	}

	if err := c.JSON(code, body); err != nil {
		s.Logger.Errorw("write error response", zap.Error(err))
	}
}

func httpErrorMessage(he *echo.HTTPError) string {
	if msg, ok := he.Message.(string); ok {
		return msg
	}
	return http.StatusText(he.Code)
}

func (s *Server) requestID(c echo.Context) string {
	return c.Response().Header().Get(echo.HeaderXRequestID)
}
