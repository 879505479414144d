package sentry

import (
	"context"
	"fmt"
	"os"
	"time"

	sentrygo "github.com/getsentry/sentry-go"
)

// FlushTime bounds how long buffered events are flushed for before a
// process or invocation ends.
var FlushTime = 2 * time.Second

type Sentry struct {
	context context.Context
	error   error
	message string
	level   sentrygo.Level
	extras  map[string]interface{}
	tags    map[string]string
}

func WithContext(ctx context.Context) *Sentry {
	return new(Sentry).WithContext(ctx)
}

func WithTags(tags map[string]string) *Sentry {
	return new(Sentry).WithTags(tags)
}

func WithExtras(extras map[string]interface{}) *Sentry {
	return new(Sentry).WithExtras(extras)
}

func Error(err error) {
	new(Sentry).Error(err)
}

func Errorf(format string, args ...interface{}) {
	new(Sentry).Errorf(format, args...)
}

func Warning(msg string) {
	new(Sentry).Warning(msg)
}

func (s *Sentry) WithContext(ctx context.Context) *Sentry {
	s.context = ctx
	return s
}

func (s *Sentry) WithError(err error) *Sentry {
	s.error = err
	return s
}

func (s *Sentry) WithMessage(msg string) *Sentry {
	s.message = msg
	return s
}

func (s *Sentry) WithLevel(level sentrygo.Level) *Sentry {
	s.level = level
	return s
}

func (s *Sentry) WithTags(tags map[string]string) *Sentry {
	s.tags = tags
	return s
}

func (s *Sentry) WithExtras(extras map[string]interface{}) *Sentry {
	s.extras = extras
	return s
}

func (s *Sentry) Error(err error) {
	s.WithError(err).WithLevel(sentrygo.LevelError).sendError()
}

func (s *Sentry) Errorf(format string, args ...interface{}) {
	s.Error(fmt.Errorf(format, args...))
}

func (s *Sentry) Warning(msg string) {
	s.WithMessage(msg).WithLevel(sentrygo.LevelWarning).sendMessage()
}

// Flush waits for buffered events, bounded by FlushTime.
func Flush() bool {
	return sentrygo.Flush(FlushTime)
}

func enabled() bool {
	return os.Getenv("APP_ENV") != "local" && os.Getenv("SENTRY_DSN") != ""
}

func (s *Sentry) hub() *sentrygo.Hub {
	if s.context != nil {
		if hub := sentrygo.GetHubFromContext(s.context); hub != nil {
			return hub
		}
	}
	return sentrygo.CurrentHub().Clone()
}

func (s *Sentry) configure(scope *sentrygo.Scope) {
	scope.SetLevel(s.level)
	if len(s.tags) > 0 {
		scope.SetTags(s.tags)
	}
	if len(s.extras) > 0 {
		scope.SetExtras(s.extras)
	}
}

func (s *Sentry) sendError() {
	if !enabled() || s.error == nil {
		return
	}

	hub := s.hub()
	hub.WithScope(func(scope *sentrygo.Scope) {
		s.configure(scope)
		hub.CaptureException(s.error)
	})
}

func (s *Sentry) sendMessage() {
	if !enabled() || s.message == "" {
		return
	}

	hub := s.hub()
	hub.WithScope(func(scope *sentrygo.Scope) {
		s.configure(scope)
		hub.CaptureMessage(s.message)
	})
}
