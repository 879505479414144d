package logger

import (
	"go.uber.org/zap"
)

// NOOPLogger discards everything. Used as the default until a real logger is
// injected, and in tests.
var NOOPLogger = zap.NewNop().Sugar()

// New returns a development logger for local runs and a JSON production
// logger everywhere else.
func New(appEnv string) (*zap.SugaredLogger, error) {
	var (
		l   *zap.Logger
		err error
	)
	if appEnv == "" || appEnv == "local" {
		l, err = zap.NewDevelopment()
	} else {
		l, err = zap.NewProduction()
	}
	if err != nil {
		return nil, err
	}

	return l.Sugar(), nil
}
