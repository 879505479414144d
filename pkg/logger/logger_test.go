package logger_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"movielookup/pkg/logger"
)

func TestNew(t *testing.T) {
	for _, env := range []string{"", "local", "production"} {
		t.Run(env, func(t *testing.T) {
			l, err := logger.New(env)

			require.NoError(t, err)
			assert.NotNil(t, l)
		})
	}
}

func TestNOOPLogger(t *testing.T) {
	assert.NotPanics(t, func() {
		logger.NOOPLogger.Infow("ignored", "key", "value")
	})
}
