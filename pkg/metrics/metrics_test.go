package metrics_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"

	"movielookup/movie"
	"movielookup/pkg/metrics"
)

func TestObserveLookup(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		outcome string
	}{
		{name: "success", err: nil, outcome: metrics.OutcomeOK},
		{name: "missing id", err: movie.ErrMissingMovieID, outcome: metrics.OutcomeMissingID},
		{name: "invalid id", err: fmt.Errorf("wrapped: %w", movie.ErrInvalidMovieID), outcome: metrics.OutcomeInvalidID},
		{name: "storage failure", err: errors.New("throttled"), outcome: metrics.OutcomeError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			counter := metrics.Lookups.WithLabelValues("test", tt.outcome)
			before := testutil.ToFloat64(counter)

			metrics.ObserveLookup("test", false, tt.err)

			assert.Equal(t, before+1, testutil.ToFloat64(counter))
		})
	}
}

func TestObserveLookup_Cast(t *testing.T) {
	before := testutil.ToFloat64(metrics.CastLookups)

	metrics.ObserveLookup("test", true, nil)
	metrics.ObserveLookup("test", true, errors.New("throttled"))

	assert.Equal(t, before+1, testutil.ToFloat64(metrics.CastLookups))
}
