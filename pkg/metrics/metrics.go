package metrics

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"

	"movielookup/movie"
)

// Lookup outcomes.
const (
	OutcomeOK        = "ok"
	OutcomeMissingID = "missing_id"
	OutcomeInvalidID = "invalid_id"
	OutcomeError     = "error"
)

var (
	Lookups = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "movie_lookups_total",
			Help: "Count of movie lookups by outcome",
		},
		[]string{"transport", "outcome"},
	)
	CastLookups = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "movie_cast_lookups_total",
			Help: "Count of lookups that requested the cast",
		},
	)
)

func init() {
	prometheus.MustRegister(Lookups, CastLookups)
}

// ObserveLookup records the outcome of a single lookup.
func ObserveLookup(transport string, includeCast bool, err error) {
	if includeCast && err == nil {
		CastLookups.Inc()
	}
	Lookups.WithLabelValues(transport, outcome(err)).Inc()
}

func outcome(err error) string {
	switch {
	case err == nil:
		return OutcomeOK
	case errors.Is(err, movie.ErrMissingMovieID):
		return OutcomeMissingID
	case errors.Is(err, movie.ErrInvalidMovieID):
		return OutcomeInvalidID
	default:
		return OutcomeError
	}
}
