package movie_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"movielookup/movie"
)

func TestParseID(t *testing.T) {
	tests := []struct {
		raw    string
		wantID int64
		wantOK bool
	}{
		{raw: "1", wantID: 1, wantOK: true},
		{raw: "42", wantID: 42, wantOK: true},
		{raw: "  7", wantID: 7, wantOK: true},
		{raw: "+9", wantID: 9, wantOK: true},
		{raw: "12abc", wantID: 12, wantOK: true},
		{raw: "3.9", wantID: 3, wantOK: true},
		{raw: "007", wantID: 7, wantOK: true},
		{raw: "", wantOK: false},
		{raw: "abc", wantOK: false},
		{raw: "0", wantOK: false},
		{raw: "-5", wantOK: false},
		{raw: "+", wantOK: false},
		{raw: " ", wantOK: false},
		{raw: "99999999999999999999", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			id, ok := movie.ParseID(tt.raw)

			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantID, id)
		})
	}
}

func TestNewQuery(t *testing.T) {
	t.Run("should enable cast only for the literal true", func(t *testing.T) {
		for raw, want := range map[string]bool{"true": true, "TRUE": false, "1": false, "": false, "yes": false} {
			q, err := movie.NewQuery("1", raw)

			require.NoError(t, err)
			assert.Equal(t, want, q.IncludeCast, "cast=%q", raw)
			assert.Equal(t, int64(1), q.MovieID)
		}
	})

	t.Run("should fail on unparseable id", func(t *testing.T) {
		_, err := movie.NewQuery("abc", "true")

		assert.Equal(t, movie.ErrMissingMovieID, err)
	})
}

func TestEnvelope_JSON(t *testing.T) {
	record := movie.Record{"id": float64(1), "title": "X"}

	t.Run("should omit cast when not requested", func(t *testing.T) {
		b, err := json.Marshal(movie.Envelope{Data: record})

		require.NoError(t, err)
		assert.JSONEq(t, `{"data":{"id":1,"title":"X"}}`, string(b))
		assert.NotContains(t, string(b), "cast")
	})

	t.Run("should keep an empty cast as an array", func(t *testing.T) {
		cast := []movie.Record{}
		b, err := json.Marshal(movie.Envelope{Data: record, Cast: &cast})

		require.NoError(t, err)
		assert.JSONEq(t, `{"data":{"id":1,"title":"X"},"cast":[]}`, string(b))
	})
}
