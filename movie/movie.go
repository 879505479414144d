package movie

import (
	"math"
	"strings"

	"movielookup/errs"
)

var (
	ErrMissingMovieID = errs.Errorf(errs.ENOTFOUND, "Missing movie Id")
	ErrInvalidMovieID = errs.Errorf(errs.ENOTFOUND, "Invalid movie Id")
)

// Record is a document as stored in the Movies or MovieCast table. Attributes
// other than the keys are passed through untouched.
type Record map[string]any

// Envelope is the body of a successful lookup. Cast is only set when the cast
// was requested, in which case it is never nil.
type Envelope struct {
	Data Record    `json:"data"`
	Cast *[]Record `json:"cast,omitempty"`
}

// Query is a single lookup request.
type Query struct {
	MovieID     int64
	IncludeCast bool
}

// NewQuery builds a Query from the raw movieId path parameter and the raw
// cast query parameter.
func NewQuery(rawMovieID, rawCast string) (Query, error) {
	id, ok := ParseID(rawMovieID)
	if !ok {
		return Query{}, ErrMissingMovieID
	}
	return Query{MovieID: id, IncludeCast: rawCast == "true"}, nil
}

// ParseID reads a movie identifier the way a lenient integer parser does:
// leading whitespace and an optional sign, then the leading run of decimal
// digits. Anything after the digits is ignored. Only positive values that fit
// in an int64 are accepted.
func ParseID(raw string) (int64, bool) {
	s := strings.TrimLeft(raw, " \t\n\r\v\f")
	negative := false
	if s != "" && (s[0] == '+' || s[0] == '-') {
		negative = s[0] == '-'
		s = s[1:]
	}

	var (
		n      int64
		digits int
	)
	for ; digits < len(s); digits++ {
		c := s[digits]
		if c < '0' || c > '9' {
			break
		}
		d := int64(c - '0')
		if n > (math.MaxInt64-d)/10 {
			return 0, false
		}
		n = n*10 + d
	}

	if digits == 0 || negative || n == 0 {
		return 0, false
	}
	return n, true
}
