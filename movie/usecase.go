package movie

import "context"

type Service interface {
	Lookup(ctx context.Context, q Query) (Envelope, error)
}

type Repository interface {
	// GetMovie returns ErrInvalidMovieID when no movie has the given id.
	GetMovie(ctx context.Context, id int64) (Record, error)
	// MovieCast returns every cast entry of the movie, or an empty slice.
	MovieCast(ctx context.Context, movieID int64) ([]Record, error)
}

type Usecase struct {
	r Repository
}

func NewUsecase(r Repository) *Usecase {
	return &Usecase{r: r}
}

// Lookup fetches the movie first and only queries the cast once the movie is
// known to exist.
func (uc *Usecase) Lookup(ctx context.Context, q Query) (Envelope, error) {
	if q.MovieID <= 0 {
		return Envelope{}, ErrMissingMovieID
	}

	record, err := uc.r.GetMovie(ctx, q.MovieID)
	if err != nil {
		return Envelope{}, err
	}
	if record == nil {
		return Envelope{}, ErrInvalidMovieID
	}

	env := Envelope{Data: record}
	if !q.IncludeCast {
		return env, nil
	}

	cast, err := uc.r.MovieCast(ctx, q.MovieID)
	if err != nil {
		return Envelope{}, err
	}
	if cast == nil {
		cast = []Record{}
	}
	env.Cast = &cast

	return env, nil
}
