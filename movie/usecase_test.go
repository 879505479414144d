package movie_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"movielookup/movie"
)

type MockMovieRepository struct {
	mock.Mock
}

func (m *MockMovieRepository) GetMovie(ctx context.Context, id int64) (movie.Record, error) {
	args := m.Called(ctx, id)
	if r := args.Get(0); r != nil {
		return r.(movie.Record), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockMovieRepository) MovieCast(ctx context.Context, movieID int64) ([]movie.Record, error) {
	args := m.Called(ctx, movieID)
	if r := args.Get(0); r != nil {
		return r.([]movie.Record), args.Error(1)
	}
	return nil, args.Error(1)
}

func TestLookup(t *testing.T) {
	record := movie.Record{"id": float64(1), "title": "X"}

	t.Run("should return only the movie when cast is not requested", func(t *testing.T) {
		r := new(MockMovieRepository)
		uc := movie.NewUsecase(r)
		r.On("GetMovie", mock.Anything, int64(1)).Return(record, nil).Once()

		env, err := uc.Lookup(context.Background(), movie.Query{MovieID: 1})

		require.NoError(t, err)
		assert.Equal(t, record, env.Data)
		assert.Nil(t, env.Cast)
		r.AssertExpectations(t)
		r.AssertNotCalled(t, "MovieCast", mock.Anything, mock.Anything)
	})

	t.Run("should attach cast entries when requested", func(t *testing.T) {
		r := new(MockMovieRepository)
		uc := movie.NewUsecase(r)
		cast := []movie.Record{
			{"movieId": float64(1), "actorName": "A"},
			{"movieId": float64(1), "actorName": "B"},
		}
		r.On("GetMovie", mock.Anything, int64(1)).Return(record, nil).Once()
		r.On("MovieCast", mock.Anything, int64(1)).Return(cast, nil).Once()

		env, err := uc.Lookup(context.Background(), movie.Query{MovieID: 1, IncludeCast: true})

		require.NoError(t, err)
		require.NotNil(t, env.Cast)
		assert.ElementsMatch(t, cast, *env.Cast)
		r.AssertExpectations(t)
	})

	t.Run("should turn a missing cast into an empty list", func(t *testing.T) {
		r := new(MockMovieRepository)
		uc := movie.NewUsecase(r)
		r.On("GetMovie", mock.Anything, int64(1)).Return(record, nil).Once()
		r.On("MovieCast", mock.Anything, int64(1)).Return(nil, nil).Once()

		env, err := uc.Lookup(context.Background(), movie.Query{MovieID: 1, IncludeCast: true})

		require.NoError(t, err)
		require.NotNil(t, env.Cast)
		assert.Empty(t, *env.Cast)
	})

	t.Run("should fail with invalid id when the movie does not exist", func(t *testing.T) {
		r := new(MockMovieRepository)
		uc := movie.NewUsecase(r)
		r.On("GetMovie", mock.Anything, int64(999)).Return(nil, movie.ErrInvalidMovieID).Once()

		_, err := uc.Lookup(context.Background(), movie.Query{MovieID: 999, IncludeCast: true})

		assert.Equal(t, movie.ErrInvalidMovieID, err)
		r.AssertNotCalled(t, "MovieCast", mock.Anything, mock.Anything)
	})

	t.Run("should fail with missing id on a zero id", func(t *testing.T) {
		r := new(MockMovieRepository)
		uc := movie.NewUsecase(r)

		_, err := uc.Lookup(context.Background(), movie.Query{})

		assert.Equal(t, movie.ErrMissingMovieID, err)
		r.AssertNotCalled(t, "GetMovie", mock.Anything, mock.Anything)
	})

	t.Run("should propagate storage errors", func(t *testing.T) {
		r := new(MockMovieRepository)
		uc := movie.NewUsecase(r)
		storageErr := errors.New("dynamodb: query movie cast: throttled")
		r.On("GetMovie", mock.Anything, int64(1)).Return(record, nil).Once()
		r.On("MovieCast", mock.Anything, int64(1)).Return(nil, storageErr).Once()

		_, err := uc.Lookup(context.Background(), movie.Query{MovieID: 1, IncludeCast: true})

		assert.ErrorIs(t, err, storageErr)
	})
}
