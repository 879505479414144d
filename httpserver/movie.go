package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"movielookup/errs"
	"movielookup/movie"
	"movielookup/pkg/metrics"
)

func (s *Server) RegisterMovieRoutes(g *echo.Group) {
	g.GET("/movies/:movieId", s.handleGetMovie)
}

// handleGetMovie godoc
// @Summary Get Movie
// @Description Movie metadata by id, optionally joined with its cast
// @Tags movies
// @Produce json
// @Param movieId path int true "Movie id"
// @Param cast query string false "true to include the cast"
// @Success 200 {object} movie.Envelope
// @Failure 404 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /movies/{movieId} [get]
func (s *Server) handleGetMovie(c echo.Context) error {
	if s.MovieService == nil {
		return errs.Errorf(errs.ENOTIMPLEMENTED, "movie service not configured")
	}

	q, err := movie.NewQuery(c.Param("movieId"), c.QueryParam("cast"))
	if err != nil {
		metrics.ObserveLookup("http", false, err)
		return err
	}

	env, err := s.MovieService.Lookup(c.Request().Context(), q)
	metrics.ObserveLookup("http", q.IncludeCast, err)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, env)
}
