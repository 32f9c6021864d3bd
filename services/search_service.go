package services

import (
	"context"
	"strconv"
	"strings"
	"sync"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"cinecircle-backend/models"
)

const unknownLabel = "Unknown"

// MovieAPI is the remote movie database surface the search service needs.
type MovieAPI interface {
	SearchMovies(ctx context.Context, query string) ([]models.TMDBSearchResult, error)
	FetchCredits(ctx context.Context, movieID int64) (models.TMDBCreditsResponse, error)
	FetchGenres(ctx context.Context) ([]models.TMDBGenre, error)
	PosterURL(path string) string
}

// searchState holds one user's latest enriched results. seq orders searches so
// that a slow superseded search cannot clobber a newer one's results.
type searchState struct {
	seq    uint64
	movies []models.Movie
}

type SearchService struct {
	api    MovieAPI
	log    zerolog.Logger
	genres map[int]string

	stateMutex sync.RWMutex
	userStates map[string]*searchState
}

func NewSearchService(api MovieAPI, log zerolog.Logger) *SearchService {
	return &SearchService{
		api:        api,
		log:        log,
		genres:     map[int]string{},
		userStates: make(map[string]*searchState),
	}
}

// LoadGenres fetches the genre lookup table once at startup. Failure is
// tolerated: unresolved ids simply render as Unknown.
func (s *SearchService) LoadGenres(ctx context.Context) {
	genres, err := s.api.FetchGenres(ctx)
	if err != nil {
		s.log.Warn().Err(err).Msg("failed to fetch genre list, genres will resolve as Unknown")
		return
	}
	m := make(map[int]string, len(genres))
	for _, g := range genres {
		m[g.ID] = g.Name
	}
	s.genres = m
}

// Search runs the primary search and enriches every result with a director
// name and resolved genres. An empty or whitespace query performs no network
// call and leaves the user's prior results untouched.
func (s *SearchService) Search(ctx context.Context, userID, query string) ([]models.Movie, error) {
	if strings.TrimSpace(query) == "" {
		return s.Results(userID), nil
	}

	token := s.nextToken(userID)

	results, err := s.api.SearchMovies(ctx, query)
	if err != nil {
		s.log.Error().Err(err).Str("query", query).Msg("movie search failed")
		s.apply(userID, token, []models.Movie{})
		return []models.Movie{}, err
	}

	movies := make([]models.Movie, len(results))
	g, gctx := errgroup.WithContext(ctx)
	for i, item := range results {
		i, item := i, item
		g.Go(func() error {
			movies[i] = s.enrich(gctx, item)
			return nil
		})
	}
	// Enrichment degrades per item and never reports an error.
	_ = g.Wait()

	s.apply(userID, token, movies)
	return movies, nil
}

// Results returns the user's latest applied search results.
func (s *SearchService) Results(userID string) []models.Movie {
	s.stateMutex.RLock()
	defer s.stateMutex.RUnlock()

	state, ok := s.userStates[userID]
	if !ok || state.movies == nil {
		return []models.Movie{}
	}
	out := make([]models.Movie, len(state.movies))
	copy(out, state.movies)
	return out
}

// Clear drops the user's result state on logout.
func (s *SearchService) Clear(userID string) {
	s.stateMutex.Lock()
	defer s.stateMutex.Unlock()
	delete(s.userStates, userID)
}

func (s *SearchService) enrich(ctx context.Context, item models.TMDBSearchResult) models.Movie {
	director := unknownLabel
	credits, err := s.api.FetchCredits(ctx, item.ID)
	if err != nil {
		s.log.Warn().Err(err).Int64("movie_id", item.ID).Msg("failed to fetch credits")
	} else {
		for _, member := range credits.Crew {
			if member.Job == "Director" {
				director = member.Name
				break
			}
		}
	}

	return models.Movie{
		ID:       item.ID,
		Title:    item.Title,
		Year:     releaseYear(item.ReleaseDate),
		Genre:    s.genreNames(item.GenreIDs),
		Director: director,
		Poster:   s.api.PosterURL(item.PosterPath),
	}
}

func (s *SearchService) genreNames(ids []int) string {
	names := []string{}
	for _, id := range ids {
		if name, ok := s.genres[id]; ok {
			names = append(names, name)
		}
	}
	if len(names) == 0 {
		return unknownLabel
	}
	return strings.Join(names, ", ")
}

func releaseYear(releaseDate string) int {
	if len(releaseDate) < 4 {
		return 0
	}
	year, err := strconv.Atoi(releaseDate[:4])
	if err != nil {
		return 0
	}
	return year
}

func (s *SearchService) nextToken(userID string) uint64 {
	s.stateMutex.Lock()
	defer s.stateMutex.Unlock()

	state, ok := s.userStates[userID]
	if !ok {
		state = &searchState{}
		s.userStates[userID] = state
	}
	state.seq++
	return state.seq
}

// apply stores results only if token still identifies the newest search for
// this user.
func (s *SearchService) apply(userID string, token uint64, movies []models.Movie) {
	s.stateMutex.Lock()
	defer s.stateMutex.Unlock()

	state, ok := s.userStates[userID]
	if !ok || state.seq != token {
		return
	}
	state.movies = movies
}
