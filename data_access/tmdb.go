package data_access

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"

	"cinecircle-backend/models"
)

// ErrAPIKeyMissing is returned when the movie API key was not configured.
// Startup continues without it; only search degrades.
var ErrAPIKeyMissing = errors.New("movie API key not configured")

const (
	posterSize         = "w300"
	placeholderPoster  = "https://via.placeholder.com/300x450?text=No+Image"
	tmdbRequestTimeout = 10 * time.Second
)

type TMDBClient struct {
	client       *resty.Client
	apiKey       string
	imageBaseURL string
}

func NewTMDBClient(apiKey, baseURL, imageBaseURL string) *TMDBClient {
	c := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(tmdbRequestTimeout)

	return &TMDBClient{
		client:       c,
		apiKey:       apiKey,
		imageBaseURL: imageBaseURL,
	}
}

// SearchMovies runs the primary search call. A zero-result response is not an
// error.
func (c *TMDBClient) SearchMovies(ctx context.Context, query string) ([]models.TMDBSearchResult, error) {
	var out models.TMDBSearchResponse
	if err := c.get(ctx, "/search/movie", map[string]string{"query": query}, &out); err != nil {
		return nil, err
	}
	return out.Results, nil
}

// FetchCredits looks up the crew list for one movie.
func (c *TMDBClient) FetchCredits(ctx context.Context, movieID int64) (models.TMDBCreditsResponse, error) {
	var out models.TMDBCreditsResponse
	if err := c.get(ctx, fmt.Sprintf("/movie/%d/credits", movieID), nil, &out); err != nil {
		return models.TMDBCreditsResponse{}, err
	}
	return out, nil
}

// FetchGenres returns the static genre id to name table.
func (c *TMDBClient) FetchGenres(ctx context.Context) ([]models.TMDBGenre, error) {
	var out models.TMDBGenreListResponse
	if err := c.get(ctx, "/genre/movie/list", nil, &out); err != nil {
		return nil, err
	}
	return out.Genres, nil
}

// PosterURL builds the CDN poster URL, or the placeholder when the result
// carried no poster path.
func (c *TMDBClient) PosterURL(path string) string {
	if path == "" {
		return placeholderPoster
	}
	return fmt.Sprintf("%s/%s%s", c.imageBaseURL, posterSize, path)
}

func (c *TMDBClient) get(ctx context.Context, path string, params map[string]string, out interface{}) error {
	if c.apiKey == "" {
		return ErrAPIKeyMissing
	}

	req := c.client.R().
		SetContext(ctx).
		SetQueryParam("api_key", c.apiKey)
	for k, v := range params {
		req.SetQueryParam(k, v)
	}

	resp, err := req.Get(path)
	if err != nil {
		return fmt.Errorf("movie API request %s: %w", path, err)
	}
	if resp.StatusCode() != http.StatusOK {
		return fmt.Errorf("movie API status %d for %s", resp.StatusCode(), path)
	}

	if err := json.Unmarshal(resp.Body(), out); err != nil {
		return fmt.Errorf("decode movie API response for %s: %w", path, err)
	}
	return nil
}
