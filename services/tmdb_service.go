package services

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

const tmdbBaseURL = "https://api.themoviedb.org/3"

// TMDBService is a read-only passthrough to the TMDB catalog. Each call
// maps 1:1 to one outbound request and the response body is relayed
// verbatim to the caller.
type TMDBService struct {
	apiKey  string
	baseURL string
	client  *http.Client
}

func NewTMDBService(apiKey string) *TMDBService {
	return &TMDBService{
		apiKey:  apiKey,
		baseURL: tmdbBaseURL,
		client:  &http.Client{Timeout: 10 * time.Second},
	}
}

func (s *TMDBService) Trending(ctx context.Context) ([]byte, int, error) {
	return s.get(ctx, "/trending/movie/week", nil)
}

func (s *TMDBService) Popular(ctx context.Context, page string) ([]byte, int, error) {
	if page == "" {
		page = "1"
	}
	return s.get(ctx, "/movie/popular", url.Values{"page": {page}})
}

func (s *TMDBService) Search(ctx context.Context, query string) ([]byte, int, error) {
	return s.get(ctx, "/search/movie", url.Values{"query": {query}})
}

func (s *TMDBService) Details(ctx context.Context, movieID string) ([]byte, int, error) {
	return s.get(ctx, "/movie/"+url.PathEscape(movieID), nil)
}

func (s *TMDBService) Credits(ctx context.Context, movieID string) ([]byte, int, error) {
	return s.get(ctx, "/movie/"+url.PathEscape(movieID)+"/credits", nil)
}

func (s *TMDBService) Similar(ctx context.Context, movieID string) ([]byte, int, error) {
	return s.get(ctx, "/movie/"+url.PathEscape(movieID)+"/similar", nil)
}

func (s *TMDBService) get(ctx context.Context, path string, params url.Values) ([]byte, int, error) {
	if s.apiKey == "" {
		return nil, 0, fmt.Errorf("TMDB API key not configured")
	}

	if params == nil {
		params = url.Values{}
	}
	params.Set("api_key", s.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.baseURL+path+"?"+params.Encode(), nil)
	if err != nil {
		return nil, 0, err
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, 0, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, 0, err
	}

	return body, resp.StatusCode, nil
}
