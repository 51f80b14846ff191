package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"time"

	"devconnector-be/internal/cache"
)

const (
	githubAPIBase   = "https://api.github.com"
	githubCacheTTL  = 10 * time.Minute
	githubRepoCount = 5
)

// GithubService proxies a user's most recent public repositories. Responses
// are cached so repeated profile views don't burn the API quota.
type GithubService interface {
	Repos(username string) (json.RawMessage, error)
}

type githubService struct {
	client  *http.Client
	token   string
	baseURL string
	cache   cache.Cache
	ctx     context.Context
}

// NewGithubService creates a GitHub proxy. token is optional and raises the
// unauthenticated rate limit when set; cache may be nil.
func NewGithubService(token string, cacheClient cache.Cache) GithubService {
	return &githubService{
		client:  &http.Client{Timeout: 10 * time.Second},
		token:   token,
		baseURL: githubAPIBase,
		cache:   cacheClient,
		ctx:     context.Background(),
	}
}

// Repos returns the raw GitHub JSON for the user's latest repositories.
func (s *githubService) Repos(username string) (json.RawMessage, error) {
	cacheKey := fmt.Sprintf("github:repos:%s", username)
	if s.cache != nil {
		cached, err := s.cache.Get(s.ctx, cacheKey)
		if err == nil {
			return json.RawMessage(cached), nil
		}
		if !errors.Is(err, cache.ErrMiss) {
			log.Printf("github cache read failed: %v", err)
		}
	}

	endpoint := fmt.Sprintf("%s/users/%s/repos?per_page=%d&sort=created:asc",
		s.baseURL, url.PathEscape(username), githubRepoCount)

	req, err := http.NewRequestWithContext(s.ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build github request: %w", err)
	}
	req.Header.Set("Accept", "application/vnd.github.v3+json")
	if s.token != "" {
		req.Header.Set("Authorization", "token "+s.token)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to reach github: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, ErrNoGithubProfile
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("github returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read github response: %w", err)
	}

	if s.cache != nil {
		s.cache.Set(s.ctx, cacheKey, string(body), githubCacheTTL)
	}

	return json.RawMessage(body), nil
}
