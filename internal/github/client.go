// Package github fetches a user's most recent public repositories.
package github

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"devconnector/internal/cache"
	"devconnector/internal/middleware"
	"devconnector/internal/models"

	"golang.org/x/oauth2"
)

const (
	// DefaultBaseURL is the public GitHub REST endpoint.
	DefaultBaseURL = "https://api.github.com"
	userAgent      = "devconnector"
	maxBodyBytes   = 1 << 20
)

// ErrNoProfile is returned for any upstream failure.
var ErrNoProfile = &models.AppError{
	Code:    models.CodeNotFound,
	Message: "No Github profile found",
}

// Client lists repositories through the GitHub REST API.
type Client struct {
	http    *http.Client
	baseURL string
	cache   *cache.Cache
	ttl     time.Duration
}

// NewClient returns a client for baseURL. A non-empty token authenticates
// requests; c may be nil to disable caching.
func NewClient(ctx context.Context, baseURL, token string, c *cache.Cache, ttl time.Duration) *Client {
	httpClient := http.DefaultClient
	if token != "" {
		httpClient = oauth2.NewClient(ctx, oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token}))
	}
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		http:    httpClient,
		baseURL: strings.TrimRight(baseURL, "/"),
		cache:   c,
		ttl:     ttl,
	}
}

// Repos returns the raw JSON listing of username's five newest repositories.
func (c *Client) Repos(ctx context.Context, username string) (json.RawMessage, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return nil, ErrNoProfile
	}

	key := cache.GitHubReposKey(username)
	if body, err := c.cache.GetBytes(ctx, key); err == nil {
		middleware.GitHubRequests.WithLabelValues("cache_hit").Inc()
		return body, nil
	}

	body, err := c.fetch(ctx, username)
	if err != nil {
		middleware.Logger.WarnContext(ctx, "github lookup failed",
			slog.String("username", username), slog.String("error", err.Error()))
		return nil, ErrNoProfile
	}

	middleware.GitHubRequests.WithLabelValues("ok").Inc()
	c.cache.SetBytes(ctx, key, body, c.ttl)
	return body, nil
}

func (c *Client) fetch(ctx context.Context, username string) (json.RawMessage, error) {
	endpoint := fmt.Sprintf("%s/users/%s/repos?per_page=5&sort=created:asc",
		c.baseURL, url.PathEscape(username))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		middleware.GitHubRequests.WithLabelValues("error").Inc()
		return nil, err
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "application/vnd.github+json")

	resp, err := c.http.Do(req)
	if err != nil {
		middleware.GitHubRequests.WithLabelValues("error").Inc()
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		middleware.GitHubRequests.WithLabelValues("not_found").Inc()
		return nil, fmt.Errorf("github responded %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		middleware.GitHubRequests.WithLabelValues("error").Inc()
		return nil, err
	}
	if !json.Valid(body) {
		middleware.GitHubRequests.WithLabelValues("error").Inc()
		return nil, fmt.Errorf("github returned invalid JSON")
	}
	return body, nil
}
