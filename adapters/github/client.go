package github

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/khoahotran/devconnect/internal/config"
	"github.com/khoahotran/devconnect/pkg/apperror"
	"github.com/khoahotran/devconnect/pkg/logger"
)

// Client fetches a user's public repositories from the GitHub API and
// relays the parsed body verbatim.
type Client struct {
	baseURL      string
	clientID     string
	clientSecret string
	httpClient   *http.Client
	log          logger.Logger
}

func NewClient(cfg config.Config, log logger.Logger) (*Client, error) {
	if cfg.Github.APIURL == "" {
		return nil, fmt.Errorf("github API URL is not configured")
	}

	log.Info("GitHub repository lookup adapter initialized")
	return &Client{
		baseURL:      cfg.Github.APIURL,
		clientID:     cfg.Github.ClientID,
		clientSecret: cfg.Github.ClientSecret,
		httpClient:   &http.Client{Timeout: 10 * time.Second},
		log:          log,
	}, nil
}

func (c *Client) ListUserRepos(ctx context.Context, username string) (json.RawMessage, error) {
	endpoint := fmt.Sprintf("%s/users/%s/repos", c.baseURL, url.PathEscape(username))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, apperror.NewInternal("failed to build github request", err)
	}

	q := req.URL.Query()
	q.Set("per_page", "5")
	q.Set("sort", "created:asc")
	if c.clientID != "" {
		q.Set("client_id", c.clientID)
		q.Set("client_secret", c.clientSecret)
	}
	req.URL.RawQuery = q.Encode()
	req.Header.Set("User-Agent", "devconnect-api")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, apperror.NewInternal("github request failed", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, apperror.NewNotFound("No Github profile found")
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, apperror.NewInternal("failed to read github response", err)
	}

	var repos json.RawMessage
	if err := json.Unmarshal(body, &repos); err != nil {
		return nil, apperror.NewInternal("github returned invalid JSON", err)
	}
	return repos, nil
}
