// Package client provides an HTTP client for the Private Content Feed API.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Visibility is what the service knows about an item's confidential interest score.
type Visibility struct {
	State string `json:"state"`
	Value int    `json:"value,omitempty"`
}

// Content is a registry item as served by the API.
type Content struct {
	ID            string    `json:"id"`
	Title         string    `json:"title"`
	Category      string    `json:"category"`
	Description   string    `json:"description"`
	Creator       string    `json:"creator"`
	CreatedAt     time.Time `json:"created_at"`
	PublicViews   uint64    `json:"public_views"`
	PublicLikes   uint64    `json:"public_likes"`
	VerifiedScore *int      `json:"verified_score,omitempty"`
}

type Stats struct {
	MatchScore int `json:"match_score"`
	Relevance  int `json:"relevance"`
	Popularity int `json:"popularity"`
	Freshness  int `json:"freshness"`
	Diversity  int `json:"diversity"`
	Score      struct {
		Value  int    `json:"value"`
		Source string `json:"source"`
	} `json:"score"`
}

// ScoredContent is an item with its visibility and recommendation stats.
type ScoredContent struct {
	Item       Content    `json:"item"`
	Visibility Visibility `json:"visibility"`
	Stats      Stats      `json:"stats"`
}

type Status struct {
	Phase   string `json:"phase"`
	Message string `json:"message"`
	Visible bool   `json:"visible"`
}

// Session is the service's single client session.
type Session struct {
	Mode         string `json:"mode"`
	Account      string `json:"account,omitempty"`
	Connected    bool   `json:"connected"`
	Initialized  bool   `json:"initialized"`
	Initializing bool   `json:"initializing"`
	Loading      bool   `json:"loading"`
	Refreshing   bool   `json:"refreshing"`
	Status       Status `json:"status"`
}

type NewContent struct {
	Title         string `json:"title"`
	Category      string `json:"category"`
	Description   string `json:"description"`
	InterestScore int    `json:"interest_score"`
}

type CreateResult struct {
	ID     string `json:"id"`
	TxHash string `json:"tx_hash"`
}

type DecryptResult struct {
	Value      *int       `json:"value"`
	Outcome    string     `json:"outcome,omitempty"`
	Visibility Visibility `json:"visibility"`
	Hidden     bool       `json:"hidden"`
}

type Summary struct {
	TotalItems    int     `json:"total_items"`
	VerifiedItems int     `json:"verified_items"`
	RecentItems   int     `json:"recent_items"`
	Categories    int     `json:"categories"`
	AverageViews  float64 `json:"average_views"`
}

// Client is an HTTP client for the Private Content Feed API.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a new API client.
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		httpClient: &http.Client{
			// Creating content and verifying decryptions wait for transaction finality.
			Timeout: 2 * time.Minute,
		},
	}
}

func (c *Client) do(ctx context.Context, method, path string, body, result any) error {
	var reader io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshalling request: %w", err)
		}
		reader = bytes.NewReader(jsonBody)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("executing request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return responseError(resp)
	}

	if result != nil && resp.StatusCode != http.StatusNoContent {
		if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
			return fmt.Errorf("decoding response: %w", err)
		}
	}
	return nil
}

// responseError prefers the API's user-facing message over the raw body.
func responseError(resp *http.Response) error {
	body, _ := io.ReadAll(resp.Body)

	var apiErr struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(body, &apiErr); err == nil && apiErr.Error != "" {
		return fmt.Errorf("API error (status %d): %s", resp.StatusCode, apiErr.Error)
	}
	return fmt.Errorf("API error (status %d): %s", resp.StatusCode, string(body))
}

func (c *Client) Session(ctx context.Context) (*Session, error) {
	var s Session
	if err := c.do(ctx, http.MethodGet, "/v1/session", nil, &s); err != nil {
		return nil, err
	}
	return &s, nil
}

// Connect connects a wallet account, waiting for the service to initialize and load.
func (c *Client) Connect(ctx context.Context, account string) (*Session, error) {
	var s Session
	body := struct {
		Account string `json:"account"`
	}{Account: account}
	if err := c.do(ctx, http.MethodPost, "/v1/session/connect", body, &s); err != nil {
		return nil, err
	}
	return &s, nil
}

func (c *Client) Disconnect(ctx context.Context) (*Session, error) {
	var s Session
	if err := c.do(ctx, http.MethodPost, "/v1/session/disconnect", nil, &s); err != nil {
		return nil, err
	}
	return &s, nil
}

// ListContent lists loaded content in recommendation order, optionally restricted to a category.
func (c *Client) ListContent(ctx context.Context, category string) ([]ScoredContent, error) {
	path := "/v1/content"
	if category != "" {
		path += "?" + url.Values{"category": {category}}.Encode()
	}

	var items []ScoredContent
	if err := c.do(ctx, http.MethodGet, path, nil, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (c *Client) GetContent(ctx context.Context, contentID string) (*ScoredContent, error) {
	var item ScoredContent
	if err := c.do(ctx, http.MethodGet, "/v1/content/"+url.PathEscape(contentID), nil, &item); err != nil {
		return nil, err
	}
	return &item, nil
}

func (c *Client) CreateContent(ctx context.Context, content NewContent) (*CreateResult, error) {
	var res CreateResult
	if err := c.do(ctx, http.MethodPost, "/v1/content", content, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// DecryptScore decrypts an item's interest score. With toggle set, a score already shown is hidden instead.
func (c *Client) DecryptScore(ctx context.Context, contentID string, toggle bool) (*DecryptResult, error) {
	path := "/v1/content/" + url.PathEscape(contentID) + "/decrypt"
	if toggle {
		path += "?toggle=true"
	}

	var res DecryptResult
	if err := c.do(ctx, http.MethodPost, path, nil, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

func (c *Client) HideScore(ctx context.Context, contentID string) error {
	return c.do(ctx, http.MethodPost, "/v1/content/"+url.PathEscape(contentID)+"/hide", nil, nil)
}

func (c *Client) Refresh(ctx context.Context) error {
	return c.do(ctx, http.MethodPost, "/v1/content/refresh", nil, nil)
}

func (c *Client) CheckAvailability(ctx context.Context) error {
	return c.do(ctx, http.MethodGet, "/v1/availability", nil, nil)
}

func (c *Client) Stats(ctx context.Context) (*Summary, error) {
	var s Summary
	if err := c.do(ctx, http.MethodGet, "/v1/stats", nil, &s); err != nil {
		return nil, err
	}
	return &s, nil
}
