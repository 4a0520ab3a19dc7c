package client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/meghashyamc/advocates/logger"
	"github.com/meghashyamc/advocates/models"
)

const (
	advocatesPath   = "/api/advocates"
	facetsPath      = "/api/advocates/facets"
	defaultTimeout  = 10 * time.Second
	maxErrorBodyLen = 512
)

type SearchResponse struct {
	Data   []models.Advocate `json:"data"`
	Total  int               `json:"total"`
	Search *string           `json:"search"`
}

// StatusError is returned for any non-2xx response.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("failed to fetch advocates: unexpected status %d", e.StatusCode)
}

// Fetcher is the client side of the advocates API.
type Fetcher interface {
	Search(ctx context.Context, term string) (*SearchResponse, error)
	FacetOptions(ctx context.Context) (*models.FacetOptions, error)
}

type APIClient struct {
	baseURL    string
	httpClient *http.Client
	logger     logger.Logger
}

func NewAPIClient(logger logger.Logger, baseURL string) *APIClient {
	return &APIClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: defaultTimeout},
		logger:     logger,
	}
}

// Close drops the client's idle keep-alive connections.
func (c *APIClient) Close() {
	c.httpClient.CloseIdleConnections()
}

// Search never retries. A failed request is reported to the caller as is.
func (c *APIClient) Search(ctx context.Context, term string) (*SearchResponse, error) {
	endpoint := c.baseURL + advocatesPath
	if term != "" {
		endpoint += "?" + url.Values{"search": []string{term}}.Encode()
	}

	response := SearchResponse{}
	if err := c.get(ctx, endpoint, &response); err != nil {
		return nil, err
	}
	if response.Data == nil {
		response.Data = make([]models.Advocate, 0)
	}

	return &response, nil
}

func (c *APIClient) FacetOptions(ctx context.Context) (*models.FacetOptions, error) {
	var envelope struct {
		Data   models.FacetOptions `json:"data"`
		Errors []string            `json:"errors"`
	}
	if err := c.get(ctx, c.baseURL+facetsPath, &envelope); err != nil {
		return nil, err
	}

	return &envelope.Data, nil
}

func (c *APIClient) get(ctx context.Context, endpoint string, into any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("could not build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Warn("request failed", "endpoint", endpoint, "err", err.Error())
		return fmt.Errorf("failed to fetch advocates: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodyLen))
		c.logger.Warn("unexpected status", "endpoint", endpoint, "status", resp.StatusCode)
		return &StatusError{StatusCode: resp.StatusCode, Body: string(body)}
	}

	if err := json.NewDecoder(resp.Body).Decode(into); err != nil {
		c.logger.Warn("could not decode response", "endpoint", endpoint, "err", err.Error())
		return fmt.Errorf("could not decode response: %w", err)
	}

	return nil
}
