// Package shopee implements the marketplace product-search client used to
// fetch candidate listings for the admin matching workflow.
package shopee

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/label5hub/backend/internal/domain"
)

const (
	defaultPageSize = 20
	maxAttempts     = 3
)

// Client handles communication with the marketplace search API.
type Client struct {
	httpClient  *http.Client
	baseURL     string
	appID       string
	apiKey      string
	pageSize    int
	rateLimiter *rate.Limiter
	logger      *zap.Logger
}

// NewClient creates a marketplace search client. The search endpoint tolerates
// roughly 2 requests per second per app id before throttling.
func NewClient(baseURL, appID, apiKey string, pageSize int, logger *zap.Logger) *Client {
	if pageSize <= 0 {
		pageSize = defaultPageSize
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Client{
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		baseURL:     baseURL,
		appID:       appID,
		apiKey:      apiKey,
		pageSize:    pageSize,
		rateLimiter: rate.NewLimiter(rate.Limit(2), 5),
		logger:      logger,
	}
}

// SearchProducts queries the marketplace for keyword and returns the mapped
// candidate listings. Transient failures are retried with exponential backoff.
func (c *Client) SearchProducts(ctx context.Context, keyword string) ([]domain.CandidateListing, error) {
	endpoint := fmt.Sprintf("%s/api/v4/search/search_items", c.baseURL)
	params := url.Values{}
	params.Add("keyword", keyword)
	params.Add("limit", strconv.Itoa(c.pageSize))
	params.Add("newest", "0")
	params.Add("order", "desc")
	params.Add("page_type", "search")

	reqURL := fmt.Sprintf("%s?%s", endpoint, params.Encode())

	var lastErr error
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		if err := c.rateLimiter.Wait(ctx); err != nil {
			return nil, fmt.Errorf("rate limiter error: %w", err)
		}

		resp, err := c.doRequest(ctx, reqURL)
		if err != nil {
			c.logger.Warn("search request failed",
				zap.Int("attempt", attempt), zap.Error(err))
			lastErr = err
			if !sleepCtx(ctx, exponentialBackoff(attempt)) {
				return nil, ctx.Err()
			}
			continue
		}

		body, _ := io.ReadAll(resp.Body)
		resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			c.logger.Warn("search API error",
				zap.Int("attempt", attempt),
				zap.Int("status", resp.StatusCode))
			if resp.StatusCode == http.StatusNotFound {
				return nil, domain.ErrNoCandidates
			}
			lastErr = fmt.Errorf("%w: status %d", domain.ErrMarketplaceAPIFailure, resp.StatusCode)
			if !sleepCtx(ctx, exponentialBackoff(attempt)) {
				return nil, ctx.Err()
			}
			continue
		}

		var searchResp searchResponse
		if err := json.Unmarshal(body, &searchResp); err != nil {
			return nil, fmt.Errorf("failed to decode response: %w", err)
		}

		listings := mapToCandidates(searchResp.Items)
		c.logger.Debug("search completed",
			zap.String("keyword", keyword),
			zap.Int("results", len(listings)))
		return listings, nil
	}

	return nil, lastErr
}

// doRequest executes an HTTP GET request with the app credentials attached.
func (c *Client) doRequest(ctx context.Context, reqURL string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", "Label5Hub/1.0")
	if c.appID != "" {
		req.Header.Set("X-App-Id", c.appID)
	}
	if c.apiKey != "" {
		req.Header.Set("X-Api-Key", c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrMarketplaceAPIFailure, err)
	}
	return resp, nil
}

// exponentialBackoff returns the wait before the next retry attempt.
func exponentialBackoff(attempt int) time.Duration {
	return time.Duration(500*(1<<(attempt-1))) * time.Millisecond
}

// sleepCtx sleeps for d unless ctx is cancelled first.
func sleepCtx(ctx context.Context, d time.Duration) bool {
	select {
	case <-ctx.Done():
		return false
	case <-time.After(d):
		return true
	}
}
