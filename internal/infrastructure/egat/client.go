// Package egat implements the client for the certification authority's
// open-data endpoint serving label-5 appliance records.
package egat

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/label5hub/backend/internal/domain"
)

// Client fetches certified-product records from the EGAT open-data API.
type Client struct {
	httpClient  *http.Client
	baseURL     string
	rateLimiter *rate.Limiter
	logger      *zap.Logger
}

// NewClient creates a certified-dataset client.
func NewClient(baseURL string, logger *zap.Logger) *Client {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Client{
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		baseURL:     baseURL,
		rateLimiter: rate.NewLimiter(rate.Limit(1), 3),
		logger:      logger,
	}
}

// recordsResponse is the wire shape of the dataset endpoint.
type recordsResponse struct {
	Products []record `json:"products"`
}

type record struct {
	Brand            string  `json:"brand"`
	Model            string  `json:"model"`
	Category         string  `json:"category"`
	RecommendedPrice float64 `json:"recommended_price"`
	EnergyRating     string  `json:"energy_rating"`
	AnnualSavings    float64 `json:"annual_savings"`
}

// FetchProducts retrieves the certified records for one category.
func (c *Client) FetchProducts(ctx context.Context, category string) ([]domain.CertifiedProduct, error) {
	if err := c.rateLimiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limiter error: %w", err)
	}

	endpoint := fmt.Sprintf("%s/api/label5/products", c.baseURL)
	params := url.Values{}
	params.Add("category", category)
	reqURL := fmt.Sprintf("%s?%s", endpoint, params.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", "Label5Hub/1.0")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrCertifiedAPIFailure, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: status %d, body: %s", domain.ErrCertifiedAPIFailure, resp.StatusCode, string(body))
	}

	var recordsResp recordsResponse
	if err := json.NewDecoder(resp.Body).Decode(&recordsResp); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	products := make([]domain.CertifiedProduct, 0, len(recordsResp.Products))
	for _, r := range recordsResp.Products {
		products = append(products, domain.CertifiedProduct{
			Brand:            r.Brand,
			Model:            r.Model,
			Category:         r.Category,
			RecommendedPrice: r.RecommendedPrice,
			EnergyRating:     domain.EnergyRating(r.EnergyRating),
			AnnualSavings:    r.AnnualSavings,
		})
	}

	c.logger.Debug("fetched certified products",
		zap.String("category", category),
		zap.Int("count", len(products)))

	return products, nil
}
