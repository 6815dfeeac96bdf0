package shopee

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/label5hub/backend/internal/domain"
)

const sampleResponse = `{
	"items": [
		{
			"item_basic": {
				"itemid": 456,
				"shopid": 123,
				"name": "Samsung RT28K5070SG ตู้เย็น",
				"brand": "Samsung",
				"catid": 11036023,
				"price": 1480000000,
				"item_rating": {"rating_star": 4.5, "rating_count": [320, 2, 3, 10, 55, 250]},
				"historical_sold": 812,
				"shop_name": "Samsung Official Store",
				"image": "abc123"
			}
		}
	],
	"total_count": 1
}`

func TestNewClient(t *testing.T) {
	client := NewClient("https://shopee.example", "app", "key", 0, nil)

	assert.NotNil(t, client)
	assert.Equal(t, "https://shopee.example", client.baseURL)
	assert.Equal(t, defaultPageSize, client.pageSize)
	assert.NotNil(t, client.httpClient)
	assert.NotNil(t, client.rateLimiter)
	assert.NotNil(t, client.logger)
}

func TestExponentialBackoff(t *testing.T) {
	tests := []struct {
		attempt  int
		expected time.Duration
	}{
		{1, 500 * time.Millisecond},
		{2, 1000 * time.Millisecond},
		{3, 2000 * time.Millisecond},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, exponentialBackoff(tt.attempt))
	}
}

func TestSearchProducts_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v4/search/search_items", r.URL.Path)
		assert.Equal(t, "samsung rt28k", r.URL.Query().Get("keyword"))
		assert.Equal(t, "15", r.URL.Query().Get("limit"))
		assert.Equal(t, "test-app", r.Header.Get("X-App-Id"))
		assert.Equal(t, "test-key", r.Header.Get("X-Api-Key"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(sampleResponse))
	}))
	defer server.Close()

	client := NewClient(server.URL, "test-app", "test-key", 15, nil)
	listings, err := client.SearchProducts(context.Background(), "samsung rt28k")

	require.NoError(t, err)
	require.Len(t, listings, 1)
	assert.Equal(t, int64(456), listings[0].ItemID)
	assert.Equal(t, "Samsung RT28K5070SG ตู้เย็น", listings[0].Title)
	assert.Equal(t, 14800.0, listings[0].Price)
	assert.Equal(t, 4.5, listings[0].Rating)
	assert.Equal(t, 320, listings[0].ReviewCount)
}

func TestSearchProducts_RetriesOnServerError(t *testing.T) {
	var calls int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&calls, 1) < 3 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(sampleResponse))
	}))
	defer server.Close()

	client := NewClient(server.URL, "", "", 10, nil)
	listings, err := client.SearchProducts(context.Background(), "samsung")

	require.NoError(t, err)
	assert.Len(t, listings, 1)
	assert.Equal(t, int32(3), atomic.LoadInt32(&calls))
}

func TestSearchProducts_NotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	client := NewClient(server.URL, "", "", 10, nil)
	_, err := client.SearchProducts(context.Background(), "nothing")

	assert.ErrorIs(t, err, domain.ErrNoCandidates)
}

func TestSearchProducts_ExhaustsRetries(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	client := NewClient(server.URL, "", "", 10, nil)
	_, err := client.SearchProducts(context.Background(), "samsung")

	assert.ErrorIs(t, err, domain.ErrMarketplaceAPIFailure)
}

func TestSearchProducts_ContextCancelled(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	client := NewClient(server.URL, "", "", 10, nil)
	_, err := client.SearchProducts(ctx, "samsung")

	assert.Error(t, err)
}

func TestSearchProducts_MalformedJSON(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"items": [`))
	}))
	defer server.Close()

	client := NewClient(server.URL, "", "", 10, nil)
	_, err := client.SearchProducts(context.Background(), "samsung")

	assert.Error(t, err)
}
