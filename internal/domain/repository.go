package domain

import (
	"context"
	"time"
)

// CacheRepository defines the interface for caching operations. Values are
// stored as opaque byte slices so that the in-memory and Redis
// implementations behave identically.
type CacheRepository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Exists(ctx context.Context, key string) (bool, error)
}

// MarketplaceClient defines the interface for the marketplace product-search
// API. Implementations return already-mapped candidate listings.
type MarketplaceClient interface {
	SearchProducts(ctx context.Context, keyword string) ([]CandidateListing, error)
}

// CertifiedSource defines the interface for the certification authority's
// open-data endpoint serving label-5 product records.
type CertifiedSource interface {
	FetchProducts(ctx context.Context, category string) ([]CertifiedProduct, error)
}
