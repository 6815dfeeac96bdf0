package domain

import "errors"

var (
	// ErrInvalidRequest is returned when request parameters are invalid
	ErrInvalidRequest = errors.New("invalid request parameters")

	// ErrNoCandidates is returned when the marketplace search yields no results
	ErrNoCandidates = errors.New("no marketplace candidates found")

	// ErrLowConfidence is returned when the match confidence is below the threshold
	ErrLowConfidence = errors.New("match confidence below threshold")

	// ErrMarketplaceAPIFailure is returned when a marketplace API request fails
	ErrMarketplaceAPIFailure = errors.New("marketplace API request failed")

	// ErrCertifiedAPIFailure is returned when the certification dataset request fails
	ErrCertifiedAPIFailure = errors.New("certification dataset request failed")

	// ErrCacheMiss is returned when data is not found in cache
	ErrCacheMiss = errors.New("cache miss")

	// ErrCacheUnavailable is returned when the cache service is unavailable
	ErrCacheUnavailable = errors.New("cache service unavailable")
)
