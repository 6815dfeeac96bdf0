package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/label5hub/backend/internal/affiliate"
	"github.com/label5hub/backend/internal/domain"
)

var (
	nonAlphanumericRegex = regexp.MustCompile(`[^a-z0-9ก-๙\s]`)
	multipleSpacesRegex  = regexp.MustCompile(`\s+`)
)

// ListingServiceConfig holds configuration for the listing service.
type ListingServiceConfig struct {
	CacheTTL         time.Duration
	MinConfidence    float64
	TopN             int
	AffiliateID      string
	DefaultSubIDBase string
}

// ListingService drives the admin workflow: search the marketplace for
// candidates matching a certified product, rank them by confidence, and turn
// a chosen candidate into a publishable listing with a trackable link.
type ListingService struct {
	cache       domain.CacheRepository
	marketplace domain.MarketplaceClient
	matcher     *Matcher
	preproc     *QueryPreprocessor
	logger      *zap.Logger

	cacheTTL         time.Duration
	minConfidence    float64
	topN             int
	affiliateID      string
	defaultSubIDBase string
}

// NewListingService creates a listing service with its dependencies.
func NewListingService(
	cache domain.CacheRepository,
	marketplace domain.MarketplaceClient,
	matcher *Matcher,
	logger *zap.Logger,
	config ListingServiceConfig,
) *ListingService {
	cacheTTL := config.CacheTTL
	if cacheTTL == 0 {
		cacheTTL = 6 * time.Hour
	}

	minConfidence := config.MinConfidence
	if minConfidence <= 0 {
		minConfidence = 0.4
	}

	topN := config.TopN
	if topN <= 0 {
		topN = 10
	}

	if logger == nil {
		logger = zap.NewNop()
	}

	return &ListingService{
		cache:            cache,
		marketplace:      marketplace,
		matcher:          matcher,
		preproc:          NewQueryPreprocessor(),
		logger:           logger,
		cacheTTL:         cacheTTL,
		minConfidence:    minConfidence,
		topN:             topN,
		affiliateID:      config.AffiliateID,
		defaultSubIDBase: config.DefaultSubIDBase,
	}
}

// MatchCandidates searches the marketplace for the certified product and
// returns the top candidates ranked by confidence. keyword overrides the
// generated search query when non-empty.
// Flow: check cache -> search marketplace -> rank -> cache -> return.
func (s *ListingService) MatchCandidates(
	ctx context.Context,
	certified domain.CertifiedProduct,
	keyword string,
) ([]domain.ScoredCandidate, error) {
	if certified.Brand == "" && certified.Model == "" {
		return nil, domain.ErrInvalidRequest
	}

	if keyword == "" {
		keyword = s.preproc.BuildSearchKeyword(certified)
	}

	cacheKey := s.candidatesCacheKey(certified, keyword)
	if cached, ok := s.candidatesFromCache(ctx, cacheKey); ok {
		s.logger.Debug("candidate cache hit", zap.String("key", cacheKey))
		return cached, nil
	}

	listings, err := s.marketplace.SearchProducts(ctx, keyword)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrMarketplaceAPIFailure, err)
	}
	if len(listings) == 0 {
		return nil, domain.ErrNoCandidates
	}

	ranked := s.matcher.RankCandidates(certified, listings, s.topN)

	s.logger.Info("ranked marketplace candidates",
		zap.String("keyword", keyword),
		zap.Int("candidates", len(listings)),
		zap.Int("returned", len(ranked)),
		zap.Float64("best_score", ranked[0].Match.Score))

	if err := s.candidatesToCache(ctx, cacheKey, ranked); err != nil {
		s.logger.Warn("failed to cache candidates", zap.String("key", cacheKey), zap.Error(err))
	}

	return ranked, nil
}

// CreateListing scores the chosen candidate against the certified product,
// encodes the trackable affiliate link, and assembles a publishable listing.
// A listing below the confidence threshold is still returned alongside
// ErrLowConfidence so the admin can decide.
func (s *ListingService) CreateListing(
	ctx context.Context,
	certified domain.CertifiedProduct,
	candidate domain.CandidateListing,
	params domain.AttributionParams,
) (*domain.ProductListing, error) {
	if candidate.ProductURL == "" {
		return nil, domain.ErrInvalidRequest
	}

	affiliateID := params.AffiliateID
	if affiliateID == "" {
		affiliateID = s.affiliateID
	}
	subIDBase := params.SubIDBase
	if subIDBase == "" {
		subIDBase = s.defaultSubIDBase
	}

	match := s.matcher.Score(certified, candidate)
	link := affiliate.Encode(candidate.ProductURL, affiliateID, subIDBase, params.Tags)

	listing := &domain.ProductListing{
		ID:            uuid.NewString(),
		Certified:     certified,
		Candidate:     candidate,
		Confidence:    match.Score,
		MatchReasons:  match.Reasons,
		TrackableLink: link,
		CreatedAt:     time.Now().UTC(),
	}

	if match.Score < s.minConfidence {
		s.logger.Warn("listing created with low confidence",
			zap.String("listing_id", listing.ID),
			zap.Float64("confidence", match.Score),
			zap.Float64("threshold", s.minConfidence))
		return listing, domain.ErrLowConfidence
	}

	s.logger.Info("listing created",
		zap.String("listing_id", listing.ID),
		zap.Int64("item_id", candidate.ItemID),
		zap.Float64("confidence", match.Score))

	return listing, nil
}

// candidatesCacheKey creates a normalized cache key for a match request.
// Format: "candidates:{category}:{normalized_keyword}"
func (s *ListingService) candidatesCacheKey(certified domain.CertifiedProduct, keyword string) string {
	return fmt.Sprintf("candidates:%s:%s", certified.Category, normalizeForCacheKey(keyword))
}

// normalizeForCacheKey lowercases and strips characters that would make
// equivalent keywords produce distinct keys.
func normalizeForCacheKey(s string) string {
	if s == "" {
		return ""
	}
	result := strings.ToLower(s)
	result = nonAlphanumericRegex.ReplaceAllString(result, "")
	result = multipleSpacesRegex.ReplaceAllString(result, " ")
	return strings.TrimSpace(result)
}

func (s *ListingService) candidatesFromCache(ctx context.Context, key string) ([]domain.ScoredCandidate, bool) {
	data, err := s.cache.Get(ctx, key)
	if err != nil {
		return nil, false
	}

	var ranked []domain.ScoredCandidate
	if err := json.Unmarshal(data, &ranked); err != nil {
		// Stale or corrupt entry; drop it and treat as a miss.
		_ = s.cache.Delete(ctx, key)
		return nil, false
	}
	return ranked, true
}

func (s *ListingService) candidatesToCache(ctx context.Context, key string, ranked []domain.ScoredCandidate) error {
	data, err := json.Marshal(ranked)
	if err != nil {
		return err
	}
	return s.cache.Set(ctx, key, data, s.cacheTTL)
}
