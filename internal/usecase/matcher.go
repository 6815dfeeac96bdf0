package usecase

import (
	"math"
	"sort"
	"strings"

	"github.com/label5hub/backend/internal/domain"
)

// Scoring weights. Each criterion contributes independently and at most once;
// the final score is clamped to 1.0.
const (
	weightBrandExact   = 0.4
	weightBrandPartial = 0.2
	weightModelExact   = 0.3
	weightModelPartial = 0.15
	weightPriceClose   = 0.2
	weightPriceNear    = 0.1
	weightCategory     = 0.1
	weightRatingHigh   = 0.1
)

// Price proximity thresholds (relative difference against recommended price).
const (
	priceCloseThreshold = 0.10
	priceNearThreshold  = 0.30
)

// Rating/review thresholds for the bonus signals.
const (
	highRatingFloor  = 4.0
	manyReviewsFloor = 100
)

// Match reason tags, in evaluation order.
const (
	ReasonBrandExact    = "brand_exact"
	ReasonBrandPartial  = "brand_partial"
	ReasonModelExact    = "model_exact"
	ReasonModelPartial  = "model_partial"
	ReasonPriceClose    = "price_close"
	ReasonPriceNear     = "price_near"
	ReasonCategoryMatch = "category_match"
	ReasonRatingHigh    = "rating_high"
	ReasonReviewsMany   = "reviews_many"
)

// Matcher scores how well a marketplace candidate corresponds to a certified
// product. It is pure and safe for concurrent use.
type Matcher struct {
	categories *CategoryTable
}

// NewMatcher creates a matcher using the given category table.
func NewMatcher(categories *CategoryTable) *Matcher {
	if categories == nil {
		categories = NewCategoryTable()
	}
	return &Matcher{categories: categories}
}

// Score computes the confidence score and reasons for one certified/candidate
// pair. Deterministic, no side effects, total over its input domain: fully
// disjoint inputs yield score 0 with no reasons.
func (m *Matcher) Score(certified domain.CertifiedProduct, candidate domain.CandidateListing) domain.MatchResult {
	var result domain.MatchResult

	titleLower := strings.ToLower(candidate.Title)

	// Brand: exact against candidate brand, else substring within the title.
	// Empty certified brand never matches; a naive substring check would
	// trivially accept every candidate.
	brand := normalizeField(certified.Brand)
	if brand != "" {
		switch {
		case normalizeField(candidate.Brand) == brand:
			result.Score += weightBrandExact
			result.Reasons = append(result.Reasons, ReasonBrandExact)
		case strings.Contains(titleLower, brand):
			result.Score += weightBrandPartial
			result.Reasons = append(result.Reasons, ReasonBrandPartial)
		}
	}

	// Model: same exact/substring logic, falling back to the title.
	model := normalizeField(certified.Model)
	if model != "" {
		candidateModel := normalizeField(candidate.Model)
		switch {
		case candidateModel == model:
			result.Score += weightModelExact
			result.Reasons = append(result.Reasons, ReasonModelExact)
		case candidateModel != "" && strings.Contains(candidateModel, model),
			strings.Contains(titleLower, model):
			result.Score += weightModelPartial
			result.Reasons = append(result.Reasons, ReasonModelPartial)
		}
	}

	// Price proximity: only when a recommended price is known.
	if certified.RecommendedPrice > 0 {
		relDiff := math.Abs(certified.RecommendedPrice-candidate.Price) / certified.RecommendedPrice
		switch {
		case relDiff <= priceCloseThreshold:
			result.Score += weightPriceClose
			result.Reasons = append(result.Reasons, ReasonPriceClose)
		case relDiff <= priceNearThreshold:
			result.Score += weightPriceNear
			result.Reasons = append(result.Reasons, ReasonPriceNear)
		}
	}

	// Category: compare in the certified code space after mapping.
	if mapped := m.categories.MapMarketplace(candidate.Category); mapped != "" && mapped == certified.Category {
		result.Score += weightCategory
		result.Reasons = append(result.Reasons, ReasonCategoryMatch)
	}

	if candidate.Rating >= highRatingFloor {
		result.Score += weightRatingHigh
		result.Reasons = append(result.Reasons, ReasonRatingHigh)
	}

	// Review volume is a reason-only signal; adding it to the score would
	// push the total past 1.0.
	if candidate.ReviewCount >= manyReviewsFloor {
		result.Reasons = append(result.Reasons, ReasonReviewsMany)
	}

	if result.Score > 1.0 {
		result.Score = 1.0
	}

	return result
}

// RankCandidates scores every candidate and returns them ordered by score
// descending, truncated to topN. Ties keep the marketplace's original order.
// topN <= 0 returns all candidates.
func (m *Matcher) RankCandidates(certified domain.CertifiedProduct, candidates []domain.CandidateListing, topN int) []domain.ScoredCandidate {
	scored := make([]domain.ScoredCandidate, 0, len(candidates))
	for _, c := range candidates {
		scored = append(scored, domain.ScoredCandidate{
			Candidate: c,
			Match:     m.Score(certified, c),
		})
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Match.Score > scored[j].Match.Score
	})

	if topN > 0 && len(scored) > topN {
		scored = scored[:topN]
	}
	return scored
}

// normalizeField prepares a brand/model field for comparison.
func normalizeField(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
