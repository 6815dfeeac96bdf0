package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/label5hub/backend/internal/affiliate"
	"github.com/label5hub/backend/internal/domain"
	"github.com/label5hub/backend/internal/usecase"
)

// Handler holds dependencies for HTTP handlers
type Handler struct {
	listings  *usecase.ListingService
	certified domain.CertifiedSource
	logger    *zap.Logger

	defaultAffiliateID string
	defaultSubIDBase   string
}

// NewHandler creates a new HTTP handler
func NewHandler(
	listings *usecase.ListingService,
	certified domain.CertifiedSource,
	logger *zap.Logger,
	defaultAffiliateID, defaultSubIDBase string,
) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{
		listings:           listings,
		certified:          certified,
		logger:             logger,
		defaultAffiliateID: defaultAffiliateID,
		defaultSubIDBase:   defaultSubIDBase,
	}
}

// HealthCheck returns the health status of the API
func (h *Handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": "label5hub-backend",
		"version": "1.0.0",
	})
}

// matchRequest is the body for the admin candidate-matching endpoint.
type matchRequest struct {
	Certified domain.CertifiedProduct `json:"certified" binding:"required"`
	Keyword   string                  `json:"keyword,omitempty"`
}

// MatchCandidates searches the marketplace and returns ranked candidates for
// a certified product.
func (h *Handler) MatchCandidates(c *gin.Context) {
	var req matchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	ranked, err := h.listings.MatchCandidates(c.Request.Context(), req.Certified, req.Keyword)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidRequest):
			c.JSON(http.StatusBadRequest, gin.H{"error": "certified product needs a brand or model"})
		case errors.Is(err, domain.ErrNoCandidates):
			c.JSON(http.StatusNotFound, gin.H{"error": "no marketplace candidates found"})
		default:
			h.logger.Error("candidate matching failed", zap.Error(err))
			c.JSON(http.StatusBadGateway, gin.H{"error": "marketplace search failed"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"candidates": ranked})
}

// createListingRequest is the body for the admin listing-creation endpoint.
type createListingRequest struct {
	Certified   domain.CertifiedProduct  `json:"certified" binding:"required"`
	Candidate   domain.CandidateListing  `json:"candidate" binding:"required"`
	Attribution domain.AttributionParams `json:"attribution"`
}

// CreateListing turns a chosen candidate into a publishable listing with a
// trackable affiliate link.
func (h *Handler) CreateListing(c *gin.Context) {
	var req createListingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	listing, err := h.listings.CreateListing(c.Request.Context(), req.Certified, req.Candidate, req.Attribution)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrLowConfidence):
			// The listing is still returned; the admin decides whether to keep it.
			c.JSON(http.StatusCreated, gin.H{"listing": listing, "lowConfidence": true})
		case errors.Is(err, domain.ErrInvalidRequest):
			c.JSON(http.StatusBadRequest, gin.H{"error": "candidate product URL is required"})
		default:
			h.logger.Error("listing creation failed", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create listing"})
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{"listing": listing})
}

// ImportCertified fetches certified products for a category from the
// certification dataset.
func (h *Handler) ImportCertified(c *gin.Context) {
	category := c.Query("category")
	if category == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "category query parameter is required"})
		return
	}

	products, err := h.certified.FetchProducts(c.Request.Context(), category)
	if err != nil {
		h.logger.Error("certified import failed", zap.String("category", category), zap.Error(err))
		c.JSON(http.StatusBadGateway, gin.H{"error": "certification dataset request failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"products": products})
}

// encodeLinkRequest is the body for the link-encoding endpoint.
type encodeLinkRequest struct {
	DestinationURL string            `json:"destinationUrl" binding:"required"`
	AffiliateID    string            `json:"affiliateId,omitempty"`
	SubIDBase      string            `json:"subIdBase,omitempty"`
	Tags           map[string]string `json:"tags,omitempty"`
}

// EncodeLink builds a trackable affiliate link for a destination URL.
func (h *Handler) EncodeLink(c *gin.Context) {
	var req encodeLinkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	affiliateID := req.AffiliateID
	if affiliateID == "" {
		affiliateID = h.defaultAffiliateID
	}
	subIDBase := req.SubIDBase
	if subIDBase == "" {
		subIDBase = h.defaultSubIDBase
	}

	url := affiliate.Encode(req.DestinationURL, affiliateID, subIDBase, req.Tags)
	c.JSON(http.StatusOK, gin.H{"url": url})
}

// ParseLink decodes a trackable link back into its attribution parts.
func (h *Handler) ParseLink(c *gin.Context) {
	raw := c.Query("url")
	parsed, ok := affiliate.Parse(raw)
	if !ok {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "not a valid trackable link"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"link": parsed})
}
