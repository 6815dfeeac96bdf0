package domain

import "time"

// EnergyRating is the efficiency grade printed on the label, A (best) to E.
type EnergyRating string

const (
	RatingA EnergyRating = "A"
	RatingB EnergyRating = "B"
	RatingC EnergyRating = "C"
	RatingD EnergyRating = "D"
	RatingE EnergyRating = "E"
)

// CertifiedProduct represents one appliance record from the EGAT label-5
// certification dataset. Brand and Model may be empty strings but are never
// absent; Category is one of the fixed certified category codes.
type CertifiedProduct struct {
	Brand            string       `json:"brand"`
	Model            string       `json:"model"`
	Category         string       `json:"category"`         // e.g. "ref", "air", "washer"
	RecommendedPrice float64      `json:"recommendedPrice"` // THB, 0 = unknown
	EnergyRating     EnergyRating `json:"energyRating"`
	AnnualSavings    float64      `json:"annualSavings"` // THB per year
}

// CandidateListing represents one marketplace search result considered as a
// possible match for a CertifiedProduct. Category uses the marketplace's own
// code space and must be mapped before comparison.
type CandidateListing struct {
	ItemID      int64   `json:"itemId"`
	Title       string  `json:"title"`
	Brand       string  `json:"brand,omitempty"`
	Model       string  `json:"model,omitempty"`
	Category    string  `json:"category"`
	Price       float64 `json:"price"`  // THB
	Rating      float64 `json:"rating"` // 0-5 stars
	ReviewCount int     `json:"reviewCount"`
	ProductURL  string  `json:"productUrl"`
	ImageURL    string  `json:"imageUrl,omitempty"`
	ShopName    string  `json:"shopName,omitempty"`
}

// ProductListing is the publishable listing an admin creates by pairing a
// certified product with a chosen marketplace candidate.
type ProductListing struct {
	ID            string           `json:"id"`
	Certified     CertifiedProduct `json:"certified"`
	Candidate     CandidateListing `json:"candidate"`
	Confidence    float64          `json:"confidence"` // match score 0-1
	MatchReasons  []string         `json:"matchReasons,omitempty"`
	TrackableLink string           `json:"trackableLink"`
	CreatedAt     time.Time        `json:"createdAt"`
}
