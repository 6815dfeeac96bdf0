package shopee

import (
	"fmt"
	"strconv"

	"github.com/label5hub/backend/internal/domain"
)

// priceDivisor converts the API's micro-unit prices into THB.
const priceDivisor = 100000

// searchResponse is the wire shape of the search endpoint.
type searchResponse struct {
	Items     []searchItem `json:"items"`
	TotalHits int          `json:"total_count"`
}

type searchItem struct {
	ItemBasic itemBasic `json:"item_basic"`
}

// itemBasic carries the listing fields we use; prices arrive multiplied by
// 100000 and the first slot of rating_count is the total review count.
type itemBasic struct {
	ItemID         int64      `json:"itemid"`
	ShopID         int64      `json:"shopid"`
	Name           string     `json:"name"`
	Brand          string     `json:"brand"`
	CatID          int64      `json:"catid"`
	Price          int64      `json:"price"`
	ItemRating     itemRating `json:"item_rating"`
	HistoricalSold int        `json:"historical_sold"`
	ShopName       string     `json:"shop_name"`
	Image          string     `json:"image"`
}

type itemRating struct {
	RatingStar  float64 `json:"rating_star"`
	RatingCount []int   `json:"rating_count"`
}

// mapToCandidates converts raw search items into typed candidate listings.
// All field normalization happens here, at the system boundary, so the
// matcher never touches the wire shape.
func mapToCandidates(items []searchItem) []domain.CandidateListing {
	listings := make([]domain.CandidateListing, 0, len(items))
	for _, item := range items {
		b := item.ItemBasic
		if b.ItemID == 0 || b.Name == "" {
			continue
		}

		listings = append(listings, domain.CandidateListing{
			ItemID:      b.ItemID,
			Title:       b.Name,
			Brand:       b.Brand,
			Category:    strconv.FormatInt(b.CatID, 10),
			Price:       float64(b.Price) / priceDivisor,
			Rating:      b.ItemRating.RatingStar,
			ReviewCount: totalReviews(b.ItemRating.RatingCount),
			ProductURL:  productURL(b.ShopID, b.ItemID),
			ImageURL:    imageURL(b.Image),
			ShopName:    b.ShopName,
		})
	}
	return listings
}

// totalReviews reads the aggregate slot of the rating_count array.
func totalReviews(counts []int) int {
	if len(counts) == 0 {
		return 0
	}
	return counts[0]
}

// productURL builds the canonical listing URL from shop and item ids.
func productURL(shopID, itemID int64) string {
	return fmt.Sprintf("https://shopee.co.th/product/%d/%d", shopID, itemID)
}

// imageURL expands an image hash into the CDN URL.
func imageURL(hash string) string {
	if hash == "" {
		return ""
	}
	return fmt.Sprintf("https://cf.shopee.co.th/file/%s", hash)
}
