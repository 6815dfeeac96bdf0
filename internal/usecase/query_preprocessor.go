package usecase

import (
	"regexp"
	"strings"

	"github.com/label5hub/backend/internal/domain"
)

// Compiled once; marketplace titles are processed on every admin search.
var (
	// Matches capacity/size patterns like "9000 BTU", "13.9 คิว", "7.5 kg",
	// "55 นิ้ว", "43 inch" that add noise to search keywords.
	capacityPattern = regexp.MustCompile(`(?i)\b\d+[.,]?\d*\s*(btu|kg|กก|คิว|q|cu\.?ft|ลิตร|liters?|l|นิ้ว|inch(es)?|in|w|watts?)\b`)

	// Matches standalone trailing/leading numbers left over after stripping.
	orphanNumberPattern = regexp.MustCompile(`[,\-]\s*\d+[.,]?\d*\s*$|^\d+[.,]?\d*\s*[,\-]`)

	multiSpacePattern = regexp.MustCompile(`\s+`)
)

// titleNoiseWords are marketing phrases common in marketplace listing titles,
// Thai and English, that never help a match.
var titleNoiseWords = []string{
	// Shipping/promo
	"ส่งฟรี", "พร้อมส่ง", "ลดราคา", "ราคาถูก", "โปรโมชั่น", "flash sale",
	"free shipping", "ready to ship", "hot deal", "best seller",
	// Authenticity/warranty boilerplate
	"ของแท้", "ประกันศูนย์", "รับประกัน", "official", "genuine", "authentic",
	"warranty", "ศูนย์ไทย",
	// Generic filler
	"ใหม่ล่าสุด", "รุ่นใหม่", "new model", "new arrival",
}

// QueryPreprocessor builds marketplace search keywords from certified
// product records and cleans listing titles for display.
type QueryPreprocessor struct{}

// NewQueryPreprocessor creates a preprocessor.
func NewQueryPreprocessor() *QueryPreprocessor {
	return &QueryPreprocessor{}
}

// BuildSearchKeyword produces the marketplace search query for a certified
// product. Brand plus model is the strongest signal; the brand is not
// duplicated when the model string already contains it.
func (p *QueryPreprocessor) BuildSearchKeyword(certified domain.CertifiedProduct) string {
	brand := strings.TrimSpace(certified.Brand)
	model := strings.TrimSpace(certified.Model)

	if brand != "" && model != "" {
		if strings.Contains(strings.ToLower(model), strings.ToLower(brand)) {
			return model
		}
		return brand + " " + model
	}
	if model != "" {
		return model
	}
	return brand
}

// CleanTitle strips marketing noise and capacity patterns from a marketplace
// listing title. Used for display and keyword extraction, not for matching;
// the matcher compares against the raw title.
func (p *QueryPreprocessor) CleanTitle(title string) string {
	cleaned := title

	lower := strings.ToLower(cleaned)
	for _, noise := range titleNoiseWords {
		for {
			idx := strings.Index(lower, strings.ToLower(noise))
			if idx < 0 {
				break
			}
			cleaned = cleaned[:idx] + cleaned[idx+len(noise):]
			lower = strings.ToLower(cleaned)
		}
	}

	cleaned = capacityPattern.ReplaceAllString(cleaned, " ")
	cleaned = orphanNumberPattern.ReplaceAllString(cleaned, " ")
	cleaned = multiSpacePattern.ReplaceAllString(cleaned, " ")
	return strings.TrimSpace(cleaned)
}
