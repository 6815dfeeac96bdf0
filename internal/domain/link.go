package domain

// AttributionParams carries the values encoded into an affiliate trackable
// link. Recognized tag keys are "referralSource", "customValue1" and
// "customValue2"; other keys are ignored by the encoder.
type AttributionParams struct {
	AffiliateID string            `json:"affiliateId"`
	SubIDBase   string            `json:"subIdBase"`
	Tags        map[string]string `json:"tags,omitempty"`
}

// ParsedLink is the result of decoding a trackable link back into its
// constituent parts. OriginalURL and AffiliateID are recovered exactly;
// the positional sub-id fields are best-effort and may be empty when the
// sub-id carried fewer segments than expected.
type ParsedLink struct {
	OriginalURL    string `json:"originalUrl"`
	AffiliateID    string `json:"affiliateId"`
	SubIDBase      string `json:"subIdBase,omitempty"`
	ClickToken     string `json:"clickToken,omitempty"`
	ReferralSource string `json:"referralSource,omitempty"`
	CustomValue1   string `json:"customValue1,omitempty"`
	CustomValue2   string `json:"customValue2,omitempty"`
}
