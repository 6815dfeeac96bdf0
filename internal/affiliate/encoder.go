// Package affiliate builds and parses trackable outbound links for the
// marketplace affiliate program.
package affiliate

import (
	"fmt"
	"math/rand"
	"net/url"
	"strings"
	"time"

	"github.com/label5hub/backend/internal/domain"
)

// Fixed redirect endpoint. Validate and Parse check host and path equality
// against these, so the endpoint is not reconfigurable per call.
const (
	baseScheme = "https"
	baseHost   = "s.shopee.co.th"
	basePath   = "/an_redir"
)

// BaseEndpoint is the affiliate redirect endpoint every trackable link
// points at.
const BaseEndpoint = baseScheme + "://" + baseHost + basePath

// subIDDelimiter joins the positional segments of a sub-id.
const subIDDelimiter = "-"

// clickTokenChars is the base36 alphabet for the random token suffix.
const clickTokenChars = "0123456789abcdefghijklmnopqrstuvwxyz"

const clickTokenSuffixLen = 9

// TagReferralSource, TagCustomValue1 and TagCustomValue2 are the attribution
// tag keys encoded into a sub-id, in this fixed positional order.
const (
	TagReferralSource = "referralSource"
	TagCustomValue1   = "customValue1"
	TagCustomValue2   = "customValue2"
)

// subIDTagOrder fixes the join order; Parse assumes the same order.
var subIDTagOrder = []string{TagReferralSource, TagCustomValue1, TagCustomValue2}

// Encode builds a trackable link for destinationURL carrying the affiliate id
// and a delimiter-joined sub-id. The sub-id starts with subIDBase, then a
// fresh click token, then the values of the recognized tags in fixed order;
// absent tags are dropped rather than leaving blank slots. Malformed
// destination URLs are still encoded (percent-encoding is defined for
// arbitrary strings).
func Encode(destinationURL, affiliateID, subIDBase string, tags map[string]string) string {
	segments := make([]string, 0, 2+len(subIDTagOrder))
	if subIDBase != "" {
		segments = append(segments, subIDBase)
	}
	segments = append(segments, newClickToken())
	for _, key := range subIDTagOrder {
		if v := tags[key]; v != "" {
			segments = append(segments, v)
		}
	}
	subID := strings.Join(segments, subIDDelimiter)

	// Query parameter order is part of the link format.
	return fmt.Sprintf("%s?origin_link=%s&affiliate_id=%s&sub_id=%s",
		BaseEndpoint,
		url.QueryEscape(destinationURL),
		url.QueryEscape(affiliateID),
		url.QueryEscape(subID),
	)
}

// Validate reports whether raw is a trackable link: it must parse as a URL,
// point at the fixed redirect endpoint, and carry the origin_link,
// affiliate_id and sub_id parameters. Existence check only; values are not
// inspected. Never panics on garbage input.
func Validate(raw string) bool {
	u, err := url.Parse(raw)
	if err != nil {
		return false
	}
	if u.Host != baseHost || u.Path != basePath {
		return false
	}
	q := u.Query()
	return q.Has("origin_link") && q.Has("affiliate_id") && q.Has("sub_id")
}

// Parse decodes a trackable link back into its attribution parts. It returns
// (nil, false) when Validate fails. OriginalURL and AffiliateID are recovered
// exactly; the sub-id split is positional and therefore best-effort when the
// sub-id carries fewer segments than Encode produces.
func Parse(raw string) (*domain.ParsedLink, bool) {
	if !Validate(raw) {
		return nil, false
	}

	u, err := url.Parse(raw)
	if err != nil {
		return nil, false
	}
	q := u.Query()

	parsed := &domain.ParsedLink{
		OriginalURL: q.Get("origin_link"),
		AffiliateID: q.Get("affiliate_id"),
	}

	parts := strings.Split(q.Get("sub_id"), subIDDelimiter)
	fields := []*string{
		&parsed.SubIDBase,
		&parsed.ClickToken,
		&parsed.ReferralSource,
		&parsed.CustomValue1,
		&parsed.CustomValue2,
	}
	for i, part := range parts {
		if i >= len(fields) {
			break
		}
		*fields[i] = part
	}

	return parsed, true
}

// newClickToken generates an opaque token for uniqueness and traceability:
// nc_<epochMillis>_<9-char-base36>. Best-effort uniqueness; collisions are
// not a correctness concern.
func newClickToken() string {
	suffix := make([]byte, clickTokenSuffixLen)
	for i := range suffix {
		suffix[i] = clickTokenChars[rand.Intn(len(clickTokenChars))]
	}
	return fmt.Sprintf("nc_%d_%s", time.Now().UnixMilli(), suffix)
}
