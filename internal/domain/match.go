package domain

// MatchResult is the output of scoring one candidate against a certified
// product. Score is clamped to [0,1]; Reasons lists the matched criteria in
// evaluation order.
type MatchResult struct {
	Score   float64  `json:"score"`
	Reasons []string `json:"reasons,omitempty"`
}

// ScoredCandidate pairs a marketplace candidate with its match result for
// ranking in the admin matching workflow.
type ScoredCandidate struct {
	Candidate CandidateListing `json:"candidate"`
	Match     MatchResult      `json:"match"`
}
