package domain

// Apply statuses for a learning proposal.
const (
	ApplyStatusApplied = "applied"
	ApplyStatusSkipped = "skipped"
)

// LearningProposal is a candidate set of knowledge-base additions with an
// attached confidence score. It is transient; callers decide whether to
// pass it to the learner's apply step.
type LearningProposal struct {
	NewScamKeywords  []string `json:"new_scam_keywords"`
	NewScamDomains   []string `json:"new_scam_domains"`
	NewScamBehaviors []string `json:"new_scam_behaviors"`
	NewSafeKeywords  []string `json:"new_safe_keywords"`
	NewSafeDomains   []string `json:"new_safe_domains"`
	Confidence       float64  `json:"confidence"`
	ShouldApply      bool     `json:"should_apply"`
}

// HasCandidates reports whether any candidate list is non-empty.
func (p *LearningProposal) HasCandidates() bool {
	return len(p.NewScamKeywords) > 0 ||
		len(p.NewScamDomains) > 0 ||
		len(p.NewScamBehaviors) > 0 ||
		len(p.NewSafeKeywords) > 0 ||
		len(p.NewSafeDomains) > 0
}

// ApplyResult reports the outcome of applying a learning proposal.
type ApplyResult struct {
	Status        string `json:"status"`
	Message       string `json:"message,omitempty"`
	ScamKeywords  int    `json:"scam_keywords"`
	ScamDomains   int    `json:"scam_domains"`
	ScamBehaviors int    `json:"scam_behaviors"`
	SafeKeywords  int    `json:"safe_keywords"`
	SafeDomains   int    `json:"safe_domains"`
}
