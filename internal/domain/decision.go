package domain

// Risk levels reported by the salary plausibility checker.
const (
	RiskSafe   = "SAFE"
	RiskMedium = "MEDIUM"
	RiskHigh   = "HIGH"
)

// Verdict categories produced by the decision aggregator.
const (
	VerdictSafe    = "Looks Safe"
	VerdictVerify  = "Needs Verification"
	VerdictWarning = "Contains Warning Signs"
)

// PatternMatchResult maps knowledge-base categories to the keywords that
// matched in the posting, split by polarity.
type PatternMatchResult struct {
	ScamMatches     map[string][]string `json:"scam_matches"`
	PositiveMatches map[string][]string `json:"positive_matches"`
	Reasoning       string              `json:"reasoning"`
}

// InterviewFinding reports suspicious interview-process phrases.
type InterviewFinding struct {
	Matches []string `json:"matches"`
	Risk    string   `json:"risk"`
}

// SalaryAssessment is the salary checker's independent risk judgment.
// Risk is the combined salary+interview risk; the checker parses its own
// amount and may disagree with the extractor's salary figure.
type SalaryAssessment struct {
	Found     bool             `json:"found"`
	Value     int64            `json:"value,omitempty"`
	Risk      string           `json:"risk"`
	Reasons   []string         `json:"reasons"`
	Interview InterviewFinding `json:"interview"`
}

// DecisionResult is the aggregated verdict for one posting.
// InternalRiskScore drives the category and is not shown to end users.
type DecisionResult struct {
	Category           string   `json:"category"`
	InternalRiskScore  int      `json:"internal_risk_score"`
	Summary            string   `json:"summary"`
	Explanation        string   `json:"explanation"`
	RedFlags           []string `json:"red_flags"`
	PositiveIndicators []string `json:"positive_indicators"`
	CompanyName        string   `json:"company_name"`
	TrustLevel         string   `json:"trust_level"`
}
