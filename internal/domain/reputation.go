package domain

// Online presence levels for a company.
const (
	PresenceNone     = "none"
	PresenceWeak     = "weak"
	PresenceModerate = "moderate"
	PresenceStrong   = "strong"
	PresenceUnknown  = "unknown"
)

// Salary realism assessments.
const (
	SalaryUnknown          = "unknown"
	SalaryRealistic        = "realistic"
	SalarySuspiciouslyLow  = "suspiciously_low"
	SalarySuspiciouslyHigh = "suspiciously_high"
	SalaryVerifyRequired   = "verify_required"
)

// Trust assessment tiers.
const (
	TrustHigh     = "high_trust"
	TrustModerate = "moderate_trust"
	TrustLow      = "low_trust"
	TrustHighRisk = "high_risk"
)

// CompanyVerification describes what could be established about the
// company's existence and online footprint.
type CompanyVerification struct {
	Found          bool     `json:"found"`
	OnlinePresence string   `json:"online_presence"`
	Sources        []string `json:"sources"`
	Description    string   `json:"description"`
}

// EmailVerification classifies the contact emails found in the posting.
type EmailVerification struct {
	DomainMatches      []string `json:"domain_matches"`
	SuspiciousDomains  []string `json:"suspicious_domains"`
	PersonalEmails     []string `json:"personal_emails"`
	ProfessionalEmails []string `json:"professional_emails"`
}

// SalaryVerification holds the resolver's realism judgment for a
// mentioned salary. Thresholds assume INR monthly amounts.
type SalaryVerification struct {
	Realistic         string  `json:"realistic"`
	MonthlyEquivalent float64 `json:"monthly_equivalent,omitempty"`
	Assessment        string  `json:"assessment"`
	MarketRange       string  `json:"market_range,omitempty"`
}

// ScamReports summarizes scam/fraud mentions found for the company.
type ScamReports struct {
	Found   bool     `json:"found"`
	Sources []string `json:"sources"`
	Summary string   `json:"summary"`
}

// DomainAnalysis buckets the extracted domains by legitimacy.
type DomainAnalysis struct {
	Trusted    []string `json:"trusted"`
	Suspicious []string `json:"suspicious"`
	Unknown    []string `json:"unknown"`
}

// ReputationResult is the full trust judgment for one posting.
type ReputationResult struct {
	CompanyVerification CompanyVerification `json:"company_verification"`
	EmailVerification   EmailVerification   `json:"email_verification"`
	SalaryVerification  SalaryVerification  `json:"salary_verification"`
	ScamReports         ScamReports         `json:"scam_reports"`
	DomainAnalysis      DomainAnalysis      `json:"domain_analysis"`
	TrustAssessment     string              `json:"trust_assessment"`
	Summary             string              `json:"summary"`
}
