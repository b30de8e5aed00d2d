package domain

import "time"

// AnalysisReport is the complete output of one pipeline run: every
// intermediate artifact plus the final decision, for audit and display.
type AnalysisReport struct {
	RunID            string             `json:"run_id"`
	Extraction       ExtractionResult   `json:"extraction"`
	Reputation       ReputationResult   `json:"reputation"`
	Pattern          PatternMatchResult `json:"pattern"`
	Salary           SalaryAssessment   `json:"salary"`
	Decision         DecisionResult     `json:"decision"`
	LearningProposal LearningProposal   `json:"learning_proposal"`
	ProcessingTimeMs int64              `json:"processing_time_ms"`
	AnalyzedAt       time.Time          `json:"analyzed_at"`
}

// AnalysisRecord is the persisted audit row for a completed run.
type AnalysisRecord struct {
	ID          int64     `db:"id"           json:"id"`
	RunID       string    `db:"run_id"       json:"run_id"`
	TextSnippet string    `db:"text_snippet" json:"text_snippet"`
	CompanyName string    `db:"company_name" json:"company_name"`
	Verdict     string    `db:"verdict"      json:"verdict"`
	RiskScore   int       `db:"risk_score"   json:"risk_score"`
	TrustLevel  string    `db:"trust_level"  json:"trust_level"`
	AnalyzedAt  time.Time `db:"analyzed_at"  json:"analyzed_at"`
}
