package api

import "github.com/offersentry/offersentry/internal/domain"

// AnalyzeRequest is the body of POST /api/v1/analyze.
type AnalyzeRequest struct {
	Text string `json:"text" binding:"required"`
}

// AnalyzeResponse wraps a completed analysis run.
type AnalyzeResponse struct {
	Report *domain.AnalysisReport `json:"report,omitempty"`
	Error  string                 `json:"error,omitempty"`
}

// AppendPatternsRequest is the body of POST /api/v1/knowledge/:doc/append.
type AppendPatternsRequest struct {
	Category string   `json:"category" binding:"required"`
	Values   []string `json:"values" binding:"required,min=1"`
}

// AppendPatternsResponse reports how the append changed the document.
type AppendPatternsResponse struct {
	Document string `json:"document"`
	Category string `json:"category"`
	Added    int    `json:"added"`
}

// ApplyProposalRequest is the body of POST /api/v1/learning/apply.
type ApplyProposalRequest struct {
	Proposal *domain.LearningProposal `json:"proposal" binding:"required"`
}

// HistoryResponse lists recent analysis audit rows, newest first.
type HistoryResponse struct {
	Records []domain.AnalysisRecord `json:"records"`
	Total   int                     `json:"total"`
}

// ErrorResponse is the uniform error body.
type ErrorResponse struct {
	Error string `json:"error"`
}
