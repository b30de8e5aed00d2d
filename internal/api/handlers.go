package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/offersentry/offersentry/internal/database"
	"github.com/offersentry/offersentry/internal/domain"
	"github.com/offersentry/offersentry/internal/knowledge"
	"github.com/offersentry/offersentry/internal/learner"
	"github.com/offersentry/offersentry/internal/logging"
	"github.com/offersentry/offersentry/internal/pipeline"
)

// Handler handles HTTP requests for the analysis API.
type Handler struct {
	pipeline     *pipeline.Pipeline
	store        *knowledge.Store
	learner      *learner.Learner
	history      *database.HistoryRepository
	historyLimit int
	logger       logging.Logger
}

// NewHandler creates a new API handler. history may be nil when audit
// persistence is disabled.
func NewHandler(
	p *pipeline.Pipeline,
	store *knowledge.Store,
	lrn *learner.Learner,
	history *database.HistoryRepository,
	historyLimit int,
	logger logging.Logger,
) *Handler {
	return &Handler{
		pipeline:     p,
		store:        store,
		learner:      lrn,
		history:      history,
		historyLimit: historyLimit,
		logger:       logger,
	}
}

// Analyze handles POST /api/v1/analyze.
func (h *Handler) Analyze(c *gin.Context) {
	var req AnalyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid analyze request", logging.Error(err))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	report := h.pipeline.Run(c.Request.Context(), req.Text)
	c.JSON(http.StatusOK, AnalyzeResponse{Report: report})
}

// GetKnowledge handles GET /api/v1/knowledge.
func (h *Handler) GetKnowledge(c *gin.Context) {
	c.JSON(http.StatusOK, h.store.Snapshot())
}

// AppendPatterns handles POST /api/v1/knowledge/:doc/append.
func (h *Handler) AppendPatterns(c *gin.Context) {
	doc := c.Param("doc")

	var req AppendPatternsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid append request", logging.Error(err))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	added, err := h.store.Append(doc, req.Category, req.Values)
	if err != nil {
		h.logger.Warn("knowledge append rejected",
			logging.String("document", doc),
			logging.String("category", req.Category),
			logging.Error(err))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, AppendPatternsResponse{
		Document: doc,
		Category: req.Category,
		Added:    added,
	})
}

// ApplyProposal handles POST /api/v1/learning/apply.
func (h *Handler) ApplyProposal(c *gin.Context) {
	var req ApplyProposalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid apply request", logging.Error(err))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	result, err := h.learner.Apply(req.Proposal)
	if err != nil {
		h.logger.Error("failed to apply learning proposal", logging.Error(err))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetHistory handles GET /api/v1/history.
func (h *Handler) GetHistory(c *gin.Context) {
	if h.history == nil {
		c.JSON(http.StatusOK, HistoryResponse{Records: []domain.AnalysisRecord{}})
		return
	}

	records, err := h.history.ListRecent(c.Request.Context(), h.historyLimit)
	if err != nil {
		h.logger.Error("failed to list analysis history", logging.Error(err))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, HistoryResponse{Records: records, Total: len(records)})
}

// HealthCheck handles GET /health.
func (h *Handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "healthy"})
}

// ReadyCheck handles GET /ready. The service is ready once the
// knowledge base documents are loadable.
func (h *Handler) ReadyCheck(c *gin.Context) {
	for _, doc := range []string{domain.DocumentScam, domain.DocumentPositive} {
		if _, err := h.store.Document(doc); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "not ready", "error": err.Error()})
			return
		}
	}
	c.JSON(http.StatusOK, gin.H{"status": "ready"})
}
