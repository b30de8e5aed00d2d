// Package pipeline wires the analyzer stages into one synchronous run
// that produces every intermediate and final artifact.
package pipeline

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/offersentry/offersentry/internal/database"
	"github.com/offersentry/offersentry/internal/decision"
	"github.com/offersentry/offersentry/internal/domain"
	"github.com/offersentry/offersentry/internal/extractor"
	"github.com/offersentry/offersentry/internal/learner"
	"github.com/offersentry/offersentry/internal/logging"
	"github.com/offersentry/offersentry/internal/pattern"
	"github.com/offersentry/offersentry/internal/reputation"
	"github.com/offersentry/offersentry/internal/salarycheck"
)

// Cleaner normalizes raw submitted text before analysis.
type Cleaner interface {
	Clean(raw string) string
}

// Pipeline runs the fixed analyzer sequence. Extraction must complete
// before reputation resolution; pattern matching and the salary check
// depend only on the cleaned text and run concurrently with that chain.
// The decision join waits for all four, and the learner runs last over
// immutable snapshots from the same run.
type Pipeline struct {
	cleaner    Cleaner
	extractor  *extractor.Extractor
	resolver   *reputation.Resolver
	matcher    *pattern.Matcher
	checker    *salarycheck.Checker
	aggregator *decision.Aggregator
	learner    *learner.Learner
	history    *database.HistoryRepository
	logger     logging.Logger
}

// New creates a Pipeline. history may be nil to disable audit
// persistence (used by tests).
func New(
	cleaner Cleaner,
	ext *extractor.Extractor,
	resolver *reputation.Resolver,
	matcher *pattern.Matcher,
	checker *salarycheck.Checker,
	aggregator *decision.Aggregator,
	lrn *learner.Learner,
	history *database.HistoryRepository,
	logger logging.Logger,
) *Pipeline {
	return &Pipeline{
		cleaner:    cleaner,
		extractor:  ext,
		resolver:   resolver,
		matcher:    matcher,
		checker:    checker,
		aggregator: aggregator,
		learner:    lrn,
		history:    history,
		logger:     logger,
	}
}

// Run executes one full analysis of the raw posting text. No stage may
// abort the run; each degrades to an empty result, and the aggregator
// always produces a decision.
func (p *Pipeline) Run(ctx context.Context, rawText string) *domain.AnalysisReport {
	start := time.Now()
	runID := uuid.NewString()
	log := p.logger.With(logging.String("run_id", runID))
	log.Info("analysis started", logging.Int("raw_length", len(rawText)))

	cleanText := p.cleaner.Clean(rawText)

	var (
		wg            sync.WaitGroup
		extractionRes domain.ExtractionResult
		reputationRes domain.ReputationResult
		patternRes    domain.PatternMatchResult
		salaryRes     domain.SalaryAssessment
	)

	wg.Add(3)
	go func() {
		defer wg.Done()
		extractionRes = p.extractor.Extract(cleanText)
		reputationRes = p.resolver.Resolve(ctx, &extractionRes)
	}()
	go func() {
		defer wg.Done()
		patternRes = p.matcher.Match(cleanText)
	}()
	go func() {
		defer wg.Done()
		salaryRes = p.checker.Check(cleanText)
	}()
	wg.Wait()

	decisionRes := p.aggregator.Decide(&extractionRes, &reputationRes, &patternRes, &salaryRes)
	proposal := p.learner.Propose(&extractionRes, &reputationRes)

	report := &domain.AnalysisReport{
		RunID:            runID,
		Extraction:       extractionRes,
		Reputation:       reputationRes,
		Pattern:          patternRes,
		Salary:           salaryRes,
		Decision:         decisionRes,
		LearningProposal: proposal,
		ProcessingTimeMs: time.Since(start).Milliseconds(),
		AnalyzedAt:       time.Now(),
	}

	p.persist(ctx, report, cleanText, log)

	log.Info("analysis complete",
		logging.String("category", decisionRes.Category),
		logging.Int("risk_score", decisionRes.InternalRiskScore),
		logging.Int64("processing_time_ms", report.ProcessingTimeMs))
	return report
}

// persist writes the audit row. Failures are logged; they never fail
// the run.
func (p *Pipeline) persist(ctx context.Context, report *domain.AnalysisReport, cleanText string, log logging.Logger) {
	if p.history == nil {
		return
	}
	record := &domain.AnalysisRecord{
		RunID:       report.RunID,
		TextSnippet: cleanText,
		CompanyName: report.Decision.CompanyName,
		Verdict:     report.Decision.Category,
		RiskScore:   report.Decision.InternalRiskScore,
		TrustLevel:  report.Decision.TrustLevel,
		AnalyzedAt:  report.AnalyzedAt,
	}
	if err := p.history.Insert(ctx, record); err != nil {
		log.Warn("failed to persist analysis record", logging.Error(err))
	}
}
