// Package learner evaluates a completed analysis for evidence strong
// enough to safely grow the knowledge base, and gates proposed additions
// behind a confidence threshold.
package learner

import (
	"fmt"
	"strings"

	"github.com/offersentry/offersentry/internal/domain"
	"github.com/offersentry/offersentry/internal/knowledge"
	"github.com/offersentry/offersentry/internal/logging"
)

// Confidence score contributions, capped at 1.0.
const (
	strongPresenceConfidence   = 0.3
	moderatePresenceConfidence = 0.15
	scamReportConfidence       = 0.4
	perSourceConfidence        = 0.05
	sourcesConfidenceCap       = 0.2
	highTrustConfidence        = 0.2
	highRiskConfidence         = 0.3

	// ConfidenceThreshold is the minimum confidence required before a
	// proposal may be applied.
	ConfidenceThreshold = 0.7
)

// likelyScamRedFlagCount is the red-flag count that, together with fees,
// classifies a case as likely scam.
const likelyScamRedFlagCount = 2

// Learner implements the load / propose / apply state machine over the
// knowledge store.
type Learner struct {
	store  *knowledge.Store
	logger logging.Logger
}

// New creates a Learner.
func New(store *knowledge.Store, logger logging.Logger) *Learner {
	return &Learner{store: store, logger: logger}
}

// Load returns the current knowledge-base snapshot. Read failures
// degrade to schema defaults inside the store; Load never fails.
func (l *Learner) Load() domain.KnowledgeBase {
	return l.store.Snapshot()
}

// Propose inspects a completed analysis and returns candidate additions
// with a confidence score. ShouldApply requires both the confidence
// threshold and at least one non-empty candidate list.
func (l *Learner) Propose(extraction *domain.ExtractionResult, reputation *domain.ReputationResult) domain.LearningProposal {
	proposal := domain.LearningProposal{
		NewScamKeywords:  []string{},
		NewScamDomains:   []string{},
		NewScamBehaviors: []string{},
		NewSafeKeywords:  []string{},
		NewSafeDomains:   []string{},
	}

	switch {
	case isLikelyScam(extraction, reputation):
		l.collectScamCandidates(&proposal, extraction, reputation)
	case isLikelySafe(reputation):
		collectSafeCandidates(&proposal, reputation)
	}

	proposal.Confidence = confidence(reputation)
	proposal.ShouldApply = proposal.Confidence >= ConfidenceThreshold && proposal.HasCandidates()

	l.logger.Info("learning proposal built",
		logging.Int("scam_keywords", len(proposal.NewScamKeywords)),
		logging.Float64("confidence", proposal.Confidence),
		logging.Bool("should_apply", proposal.ShouldApply))
	return proposal
}

// Apply merges an approved proposal into the knowledge base. Proposals
// below the gate are skipped, not errors. Duplicate suppression in the
// store makes Apply idempotent: applying the same proposal twice yields
// the same final documents.
func (l *Learner) Apply(proposal *domain.LearningProposal) (domain.ApplyResult, error) {
	if !proposal.ShouldApply {
		return domain.ApplyResult{
			Status:  domain.ApplyStatusSkipped,
			Message: "update does not meet confidence threshold",
		}, nil
	}

	result := domain.ApplyResult{Status: domain.ApplyStatusApplied}
	merges := []struct {
		document string
		category string
		values   []string
		count    *int
	}{
		{domain.DocumentScam, domain.CategorySuspiciousKeywords, proposal.NewScamKeywords, &result.ScamKeywords},
		{domain.DocumentScam, domain.CategoryFakeDomains, proposal.NewScamDomains, &result.ScamDomains},
		{domain.DocumentScam, domain.CategoryBehaviors, proposal.NewScamBehaviors, &result.ScamBehaviors},
		{domain.DocumentPositive, domain.CategoryLegitimateKeywords, proposal.NewSafeKeywords, &result.SafeKeywords},
		{domain.DocumentPositive, domain.CategoryVerifiedDomains, proposal.NewSafeDomains, &result.SafeDomains},
	}

	for _, m := range merges {
		if len(m.values) == 0 {
			continue
		}
		added, err := l.store.Append(m.document, m.category, m.values)
		if err != nil {
			return domain.ApplyResult{Status: domain.ApplyStatusSkipped, Message: err.Error()},
				fmt.Errorf("apply learning update: %w", err)
		}
		*m.count = added
	}

	l.logger.Info("knowledge base grown",
		logging.Int("scam_keywords", result.ScamKeywords),
		logging.Int("scam_domains", result.ScamDomains),
		logging.Int("safe_domains", result.SafeDomains))
	return result, nil
}

// isLikelyScam requires fees plus multiple red flags, a scam report, or
// a high-risk trust tier.
func isLikelyScam(extraction *domain.ExtractionResult, reputation *domain.ReputationResult) bool {
	hasFees := len(extraction.Fees) > 0
	manyRedFlags := len(extraction.RedFlags) > likelyScamRedFlagCount
	return (hasFees && manyRedFlags) ||
		reputation.ScamReports.Found ||
		reputation.TrustAssessment == domain.TrustHighRisk
}

// isLikelySafe requires at least moderate trust and a strong presence.
func isLikelySafe(reputation *domain.ReputationResult) bool {
	trusted := reputation.TrustAssessment == domain.TrustHigh ||
		reputation.TrustAssessment == domain.TrustModerate
	return trusted && reputation.CompanyVerification.OnlinePresence == domain.PresenceStrong
}

// collectScamCandidates gathers red flags not already known, resolver
// suspicious domains, and detected behaviors.
func (l *Learner) collectScamCandidates(
	proposal *domain.LearningProposal,
	extraction *domain.ExtractionResult,
	reputation *domain.ReputationResult,
) {
	scamDoc := l.store.Snapshot().Scam
	known := make(map[string]bool, len(scamDoc.SuspiciousKeywords))
	for _, kw := range scamDoc.SuspiciousKeywords {
		known[kw] = true
	}

	for _, flag := range extraction.RedFlags {
		if !known[flag] {
			proposal.NewScamKeywords = append(proposal.NewScamKeywords, flag)
		}
	}
	proposal.NewScamDomains = append(proposal.NewScamDomains, reputation.EmailVerification.SuspiciousDomains...)
	proposal.NewScamBehaviors = append(proposal.NewScamBehaviors, extraction.Behaviors...)
}

// collectSafeCandidates gathers professional-email domains and
// resolver-trusted domains.
func collectSafeCandidates(proposal *domain.LearningProposal, reputation *domain.ReputationResult) {
	for _, email := range reputation.EmailVerification.ProfessionalEmails {
		if at := strings.LastIndex(email, "@"); at >= 0 {
			proposal.NewSafeDomains = append(proposal.NewSafeDomains, email[at+1:])
		}
	}
	proposal.NewSafeDomains = append(proposal.NewSafeDomains, reputation.DomainAnalysis.Trusted...)
}

// confidence scores the research evidence backing a proposal, clamped
// to [0, 1].
func confidence(reputation *domain.ReputationResult) float64 {
	score := 0.0

	switch reputation.CompanyVerification.OnlinePresence {
	case domain.PresenceStrong:
		score += strongPresenceConfidence
	case domain.PresenceModerate:
		score += moderatePresenceConfidence
	}

	if reputation.ScamReports.Found {
		score += scamReportConfidence
	}

	sourceBonus := perSourceConfidence * float64(len(reputation.CompanyVerification.Sources))
	if sourceBonus > sourcesConfidenceCap {
		sourceBonus = sourcesConfidenceCap
	}
	score += sourceBonus

	switch reputation.TrustAssessment {
	case domain.TrustHigh:
		score += highTrustConfidence
	case domain.TrustHighRisk:
		score += highRiskConfidence
	}

	if score > 1.0 {
		score = 1.0
	}
	if score < 0 {
		score = 0
	}
	return score
}
