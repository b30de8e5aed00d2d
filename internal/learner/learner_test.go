package learner

import (
	"math"
	"slices"
	"testing"

	"github.com/offersentry/offersentry/internal/domain"
	"github.com/offersentry/offersentry/internal/knowledge"
	"github.com/offersentry/offersentry/internal/logging"
)

func newTestLearner(t *testing.T) *Learner {
	t.Helper()
	store, err := knowledge.NewStore(t.TempDir(), logging.NewNop())
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}
	return New(store, logging.NewNop())
}

func TestPropose_LikelyScamCollectsCandidates(t *testing.T) {
	learner := newTestLearner(t)

	extraction := &domain.ExtractionResult{
		RedFlags:  []string{"registration fee", "advance courier charge"},
		Fees:      []domain.Fee{{Amount: 500, Type: domain.FeeTypeRegistration}},
		Behaviors: []string{"pressure to act fast"},
	}
	reputation := &domain.ReputationResult{
		TrustAssessment: domain.TrustHighRisk,
		ScamReports:     domain.ScamReports{Found: true, Sources: []string{"https://a", "https://b"}},
		EmailVerification: domain.EmailVerification{
			SuspiciousDomains: []string{"quick-jobs.info"},
		},
	}

	proposal := learner.Propose(extraction, reputation)

	// "registration fee" is already a known suspicious keyword; only the
	// novel flag is proposed.
	if slices.Contains(proposal.NewScamKeywords, "registration fee") {
		t.Errorf("known keyword proposed again: %v", proposal.NewScamKeywords)
	}
	if !slices.Contains(proposal.NewScamKeywords, "advance courier charge") {
		t.Errorf("missing novel keyword: %v", proposal.NewScamKeywords)
	}
	if !slices.Contains(proposal.NewScamDomains, "quick-jobs.info") {
		t.Errorf("missing scam domain: %v", proposal.NewScamDomains)
	}
	if !slices.Contains(proposal.NewScamBehaviors, "pressure to act fast") {
		t.Errorf("missing behavior: %v", proposal.NewScamBehaviors)
	}

	// scam report (0.4) + high risk (0.3) = 0.7, at the gate.
	if proposal.Confidence < ConfidenceThreshold {
		t.Errorf("confidence: got %f", proposal.Confidence)
	}
	if !proposal.ShouldApply {
		t.Error("expected ShouldApply")
	}
}

func TestPropose_LikelySafeCollectsDomains(t *testing.T) {
	learner := newTestLearner(t)

	reputation := &domain.ReputationResult{
		TrustAssessment: domain.TrustHigh,
		CompanyVerification: domain.CompanyVerification{
			OnlinePresence: domain.PresenceStrong,
			Sources:        []string{"https://a", "https://b", "https://c", "https://d"},
		},
		EmailVerification: domain.EmailVerification{
			ProfessionalEmails: []string{"hr@technova.com"},
		},
		DomainAnalysis: domain.DomainAnalysis{Trusted: []string{"google.com"}},
	}

	proposal := learner.Propose(&domain.ExtractionResult{}, reputation)

	for _, want := range []string{"technova.com", "google.com"} {
		if !slices.Contains(proposal.NewSafeDomains, want) {
			t.Errorf("missing safe domain %q in %v", want, proposal.NewSafeDomains)
		}
	}

	// strong presence (0.3) + 4 sources (0.2) + high trust (0.2) = 0.7
	if math.Abs(proposal.Confidence-0.7) > 1e-9 {
		t.Errorf("confidence: got %f, want 0.7", proposal.Confidence)
	}
	if !proposal.ShouldApply {
		t.Error("expected ShouldApply")
	}
}

func TestPropose_BelowThresholdNotApplied(t *testing.T) {
	learner := newTestLearner(t)

	// moderate presence (0.15) + scam report (0.4) + 2 sources (0.1)
	// gives 0.65, just under the 0.7 gate: candidates are proposed but
	// not auto-applied.
	reputation := &domain.ReputationResult{
		ScamReports: domain.ScamReports{Found: true},
		CompanyVerification: domain.CompanyVerification{
			OnlinePresence: domain.PresenceModerate,
			Sources:        []string{"https://a", "https://b"},
		},
		EmailVerification: domain.EmailVerification{
			SuspiciousDomains: []string{"earn-cash.biz"},
		},
	}

	proposal := learner.Propose(&domain.ExtractionResult{}, reputation)

	if !proposal.HasCandidates() {
		t.Fatal("expected candidates")
	}
	if math.Abs(proposal.Confidence-0.65) > 1e-9 {
		t.Errorf("confidence: got %f, want 0.65", proposal.Confidence)
	}
	if proposal.ShouldApply {
		t.Errorf("confidence %f must not pass the gate", proposal.Confidence)
	}
}

func TestPropose_NoCandidatesNeverApplies(t *testing.T) {
	learner := newTestLearner(t)

	// Confidence over the gate, but nothing to add.
	reputation := &domain.ReputationResult{
		ScamReports:     domain.ScamReports{Found: true},
		TrustAssessment: domain.TrustHighRisk,
	}

	proposal := learner.Propose(&domain.ExtractionResult{}, reputation)

	if proposal.ShouldApply {
		t.Error("expected ShouldApply false with empty candidate lists")
	}
}

func TestConfidence_Clamped(t *testing.T) {
	reputation := &domain.ReputationResult{
		CompanyVerification: domain.CompanyVerification{
			OnlinePresence: domain.PresenceStrong,
			Sources:        []string{"a", "b", "c", "d", "e", "f", "g"},
		},
		ScamReports:     domain.ScamReports{Found: true},
		TrustAssessment: domain.TrustHighRisk,
	}

	// 0.3 + 0.2 (source cap) + 0.4 + 0.3 = 1.2, clamped to 1.0.
	if got := confidence(reputation); got != 1.0 {
		t.Errorf("confidence: got %f, want 1.0", got)
	}
}

func TestApply_SkipsBelowGate(t *testing.T) {
	learner := newTestLearner(t)

	result, err := learner.Apply(&domain.LearningProposal{ShouldApply: false})
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if result.Status != domain.ApplyStatusSkipped {
		t.Errorf("status: got %s, want %s", result.Status, domain.ApplyStatusSkipped)
	}
}

func TestApply_Idempotent(t *testing.T) {
	learner := newTestLearner(t)

	proposal := &domain.LearningProposal{
		NewScamKeywords: []string{"advance courier charge"},
		NewSafeDomains:  []string{"technova.com"},
		ShouldApply:     true,
	}

	first, err := learner.Apply(proposal)
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if first.Status != domain.ApplyStatusApplied {
		t.Fatalf("status: got %s", first.Status)
	}
	if first.ScamKeywords != 1 || first.SafeDomains != 1 {
		t.Errorf("counts: got %+v", first)
	}

	second, err := learner.Apply(proposal)
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if second.ScamKeywords != 0 || second.SafeDomains != 0 {
		t.Errorf("second apply must add nothing: %+v", second)
	}

	kb := learner.Load()
	if !slices.Contains(kb.Scam.SuspiciousKeywords, "advance courier charge") {
		t.Errorf("keyword not persisted: %v", kb.Scam.SuspiciousKeywords)
	}
	if !slices.Contains(kb.Positive.VerifiedDomains, "technova.com") {
		t.Errorf("domain not persisted: %v", kb.Positive.VerifiedDomains)
	}
}
