package decision

import (
	"strings"
	"testing"

	"github.com/offersentry/offersentry/internal/domain"
	"github.com/offersentry/offersentry/internal/logging"
)

func TestDecide_AllEmptyIsSafe(t *testing.T) {
	aggregator := New(logging.NewNop())

	result := aggregator.Decide(
		&domain.ExtractionResult{},
		&domain.ReputationResult{},
		&domain.PatternMatchResult{},
		&domain.SalaryAssessment{},
	)

	if result.InternalRiskScore != 0 {
		t.Errorf("score: got %d, want 0", result.InternalRiskScore)
	}
	if result.Category != domain.VerdictSafe {
		t.Errorf("category: got %s, want %s", result.Category, domain.VerdictSafe)
	}
	if result.CompanyName != domain.CompanyUnknown {
		t.Errorf("company: got %s, want %s", result.CompanyName, domain.CompanyUnknown)
	}
	if !strings.HasSuffix(result.Explanation, recommendationFor(domain.VerdictSafe)) {
		t.Error("explanation must end with the recommendation")
	}
}

func TestDecide_ScamSignalsProduceWarning(t *testing.T) {
	aggregator := New(logging.NewNop())

	extraction := &domain.ExtractionResult{
		CompanyName: "QuickCash Jobs",
		RedFlags:    []string{"registration fee", "urgent hiring"},
		Fees:        []domain.Fee{{Amount: 500, Type: domain.FeeTypeRegistration}},
		Behaviors:   []string{"pressure to act fast"},
	}
	reputation := &domain.ReputationResult{
		TrustAssessment: domain.TrustHighRisk,
		ScamReports:     domain.ScamReports{Found: true},
	}
	pattern := &domain.PatternMatchResult{
		ScamMatches: map[string][]string{domain.CategorySuspiciousKeywords: {"registration fee"}},
	}
	salary := &domain.SalaryAssessment{Risk: domain.RiskHigh}

	result := aggregator.Decide(extraction, reputation, pattern, salary)

	// 2*2 + 5 + 1 + 10 + 8 + 5 + 4 = 37
	if result.InternalRiskScore != 37 {
		t.Errorf("score: got %d, want 37", result.InternalRiskScore)
	}
	if result.Category != domain.VerdictWarning {
		t.Errorf("category: got %s, want %s", result.Category, domain.VerdictWarning)
	}
	if !strings.Contains(result.Explanation, "Red flags detected") {
		t.Error("expected red flags section")
	}
	if !strings.Contains(result.Explanation, "Upfront payment required") {
		t.Error("expected fee section")
	}
}

func TestDecide_TrustedCompanyGetsCredit(t *testing.T) {
	aggregator := New(logging.NewNop())

	reputation := &domain.ReputationResult{
		TrustAssessment: domain.TrustHigh,
		CompanyVerification: domain.CompanyVerification{
			OnlinePresence: domain.PresenceStrong,
		},
		EmailVerification: domain.EmailVerification{
			ProfessionalEmails: []string{"hr@acme.com"},
		},
	}
	pattern := &domain.PatternMatchResult{
		PositiveMatches: map[string][]string{domain.CategoryLegitimateKeywords: {"offer letter"}},
	}

	result := aggregator.Decide(&domain.ExtractionResult{CompanyName: "Acme"}, reputation, pattern, &domain.SalaryAssessment{})

	// -5 (high trust) - 3 (positive patterns) = -8
	if result.InternalRiskScore != -8 {
		t.Errorf("score: got %d, want -8", result.InternalRiskScore)
	}
	if result.Category != domain.VerdictSafe {
		t.Errorf("category: got %s, want %s", result.Category, domain.VerdictSafe)
	}
	if len(result.PositiveIndicators) == 0 {
		t.Error("expected positive indicators")
	}
}

func TestDecide_MidScoreNeedsVerification(t *testing.T) {
	aggregator := New(logging.NewNop())

	extraction := &domain.ExtractionResult{RedFlags: []string{"kindly"}}
	reputation := &domain.ReputationResult{TrustAssessment: domain.TrustLow}

	result := aggregator.Decide(extraction, reputation, &domain.PatternMatchResult{}, &domain.SalaryAssessment{})

	// 2 (one red flag) + 5 (low trust) = 7
	if result.InternalRiskScore != 7 {
		t.Errorf("score: got %d, want 7", result.InternalRiskScore)
	}
	if result.Category != domain.VerdictVerify {
		t.Errorf("category: got %s, want %s", result.Category, domain.VerdictVerify)
	}
}

func TestRiskScore_MonotonicInRedFlags(t *testing.T) {
	base := &domain.ExtractionResult{RedFlags: []string{"kindly"}}
	more := &domain.ExtractionResult{RedFlags: []string{"kindly", "urgent hiring", "no interview"}}
	empty := &domain.ReputationResult{}
	pattern := &domain.PatternMatchResult{}
	salary := &domain.SalaryAssessment{}

	low := riskScore(base, empty, pattern, salary)
	high := riskScore(more, empty, pattern, salary)

	if high <= low {
		t.Errorf("expected more red flags to raise the score: %d vs %d", low, high)
	}
}

func TestBuildExplanation_CapsFlagList(t *testing.T) {
	extraction := &domain.ExtractionResult{
		RedFlags: []string{"f1", "f2", "f3", "f4", "f5"},
	}

	explanation := buildExplanation(domain.VerdictWarning, extraction, &domain.ReputationResult{}, &domain.PatternMatchResult{}, nil)

	if strings.Contains(explanation, "f4") {
		t.Errorf("expected at most %d named flags: %s", explanationFlagLimit, explanation)
	}
}
