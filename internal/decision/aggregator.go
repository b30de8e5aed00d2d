// Package decision combines all analyzer outputs into a risk score, a
// three-way verdict, and a structured explanation.
package decision

import (
	"fmt"
	"strings"

	"github.com/offersentry/offersentry/internal/domain"
	"github.com/offersentry/offersentry/internal/logging"
)

// Risk score weights. The score is internal; only the category is shown
// to end users.
const (
	redFlagWeight         = 2
	feePresentPoints      = 5
	highRiskTrustPoints   = 10
	lowTrustPoints        = 5
	highTrustCredit       = -5
	scamReportPoints      = 8
	personalEmailPoints   = 3
	scamPatternPoints     = 5
	positivePatternCredit = -3
	salaryHighPoints      = 4
	salaryMediumPoints    = 2

	warningThreshold = 10
	safeThreshold    = 2
)

// explanationFlagLimit caps how many red flags the explanation names.
const explanationFlagLimit = 3

// Aggregator joins the four upstream analyzer results. It tolerates any
// subset of them being zero-valued: missing data contributes nothing to
// the score and the degenerate all-empty case yields score 0 and
// "Looks Safe".
type Aggregator struct {
	logger logging.Logger
}

// New creates an Aggregator.
func New(logger logging.Logger) *Aggregator {
	return &Aggregator{logger: logger}
}

// Decide computes the risk score, maps it to a verdict category, and
// assembles the explanation. It never fails.
func (a *Aggregator) Decide(
	extraction *domain.ExtractionResult,
	reputation *domain.ReputationResult,
	pattern *domain.PatternMatchResult,
	salary *domain.SalaryAssessment,
) domain.DecisionResult {
	score := riskScore(extraction, reputation, pattern, salary)

	var category string
	switch {
	case score >= warningThreshold:
		category = domain.VerdictWarning
	case score <= safeThreshold:
		category = domain.VerdictSafe
	default:
		category = domain.VerdictVerify
	}

	positives := positiveIndicators(reputation, pattern)
	result := domain.DecisionResult{
		Category:           category,
		InternalRiskScore:  score,
		Summary:            summaryFor(category),
		Explanation:        buildExplanation(category, extraction, reputation, pattern, positives),
		RedFlags:           append([]string{}, extraction.RedFlags...),
		PositiveIndicators: positives,
		CompanyName:        extraction.CompanyName,
		TrustLevel:         reputation.TrustAssessment,
	}
	if result.CompanyName == "" {
		result.CompanyName = domain.CompanyUnknown
	}

	a.logger.Info("decision made",
		logging.String("category", category),
		logging.Int("risk_score", score))
	return result
}

// riskScore applies the fixed integer weights to every present signal.
func riskScore(
	extraction *domain.ExtractionResult,
	reputation *domain.ReputationResult,
	pattern *domain.PatternMatchResult,
	salary *domain.SalaryAssessment,
) int {
	score := 0

	score += redFlagWeight * len(extraction.RedFlags)
	if len(extraction.Fees) > 0 {
		score += feePresentPoints
	}
	score += len(extraction.Behaviors)

	switch reputation.TrustAssessment {
	case domain.TrustHighRisk:
		score += highRiskTrustPoints
	case domain.TrustLow:
		score += lowTrustPoints
	case domain.TrustHigh:
		score += highTrustCredit
	}

	if reputation.ScamReports.Found {
		score += scamReportPoints
	}
	if len(reputation.EmailVerification.PersonalEmails) > 0 {
		score += personalEmailPoints
	}

	if len(pattern.ScamMatches) > 0 {
		score += scamPatternPoints
	}
	if len(pattern.PositiveMatches) > 0 {
		score += positivePatternCredit
	}

	switch salary.Risk {
	case domain.RiskHigh:
		score += salaryHighPoints
	case domain.RiskMedium:
		score += salaryMediumPoints
	}

	return score
}

func summaryFor(category string) string {
	switch category {
	case domain.VerdictWarning:
		return "This message contains several warning signs that suggest caution."
	case domain.VerdictSafe:
		return "This appears to be a legitimate opportunity based on available information."
	default:
		return "This message requires additional verification before proceeding."
	}
}

// positiveIndicators collects the reassuring signals present in this run.
func positiveIndicators(reputation *domain.ReputationResult, pattern *domain.PatternMatchResult) []string {
	indicators := []string{}

	if reputation.TrustAssessment == domain.TrustHigh || reputation.TrustAssessment == domain.TrustModerate {
		indicators = append(indicators, "Company has verifiable online presence")
	}
	if len(reputation.EmailVerification.DomainMatches) > 0 {
		indicators = append(indicators, "Email domain matches company name")
	}
	if len(reputation.EmailVerification.ProfessionalEmails) > 0 {
		indicators = append(indicators, "Uses professional email domain")
	}
	if len(pattern.PositiveMatches) > 0 {
		indicators = append(indicators, "Contains legitimate job offer indicators")
	}
	if reputation.CompanyVerification.OnlinePresence == domain.PresenceStrong {
		indicators = append(indicators, "Strong online presence with multiple sources")
	}
	return indicators
}

// buildExplanation assembles the explanation sections in fixed order:
// red flags, fees, scam reports, personal email, weak presence, salary
// concern, positive indicators, pattern reasoning, research summary, and
// the category recommendation. A missing signal contributes no section.
func buildExplanation(
	category string,
	extraction *domain.ExtractionResult,
	reputation *domain.ReputationResult,
	pattern *domain.PatternMatchResult,
	positives []string,
) string {
	var sections []string

	if len(extraction.RedFlags) > 0 {
		flags := extraction.RedFlags
		if len(flags) > explanationFlagLimit {
			flags = flags[:explanationFlagLimit]
		}
		sections = append(sections, "Red flags detected: "+strings.Join(flags, ", "))
	}

	if len(extraction.Fees) > 0 {
		types := make([]string, 0, len(extraction.Fees))
		for _, fee := range extraction.Fees {
			types = append(types, fee.Type)
		}
		sections = append(sections, "Upfront payment required: mentions "+strings.Join(types, ", "))
	}

	if reputation.ScamReports.Found {
		sections = append(sections, "Scam reports found: online sources report similar scams")
	}

	if len(reputation.EmailVerification.PersonalEmails) > 0 {
		sections = append(sections, "Personal email domain: uses consumer webmail instead of a company domain")
	}

	presence := reputation.CompanyVerification.OnlinePresence
	if presence == domain.PresenceWeak || presence == domain.PresenceNone {
		company := extraction.CompanyName
		if company == "" {
			company = domain.CompanyUnknown
		}
		sections = append(sections, fmt.Sprintf(
			"Limited online presence: %s has minimal verifiable information online", company))
	}

	switch reputation.SalaryVerification.Realistic {
	case domain.SalarySuspiciouslyLow, domain.SalarySuspiciouslyHigh:
		sections = append(sections, "Salary concern: "+reputation.SalaryVerification.Assessment)
	}

	if len(positives) > 0 {
		sections = append(sections, "Positive indicators: "+strings.Join(positives, "; "))
	}

	if pattern.Reasoning != "" {
		sections = append(sections, "Pattern analysis: "+pattern.Reasoning)
	}

	if reputation.Summary != "" {
		sections = append(sections, "Research findings: "+reputation.Summary)
	}

	sections = append(sections, "Recommendation: "+recommendationFor(category))
	return strings.Join(sections, "\n")
}

func recommendationFor(category string) string {
	switch category {
	case domain.VerdictWarning:
		return "Exercise extreme caution. Verify all details independently before proceeding. " +
			"Never send money or personal documents without thorough verification."
	case domain.VerdictVerify:
		return "Verify the company's official contact information and cross-check all details before responding."
	default:
		return "While this appears legitimate, always verify through official channels and be cautious with personal information."
	}
}
