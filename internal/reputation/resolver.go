// Package reputation produces a trust judgment for a posting from its
// extracted facts, using an external search collaborator when available
// and a static allowlist fallback when not.
package reputation

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/offersentry/offersentry/internal/domain"
	"github.com/offersentry/offersentry/internal/logging"
	"github.com/offersentry/offersentry/internal/search"
)

// Trust score weights. The mapping to tiers is score>=5 high_trust,
// >=2 moderate_trust, >=0 low_trust, else high_risk.
const (
	presenceStrongPoints    = 3
	presenceModeratePoints  = 1
	presenceWeakPenalty     = -1
	professionalEmailPoints = 2
	personalEmailPenalty    = -1
	domainMatchPoints       = 2
	scamReportPenalty       = -5
	trustedDomainPoints     = 3
	suspiciousDomainPenalty = -2
	salaryRealisticPoints   = 1
	salarySuspiciousPenalty = -2

	highTrustThreshold     = 5
	moderateTrustThreshold = 2
	lowTrustThreshold      = 0
)

// Salary realism thresholds, in INR per month.
const (
	suspiciouslyLowMonthly  = 5000
	verifyRequiredMonthly   = 50000
	suspiciouslyHighMonthly = 100000

	monthsPerYear = 12
)

// strongPresenceResultCount is the result count at or above which a
// company's online presence is rated strong.
const strongPresenceResultCount = 5

const scamReportSourceLimit = 3

// personalEmailDomains is the fixed consumer webmail set; anything else
// counts as a professional domain.
var personalEmailDomains = map[string]bool{
	"gmail.com":      true,
	"yahoo.com":      true,
	"hotmail.com":    true,
	"outlook.com":    true,
	"protonmail.com": true,
}

// trustedDomains is the static allowlist of well-known company domains.
var trustedDomains = []string{
	"google.com", "microsoft.com", "amazon.com", "apple.com",
	"meta.com", "netflix.com", "linkedin.com", "tcs.com",
	"infosys.com", "wipro.com", "accenture.com", "deloitte.com",
}

// suspiciousDomainWords mark a domain as suspicious when any occurs in it.
var suspiciousDomainWords = []string{"job", "hire", "work", "earn", "cash", "money"}

// emailSuspiciousWords is the narrower set used for email domains.
var emailSuspiciousWords = []string{"job", "hire", "work", "earn", "cash"}

// scamEvidenceWords qualify a search hit as an actual scam report.
var scamEvidenceWords = []string{"scam", "fraud", "fake", "beware", "warning", "complaint"}

// knownCompanies drives the static fallback when search is unavailable.
var knownCompanies = []string{"google", "microsoft", "amazon", "tcs", "infosys"}

// Config holds resolver tunables.
type Config struct {
	SearchTimeout time.Duration
	MaxResults    int
}

// Resolver turns an ExtractionResult into a ReputationResult. Resolve
// never returns an error: collaborator failures degrade to static
// fallback data.
type Resolver struct {
	searcher search.Searcher
	cache    *Cache
	config   Config
	logger   logging.Logger
}

// NewResolver creates a Resolver. A nil searcher is valid and forces the
// static fallback path.
func NewResolver(searcher search.Searcher, cache *Cache, config Config, logger logging.Logger) *Resolver {
	if config.SearchTimeout == 0 {
		config.SearchTimeout = 10 * time.Second
	}
	if config.MaxResults == 0 {
		config.MaxResults = 5
	}
	return &Resolver{searcher: searcher, cache: cache, config: config, logger: logger}
}

// Resolve produces the full trust judgment for one extraction. A cached
// company verification short-circuits the company search but email,
// salary, scam-report and domain analysis always run.
func (r *Resolver) Resolve(ctx context.Context, extraction *domain.ExtractionResult) domain.ReputationResult {
	company := extraction.CompanyName
	if company == "" {
		company = domain.CompanyUnknown
	}

	result := domain.ReputationResult{
		CompanyVerification: r.verifyCompany(ctx, company),
		EmailVerification:   verifyEmails(extraction.Emails, extraction.Domains, company),
		SalaryVerification:  verifySalary(extraction.Salary),
		ScamReports:         r.checkScamReports(ctx, company),
		DomainAnalysis:      analyzeDomains(extraction.Domains),
	}
	result.TrustAssessment = assessTrust(&result)
	result.Summary = buildSummary(&result, company)

	r.logger.Info("reputation resolved",
		logging.String("company", company),
		logging.String("trust", result.TrustAssessment))
	return result
}

// verifyCompany checks the cache, then the search collaborator, then the
// static fallback.
func (r *Resolver) verifyCompany(ctx context.Context, company string) domain.CompanyVerification {
	if company == domain.CompanyUnknown {
		return domain.CompanyVerification{
			Found:          false,
			OnlinePresence: domain.PresenceNone,
			Sources:        []string{},
			Description:    "Company name could not be identified",
		}
	}

	if cached, ok := r.cache.Get(company); ok {
		r.logger.Debug("company verification cache hit", logging.String("company", company))
		return cached
	}

	verification := r.searchCompany(ctx, company)
	r.cache.Put(company, verification)
	return verification
}

func (r *Resolver) searchCompany(ctx context.Context, company string) domain.CompanyVerification {
	if r.searcher == nil {
		return mockVerification(company)
	}

	queries := []string{
		company + " official website",
		company + " company reviews",
	}

	var all []search.Result
	for _, query := range queries {
		results, err := r.search(ctx, query)
		if err != nil {
			r.logger.Warn("company search failed",
				logging.String("query", query), logging.Error(err))
			continue
		}
		all = append(all, results...)
	}

	if len(all) == 0 {
		return mockVerification(company)
	}

	presence := domain.PresenceModerate
	if len(all) >= strongPresenceResultCount {
		presence = domain.PresenceStrong
	}

	sources := make([]string, 0, r.config.MaxResults)
	for _, res := range all {
		if len(sources) >= r.config.MaxResults {
			break
		}
		if res.Link != "" {
			sources = append(sources, res.Link)
		}
	}

	return domain.CompanyVerification{
		Found:          true,
		OnlinePresence: presence,
		Sources:        sources,
		Description:    all[0].Body,
	}
}

// checkScamReports searches for scam/fraud mentions. Unavailable search
// means no reports, not an error.
func (r *Resolver) checkScamReports(ctx context.Context, company string) domain.ScamReports {
	reports := domain.ScamReports{Sources: []string{}, Summary: "No scam reports found"}
	if company == domain.CompanyUnknown || r.searcher == nil {
		return reports
	}

	queries := []string{company + " scam", company + " fraud"}
	var relevant []search.Result
	for _, query := range queries {
		results, err := r.search(ctx, query)
		if err != nil {
			r.logger.Warn("scam report search failed",
				logging.String("query", query), logging.Error(err))
			continue
		}
		for _, res := range results {
			body := strings.ToLower(res.Body)
			for _, word := range scamEvidenceWords {
				if strings.Contains(body, word) {
					relevant = append(relevant, res)
					break
				}
			}
		}
	}

	if len(relevant) == 0 {
		return reports
	}

	reports.Found = true
	for _, res := range relevant {
		if len(reports.Sources) >= scamReportSourceLimit {
			break
		}
		if res.Link != "" {
			reports.Sources = append(reports.Sources, res.Link)
		}
	}
	reports.Summary = fmt.Sprintf("Found %d potential scam reports", len(relevant))
	return reports
}

// search runs one bounded query against the collaborator.
func (r *Resolver) search(ctx context.Context, query string) ([]search.Result, error) {
	ctx, cancel := context.WithTimeout(ctx, r.config.SearchTimeout)
	defer cancel()
	return r.searcher.Search(ctx, query, r.config.MaxResults)
}

// verifyEmails classifies every email as personal or professional, finds
// company/domain matches, and flags suspicious-looking domains.
func verifyEmails(emails, domains []string, company string) domain.EmailVerification {
	verification := domain.EmailVerification{
		DomainMatches:      []string{},
		SuspiciousDomains:  []string{},
		PersonalEmails:     []string{},
		ProfessionalEmails: []string{},
	}

	companyClean := strings.ToLower(strings.ReplaceAll(company, " ", ""))
	for _, email := range emails {
		at := strings.LastIndex(email, "@")
		if at < 0 {
			continue
		}
		emailDomain := strings.ToLower(email[at+1:])
		if personalEmailDomains[emailDomain] {
			verification.PersonalEmails = append(verification.PersonalEmails, email)
		} else {
			verification.ProfessionalEmails = append(verification.ProfessionalEmails, email)
		}
		if companyClean != "" && company != domain.CompanyUnknown && strings.Contains(emailDomain, companyClean) {
			verification.DomainMatches = append(verification.DomainMatches, email)
		}
	}

	for _, d := range domains {
		lower := strings.ToLower(d)
		if matchesAny(lower, emailSuspiciousWords) {
			verification.SuspiciousDomains = append(verification.SuspiciousDomains, d)
		}
	}
	return verification
}

// verifySalary converts to a monthly equivalent and applies the absolute
// INR thresholds.
func verifySalary(salary *domain.Salary) domain.SalaryVerification {
	if salary == nil {
		return domain.SalaryVerification{
			Realistic:  domain.SalaryUnknown,
			Assessment: "No salary information provided",
		}
	}

	monthly := float64(salary.Amount)
	if salary.Period == "year" {
		monthly /= monthsPerYear
	}

	verification := domain.SalaryVerification{
		MonthlyEquivalent: monthly,
		MarketRange:       "INR 10,000 - 30,000/month for internships",
	}
	switch {
	case monthly < suspiciouslyLowMonthly:
		verification.Realistic = domain.SalarySuspiciouslyLow
		verification.Assessment = "Salary is unusually low for any legitimate internship"
	case monthly > suspiciouslyHighMonthly:
		verification.Realistic = domain.SalarySuspiciouslyHigh
		verification.Assessment = "Salary is unusually high for an internship without experience"
	case monthly > verifyRequiredMonthly:
		verification.Realistic = domain.SalaryVerifyRequired
		verification.Assessment = "Salary is high; verify company legitimacy"
	default:
		verification.Realistic = domain.SalaryRealistic
		verification.Assessment = "Salary appears within normal range"
	}
	return verification
}

// analyzeDomains buckets domains as trusted, suspicious, or unknown.
func analyzeDomains(domains []string) domain.DomainAnalysis {
	analysis := domain.DomainAnalysis{
		Trusted:    []string{},
		Suspicious: []string{},
		Unknown:    []string{},
	}
	for _, d := range domains {
		lower := strings.ToLower(d)
		switch {
		case matchesAny(lower, trustedDomains):
			analysis.Trusted = append(analysis.Trusted, d)
		case matchesAny(lower, suspiciousDomainWords):
			analysis.Suspicious = append(analysis.Suspicious, d)
		default:
			analysis.Unknown = append(analysis.Unknown, d)
		}
	}
	return analysis
}

// assessTrust computes the weighted trust score and maps it to a tier.
func assessTrust(result *domain.ReputationResult) string {
	score := 0

	switch result.CompanyVerification.OnlinePresence {
	case domain.PresenceStrong:
		score += presenceStrongPoints
	case domain.PresenceModerate:
		score += presenceModeratePoints
	case domain.PresenceWeak:
		score += presenceWeakPenalty
	}

	if len(result.EmailVerification.ProfessionalEmails) > 0 {
		score += professionalEmailPoints
	}
	if len(result.EmailVerification.PersonalEmails) > 0 {
		score += personalEmailPenalty
	}
	if len(result.EmailVerification.DomainMatches) > 0 {
		score += domainMatchPoints
	}

	if result.ScamReports.Found {
		score += scamReportPenalty
	}

	if len(result.DomainAnalysis.Trusted) > 0 {
		score += trustedDomainPoints
	}
	if len(result.DomainAnalysis.Suspicious) > 0 {
		score += suspiciousDomainPenalty
	}

	switch result.SalaryVerification.Realistic {
	case domain.SalaryRealistic:
		score += salaryRealisticPoints
	case domain.SalarySuspiciouslyLow, domain.SalarySuspiciouslyHigh:
		score += salarySuspiciousPenalty
	}

	switch {
	case score >= highTrustThreshold:
		return domain.TrustHigh
	case score >= moderateTrustThreshold:
		return domain.TrustModerate
	case score >= lowTrustThreshold:
		return domain.TrustLow
	default:
		return domain.TrustHighRisk
	}
}

// buildSummary assembles the human-readable research summary.
func buildSummary(result *domain.ReputationResult, company string) string {
	var lines []string

	switch result.CompanyVerification.OnlinePresence {
	case domain.PresenceStrong:
		lines = append(lines, fmt.Sprintf("%s has a strong online presence with multiple verified sources.", company))
	case domain.PresenceModerate:
		lines = append(lines, fmt.Sprintf("%s has some online presence, but verification is limited.", company))
	case domain.PresenceWeak:
		lines = append(lines, fmt.Sprintf("%s has minimal online presence, which may be a concern.", company))
	default:
		lines = append(lines, "Company information could not be verified online.")
	}

	if len(result.EmailVerification.PersonalEmails) > 0 {
		lines = append(lines, "The contact email uses a personal domain, which is unusual for legitimate companies.")
	}
	if len(result.EmailVerification.DomainMatches) > 0 {
		lines = append(lines, "The email domain matches the company name, which is a positive sign.")
	}
	if result.ScamReports.Found {
		lines = append(lines, "Scam reports or warnings were found online related to this company or domain.")
	}
	switch result.SalaryVerification.Realistic {
	case domain.SalarySuspiciouslyLow, domain.SalarySuspiciouslyHigh:
		lines = append(lines, result.SalaryVerification.Assessment)
	}

	return strings.Join(lines, " ")
}

// mockVerification is the static fallback when search is unavailable:
// a small fixed list of well-known company name substrings rate as
// strong presence, everything else as weak.
func mockVerification(company string) domain.CompanyVerification {
	lower := strings.ToLower(company)
	for _, known := range knownCompanies {
		if strings.Contains(lower, known) {
			return domain.CompanyVerification{
				Found:          true,
				OnlinePresence: domain.PresenceStrong,
				Sources:        []string{"https://www." + known + ".com"},
				Description:    company + " is a well-known technology company.",
			}
		}
	}
	return domain.CompanyVerification{
		Found:          false,
		OnlinePresence: domain.PresenceWeak,
		Sources:        []string{},
		Description:    "Limited information available (search collaborator not configured)",
	}
}

func matchesAny(s string, substrings []string) bool {
	for _, sub := range substrings {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
