// Package salarycheck classifies mentioned compensation against a market
// band and scans the interview process for suspicious phrasing. It is
// deliberately independent of the extractor: it parses its own amount and
// its classification is authoritative for risk, while the extractor's
// value is authoritative for display.
package salarycheck

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/offersentry/offersentry/internal/domain"
	"github.com/offersentry/offersentry/internal/logging"
)

// Absolute thresholds, in the posting's stated currency units (INR
// assumed for unmarked amounts).
const (
	veryLowSalary         = 300
	lowSalary             = 1000
	unrealisticHighSalary = 200000

	thousandShorthand = 1000
)

// amountRe is deliberately permissive: bare numbers count, and the "50k"
// shorthand is supported.
var amountRe = regexp.MustCompile(`\$?\s?([0-9]{2,6}(?:[,.][0-9]{3})?)\s?(k|K)?`)

// suspiciousInterviewPhrases escalate interview risk. Payment-related
// phrases force HIGH.
var suspiciousInterviewPhrases = []*regexp.Regexp{
	regexp.MustCompile(`(?i)pay.*interview`),
	regexp.MustCompile(`(?i)registration fee`),
	regexp.MustCompile(`(?i)certificate.*payment`),
	regexp.MustCompile(`(?i)no formal interview`),
	regexp.MustCompile(`(?i)quick interview`),
	regexp.MustCompile(`(?i)send.*money`),
	regexp.MustCompile(`(?i)whatsapp`),
	regexp.MustCompile(`(?i)personal bank`),
}

// Checker evaluates salary plausibility and interview-process risk.
type Checker struct {
	logger logging.Logger
}

// New creates a Checker.
func New(logger logging.Logger) *Checker {
	return &Checker{logger: logger}
}

// Check parses the first amount in the text, assesses it, analyzes the
// interview process, and combines the two risks (the higher wins).
func (c *Checker) Check(cleanText string) domain.SalaryAssessment {
	assessment := domain.SalaryAssessment{
		Risk:    domain.RiskSafe,
		Reasons: []string{},
	}

	if value, found := extractAmount(cleanText); found {
		assessment.Found = true
		assessment.Value = value
		risk, reasons := assessAmount(value)
		assessment.Risk = risk
		assessment.Reasons = reasons
	}

	assessment.Interview = analyzeInterview(cleanText)
	assessment.Risk = combineRisk(assessment.Risk, assessment.Interview.Risk)

	c.logger.Debug("salary check complete",
		logging.Bool("found", assessment.Found),
		logging.String("risk", assessment.Risk))
	return assessment
}

// extractAmount returns the first numeric amount in document order.
func extractAmount(text string) (int64, bool) {
	m := amountRe.FindStringSubmatch(text)
	if m == nil || m[1] == "" {
		return 0, false
	}
	raw := strings.ReplaceAll(m[1], ",", "")
	if dot := strings.Index(raw, "."); dot >= 0 {
		raw = raw[:dot]
	}
	value, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, false
	}
	if m[2] != "" {
		value *= thousandShorthand
	}
	return value, true
}

// assessAmount applies the absolute market band thresholds.
func assessAmount(value int64) (string, []string) {
	switch {
	case value < veryLowSalary:
		return domain.RiskHigh, []string{"Very low salary value (possible bait or per-day/per-hour confusion)"}
	case value < lowSalary:
		return domain.RiskMedium, []string{"Low salary compared to typical living wages"}
	case value > unrealisticHighSalary:
		return domain.RiskHigh, []string{"Unrealistically high salary claim"}
	default:
		return domain.RiskSafe, []string{}
	}
}

// analyzeInterview scans for suspicious interview-process phrases.
func analyzeInterview(text string) domain.InterviewFinding {
	finding := domain.InterviewFinding{Matches: []string{}, Risk: domain.RiskSafe}
	for _, re := range suspiciousInterviewPhrases {
		if re.MatchString(text) {
			finding.Matches = append(finding.Matches, re.String())
		}
	}
	if len(finding.Matches) == 0 {
		return finding
	}

	finding.Risk = domain.RiskMedium
	for _, m := range finding.Matches {
		if strings.Contains(m, "pay") || strings.Contains(m, "registration") {
			finding.Risk = domain.RiskHigh
			break
		}
	}
	return finding
}

// combineRisk returns the higher of two risk levels.
func combineRisk(a, b string) string {
	if a == domain.RiskHigh || b == domain.RiskHigh {
		return domain.RiskHigh
	}
	if a == domain.RiskMedium || b == domain.RiskMedium {
		return domain.RiskMedium
	}
	return domain.RiskSafe
}
