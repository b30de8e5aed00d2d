// Package extractor turns cleaned posting text into structured facts.
package extractor

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/nyaruka/phonenumbers"

	"github.com/offersentry/offersentry/internal/domain"
	"github.com/offersentry/offersentry/internal/logging"
)

const (
	// feeContextWindow is the number of characters captured on each side
	// of a fee keyword match for later classification.
	feeContextWindow = 30

	// minDescriptiveLength is the text length below which the posting is
	// tagged as a vague job description.
	minDescriptiveLength = 100

	// punctuationLimit is the count of '!' or '?' above which the text is
	// tagged for excessive punctuation.
	punctuationLimit = 3

	// defaultPhoneRegion is assumed for numbers without a country code.
	defaultPhoneRegion = "IN"
)

var (
	emailRe  = regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`)
	phoneRe  = regexp.MustCompile(`(\+?\d{1,3}[-.\s]?)?\(?\d{3}\)?[-.\s]?\d{3}[-.\s]?\d{4}`)
	urlRe    = regexp.MustCompile(`https?://(?:www\.)?[-a-zA-Z0-9@:%._+~#=]{1,256}\.[a-zA-Z0-9()]{1,6}\b[-a-zA-Z0-9()@:%_+.~#?&/=]*`)
	salaryRe = regexp.MustCompile(`(?i)(?:₹|Rs\.?|INR|USD|\$)\s*(\d+(?:,\d{3})*(?:\.\d{2})?)\s*(?:per|/)?\s*(?:month|year|annum|pm|pa)?`)
	feeRe    = regexp.MustCompile(`(?i)(?:fee|deposit|payment|charge|cost)\s*(?:of|:)?\s*(?:₹|Rs\.?|INR|\$)?\s*(\d+(?:,\d{3})*)`)

	urlDomainRe = regexp.MustCompile(`://(?:www\.)?([^/]+)`)

	whatsappRe = regexp.MustCompile(`(?i)(?:whatsapp|wa)[\s:]+(\+?\d{10,15})`)
	telegramRe = regexp.MustCompile(`(?i)(?:telegram|t\.me)/([A-Za-z0-9_]{5,32})`)

	companyRes = []*regexp.Regexp{
		regexp.MustCompile(`(?:at|from|with|join)\s+([A-Z][A-Za-z0-9\s&]{2,30}?)\s+(?:is|are|has|invites|hiring)`),
		regexp.MustCompile(`([A-Z][A-Za-z0-9\s&]{2,30}?)\s+(?:is hiring|invites|offers|provides)`),
		regexp.MustCompile(`(?:Company|Organization|Firm):\s*([A-Z][A-Za-z0-9\s&]{2,30})`),
	}
	innerSpaceRe = regexp.MustCompile(`\s+`)
)

// redFlagKeywords are scanned as case-insensitive substrings; every one
// that occurs is reported, in list order.
var redFlagKeywords = []string{
	"training fee", "registration fee", "refundable deposit", "security deposit",
	"laptop fee", "equipment fee", "processing fee", "onboarding fee",
	"wire transfer", "western union", "cash app", "crypto payment", "bitcoin",
	"no interview", "immediate hiring", "urgent hiring", "quick earnings",
	"work from home guaranteed", "no experience needed", "earn from home",
	"whatsapp job", "telegram job", "kindly", "dear candidate",
	"congratulations you are selected", "limited slots", "act fast",
}

// urgencyWords trigger the pressure-to-act-fast behavior tag.
var urgencyWords = []string{"urgent", "immediate", "limited", "act fast", "hurry"}

// paymentWords trigger the upfront-payment behavior tag.
var paymentWords = []string{"fee", "deposit", "payment", "charge"}

// Extractor converts cleaned text into an ExtractionResult. It never
// fails on malformed input; a pattern that finds nothing yields an empty
// or sentinel value.
type Extractor struct {
	logger logging.Logger
}

// New creates an Extractor.
func New(logger logging.Logger) *Extractor {
	return &Extractor{logger: logger}
}

// Extract parses all structured facts out of the cleaned text.
func (e *Extractor) Extract(cleanText string) domain.ExtractionResult {
	emails := extractEmails(cleanText)
	urls := extractURLs(cleanText)

	result := domain.ExtractionResult{
		CompanyName:  extractCompany(cleanText),
		Emails:       emails,
		Domains:      extractDomains(emails, urls),
		Phones:       extractPhones(cleanText),
		URLs:         urls,
		Salary:       extractSalary(cleanText),
		Fees:         extractFees(cleanText),
		MessagingIDs: extractMessagingIDs(cleanText),
		RedFlags:     detectRedFlags(cleanText),
		Behaviors:    detectBehaviors(cleanText),
	}

	e.logger.Debug("extraction complete",
		logging.String("company", result.CompanyName),
		logging.Int("emails", len(result.Emails)),
		logging.Int("red_flags", len(result.RedFlags)))
	return result
}

// extractCompany tries regex templates around hiring verbs, then a
// fallback scan for a capitalized token followed by a hiring verb, and
// finally the Unknown sentinel.
func extractCompany(text string) string {
	for _, re := range companyRes {
		if m := re.FindStringSubmatch(text); m != nil {
			return innerSpaceRe.ReplaceAllString(strings.TrimSpace(m[1]), " ")
		}
	}

	words := strings.Fields(text)
	for i, word := range words {
		if len(word) <= 2 || i+1 >= len(words) {
			continue
		}
		first := rune(word[0])
		if first < 'A' || first > 'Z' {
			continue
		}
		switch words[i+1] {
		case "is", "hiring", "invites", "offers":
			return word
		}
	}
	return domain.CompanyUnknown
}

func extractEmails(text string) []string {
	return dedupe(emailRe.FindAllString(text, -1))
}

func extractURLs(text string) []string {
	return dedupe(urlRe.FindAllString(text, -1))
}

// extractDomains collects domains from both emails and URLs.
func extractDomains(emails, urls []string) []string {
	var domains []string
	for _, email := range emails {
		if at := strings.LastIndex(email, "@"); at >= 0 {
			domains = append(domains, email[at+1:])
		}
	}
	for _, u := range urls {
		if m := urlDomainRe.FindStringSubmatch(u); m != nil {
			domains = append(domains, m[1])
		}
	}
	return dedupe(domains)
}

// extractPhones finds phone candidates and normalizes parseable ones to
// E.164; candidates that do not parse are kept as written.
func extractPhones(text string) []string {
	candidates := phoneRe.FindAllString(text, -1)
	phones := make([]string, 0, len(candidates))
	for _, cand := range candidates {
		cand = strings.TrimSpace(cand)
		if cand == "" {
			continue
		}
		if num, err := phonenumbers.Parse(cand, defaultPhoneRegion); err == nil && phonenumbers.IsValidNumber(num) {
			phones = append(phones, phonenumbers.Format(num, phonenumbers.E164))
			continue
		}
		phones = append(phones, cand)
	}
	return dedupe(phones)
}

// extractSalary takes the first currency-amount match in document order.
// Currency defaults to INR unless a dollar marker is present; period
// defaults to monthly unless a yearly token appears anywhere.
func extractSalary(text string) *domain.Salary {
	m := salaryRe.FindStringSubmatch(text)
	if m == nil {
		return nil
	}
	amount, ok := parseAmount(m[1])
	if !ok {
		return nil
	}

	currency := "INR"
	if strings.Contains(text, "$") || strings.Contains(text, "USD") {
		currency = "USD"
	}

	period := "month"
	lower := strings.ToLower(text)
	for _, token := range []string{"year", "annum", "pa"} {
		if containsToken(lower, token) {
			period = "year"
			break
		}
	}

	return &domain.Salary{Amount: amount, Currency: currency, Period: period}
}

// extractFees captures a fixed-width window around each fee keyword match
// and classifies the fee type from the window.
func extractFees(text string) []domain.Fee {
	var fees []domain.Fee
	for _, loc := range feeRe.FindAllStringSubmatchIndex(text, -1) {
		amount, ok := parseAmount(text[loc[2]:loc[3]])
		if !ok {
			continue
		}
		start := loc[0] - feeContextWindow
		if start < 0 {
			start = 0
		}
		end := loc[1] + feeContextWindow
		if end > len(text) {
			end = len(text)
		}
		context := strings.TrimSpace(text[start:end])
		fees = append(fees, domain.Fee{
			Amount:  amount,
			Type:    classifyFee(context),
			Context: context,
		})
	}
	return fees
}

// classifyFee picks the fee type from keywords in the context window.
func classifyFee(context string) string {
	lower := strings.ToLower(context)
	switch {
	case strings.Contains(lower, "training"):
		return domain.FeeTypeTraining
	case strings.Contains(lower, "registration"):
		return domain.FeeTypeRegistration
	case strings.Contains(lower, "refund"):
		return domain.FeeTypeRefundableDeposit
	case strings.Contains(lower, "deposit"):
		return domain.FeeTypeDeposit
	default:
		return domain.FeeTypeOther
	}
}

func extractMessagingIDs(text string) domain.MessagingIDs {
	ids := domain.MessagingIDs{WhatsApp: []string{}, Telegram: []string{}}
	for _, m := range whatsappRe.FindAllStringSubmatch(text, -1) {
		ids.WhatsApp = append(ids.WhatsApp, m[1])
	}
	for _, m := range telegramRe.FindAllStringSubmatch(text, -1) {
		ids.Telegram = append(ids.Telegram, m[1])
	}
	ids.WhatsApp = dedupe(ids.WhatsApp)
	ids.Telegram = dedupe(ids.Telegram)
	return ids
}

// detectRedFlags reports every red-flag keyword contained in the text.
func detectRedFlags(text string) []string {
	lower := strings.ToLower(text)
	var flags []string
	for _, flag := range redFlagKeywords {
		if strings.Contains(lower, flag) {
			flags = append(flags, flag)
		}
	}
	return flags
}

// detectBehaviors runs the independent behavior checks. Each check is
// evaluated on its own; all that trigger are reported.
//
// The no-interview check is literal substring absence of "interview", so
// a posting saying "no interview needed" does NOT get this tag (the
// substring occurs); the "no interview" red-flag keyword still fires for
// that case.
func detectBehaviors(text string) []string {
	lower := strings.ToLower(text)
	var behaviors []string

	if !strings.Contains(lower, "interview") {
		behaviors = append(behaviors, "no interview mentioned")
	}
	if containsAny(lower, paymentWords) {
		behaviors = append(behaviors, "upfront payment required")
	}
	if strings.Count(text, "!") > punctuationLimit || strings.Count(text, "?") > punctuationLimit {
		behaviors = append(behaviors, "excessive punctuation")
	}
	if strings.Contains(lower, "kindly") || strings.Contains(lower, "dear candidate") {
		behaviors = append(behaviors, "unprofessional language")
	}
	if containsAny(lower, urgencyWords) {
		behaviors = append(behaviors, "pressure to act fast")
	}
	if len(text) < minDescriptiveLength {
		behaviors = append(behaviors, "vague job description")
	}
	return behaviors
}

// parseAmount strips thousands separators and any decimal part.
func parseAmount(s string) (int64, bool) {
	s = strings.ReplaceAll(s, ",", "")
	if dot := strings.Index(s, "."); dot >= 0 {
		s = s[:dot]
	}
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// containsToken reports whether the lowered text contains word as a
// whitespace-delimited token or common suffix form.
func containsToken(lower, token string) bool {
	for _, field := range strings.Fields(lower) {
		trimmed := strings.Trim(field, ".,;:!?()\"'")
		if trimmed == token {
			return true
		}
	}
	// "per annum", "/year" style usages survive cleaning as substrings.
	return strings.Contains(lower, "/"+token) || strings.Contains(lower, "per "+token)
}

func containsAny(lower string, words []string) bool {
	for _, w := range words {
		if strings.Contains(lower, w) {
			return true
		}
	}
	return false
}

// dedupe removes duplicates preserving first-occurrence order. A nil
// input yields an empty, non-nil slice.
func dedupe(values []string) []string {
	out := make([]string, 0, len(values))
	seen := make(map[string]bool, len(values))
	for _, v := range values {
		if v == "" || seen[v] {
			continue
		}
		seen[v] = true
		out = append(out, v)
	}
	return out
}
