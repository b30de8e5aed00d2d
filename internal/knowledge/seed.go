package knowledge

import "github.com/offersentry/offersentry/internal/domain"

// defaultScamDocument returns the seed scam pattern document used when no
// document exists on disk yet.
func defaultScamDocument() domain.PatternDocument {
	doc := domain.PatternDocument{
		SuspiciousKeywords: []string{
			"registration fee", "quick earnings", "whatsapp job", "pay to start",
			"wire transfer", "western union", "cash app", "crypto payment",
			"immediate hiring", "no interview", "kindly", "dear candidate",
			"refundable deposit", "security fee", "training fee", "laptop fee",
		},
		FakeDomains: []string{
			"workfromhome.cash", "instant-hire.net", "quick-jobs.info",
		},
		Behaviors: []string{
			"no interview", "salary unrealistic", "crypto payout",
			"pressure to act fast", "poor grammar", "unprofessional email",
		},
	}
	doc.Normalize()
	return doc
}

// defaultPositiveDocument returns the seed positive pattern document.
func defaultPositiveDocument() domain.PatternDocument {
	doc := domain.PatternDocument{
		LegitimateKeywords: []string{
			"interview scheduled", "offer letter", "hr department", "official contract",
			"background check", "tax forms", "direct deposit", "company portal",
			"video call", "on-site interview", "technical round",
		},
		VerifiedDomains: []string{
			"google.com", "microsoft.com", "amazon.com", "apple.com",
			"netflix.com", "meta.com", "linkedin.com", "zoho.com",
			"tcs.com", "infosys.com", "wipro.com",
		},
		Behaviors: []string{
			"no upfront pay", "clear salary", "proper company address",
			"professional communication", "structured interview process",
		},
	}
	doc.Normalize()
	return doc
}
