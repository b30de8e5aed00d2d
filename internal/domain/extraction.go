// Package domain defines the shared types produced and consumed by the
// analysis pipeline stages.
package domain

// CompanyUnknown is the sentinel company name used when extraction could
// not resolve one.
const CompanyUnknown = "Unknown"

// Fee type constants.
const (
	FeeTypeTraining          = "training_fee"
	FeeTypeRegistration      = "registration_fee"
	FeeTypeDeposit           = "deposit"
	FeeTypeRefundableDeposit = "refundable_deposit"
	FeeTypeOther             = "other_fee"
)

// Salary holds a compensation figure extracted from the posting text.
type Salary struct {
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"` // "INR" or "USD"
	Period   string `json:"period"`   // "month" or "year"
}

// Fee is a single fee/deposit mention with the surrounding text window
// used to classify it.
type Fee struct {
	Amount  int64  `json:"amount"`
	Type    string `json:"type"`
	Context string `json:"context"`
}

// MessagingIDs holds messaging-app contact handles found in the text.
type MessagingIDs struct {
	WhatsApp []string `json:"whatsapp"`
	Telegram []string `json:"telegram"`
}

// ExtractionResult is the structured view of a cleaned posting. It is
// immutable once produced; absence of a pattern is represented by empty
// values, never by an error.
type ExtractionResult struct {
	CompanyName  string       `json:"company_name"`
	Emails       []string     `json:"emails"`
	Domains      []string     `json:"domains"`
	Phones       []string     `json:"phones"`
	URLs         []string     `json:"urls"`
	Salary       *Salary      `json:"salary,omitempty"`
	Fees         []Fee        `json:"fees"`
	MessagingIDs MessagingIDs `json:"messaging_ids"`
	RedFlags     []string     `json:"red_flags"`
	Behaviors    []string     `json:"behaviors"`
}
