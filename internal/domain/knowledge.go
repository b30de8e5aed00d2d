package domain

// Knowledge-base document names.
const (
	DocumentScam     = "scam"
	DocumentPositive = "positive"
)

// Knowledge-base category names. These five categories are the fixed
// schema of both pattern documents; appends to any other key are rejected.
const (
	CategoryLegitimateKeywords = "legitimate_keywords"
	CategorySuspiciousKeywords = "suspicious_keywords"
	CategoryVerifiedDomains    = "verified_domains"
	CategoryFakeDomains        = "fake_domains"
	CategoryBehaviors          = "behaviors"
)

// PatternCategories lists the schema categories in canonical order.
var PatternCategories = []string{
	CategoryLegitimateKeywords,
	CategorySuspiciousKeywords,
	CategoryVerifiedDomains,
	CategoryFakeDomains,
	CategoryBehaviors,
}

// PatternDocument is one persisted pattern document. Unknown top-level
// keys in the stored JSON are ignored on load; missing categories load as
// empty lists. Value lists never contain duplicates.
type PatternDocument struct {
	LegitimateKeywords []string `json:"legitimate_keywords"`
	SuspiciousKeywords []string `json:"suspicious_keywords"`
	VerifiedDomains    []string `json:"verified_domains"`
	FakeDomains        []string `json:"fake_domains"`
	Behaviors          []string `json:"behaviors"`
}

// Category returns the value list for a schema category. The second
// return is false for unknown categories.
func (d *PatternDocument) Category(name string) ([]string, bool) {
	switch name {
	case CategoryLegitimateKeywords:
		return d.LegitimateKeywords, true
	case CategorySuspiciousKeywords:
		return d.SuspiciousKeywords, true
	case CategoryVerifiedDomains:
		return d.VerifiedDomains, true
	case CategoryFakeDomains:
		return d.FakeDomains, true
	case CategoryBehaviors:
		return d.Behaviors, true
	default:
		return nil, false
	}
}

// setCategory replaces the value list for a schema category.
func (d *PatternDocument) setCategory(name string, values []string) {
	switch name {
	case CategoryLegitimateKeywords:
		d.LegitimateKeywords = values
	case CategorySuspiciousKeywords:
		d.SuspiciousKeywords = values
	case CategoryVerifiedDomains:
		d.VerifiedDomains = values
	case CategoryFakeDomains:
		d.FakeDomains = values
	case CategoryBehaviors:
		d.Behaviors = values
	}
}

// Append adds values to a category, suppressing duplicates. It returns
// the number of values actually added and false for unknown categories.
func (d *PatternDocument) Append(category string, values []string) (int, bool) {
	current, ok := d.Category(category)
	if !ok {
		return 0, false
	}
	seen := make(map[string]bool, len(current))
	for _, v := range current {
		seen[v] = true
	}
	added := 0
	for _, v := range values {
		if v == "" || seen[v] {
			continue
		}
		current = append(current, v)
		seen[v] = true
		added++
	}
	d.setCategory(category, current)
	return added, true
}

// Normalize replaces nil category lists with empty ones so every loaded
// document exposes all five schema categories.
func (d *PatternDocument) Normalize() {
	for _, name := range PatternCategories {
		if values, _ := d.Category(name); values == nil {
			d.setCategory(name, []string{})
		}
	}
}

// ByCategory returns the document as a category → values map.
func (d *PatternDocument) ByCategory() map[string][]string {
	out := make(map[string][]string, len(PatternCategories))
	for _, name := range PatternCategories {
		values, _ := d.Category(name)
		out[name] = values
	}
	return out
}

// KnowledgeBase is a point-in-time snapshot of both pattern documents.
type KnowledgeBase struct {
	Scam     PatternDocument `json:"scam"`
	Positive PatternDocument `json:"positive"`
}
