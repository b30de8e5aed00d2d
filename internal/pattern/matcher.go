// Package pattern scans cleaned text against the knowledge base's scam
// and positive keyword sets.
package pattern

import (
	"fmt"
	"strings"

	ahocorasick "github.com/cloudflare/ahocorasick"

	"github.com/offersentry/offersentry/internal/domain"
	"github.com/offersentry/offersentry/internal/knowledge"
	"github.com/offersentry/offersentry/internal/logging"
)

// reasoningExampleLimit caps how many matched keywords the reasoning text
// names per polarity.
const reasoningExampleLimit = 3

// Matcher checks text against the current knowledge-base snapshot. It
// reads the store on every call; a mid-run mutation by another run is
// visible to the next call, never retroactively.
type Matcher struct {
	store  *knowledge.Store
	logger logging.Logger
}

// NewMatcher creates a Matcher backed by the given store.
func NewMatcher(store *knowledge.Store, logger logging.Logger) *Matcher {
	return &Matcher{store: store, logger: logger}
}

// Match reports all scam and positive keywords contained in the text,
// grouped by knowledge-base category. Matching is case-insensitive
// substring containment.
func (m *Matcher) Match(cleanText string) domain.PatternMatchResult {
	kb := m.store.Snapshot()
	text := strings.ToLower(cleanText)

	result := domain.PatternMatchResult{
		ScamMatches:     matchDocument(text, &kb.Scam),
		PositiveMatches: matchDocument(text, &kb.Positive),
	}
	result.Reasoning = buildReasoning(result.ScamMatches, result.PositiveMatches)

	m.logger.Debug("pattern match complete",
		logging.Int("scam_categories", len(result.ScamMatches)),
		logging.Int("positive_categories", len(result.PositiveMatches)))
	return result
}

// matchDocument runs a single Aho-Corasick pass per category over the
// lowercased text.
func matchDocument(text string, doc *domain.PatternDocument) map[string][]string {
	matches := make(map[string][]string)
	for _, category := range domain.PatternCategories {
		keywords, _ := doc.Category(category)
		if len(keywords) == 0 {
			continue
		}

		lowered := make([]string, len(keywords))
		for i, kw := range keywords {
			lowered[i] = strings.ToLower(kw)
		}

		matcher := ahocorasick.NewStringMatcher(lowered)
		hits := matcher.Match([]byte(text))
		if len(hits) == 0 {
			continue
		}

		found := make([]string, 0, len(hits))
		seen := make(map[int]bool, len(hits))
		for _, idx := range hits {
			if idx >= len(keywords) || seen[idx] {
				continue
			}
			seen[idx] = true
			found = append(found, keywords[idx])
		}
		if len(found) > 0 {
			matches[category] = found
		}
	}
	return matches
}

// buildReasoning names at most three example keywords per polarity.
func buildReasoning(scam, positive map[string][]string) string {
	var parts []string

	if examples := flatten(scam, reasoningExampleLimit); len(examples) > 0 {
		parts = append(parts, fmt.Sprintf(
			"Found phrases commonly used in suspicious messages such as '%s'.",
			strings.Join(examples, "', '")))
	}
	if examples := flatten(positive, reasoningExampleLimit); len(examples) > 0 {
		parts = append(parts, fmt.Sprintf(
			"The message contains verified indicators from the trusted list, such as '%s'.",
			strings.Join(examples, "', '")))
	}
	if len(parts) == 0 {
		return "No known patterns were found in this text."
	}
	return strings.Join(parts, " ")
}

// flatten collects matched keywords across categories in canonical
// category order, up to limit.
func flatten(matches map[string][]string, limit int) []string {
	var out []string
	for _, category := range domain.PatternCategories {
		for _, kw := range matches[category] {
			if len(out) >= limit {
				return out
			}
			out = append(out, kw)
		}
	}
	return out
}
