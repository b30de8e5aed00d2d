package pattern

import (
	"slices"
	"strings"
	"testing"

	"github.com/offersentry/offersentry/internal/domain"
	"github.com/offersentry/offersentry/internal/knowledge"
	"github.com/offersentry/offersentry/internal/logging"
)

func newTestMatcher(t *testing.T) (*Matcher, *knowledge.Store) {
	t.Helper()
	store, err := knowledge.NewStore(t.TempDir(), logging.NewNop())
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}
	return NewMatcher(store, logging.NewNop()), store
}

func TestMatch_ScamKeywords(t *testing.T) {
	matcher, _ := newTestMatcher(t)

	result := matcher.Match("Dear candidate, pay the registration fee via Western Union for immediate hiring")

	suspicious := result.ScamMatches[domain.CategorySuspiciousKeywords]
	for _, want := range []string{"registration fee", "western union", "immediate hiring", "dear candidate"} {
		if !slices.Contains(suspicious, want) {
			t.Errorf("missing scam keyword %q in %v", want, suspicious)
		}
	}

	if !strings.Contains(result.Reasoning, "suspicious") {
		t.Errorf("unexpected reasoning: %s", result.Reasoning)
	}
}

func TestMatch_PositiveKeywords(t *testing.T) {
	matcher, _ := newTestMatcher(t)

	result := matcher.Match("Your interview scheduled for Monday; the offer letter follows after the technical round at microsoft.com")

	legit := result.PositiveMatches[domain.CategoryLegitimateKeywords]
	for _, want := range []string{"interview scheduled", "offer letter", "technical round"} {
		if !slices.Contains(legit, want) {
			t.Errorf("missing positive keyword %q in %v", want, legit)
		}
	}
	if !slices.Contains(result.PositiveMatches[domain.CategoryVerifiedDomains], "microsoft.com") {
		t.Errorf("missing verified domain in %v", result.PositiveMatches)
	}
}

func TestMatch_NothingFound(t *testing.T) {
	matcher, _ := newTestMatcher(t)

	result := matcher.Match("qq zz xx")

	if len(result.ScamMatches) != 0 || len(result.PositiveMatches) != 0 {
		t.Errorf("expected no matches, got scam=%v positive=%v", result.ScamMatches, result.PositiveMatches)
	}
	if result.Reasoning != "No known patterns were found in this text." {
		t.Errorf("unexpected reasoning: %s", result.Reasoning)
	}
}

func TestMatch_SeesStoreUpdates(t *testing.T) {
	matcher, store := newTestMatcher(t)

	text := "this posting mentions a gift card payment up front"
	before := matcher.Match(text)
	if len(before.ScamMatches[domain.CategorySuspiciousKeywords]) != 0 {
		t.Fatalf("unexpected match before append: %v", before.ScamMatches)
	}

	if _, err := store.Append(domain.DocumentScam, domain.CategorySuspiciousKeywords, []string{"gift card payment"}); err != nil {
		t.Fatalf("Append: %v", err)
	}

	after := matcher.Match(text)
	if !slices.Contains(after.ScamMatches[domain.CategorySuspiciousKeywords], "gift card payment") {
		t.Errorf("appended keyword not matched: %v", after.ScamMatches)
	}
}

func TestBuildReasoning_LimitsExamples(t *testing.T) {
	scam := map[string][]string{
		domain.CategorySuspiciousKeywords: {"a1", "a2", "a3", "a4", "a5"},
	}

	reasoning := buildReasoning(scam, nil)

	if strings.Contains(reasoning, "a4") {
		t.Errorf("expected at most %d examples, got: %s", reasoningExampleLimit, reasoning)
	}
	if !strings.Contains(reasoning, "a3") {
		t.Errorf("expected third example present: %s", reasoning)
	}
}
