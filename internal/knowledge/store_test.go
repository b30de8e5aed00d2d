package knowledge

import (
	"os"
	"path/filepath"
	"slices"
	"testing"

	"github.com/offersentry/offersentry/internal/domain"
	"github.com/offersentry/offersentry/internal/logging"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := NewStore(t.TempDir(), logging.NewNop())
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}
	return store
}

func TestNewStore_SeedsDefaults(t *testing.T) {
	dir := t.TempDir()
	store, err := NewStore(dir, logging.NewNop())
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}

	for _, name := range []string{scamFileName, positiveFileName} {
		if _, err := os.Stat(filepath.Join(dir, name)); err != nil {
			t.Errorf("expected seeded document %s: %v", name, err)
		}
	}

	kb := store.Snapshot()
	if !slices.Contains(kb.Scam.SuspiciousKeywords, "registration fee") {
		t.Errorf("missing seed keyword in %v", kb.Scam.SuspiciousKeywords)
	}
	if !slices.Contains(kb.Positive.LegitimateKeywords, "interview scheduled") {
		t.Errorf("missing seed keyword in %v", kb.Positive.LegitimateKeywords)
	}
}

func TestAppend_DeduplicatesAndPersists(t *testing.T) {
	store := newTestStore(t)

	added, err := store.Append(domain.DocumentScam, domain.CategorySuspiciousKeywords, []string{"gift card payment", "gift card payment", "advance courier fee"})
	if err != nil {
		t.Fatalf("Append: %v", err)
	}
	if added != 2 {
		t.Errorf("added: got %d, want 2", added)
	}

	// Appending the same values again is a no-op.
	added, err = store.Append(domain.DocumentScam, domain.CategorySuspiciousKeywords, []string{"gift card payment"})
	if err != nil {
		t.Fatalf("Append: %v", err)
	}
	if added != 0 {
		t.Errorf("added: got %d, want 0", added)
	}

	doc, err := store.Document(domain.DocumentScam)
	if err != nil {
		t.Fatalf("Document: %v", err)
	}
	if !slices.Contains(doc.SuspiciousKeywords, "gift card payment") {
		t.Errorf("append not persisted: %v", doc.SuspiciousKeywords)
	}
}

func TestAppend_RejectsUnknownCategory(t *testing.T) {
	store := newTestStore(t)

	if _, err := store.Append(domain.DocumentScam, "made_up_category", []string{"x"}); err == nil {
		t.Fatal("expected error for unknown category")
	}

	if _, err := store.Append("neither", domain.CategorySuspiciousKeywords, []string{"x"}); err == nil {
		t.Fatal("expected error for unknown document")
	}
}

func TestSnapshot_MalformedFileFallsBackToDefaults(t *testing.T) {
	dir := t.TempDir()
	store, err := NewStore(dir, logging.NewNop())
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}

	if err := os.WriteFile(filepath.Join(dir, scamFileName), []byte("{not json"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	kb := store.Snapshot()

	// All five categories are present and non-nil even when the file is
	// unreadable.
	for name, values := range kb.Scam.ByCategory() {
		if values == nil {
			t.Errorf("category %s is nil", name)
		}
	}
	if len(kb.Scam.SuspiciousKeywords) != 0 {
		t.Errorf("expected empty defaults, got %v", kb.Scam.SuspiciousKeywords)
	}
}

func TestDocument_PartialFileGetsAllCategories(t *testing.T) {
	dir := t.TempDir()
	store, err := NewStore(dir, logging.NewNop())
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}

	partial := []byte(`{"suspicious_keywords": ["advance fee"], "unknown_key": ["ignored"]}`)
	if err := os.WriteFile(filepath.Join(dir, positiveFileName), partial, 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	doc, err := store.Document(domain.DocumentPositive)
	if err != nil {
		t.Fatalf("Document: %v", err)
	}

	if !slices.Contains(doc.SuspiciousKeywords, "advance fee") {
		t.Errorf("missing kept keyword: %v", doc.SuspiciousKeywords)
	}
	for name, values := range doc.ByCategory() {
		if values == nil {
			t.Errorf("category %s is nil", name)
		}
	}
}
