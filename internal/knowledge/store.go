// Package knowledge owns the two persisted pattern documents that drive
// pattern matching and learning.
package knowledge

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/offersentry/offersentry/internal/domain"
	"github.com/offersentry/offersentry/internal/logging"
)

const (
	scamFileName     = "scam_patterns.json"
	positiveFileName = "positive_patterns.json"

	documentFileMode = 0o644
	documentDirMode  = 0o755
)

// Store serializes all read-modify-write access to the pattern documents.
// Readers get the last fully committed write; writes go through a temp
// file and an atomic rename so a failed apply never leaves a malformed
// document on disk.
type Store struct {
	mu           sync.Mutex
	scamPath     string
	positivePath string
	logger       logging.Logger
}

// NewStore creates a Store rooted at dir, seeding default documents for
// any that are missing.
func NewStore(dir string, logger logging.Logger) (*Store, error) {
	if err := os.MkdirAll(dir, documentDirMode); err != nil {
		return nil, fmt.Errorf("create knowledge dir: %w", err)
	}
	s := &Store{
		scamPath:     filepath.Join(dir, scamFileName),
		positivePath: filepath.Join(dir, positiveFileName),
		logger:       logger,
	}
	s.seedMissing()
	return s, nil
}

// Snapshot returns the current state of both documents. Read failures
// degrade to schema defaults; they are logged, never raised.
func (s *Store) Snapshot() domain.KnowledgeBase {
	s.mu.Lock()
	defer s.mu.Unlock()
	return domain.KnowledgeBase{
		Scam:     s.loadLocked(s.scamPath),
		Positive: s.loadLocked(s.positivePath),
	}
}

// Document returns one document by name.
func (s *Store) Document(name string) (domain.PatternDocument, error) {
	path, err := s.pathFor(name)
	if err != nil {
		return domain.PatternDocument{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loadLocked(path), nil
}

// Append merges values into one category of one document, suppressing
// duplicates, and persists the result atomically. Unknown documents and
// categories are rejected. It returns the number of values added.
func (s *Store) Append(document, category string, values []string) (int, error) {
	path, err := s.pathFor(document)
	if err != nil {
		return 0, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	doc := s.loadLocked(path)
	added, ok := doc.Append(category, values)
	if !ok {
		return 0, fmt.Errorf("unknown pattern category: %s", category)
	}
	if added == 0 {
		return 0, nil
	}
	if err := s.saveLocked(path, &doc); err != nil {
		return 0, err
	}

	s.logger.Info("knowledge base updated",
		logging.String("document", document),
		logging.String("category", category),
		logging.Int("added", added))
	return added, nil
}

func (s *Store) pathFor(document string) (string, error) {
	switch document {
	case domain.DocumentScam:
		return s.scamPath, nil
	case domain.DocumentPositive:
		return s.positivePath, nil
	default:
		return "", fmt.Errorf("unknown pattern document: %s", document)
	}
}

// loadLocked reads a document, returning schema defaults on any failure.
// Unknown top-level keys are ignored by the struct decode.
func (s *Store) loadLocked(path string) domain.PatternDocument {
	var doc domain.PatternDocument
	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			s.logger.Warn("knowledge document unreadable, using defaults",
				logging.String("path", path), logging.Error(err))
		}
		doc.Normalize()
		return doc
	}
	if err := json.Unmarshal(data, &doc); err != nil {
		s.logger.Warn("knowledge document malformed, using defaults",
			logging.String("path", path), logging.Error(err))
		doc = domain.PatternDocument{}
	}
	doc.Normalize()
	return doc
}

// saveLocked writes the document to a temp file and swaps it into place.
func (s *Store) saveLocked(path string, doc *domain.PatternDocument) error {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("encode pattern document: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), ".patterns-*")
	if err != nil {
		return fmt.Errorf("create temp document: %w", err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return fmt.Errorf("write pattern document: %w", err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("close pattern document: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("replace pattern document: %w", err)
	}
	return nil
}

// seedMissing writes the default documents for any file not yet on disk.
func (s *Store) seedMissing() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := os.Stat(s.scamPath); os.IsNotExist(err) {
		doc := defaultScamDocument()
		if saveErr := s.saveLocked(s.scamPath, &doc); saveErr != nil {
			s.logger.Warn("failed to seed scam patterns", logging.Error(saveErr))
		} else {
			s.logger.Info("seeded scam pattern document", logging.String("path", s.scamPath))
		}
	}
	if _, err := os.Stat(s.positivePath); os.IsNotExist(err) {
		doc := defaultPositiveDocument()
		if saveErr := s.saveLocked(s.positivePath, &doc); saveErr != nil {
			s.logger.Warn("failed to seed positive patterns", logging.Error(saveErr))
		} else {
			s.logger.Info("seeded positive pattern document", logging.String("path", s.positivePath))
		}
	}
}
