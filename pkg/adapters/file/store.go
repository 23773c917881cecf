// Package file persists all sessions as a single JSON document keyed by
// user id, loaded in full and rewritten in full on every save. That is the
// layout the restaurant's original data file used, so existing documents
// keep working. A store-level mutex serializes the read-rewrite cycle; the
// session manager's per-user lock covers the surrounding load-modify-save.
package file

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"github.com/munteanooo/telegram-restaurant-bot/pkg/domain"
)

// Store implements ports.SessionStore over one JSON document.
type Store struct {
	path string
	mu   sync.Mutex
}

// NewStore creates a file store at the given path.
// If path is empty, it defaults to "restaurant_data.json".
func NewStore(path string) *Store {
	if path == "" {
		path = "restaurant_data.json"
	}
	return &Store{path: path}
}

// Path returns the backing file path.
func (s *Store) Path() string {
	return s.path
}

// load reads the whole document. A missing file is an empty store; an
// unreadable or corrupt file is a hard error, never silently treated as
// empty.
func (s *Store) load() (map[string]*domain.Session, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return make(map[string]*domain.Session), nil
		}
		return nil, fmt.Errorf("failed to read session document: %w", err)
	}

	doc := make(map[string]*domain.Session)
	if len(data) > 0 {
		if err := json.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("session document %s is corrupt: %w", s.path, err)
		}
	}
	return doc, nil
}

// flush rewrites the whole document. The write goes through a temp file
// and rename so a crash mid-write cannot corrupt the document.
func (s *Store) flush(doc map[string]*domain.Session) error {
	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to ensure session directory: %w", err)
		}
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal session document: %w", err)
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("failed to write session document: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("failed to replace session document: %w", err)
	}
	return nil
}

// Save overwrites the session for the given user id.
func (s *Store) Save(ctx context.Context, userID string, session *domain.Session) error {
	if userID == "" {
		return fmt.Errorf("userID cannot be empty")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.load()
	if err != nil {
		return err
	}
	doc[userID] = session.Clone()
	return s.flush(doc)
}

// Load retrieves the session for the given user id.
func (s *Store) Load(ctx context.Context, userID string) (*domain.Session, error) {
	if userID == "" {
		return nil, fmt.Errorf("userID cannot be empty")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.load()
	if err != nil {
		return nil, err
	}
	session, ok := doc[userID]
	if !ok {
		return nil, domain.ErrSessionNotFound
	}
	return session, nil
}

// Delete removes the session for the given user id.
func (s *Store) Delete(ctx context.Context, userID string) error {
	if userID == "" {
		return fmt.Errorf("userID cannot be empty")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.load()
	if err != nil {
		return err
	}
	if _, ok := doc[userID]; !ok {
		return nil
	}
	delete(doc, userID)
	return s.flush(doc)
}

// List returns all stored user ids.
func (s *Store) List(ctx context.Context) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.load()
	if err != nil {
		return nil, err
	}
	users := make([]string, 0, len(doc))
	for id := range doc {
		users = append(users, id)
	}
	sort.Strings(users)
	return users, nil
}
