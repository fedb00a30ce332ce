package host

import (
	"strings"
	"sync"

	"github.com/1psychoQAQ/my-translator/internal/errs"
	"github.com/1psychoQAQ/my-translator/internal/protocol"
)

// MemoryWordStore keeps saved words for the lifetime of the helper
// process. Durable storage lives behind the WordStore interface in an
// external collaborator.
type MemoryWordStore struct {
	mu      sync.Mutex
	byID    map[string]*protocol.SaveWordPayload
	byText  map[string]string // normalized text -> id
}

// NewMemoryWordStore creates an empty store.
func NewMemoryWordStore() *MemoryWordStore {
	return &MemoryWordStore{
		byID:   make(map[string]*protocol.SaveWordPayload),
		byText: make(map[string]string),
	}
}

// Save stores an entry, rejecting duplicates by id or by text.
func (s *MemoryWordStore) Save(entry *protocol.SaveWordPayload) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := strings.ToLower(strings.TrimSpace(entry.Text))
	if _, exists := s.byID[entry.ID]; exists {
		return errs.New(errs.CodeDuplicateEntry)
	}
	if _, exists := s.byText[key]; exists {
		return errs.New(errs.CodeDuplicateEntry)
	}

	saved := *entry
	s.byID[entry.ID] = &saved
	s.byText[key] = entry.ID
	return nil
}

// Len reports the number of stored entries.
func (s *MemoryWordStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.byID)
}
