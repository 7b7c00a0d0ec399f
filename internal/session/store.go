package session

import (
	"sync"

	"github.com/draftops/mflgate/internal/mfl"
)

// Entry is the session state created by one successful login: the upstream credential
// plus the league/season context every later query needs. Entries are value types; the
// store hands out copies, never the stored entry itself.
type Entry struct {
	Credential mfl.Credential
	LeagueID   string
	Year       string
}

// Store maps locally issued bearer tokens to session entries. It is the only shared
// mutable state in the gateway. All critical sections are a single map operation; the
// lock is never held across a network call.
type Store struct {
	mu      sync.RWMutex
	entries map[string]Entry
}

func NewStore() *Store {
	return &Store{entries: make(map[string]Entry)}
}

// Insert records the entry under the given token. The entry must be fully populated
// before insertion; a token present in the store always resolves to a complete entry.
// An existing token is overwritten deterministically.
func (s *Store) Insert(token string, entry Entry) {
	s.mu.Lock()
	s.entries[token] = entry
	s.mu.Unlock()
}

// Get returns a copy of the entry for the token, if present.
func (s *Store) Get(token string) (Entry, bool) {
	s.mu.RLock()
	entry, ok := s.entries[token]
	s.mu.RUnlock()
	return entry, ok
}

// Clear drains the store and reports how many entries were removed. Used at teardown so
// credentials held by live sessions are released deterministically.
func (s *Store) Clear() int {
	s.mu.Lock()
	n := len(s.entries)
	s.entries = make(map[string]Entry)
	s.mu.Unlock()
	return n
}

// Len reports the number of live sessions.
func (s *Store) Len() int {
	s.mu.RLock()
	n := len(s.entries)
	s.mu.RUnlock()
	return n
}
