package httpapi

import (
	"math/rand"
	"strings"
	"sync"
	"time"

	"meeras-quiz/internal/quiz"
)

// sessionEntry serializes access to one quiz session. The engine itself is a
// single-goroutine state machine; the per-entry mutex keeps overlapping HTTP
// requests for the same session from interleaving.
type sessionEntry struct {
	mu       sync.Mutex
	session  *quiz.Session
	lastSeen time.Time
}

// SessionRegistry owns every active in-memory quiz session. Navigating away
// simply abandons the entry; a request carrying a session id that no longer
// resolves gets a 404, which is how stale in-flight interactions are
// discarded instead of mutating state nobody is looking at.
type SessionRegistry struct {
	mu      sync.Mutex
	entries map[string]*sessionEntry
	now     func() time.Time
}

func NewSessionRegistry() *SessionRegistry {
	return &SessionRegistry{
		entries: make(map[string]*sessionEntry),
		now:     time.Now,
	}
}

// Add registers a session and returns its generated id.
func (r *SessionRegistry) Add(session *quiz.Session) string {
	r.mu.Lock()
	defer r.mu.Unlock()

	id := generateSessionID()
	for _, taken := r.entries[id]; taken; _, taken = r.entries[id] {
		id = generateSessionID()
	}
	r.entries[id] = &sessionEntry{
		session:  session,
		lastSeen: r.now(),
	}
	return id
}

func (r *SessionRegistry) lookup(id string) (*sessionEntry, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	entry, ok := r.entries[id]
	if !ok {
		return nil, false
	}
	entry.lastSeen = r.now()
	return entry, true
}

// Remove drops a session. Returns false when the id was already gone.
func (r *SessionRegistry) Remove(id string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, ok := r.entries[id]
	delete(r.entries, id)
	return ok
}

// PurgeExpired evicts sessions idle for longer than ttl and reports how many
// were dropped. Called by the janitor; abandoned quizzes hold questions and
// options in memory until then.
func (r *SessionRegistry) PurgeExpired(ttl time.Duration) int {
	r.mu.Lock()
	defer r.mu.Unlock()

	cutoff := r.now().Add(-ttl)
	purged := 0
	for id, entry := range r.entries {
		if entry.lastSeen.Before(cutoff) {
			delete(r.entries, id)
			purged++
		}
	}
	return purged
}

func (r *SessionRegistry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.entries)
}

func generateSessionID() string {
	const alphabet = "abcdefghijklmnopqrstuvwxyz0123456789"
	const length = 12

	var builder strings.Builder
	builder.Grow(len("qs_") + length)
	builder.WriteString("qs_")
	for idx := 0; idx < length; idx++ {
		builder.WriteByte(alphabet[rand.Intn(len(alphabet))])
	}
	return builder.String()
}
