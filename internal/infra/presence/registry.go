// Package presence keeps the in-memory map of online users to their realtime connection.
package presence

import (
	"sort"
	"sync"

	"devconnects/internal/domain/service"
)

// Registry is the process-local service.PresenceRegistry. It is lost on restart,
// which is fine since every client reconnects and re-records itself.
type Registry struct {
	mu    sync.RWMutex
	conns map[string]string // userID -> connID
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{conns: make(map[string]string)}
}

// NewPresenceRegistry exposes the registry through the domain interface for fx.
func NewPresenceRegistry(r *Registry) service.PresenceRegistry {
	return r
}

func (r *Registry) Record(userID, connID string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.conns[userID] = connID
}

func (r *Registry) Remove(userID string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.conns, userID)
}

// RemoveConnection deletes the entry only while it still belongs to connID, so a closing
// older tab cannot evict the user's newer connection.
func (r *Registry) RemoveConnection(userID, connID string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if current, ok := r.conns[userID]; !ok || current != connID {
		return false
	}
	delete(r.conns, userID)

	return true
}

func (r *Registry) Lookup(userID string) (string, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	connID, ok := r.conns[userID]

	return connID, ok
}

func (r *Registry) ListOnline() []string {
	r.mu.RLock()
	users := make([]string, 0, len(r.conns))
	for userID := range r.conns {
		users = append(users, userID)
	}
	r.mu.RUnlock()

	sort.Strings(users)

	return users
}

// Len returns the number of online users.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.conns)
}
