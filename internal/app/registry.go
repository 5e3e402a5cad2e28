package app

import (
	"context"
	"sync"

	"github.com/mehedi/livecast/internal/core"
	"github.com/mehedi/livecast/internal/domain"
	"github.com/rs/zerolog/log"
)

type connEntry struct {
	participant domain.Participant
	conn        core.SignalConnection
	cancel      context.CancelFunc
}

// Registry maps each live connection to its membership record and its
// transport endpoint. It exclusively owns the participant records.
type Registry struct {
	mu      sync.RWMutex
	entries map[domain.ConnID]*connEntry
}

func NewRegistry() *Registry {
	return &Registry{entries: make(map[domain.ConnID]*connEntry)}
}

// Register creates an empty participant record for a new connection.
func (r *Registry) Register(id domain.ConnID, conn core.SignalConnection, cancel context.CancelFunc) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries[id] = &connEntry{conn: conn, cancel: cancel}
	log.Info().Str("module", "app.registry").Str("sid", string(id)).Msg("connection registered")
}

// SetMembership attaches room, role and display name to the connection,
// overwriting any prior membership. A connection belongs to one room at most.
func (r *Registry) SetMembership(id domain.ConnID, room domain.Room, role domain.Role, name string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	entry, ok := r.entries[id]
	if !ok {
		return
	}
	entry.participant = domain.Participant{Room: room, Role: role, Name: name}
	log.Info().Str("module", "app.registry").Str("sid", string(id)).Str("room", string(room)).Str("role", string(role)).Msg("membership set")
}

// Lookup returns a copy of the participant record.
func (r *Registry) Lookup(id domain.ConnID) (domain.Participant, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if entry, ok := r.entries[id]; ok {
		return entry.participant, true
	}
	return domain.Participant{}, false
}

// Conn returns the connection's transport endpoint.
func (r *Registry) Conn(id domain.ConnID) (core.SignalConnection, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if entry, ok := r.entries[id]; ok {
		return entry.conn, true
	}
	return nil, false
}

// Remove deletes the participant record. Idempotent: removing an unknown
// connection is a no-op.
func (r *Registry) Remove(id domain.ConnID) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.entries[id]; !ok {
		return
	}
	delete(r.entries, id)
	log.Info().Str("module", "app.registry").Str("sid", string(id)).Msg("connection removed")
}

// Cancel fires the connection's cancel func, tearing down its pumps.
func (r *Registry) Cancel(id domain.ConnID) bool {
	r.mu.RLock()
	entry, ok := r.entries[id]
	r.mu.RUnlock()
	if !ok {
		return false
	}
	if entry.cancel != nil {
		entry.cancel()
	}
	return true
}
