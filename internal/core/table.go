package core

import (
	"sync"

	"github.com/mehedi/livecast/internal/domain"
	"github.com/rs/zerolog/log"
)

// RoomTable is the authoritative in-memory map of rooms. It owns every room
// record and enforces role exclusivity; it never touches transport resources.
type RoomTable struct {
	mu    sync.RWMutex
	rooms map[domain.Room]*roomState
}

func NewRoomTable() *RoomTable {
	return &RoomTable{rooms: make(map[domain.Room]*roomState)}
}

// getOrCreate must be called with mu held for writing.
func (t *RoomTable) getOrCreate(name domain.Room) *roomState {
	room, ok := t.rooms[name]
	if !ok {
		room = newRoomState()
		t.rooms[name] = room
		log.Info().Str("module", "core.table").Str("room", string(name)).Msg("room created")
	}
	return room
}

// AssignBroadcaster sets the room's broadcaster slot unconditionally,
// overwriting any previous holder. Last writer wins; contention is not
// arbitrated and the displaced holder is not told. If id was a viewer in
// this room it loses that role first.
func (t *RoomTable) AssignBroadcaster(name domain.Room, id domain.ConnID) {
	t.mu.Lock()
	defer t.mu.Unlock()
	room := t.getOrCreate(name)
	delete(room.viewers, id)
	room.broadcaster = id
	log.Info().Str("module", "core.table").Str("room", string(name)).Str("sid", string(id)).Msg("broadcaster assigned")
}

// AddViewer inserts id into the room's viewer set. No-op if already present.
// A connection holds one role per room: if id currently holds the broadcaster
// slot, re-declaring as viewer vacates it.
func (t *RoomTable) AddViewer(name domain.Room, id domain.ConnID) {
	t.mu.Lock()
	defer t.mu.Unlock()
	room := t.getOrCreate(name)
	if room.broadcaster == id {
		room.broadcaster = ""
	}
	room.viewers[id] = struct{}{}
}

// RemoveViewer deletes id from the room's viewer set. Idempotent; an unknown
// room or viewer is a no-op.
func (t *RoomTable) RemoveViewer(name domain.Room, id domain.ConnID) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if room, ok := t.rooms[name]; ok {
		delete(room.viewers, id)
	}
}

// ClearBroadcaster empties the broadcaster slot only if id still holds it,
// so a stale disconnect cannot clobber a newer claimant. Reports whether the
// slot was cleared.
func (t *RoomTable) ClearBroadcaster(name domain.Room, id domain.ConnID) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	room, ok := t.rooms[name]
	if !ok || room.broadcaster != id {
		return false
	}
	room.broadcaster = ""
	log.Info().Str("module", "core.table").Str("room", string(name)).Str("sid", string(id)).Msg("broadcaster cleared")
	return true
}

// Snapshot returns a read-only view of the room. Reading an unknown room
// yields an empty snapshot rather than creating it.
func (t *RoomTable) Snapshot(name domain.Room) Snapshot {
	t.mu.RLock()
	defer t.mu.RUnlock()
	if room, ok := t.rooms[name]; ok {
		return room.snapshot(name)
	}
	return Snapshot{Room: name}
}

// Viewers returns the current viewer set of a room.
func (t *RoomTable) Viewers(name domain.Room) []domain.ConnID {
	t.mu.RLock()
	defer t.mu.RUnlock()
	room, ok := t.rooms[name]
	if !ok {
		return nil
	}
	out := make([]domain.ConnID, 0, len(room.viewers))
	for id := range room.viewers {
		out = append(out, id)
	}
	return out
}

// Members returns every connection in the room: the broadcaster, if any,
// followed by all viewers.
func (t *RoomTable) Members(name domain.Room) []domain.ConnID {
	t.mu.RLock()
	defer t.mu.RUnlock()
	room, ok := t.rooms[name]
	if !ok {
		return nil
	}
	out := make([]domain.ConnID, 0, len(room.viewers)+1)
	if room.broadcaster != "" {
		out = append(out, room.broadcaster)
	}
	for id := range room.viewers {
		out = append(out, id)
	}
	return out
}

// List snapshots every room in the table.
func (t *RoomTable) List() []Snapshot {
	t.mu.RLock()
	defer t.mu.RUnlock()
	out := make([]Snapshot, 0, len(t.rooms))
	for name, room := range t.rooms {
		out = append(out, room.snapshot(name))
	}
	return out
}

// DeleteIfEmpty reclaims a room that has no broadcaster and no viewers.
func (t *RoomTable) DeleteIfEmpty(name domain.Room) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	room, ok := t.rooms[name]
	if !ok || !room.empty() {
		return false
	}
	delete(t.rooms, name)
	log.Info().Str("module", "core.table").Str("room", string(name)).Msg("empty room reclaimed")
	return true
}
