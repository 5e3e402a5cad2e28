package core

import "github.com/mehedi/livecast/internal/domain"

// roomState holds one room's role assignment: at most one broadcaster and a
// set of viewers. A connection holds exactly one role per room, never both.
// Not safe for concurrent use on its own; the RoomTable's lock guards it.
type roomState struct {
	broadcaster domain.ConnID // "" means the slot is empty
	viewers     map[domain.ConnID]struct{}
}

func newRoomState() *roomState {
	return &roomState{viewers: make(map[domain.ConnID]struct{})}
}

func (r *roomState) empty() bool {
	return r.broadcaster == "" && len(r.viewers) == 0
}

// Snapshot is a read-only view of a room for status queries.
type Snapshot struct {
	Room        domain.Room   `json:"room"`
	Broadcaster domain.ConnID `json:"broadcasterId,omitempty"`
	ViewerCount int           `json:"viewerCount"`
}

func (r *roomState) snapshot(name domain.Room) Snapshot {
	return Snapshot{Room: name, Broadcaster: r.broadcaster, ViewerCount: len(r.viewers)}
}
