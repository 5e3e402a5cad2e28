package app

import (
	"encoding/json"
	"sync"
	"time"

	"github.com/mehedi/livecast/internal/core"
	"github.com/mehedi/livecast/internal/domain"
	"github.com/rs/zerolog/log"
)

// Coordinator orchestrates membership: it validates the claimed role,
// mutates the room table and the registry together, and emits the
// membership-change notifications through the router.
//
// A single mutex serializes join/leave/disconnect so a room's mutations are
// applied in transport-delivery order. Notification delivery is non-blocking
// (TrySend), so nothing does I/O while the lock is held.
type Coordinator struct {
	Registry *Registry
	Rooms    *core.RoomTable
	Router   *Router

	// DefaultRoom is used when a join arrives without a room id.
	DefaultRoom domain.Room

	mu sync.Mutex
}

// Join places the connection into a room under the claimed role. The role is
// trusted as declared: a broadcaster claim overwrites the current holder
// without arbitration, and the displaced holder is not notified. Only live
// registered connections may join — a dead identity must never enter the
// room table, where nothing would ever clean it up.
func (c *Coordinator) Join(id domain.ConnID, room domain.Room, role domain.Role, name string) {
	if room == "" {
		room = c.DefaultRoom
	}
	if name == "" {
		name = domain.DefaultName
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	p, ok := c.Registry.Lookup(id)
	if !ok {
		log.Warn().Str("module", "app.coordinator").Str("sid", string(id)).Str("room", string(room)).Msg("join from unregistered connection, ignored")
		return
	}
	// One room per connection: switching rooms vacates the old one first, so
	// the identity never lingers in a room it no longer belongs to.
	if p.Joined() && p.Room != room {
		c.vacateRoom(id, p)
	}

	switch role {
	case domain.RoleBroadcaster:
		c.Rooms.AssignBroadcaster(room, id)
		c.Registry.SetMembership(id, room, role, name)
		ev := RoomStateEvent{Type: "room-state", BroadcasterID: id}
		for _, member := range c.Rooms.Members(room) {
			c.Router.Send(member, ev)
		}
	default:
		c.Rooms.AddViewer(room, id)
		c.Registry.SetMembership(id, room, domain.RoleViewer, name)
		// A viewer joining an empty stage has no peer to negotiate with yet.
		if b := c.Rooms.Snapshot(room).Broadcaster; b != "" {
			c.Router.Send(b, ViewerJoinedEvent{Type: "viewer-joined", ViewerID: id, ViewerName: name})
		}
	}
	log.Info().Str("module", "app.coordinator").Str("sid", string(id)).Str("room", string(room)).Str("role", string(role)).Msg("joined")
}

// Leave removes the connection from its room, notifies the peers that care,
// and deletes the participant record. Idempotent: an explicit leave and the
// transport disconnect that races it converge on the same state.
func (c *Coordinator) Leave(id domain.ConnID) {
	c.mu.Lock()
	defer c.mu.Unlock()

	p, ok := c.Registry.Lookup(id)
	if !ok {
		return
	}
	if p.Joined() {
		c.vacateRoom(id, p)
	}
	c.Registry.Remove(id)
	log.Info().Str("module", "app.coordinator").Str("sid", string(id)).Str("room", string(p.Room)).Msg("left")
}

// vacateRoom undoes the connection's presence in its current room and
// notifies the peers that care. Caller holds c.mu.
func (c *Coordinator) vacateRoom(id domain.ConnID, p domain.Participant) {
	switch p.Role {
	case domain.RoleBroadcaster:
		if c.Rooms.ClearBroadcaster(p.Room, id) {
			ev := BroadcasterOfflineEvent{Type: "broadcaster-offline"}
			for _, viewer := range c.Rooms.Viewers(p.Room) {
				c.Router.Send(viewer, ev)
			}
		}
	default:
		// Viewers slip out silently; the broadcaster sees the peer
		// connection drop on its own transport.
		c.Rooms.RemoveViewer(p.Room, id)
	}
	c.Rooms.DeleteIfEmpty(p.Room)
}

// Disconnect is the implicit leave fired by the transport layer. It releases
// everything the connection held no matter which termination path ran first.
func (c *Coordinator) Disconnect(id domain.ConnID) {
	c.Registry.Cancel(id)
	c.Leave(id)
}

// Forward relays a negotiation message (offer, answer, ice-candidate) to its
// target with the sender's identity attached. No role or state validation:
// any connected identity may signal any other, and the body is never parsed.
func (c *Coordinator) Forward(from domain.ConnID, kind string, to domain.ConnID, sdp, candidate json.RawMessage) bool {
	if to == "" {
		return false
	}
	return c.Router.Send(to, SignalEvent{Type: kind, From: from, SDP: sdp, Candidate: candidate})
}

// Chat broadcasts a chat message to every member of the sender's current
// room, sender included, with the sender's display name attached.
func (c *Coordinator) Chat(id domain.ConnID, message string) {
	name, room, ok := c.senderRoom(id)
	if !ok {
		return
	}
	ev := ChatEvent{Type: "chat-message", TS: time.Now().UnixMilli(), From: name, Message: message}
	for _, member := range c.Rooms.Members(room) {
		c.Router.Send(member, ev)
	}
}

// Gift broadcasts a gift notification to the sender's current room.
func (c *Coordinator) Gift(id domain.ConnID, giftType string) {
	name, room, ok := c.senderRoom(id)
	if !ok {
		return
	}
	ev := GiftEvent{Type: "gift", From: name, GiftType: giftType}
	for _, member := range c.Rooms.Members(room) {
		c.Router.Send(member, ev)
	}
}

func (c *Coordinator) senderRoom(id domain.ConnID) (name string, room domain.Room, ok bool) {
	p, ok := c.Registry.Lookup(id)
	if !ok || !p.Joined() {
		return "", "", false
	}
	name = p.Name
	if name == "" {
		name = string(id)
	}
	return name, p.Room, true
}
