// Package domain contains entity types without logic, just meta-data.
package domain

// ConnID identifies one live transport connection. Minted on connect,
// dead on disconnect, never reused within a process lifetime.
type ConnID string

type Role string

const (
	RoleBroadcaster Role = "broadcaster"
	RoleViewer      Role = "viewer"
)

const DefaultName = "Guest"

// Participant is the per-connection membership record: which room the
// connection sits in, under which role, and its display name. Zero value
// means "connected but not joined anywhere yet".
type Participant struct {
	Room Room
	Role Role
	Name string
}

func (p Participant) Joined() bool { return p.Room != "" }
