package app

import (
	"testing"

	"github.com/mehedi/livecast/internal/core"
	"github.com/mehedi/livecast/internal/domain"
)

type nullConn struct{}

func (nullConn) TrySend(core.Frame) error { return nil }
func (nullConn) Close()                   {}

func TestRegistryLifecycle(t *testing.T) {
	r := NewRegistry()
	r.Register("a", nullConn{}, nil)

	p, ok := r.Lookup("a")
	if !ok {
		t.Fatal("registered connection not found")
	}
	if p.Joined() {
		t.Fatal("fresh participant already joined")
	}

	r.SetMembership("a", "r1", domain.RoleViewer, "Alice")
	p, _ = r.Lookup("a")
	if p.Room != "r1" || p.Role != domain.RoleViewer || p.Name != "Alice" {
		t.Fatalf("participant = %+v", p)
	}

	// Membership is single-room: a second set overwrites the first.
	r.SetMembership("a", "r2", domain.RoleBroadcaster, "Alice")
	p, _ = r.Lookup("a")
	if p.Room != "r2" || p.Role != domain.RoleBroadcaster {
		t.Fatalf("participant after overwrite = %+v", p)
	}

	r.Remove("a")
	if _, ok := r.Lookup("a"); ok {
		t.Fatal("removed connection still present")
	}
}

func TestRegistryRemoveUnknownIsNoop(t *testing.T) {
	r := NewRegistry()
	r.Remove("ghost")
	r.SetMembership("ghost", "r1", domain.RoleViewer, "x")
	if _, ok := r.Lookup("ghost"); ok {
		t.Fatal("SetMembership resurrected an unknown connection")
	}
}

func TestRegistryCancel(t *testing.T) {
	r := NewRegistry()
	fired := false
	r.Register("a", nullConn{}, func() { fired = true })

	if !r.Cancel("a") {
		t.Fatal("cancel on live connection returned false")
	}
	if !fired {
		t.Fatal("cancel func not fired")
	}
	if r.Cancel("ghost") {
		t.Fatal("cancel on unknown connection returned true")
	}
}
