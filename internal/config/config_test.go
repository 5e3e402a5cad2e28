package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	// Point at a non-existent env file so only defaults apply.
	t.Setenv("CONFIG_ENV", "nonexistent")

	cfg, err := Load()
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Port != 3000 {
		t.Fatalf("port = %d, want 3000", cfg.Port)
	}
	if cfg.DefaultRoom != "room" {
		t.Fatalf("default room = %q, want room", cfg.DefaultRoom)
	}
	if cfg.TokenTTL != time.Hour {
		t.Fatalf("token ttl = %s, want 1h", cfg.TokenTTL)
	}
	if cfg.ReadLimit != 32768 {
		t.Fatalf("read limit = %d", cfg.ReadLimit)
	}
	if len(cfg.StunServers) == 0 {
		t.Fatal("no default stun servers")
	}
	// Credentials have no safe default; Load warns instead of inventing one.
	if cfg.ServerSecret != "" {
		t.Fatalf("server secret defaulted to %q", cfg.ServerSecret)
	}
}
