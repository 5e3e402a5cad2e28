package app

import (
	"encoding/json"

	"github.com/mehedi/livecast/internal/core"
	"github.com/mehedi/livecast/internal/domain"
	"github.com/rs/zerolog/log"
)

// Router resolves a target connection and forwards a payload verbatim over
// its transport. Delivery is fire-and-forget: a missing target or a full
// send buffer drops the message, and the sender is never told.
type Router struct {
	Registry *Registry
}

// Route forwards an already-encoded frame. Reports whether delivery was
// attempted, so callers may log drops; it never raises on a missing target.
func (rt *Router) Route(to domain.ConnID, frame core.Frame) bool {
	conn, ok := rt.Registry.Conn(to)
	if !ok {
		log.Debug().Str("module", "app.router").Str("to", string(to)).Msg("target not registered, dropped")
		return false
	}
	if err := conn.TrySend(frame); err != nil {
		log.Warn().Err(err).Str("module", "app.router").Str("to", string(to)).Msg("send failed, dropped")
		return false
	}
	return true
}

// Send marshals v and routes it.
func (rt *Router) Send(to domain.ConnID, v any) bool {
	b, err := json.Marshal(v)
	if err != nil {
		log.Error().Err(err).Str("module", "app.router").Msg("marshal")
		return false
	}
	return rt.Route(to, b)
}
