package signal

import (
	"encoding/json"

	"github.com/rs/zerolog/log"

	"github.com/mehedi/livecast/internal/domain"
)

// handleNegotiation relays offer, answer and ice-candidate messages. The sdp
// and candidate bodies are kept as raw JSON end to end; their validity is the
// two WebRTC endpoints' concern, never the relay's.
func (ctl *Controller) handleNegotiation(sid domain.ConnID, kind string, data []byte) {
	type signalPayload struct {
		Type      string          `json:"type"`
		To        string          `json:"to"`
		SDP       json.RawMessage `json:"sdp,omitempty"`
		Candidate json.RawMessage `json:"candidate,omitempty"`
	}
	var p signalPayload
	if err := json.Unmarshal(data, &p); err != nil {
		log.Error().Err(err).Str("module", "signal").Str("kind", kind).Msg("bad negotiation payload")
		return
	}

	delivered := ctl.Coord.Forward(sid, kind, domain.ConnID(p.To), p.SDP, p.Candidate)
	if !delivered {
		log.Debug().Str("module", "signal").Str("kind", kind).Str("from", string(sid)).Str("to", p.To).Msg("negotiation dropped")
	}
}
