package signal

import (
	"encoding/json"

	"github.com/rs/zerolog/log"

	"github.com/mehedi/livecast/internal/domain"
)

func (ctl *Controller) handleJoin(sid domain.ConnID, data []byte) {
	type joinPayload struct {
		Type     string `json:"type"`
		RoomID   string `json:"roomId"`
		Role     string `json:"role"`
		UserName string `json:"userName"`
	}
	var p joinPayload
	if err := json.Unmarshal(data, &p); err != nil {
		log.Error().Err(err).Str("module", "signal").Msg("bad join payload")
		return
	}

	ctl.Coord.Join(sid, domain.Room(p.RoomID), domain.Role(p.Role), p.UserName)
}

func (ctl *Controller) handleLeave(sid domain.ConnID) {
	// The registry's record decides what gets cleaned up; the roomId on the
	// wire is informational only.
	ctl.Coord.Leave(sid)
}
