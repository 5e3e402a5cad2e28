package signal

import (
	"encoding/json"

	"github.com/rs/zerolog/log"

	"github.com/mehedi/livecast/internal/domain"
)

func (ctl *Controller) handleChat(sid domain.ConnID, data []byte) {
	type chatPayload struct {
		Type    string `json:"type"`
		RoomID  string `json:"roomId"`
		Message string `json:"message"`
	}
	var p chatPayload
	if err := json.Unmarshal(data, &p); err != nil {
		log.Error().Err(err).Str("module", "signal").Msg("bad chat payload")
		return
	}
	ctl.Coord.Chat(sid, p.Message)
}

func (ctl *Controller) handleGift(sid domain.ConnID, data []byte) {
	type giftPayload struct {
		Type     string `json:"type"`
		RoomID   string `json:"roomId"`
		GiftType string `json:"giftType"`
	}
	var p giftPayload
	if err := json.Unmarshal(data, &p); err != nil {
		log.Error().Err(err).Str("module", "signal").Msg("bad gift payload")
		return
	}
	ctl.Coord.Gift(sid, p.GiftType)
}
