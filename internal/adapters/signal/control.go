package signal

import (
	"github.com/pion/webrtc/v4"

	"github.com/mehedi/livecast/internal/domain"
)

func (ctl *Controller) handlePing(conn *wsConn) {
	resp := struct {
		Type string `json:"type"`
	}{
		Type: "pong",
	}
	ctl.sendJSON(conn, resp)
}

// sendIceServers pushes the configured STUN/TURN list right after connect so
// the client does not have to hardcode its own.
func (ctl *Controller) sendIceServers(sid domain.ConnID, conn *wsConn) {
	servers := make([]webrtc.ICEServer, 0, len(ctl.Cfg.StunServers))
	for _, url := range ctl.Cfg.StunServers {
		servers = append(servers, webrtc.ICEServer{URLs: []string{url}})
	}
	resp := struct {
		Type       string             `json:"type"`
		ID         domain.ConnID      `json:"id"`
		IceServers []webrtc.ICEServer `json:"iceServers"`
	}{
		Type:       "ice-servers",
		ID:         sid,
		IceServers: servers,
	}
	ctl.sendJSON(conn, resp)
}
