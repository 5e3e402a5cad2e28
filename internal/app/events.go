package app

import (
	"encoding/json"

	"github.com/mehedi/livecast/internal/domain"
)

// Server-to-client event payloads. Field names are part of the wire contract
// with the web client.

type RoomStateEvent struct {
	Type          string        `json:"type"`
	BroadcasterID domain.ConnID `json:"broadcasterId"`
}

type ViewerJoinedEvent struct {
	Type       string        `json:"type"`
	ViewerID   domain.ConnID `json:"viewerId"`
	ViewerName string        `json:"viewerName"`
}

type BroadcasterOfflineEvent struct {
	Type string `json:"type"`
}

// SignalEvent is a forwarded negotiation message: the sender's identity plus
// the untouched SDP or candidate body. Exactly one of SDP/Candidate is set,
// but the relay never checks — the body belongs to the two endpoints.
type SignalEvent struct {
	Type      string          `json:"type"`
	From      domain.ConnID   `json:"from"`
	SDP       json.RawMessage `json:"sdp,omitempty"`
	Candidate json.RawMessage `json:"candidate,omitempty"`
}

type ChatEvent struct {
	Type    string `json:"type"`
	TS      int64  `json:"ts"`
	From    string `json:"from"`
	Message string `json:"message"`
}

type GiftEvent struct {
	Type     string `json:"type"`
	From     string `json:"from"`
	GiftType string `json:"giftType"`
}
