package app

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"encoding/json"
	"time"
)

// TokenIssuer signs short-lived credentials for the external media-relay
// service. The format is the relay's own: hex HMAC-SHA256 digest of the JSON
// payload, a dot, then the base64 payload.
type TokenIssuer struct {
	AppID  int64
	Secret string
	TTL    time.Duration
}

type tokenPayload struct {
	AppID  int64  `json:"app_id"`
	UserID string `json:"user_id"`
	CTime  int64  `json:"ctime"`
	Expire int64  `json:"expire"`
	Body   struct {
		RoomID    string      `json:"room_id"`
		Privilege map[int]int `json:"privilege"`
	} `json:"payload"`
}

// TokenInfo is the credential handed to the client.
type TokenInfo struct {
	AppID  int64  `json:"appID"`
	UserID string `json:"userID"`
	RoomID string `json:"roomID"`
	Token  string `json:"token"`
	Expire int64  `json:"expire"`
}

// Issue builds a credential for userID in roomID, valid for the issuer's TTL.
func (t *TokenIssuer) Issue(userID, roomID string) (TokenInfo, error) {
	expire := int64(t.TTL.Seconds())

	p := tokenPayload{
		AppID:  t.AppID,
		UserID: userID,
		CTime:  time.Now().Unix(),
		Expire: expire,
	}
	p.Body.RoomID = roomID
	p.Body.Privilege = map[int]int{1: 1, 2: 1} // login + publish

	raw, err := json.Marshal(p)
	if err != nil {
		return TokenInfo{}, err
	}

	mac := hmac.New(sha256.New, []byte(t.Secret))
	mac.Write(raw)
	digest := hex.EncodeToString(mac.Sum(nil))
	token := digest + "." + base64.StdEncoding.EncodeToString(raw)

	return TokenInfo{
		AppID:  t.AppID,
		UserID: userID,
		RoomID: roomID,
		Token:  token,
		Expire: expire,
	}, nil
}
