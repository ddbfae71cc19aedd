package gateway

import (
	"encoding/json"
	"strings"
)

// Event names exchanged with the web client. The payload shapes are a wire
// contract shared with the frontend socket slice; do not reshape them.
const (
	eventSession          = "session"
	eventUsers            = "users"
	eventUserConnected    = "userConnected"
	eventUserDisconnected = "userDisconnected"
	eventPrivateMessage   = "privateMessage"
)

// sessionPayload is the private acknowledgment sent right after the handshake.
type sessionPayload struct {
	SessionID string `json:"sessionId"`
	UserID    string `json:"userId"`
}

// userConnectedPayload announces a user's arrival to everyone else.
type userConnectedPayload struct {
	ID        string `json:"_id"`
	Connected bool   `json:"connected"`
}

// privateMessagePayload is relayed between clients as-is; to/from are
// client-authored objects, the server only routes on to._id.
type privateMessagePayload struct {
	Content string                 `json:"content"`
	To      map[string]interface{} `json:"to"`
	From    map[string]interface{} `json:"from"`
}

func (p privateMessagePayload) recipientID() string {
	return strFromAny(p.To["_id"])
}

func parsePrivateMessage(args ...any) (privateMessagePayload, bool) {
	if len(args) == 0 || args[0] == nil {
		return privateMessagePayload{}, false
	}

	raw := mapFromAny(args[0])
	msg := privateMessagePayload{
		Content: strFromAny(raw["content"]),
		To:      mapFromAny(raw["to"]),
		From:    mapFromAny(raw["from"]),
	}
	if msg.recipientID() == "" {
		return privateMessagePayload{}, false
	}
	return msg, true
}

func mapFromAny(v interface{}) map[string]interface{} {
	switch typed := v.(type) {
	case nil:
		return map[string]interface{}{}
	case map[string]interface{}:
		return typed
	default:
		data, err := json.Marshal(typed)
		if err != nil {
			return map[string]interface{}{}
		}
		out := map[string]interface{}{}
		if err := json.Unmarshal(data, &out); err != nil {
			return map[string]interface{}{}
		}
		return out
	}
}

func strFromAny(v interface{}) string {
	switch typed := v.(type) {
	case string:
		return strings.TrimSpace(typed)
	default:
		return ""
	}
}
