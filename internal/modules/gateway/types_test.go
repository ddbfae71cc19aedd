package gateway

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePrivateMessage(t *testing.T) {
	msg, ok := parsePrivateMessage(map[string]interface{}{
		"content": "hey!",
		"to":      map[string]interface{}{"_id": "u2", "firstName": "Grace"},
		"from":    map[string]interface{}{"_id": "u1", "firstName": "Ada"},
	})
	require.True(t, ok)
	assert.Equal(t, "hey!", msg.Content)
	assert.Equal(t, "u2", msg.recipientID())
	assert.Equal(t, "Ada", msg.From["firstName"])
}

func TestParsePrivateMessageMissingRecipient(t *testing.T) {
	_, ok := parsePrivateMessage(map[string]interface{}{
		"content": "hey!",
		"from":    map[string]interface{}{"_id": "u1"},
	})
	assert.False(t, ok)

	_, ok = parsePrivateMessage()
	assert.False(t, ok)

	_, ok = parsePrivateMessage(nil)
	assert.False(t, ok)
}

func TestParsePrivateMessageFromStruct(t *testing.T) {
	// payloads decoded by the transport may arrive as typed values; the
	// map conversion goes through JSON
	type wire struct {
		Content string         `json:"content"`
		To      map[string]any `json:"to"`
	}
	msg, ok := parsePrivateMessage(wire{Content: "yo", To: map[string]any{"_id": "u7"}})
	require.True(t, ok)
	assert.Equal(t, "u7", msg.recipientID())
}
