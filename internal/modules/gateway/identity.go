package gateway

import "errors"

// ErrHandshakeRejected is surfaced to the client as a connect_error when the
// handshake carries no session id at all.
var ErrHandshakeRejected = errors.New("Trouble connecting. Please reload")

// connIdentity is the identity attached to one live connection.
type connIdentity struct {
	SessionID string
	UserID    string
	Username  string
}

// resolveIdentity derives the connection identity from the handshake auth
// payload. A known session id wins over whatever the client claims in the
// same payload (reconnect path); an unknown session id falls through to the
// client's claims and still succeeds. Only a missing `_id` is rejected.
// The store is never written here.
func resolveIdentity(auth map[string]interface{}, store *SessionStore) (connIdentity, error) {
	sessionID := strFromAny(auth["_id"])
	if sessionID != "" {
		if sess, ok := store.Find(sessionID); ok {
			return connIdentity{
				SessionID: sessionID,
				UserID:    sess.UserID,
				Username:  sess.Username,
			}, nil
		}
	}

	ident := connIdentity{
		SessionID: sessionID,
		UserID:    strFromAny(auth["userId"]),
		Username:  strFromAny(auth["username"]),
	}
	if sessionID == "" {
		return ident, ErrHandshakeRejected
	}
	return ident, nil
}
