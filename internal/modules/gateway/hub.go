package gateway

import (
	"net/http"
	"sync"

	socketio "github.com/zishang520/socket.io/v2/socket"
	"go.uber.org/zap"
)

// Hub owns the socket.io server and the lifecycle of every realtime
// connection: handshake, presence announcements and private-message relay.
// The SessionStore is injected so its lifetime is owned by the caller.
type Hub struct {
	mu        sync.Mutex
	userConns map[string]int // live connection count per user id

	store  *SessionStore
	sio    *socketio.Server
	logger *zap.Logger
}

func NewHub(store *SessionStore, logger *zap.Logger) *Hub {
	h := &Hub{
		userConns: make(map[string]int),
		store:     store,
		sio:       socketio.NewServer(nil, nil),
		logger:    logger,
	}
	h.registerHandlers()
	return h
}

func (h *Hub) registerHandlers() {
	nsp := h.sio.Of("/", nil)

	// Handshake: resolve or reject before any event handler attaches. The
	// identity rides on the socket itself, so a connection that dies before
	// the connection event fires leaves no state behind in the hub.
	nsp.Use(func(client *socketio.Socket, next func(*socketio.ExtendedError)) {
		ident, err := resolveIdentity(handshakeAuth(client), h.store)
		if err != nil {
			next(socketio.NewExtendedError(err.Error(), nil))
			return
		}
		client.SetData(ident)
		next(nil)
	})

	_ = nsp.On("connection", func(args ...any) {
		client, ok := args[0].(*socketio.Socket)
		if !ok {
			return
		}
		h.handleConnection(client)
	})
}

func (h *Hub) handleConnection(client *socketio.Socket) {
	ident, ok := client.Data().(connIdentity)
	if !ok {
		// middleware rejected or state was lost; nothing to serve
		client.Disconnect(true)
		return
	}

	h.addConnection(ident)

	_ = client.Emit(eventSession, sessionPayload{
		SessionID: ident.SessionID,
		UserID:    ident.UserID,
	})

	// Every connection of a user shares a room named by the user id, so a
	// message addressed to that user reaches all open tabs.
	client.Join(socketio.Room(ident.UserID))

	_ = client.Emit(eventUsers, h.store.All())
	_ = client.Broadcast().Emit(eventUserConnected, userConnectedPayload{
		ID:        ident.UserID,
		Connected: true,
	})

	_ = client.On(eventPrivateMessage, func(eventArgs ...any) {
		msg, ok := parsePrivateMessage(eventArgs...)
		if !ok {
			if h.logger != nil {
				h.logger.Debug("gateway dropped malformed private message",
					zap.String("sid", string(client.Id())))
			}
			return
		}
		// Deliver to the recipient's room and echo to the sender's other
		// connections; the emitting socket itself is excluded.
		client.To(socketio.Room(msg.recipientID())).
			To(socketio.Room(ident.UserID)).
			Emit(eventPrivateMessage, msg)
	})

	_ = client.On("disconnect", func(_ ...any) {
		if h.dropConnection(ident) {
			_ = client.Broadcast().Emit(eventUserDisconnected, ident.UserID)
		}
	})
}

// addConnection registers a live connection and marks its session online.
func (h *Hub) addConnection(ident connIdentity) {
	h.mu.Lock()
	h.userConns[ident.UserID]++
	h.mu.Unlock()

	h.store.Save(ident.SessionID, Session{
		UserID:    ident.UserID,
		Username:  ident.Username,
		Connected: true,
	})
}

// dropConnection unregisters one connection of a user. It reports whether
// that was the user's last one; only then is the session marked offline,
// so closing one tab never knocks the user's other tabs off the roster.
func (h *Hub) dropConnection(ident connIdentity) bool {
	h.mu.Lock()
	remaining := h.userConns[ident.UserID] - 1
	if remaining <= 0 {
		delete(h.userConns, ident.UserID)
		remaining = 0
	} else {
		h.userConns[ident.UserID] = remaining
	}
	h.mu.Unlock()

	if remaining > 0 {
		return false
	}

	h.store.Save(ident.SessionID, Session{
		UserID:    ident.UserID,
		Username:  ident.Username,
		Connected: false,
	})
	return true
}

// OnlineUsers reports how many distinct users hold at least one connection.
func (h *Hub) OnlineUsers() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.userConns)
}

// ConnectionCount reports the number of live connections for one user id.
func (h *Hub) ConnectionCount(userID string) int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.userConns[userID]
}

// Handler returns the socket.io HTTP handler mounted at /socket.io.
func (h *Hub) Handler() http.Handler {
	return h.sio.ServeHandler(nil)
}

// Close shuts the socket.io server down.
func (h *Hub) Close() {
	h.sio.Close(nil)
}

func handshakeAuth(client *socketio.Socket) map[string]interface{} {
	handshake := client.Handshake()
	if handshake == nil {
		return map[string]interface{}{}
	}
	return mapFromAny(handshake.Auth)
}
