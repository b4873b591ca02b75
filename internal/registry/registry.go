package registry

import (
	"sync"

	"peerlink/backend/internal/models"
)

// Registry maps user identifiers to their live connections. Both services
// own one instance each; all mutation is serialized behind a mutex because
// sessions connect and disconnect independently.
//
// The registry tracks liveness only. Room membership is authoritative in the
// pairing state store, so a room can outlive any single connection churn.
type Registry struct {
	mu      sync.Mutex
	clients map[string]Client
}

func New() *Registry {
	return &Registry{
		clients: make(map[string]Client),
	}
}

// Connect registers the client under its user ID. A later connect for the
// same ID silently replaces the earlier entry; the replaced connection is
// not notified and dies on its next keepalive failure.
func (r *Registry) Connect(c Client) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.clients[c.GetUserID()] = c
}

// Disconnect removes the mapping for userID if present. Idempotent.
func (r *Registry) Disconnect(userID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.clients, userID)
}

// Exists reports whether userID has a live connection.
func (r *Registry) Exists(userID string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.clients[userID]
	return ok
}

// Send delivers ev to userID's connection, best effort. An unknown user or
// a full send buffer drops the event silently; delivery is never a promise
// the caller can wait on.
func (r *Registry) Send(userID string, ev models.Event) {
	r.mu.Lock()
	c, ok := r.clients[userID]
	r.mu.Unlock()
	if !ok {
		return
	}

	select {
	case c.GetSendChannel() <- ev:
	default:
		// Slow consumer; the event is dropped rather than blocking the sender.
	}
}
