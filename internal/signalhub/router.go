package signalhub

import (
	"log"

	"peerlink/backend/internal/models"
	"peerlink/backend/internal/registry"
	"peerlink/backend/internal/store"
)

// Router relays WebRTC signaling between the two members of a room. Each
// live signalling socket feeds its decoded envelopes here from its own read
// pump, so HandleMessage runs per-connection and concurrently across
// connections.
//
// Only "join" consults the room record. Once a client is verified, "signal"
// messages are forwarded on a liveness check alone; the room record is
// trusted until the room is torn down.
type Router struct {
	Registry *registry.Registry
	Store    store.Store
}

// HandleMessage processes one inbound envelope from username. Unknown event
// values are ignored without a reply.
func (r *Router) HandleMessage(username string, msg models.SignalMessage) {
	switch msg.Event {
	case "join":
		r.handleJoin(username, msg)
	case "signal":
		r.handleSignal(username, msg)
	}
}

// handleJoin verifies the sender against the room record and answers with
// the role the matchmaker assigned. The room must still exist and both the
// sender and the named target must hold a role in it.
func (r *Router) handleJoin(username string, msg models.SignalMessage) {
	userRole, ok := r.verifyRoomAndRole(msg.RoomCode, username, msg.Target)
	if !ok {
		r.Registry.Send(username, models.Event{
			Event:   "error",
			Message: "Invalid room or role",
		})
		return
	}

	r.Registry.Send(username, models.Event{
		Event:    "verified",
		RoomCode: msg.RoomCode,
		Role:     userRole,
	})

	log.Printf("Join successful for user %s in room %s", username, msg.RoomCode)
}

// handleSignal forwards the payload verbatim to the target, or reports an
// unreachable peer back to the sender. The dropped message is not queued.
func (r *Router) handleSignal(username string, msg models.SignalMessage) {
	if !r.Registry.Exists(msg.Target) {
		r.Registry.Send(username, models.Event{
			Event:   "error",
			Message: "Peer not connected",
		})
		return
	}

	r.Registry.Send(msg.Target, models.Event{
		Event:    "signal",
		RoomCode: msg.RoomCode,
		From:     username,
		Type:     msg.Type,
		Data:     msg.Data,
	})
}

func (r *Router) verifyRoomAndRole(roomCode, user, peer string) (string, bool) {
	exists, err := r.Store.RoomExists(roomCode)
	if err != nil {
		log.Printf("Error checking room %s: %v", roomCode, err)
		return "", false
	}
	if !exists {
		return "", false
	}

	userRole, err := r.Store.GetRole(roomCode, user)
	if err != nil {
		log.Printf("Error reading role of %s in room %s: %v", user, roomCode, err)
		return "", false
	}
	peerRole, err := r.Store.GetRole(roomCode, peer)
	if err != nil {
		log.Printf("Error reading role of %s in room %s: %v", peer, roomCode, err)
		return "", false
	}

	if userRole == "" || peerRole == "" {
		return "", false
	}
	return userRole, true
}
