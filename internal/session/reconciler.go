package session

import (
	"log"

	"peerlink/backend/internal/models"
	"peerlink/backend/internal/registry"
	"peerlink/backend/internal/store"
)

// Reconciler tears down a user's session state when their socket drops or
// when a re-registration preempts a previous session. Both services run one;
// only the matching service sets DropQueued, since only it owns wait-queue
// entries.
type Reconciler struct {
	Registry *registry.Registry
	Store    store.Store

	// DropQueued removes the user's wait-queue entry during Disconnected.
	DropQueued bool
}

// Disconnected handles a closed socket: the user leaves the registry and the
// wait queue, their peer is told, and the room records are deleted. Safe to
// run twice for the same user; the second run finds no room and stops.
func (r *Reconciler) Disconnected(username string) {
	r.Registry.Disconnect(username)

	if r.DropQueued {
		if err := r.Store.RemoveFromQueue(username); err != nil {
			log.Printf("Error removing %s from queue: %v", username, err)
		}
	}

	r.teardownRoom(username)
}

// Preempt cleans up a stale prior session when the same name registers
// again. The wait queue is left alone: registration has just written the
// user's fresh entry.
func (r *Reconciler) Preempt(username string) {
	r.Registry.Disconnect(username)
	r.teardownRoom(username)
}

func (r *Reconciler) teardownRoom(username string) {
	roomCode, err := r.Store.RoomForUser(username)
	if err != nil {
		log.Printf("Error resolving room for %s: %v", username, err)
		return
	}
	if roomCode == "" {
		return // user was not in any room
	}

	room, err := r.Store.GetRoom(roomCode)
	if err != nil {
		log.Printf("Error loading room %s: %v", roomCode, err)
		return
	}

	// The disconnecting user's own reverse-index entry goes too, even when
	// the room hash already expired out from under it.
	members := []string{username}
	for peer := range room {
		if peer == username {
			continue
		}
		members = append(members, peer)
		r.Registry.Send(peer, models.Event{
			Event:   "peer-disconnected",
			Message: username + " has disconnected",
		})
	}

	if err := r.Store.DeleteRoom(roomCode, members); err != nil {
		log.Printf("Error deleting room %s: %v", roomCode, err)
		return
	}

	log.Printf("Room %s torn down after %s disconnected", roomCode, username)
}
