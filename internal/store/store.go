package store

import "errors"

// ErrNotEnoughQueued is returned by PopPair when fewer than two users could
// be removed from the wait queue. A queued user may disconnect between the
// length poll and the pop, so the pop can come up short.
var ErrNotEnoughQueued = errors.New("fewer than two users queued")

// Store is the pairing state shared by the matching and signalling services.
// Both sides agree on the key schema and TTL; there is no other coupling
// between them.
//
// Queue entries are FIFO by enqueue time. Rooms map each of their two member
// names to a role and expire after the room TTL, after which they must be
// treated as absent. The reverse index resolves a user's room without a room
// code and lives and dies with the room.
type Store interface {
	EnqueueUser(name string) error
	RemoveFromQueue(name string) error
	QueueLen() (int64, error)
	// PopPair atomically removes and returns the two longest-waiting users.
	PopPair() (string, string, error)

	// SaveRoom writes the room hash and both reverse-index entries, all with
	// the room TTL.
	SaveRoom(roomCode, initiator, responder string) error
	RoomExists(roomCode string) (bool, error)
	// GetRole returns the role assigned to user in the room, or "" when the
	// room or the membership is missing.
	GetRole(roomCode, user string) (string, error)
	// GetRoom returns the member-to-role mapping. An empty map means the
	// room is absent or expired.
	GetRoom(roomCode string) (map[string]string, error)
	// RoomForUser resolves the reverse index; "" when the user has no room.
	RoomForUser(user string) (string, error)
	// DeleteRoom removes the room record and every member's reverse-index
	// entry.
	DeleteRoom(roomCode string, members []string) error
}
