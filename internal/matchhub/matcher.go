package matchhub

import (
	"context"
	"errors"
	"log"
	"time"

	"peerlink/backend/internal/config"
	"peerlink/backend/internal/models"
	"peerlink/backend/internal/registry"
	"peerlink/backend/internal/store"
)

// MatcherService drains the wait queue two users at a time, creates a room
// for each pair and notifies both over their registry channels. One instance
// runs per matching-service process; the atomic pop keeps pairs exclusive,
// but nothing coordinates multiple workers beyond that.
type MatcherService struct {
	Registry *registry.Registry
	Store    store.Store

	// slots bounds concurrent post-match handling so a slow notification
	// never stalls the next dequeue. When all slots are busy the poll loop
	// blocks instead of queueing an unbounded backlog.
	slots chan struct{}
}

func NewMatcherService(reg *registry.Registry, s store.Store) *MatcherService {
	return &MatcherService{
		Registry: reg,
		Store:    s,
		slots:    make(chan struct{}, config.PostMatchWorkers),
	}
}

// Run polls the wait queue until ctx is cancelled. An under-filled queue
// backs off exponentially up to the cap; a successful pop resets the backoff.
func (m *MatcherService) Run(ctx context.Context) {
	log.Println("Matcher Service started.")

	backoff := config.InitialBackoff

	for {
		n, err := m.Store.QueueLen()
		if err != nil {
			log.Printf("Error polling match queue: %v", err)
			n = 0
		}

		if n < 2 {
			select {
			case <-ctx.Done():
				log.Println("Matcher Service stopped.")
				return
			case <-time.After(backoff):
			}
			backoff = min(backoff*2, config.MaxBackoff)
			continue
		}

		user1, user2, err := m.Store.PopPair()
		if err != nil {
			if !errors.Is(err, store.ErrNotEnoughQueued) {
				log.Printf("Error popping pair from queue: %v", err)
			}
			continue
		}

		backoff = config.InitialBackoff

		select {
		case <-ctx.Done():
			log.Println("Matcher Service stopped.")
			return
		case m.slots <- struct{}{}:
		}
		go func() {
			defer func() { <-m.slots }()
			m.handlePostMatch(user1, user2)
		}()
	}
}

// handlePostMatch persists the room and tells both users. The first-popped
// (longest-waiting) user becomes the initiator. Missing recipients are
// accepted: the matched event is fire-and-forget.
func (m *MatcherService) handlePostMatch(initiator, responder string) {
	roomCode := RoomCode(initiator, responder)

	if err := m.Store.SaveRoom(roomCode, initiator, responder); err != nil {
		log.Printf("Error saving room %s: %v", roomCode, err)
		return
	}

	isInitiator := true
	m.Registry.Send(initiator, models.Event{
		Event:     "matched",
		RoomCode:  roomCode,
		Initiator: &isInitiator,
	})

	isResponder := false
	m.Registry.Send(responder, models.Event{
		Event:     "matched",
		RoomCode:  roomCode,
		Initiator: &isResponder,
	})

	log.Printf("Matched %s <-> %s", initiator, responder)
}

// RoomCode derives the room identifier for a pair. Not collision-resistant
// when names embed the separator; the existing clients rely on this exact
// derivation.
func RoomCode(initiator, responder string) string {
	return initiator + "_" + responder
}
