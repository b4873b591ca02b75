package matchhub

import (
	"log"

	"peerlink/backend/internal/session"
	"peerlink/backend/internal/store"
)

// RegistrationService admits users into the wait queue.
type RegistrationService struct {
	Store      store.Store
	Reconciler *session.Reconciler
}

// Register appends name to the wait queue and then preempts any session the
// same name still holds from an earlier visit: a stale socket is dropped and
// the old room is collapsed, exactly as if that session had disconnected.
// The fresh queue entry is left untouched.
//
// Nothing stops two live clients claiming the same name; the queue keeps one
// entry per name and the last registration wins.
func (r *RegistrationService) Register(name string) error {
	if err := r.Store.EnqueueUser(name); err != nil {
		return err
	}

	r.Reconciler.Preempt(name)

	log.Printf("User %s queued for matching", name)
	return nil
}
