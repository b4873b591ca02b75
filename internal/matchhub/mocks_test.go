package matchhub_test

import (
	"sync"

	"peerlink/backend/internal/models"
	"peerlink/backend/internal/store"
)

// fakeStore is an in-memory stand-in for the Redis pairing store, stateful
// so the matcher loop can be driven end to end.
type fakeStore struct {
	mu       sync.Mutex
	queue    []string
	rooms    map[string]map[string]string
	userRoom map[string]string
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		rooms:    make(map[string]map[string]string),
		userRoom: make(map[string]string),
	}
}

func (f *fakeStore) EnqueueUser(name string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, n := range f.queue {
		if n == name {
			return nil // sorted set keeps one entry per member
		}
	}
	f.queue = append(f.queue, name)
	return nil
}

func (f *fakeStore) RemoveFromQueue(name string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i, n := range f.queue {
		if n == name {
			f.queue = append(f.queue[:i], f.queue[i+1:]...)
			break
		}
	}
	return nil
}

func (f *fakeStore) QueueLen() (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return int64(len(f.queue)), nil
}

func (f *fakeStore) PopPair() (string, string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.queue) < 2 {
		return "", "", store.ErrNotEnoughQueued
	}
	a, b := f.queue[0], f.queue[1]
	f.queue = f.queue[2:]
	return a, b, nil
}

func (f *fakeStore) SaveRoom(roomCode, initiator, responder string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.rooms[roomCode] = map[string]string{
		initiator: models.RoleInitiator,
		responder: models.RoleResponder,
	}
	f.userRoom[initiator] = roomCode
	f.userRoom[responder] = roomCode
	return nil
}

func (f *fakeStore) RoomExists(roomCode string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	_, ok := f.rooms[roomCode]
	return ok, nil
}

func (f *fakeStore) GetRole(roomCode, user string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.rooms[roomCode][user], nil
}

func (f *fakeStore) GetRoom(roomCode string) (map[string]string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	room := make(map[string]string, len(f.rooms[roomCode]))
	for k, v := range f.rooms[roomCode] {
		room[k] = v
	}
	return room, nil
}

func (f *fakeStore) RoomForUser(user string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.userRoom[user], nil
}

func (f *fakeStore) DeleteRoom(roomCode string, members []string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.rooms, roomCode)
	for _, m := range members {
		delete(f.userRoom, m)
	}
	return nil
}

type MockClient struct {
	userID      string
	RecvChannel chan models.Event
}

func newMockClient(userID string) *MockClient {
	return &MockClient{
		userID:      userID,
		RecvChannel: make(chan models.Event, 10),
	}
}

func (c *MockClient) GetUserID() string { return c.userID }
func (c *MockClient) GetSendChannel() chan<- models.Event { return c.RecvChannel }
func (c *MockClient) Run() {}
func (c *MockClient) Close() {}
