package signalhub_test

import (
	"github.com/stretchr/testify/mock"

	"peerlink/backend/internal/models"
)

type MockStore struct {
	mock.Mock
}

func (m *MockStore) EnqueueUser(name string) error {
	args := m.Called(name)
	return args.Error(0)
}

func (m *MockStore) RemoveFromQueue(name string) error {
	args := m.Called(name)
	return args.Error(0)
}

func (m *MockStore) QueueLen() (int64, error) {
	args := m.Called()
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockStore) PopPair() (string, string, error) {
	args := m.Called()
	return args.String(0), args.String(1), args.Error(2)
}

func (m *MockStore) SaveRoom(roomCode, initiator, responder string) error {
	args := m.Called(roomCode, initiator, responder)
	return args.Error(0)
}

func (m *MockStore) RoomExists(roomCode string) (bool, error) {
	args := m.Called(roomCode)
	return args.Bool(0), args.Error(1)
}

func (m *MockStore) GetRole(roomCode, user string) (string, error) {
	args := m.Called(roomCode, user)
	return args.String(0), args.Error(1)
}

func (m *MockStore) GetRoom(roomCode string) (map[string]string, error) {
	args := m.Called(roomCode)
	return args.Get(0).(map[string]string), args.Error(1)
}

func (m *MockStore) RoomForUser(user string) (string, error) {
	args := m.Called(user)
	return args.String(0), args.Error(1)
}

func (m *MockStore) DeleteRoom(roomCode string, members []string) error {
	args := m.Called(roomCode, members)
	return args.Error(0)
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
