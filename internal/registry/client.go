package registry

import "peerlink/backend/internal/models"

// Client is the interface for one live connection held by the Registry.
// It abstracts the underlying transport so the registry and the services
// that push events through it never touch a raw socket.
type Client interface {
	// GetUserID returns the identifier the connection was registered under.
	GetUserID() string

	// GetSendChannel returns the channel the services write outbound events
	// to. It is a send-only channel drained by the client's write pump.
	GetSendChannel() chan<- models.Event

	// Run starts the client's read and write pumps.
	Run()

	// Close shuts down the client's connection and send channel.
	Close()
}
