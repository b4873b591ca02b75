package models

import "encoding/json"

// Role values assigned to the two members of a room. The initiator creates
// the WebRTC offer; the responder answers it.
const (
	RoleInitiator = "initiator"
	RoleResponder = "responder"
)

// User is the registration payload accepted by the matching service.
type User struct {
	Name string `json:"name" binding:"required"`
}

// SignalMessage is the envelope clients send over the signalling socket.
// Data is kept raw: SDP offers, answers and ICE candidates are relayed
// verbatim and never parsed server-side.
type SignalMessage struct {
	Event    string          `json:"event"`
	RoomCode string          `json:"room_code"`
	Target   string          `json:"target"`
	Type     string          `json:"type"`
	Data     json.RawMessage `json:"data,omitempty"`
}

// Event is a server-to-client push. One struct covers every event the two
// services emit ("matched", "verified", "signal", "peer-disconnected",
// "error"); omitempty keeps each wire shape down to its own fields.
type Event struct {
	Event     string          `json:"event"`
	RoomCode  string          `json:"room_code,omitempty"`
	Role      string          `json:"role,omitempty"`
	From      string          `json:"from,omitempty"`
	Type      string          `json:"type,omitempty"`
	Data      json.RawMessage `json:"data,omitempty"`
	Message   string          `json:"message,omitempty"`
	Initiator *bool           `json:"initiator,omitempty"`
}
