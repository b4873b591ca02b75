package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"peerlink/backend/internal/models"
	"peerlink/backend/internal/registry"
	"peerlink/backend/internal/session"
	"peerlink/backend/internal/signalhub"
)

// SignallingHandler serves the signalling service's surface.
type SignallingHandler struct {
	Registry   *registry.Registry
	Router     *signalhub.Router
	Reconciler *session.Reconciler
}

func NewSignallingHandler(reg *registry.Registry, router *signalhub.Router, rec *session.Reconciler) *SignallingHandler {
	return &SignallingHandler{
		Registry:   reg,
		Router:     router,
		Reconciler: rec,
	}
}

// Root is the liveness endpoint.
func (h *SignallingHandler) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "This is signalling server of omegle clone."})
}

// ServeWebSocket upgrades the connection and wires its read pump into the
// signal router.
func (h *SignallingHandler) ServeWebSocket(c *gin.Context) {
	username := c.Param("username")

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Failed to upgrade connection"})
		return
	}

	client := &registry.WebSocketClient{
		UserID:  username,
		Conn:    conn,
		Send:    make(chan models.Event, 256),
		OnClose: h.Reconciler.Disconnected,
	}
	client.OnMessage = func(msg models.SignalMessage) {
		h.Router.HandleMessage(username, msg)
	}

	h.Registry.Connect(client)
	client.Run()
}
