package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"peerlink/backend/internal/matchhub"
	"peerlink/backend/internal/models"
	"peerlink/backend/internal/registry"
	"peerlink/backend/internal/session"
)

// MatchingHandler serves the matching service's HTTP and WebSocket surface.
type MatchingHandler struct {
	Registry     *registry.Registry
	Registration *matchhub.RegistrationService
	Reconciler   *session.Reconciler
}

func NewMatchingHandler(reg *registry.Registry, rs *matchhub.RegistrationService, rec *session.Reconciler) *MatchingHandler {
	return &MatchingHandler{
		Registry:     reg,
		Registration: rs,
		Reconciler:   rec,
	}
}

// Root is the liveness endpoint.
func (h *MatchingHandler) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "This is matching server of omegle clone."})
}

// GetAnonID hands out a random anonymous name for clients that do not want
// to pick one.
func (h *MatchingHandler) GetAnonID(c *gin.Context) {
	anonUUID, _ := uuid.NewRandom()
	c.JSON(http.StatusOK, gin.H{"anon_id": anonUUID.String()})
}

// RegisterForMatching enqueues the named user and acknowledges immediately;
// pairing happens asynchronously in the matcher.
func (h *MatchingHandler) RegisterForMatching(c *gin.Context) {
	var user models.User
	if err := c.ShouldBindJSON(&user); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "name is required"})
		return
	}

	if err := h.Registration.Register(user.Name); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to queue user"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "queued",
		"message": "User added to matching queue",
	})
}

// ServeWebSocket upgrades the connection and registers it so the matcher can
// push matched and peer-disconnected events. Inbound frames are keepalive
// only and never interpreted.
func (h *MatchingHandler) ServeWebSocket(c *gin.Context) {
	name := c.Param("name")

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Failed to upgrade connection"})
		return
	}

	client := &registry.WebSocketClient{
		UserID:  name,
		Conn:    conn,
		Send:    make(chan models.Event, 256),
		OnClose: h.Reconciler.Disconnected,
	}

	h.Registry.Connect(client)
	client.Run()
}
