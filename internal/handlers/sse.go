package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/educrate/educrate-backend/internal/logger"
	"github.com/educrate/educrate-backend/internal/sse"
)

type SSEHandler struct {
	log *logger.Logger
	hub *sse.Hub
}

func NewSSEHandler(log *logger.Logger, hub *sse.Hub) *SSEHandler {
	return &SSEHandler{
		log: log.With("handler", "SSEHandler"),
		hub: hub,
	}
}

// GET /sse/stream?user_id=...
//
// Holds the connection open and streams kit generation progress events
// for the given user until the client disconnects.
func (h *SSEHandler) Stream(c *gin.Context) {
	userID, err := uuid.Parse(c.Query("user_id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_user_id", errors.New("user_id query param is required"))
		return
	}

	client := h.hub.NewClient(userID)
	h.hub.AddChannel(client, userID.String())
	defer h.hub.CloseClient(client)

	h.log.Debug("SSE stream opened", "user_id", userID, "client_id", client.ID)
	h.hub.ServeHTTP(c.Writer, c.Request, client)
	h.log.Debug("SSE stream closed", "user_id", userID, "client_id", client.ID)
}
