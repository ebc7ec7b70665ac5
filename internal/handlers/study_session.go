package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/educrate/educrate-backend/internal/logger"
	"github.com/educrate/educrate-backend/internal/services"
	"github.com/educrate/educrate-backend/internal/types"
)

type StudySessionHandler struct {
	log            *logger.Logger
	sessionService services.StudySessionService
}

func NewStudySessionHandler(log *logger.Logger, sessionService services.StudySessionService) *StudySessionHandler {
	return &StudySessionHandler{
		log:            log.With("handler", "StudySessionHandler"),
		sessionService: sessionService,
	}
}

type startSessionPayload struct {
	Mood                  string   `json:"current_mood"`
	AvailableTime         int      `json:"available_time"`
	EnergyLevel           int      `json:"energy_level"`
	FocusLevel            int      `json:"focus_level"`
	PreferredContentTypes []string `json:"preferred_content_types"`
}

// POST /api/users/:id/study-session
func (h *StudySessionHandler) StartSession(c *gin.Context) {
	userID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_user_id", errors.New("invalid user id"))
		return
	}
	var payload startSessionPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_payload", err)
		return
	}
	mood, err := types.ParseMood(payload.Mood)
	if err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_mood", err)
		return
	}
	contentTypes := make([]types.ContentType, 0, len(payload.PreferredContentTypes))
	for _, raw := range payload.PreferredContentTypes {
		ct, err := types.ParseContentType(raw)
		if err != nil {
			RespondError(c, http.StatusBadRequest, "invalid_content_type", err)
			return
		}
		contentTypes = append(contentTypes, ct)
	}

	result, err := h.sessionService.StartSession(c.Request.Context(), services.StartSessionRequest{
		UserID:                userID,
		Mood:                  mood,
		AvailableTime:         payload.AvailableTime,
		EnergyLevel:           payload.EnergyLevel,
		FocusLevel:            payload.FocusLevel,
		PreferredContentTypes: contentTypes,
	})
	if err != nil {
		h.log.Error("StartSession failed", "error", err, "user_id", userID)
		RespondServiceError(c, "start_session_failed", err)
		return
	}
	c.JSON(http.StatusCreated, result)
}
