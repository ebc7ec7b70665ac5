package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/educrate/educrate-backend/internal/logger"
	"github.com/educrate/educrate-backend/internal/services"
)

type QAHandler struct {
	log       *logger.Logger
	qaService services.QAService
}

func NewQAHandler(log *logger.Logger, qaService services.QAService) *QAHandler {
	return &QAHandler{
		log:       log.With("handler", "QAHandler"),
		qaService: qaService,
	}
}

type askQuestionPayload struct {
	UserID   string `json:"user_id"`
	KitID    string `json:"kit_id"`
	Question string `json:"question"`
}

// POST /api/qa-sessions
func (h *QAHandler) AskQuestion(c *gin.Context) {
	var payload askQuestionPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_payload", err)
		return
	}
	userID, err := uuid.Parse(payload.UserID)
	if err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_user_id", errors.New("invalid user id"))
		return
	}
	kitID, err := uuid.Parse(payload.KitID)
	if err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_kit_id", errors.New("invalid kit id"))
		return
	}

	result, err := h.qaService.AnswerKitQuestion(c.Request.Context(), &services.AskQuestionRequest{
		UserID:   userID,
		KitID:    kitID,
		Question: payload.Question,
	})
	if err != nil {
		h.log.Error("AskQuestion failed", "error", err, "kit_id", kitID, "user_id", userID)
		RespondServiceError(c, "ask_question_failed", err)
		return
	}
	c.JSON(http.StatusCreated, result)
}
