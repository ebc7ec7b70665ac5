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

type UserHandler struct {
	log         *logger.Logger
	userService services.UserService
}

func NewUserHandler(log *logger.Logger, userService services.UserService) *UserHandler {
	return &UserHandler{
		log:         log.With("handler", "UserHandler"),
		userService: userService,
	}
}

type createUserPayload struct {
	Name              string   `json:"name"`
	Email             string   `json:"email"`
	LearningStyles    []string `json:"learning_styles"`
	PreferredLanguage string   `json:"preferred_language"`
	Timezone          string   `json:"timezone"`
}

// POST /api/users
func (h *UserHandler) CreateUser(c *gin.Context) {
	var payload createUserPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_payload", err)
		return
	}
	styles := make([]types.LearningStyle, 0, len(payload.LearningStyles))
	for _, raw := range payload.LearningStyles {
		style, err := types.ParseLearningStyle(raw)
		if err != nil {
			RespondError(c, http.StatusBadRequest, "invalid_learning_style", err)
			return
		}
		styles = append(styles, style)
	}

	user, err := h.userService.CreateUser(c.Request.Context(), services.CreateUserRequest{
		Name:              payload.Name,
		Email:             payload.Email,
		LearningStyles:    styles,
		PreferredLanguage: payload.PreferredLanguage,
		Timezone:          payload.Timezone,
	})
	if err != nil {
		h.log.Error("CreateUser failed", "error", err)
		RespondServiceError(c, "create_user_failed", err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"user": user})
}

// GET /api/users/:id
func (h *UserHandler) GetUser(c *gin.Context) {
	userID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_user_id", errors.New("invalid user id"))
		return
	}
	user, err := h.userService.GetUser(c.Request.Context(), userID)
	if err != nil {
		RespondServiceError(c, "get_user_failed", err)
		return
	}
	RespondOK(c, gin.H{"user": user})
}

// GET /api/users/:id/analytics
func (h *UserHandler) GetAnalytics(c *gin.Context) {
	userID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_user_id", errors.New("invalid user id"))
		return
	}
	analytics, err := h.userService.GetAnalytics(c.Request.Context(), userID)
	if err != nil {
		h.log.Error("GetAnalytics failed", "error", err, "user_id", userID)
		RespondServiceError(c, "analytics_failed", err)
		return
	}
	RespondOK(c, analytics)
}
