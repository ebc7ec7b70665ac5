package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/educrate/educrate-backend/internal/logger"
	"github.com/educrate/educrate-backend/internal/services"
	"github.com/educrate/educrate-backend/internal/types"
)

type KitHandler struct {
	log        *logger.Logger
	kitService services.KitService
	genService services.KitGenerationService
}

func NewKitHandler(log *logger.Logger, kitService services.KitService, genService services.KitGenerationService) *KitHandler {
	return &KitHandler{
		log:        log.With("handler", "KitHandler"),
		kitService: kitService,
		genService: genService,
	}
}

type createKitPayload struct {
	UserID        string   `json:"user_id"`
	Topic         string   `json:"topic"`
	SourceContent string   `json:"source_content"`
	TargetStyles  []string `json:"target_styles"`
}

// POST /api/learning-kits
func (h *KitHandler) CreateKit(c *gin.Context) {
	var payload createKitPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_payload", err)
		return
	}
	userID, err := uuid.Parse(payload.UserID)
	if err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_user_id", errors.New("invalid user id"))
		return
	}
	styles := make([]types.LearningStyle, 0, len(payload.TargetStyles))
	for _, raw := range payload.TargetStyles {
		style, err := types.ParseLearningStyle(raw)
		if err != nil {
			RespondError(c, http.StatusBadRequest, "invalid_learning_style", err)
			return
		}
		styles = append(styles, style)
	}

	result, err := h.genService.CreateKit(c.Request.Context(), services.CreateKitRequest{
		UserID:        userID,
		Topic:         payload.Topic,
		SourceContent: payload.SourceContent,
		TargetStyles:  styles,
	})
	if err != nil {
		h.log.Error("CreateKit failed", "error", err, "user_id", userID)
		RespondServiceError(c, "create_kit_failed", err)
		return
	}
	c.JSON(http.StatusCreated, result)
}

// GET /api/users/:id/learning-kits?limit=...
func (h *KitHandler) ListKits(c *gin.Context) {
	userID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_user_id", errors.New("invalid user id"))
		return
	}
	limit := 0
	if raw := c.Query("limit"); raw != "" {
		limit, err = strconv.Atoi(raw)
		if err != nil {
			RespondError(c, http.StatusBadRequest, "invalid_limit", errors.New("limit must be an integer"))
			return
		}
	}
	kits, err := h.kitService.ListUserKits(c.Request.Context(), userID, limit)
	if err != nil {
		h.log.Error("ListKits failed", "error", err, "user_id", userID)
		RespondServiceError(c, "list_kits_failed", err)
		return
	}
	RespondOK(c, gin.H{"kits": kits})
}

// GET /api/learning-kits/:id
func (h *KitHandler) GetKit(c *gin.Context) {
	kitID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_kit_id", errors.New("invalid kit id"))
		return
	}
	kit, err := h.kitService.GetKit(c.Request.Context(), kitID)
	if err != nil {
		RespondServiceError(c, "get_kit_failed", err)
		return
	}
	RespondOK(c, gin.H{"kit": kit})
}
