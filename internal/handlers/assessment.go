package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/educrate/educrate-backend/internal/logger"
	"github.com/educrate/educrate-backend/internal/questionnaire"
	"github.com/educrate/educrate-backend/internal/services"
)

type AssessmentHandler struct {
	log               *logger.Logger
	assessmentService services.AssessmentService
	questions         []questionnaire.Question
}

func NewAssessmentHandler(log *logger.Logger, assessmentService services.AssessmentService, questions []questionnaire.Question) *AssessmentHandler {
	return &AssessmentHandler{
		log:               log.With("handler", "AssessmentHandler"),
		assessmentService: assessmentService,
		questions:         questions,
	}
}

type submitAssessmentPayload struct {
	UserID           string         `json:"user_id"`
	VisualScore      int            `json:"visual_score"`
	AuditoryScore    int            `json:"auditory_score"`
	TextualScore     int            `json:"textual_score"`
	KinestheticScore int            `json:"kinesthetic_score"`
	Answers          map[string]any `json:"assessment_answers"`
}

// POST /api/users/:id/assessment
func (h *AssessmentHandler) SubmitAssessment(c *gin.Context) {
	userID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_user_id", errors.New("invalid user id"))
		return
	}
	var payload submitAssessmentPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_payload", err)
		return
	}

	result, err := h.assessmentService.SubmitAssessment(c.Request.Context(), services.SubmitAssessmentRequest{
		UserID:           userID,
		VisualScore:      payload.VisualScore,
		AuditoryScore:    payload.AuditoryScore,
		TextualScore:     payload.TextualScore,
		KinestheticScore: payload.KinestheticScore,
		Answers:          payload.Answers,
	})
	if err != nil {
		h.log.Error("SubmitAssessment failed", "error", err, "user_id", userID)
		RespondServiceError(c, "submit_assessment_failed", err)
		return
	}
	RespondOK(c, result)
}

// GET /api/learning-assessment-questions
func (h *AssessmentHandler) GetQuestions(c *gin.Context) {
	RespondOK(c, gin.H{"questions": h.questions})
}
