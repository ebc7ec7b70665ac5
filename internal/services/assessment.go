package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/educrate/educrate-backend/internal/generate"
	"github.com/educrate/educrate-backend/internal/logger"
	"github.com/educrate/educrate-backend/internal/repos"
	"github.com/educrate/educrate-backend/internal/types"
)

type SubmitAssessmentRequest struct {
	UserID           uuid.UUID
	VisualScore      int
	AuditoryScore    int
	TextualScore     int
	KinestheticScore int
	Answers          map[string]any
}

type AssessmentResult struct {
	Assessment     *types.LearningAssessment `json:"assessment"`
	DominantStyles []types.LearningStyle     `json:"dominant_styles"`
	Scores         map[string]int            `json:"scores"`
}

type AssessmentService interface {
	SubmitAssessment(ctx context.Context, req SubmitAssessmentRequest) (*AssessmentResult, error)
}

type assessmentService struct {
	db             *gorm.DB
	log            *logger.Logger
	userRepo       repos.UserRepo
	assessmentRepo repos.LearningAssessmentRepo
}

func NewAssessmentService(db *gorm.DB, baseLog *logger.Logger, userRepo repos.UserRepo, assessmentRepo repos.LearningAssessmentRepo) AssessmentService {
	return &assessmentService{
		db:             db,
		log:            baseLog.With("service", "AssessmentService"),
		userRepo:       userRepo,
		assessmentRepo: assessmentRepo,
	}
}

// SubmitAssessment stores the immutable assessment record and overwrites
// the user's learning_styles with the derived dominant set, in one
// transaction.
func (s *assessmentService) SubmitAssessment(ctx context.Context, req SubmitAssessmentRequest) (*AssessmentResult, error) {
	scores := map[string]int{
		"visual":      req.VisualScore,
		"auditory":    req.AuditoryScore,
		"textual":     req.TextualScore,
		"kinesthetic": req.KinestheticScore,
	}
	for name, score := range scores {
		if score < 1 || score > 10 {
			return nil, fmt.Errorf("%s score %d out of range 1-10: %w", name, score, ErrInvalidInput)
		}
	}

	users, err := s.userRepo.GetByIDs(ctx, nil, []uuid.UUID{req.UserID})
	if err != nil {
		return nil, fmt.Errorf("load user: %w", err)
	}
	if len(users) == 0 || users[0] == nil {
		return nil, fmt.Errorf("user %s: %w", req.UserID, ErrNotFound)
	}

	dominant := generate.DominantStyles(req.VisualScore, req.AuditoryScore, req.TextualScore, req.KinestheticScore)

	assessment := &types.LearningAssessment{
		ID:               uuid.New(),
		UserID:           req.UserID,
		VisualScore:      req.VisualScore,
		AuditoryScore:    req.AuditoryScore,
		TextualScore:     req.TextualScore,
		KinestheticScore: req.KinestheticScore,
		Answers:          datatypes.JSON(mustJSON(req.Answers)),
		CreatedAt:        time.Now().UTC(),
	}

	err = s.withTx(ctx, func(tx *gorm.DB) error {
		if err := s.userRepo.UpdateFields(ctx, tx, req.UserID, map[string]interface{}{
			"learning_styles": types.StylesJSON(dominant),
			"updated_at":      time.Now().UTC(),
		}); err != nil {
			return fmt.Errorf("update user styles: %w", err)
		}
		if _, err := s.assessmentRepo.Create(ctx, tx, []*types.LearningAssessment{assessment}); err != nil {
			return fmt.Errorf("create assessment: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.Info("Assessment saved", "user_id", req.UserID, "dominant_styles", dominant)
	return &AssessmentResult{
		Assessment:     assessment,
		DominantStyles: dominant,
		Scores:         scores,
	}, nil
}

func (s *assessmentService) withTx(ctx context.Context, fn func(tx *gorm.DB) error) error {
	if s.db == nil {
		return fn(nil)
	}
	return s.db.WithContext(ctx).Transaction(fn)
}
