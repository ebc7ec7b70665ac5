package repos

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/educrate/educrate-backend/internal/logger"
	"github.com/educrate/educrate-backend/internal/types"
)

type LearningAssessmentRepo interface {
	Create(ctx context.Context, tx *gorm.DB, assessments []*types.LearningAssessment) ([]*types.LearningAssessment, error)
	GetByUserID(ctx context.Context, tx *gorm.DB, userID uuid.UUID) ([]*types.LearningAssessment, error)
}

type learningAssessmentRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewLearningAssessmentRepo(db *gorm.DB, baseLog *logger.Logger) LearningAssessmentRepo {
	return &learningAssessmentRepo{db: db, log: baseLog.With("repo", "LearningAssessmentRepo")}
}

func (r *learningAssessmentRepo) Create(ctx context.Context, tx *gorm.DB, assessments []*types.LearningAssessment) ([]*types.LearningAssessment, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	if len(assessments) == 0 {
		return []*types.LearningAssessment{}, nil
	}
	if err := transaction.WithContext(ctx).Create(&assessments).Error; err != nil {
		return nil, err
	}
	return assessments, nil
}

func (r *learningAssessmentRepo) GetByUserID(ctx context.Context, tx *gorm.DB, userID uuid.UUID) ([]*types.LearningAssessment, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	var results []*types.LearningAssessment
	if err := transaction.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}
