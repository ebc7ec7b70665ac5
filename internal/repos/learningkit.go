package repos

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/educrate/educrate-backend/internal/logger"
	"github.com/educrate/educrate-backend/internal/types"
)

type LearningKitRepo interface {
	Create(ctx context.Context, tx *gorm.DB, kits []*types.LearningKit) ([]*types.LearningKit, error)
	GetByIDs(ctx context.Context, tx *gorm.DB, kitIDs []uuid.UUID) ([]*types.LearningKit, error)
	GetByUserID(ctx context.Context, tx *gorm.DB, userID uuid.UUID, limit int) ([]*types.LearningKit, error)
	CountByUserID(ctx context.Context, tx *gorm.DB, userID uuid.UUID) (int64, error)
}

type learningKitRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewLearningKitRepo(db *gorm.DB, baseLog *logger.Logger) LearningKitRepo {
	return &learningKitRepo{db: db, log: baseLog.With("repo", "LearningKitRepo")}
}

func (r *learningKitRepo) Create(ctx context.Context, tx *gorm.DB, kits []*types.LearningKit) ([]*types.LearningKit, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	if len(kits) == 0 {
		return []*types.LearningKit{}, nil
	}
	if err := transaction.WithContext(ctx).Create(&kits).Error; err != nil {
		return nil, err
	}
	return kits, nil
}

func (r *learningKitRepo) GetByIDs(ctx context.Context, tx *gorm.DB, kitIDs []uuid.UUID) ([]*types.LearningKit, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	var results []*types.LearningKit
	if len(kitIDs) == 0 {
		return results, nil
	}
	if err := transaction.WithContext(ctx).
		Preload("ContentItems", func(db *gorm.DB) *gorm.DB { return db.Order("content_item.index ASC") }).
		Where("id IN ?", kitIDs).
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (r *learningKitRepo) GetByUserID(ctx context.Context, tx *gorm.DB, userID uuid.UUID, limit int) ([]*types.LearningKit, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	var results []*types.LearningKit
	q := transaction.WithContext(ctx).
		Preload("ContentItems", func(db *gorm.DB) *gorm.DB { return db.Order("content_item.index ASC") }).
		Where("user_id = ?", userID).
		Order("created_at DESC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	if err := q.Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (r *learningKitRepo) CountByUserID(ctx context.Context, tx *gorm.DB, userID uuid.UUID) (int64, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	var count int64
	if err := transaction.WithContext(ctx).
		Model(&types.LearningKit{}).
		Where("user_id = ?", userID).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
