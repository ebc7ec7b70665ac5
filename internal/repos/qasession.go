package repos

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/educrate/educrate-backend/internal/logger"
	"github.com/educrate/educrate-backend/internal/types"
)

type QASessionRepo interface {
	Create(ctx context.Context, tx *gorm.DB, sessions []*types.QASession) ([]*types.QASession, error)
	GetByUserID(ctx context.Context, tx *gorm.DB, userID uuid.UUID, limit int) ([]*types.QASession, error)
	CountByUserID(ctx context.Context, tx *gorm.DB, userID uuid.UUID) (int64, error)
}

type qaSessionRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewQASessionRepo(db *gorm.DB, baseLog *logger.Logger) QASessionRepo {
	return &qaSessionRepo{db: db, log: baseLog.With("repo", "QASessionRepo")}
}

func (r *qaSessionRepo) Create(ctx context.Context, tx *gorm.DB, sessions []*types.QASession) ([]*types.QASession, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	if len(sessions) == 0 {
		return []*types.QASession{}, nil
	}
	if err := transaction.WithContext(ctx).Create(&sessions).Error; err != nil {
		return nil, err
	}
	return sessions, nil
}

func (r *qaSessionRepo) GetByUserID(ctx context.Context, tx *gorm.DB, userID uuid.UUID, limit int) ([]*types.QASession, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	var results []*types.QASession
	q := transaction.WithContext(ctx).
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

func (r *qaSessionRepo) CountByUserID(ctx context.Context, tx *gorm.DB, userID uuid.UUID) (int64, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	var count int64
	if err := transaction.WithContext(ctx).
		Model(&types.QASession{}).
		Where("user_id = ?", userID).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
