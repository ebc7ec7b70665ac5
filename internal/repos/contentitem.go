package repos

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/educrate/educrate-backend/internal/logger"
	"github.com/educrate/educrate-backend/internal/types"
)

type ContentItemRepo interface {
	Create(ctx context.Context, tx *gorm.DB, items []*types.ContentItem) ([]*types.ContentItem, error)
	GetByKitIDs(ctx context.Context, tx *gorm.DB, kitIDs []uuid.UUID) ([]*types.ContentItem, error)
}

type contentItemRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewContentItemRepo(db *gorm.DB, baseLog *logger.Logger) ContentItemRepo {
	return &contentItemRepo{db: db, log: baseLog.With("repo", "ContentItemRepo")}
}

func (r *contentItemRepo) Create(ctx context.Context, tx *gorm.DB, items []*types.ContentItem) ([]*types.ContentItem, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	if len(items) == 0 {
		return []*types.ContentItem{}, nil
	}
	if err := transaction.WithContext(ctx).Create(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *contentItemRepo) GetByKitIDs(ctx context.Context, tx *gorm.DB, kitIDs []uuid.UUID) ([]*types.ContentItem, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	var results []*types.ContentItem
	if len(kitIDs) == 0 {
		return results, nil
	}
	if err := transaction.WithContext(ctx).
		Where("kit_id IN ?", kitIDs).
		Order("index ASC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}
