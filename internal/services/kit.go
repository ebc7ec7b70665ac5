package services

import (
	"context"
	"fmt"

	"github.com/educrate/educrate-backend/internal/logger"
	"github.com/educrate/educrate-backend/internal/repos"
	"github.com/educrate/educrate-backend/internal/types"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

const defaultKitListLimit = 50

type KitService interface {
	ListUserKits(ctx context.Context, userID uuid.UUID, limit int) ([]*types.LearningKit, error)
	GetKit(ctx context.Context, kitID uuid.UUID) (*types.LearningKit, error)
}

type kitService struct {
	db      *gorm.DB
	log     *logger.Logger
	kitRepo repos.LearningKitRepo
}

func NewKitService(db *gorm.DB, baseLog *logger.Logger, kitRepo repos.LearningKitRepo) KitService {
	return &kitService{
		db:      db,
		log:     baseLog.With("service", "KitService"),
		kitRepo: kitRepo,
	}
}

func (s *kitService) ListUserKits(ctx context.Context, userID uuid.UUID, limit int) ([]*types.LearningKit, error) {
	if limit <= 0 || limit > defaultKitListLimit {
		limit = defaultKitListLimit
	}
	kits, err := s.kitRepo.GetByUserID(ctx, nil, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("list kits for user %s: %w", userID, err)
	}
	return kits, nil
}

func (s *kitService) GetKit(ctx context.Context, kitID uuid.UUID) (*types.LearningKit, error) {
	kits, err := s.kitRepo.GetByIDs(ctx, nil, []uuid.UUID{kitID})
	if err != nil {
		return nil, fmt.Errorf("get kit %s: %w", kitID, err)
	}
	if len(kits) == 0 {
		return nil, fmt.Errorf("kit %s: %w", kitID, ErrNotFound)
	}
	return kits[0], nil
}
