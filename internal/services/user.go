package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"

	"github.com/educrate/educrate-backend/internal/logger"
	"github.com/educrate/educrate-backend/internal/repos"
	"github.com/educrate/educrate-backend/internal/types"
)

const recentKitLimit = 5

type CreateUserRequest struct {
	Name              string
	Email             string
	LearningStyles    []types.LearningStyle
	PreferredLanguage string
	Timezone          string
}

type UserAnalytics struct {
	TotalKitsCreated    int64                       `json:"total_kits_created"`
	TotalQuestionsAsked int64                       `json:"total_questions_asked"`
	LearningStyleUsage  map[types.LearningStyle]int `json:"learning_style_usage"`
	RecentActivity      []*types.LearningKit        `json:"recent_activity"`
	GeneratedAt         time.Time                   `json:"analytics_generated_at"`
}

type UserService interface {
	CreateUser(ctx context.Context, req CreateUserRequest) (*types.User, error)
	GetUser(ctx context.Context, userID uuid.UUID) (*types.User, error)
	GetAnalytics(ctx context.Context, userID uuid.UUID) (*UserAnalytics, error)
}

type userService struct {
	db       *gorm.DB
	log      *logger.Logger
	userRepo repos.UserRepo
	kitRepo  repos.LearningKitRepo
	qaRepo   repos.QASessionRepo
}

func NewUserService(db *gorm.DB, baseLog *logger.Logger, userRepo repos.UserRepo, kitRepo repos.LearningKitRepo, qaRepo repos.QASessionRepo) UserService {
	return &userService{
		db:       db,
		log:      baseLog.With("service", "UserService"),
		userRepo: userRepo,
		kitRepo:  kitRepo,
		qaRepo:   qaRepo,
	}
}

func (s *userService) CreateUser(ctx context.Context, req CreateUserRequest) (*types.User, error) {
	if req.Name == "" {
		return nil, fmt.Errorf("name is required: %w", ErrInvalidInput)
	}
	if req.Email == "" {
		return nil, fmt.Errorf("email is required: %w", ErrInvalidInput)
	}
	exists, err := s.userRepo.EmailExists(ctx, nil, req.Email)
	if err != nil {
		return nil, fmt.Errorf("check email: %w", err)
	}
	if exists {
		return nil, fmt.Errorf("email %q is already registered: %w", req.Email, ErrInvalidInput)
	}

	lang := req.PreferredLanguage
	if lang == "" {
		lang = "en"
	}
	tz := req.Timezone
	if tz == "" {
		tz = "UTC"
	}

	now := time.Now().UTC()
	user := &types.User{
		ID:                uuid.New(),
		Name:              req.Name,
		Email:             req.Email,
		LearningStyles:    types.StylesJSON(req.LearningStyles),
		PreferredLanguage: lang,
		Timezone:          tz,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
	if _, err := s.userRepo.Create(ctx, nil, []*types.User{user}); err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}
	s.log.Info("User created", "user_id", user.ID)
	return user, nil
}

func (s *userService) GetUser(ctx context.Context, userID uuid.UUID) (*types.User, error) {
	users, err := s.userRepo.GetByIDs(ctx, nil, []uuid.UUID{userID})
	if err != nil {
		return nil, fmt.Errorf("load user: %w", err)
	}
	if len(users) == 0 || users[0] == nil {
		return nil, fmt.Errorf("user %s: %w", userID, ErrNotFound)
	}
	return users[0], nil
}

// GetAnalytics aggregates the user's learning statistics. The three
// store reads are independent, so they fan out under one errgroup.
func (s *userService) GetAnalytics(ctx context.Context, userID uuid.UUID) (*UserAnalytics, error) {
	if _, err := s.GetUser(ctx, userID); err != nil {
		return nil, err
	}

	analytics := &UserAnalytics{
		LearningStyleUsage: map[types.LearningStyle]int{},
		GeneratedAt:        time.Now().UTC(),
	}

	var allKits []*types.LearningKit
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		n, err := s.kitRepo.CountByUserID(gctx, nil, userID)
		if err != nil {
			return fmt.Errorf("count kits: %w", err)
		}
		analytics.TotalKitsCreated = n
		return nil
	})
	g.Go(func() error {
		n, err := s.qaRepo.CountByUserID(gctx, nil, userID)
		if err != nil {
			return fmt.Errorf("count qa sessions: %w", err)
		}
		analytics.TotalQuestionsAsked = n
		return nil
	})
	g.Go(func() error {
		kits, err := s.kitRepo.GetByUserID(gctx, nil, userID, 0)
		if err != nil {
			return fmt.Errorf("load kits: %w", err)
		}
		allKits = kits
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	for _, kit := range allKits {
		for _, style := range kit.Styles() {
			analytics.LearningStyleUsage[style]++
		}
	}
	if len(allKits) > recentKitLimit {
		analytics.RecentActivity = allKits[:recentKitLimit]
	} else {
		analytics.RecentActivity = allKits
	}
	return analytics, nil
}
