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

type StartSessionRequest struct {
	UserID                uuid.UUID
	Mood                  types.Mood
	AvailableTime         int
	EnergyLevel           int
	FocusLevel            int
	PreferredContentTypes []types.ContentType
}

type SessionResult struct {
	Session *types.StudySession `json:"session"`
	Plan    generate.StudyPlan  `json:"suggestions"`
}

type StudySessionService interface {
	StartSession(ctx context.Context, req StartSessionRequest) (*SessionResult, error)
}

type studySessionService struct {
	db          *gorm.DB
	log         *logger.Logger
	userRepo    repos.UserRepo
	sessionRepo repos.StudySessionRepo
}

func NewStudySessionService(db *gorm.DB, baseLog *logger.Logger, userRepo repos.UserRepo, sessionRepo repos.StudySessionRepo) StudySessionService {
	return &studySessionService{
		db:          db,
		log:         baseLog.With("service", "StudySessionService"),
		userRepo:    userRepo,
		sessionRepo: sessionRepo,
	}
}

// StartSession captures the learner's state, pairs it with the advisor's
// plan, and persists both as one immutable record.
func (s *studySessionService) StartSession(ctx context.Context, req StartSessionRequest) (*SessionResult, error) {
	if req.EnergyLevel < 1 || req.EnergyLevel > 10 {
		return nil, fmt.Errorf("energy level %d out of range 1-10: %w", req.EnergyLevel, ErrInvalidInput)
	}
	if req.FocusLevel < 1 || req.FocusLevel > 10 {
		return nil, fmt.Errorf("focus level %d out of range 1-10: %w", req.FocusLevel, ErrInvalidInput)
	}

	users, err := s.userRepo.GetByIDs(ctx, nil, []uuid.UUID{req.UserID})
	if err != nil {
		return nil, fmt.Errorf("load user: %w", err)
	}
	if len(users) == 0 || users[0] == nil {
		return nil, fmt.Errorf("user %s: %w", req.UserID, ErrNotFound)
	}

	plan, err := generate.SuggestStudyPlan(req.Mood, req.AvailableTime, "general")
	if err != nil {
		return nil, fmt.Errorf("suggest study plan: %v: %w", err, ErrInvalidInput)
	}

	session := &types.StudySession{
		ID:                    uuid.New(),
		UserID:                req.UserID,
		Mood:                  req.Mood,
		AvailableTime:         req.AvailableTime,
		EnergyLevel:           req.EnergyLevel,
		FocusLevel:            req.FocusLevel,
		PreferredContentTypes: datatypes.JSON(mustJSON(req.PreferredContentTypes)),
		Plan:                  datatypes.JSON(mustJSON(plan)),
		CreatedAt:             time.Now().UTC(),
	}
	if _, err := s.sessionRepo.Create(ctx, nil, []*types.StudySession{session}); err != nil {
		return nil, fmt.Errorf("create study session: %w", err)
	}

	s.log.Info("Study session started", "user_id", req.UserID, "mood", req.Mood)
	return &SessionResult{Session: session, Plan: plan}, nil
}
