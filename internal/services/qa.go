package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/educrate/educrate-backend/internal/logger"
	"github.com/educrate/educrate-backend/internal/repos"
	"github.com/educrate/educrate-backend/internal/types"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AskQuestionRequest struct {
	UserID   uuid.UUID `json:"user_id"`
	KitID    uuid.UUID `json:"kit_id"`
	Question string    `json:"question"`
}

type QAResult struct {
	SessionID       uuid.UUID           `json:"session_id"`
	Answer          string              `json:"answer"`
	PersonalizedFor types.LearningStyle `json:"personalized_for"`
}

type QAService interface {
	AnswerKitQuestion(ctx context.Context, req *AskQuestionRequest) (*QAResult, error)
}

type qaService struct {
	db       *gorm.DB
	log      *logger.Logger
	userRepo repos.UserRepo
	kitRepo  repos.LearningKitRepo
	qaRepo   repos.QASessionRepo
	gen      ContentGenerator
}

func NewQAService(
	db *gorm.DB,
	baseLog *logger.Logger,
	userRepo repos.UserRepo,
	kitRepo repos.LearningKitRepo,
	qaRepo repos.QASessionRepo,
	gen ContentGenerator,
) QAService {
	return &qaService{
		db:       db,
		log:      baseLog.With("service", "QAService"),
		userRepo: userRepo,
		kitRepo:  kitRepo,
		qaRepo:   qaRepo,
		gen:      gen,
	}
}

func (s *qaService) AnswerKitQuestion(ctx context.Context, req *AskQuestionRequest) (*QAResult, error) {
	question := strings.TrimSpace(req.Question)
	if question == "" {
		return nil, fmt.Errorf("question is required: %w", ErrInvalidInput)
	}

	kits, err := s.kitRepo.GetByIDs(ctx, nil, []uuid.UUID{req.KitID})
	if err != nil {
		return nil, fmt.Errorf("get kit %s: %w", req.KitID, err)
	}
	if len(kits) == 0 {
		return nil, fmt.Errorf("kit %s: %w", req.KitID, ErrNotFound)
	}
	kit := kits[0]
	if kit.Status == types.KitFailed {
		return nil, fmt.Errorf("kit %s has no usable content: %w", req.KitID, ErrInvalidInput)
	}

	users, err := s.userRepo.GetByIDs(ctx, nil, []uuid.UUID{req.UserID})
	if err != nil {
		return nil, fmt.Errorf("get user %s: %w", req.UserID, err)
	}
	if len(users) == 0 {
		return nil, fmt.Errorf("user %s: %w", req.UserID, ErrNotFound)
	}
	user := users[0]

	style := types.StyleTextual
	if styles := user.Styles(); len(styles) > 0 {
		style = styles[0]
	}

	answer, err := s.gen.AnswerQuestion(ctx, question, kit.SourceContent, style)
	if err != nil {
		return nil, fmt.Errorf("answer question for kit %s: %w", req.KitID, err)
	}

	session := &types.QASession{
		ID:        uuid.New(),
		UserID:    user.ID,
		KitID:     kit.ID,
		Question:  question,
		Answer:    answer,
		Context:   kit.SourceContent,
		Style:     style,
		CreatedAt: time.Now().UTC(),
	}
	if _, err := s.qaRepo.Create(ctx, nil, []*types.QASession{session}); err != nil {
		return nil, fmt.Errorf("persist qa session: %w", err)
	}

	s.log.Info("Answered kit question", "kit_id", kit.ID, "user_id", user.ID, "style", style)
	return &QAResult{
		SessionID:       session.ID,
		Answer:          answer,
		PersonalizedFor: style,
	}, nil
}
