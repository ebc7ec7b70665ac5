package services

import (
	"context"
	"errors"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/educrate/educrate-backend/internal/generate"
	"github.com/educrate/educrate-backend/internal/logger"
	"github.com/educrate/educrate-backend/internal/types"
)

func testLogger() *logger.Logger {
	return &logger.Logger{SugaredLogger: zap.NewNop().Sugar()}
}

type fakeUserRepo struct {
	mu    sync.Mutex
	users map[uuid.UUID]*types.User

	updates []map[string]interface{}
	getErr  error
}

func newFakeUserRepo(users ...*types.User) *fakeUserRepo {
	repo := &fakeUserRepo{users: map[uuid.UUID]*types.User{}}
	for _, u := range users {
		repo.users[u.ID] = u
	}
	return repo
}

func (f *fakeUserRepo) Create(ctx context.Context, tx *gorm.DB, users []*types.User) ([]*types.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range users {
		f.users[u.ID] = u
	}
	return users, nil
}

func (f *fakeUserRepo) GetByIDs(ctx context.Context, tx *gorm.DB, userIDs []uuid.UUID) ([]*types.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.getErr != nil {
		return nil, f.getErr
	}
	var out []*types.User
	for _, id := range userIDs {
		if u, ok := f.users[id]; ok {
			out = append(out, u)
		}
	}
	return out, nil
}

func (f *fakeUserRepo) EmailExists(ctx context.Context, tx *gorm.DB, email string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.users {
		if u.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeUserRepo) UpdateFields(ctx context.Context, tx *gorm.DB, id uuid.UUID, updates map[string]interface{}) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.updates = append(f.updates, updates)
	return nil
}

type fakeKitRepo struct {
	mu        sync.Mutex
	kits      []*types.LearningKit
	createErr error
}

func (f *fakeKitRepo) Create(ctx context.Context, tx *gorm.DB, kits []*types.LearningKit) ([]*types.LearningKit, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.createErr != nil {
		return nil, f.createErr
	}
	f.kits = append(f.kits, kits...)
	return kits, nil
}

func (f *fakeKitRepo) GetByIDs(ctx context.Context, tx *gorm.DB, kitIDs []uuid.UUID) ([]*types.LearningKit, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*types.LearningKit
	for _, kit := range f.kits {
		for _, id := range kitIDs {
			if kit.ID == id {
				out = append(out, kit)
			}
		}
	}
	return out, nil
}

func (f *fakeKitRepo) GetByUserID(ctx context.Context, tx *gorm.DB, userID uuid.UUID, limit int) ([]*types.LearningKit, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*types.LearningKit
	for _, kit := range f.kits {
		if kit.UserID == userID {
			out = append(out, kit)
		}
	}
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (f *fakeKitRepo) CountByUserID(ctx context.Context, tx *gorm.DB, userID uuid.UUID) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var n int64
	for _, kit := range f.kits {
		if kit.UserID == userID {
			n++
		}
	}
	return n, nil
}

type fakeItemRepo struct {
	mu    sync.Mutex
	items []*types.ContentItem
}

func (f *fakeItemRepo) Create(ctx context.Context, tx *gorm.DB, items []*types.ContentItem) ([]*types.ContentItem, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.items = append(f.items, items...)
	return items, nil
}

func (f *fakeItemRepo) GetByKitIDs(ctx context.Context, tx *gorm.DB, kitIDs []uuid.UUID) ([]*types.ContentItem, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*types.ContentItem
	for _, item := range f.items {
		for _, id := range kitIDs {
			if item.KitID == id {
				out = append(out, item)
			}
		}
	}
	return out, nil
}

type fakeQARepo struct {
	mu       sync.Mutex
	sessions []*types.QASession
}

func (f *fakeQARepo) Create(ctx context.Context, tx *gorm.DB, sessions []*types.QASession) ([]*types.QASession, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sessions = append(f.sessions, sessions...)
	return sessions, nil
}

func (f *fakeQARepo) GetByUserID(ctx context.Context, tx *gorm.DB, userID uuid.UUID, limit int) ([]*types.QASession, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*types.QASession
	for _, s := range f.sessions {
		if s.UserID == userID {
			out = append(out, s)
		}
	}
	return out, nil
}

func (f *fakeQARepo) CountByUserID(ctx context.Context, tx *gorm.DB, userID uuid.UUID) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var n int64
	for _, s := range f.sessions {
		if s.UserID == userID {
			n++
		}
	}
	return n, nil
}

type fakeAssessmentRepo struct {
	assessments []*types.LearningAssessment
}

func (f *fakeAssessmentRepo) Create(ctx context.Context, tx *gorm.DB, assessments []*types.LearningAssessment) ([]*types.LearningAssessment, error) {
	f.assessments = append(f.assessments, assessments...)
	return assessments, nil
}

func (f *fakeAssessmentRepo) GetByUserID(ctx context.Context, tx *gorm.DB, userID uuid.UUID) ([]*types.LearningAssessment, error) {
	var out []*types.LearningAssessment
	for _, a := range f.assessments {
		if a.UserID == userID {
			out = append(out, a)
		}
	}
	return out, nil
}

type fakeSessionRepo struct {
	sessions []*types.StudySession
}

func (f *fakeSessionRepo) Create(ctx context.Context, tx *gorm.DB, sessions []*types.StudySession) ([]*types.StudySession, error) {
	f.sessions = append(f.sessions, sessions...)
	return sessions, nil
}

func (f *fakeSessionRepo) GetByUserID(ctx context.Context, tx *gorm.DB, userID uuid.UUID, limit int) ([]*types.StudySession, error) {
	var out []*types.StudySession
	for _, s := range f.sessions {
		if s.UserID == userID {
			out = append(out, s)
		}
	}
	return out, nil
}

var errFakeGenerator = errors.New("generator blew up")

// fakeGenerator runs the real template expansion but can be told to
// fail at a named step.
type fakeGenerator struct {
	failOn string
}

func (g *fakeGenerator) Summary(ctx context.Context, content string, style types.LearningStyle) (string, error) {
	if g.failOn == "summary" {
		return "", errFakeGenerator
	}
	return generate.Summary(content, style), nil
}

func (g *fakeGenerator) Flashcards(ctx context.Context, content string, count int) ([]generate.Flashcard, error) {
	if g.failOn == "flashcards" {
		return nil, errFakeGenerator
	}
	return generate.Flashcards(content, count), nil
}

func (g *fakeGenerator) AudioScript(ctx context.Context, content string, style types.LearningStyle) (string, error) {
	if g.failOn == "audio_script" {
		return "", errFakeGenerator
	}
	return generate.AudioScript(content, style), nil
}

func (g *fakeGenerator) VisualDescription(ctx context.Context, concept string) (string, error) {
	if g.failOn == "visual_description" {
		return "", errFakeGenerator
	}
	return generate.VisualDescription(concept), nil
}

func (g *fakeGenerator) AnswerQuestion(ctx context.Context, question, context_ string, style types.LearningStyle) (string, error) {
	if g.failOn == "answer_question" {
		return "", errFakeGenerator
	}
	return generate.AnswerQuestion(question, context_, style), nil
}

func (g *fakeGenerator) BuildQAIndex(ctx context.Context, content, topic string) (generate.QAIndex, error) {
	if g.failOn == "qa_index" {
		return generate.QAIndex{}, errFakeGenerator
	}
	return generate.BuildQAIndex(content, topic), nil
}
