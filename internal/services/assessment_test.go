package services

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/google/uuid"

	"github.com/educrate/educrate-backend/internal/types"
)

func TestSubmitAssessment_DerivesDominantStylesAndUpdatesProfile(t *testing.T) {
	user := &types.User{ID: uuid.New(), Name: "Ada", Email: "ada@example.com"}
	userRepo := newFakeUserRepo(user)
	assessmentRepo := &fakeAssessmentRepo{}
	svc := NewAssessmentService(nil, testLogger(), userRepo, assessmentRepo)

	result, err := svc.SubmitAssessment(context.Background(), SubmitAssessmentRequest{
		UserID:           user.ID,
		VisualScore:      8,
		AuditoryScore:    6,
		TextualScore:     9,
		KinestheticScore: 5,
	})
	if err != nil {
		t.Fatalf("SubmitAssessment: %v", err)
	}

	want := []types.LearningStyle{types.StyleVisual, types.StyleTextual}
	if !reflect.DeepEqual(result.DominantStyles, want) {
		t.Fatalf("expected dominant styles %v, got %v", want, result.DominantStyles)
	}
	if len(assessmentRepo.assessments) != 1 {
		t.Fatalf("assessment not persisted")
	}
	if len(userRepo.updates) != 1 {
		t.Fatalf("expected one profile update, got %d", len(userRepo.updates))
	}
	if _, ok := userRepo.updates[0]["learning_styles"]; !ok {
		t.Fatalf("profile update missing learning_styles")
	}
	if result.Scores["textual"] != 9 {
		t.Fatalf("scores map not echoed back: %v", result.Scores)
	}
}

func TestSubmitAssessment_RejectsOutOfRangeScores(t *testing.T) {
	user := &types.User{ID: uuid.New(), Name: "Ada", Email: "ada@example.com"}
	svc := NewAssessmentService(nil, testLogger(), newFakeUserRepo(user), &fakeAssessmentRepo{})

	_, err := svc.SubmitAssessment(context.Background(), SubmitAssessmentRequest{
		UserID:           user.ID,
		VisualScore:      11,
		AuditoryScore:    5,
		TextualScore:     5,
		KinestheticScore: 5,
	})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected invalid input, got %v", err)
	}

	_, err = svc.SubmitAssessment(context.Background(), SubmitAssessmentRequest{
		UserID:           user.ID,
		VisualScore:      5,
		AuditoryScore:    0,
		TextualScore:     5,
		KinestheticScore: 5,
	})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected invalid input, got %v", err)
	}
}

func TestSubmitAssessment_UnknownUser(t *testing.T) {
	svc := NewAssessmentService(nil, testLogger(), newFakeUserRepo(), &fakeAssessmentRepo{})

	_, err := svc.SubmitAssessment(context.Background(), SubmitAssessmentRequest{
		UserID:           uuid.New(),
		VisualScore:      5,
		AuditoryScore:    5,
		TextualScore:     5,
		KinestheticScore: 5,
	})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}
