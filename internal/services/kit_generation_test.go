package services

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/educrate/educrate-backend/internal/types"
)

const kitTestContent = "ML is great. It learns from data. It improves over time."

func newKitGenService(userRepo *fakeUserRepo, kitRepo *fakeKitRepo, itemRepo *fakeItemRepo, gen *fakeGenerator) KitGenerationService {
	return NewKitGenerationService(nil, testLogger(), nil, userRepo, kitRepo, itemRepo, gen)
}

func TestCreateKit_TextualProducesSummaryAndFlashcards(t *testing.T) {
	kitRepo := &fakeKitRepo{}
	itemRepo := &fakeItemRepo{}
	svc := newKitGenService(newFakeUserRepo(), kitRepo, itemRepo, &fakeGenerator{})

	result, err := svc.CreateKit(context.Background(), CreateKitRequest{
		UserID:        uuid.New(),
		Topic:         "machine learning",
		SourceContent: kitTestContent,
		TargetStyles:  []types.LearningStyle{types.StyleTextual},
	})
	if err != nil {
		t.Fatalf("CreateKit: %v", err)
	}

	if result.ContentCount != 2 {
		t.Fatalf("expected 2 content items, got %d", result.ContentCount)
	}
	if result.Kit.Status != types.KitCompleted {
		t.Fatalf("expected completed status, got %s", result.Kit.Status)
	}
	if result.Kit.EstimatedTime != 20 {
		t.Fatalf("expected estimated time 20, got %d", result.Kit.EstimatedTime)
	}
	if got := result.Kit.ContentItems[0].Type; got != types.ContentSummary {
		t.Errorf("first item should be summary, got %s", got)
	}
	if got := result.Kit.ContentItems[1].Type; got != types.ContentFlashcards {
		t.Errorf("second item should be flashcards, got %s", got)
	}
	if len(kitRepo.kits) != 1 {
		t.Fatalf("expected 1 persisted kit, got %d", len(kitRepo.kits))
	}
	if len(itemRepo.items) != 2 {
		t.Fatalf("expected 2 persisted items, got %d", len(itemRepo.items))
	}
	for i, item := range itemRepo.items {
		if item.KitID != result.Kit.ID {
			t.Errorf("item %d not linked to kit", i)
		}
		if item.Index != i {
			t.Errorf("item %d has index %d", i, item.Index)
		}
	}
}

func TestCreateKit_AllStylesCoverKinestheticWithoutItems(t *testing.T) {
	kitRepo := &fakeKitRepo{}
	svc := newKitGenService(newFakeUserRepo(), kitRepo, &fakeItemRepo{}, &fakeGenerator{})

	result, err := svc.CreateKit(context.Background(), CreateKitRequest{
		UserID:        uuid.New(),
		Topic:         "physics",
		SourceContent: kitTestContent,
		TargetStyles: []types.LearningStyle{
			types.StyleTextual, types.StyleAuditory, types.StyleVisual, types.StyleKinesthetic,
		},
	})
	if err != nil {
		t.Fatalf("CreateKit: %v", err)
	}

	if result.ContentCount != 4 {
		t.Fatalf("expected 4 items (2 textual, 1 auditory, 1 visual), got %d", result.ContentCount)
	}
	if result.Kit.EstimatedTime != 40 {
		t.Fatalf("expected estimated time 40, got %d", result.Kit.EstimatedTime)
	}

	steps := map[string]bool{}
	for _, entry := range result.Logs {
		steps[entry.Step] = true
	}
	for _, step := range []string{"generate_textual", "generate_auditory", "generate_visual", "generate_kinesthetic", "qa_index"} {
		if !steps[step] {
			t.Errorf("missing log step %s", step)
		}
	}
}

func TestCreateKit_LogRecordsStartAndCompletionPerStep(t *testing.T) {
	svc := newKitGenService(newFakeUserRepo(), &fakeKitRepo{}, &fakeItemRepo{}, &fakeGenerator{})

	result, err := svc.CreateKit(context.Background(), CreateKitRequest{
		UserID:        uuid.New(),
		Topic:         "chemistry",
		SourceContent: kitTestContent,
		TargetStyles:  []types.LearningStyle{types.StyleAuditory},
	})
	if err != nil {
		t.Fatalf("CreateKit: %v", err)
	}

	if len(result.Logs) != 4 {
		t.Fatalf("expected 4 log entries, got %d", len(result.Logs))
	}
	wantStatus := []types.LogStatus{types.LogStarted, types.LogCompleted, types.LogStarted, types.LogCompleted}
	for i, entry := range result.Logs {
		if entry.Status != wantStatus[i] {
			t.Errorf("entry %d: expected status %s, got %s", i, wantStatus[i], entry.Status)
		}
		if entry.Timestamp.IsZero() {
			t.Errorf("entry %d has zero timestamp", i)
		}
	}
	for i := 1; i < len(result.Logs); i++ {
		if result.Logs[i].Timestamp.Before(result.Logs[i-1].Timestamp) {
			t.Errorf("log timestamps out of order at %d", i)
		}
	}
}

func TestCreateKit_GeneratorFailurePersistsReducedKit(t *testing.T) {
	kitRepo := &fakeKitRepo{}
	itemRepo := &fakeItemRepo{}
	svc := newKitGenService(newFakeUserRepo(), kitRepo, itemRepo, &fakeGenerator{failOn: "audio_script"})

	userID := uuid.New()
	_, err := svc.CreateKit(context.Background(), CreateKitRequest{
		UserID:        userID,
		Topic:         "biology",
		SourceContent: kitTestContent,
		TargetStyles:  []types.LearningStyle{types.StyleTextual, types.StyleAuditory},
	})
	if !errors.Is(err, errFakeGenerator) {
		t.Fatalf("expected generator error, got %v", err)
	}

	if len(kitRepo.kits) != 1 {
		t.Fatalf("expected exactly one persisted failure record, got %d", len(kitRepo.kits))
	}
	failed := kitRepo.kits[0]
	if failed.Status != types.KitFailed {
		t.Errorf("expected failed status, got %s", failed.Status)
	}
	if failed.UserID != userID || failed.Topic != "biology" {
		t.Errorf("failure record lost identity fields: %+v", failed)
	}
	if failed.Error == "" {
		t.Errorf("failure record missing error message")
	}
	if failed.SourceContent != "" {
		t.Errorf("failure record should not carry source content")
	}
	if len(itemRepo.items) != 0 {
		t.Errorf("no content items should persist on failure, got %d", len(itemRepo.items))
	}

	logs := failed.Log()
	if len(logs) == 0 {
		t.Fatalf("failure record must keep the partial processing log")
	}
	last := logs[len(logs)-1]
	if last.Step != "generate_auditory" || last.Status != types.LogFailed {
		t.Errorf("last log entry should mark the failing step, got %+v", last)
	}
	completedTextual := false
	for _, entry := range logs {
		if entry.Step == "generate_textual" && entry.Status == types.LogCompleted {
			completedTextual = true
		}
	}
	if !completedTextual {
		t.Errorf("log should retain the step completed before the fault")
	}
}

func TestCreateKit_IndexFailureAlsoPersistsReducedKit(t *testing.T) {
	kitRepo := &fakeKitRepo{}
	svc := newKitGenService(newFakeUserRepo(), kitRepo, &fakeItemRepo{}, &fakeGenerator{failOn: "qa_index"})

	_, err := svc.CreateKit(context.Background(), CreateKitRequest{
		UserID:        uuid.New(),
		Topic:         "history",
		SourceContent: kitTestContent,
		TargetStyles:  []types.LearningStyle{types.StyleVisual},
	})
	if !errors.Is(err, errFakeGenerator) {
		t.Fatalf("expected generator error, got %v", err)
	}
	if len(kitRepo.kits) != 1 || kitRepo.kits[0].Status != types.KitFailed {
		t.Fatalf("expected one failed kit record")
	}
}

func TestCreateKit_StylesFallBackToProfileThenTextual(t *testing.T) {
	user := &types.User{
		ID:             uuid.New(),
		Name:           "Ada",
		Email:          "ada@example.com",
		LearningStyles: types.StylesJSON([]types.LearningStyle{types.StyleVisual}),
	}
	svc := newKitGenService(newFakeUserRepo(user), &fakeKitRepo{}, &fakeItemRepo{}, &fakeGenerator{})

	result, err := svc.CreateKit(context.Background(), CreateKitRequest{
		UserID:        user.ID,
		Topic:         "geometry",
		SourceContent: kitTestContent,
	})
	if err != nil {
		t.Fatalf("CreateKit: %v", err)
	}
	if result.ContentCount != 1 || result.Kit.ContentItems[0].Type != types.ContentVisualDoodle {
		t.Fatalf("expected a single visual doodle from the stored profile")
	}

	// Unknown user falls back to textual.
	result, err = svc.CreateKit(context.Background(), CreateKitRequest{
		UserID:        uuid.New(),
		Topic:         "geometry",
		SourceContent: kitTestContent,
	})
	if err != nil {
		t.Fatalf("CreateKit: %v", err)
	}
	if result.ContentCount != 2 {
		t.Fatalf("expected textual default (2 items), got %d", result.ContentCount)
	}
}

func TestCreateKit_RejectsMissingTopicAndContent(t *testing.T) {
	svc := newKitGenService(newFakeUserRepo(), &fakeKitRepo{}, &fakeItemRepo{}, &fakeGenerator{})

	_, err := svc.CreateKit(context.Background(), CreateKitRequest{UserID: uuid.New(), SourceContent: "x"})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected invalid input for missing topic, got %v", err)
	}
	_, err = svc.CreateKit(context.Background(), CreateKitRequest{UserID: uuid.New(), Topic: "x"})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected invalid input for missing content, got %v", err)
	}
}
