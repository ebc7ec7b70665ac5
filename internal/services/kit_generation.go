package services

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/educrate/educrate-backend/internal/generate"
	"github.com/educrate/educrate-backend/internal/logger"
	"github.com/educrate/educrate-backend/internal/repos"
	"github.com/educrate/educrate-backend/internal/sse"
	"github.com/educrate/educrate-backend/internal/types"
)

const (
	// perItemMinutes converts content-item count into the kit's
	// estimated study time.
	perItemMinutes = 10

	defaultFlashcardCount = 10

	defaultDifficulty = "medium"
)

type CreateKitRequest struct {
	UserID        uuid.UUID
	Topic         string
	SourceContent string
	TargetStyles  []types.LearningStyle
}

type KitResult struct {
	Kit          *types.LearningKit         `json:"kit"`
	ContentCount int                        `json:"content_count"`
	Logs         []types.ProcessingLogEntry `json:"processing_logs"`
	QAIndex      generate.QAIndex           `json:"qa_index"`
}

type KitGenerationService interface {
	CreateKit(ctx context.Context, req CreateKitRequest) (*KitResult, error)
}

type kitGenerationService struct {
	db  *gorm.DB
	log *logger.Logger

	sseHub *sse.Hub

	userRepo repos.UserRepo
	kitRepo  repos.LearningKitRepo
	itemRepo repos.ContentItemRepo

	gen ContentGenerator
}

func NewKitGenerationService(
	db *gorm.DB,
	baseLog *logger.Logger,
	sseHub *sse.Hub,
	userRepo repos.UserRepo,
	kitRepo repos.LearningKitRepo,
	itemRepo repos.ContentItemRepo,
	gen ContentGenerator,
) KitGenerationService {
	return &kitGenerationService{
		db:       db,
		log:      baseLog.With("service", "KitGenerationService"),
		sseHub:   sseHub,
		userRepo: userRepo,
		kitRepo:  kitRepo,
		itemRepo: itemRepo,
		gen:      gen,
	}
}

// pipelineRun owns the state of one kit generation: the append-only log
// and the accumulated content items. Never shared across invocations.
type pipelineRun struct {
	kitID  uuid.UUID
	userID uuid.UUID
	topic  string
	logs   []types.ProcessingLogEntry
	items  []*types.ContentItem
}

func (run *pipelineRun) append(step string, status types.LogStatus, message string) {
	run.logs = append(run.logs, types.ProcessingLogEntry{
		Step:      step,
		Status:    status,
		Message:   message,
		Timestamp: time.Now().UTC(),
	})
}

// CreateKit runs the generation pipeline for one request. Exactly one
// terminal kit record is persisted per invocation: the completed kit
// with its content items, or on any generator/indexer failure a reduced
// failed kit carrying the error and the log captured so far.
func (s *kitGenerationService) CreateKit(ctx context.Context, req CreateKitRequest) (*KitResult, error) {
	if req.Topic == "" {
		return nil, fmt.Errorf("topic is required: %w", ErrInvalidInput)
	}
	if req.SourceContent == "" {
		return nil, fmt.Errorf("source content is required: %w", ErrInvalidInput)
	}

	styles, err := s.resolveStyles(ctx, req)
	if err != nil {
		return nil, err
	}

	run := &pipelineRun{
		kitID:  uuid.New(),
		userID: req.UserID,
		topic:  req.Topic,
	}
	log := s.log.With("kit_id", run.kitID, "user_id", req.UserID, "topic", req.Topic)
	log.Info("Starting kit generation", "styles", styles)

	for i, style := range styles {
		step := "generate_" + string(style)
		run.append(step, types.LogStarted, fmt.Sprintf("Generating %s content", style))
		s.progress(run, step, (i*80)/len(styles))

		start := time.Now()
		items, err := s.generateForStyle(ctx, style, req.Topic, req.SourceContent)
		if err != nil {
			return nil, s.failRun(ctx, run, step, err)
		}
		for _, item := range items {
			item.Index = len(run.items)
			run.items = append(run.items, item)
		}

		run.append(step, types.LogCompleted, fmt.Sprintf("Generated %d item(s) in %s", len(items), time.Since(start).Round(time.Millisecond)))
		s.progress(run, step, ((i+1)*80)/len(styles))
	}

	run.append("qa_index", types.LogStarted, "Indexing source content for question answering")
	s.progress(run, "qa_index", 90)
	idx, err := s.gen.BuildQAIndex(ctx, req.SourceContent, req.Topic)
	if err != nil {
		return nil, s.failRun(ctx, run, "qa_index", err)
	}
	run.append("qa_index", types.LogCompleted, fmt.Sprintf("Indexed %d key terms and %d concepts", len(idx.KeyTerms), len(idx.Concepts)))

	now := time.Now().UTC()
	kit := &types.LearningKit{
		ID:              run.kitID,
		UserID:          req.UserID,
		Topic:           req.Topic,
		SourceContent:   req.SourceContent,
		Status:          types.KitCompleted,
		LearningStyles:  types.StylesJSON(styles),
		DifficultyLevel: defaultDifficulty,
		EstimatedTime:   perItemMinutes * len(run.items),
		ProcessingLog:   types.ProcessingLogJSON(run.logs),
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	err = s.withTx(ctx, func(tx *gorm.DB) error {
		if _, err := s.kitRepo.Create(ctx, tx, []*types.LearningKit{kit}); err != nil {
			return fmt.Errorf("create kit: %w", err)
		}
		for _, item := range run.items {
			item.KitID = kit.ID
			item.CreatedAt = now
		}
		if _, err := s.itemRepo.Create(ctx, tx, run.items); err != nil {
			return fmt.Errorf("create content items: %w", err)
		}
		return nil
	})
	if err != nil {
		log.Error("Persisting completed kit failed", "error", err)
		return nil, err
	}
	kit.ContentItems = run.items

	s.broadcast(run.userID, sse.EventKitGenerationDone, map[string]any{
		"kit_id":        kit.ID,
		"content_count": len(run.items),
	})
	log.Info("Kit generation completed", "content_count", len(run.items), "estimated_time", kit.EstimatedTime)

	return &KitResult{
		Kit:          kit,
		ContentCount: len(run.items),
		Logs:         run.logs,
		QAIndex:      idx,
	}, nil
}

// resolveStyles picks the target styles: the caller's set when present,
// else the stored user profile, else textual. A missing user is not an
// error here.
func (s *kitGenerationService) resolveStyles(ctx context.Context, req CreateKitRequest) ([]types.LearningStyle, error) {
	if len(req.TargetStyles) > 0 {
		return req.TargetStyles, nil
	}
	users, err := s.userRepo.GetByIDs(ctx, nil, []uuid.UUID{req.UserID})
	if err != nil {
		return nil, fmt.Errorf("load user: %w", err)
	}
	if len(users) > 0 && users[0] != nil {
		if styles := users[0].Styles(); len(styles) > 0 {
			return styles, nil
		}
	}
	return []types.LearningStyle{types.StyleTextual}, nil
}

// generateForStyle invokes the generators a style maps to. Textual
// produces a summary plus flashcards, auditory an audio lesson, visual
// a doodle description. Kinesthetic is counted as a covered style but
// generates no standalone item.
func (s *kitGenerationService) generateForStyle(ctx context.Context, style types.LearningStyle, topic, content string) ([]*types.ContentItem, error) {
	switch style {
	case types.StyleTextual:
		summary, err := s.gen.Summary(ctx, content, style)
		if err != nil {
			return nil, fmt.Errorf("generate summary: %w", err)
		}
		cards, err := s.gen.Flashcards(ctx, content, defaultFlashcardCount)
		if err != nil {
			return nil, fmt.Errorf("generate flashcards: %w", err)
		}
		return []*types.ContentItem{
			newContentItem(types.ContentSummary, style, summary, map[string]any{
				"word_count": len(generate.Tokenize(summary)),
			}),
			newContentItem(types.ContentFlashcards, style, cards, map[string]any{
				"card_count": len(cards),
			}),
		}, nil
	case types.StyleAuditory:
		script, err := s.gen.AudioScript(ctx, content, style)
		if err != nil {
			return nil, fmt.Errorf("generate audio script: %w", err)
		}
		return []*types.ContentItem{
			newContentItem(types.ContentAudioLesson, style, script, map[string]any{
				"duration_estimate": "10-15 minutes",
			}),
		}, nil
	case types.StyleVisual:
		doodle, err := s.gen.VisualDescription(ctx, topic)
		if err != nil {
			return nil, fmt.Errorf("generate visual description: %w", err)
		}
		return []*types.ContentItem{
			newContentItem(types.ContentVisualDoodle, style, doodle, map[string]any{
				"complexity": "medium",
			}),
		}, nil
	case types.StyleKinesthetic:
		return nil, nil
	default:
		return nil, fmt.Errorf("unknown learning style %q: %w", style, ErrInvalidInput)
	}
}

// failRun appends the failed log entry, persists the reduced failure
// kit (no content items, no source content), and returns the error for
// the caller to surface. The log captured before the fault survives on
// the failed record.
func (s *kitGenerationService) failRun(ctx context.Context, run *pipelineRun, step string, cause error) error {
	run.append(step, types.LogFailed, cause.Error())

	now := time.Now().UTC()
	failed := &types.LearningKit{
		ID:            run.kitID,
		UserID:        run.userID,
		Topic:         run.topic,
		Status:        types.KitFailed,
		Error:         cause.Error(),
		ProcessingLog: types.ProcessingLogJSON(run.logs),
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if _, err := s.kitRepo.Create(ctx, nil, []*types.LearningKit{failed}); err != nil {
		s.log.Error("Persisting failed kit record failed", "kit_id", run.kitID, "error", err)
	}

	s.broadcast(run.userID, sse.EventKitGenerationFailed, map[string]any{
		"kit_id": run.kitID,
		"step":   step,
		"error":  cause.Error(),
	})
	s.log.Warn("Kit generation failed", "kit_id", run.kitID, "step", step, "error", cause)

	return fmt.Errorf("%s: %w", step, cause)
}

func (s *kitGenerationService) progress(run *pipelineRun, step string, pct int) {
	s.broadcast(run.userID, sse.EventKitGenerationProgress, map[string]any{
		"kit_id":   run.kitID,
		"step":     step,
		"progress": pct,
	})
}

func (s *kitGenerationService) broadcast(userID uuid.UUID, event sse.Event, data any) {
	if s.sseHub == nil {
		return
	}
	s.sseHub.Broadcast(sse.Message{
		Channel: userID.String(),
		Event:   event,
		Data:    data,
	})
}

func (s *kitGenerationService) withTx(ctx context.Context, fn func(tx *gorm.DB) error) error {
	if s.db == nil {
		return fn(nil)
	}
	return s.db.WithContext(ctx).Transaction(fn)
}

func newContentItem(ct types.ContentType, style types.LearningStyle, payload any, metadata map[string]any) *types.ContentItem {
	return &types.ContentItem{
		ID:            uuid.New(),
		Type:          ct,
		LearningStyle: style,
		Content:       datatypes.JSON(mustJSON(payload)),
		Metadata:      datatypes.JSON(mustJSON(metadata)),
	}
}

func mustJSON(v any) []byte {
	b, _ := json.Marshal(v)
	return b
}
