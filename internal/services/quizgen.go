package services

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/yungbote/roadquiz-backend/internal/clients/openai"
	quizrepo "github.com/yungbote/roadquiz-backend/internal/data/repos/quiz"
	types "github.com/yungbote/roadquiz-backend/internal/domain"
	"github.com/yungbote/roadquiz-backend/internal/pkg/dbctx"
	"github.com/yungbote/roadquiz-backend/internal/pkg/logger"
)

// fallbackDescription is served when scene description generation fails.
const fallbackDescription = "도로 상황이 감지되었습니다. 안전 운전에 주의하세요."

const describeSystemPrompt = "당신은 도로교통법 전문가입니다. 도로 상황을 분석하여 명확하고 교육적인 설명을 제공합니다."

const synthesizeSystemPrompt = "당신은 도로교통법 교육 전문가입니다. 명확하고 교육적인 퀴즈를 생성합니다."

// quizSchema constrains the model output to the quiz shape consumed by the
// pipeline.
var quizSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"question": map[string]any{"type": "string"},
		"options": map[string]any{
			"type":     "array",
			"items":    map[string]any{"type": "string"},
			"minItems": 4,
			"maxItems": 4,
		},
		"correct":     map[string]any{"type": "integer"},
		"explanation": map[string]any{"type": "string"},
	},
	"required":             []string{"question", "options", "correct", "explanation"},
	"additionalProperties": false,
}

// GenerationResult is the full output of the video-to-quiz pipeline.
type GenerationResult struct {
	Quiz          *types.Quiz          `json:"quiz"`
	VideoAnalysis *types.VideoAnalysis `json:"video_analysis"`
	RoadElements  []string             `json:"road_elements"`
	Description   string               `json:"description"`
	Category      string               `json:"category"`
	AIGenerated   bool                 `json:"ai_generated"`

	// Set by the transport layer when the source video was archived.
	VideoURL string `json:"video_url,omitempty"`
}

// QuizGenService runs the AI pipeline that turns a dashcam video into a quiz.
// Every stage degrades instead of failing: scene analysis yields an empty
// element list, description falls back to a fixed sentence, and quiz
// synthesis falls back to the curated per-category bank. Only persistence
// errors propagate.
type QuizGenService interface {
	DescribeScene(ctx context.Context, roadElements []string) (string, bool)
	SynthesizeQuiz(ctx context.Context, description, category string) (GeneratedQuiz, bool)
	GenerateFromVideo(ctx context.Context, userID uuid.UUID, videoPath, category string) (*GenerationResult, error)
}

type quizGenService struct {
	db  *gorm.DB
	log *logger.Logger

	ai       openai.Client
	analyzer SceneAnalyzer
	vector   VectorService // optional, may be nil

	quizRepo          quizrepo.QuizRepo
	videoAnalysisRepo quizrepo.VideoAnalysisRepo
}

func NewQuizGenService(
	gdb *gorm.DB,
	log *logger.Logger,
	ai openai.Client,
	analyzer SceneAnalyzer,
	vector VectorService,
	quizRepo quizrepo.QuizRepo,
	videoAnalysisRepo quizrepo.VideoAnalysisRepo,
) QuizGenService {
	return &quizGenService{
		db:                gdb,
		log:               log.With("service", "QuizGenService"),
		ai:                ai,
		analyzer:          analyzer,
		vector:            vector,
		quizRepo:          quizRepo,
		videoAnalysisRepo: videoAnalysisRepo,
	}
}

// DescribeScene returns a Korean narrative for the detected road elements.
// The second return reports whether the description came from the model.
func (qs *quizGenService) DescribeScene(ctx context.Context, roadElements []string) (string, bool) {
	user := fmt.Sprintf(
		"다음 도로 요소들이 감지되었습니다: %s\n\n이 상황을 바탕으로 도로교통법에 관련된 상황 설명을 생성해주세요. 설명은 한국어로 작성하고, 도로교통법과 관련된 내용을 포함해야 합니다.",
		strings.Join(roadElements, ", "),
	)

	text, err := qs.ai.GenerateText(ctx, describeSystemPrompt, user)
	if err != nil {
		qs.log.Warn("Scene description failed, using fallback", "error", err)
		return fallbackDescription, false
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return fallbackDescription, false
	}
	return text, true
}

// SynthesizeQuiz generates a quiz from the scene description. Output that
// does not survive validation is replaced by the curated fallback for the
// category. The second return reports whether the quiz came from the model.
func (qs *quizGenService) SynthesizeQuiz(ctx context.Context, description, category string) (GeneratedQuiz, bool) {
	user := fmt.Sprintf(
		"다음 도로 상황 설명을 바탕으로 도로교통법 퀴즈를 생성해주세요:\n\n상황: %s\n카테고리: %s\n\n퀴즈는 도로교통법에 관련된 내용이어야 하며, 4개의 보기 중 하나의 정답이 있어야 합니다.",
		description, category,
	)

	obj, err := qs.ai.GenerateJSON(ctx, synthesizeSystemPrompt, user, "road_traffic_quiz", quizSchema)
	if err != nil {
		qs.log.Warn("Quiz synthesis failed, using fallback", "category", category, "error", err)
		return DefaultQuiz(category), false
	}

	quiz, vErr := parseGeneratedQuiz(obj)
	if vErr != nil {
		qs.log.Warn("Quiz synthesis returned invalid payload, using fallback", "category", category, "error", vErr)
		return DefaultQuiz(category), false
	}
	return quiz, true
}

// parseGeneratedQuiz validates the raw model payload. The schema already
// constrains shape; this guards semantics (non-empty text, index in range).
func parseGeneratedQuiz(obj map[string]any) (GeneratedQuiz, error) {
	var quiz GeneratedQuiz

	raw, err := json.Marshal(obj)
	if err != nil {
		return quiz, err
	}
	if err := json.Unmarshal(raw, &quiz); err != nil {
		return quiz, err
	}

	quiz.Question = strings.TrimSpace(quiz.Question)
	quiz.Explanation = strings.TrimSpace(quiz.Explanation)
	if quiz.Question == "" {
		return quiz, fmt.Errorf("empty question")
	}
	if len(quiz.Options) != 4 {
		return quiz, fmt.Errorf("expected 4 options, got %d", len(quiz.Options))
	}
	for i := range quiz.Options {
		quiz.Options[i] = strings.TrimSpace(quiz.Options[i])
		if quiz.Options[i] == "" {
			return quiz, fmt.Errorf("empty option at index %d", i)
		}
	}
	if quiz.Correct < 0 || quiz.Correct > 3 {
		return quiz, fmt.Errorf("correct index %d out of range", quiz.Correct)
	}
	if quiz.Explanation == "" {
		return quiz, fmt.Errorf("empty explanation")
	}
	return quiz, nil
}

func (qs *quizGenService) GenerateFromVideo(ctx context.Context, userID uuid.UUID, videoPath, category string) (*GenerationResult, error) {
	if !types.ValidCategory(category) {
		category = types.CategorySignals
	}

	roadElements := qs.analyzer.AnalyzeVideo(ctx, videoPath)
	description, _ := qs.DescribeScene(ctx, roadElements)
	generated, aiGenerated := qs.SynthesizeQuiz(ctx, description, category)

	elementsJSON, err := json.Marshal(roadElements)
	if err != nil {
		return nil, fmt.Errorf("marshal road elements: %w", err)
	}
	optionsJSON, err := json.Marshal(generated.Options)
	if err != nil {
		return nil, fmt.Errorf("marshal options: %w", err)
	}

	quiz := &types.Quiz{
		ID:            uuid.New(),
		UserID:        &userID,
		Category:      category,
		Question:      generated.Question,
		Options:       datatypes.JSON(optionsJSON),
		CorrectAnswer: generated.Correct,
		Explanation:   generated.Explanation,
		VideoPath:     &videoPath,
		RoadElements:  datatypes.JSON(elementsJSON),
		AIGenerated:   aiGenerated,
	}
	analysis := &types.VideoAnalysis{
		ID:           uuid.New(),
		UserID:       userID,
		VideoPath:    videoPath,
		RoadElements: datatypes.JSON(elementsJSON),
		Description:  description,
		Category:     category,
	}

	err = qs.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		txc := dbctx.Context{Ctx: ctx, Tx: tx}
		if _, aErr := qs.videoAnalysisRepo.Create(txc, []*types.VideoAnalysis{analysis}); aErr != nil {
			return fmt.Errorf("persist video analysis: %w", aErr)
		}
		if _, qErr := qs.quizRepo.Create(txc, []*types.Quiz{quiz}); qErr != nil {
			return fmt.Errorf("persist quiz: %w", qErr)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	// Search indexing is best effort; never fail the pipeline over it.
	if qs.vector != nil {
		if vErr := qs.vector.IndexQuiz(ctx, quiz.ID, generated, category, description, roadElements); vErr != nil {
			qs.log.Warn("Quiz vector indexing failed", "quiz_id", quiz.ID, "error", vErr)
		}
	}

	return &GenerationResult{
		Quiz:          quiz,
		VideoAnalysis: analysis,
		RoadElements:  roadElements,
		Description:   description,
		Category:      category,
		AIGenerated:   aiGenerated,
	}, nil
}
