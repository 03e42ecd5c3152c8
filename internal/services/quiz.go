package services

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/yungbote/roadquiz-backend/internal/clients/redis"
	quizrepo "github.com/yungbote/roadquiz-backend/internal/data/repos/quiz"
	types "github.com/yungbote/roadquiz-backend/internal/domain"
	"github.com/yungbote/roadquiz-backend/internal/pkg/apierr"
	"github.com/yungbote/roadquiz-backend/internal/pkg/dbctx"
	"github.com/yungbote/roadquiz-backend/internal/pkg/logger"
)

type CreateQuizInput struct {
	Category      string
	Question      string
	Options       []string
	CorrectAnswer int
	Explanation   string
	VideoPath     *string
	RoadElements  []string
}

type AnswerResult struct {
	IsCorrect     bool   `json:"is_correct"`
	CorrectAnswer int    `json:"correct_answer"`
	Explanation   string `json:"explanation"`
}

type QuizService interface {
	List(ctx context.Context, skip, limit int) ([]*types.Quiz, error)
	Get(ctx context.Context, quizID uuid.UUID) (*types.Quiz, error)
	Create(ctx context.Context, userID uuid.UUID, input CreateQuizInput) (*types.Quiz, error)
	SubmitAnswer(ctx context.Context, userID, quizID uuid.UUID, userAnswer int) (*AnswerResult, error)
}

type quizService struct {
	db  *gorm.DB
	log *logger.Logger

	quizRepo        quizrepo.QuizRepo
	wrongAnswerRepo quizrepo.WrongAnswerRepo
	userStatsRepo   quizrepo.UserStatsRepo

	cache redis.Cache // optional, may be nil
}

func NewQuizService(
	gdb *gorm.DB,
	log *logger.Logger,
	quizRepo quizrepo.QuizRepo,
	wrongAnswerRepo quizrepo.WrongAnswerRepo,
	userStatsRepo quizrepo.UserStatsRepo,
	cache redis.Cache,
) QuizService {
	return &quizService{
		db:              gdb,
		log:             log.With("service", "QuizService"),
		quizRepo:        quizRepo,
		wrongAnswerRepo: wrongAnswerRepo,
		userStatsRepo:   userStatsRepo,
		cache:           cache,
	}
}

func (qs *quizService) List(ctx context.Context, skip, limit int) ([]*types.Quiz, error) {
	quizzes, err := qs.quizRepo.List(dbctx.Context{Ctx: ctx}, skip, limit)
	if err != nil {
		return nil, fmt.Errorf("list quizzes: %w", err)
	}
	return quizzes, nil
}

func (qs *quizService) Get(ctx context.Context, quizID uuid.UUID) (*types.Quiz, error) {
	quizzes, err := qs.quizRepo.GetByIDs(dbctx.Context{Ctx: ctx}, []uuid.UUID{quizID})
	if err != nil {
		return nil, fmt.Errorf("fetch quiz: %w", err)
	}
	if len(quizzes) == 0 {
		return nil, apierr.NotFound("quiz_not_found", fmt.Errorf("quiz %s not found", quizID))
	}
	return quizzes[0], nil
}

func (qs *quizService) Create(ctx context.Context, userID uuid.UUID, input CreateQuizInput) (*types.Quiz, error) {
	if !types.ValidCategory(input.Category) {
		return nil, apierr.BadRequest("invalid_category", fmt.Errorf("unknown category %q", input.Category))
	}
	if input.Question == "" {
		return nil, apierr.BadRequest("invalid_question", fmt.Errorf("question required"))
	}
	if len(input.Options) != 4 {
		return nil, apierr.BadRequest("invalid_options", fmt.Errorf("expected 4 options, got %d", len(input.Options)))
	}
	if input.CorrectAnswer < 0 || input.CorrectAnswer > 3 {
		return nil, apierr.BadRequest("invalid_correct_answer", fmt.Errorf("correct answer index %d out of range", input.CorrectAnswer))
	}

	optionsJSON, err := json.Marshal(input.Options)
	if err != nil {
		return nil, fmt.Errorf("marshal options: %w", err)
	}
	elements := input.RoadElements
	if elements == nil {
		elements = []string{}
	}
	elementsJSON, err := json.Marshal(elements)
	if err != nil {
		return nil, fmt.Errorf("marshal road elements: %w", err)
	}

	quiz := &types.Quiz{
		ID:            uuid.New(),
		UserID:        &userID,
		Category:      input.Category,
		Question:      input.Question,
		Options:       datatypes.JSON(optionsJSON),
		CorrectAnswer: input.CorrectAnswer,
		Explanation:   input.Explanation,
		VideoPath:     input.VideoPath,
		RoadElements:  datatypes.JSON(elementsJSON),
		AIGenerated:   false,
	}

	if _, err := qs.quizRepo.Create(dbctx.Context{Ctx: ctx}, []*types.Quiz{quiz}); err != nil {
		return nil, fmt.Errorf("create quiz: %w", err)
	}
	return quiz, nil
}

func (qs *quizService) SubmitAnswer(ctx context.Context, userID, quizID uuid.UUID, userAnswer int) (*AnswerResult, error) {
	quiz, err := qs.Get(ctx, quizID)
	if err != nil {
		return nil, err
	}

	isCorrect := userAnswer == quiz.CorrectAnswer

	err = qs.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		txc := dbctx.Context{Ctx: ctx, Tx: tx}

		// Only wrong answers are persisted as attempt rows; the review
		// notebook is built from them.
		if !isCorrect {
			wrong := &types.WrongAnswer{
				ID:         uuid.New(),
				UserID:     userID,
				QuizID:     quizID,
				UserAnswer: strconv.Itoa(userAnswer),
			}
			if _, wErr := qs.wrongAnswerRepo.Create(txc, []*types.WrongAnswer{wrong}); wErr != nil {
				return fmt.Errorf("record wrong answer: %w", wErr)
			}
		}

		stats, sErr := qs.loadOrCreateStats(txc, userID)
		if sErr != nil {
			return sErr
		}
		applyAnswerToStats(stats, isCorrect)
		if uErr := qs.userStatsRepo.Update(txc, stats); uErr != nil {
			return fmt.Errorf("update user stats: %w", uErr)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if qs.cache != nil {
		if cErr := qs.cache.Del(ctx, progressCacheKey(userID)); cErr != nil {
			qs.log.Warn("Progress cache invalidation failed", "user_id", userID, "error", cErr)
		}
	}

	return &AnswerResult{
		IsCorrect:     isCorrect,
		CorrectAnswer: quiz.CorrectAnswer,
		Explanation:   quiz.Explanation,
	}, nil
}

func (qs *quizService) loadOrCreateStats(dbc dbctx.Context, userID uuid.UUID) (*types.UserStats, error) {
	rows, err := qs.userStatsRepo.GetByUserIDs(dbc, []uuid.UUID{userID})
	if err != nil {
		return nil, fmt.Errorf("fetch user stats: %w", err)
	}
	if len(rows) > 0 {
		return rows[0], nil
	}
	stats := &types.UserStats{
		ID:     uuid.New(),
		UserID: userID,
		Level:  types.LevelBeginner,
	}
	if _, err := qs.userStatsRepo.Create(dbc, []*types.UserStats{stats}); err != nil {
		return nil, fmt.Errorf("create user stats: %w", err)
	}
	return stats, nil
}

// applyAnswerToStats folds one answer into the counters. A correct answer
// extends the streak and earns points; a wrong one resets the streak.
func applyAnswerToStats(stats *types.UserStats, isCorrect bool) {
	stats.TotalQuizzes++
	if isCorrect {
		stats.CorrectAnswers++
		stats.Streak++
		stats.Points += 10
	} else {
		stats.Streak = 0
	}
	if stats.TotalQuizzes > 0 {
		accuracy := float64(stats.CorrectAnswers) / float64(stats.TotalQuizzes) * 100
		stats.Level = LevelForAccuracy(accuracy)
	}
}
