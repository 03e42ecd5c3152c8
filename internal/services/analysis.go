package services

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/yungbote/roadquiz-backend/internal/clients/redis"
	quizrepo "github.com/yungbote/roadquiz-backend/internal/data/repos/quiz"
	types "github.com/yungbote/roadquiz-backend/internal/domain"
	"github.com/yungbote/roadquiz-backend/internal/pkg/dbctx"
	"github.com/yungbote/roadquiz-backend/internal/pkg/logger"
)

const progressCacheTTL = 60 * time.Second

type Progress struct {
	TotalQuizzes   int64   `json:"total_quizzes"`
	CorrectAnswers int64   `json:"correct_answers"`
	Accuracy       float64 `json:"accuracy"`
	Level          string  `json:"level"`
}

// AnalysisService serves the learning statistics surface.
type AnalysisService interface {
	GetStats(ctx context.Context, userID uuid.UUID) (*types.UserStats, error)
	GetWrongAnswers(ctx context.Context, userID uuid.UUID) ([]*types.WrongAnswer, error)
	GetProgress(ctx context.Context, userID uuid.UUID) (*Progress, error)
}

type analysisService struct {
	db  *gorm.DB
	log *logger.Logger

	quizRepo        quizrepo.QuizRepo
	wrongAnswerRepo quizrepo.WrongAnswerRepo
	userStatsRepo   quizrepo.UserStatsRepo

	cache redis.Cache // optional, may be nil
}

func NewAnalysisService(
	gdb *gorm.DB,
	log *logger.Logger,
	quizRepo quizrepo.QuizRepo,
	wrongAnswerRepo quizrepo.WrongAnswerRepo,
	userStatsRepo quizrepo.UserStatsRepo,
	cache redis.Cache,
) AnalysisService {
	return &analysisService{
		db:              gdb,
		log:             log.With("service", "AnalysisService"),
		quizRepo:        quizRepo,
		wrongAnswerRepo: wrongAnswerRepo,
		userStatsRepo:   userStatsRepo,
		cache:           cache,
	}
}

func (as *analysisService) GetStats(ctx context.Context, userID uuid.UUID) (*types.UserStats, error) {
	dbc := dbctx.Context{Ctx: ctx}
	rows, err := as.userStatsRepo.GetByUserIDs(dbc, []uuid.UUID{userID})
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
	if _, err := as.userStatsRepo.Create(dbc, []*types.UserStats{stats}); err != nil {
		return nil, fmt.Errorf("create user stats: %w", err)
	}
	return stats, nil
}

func (as *analysisService) GetWrongAnswers(ctx context.Context, userID uuid.UUID) ([]*types.WrongAnswer, error) {
	rows, err := as.wrongAnswerRepo.GetByUserIDs(dbctx.Context{Ctx: ctx}, []uuid.UUID{userID})
	if err != nil {
		return nil, fmt.Errorf("fetch wrong answers: %w", err)
	}
	return rows, nil
}

// GetProgress aggregates directly over the quiz and wrong answer tables
// rather than the per-user counters: "total" counts quizzes the user created
// and "correct" counts wrong answer rows. The two surfaces intentionally
// disagree; clients rely on this shape.
func (as *analysisService) GetProgress(ctx context.Context, userID uuid.UUID) (*Progress, error) {
	cacheKey := progressCacheKey(userID)
	if as.cache != nil {
		if raw, err := as.cache.Get(ctx, cacheKey); err == nil {
			var cached Progress
			if jErr := json.Unmarshal(raw, &cached); jErr == nil {
				return &cached, nil
			}
		}
	}

	dbc := dbctx.Context{Ctx: ctx}
	total, err := as.quizRepo.CountByUserIDs(dbc, []uuid.UUID{userID})
	if err != nil {
		return nil, fmt.Errorf("count quizzes: %w", err)
	}
	correct, err := as.wrongAnswerRepo.CountByUserIDs(dbc, []uuid.UUID{userID})
	if err != nil {
		return nil, fmt.Errorf("count answers: %w", err)
	}

	accuracy := 0.0
	if total > 0 {
		accuracy = float64(correct) / float64(total) * 100
	}
	accuracy = math.Round(accuracy*10) / 10

	progress := &Progress{
		TotalQuizzes:   total,
		CorrectAnswers: correct,
		Accuracy:       accuracy,
		Level:          LevelForAccuracy(accuracy),
	}

	if as.cache != nil {
		if raw, jErr := json.Marshal(progress); jErr == nil {
			if cErr := as.cache.Set(ctx, cacheKey, raw, progressCacheTTL); cErr != nil {
				as.log.Warn("Progress cache write failed", "user_id", userID, "error", cErr)
			}
		}
	}

	return progress, nil
}

func progressCacheKey(userID uuid.UUID) string {
	return "progress:" + userID.String()
}

// LevelForAccuracy maps an accuracy percentage to a learner level.
func LevelForAccuracy(accuracy float64) string {
	switch {
	case accuracy < 70:
		return types.LevelBeginner
	case accuracy < 90:
		return types.LevelIntermediate
	default:
		return types.LevelAdvanced
	}
}
