package testutil

import (
	"context"
	"strconv"
	"testing"

	"github.com/google/uuid"
	types "github.com/yungbote/roadquiz-backend/internal/domain"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

func SeedUser(tb testing.TB, ctx context.Context, tx *gorm.DB, email, username string) *types.User {
	tb.Helper()
	u := &types.User{
		ID:       uuid.New(),
		Email:    email,
		Username: username,
		Password: "pw",
		IsActive: true,
	}
	if err := tx.WithContext(ctx).Create(u).Error; err != nil {
		tb.Fatalf("seed user: %v", err)
	}
	return u
}

func SeedQuiz(tb testing.TB, ctx context.Context, tx *gorm.DB, userID *uuid.UUID, category string) *types.Quiz {
	tb.Helper()
	q := &types.Quiz{
		ID:            uuid.New(),
		UserID:        userID,
		Category:      category,
		Question:      "question",
		Options:       datatypes.JSON([]byte(`["a","b","c","d"]`)),
		CorrectAnswer: 0,
		Explanation:   "explanation",
		RoadElements:  datatypes.JSON([]byte("[]")),
		AIGenerated:   false,
	}
	if err := tx.WithContext(ctx).Create(q).Error; err != nil {
		tb.Fatalf("seed quiz: %v", err)
	}
	return q
}

func SeedWrongAnswer(tb testing.TB, ctx context.Context, tx *gorm.DB, userID, quizID uuid.UUID, answer int) *types.WrongAnswer {
	tb.Helper()
	wa := &types.WrongAnswer{
		ID:         uuid.New(),
		UserID:     userID,
		QuizID:     quizID,
		UserAnswer: strconv.Itoa(answer),
	}
	if err := tx.WithContext(ctx).Create(wa).Error; err != nil {
		tb.Fatalf("seed wrong answer: %v", err)
	}
	return wa
}

func SeedUserStats(tb testing.TB, ctx context.Context, tx *gorm.DB, userID uuid.UUID) *types.UserStats {
	tb.Helper()
	s := &types.UserStats{
		ID:     uuid.New(),
		UserID: userID,
		Level:  types.LevelBeginner,
	}
	if err := tx.WithContext(ctx).Create(s).Error; err != nil {
		tb.Fatalf("seed user stats: %v", err)
	}
	return s
}

func PtrUUID(v uuid.UUID) *uuid.UUID { return &v }
