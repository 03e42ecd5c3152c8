package services

import (
	"context"
	"testing"

	"github.com/google/uuid"

	types "github.com/yungbote/roadquiz-backend/internal/domain"
	"github.com/yungbote/roadquiz-backend/internal/pkg/dbctx"
)

type countQuizRepo struct {
	total int64
}

func (f *countQuizRepo) Create(dbc dbctx.Context, quizzes []*types.Quiz) ([]*types.Quiz, error) {
	return quizzes, nil
}

func (f *countQuizRepo) GetByIDs(dbc dbctx.Context, quizIDs []uuid.UUID) ([]*types.Quiz, error) {
	return nil, nil
}

func (f *countQuizRepo) List(dbc dbctx.Context, skip, limit int) ([]*types.Quiz, error) {
	return nil, nil
}

func (f *countQuizRepo) CountByUserIDs(dbc dbctx.Context, userIDs []uuid.UUID) (int64, error) {
	return f.total, nil
}

type countWrongAnswerRepo struct {
	count int64
}

func (f *countWrongAnswerRepo) Create(dbc dbctx.Context, answers []*types.WrongAnswer) ([]*types.WrongAnswer, error) {
	return answers, nil
}

func (f *countWrongAnswerRepo) GetByUserIDs(dbc dbctx.Context, userIDs []uuid.UUID) ([]*types.WrongAnswer, error) {
	return nil, nil
}

func (f *countWrongAnswerRepo) CountByUserIDs(dbc dbctx.Context, userIDs []uuid.UUID) (int64, error) {
	return f.count, nil
}

func (f *countWrongAnswerRepo) MarkReviewed(dbc dbctx.Context, answerIDs []uuid.UUID) error {
	return nil
}

func TestLevelForAccuracy(t *testing.T) {
	cases := []struct {
		accuracy float64
		want     string
	}{
		{0, types.LevelBeginner},
		{69.9, types.LevelBeginner},
		{70, types.LevelIntermediate},
		{89.9, types.LevelIntermediate},
		{90, types.LevelAdvanced},
		{100, types.LevelAdvanced},
	}
	for _, tc := range cases {
		if got := LevelForAccuracy(tc.accuracy); got != tc.want {
			t.Fatalf("LevelForAccuracy(%v)=%q, want %q", tc.accuracy, got, tc.want)
		}
	}
}

func TestGetProgressNoQuizzes(t *testing.T) {
	as := &analysisService{
		log:             testLogger(t),
		quizRepo:        &countQuizRepo{},
		wrongAnswerRepo: &countWrongAnswerRepo{},
	}

	progress, err := as.GetProgress(context.Background(), uuid.New())
	if err != nil {
		t.Fatalf("GetProgress: %v", err)
	}
	if progress.TotalQuizzes != 0 || progress.CorrectAnswers != 0 {
		t.Fatalf("expected empty counters, got %+v", progress)
	}
	if progress.Accuracy != 0 {
		t.Fatalf("zero quizzes must not divide, got accuracy %v", progress.Accuracy)
	}
	if progress.Level != types.LevelBeginner {
		t.Fatalf("expected %q, got %q", types.LevelBeginner, progress.Level)
	}
}

func TestGetProgressAccuracy(t *testing.T) {
	as := &analysisService{
		log:             testLogger(t),
		quizRepo:        &countQuizRepo{total: 10},
		wrongAnswerRepo: &countWrongAnswerRepo{count: 8},
	}

	progress, err := as.GetProgress(context.Background(), uuid.New())
	if err != nil {
		t.Fatalf("GetProgress: %v", err)
	}
	if progress.TotalQuizzes != 10 || progress.CorrectAnswers != 8 {
		t.Fatalf("unexpected counters: %+v", progress)
	}
	if progress.Accuracy != 80 {
		t.Fatalf("expected accuracy 80, got %v", progress.Accuracy)
	}
	if progress.Level != types.LevelIntermediate {
		t.Fatalf("expected %q, got %q", types.LevelIntermediate, progress.Level)
	}
}

func TestApplyAnswerToStats(t *testing.T) {
	stats := &types.UserStats{Level: types.LevelBeginner}

	applyAnswerToStats(stats, true)
	if stats.TotalQuizzes != 1 || stats.CorrectAnswers != 1 || stats.Streak != 1 || stats.Points != 10 {
		t.Fatalf("after correct answer: %+v", stats)
	}
	if stats.Level != types.LevelAdvanced {
		t.Fatalf("100%% accuracy should be advanced, got %q", stats.Level)
	}

	applyAnswerToStats(stats, false)
	if stats.TotalQuizzes != 2 || stats.CorrectAnswers != 1 {
		t.Fatalf("after wrong answer: %+v", stats)
	}
	if stats.Streak != 0 {
		t.Fatalf("wrong answer should reset streak, got %d", stats.Streak)
	}
	if stats.Points != 10 {
		t.Fatalf("wrong answer should not change points, got %d", stats.Points)
	}
	if stats.Level != types.LevelBeginner {
		t.Fatalf("50%% accuracy should be beginner, got %q", stats.Level)
	}
}
