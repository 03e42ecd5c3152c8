package services

import (
	"context"
	"testing"

	"github.com/google/uuid"

	quizrepo "github.com/yungbote/roadquiz-backend/internal/data/repos/quiz"
	"github.com/yungbote/roadquiz-backend/internal/data/repos/testutil"
	types "github.com/yungbote/roadquiz-backend/internal/domain"
	"github.com/yungbote/roadquiz-backend/internal/pkg/dbctx"
)

func TestQuizService_SubmitAnswer(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)
	ctx := context.Background()
	log := testutil.Logger(t)

	qRepo := quizrepo.NewQuizRepo(tx, log)
	waRepo := quizrepo.NewWrongAnswerRepo(tx, log)
	statsRepo := quizrepo.NewUserStatsRepo(tx, log)
	svc := NewQuizService(tx, log, qRepo, waRepo, statsRepo, nil)

	user := testutil.SeedUser(t, ctx, tx, "submit@example.com", "submit")
	quiz := testutil.SeedQuiz(t, ctx, tx, testutil.PtrUUID(user.ID), types.CategorySignals)

	dbc := dbctx.Context{Ctx: ctx, Tx: tx}

	result, err := svc.SubmitAnswer(ctx, user.ID, quiz.ID, quiz.CorrectAnswer)
	if err != nil {
		t.Fatalf("SubmitAnswer (correct): %v", err)
	}
	if !result.IsCorrect {
		t.Fatalf("expected correct answer to be accepted: %+v", result)
	}
	if result.CorrectAnswer != quiz.CorrectAnswer {
		t.Fatalf("expected correct answer %d, got %d", quiz.CorrectAnswer, result.CorrectAnswer)
	}

	count, err := waRepo.CountByUserIDs(dbc, []uuid.UUID{user.ID})
	if err != nil {
		t.Fatalf("CountByUserIDs: %v", err)
	}
	if count != 0 {
		t.Fatalf("correct answer must not create a wrong answer row, got %d", count)
	}

	statsRows, err := statsRepo.GetByUserIDs(dbc, []uuid.UUID{user.ID})
	if err != nil {
		t.Fatalf("GetByUserIDs (stats): %v", err)
	}
	if len(statsRows) != 1 {
		t.Fatalf("expected stats row to be created, got %d", len(statsRows))
	}
	stats := statsRows[0]
	if stats.TotalQuizzes != 1 || stats.CorrectAnswers != 1 || stats.Streak != 1 || stats.Points != 10 {
		t.Fatalf("after correct answer: %+v", stats)
	}

	result, err = svc.SubmitAnswer(ctx, user.ID, quiz.ID, 2)
	if err != nil {
		t.Fatalf("SubmitAnswer (wrong): %v", err)
	}
	if result.IsCorrect {
		t.Fatalf("expected wrong answer to be rejected: %+v", result)
	}

	count, err = waRepo.CountByUserIDs(dbc, []uuid.UUID{user.ID})
	if err != nil {
		t.Fatalf("CountByUserIDs: %v", err)
	}
	if count != 1 {
		t.Fatalf("wrong answer must create a wrong answer row, got %d", count)
	}
	rows, err := waRepo.GetByUserIDs(dbc, []uuid.UUID{user.ID})
	if err != nil {
		t.Fatalf("GetByUserIDs (wrong answers): %v", err)
	}
	if len(rows) != 1 || rows[0].QuizID != quiz.ID || rows[0].UserAnswer != "2" {
		t.Fatalf("unexpected wrong answer row: %+v", rows)
	}

	statsRows, err = statsRepo.GetByUserIDs(dbc, []uuid.UUID{user.ID})
	if err != nil {
		t.Fatalf("GetByUserIDs (stats): %v", err)
	}
	stats = statsRows[0]
	if stats.TotalQuizzes != 2 || stats.CorrectAnswers != 1 {
		t.Fatalf("after wrong answer: %+v", stats)
	}
	if stats.Streak != 0 {
		t.Fatalf("wrong answer should reset streak, got %d", stats.Streak)
	}
}

func TestQuizService_SubmitAnswerUnknownQuiz(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)
	ctx := context.Background()
	log := testutil.Logger(t)

	svc := NewQuizService(tx, log,
		quizrepo.NewQuizRepo(tx, log),
		quizrepo.NewWrongAnswerRepo(tx, log),
		quizrepo.NewUserStatsRepo(tx, log),
		nil,
	)
	user := testutil.SeedUser(t, ctx, tx, "missing@example.com", "missing")

	if _, err := svc.SubmitAnswer(ctx, user.ID, uuid.New(), 0); err == nil {
		t.Fatal("expected error for unknown quiz")
	}
}
