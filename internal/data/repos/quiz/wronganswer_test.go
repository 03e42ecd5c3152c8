package quiz

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/yungbote/roadquiz-backend/internal/data/repos/testutil"
	types "github.com/yungbote/roadquiz-backend/internal/domain"
	"github.com/yungbote/roadquiz-backend/internal/pkg/dbctx"
)

func TestWrongAnswerRepo(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)

	dbc := dbctx.Context{Ctx: context.Background(), Tx: tx}
	repo := NewWrongAnswerRepo(db, testutil.Logger(t))

	u := testutil.SeedUser(t, dbc.Ctx, tx, "wrongrepo@example.com", "wrongrepo")
	q := testutil.SeedQuiz(t, dbc.Ctx, tx, &u.ID, types.CategoryIntersection)

	created, err := repo.Create(dbc, []*types.WrongAnswer{
		{
			ID:         uuid.New(),
			UserID:     u.ID,
			QuizID:     q.ID,
			UserAnswer: "2",
		},
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if len(created) != 1 {
		t.Fatalf("Create: expected 1 row, got %d", len(created))
	}

	rows, err := repo.GetByUserIDs(dbc, []uuid.UUID{u.ID})
	if err != nil {
		t.Fatalf("GetByUserIDs: %v", err)
	}
	if len(rows) != 1 || rows[0].UserAnswer != "2" {
		t.Fatalf("GetByUserIDs: unexpected result: %+v", rows)
	}
	if rows[0].IsReviewed {
		t.Fatalf("GetByUserIDs: expected IsReviewed false")
	}

	count, err := repo.CountByUserIDs(dbc, []uuid.UUID{u.ID})
	if err != nil {
		t.Fatalf("CountByUserIDs: %v", err)
	}
	if count != 1 {
		t.Fatalf("CountByUserIDs: expected 1, got %d", count)
	}

	if err := repo.MarkReviewed(dbc, []uuid.UUID{created[0].ID}); err != nil {
		t.Fatalf("MarkReviewed: %v", err)
	}
	rows, err = repo.GetByUserIDs(dbc, []uuid.UUID{u.ID})
	if err != nil {
		t.Fatalf("GetByUserIDs after review: %v", err)
	}
	if len(rows) != 1 || !rows[0].IsReviewed {
		t.Fatalf("MarkReviewed: flag not set: %+v", rows)
	}
}
