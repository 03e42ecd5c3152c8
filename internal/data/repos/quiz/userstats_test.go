package quiz

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/yungbote/roadquiz-backend/internal/data/repos/testutil"
	types "github.com/yungbote/roadquiz-backend/internal/domain"
	"github.com/yungbote/roadquiz-backend/internal/pkg/dbctx"
)

func TestUserStatsRepo(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)

	dbc := dbctx.Context{Ctx: context.Background(), Tx: tx}
	repo := NewUserStatsRepo(db, testutil.Logger(t))

	u := testutil.SeedUser(t, dbc.Ctx, tx, "statsrepo@example.com", "statsrepo")

	created, err := repo.Create(dbc, []*types.UserStats{
		{
			ID:     uuid.New(),
			UserID: u.ID,
			Level:  types.LevelBeginner,
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
	if len(rows) != 1 || rows[0].UserID != u.ID {
		t.Fatalf("GetByUserIDs: unexpected result: %+v", rows)
	}

	stats := rows[0]
	stats.TotalQuizzes = 5
	stats.CorrectAnswers = 4
	stats.Streak = 4
	stats.Points = 40
	stats.Level = types.LevelIntermediate
	if err := repo.Update(dbc, stats); err != nil {
		t.Fatalf("Update: %v", err)
	}

	rows, err = repo.GetByUserIDs(dbc, []uuid.UUID{u.ID})
	if err != nil {
		t.Fatalf("GetByUserIDs after update: %v", err)
	}
	if len(rows) != 1 || rows[0].TotalQuizzes != 5 || rows[0].Level != types.LevelIntermediate {
		t.Fatalf("Update: unexpected result: %+v", rows)
	}
}
