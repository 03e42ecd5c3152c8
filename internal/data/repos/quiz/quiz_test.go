package quiz

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/yungbote/roadquiz-backend/internal/data/repos/testutil"
	types "github.com/yungbote/roadquiz-backend/internal/domain"
	"github.com/yungbote/roadquiz-backend/internal/pkg/dbctx"
	"gorm.io/datatypes"
)

func TestQuizRepo(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)

	dbc := dbctx.Context{Ctx: context.Background(), Tx: tx}
	repo := NewQuizRepo(db, testutil.Logger(t))

	u := testutil.SeedUser(t, dbc.Ctx, tx, "quizrepo@example.com", "quizrepo")

	created, err := repo.Create(dbc, []*types.Quiz{
		{
			ID:            uuid.New(),
			UserID:        &u.ID,
			Category:      types.CategorySignals,
			Question:      "신호등이 황색일 때 올바른 행동은?",
			Options:       datatypes.JSON([]byte(`["가속한다","정지선 앞에 정지한다","경적을 울린다","차로를 바꾼다"]`)),
			CorrectAnswer: 1,
			Explanation:   "황색 신호에서는 정지선 앞에 정지해야 합니다.",
			RoadElements:  datatypes.JSON([]byte(`["traffic light"]`)),
			AIGenerated:   true,
		},
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if len(created) != 1 {
		t.Fatalf("Create: expected 1 quiz, got %d", len(created))
	}

	gotByIDs, err := repo.GetByIDs(dbc, []uuid.UUID{created[0].ID})
	if err != nil {
		t.Fatalf("GetByIDs: %v", err)
	}
	if len(gotByIDs) != 1 || gotByIDs[0].ID != created[0].ID {
		t.Fatalf("GetByIDs: unexpected result: %+v", gotByIDs)
	}
	if gotByIDs[0].Category != types.CategorySignals {
		t.Fatalf("GetByIDs: wrong category %q", gotByIDs[0].Category)
	}

	testutil.SeedQuiz(t, dbc.Ctx, tx, &u.ID, types.CategoryHighway)
	testutil.SeedQuiz(t, dbc.Ctx, tx, nil, types.CategoryParking)

	listed, err := repo.List(dbc, 0, 0)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(listed) < 3 {
		t.Fatalf("List: expected at least 3 quizzes, got %d", len(listed))
	}

	page, err := repo.List(dbc, 1, 1)
	if err != nil {
		t.Fatalf("List (paged): %v", err)
	}
	if len(page) != 1 {
		t.Fatalf("List (paged): expected 1 quiz, got %d", len(page))
	}

	count, err := repo.CountByUserIDs(dbc, []uuid.UUID{u.ID})
	if err != nil {
		t.Fatalf("CountByUserIDs: %v", err)
	}
	if count != 2 {
		t.Fatalf("CountByUserIDs: expected 2, got %d", count)
	}

	count, err = repo.CountByUserIDs(dbc, nil)
	if err != nil {
		t.Fatalf("CountByUserIDs (empty): %v", err)
	}
	if count != 0 {
		t.Fatalf("CountByUserIDs (empty): expected 0, got %d", count)
	}
}
