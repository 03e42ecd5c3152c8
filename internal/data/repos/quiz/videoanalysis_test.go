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

func TestVideoAnalysisRepo(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)

	dbc := dbctx.Context{Ctx: context.Background(), Tx: tx}
	repo := NewVideoAnalysisRepo(db, testutil.Logger(t))

	u := testutil.SeedUser(t, dbc.Ctx, tx, "videorepo@example.com", "videorepo")

	created, err := repo.Create(dbc, []*types.VideoAnalysis{
		{
			ID:           uuid.New(),
			UserID:       u.ID,
			VideoPath:    "uploads/videos/dashcam.mp4",
			RoadElements: datatypes.JSON([]byte(`["road","traffic light"]`)),
			Description:  "교차로에 접근하는 차량이 보입니다.",
			Category:     types.CategoryIntersection,
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
	if len(rows) != 1 || rows[0].VideoPath != "uploads/videos/dashcam.mp4" {
		t.Fatalf("GetByUserIDs: unexpected result: %+v", rows)
	}
}
