package user

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/yungbote/roadquiz-backend/internal/data/repos/testutil"
	types "github.com/yungbote/roadquiz-backend/internal/domain"
	"github.com/yungbote/roadquiz-backend/internal/pkg/dbctx"
)

func TestUserRepo(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)

	repo := NewUserRepo(db, testutil.Logger(t))
	dbc := dbctx.Context{Ctx: context.Background(), Tx: tx}

	created, err := repo.Create(dbc, []*types.User{
		{
			ID:       uuid.New(),
			Email:    "userrepo@example.com",
			Username: "userrepo",
			Password: "pw",
			IsActive: true,
		},
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if len(created) != 1 {
		t.Fatalf("Create: expected 1 user, got %d", len(created))
	}

	gotByIDs, err := repo.GetByIDs(dbc, []uuid.UUID{created[0].ID})
	if err != nil {
		t.Fatalf("GetByIDs: %v", err)
	}
	if len(gotByIDs) != 1 || gotByIDs[0].ID != created[0].ID {
		t.Fatalf("GetByIDs: unexpected result: %+v", gotByIDs)
	}

	gotByEmails, err := repo.GetByEmails(dbc, []string{created[0].Email})
	if err != nil {
		t.Fatalf("GetByEmails: %v", err)
	}
	if len(gotByEmails) != 1 || gotByEmails[0].Email != created[0].Email {
		t.Fatalf("GetByEmails: unexpected result: %+v", gotByEmails)
	}

	gotByUsernames, err := repo.GetByUsernames(dbc, []string{created[0].Username})
	if err != nil {
		t.Fatalf("GetByUsernames: %v", err)
	}
	if len(gotByUsernames) != 1 || gotByUsernames[0].Username != created[0].Username {
		t.Fatalf("GetByUsernames: unexpected result: %+v", gotByUsernames)
	}

	exists, err := repo.EmailExists(dbc, created[0].Email)
	if err != nil {
		t.Fatalf("EmailExists: %v", err)
	}
	if !exists {
		t.Fatalf("EmailExists: expected true")
	}

	exists, err = repo.EmailExists(dbc, "does-not-exist@example.com")
	if err != nil {
		t.Fatalf("EmailExists (missing): %v", err)
	}
	if exists {
		t.Fatalf("EmailExists (missing): expected false")
	}

	exists, err = repo.UsernameExists(dbc, created[0].Username)
	if err != nil {
		t.Fatalf("UsernameExists: %v", err)
	}
	if !exists {
		t.Fatalf("UsernameExists: expected true")
	}

	if err := repo.UpdateProfile(dbc, created[0].ID, map[string]any{"username": "renamed"}); err != nil {
		t.Fatalf("UpdateProfile: %v", err)
	}
	gotByIDs, err = repo.GetByIDs(dbc, []uuid.UUID{created[0].ID})
	if err != nil {
		t.Fatalf("GetByIDs after update: %v", err)
	}
	if len(gotByIDs) != 1 || gotByIDs[0].Username != "renamed" {
		t.Fatalf("UpdateProfile: username not updated: %+v", gotByIDs)
	}
}
