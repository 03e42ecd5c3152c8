package services

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	types "github.com/yungbote/roadquiz-backend/internal/domain"
	"github.com/yungbote/roadquiz-backend/internal/pkg/ctxutil"
	"github.com/yungbote/roadquiz-backend/internal/pkg/dbctx"
)

type fakeUserTokenRepo struct {
	tokens []*types.UserToken
}

func (f *fakeUserTokenRepo) Create(dbc dbctx.Context, userTokens []*types.UserToken) ([]*types.UserToken, error) {
	f.tokens = append(f.tokens, userTokens...)
	return userTokens, nil
}

func (f *fakeUserTokenRepo) GetByUserIDs(dbc dbctx.Context, userIDs []uuid.UUID) ([]*types.UserToken, error) {
	var out []*types.UserToken
	for _, tok := range f.tokens {
		for _, id := range userIDs {
			if tok.UserID == id {
				out = append(out, tok)
			}
		}
	}
	return out, nil
}

func (f *fakeUserTokenRepo) GetByAccessTokens(dbc dbctx.Context, accessTokens []string) ([]*types.UserToken, error) {
	var out []*types.UserToken
	for _, tok := range f.tokens {
		for _, at := range accessTokens {
			if tok.AccessToken == at {
				out = append(out, tok)
			}
		}
	}
	return out, nil
}

func (f *fakeUserTokenRepo) GetByRefreshTokens(dbc dbctx.Context, refreshTokens []string) ([]*types.UserToken, error) {
	var out []*types.UserToken
	for _, tok := range f.tokens {
		for _, rt := range refreshTokens {
			if tok.RefreshToken == rt {
				out = append(out, tok)
			}
		}
	}
	return out, nil
}

func (f *fakeUserTokenRepo) FullDeleteByTokens(dbc dbctx.Context, userTokens []*types.UserToken) error {
	keep := f.tokens[:0]
	for _, tok := range f.tokens {
		drop := false
		for _, del := range userTokens {
			if tok.ID == del.ID {
				drop = true
			}
		}
		if !drop {
			keep = append(keep, tok)
		}
	}
	f.tokens = keep
	return nil
}

func (f *fakeUserTokenRepo) FullDeleteByUserIDs(dbc dbctx.Context, userIDs []uuid.UUID) error {
	keep := f.tokens[:0]
	for _, tok := range f.tokens {
		drop := false
		for _, id := range userIDs {
			if tok.UserID == id {
				drop = true
			}
		}
		if !drop {
			keep = append(keep, tok)
		}
	}
	f.tokens = keep
	return nil
}

func newAuthForTest(t *testing.T, tokenRepo *fakeUserTokenRepo, accessTTL time.Duration) *authService {
	return &authService{
		log:           testLogger(t),
		userTokenRepo: tokenRepo,
		jwtSecretKey:  "test-secret",
		accessTTL:     accessTTL,
		refreshTTL:    24 * time.Hour,
	}
}

func TestSetContextFromTokenRoundTrip(t *testing.T) {
	tokenRepo := &fakeUserTokenRepo{}
	svc := newAuthForTest(t, tokenRepo, time.Hour)

	user := &types.User{ID: uuid.New()}
	access, err := svc.generateAccessToken(user)
	if err != nil {
		t.Fatalf("generateAccessToken: %v", err)
	}
	tokenRepo.tokens = append(tokenRepo.tokens, &types.UserToken{
		ID:           uuid.New(),
		UserID:       user.ID,
		AccessToken:  access,
		RefreshToken: "refresh-1",
		ExpiresAt:    time.Now().Add(time.Hour),
	})

	ctx, err := svc.SetContextFromToken(context.Background(), access)
	if err != nil {
		t.Fatalf("SetContextFromToken: %v", err)
	}
	rd := ctxutil.GetRequestData(ctx)
	if rd == nil {
		t.Fatalf("no request data in context")
	}
	if rd.UserID != user.ID {
		t.Fatalf("user id mismatch: got %s, want %s", rd.UserID, user.ID)
	}
	if rd.RefreshToken != "refresh-1" {
		t.Fatalf("refresh token not propagated: %q", rd.RefreshToken)
	}
}

func TestSetContextFromTokenRejectsExpired(t *testing.T) {
	svc := newAuthForTest(t, &fakeUserTokenRepo{}, -time.Minute)

	user := &types.User{ID: uuid.New()}
	access, err := svc.generateAccessToken(user)
	if err != nil {
		t.Fatalf("generateAccessToken: %v", err)
	}

	if _, err := svc.SetContextFromToken(context.Background(), access); err == nil {
		t.Fatalf("expected error for expired token")
	}
}

func TestSetContextFromTokenRejectsWrongKey(t *testing.T) {
	issuer := newAuthForTest(t, &fakeUserTokenRepo{}, time.Hour)
	verifier := newAuthForTest(t, &fakeUserTokenRepo{}, time.Hour)
	verifier.jwtSecretKey = "other-secret"

	user := &types.User{ID: uuid.New()}
	access, err := issuer.generateAccessToken(user)
	if err != nil {
		t.Fatalf("generateAccessToken: %v", err)
	}

	if _, err := verifier.SetContextFromToken(context.Background(), access); err == nil {
		t.Fatalf("expected error for token signed with a different key")
	}
}

func TestSetContextFromTokenEmptyTokenIsNoop(t *testing.T) {
	svc := newAuthForTest(t, &fakeUserTokenRepo{}, time.Hour)

	ctx, err := svc.SetContextFromToken(context.Background(), "")
	if err != nil {
		t.Fatalf("SetContextFromToken: %v", err)
	}
	if rd := ctxutil.GetRequestData(ctx); rd != nil {
		t.Fatalf("expected no request data, got %+v", rd)
	}
}
