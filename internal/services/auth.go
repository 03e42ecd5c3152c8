package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	authrepo "github.com/yungbote/roadquiz-backend/internal/data/repos/auth"
	quizrepo "github.com/yungbote/roadquiz-backend/internal/data/repos/quiz"
	userrepo "github.com/yungbote/roadquiz-backend/internal/data/repos/user"
	"github.com/yungbote/roadquiz-backend/internal/db"
	types "github.com/yungbote/roadquiz-backend/internal/domain"
	"github.com/yungbote/roadquiz-backend/internal/pkg/apierr"
	"github.com/yungbote/roadquiz-backend/internal/pkg/ctxutil"
	"github.com/yungbote/roadquiz-backend/internal/pkg/dbctx"
	"github.com/yungbote/roadquiz-backend/internal/pkg/logger"
)

type JWTClaims struct {
	jwt.RegisteredClaims
}

type AuthService interface {
	Register(ctx context.Context, email, username, password string) (*types.User, error)
	Login(ctx context.Context, email, password string) (string, string, error)
	Refresh(ctx context.Context) (string, string, error)
	Logout(ctx context.Context) error
	SetContextFromToken(ctx context.Context, tokenString string) (context.Context, error)
	GetAccessTTL() time.Duration
}

type authService struct {
	db            *gorm.DB
	log           *logger.Logger
	userRepo      userrepo.UserRepo
	userTokenRepo authrepo.UserTokenRepo
	userStatsRepo quizrepo.UserStatsRepo
	jwtSecretKey  string
	accessTTL     time.Duration
	refreshTTL    time.Duration
}

func NewAuthService(
	gdb *gorm.DB,
	log *logger.Logger,
	userRepo userrepo.UserRepo,
	userTokenRepo authrepo.UserTokenRepo,
	userStatsRepo quizrepo.UserStatsRepo,
	jwtSecretKey string,
	accessTTL time.Duration,
	refreshTTL time.Duration,
) AuthService {
	serviceLog := log.With("service", "AuthService")
	return &authService{
		db:            gdb,
		log:           serviceLog,
		userRepo:      userRepo,
		userTokenRepo: userTokenRepo,
		userStatsRepo: userStatsRepo,
		jwtSecretKey:  jwtSecretKey,
		accessTTL:     accessTTL,
		refreshTTL:    refreshTTL,
	}
}

func (as *authService) Register(ctx context.Context, email, username, password string) (*types.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	username = strings.TrimSpace(username)

	if email == "" || !strings.Contains(email, "@") {
		return nil, apierr.BadRequest("invalid_email", fmt.Errorf("invalid email %q", email))
	}
	if username == "" {
		return nil, apierr.BadRequest("invalid_username", fmt.Errorf("username required"))
	}
	if len(password) < 6 {
		return nil, apierr.BadRequest("weak_password", fmt.Errorf("password must be at least 6 characters"))
	}

	dbc := dbctx.Context{Ctx: ctx}
	if exists, err := as.userRepo.EmailExists(dbc, email); err != nil {
		return nil, fmt.Errorf("check email: %w", err)
	} else if exists {
		return nil, apierr.Conflict("email_taken", fmt.Errorf("email already registered"))
	}
	if exists, err := as.userRepo.UsernameExists(dbc, username); err != nil {
		return nil, fmt.Errorf("check username: %w", err)
	} else if exists {
		return nil, apierr.Conflict("username_taken", fmt.Errorf("username already registered"))
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &types.User{
		ID:       uuid.New(),
		Email:    email,
		Username: username,
		Password: string(hashed),
		IsActive: true,
	}

	err = as.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		txc := dbctx.Context{Ctx: ctx, Tx: tx}
		if _, cErr := as.userRepo.Create(txc, []*types.User{user}); cErr != nil {
			return cErr
		}
		stats := &types.UserStats{
			ID:     uuid.New(),
			UserID: user.ID,
			Level:  types.LevelBeginner,
		}
		if _, sErr := as.userStatsRepo.Create(txc, []*types.UserStats{stats}); sErr != nil {
			return sErr
		}
		return nil
	})
	if err != nil {
		// The pre-checks race with concurrent registrations; the unique index
		// is authoritative.
		if db.IsUniqueViolation(err) {
			return nil, apierr.Conflict("user_exists", fmt.Errorf("email or username already registered"))
		}
		return nil, fmt.Errorf("create user: %w", err)
	}
	return user, nil
}

func (as *authService) Login(ctx context.Context, email, password string) (string, string, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	users, err := as.userRepo.GetByEmails(dbctx.Context{Ctx: ctx}, []string{email})
	if err != nil {
		return "", "", fmt.Errorf("fetch user by email: %w", err)
	}
	if len(users) == 0 {
		return "", "", apierr.Unauthorized("invalid_credentials", fmt.Errorf("invalid email or password"))
	}

	user := users[0]
	if hErr := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); hErr != nil {
		return "", "", apierr.Unauthorized("invalid_credentials", fmt.Errorf("invalid email or password"))
	}

	var accessToken string
	var refreshToken string
	err = as.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		txc := dbctx.Context{Ctx: ctx, Tx: tx}

		foundTokens, ftErr := as.userTokenRepo.GetByUserIDs(txc, []uuid.UUID{user.ID})
		if ftErr != nil {
			return fmt.Errorf("check user tokens: %w", ftErr)
		}
		expired := make([]*types.UserToken, 0, len(foundTokens))
		for _, tok := range foundTokens {
			if tok != nil && tok.ExpiresAt.Before(time.Now()) {
				expired = append(expired, tok)
			}
		}
		if len(expired) > 0 {
			if dErr := as.userTokenRepo.FullDeleteByTokens(txc, expired); dErr != nil {
				return fmt.Errorf("delete expired tokens: %w", dErr)
			}
		}

		tok, genErr := as.generateAccessToken(user)
		if genErr != nil {
			return fmt.Errorf("generate access token: %w", genErr)
		}
		accessToken = tok
		refreshToken = uuid.New().String()
		userToken := types.UserToken{
			ID:           uuid.New(),
			UserID:       user.ID,
			AccessToken:  accessToken,
			RefreshToken: refreshToken,
			ExpiresAt:    time.Now().Add(as.refreshTTL),
		}
		if _, cErr := as.userTokenRepo.Create(txc, []*types.UserToken{&userToken}); cErr != nil {
			return fmt.Errorf("create user token: %w", cErr)
		}
		return nil
	})
	if err != nil {
		return "", "", err
	}
	return accessToken, refreshToken, nil
}

func (as *authService) Refresh(ctx context.Context) (string, string, error) {
	rd := ctxutil.GetRequestData(ctx)
	if rd == nil || rd.RefreshToken == "" {
		return "", "", apierr.Unauthorized("missing_refresh_token", fmt.Errorf("no refresh token in request context"))
	}

	var accessToken string
	var newRefreshToken string
	err := as.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		txc := dbctx.Context{Ctx: ctx, Tx: tx}

		foundTokens, ftErr := as.userTokenRepo.GetByRefreshTokens(txc, []string{rd.RefreshToken})
		if ftErr != nil {
			return fmt.Errorf("fetch refresh token: %w", ftErr)
		}
		if len(foundTokens) == 0 {
			return apierr.Unauthorized("invalid_refresh_token", fmt.Errorf("unknown refresh token"))
		}
		existing := foundTokens[0]
		if existing.ExpiresAt.Before(time.Now()) {
			if dErr := as.userTokenRepo.FullDeleteByTokens(txc, []*types.UserToken{existing}); dErr != nil {
				return fmt.Errorf("delete expired refresh token: %w", dErr)
			}
			return apierr.Unauthorized("refresh_token_expired", fmt.Errorf("refresh token expired"))
		}

		users, uErr := as.userRepo.GetByIDs(txc, []uuid.UUID{existing.UserID})
		if uErr != nil {
			return fmt.Errorf("load user for refresh: %w", uErr)
		}
		if len(users) == 0 {
			return apierr.Unauthorized("invalid_refresh_token", fmt.Errorf("no user for refresh token"))
		}
		user := users[0]

		tok, genErr := as.generateAccessToken(user)
		if genErr != nil {
			return fmt.Errorf("generate access token: %w", genErr)
		}
		accessToken = tok
		newRefreshToken = uuid.New().String()
		newUserToken := types.UserToken{
			ID:           uuid.New(),
			UserID:       user.ID,
			AccessToken:  accessToken,
			RefreshToken: newRefreshToken,
			ExpiresAt:    time.Now().Add(as.refreshTTL),
		}
		if _, cErr := as.userTokenRepo.Create(txc, []*types.UserToken{&newUserToken}); cErr != nil {
			return fmt.Errorf("create user token: %w", cErr)
		}
		if dErr := as.userTokenRepo.FullDeleteByTokens(txc, []*types.UserToken{existing}); dErr != nil {
			return fmt.Errorf("remove old refresh token: %w", dErr)
		}
		return nil
	})
	if err != nil {
		return "", "", err
	}
	return accessToken, newRefreshToken, nil
}

func (as *authService) Logout(ctx context.Context) error {
	rd := ctxutil.GetRequestData(ctx)
	if rd == nil || rd.TokenString == "" {
		return apierr.Unauthorized("missing_token", fmt.Errorf("no access token in request context"))
	}
	return as.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		txc := dbctx.Context{Ctx: ctx, Tx: tx}
		foundTokens, ftErr := as.userTokenRepo.GetByAccessTokens(txc, []string{rd.TokenString})
		if ftErr != nil {
			return fmt.Errorf("find user token: %w", ftErr)
		}
		if len(foundTokens) == 0 {
			return nil
		}
		if dErr := as.userTokenRepo.FullDeleteByTokens(txc, foundTokens); dErr != nil {
			return fmt.Errorf("delete user token: %w", dErr)
		}
		return nil
	})
}

func (as *authService) generateAccessToken(user *types.User) (string, error) {
	claims := JWTClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID.String(),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(as.accessTTL)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(as.jwtSecretKey))
}

func (as *authService) SetContextFromToken(ctx context.Context, tokenString string) (context.Context, error) {
	if tokenString == "" {
		return ctx, nil
	}
	parsedToken, err := jwt.ParseWithClaims(tokenString, &JWTClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(as.jwtSecretKey), nil
	})
	if err != nil {
		return ctx, apierr.Unauthorized("invalid_token", fmt.Errorf("parse token: %w", err))
	}
	claims, ok := parsedToken.Claims.(*JWTClaims)
	if !ok || !parsedToken.Valid {
		return ctx, apierr.Unauthorized("invalid_token", fmt.Errorf("invalid or expired token"))
	}
	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return ctx, apierr.Unauthorized("invalid_token", fmt.Errorf("invalid user id in token: %w", err))
	}

	var refreshToken string
	foundTokens, ftErr := as.userTokenRepo.GetByAccessTokens(dbctx.Context{Ctx: ctx}, []string{tokenString})
	if ftErr != nil {
		return ctx, fmt.Errorf("fetch user token: %w", ftErr)
	}
	if len(foundTokens) > 0 {
		refreshToken = foundTokens[0].RefreshToken
	}

	rd := &ctxutil.RequestData{
		UserID:       userID,
		TokenString:  tokenString,
		RefreshToken: refreshToken,
	}
	return ctxutil.WithRequestData(ctx, rd), nil
}

func (as *authService) GetAccessTTL() time.Duration {
	return as.accessTTL
}
