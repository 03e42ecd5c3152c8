package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	userrepo "github.com/yungbote/roadquiz-backend/internal/data/repos/user"
	"github.com/yungbote/roadquiz-backend/internal/db"
	types "github.com/yungbote/roadquiz-backend/internal/domain"
	"github.com/yungbote/roadquiz-backend/internal/pkg/apierr"
	"github.com/yungbote/roadquiz-backend/internal/pkg/dbctx"
	"github.com/yungbote/roadquiz-backend/internal/pkg/logger"
)

type UpdateProfileInput struct {
	Username *string
	Email    *string
}

type UserService interface {
	GetMe(ctx context.Context, userID uuid.UUID) (*types.User, error)
	UpdateProfile(ctx context.Context, userID uuid.UUID, input UpdateProfileInput) (*types.User, error)
}

type userService struct {
	db       *gorm.DB
	log      *logger.Logger
	userRepo userrepo.UserRepo
}

func NewUserService(gdb *gorm.DB, log *logger.Logger, userRepo userrepo.UserRepo) UserService {
	return &userService{
		db:       gdb,
		log:      log.With("service", "UserService"),
		userRepo: userRepo,
	}
}

func (us *userService) GetMe(ctx context.Context, userID uuid.UUID) (*types.User, error) {
	users, err := us.userRepo.GetByIDs(dbctx.Context{Ctx: ctx}, []uuid.UUID{userID})
	if err != nil {
		return nil, fmt.Errorf("fetch user: %w", err)
	}
	if len(users) == 0 {
		return nil, apierr.NotFound("user_not_found", fmt.Errorf("user %s not found", userID))
	}
	return users[0], nil
}

func (us *userService) UpdateProfile(ctx context.Context, userID uuid.UUID, input UpdateProfileInput) (*types.User, error) {
	current, err := us.GetMe(ctx, userID)
	if err != nil {
		return nil, err
	}

	fields := map[string]any{}
	dbc := dbctx.Context{Ctx: ctx}

	if input.Username != nil {
		username := strings.TrimSpace(*input.Username)
		if username == "" {
			return nil, apierr.BadRequest("invalid_username", fmt.Errorf("username required"))
		}
		if username != current.Username {
			exists, eErr := us.userRepo.UsernameExists(dbc, username)
			if eErr != nil {
				return nil, fmt.Errorf("check username: %w", eErr)
			}
			if exists {
				return nil, apierr.Conflict("username_taken", fmt.Errorf("username already taken"))
			}
			fields["username"] = username
		}
	}
	if input.Email != nil {
		email := strings.ToLower(strings.TrimSpace(*input.Email))
		if email == "" || !strings.Contains(email, "@") {
			return nil, apierr.BadRequest("invalid_email", fmt.Errorf("invalid email %q", email))
		}
		if email != current.Email {
			exists, eErr := us.userRepo.EmailExists(dbc, email)
			if eErr != nil {
				return nil, fmt.Errorf("check email: %w", eErr)
			}
			if exists {
				return nil, apierr.Conflict("email_taken", fmt.Errorf("email already registered"))
			}
			fields["email"] = email
		}
	}

	if len(fields) == 0 {
		return current, nil
	}

	if err := us.userRepo.UpdateProfile(dbc, userID, fields); err != nil {
		if db.IsUniqueViolation(err) {
			return nil, apierr.Conflict("profile_conflict", fmt.Errorf("email or username already taken"))
		}
		return nil, fmt.Errorf("update profile: %w", err)
	}
	return us.GetMe(ctx, userID)
}
