package quiz

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	types "github.com/yungbote/roadquiz-backend/internal/domain"
	"github.com/yungbote/roadquiz-backend/internal/pkg/dbctx"
	"github.com/yungbote/roadquiz-backend/internal/pkg/logger"
)

type QuizRepo interface {
	Create(dbc dbctx.Context, quizzes []*types.Quiz) ([]*types.Quiz, error)
	GetByIDs(dbc dbctx.Context, quizIDs []uuid.UUID) ([]*types.Quiz, error)
	List(dbc dbctx.Context, skip, limit int) ([]*types.Quiz, error)
	CountByUserIDs(dbc dbctx.Context, userIDs []uuid.UUID) (int64, error)
}

type quizRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewQuizRepo(db *gorm.DB, baseLog *logger.Logger) QuizRepo {
	repoLog := baseLog.With("repo", "QuizRepo")
	return &quizRepo{db: db, log: repoLog}
}

func (qr *quizRepo) Create(dbc dbctx.Context, quizzes []*types.Quiz) ([]*types.Quiz, error) {
	transaction := dbc.Tx
	if transaction == nil {
		transaction = qr.db
	}

	if len(quizzes) == 0 {
		return []*types.Quiz{}, nil
	}

	if err := transaction.WithContext(dbc.Ctx).Create(&quizzes).Error; err != nil {
		return nil, err
	}

	return quizzes, nil
}

func (qr *quizRepo) GetByIDs(dbc dbctx.Context, quizIDs []uuid.UUID) ([]*types.Quiz, error) {
	transaction := dbc.Tx
	if transaction == nil {
		transaction = qr.db
	}

	var results []*types.Quiz

	if len(quizIDs) == 0 {
		return results, nil
	}

	if err := transaction.WithContext(dbc.Ctx).
		Where("id IN ?", quizIDs).
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (qr *quizRepo) List(dbc dbctx.Context, skip, limit int) ([]*types.Quiz, error) {
	transaction := dbc.Tx
	if transaction == nil {
		transaction = qr.db
	}

	if skip < 0 {
		skip = 0
	}
	if limit <= 0 {
		limit = 100
	}

	var results []*types.Quiz
	if err := transaction.WithContext(dbc.Ctx).
		Order("created_at DESC").
		Offset(skip).
		Limit(limit).
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (qr *quizRepo) CountByUserIDs(dbc dbctx.Context, userIDs []uuid.UUID) (int64, error) {
	transaction := dbc.Tx
	if transaction == nil {
		transaction = qr.db
	}

	if len(userIDs) == 0 {
		return 0, nil
	}

	var count int64
	if err := transaction.WithContext(dbc.Ctx).
		Model(&types.Quiz{}).
		Where("user_id IN ?", userIDs).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
