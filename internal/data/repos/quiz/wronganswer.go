package quiz

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	types "github.com/yungbote/roadquiz-backend/internal/domain"
	"github.com/yungbote/roadquiz-backend/internal/pkg/dbctx"
	"github.com/yungbote/roadquiz-backend/internal/pkg/logger"
)

type WrongAnswerRepo interface {
	Create(dbc dbctx.Context, answers []*types.WrongAnswer) ([]*types.WrongAnswer, error)
	GetByUserIDs(dbc dbctx.Context, userIDs []uuid.UUID) ([]*types.WrongAnswer, error)
	CountByUserIDs(dbc dbctx.Context, userIDs []uuid.UUID) (int64, error)
	MarkReviewed(dbc dbctx.Context, answerIDs []uuid.UUID) error
}

type wrongAnswerRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewWrongAnswerRepo(db *gorm.DB, baseLog *logger.Logger) WrongAnswerRepo {
	repoLog := baseLog.With("repo", "WrongAnswerRepo")
	return &wrongAnswerRepo{db: db, log: repoLog}
}

func (wr *wrongAnswerRepo) Create(dbc dbctx.Context, answers []*types.WrongAnswer) ([]*types.WrongAnswer, error) {
	transaction := dbc.Tx
	if transaction == nil {
		transaction = wr.db
	}

	if len(answers) == 0 {
		return []*types.WrongAnswer{}, nil
	}

	if err := transaction.WithContext(dbc.Ctx).Create(&answers).Error; err != nil {
		return nil, err
	}
	return answers, nil
}

func (wr *wrongAnswerRepo) GetByUserIDs(dbc dbctx.Context, userIDs []uuid.UUID) ([]*types.WrongAnswer, error) {
	transaction := dbc.Tx
	if transaction == nil {
		transaction = wr.db
	}

	var results []*types.WrongAnswer

	if len(userIDs) == 0 {
		return results, nil
	}

	if err := transaction.WithContext(dbc.Ctx).
		Where("user_id IN ?", userIDs).
		Order("created_at DESC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (wr *wrongAnswerRepo) CountByUserIDs(dbc dbctx.Context, userIDs []uuid.UUID) (int64, error) {
	transaction := dbc.Tx
	if transaction == nil {
		transaction = wr.db
	}

	if len(userIDs) == 0 {
		return 0, nil
	}

	var count int64
	if err := transaction.WithContext(dbc.Ctx).
		Model(&types.WrongAnswer{}).
		Where("user_id IN ?", userIDs).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (wr *wrongAnswerRepo) MarkReviewed(dbc dbctx.Context, answerIDs []uuid.UUID) error {
	transaction := dbc.Tx
	if transaction == nil {
		transaction = wr.db
	}

	if len(answerIDs) == 0 {
		return nil
	}

	return transaction.WithContext(dbc.Ctx).
		Model(&types.WrongAnswer{}).
		Where("id IN ?", answerIDs).
		Update("is_reviewed", true).Error
}
