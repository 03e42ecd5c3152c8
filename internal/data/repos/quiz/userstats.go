package quiz

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	types "github.com/yungbote/roadquiz-backend/internal/domain"
	"github.com/yungbote/roadquiz-backend/internal/pkg/dbctx"
	"github.com/yungbote/roadquiz-backend/internal/pkg/logger"
)

type UserStatsRepo interface {
	Create(dbc dbctx.Context, stats []*types.UserStats) ([]*types.UserStats, error)
	GetByUserIDs(dbc dbctx.Context, userIDs []uuid.UUID) ([]*types.UserStats, error)
	Update(dbc dbctx.Context, stats *types.UserStats) error
}

type userStatsRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewUserStatsRepo(db *gorm.DB, baseLog *logger.Logger) UserStatsRepo {
	repoLog := baseLog.With("repo", "UserStatsRepo")
	return &userStatsRepo{db: db, log: repoLog}
}

func (sr *userStatsRepo) Create(dbc dbctx.Context, stats []*types.UserStats) ([]*types.UserStats, error) {
	transaction := dbc.Tx
	if transaction == nil {
		transaction = sr.db
	}

	if len(stats) == 0 {
		return []*types.UserStats{}, nil
	}

	if err := transaction.WithContext(dbc.Ctx).Create(&stats).Error; err != nil {
		return nil, err
	}
	return stats, nil
}

func (sr *userStatsRepo) GetByUserIDs(dbc dbctx.Context, userIDs []uuid.UUID) ([]*types.UserStats, error) {
	transaction := dbc.Tx
	if transaction == nil {
		transaction = sr.db
	}

	var results []*types.UserStats

	if len(userIDs) == 0 {
		return results, nil
	}

	if err := transaction.WithContext(dbc.Ctx).
		Where("user_id IN ?", userIDs).
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (sr *userStatsRepo) Update(dbc dbctx.Context, stats *types.UserStats) error {
	transaction := dbc.Tx
	if transaction == nil {
		transaction = sr.db
	}

	return transaction.WithContext(dbc.Ctx).Save(stats).Error
}
