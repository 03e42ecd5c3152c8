package quiz

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	types "github.com/yungbote/roadquiz-backend/internal/domain"
	"github.com/yungbote/roadquiz-backend/internal/pkg/dbctx"
	"github.com/yungbote/roadquiz-backend/internal/pkg/logger"
)

type VideoAnalysisRepo interface {
	Create(dbc dbctx.Context, analyses []*types.VideoAnalysis) ([]*types.VideoAnalysis, error)
	GetByUserIDs(dbc dbctx.Context, userIDs []uuid.UUID) ([]*types.VideoAnalysis, error)
}

type videoAnalysisRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewVideoAnalysisRepo(db *gorm.DB, baseLog *logger.Logger) VideoAnalysisRepo {
	repoLog := baseLog.With("repo", "VideoAnalysisRepo")
	return &videoAnalysisRepo{db: db, log: repoLog}
}

func (vr *videoAnalysisRepo) Create(dbc dbctx.Context, analyses []*types.VideoAnalysis) ([]*types.VideoAnalysis, error) {
	transaction := dbc.Tx
	if transaction == nil {
		transaction = vr.db
	}

	if len(analyses) == 0 {
		return []*types.VideoAnalysis{}, nil
	}

	if err := transaction.WithContext(dbc.Ctx).Create(&analyses).Error; err != nil {
		return nil, err
	}
	return analyses, nil
}

func (vr *videoAnalysisRepo) GetByUserIDs(dbc dbctx.Context, userIDs []uuid.UUID) ([]*types.VideoAnalysis, error) {
	transaction := dbc.Tx
	if transaction == nil {
		transaction = vr.db
	}

	var results []*types.VideoAnalysis

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
