package app

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/yungbote/roadquiz-backend/internal/pkg/logger"
	"github.com/yungbote/roadquiz-backend/internal/services"
)

type Services struct {
	Auth     services.AuthService
	User     services.UserService
	Quiz     services.QuizService
	QuizGen  services.QuizGenService
	Analysis services.AnalysisService
	Vector   services.VectorService // nil when weaviate is not configured
}

func wireServices(db *gorm.DB, log *logger.Logger, cfg Config, repos Repos, clients Clients) (Services, error) {
	log.Info("Wiring services...")

	authService := services.NewAuthService(
		db, log,
		repos.User,
		repos.UserToken,
		repos.UserStats,
		cfg.JWTSecretKey,
		cfg.AccessTokenTTL,
		cfg.RefreshTokenTTL,
	)

	userService := services.NewUserService(db, log, repos.User)
	quizService := services.NewQuizService(db, log, repos.Quiz, repos.WrongAnswer, repos.UserStats, clients.RedisCache)
	analysisService := services.NewAnalysisService(db, log, repos.Quiz, repos.WrongAnswer, repos.UserStats, clients.RedisCache)

	var vectorService services.VectorService
	if clients.Weaviate != nil {
		vectorService = services.NewVectorService(log, clients.Weaviate)
		ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		if err := vectorService.EnsureSchema(ctx); err != nil {
			log.Warn("Weaviate schema init failed, continuing without it", "error", err)
		}
		cancel()
	}

	analyzer := services.NewSceneAnalyzer(log, clients.GcpVision, clients.MediaTools)
	quizGenService := services.NewQuizGenService(
		db, log,
		clients.OpenaiClient,
		analyzer,
		vectorService,
		repos.Quiz,
		repos.VideoAnalysis,
	)

	return Services{
		Auth:     authService,
		User:     userService,
		Quiz:     quizService,
		QuizGen:  quizGenService,
		Analysis: analysisService,
		Vector:   vectorService,
	}, nil
}
