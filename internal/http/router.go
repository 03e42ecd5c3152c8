package http

import (
	"github.com/gin-gonic/gin"

	httpH "github.com/yungbote/roadquiz-backend/internal/http/handlers"
	httpMW "github.com/yungbote/roadquiz-backend/internal/http/middleware"
	"github.com/yungbote/roadquiz-backend/internal/pkg/logger"
)

type RouterConfig struct {
	Log *logger.Logger

	AuthMiddleware *httpMW.AuthMiddleware

	HealthHandler   *httpH.HealthHandler
	AuthHandler     *httpH.AuthHandler
	UserHandler     *httpH.UserHandler
	QuizHandler     *httpH.QuizHandler
	AnalysisHandler *httpH.AnalysisHandler
	SearchHandler   *httpH.SearchHandler
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(httpMW.RequestLogger(cfg.Log))
	r.Use(httpMW.CORS())

	// Health
	if cfg.HealthHandler != nil {
		r.GET("/healthcheck", cfg.HealthHandler.HealthCheck)
	}

	api := r.Group("/api")
	{
		// Auth (public)
		if cfg.AuthHandler != nil {
			api.POST("/auth/register", cfg.AuthHandler.Register)
			api.POST("/auth/login", cfg.AuthHandler.Login)
		}
	}

	protected := api.Group("/")
	{
		if cfg.AuthMiddleware != nil {
			protected.Use(cfg.AuthMiddleware.RequireAuth())
		}

		// Auth (protected)
		if cfg.AuthHandler != nil {
			protected.POST("/auth/refresh", cfg.AuthHandler.Refresh)
			protected.POST("/auth/logout", cfg.AuthHandler.Logout)
		}

		// User
		if cfg.UserHandler != nil {
			protected.GET("/auth/me", cfg.UserHandler.GetProfile)
			protected.GET("/user/profile", cfg.UserHandler.GetProfile)
			protected.PUT("/user/profile", cfg.UserHandler.UpdateProfile)
		}

		// Quiz
		if cfg.QuizHandler != nil {
			protected.GET("/quiz", cfg.QuizHandler.List)
			protected.POST("/quiz", cfg.QuizHandler.Create)
			protected.POST("/quiz/generate", cfg.QuizHandler.Generate)
			protected.GET("/quiz/:id", cfg.QuizHandler.Get)
			protected.POST("/quiz/:id/answer", cfg.QuizHandler.SubmitAnswer)
		}

		// Analysis
		if cfg.AnalysisHandler != nil {
			protected.GET("/analysis/stats", cfg.AnalysisHandler.GetStats)
			protected.GET("/analysis/wrong-answers", cfg.AnalysisHandler.GetWrongAnswers)
			protected.GET("/analysis/progress", cfg.AnalysisHandler.GetProgress)
		}

		// Search
		if cfg.SearchHandler != nil {
			protected.GET("/search/quiz", cfg.SearchHandler.SearchQuiz)
			protected.GET("/search/status", cfg.SearchHandler.Status)
		}
	}

	return r
}
