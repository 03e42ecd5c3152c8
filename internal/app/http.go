package app

import (
	apphttp "github.com/yungbote/roadquiz-backend/internal/http"
	httpH "github.com/yungbote/roadquiz-backend/internal/http/handlers"
	httpMW "github.com/yungbote/roadquiz-backend/internal/http/middleware"
	"github.com/yungbote/roadquiz-backend/internal/pkg/logger"
)

type Middleware struct {
	Auth *httpMW.AuthMiddleware
}

type Handlers struct {
	Health   *httpH.HealthHandler
	Auth     *httpH.AuthHandler
	User     *httpH.UserHandler
	Quiz     *httpH.QuizHandler
	Analysis *httpH.AnalysisHandler
	Search   *httpH.SearchHandler
}

func wireHandlers(log *logger.Logger, cfg Config, services Services, clients Clients) Handlers {
	log.Info("Wiring handlers...")
	return Handlers{
		Health:   httpH.NewHealthHandler(),
		Auth:     httpH.NewAuthHandler(services.Auth),
		User:     httpH.NewUserHandler(services.User),
		Quiz:     httpH.NewQuizHandler(log, services.Quiz, services.QuizGen, clients.GcpBucket, cfg.UploadDir),
		Analysis: httpH.NewAnalysisHandler(services.Analysis),
		Search:   httpH.NewSearchHandler(services.Vector),
	}
}

func wireMiddleware(log *logger.Logger, services Services) Middleware {
	log.Info("Wiring middleware...")
	return Middleware{
		Auth: httpMW.NewAuthMiddleware(log, services.Auth),
	}
}

func wireServer(log *logger.Logger, handlers Handlers, middleware Middleware) *apphttp.Server {
	return apphttp.NewServer(apphttp.RouterConfig{
		Log:             log,
		AuthMiddleware:  middleware.Auth,
		HealthHandler:   handlers.Health,
		AuthHandler:     handlers.Auth,
		UserHandler:     handlers.User,
		QuizHandler:     handlers.Quiz,
		AnalysisHandler: handlers.Analysis,
		SearchHandler:   handlers.Search,
	})
}
