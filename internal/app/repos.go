package app

import (
	"gorm.io/gorm"

	authrepo "github.com/yungbote/roadquiz-backend/internal/data/repos/auth"
	quizrepo "github.com/yungbote/roadquiz-backend/internal/data/repos/quiz"
	userrepo "github.com/yungbote/roadquiz-backend/internal/data/repos/user"
	"github.com/yungbote/roadquiz-backend/internal/pkg/logger"
)

type Repos struct {
	User          userrepo.UserRepo
	UserToken     authrepo.UserTokenRepo
	Quiz          quizrepo.QuizRepo
	WrongAnswer   quizrepo.WrongAnswerRepo
	UserStats     quizrepo.UserStatsRepo
	VideoAnalysis quizrepo.VideoAnalysisRepo
}

func wireRepos(db *gorm.DB, log *logger.Logger) Repos {
	log.Info("Wiring repos...")
	return Repos{
		User:          userrepo.NewUserRepo(db, log),
		UserToken:     authrepo.NewUserTokenRepo(db, log),
		Quiz:          quizrepo.NewQuizRepo(db, log),
		WrongAnswer:   quizrepo.NewWrongAnswerRepo(db, log),
		UserStats:     quizrepo.NewUserStatsRepo(db, log),
		VideoAnalysis: quizrepo.NewVideoAnalysisRepo(db, log),
	}
}
