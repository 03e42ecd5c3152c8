package domain

import (
	"github.com/yungbote/roadquiz-backend/internal/domain/auth"
	"github.com/yungbote/roadquiz-backend/internal/domain/quiz"
	"github.com/yungbote/roadquiz-backend/internal/domain/user"
)

type User = user.User
type UserToken = auth.UserToken

type Quiz = quiz.Quiz
type WrongAnswer = quiz.WrongAnswer
type UserStats = quiz.UserStats
type VideoAnalysis = quiz.VideoAnalysis

const (
	CategorySignals      = quiz.CategorySignals
	CategoryIntersection = quiz.CategoryIntersection
	CategoryParking      = quiz.CategoryParking
	CategoryHighway      = quiz.CategoryHighway
	CategorySpecial      = quiz.CategorySpecial

	LevelBeginner     = quiz.LevelBeginner
	LevelIntermediate = quiz.LevelIntermediate
	LevelAdvanced     = quiz.LevelAdvanced
)

func Categories() []string          { return quiz.Categories() }
func ValidCategory(cat string) bool { return quiz.ValidCategory(cat) }
