package quiz

import (
	"time"

	"github.com/google/uuid"

	"github.com/yungbote/roadquiz-backend/internal/domain/user"
)

// Level labels used by UserStats and the progress aggregation.
const (
	LevelBeginner     = "초급"
	LevelIntermediate = "중급"
	LevelAdvanced     = "고급"
)

type UserStats struct {
	ID             uuid.UUID  `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	UserID         uuid.UUID  `gorm:"uniqueIndex;not null" json:"user_id"`
	User           *user.User `gorm:"constraint:OnDelete:CASCADE;foreignKey:UserID;references:ID" json:"user,omitempty"`
	TotalQuizzes   int        `gorm:"not null;default:0;column:total_quizzes" json:"total_quizzes"`
	CorrectAnswers int        `gorm:"not null;default:0;column:correct_answers" json:"correct_answers"`
	Streak         int        `gorm:"not null;default:0;column:streak" json:"streak"`
	Level          string     `gorm:"not null;default:'초급';column:level" json:"level"`
	Points         int        `gorm:"not null;default:0;column:points" json:"points"`

	UpdatedAt time.Time `gorm:"not null;default:now()" json:"updated_at"`
}

func (UserStats) TableName() string { return "user_stats" }
