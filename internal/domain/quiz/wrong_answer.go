package quiz

import (
	"time"

	"github.com/google/uuid"

	"github.com/yungbote/roadquiz-backend/internal/domain/user"
)

// WrongAnswer records an incorrect submission. Correct submissions are not
// persisted as attempts; see the progress aggregation notes in DESIGN.md.
type WrongAnswer struct {
	ID         uuid.UUID  `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	UserID     uuid.UUID  `gorm:"index;not null" json:"user_id"`
	User       *user.User `gorm:"constraint:OnDelete:CASCADE;foreignKey:UserID;references:ID" json:"user,omitempty"`
	QuizID     uuid.UUID  `gorm:"index;not null" json:"quiz_id"`
	Quiz       *Quiz      `gorm:"constraint:OnDelete:CASCADE;foreignKey:QuizID;references:ID" json:"quiz,omitempty"`
	UserAnswer string     `gorm:"not null;column:user_answer" json:"user_answer"`
	IsReviewed bool       `gorm:"not null;default:false;column:is_reviewed" json:"is_reviewed"`

	CreatedAt time.Time `gorm:"not null;default:now()" json:"created_at"`
}

func (WrongAnswer) TableName() string { return "wrong_answer" }
