package quiz

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"github.com/yungbote/roadquiz-backend/internal/domain/user"
)

// Quiz categories match the fixed road-traffic-law curriculum.
const (
	CategorySignals      = "신호 및 표지"
	CategoryIntersection = "교차로 통과"
	CategoryParking      = "주차 및 정차"
	CategoryHighway      = "고속도로"
	CategorySpecial      = "특수상황"
)

func Categories() []string {
	return []string{
		CategorySignals,
		CategoryIntersection,
		CategoryParking,
		CategoryHighway,
		CategorySpecial,
	}
}

func ValidCategory(category string) bool {
	for _, c := range Categories() {
		if c == category {
			return true
		}
	}
	return false
}

// Quiz is immutable once created; answer rows reference it.
type Quiz struct {
	ID            uuid.UUID      `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	UserID        *uuid.UUID     `gorm:"index" json:"user_id,omitempty"`
	User          *user.User     `gorm:"foreignKey:UserID;references:ID" json:"user,omitempty"`
	Category      string         `gorm:"not null;column:category" json:"category"`
	Question      string         `gorm:"type:text;not null;column:question" json:"question"`
	Options       datatypes.JSON `gorm:"not null;column:options" json:"options"`
	CorrectAnswer int            `gorm:"not null;column:correct_answer" json:"correct_answer"`
	Explanation   string         `gorm:"type:text;column:explanation" json:"explanation"`
	VideoPath     *string        `gorm:"column:video_path" json:"video_path,omitempty"`
	RoadElements  datatypes.JSON `gorm:"column:road_elements" json:"road_elements,omitempty"`
	AIGenerated   bool           `gorm:"not null;default:false;column:ai_generated" json:"ai_generated"`

	CreatedAt time.Time `gorm:"not null;default:now()" json:"created_at"`
}

func (Quiz) TableName() string { return "quiz" }
