package quiz

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"github.com/yungbote/roadquiz-backend/internal/domain/user"
)

// VideoAnalysis is the audit row for one video-to-quiz generation run.
type VideoAnalysis struct {
	ID           uuid.UUID      `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	UserID       uuid.UUID      `gorm:"index;not null" json:"user_id"`
	User         *user.User     `gorm:"constraint:OnDelete:CASCADE;foreignKey:UserID;references:ID" json:"user,omitempty"`
	VideoPath    string         `gorm:"column:video_path" json:"video_path"`
	RoadElements datatypes.JSON `gorm:"column:road_elements" json:"road_elements"`
	Description  string         `gorm:"type:text;column:description" json:"description"`
	Category     string         `gorm:"column:category" json:"category"`

	CreatedAt time.Time `gorm:"not null;default:now()" json:"created_at"`
}

func (VideoAnalysis) TableName() string { return "video_analysis" }
