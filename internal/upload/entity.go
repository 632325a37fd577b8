package upload

import (
	"time"

	"github.com/google/uuid"
)

type Upload struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	GoalID    uuid.UUID `gorm:"column:goal_id;type:uuid;not null;index" json:"goal_id"`
	UserID    uuid.UUID `gorm:"column:user_id;type:uuid;not null" json:"user_id"`
	URL       *string   `json:"url,omitempty"`
	FilePath  *string   `json:"file_path,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
