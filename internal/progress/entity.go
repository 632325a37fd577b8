package progress

import (
	"time"

	"github.com/google/uuid"
	"github.com/northlane/goalboard/internal/goal"
)

// Progress is an append-only ledger entry. Value is a signed delta applied
// cumulatively to the goal's current value, never an absolute.
type Progress struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	GoalID         uuid.UUID `gorm:"column:goal_id;type:uuid;not null;index" json:"goal_id"`
	Goal           goal.Goal `gorm:"foreignKey:GoalID;constraint:OnUpdate:CASCADE;" json:"-"`
	UserID         uuid.UUID `gorm:"column:user_id;type:uuid;not null" json:"user_id"`
	Value          float64   `gorm:"not null" json:"value"`
	Note           string    `json:"note,omitempty"`
	IdempotencyKey *string   `gorm:"uniqueIndex" json:"-"`
	CreatedAt      time.Time `json:"created_at"`
}
