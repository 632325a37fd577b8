package goal

import (
	"time"

	"github.com/google/uuid"
	"github.com/northlane/goalboard/internal/department"
	"github.com/northlane/goalboard/internal/user"
	util "github.com/northlane/goalboard/internal/utils"
)

type Goal struct {
	ID           uuid.UUID             `gorm:"type:uuid;primaryKey" json:"id"`
	Title        string                `gorm:"not null" json:"title"`
	Description  string                `json:"description,omitempty"`
	DepartmentID uuid.UUID             `gorm:"column:department_id;type:uuid;not null;index" json:"department_id"`
	Department   department.Department `gorm:"foreignKey:DepartmentID;constraint:OnUpdate:CASCADE;" json:"-"`
	OwnerUserID  *uuid.UUID            `gorm:"column:owner_user_id;type:uuid" json:"owner_user_id,omitempty"`
	Owner        *user.User            `gorm:"foreignKey:OwnerUserID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"-"`
	TargetValue  float64               `gorm:"not null" json:"target_value"`
	CurrentValue float64               `gorm:"not null;default:0" json:"current_value"`
	Unit         string                `gorm:"not null" json:"unit"`
	StartDate    util.LocalDate        `json:"start_date"`
	DueDate      util.LocalDate        `json:"due_date"`
	Status       Status                `gorm:"not null" json:"status"`
	CreatedAt    time.Time             `json:"created_at"`
	UpdatedAt    time.Time             `json:"updated_at"`
}
