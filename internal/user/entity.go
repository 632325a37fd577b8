package user

import (
	"time"

	"github.com/google/uuid"
	"github.com/northlane/goalboard/internal/department"
)

type User struct {
	ID           uuid.UUID              `gorm:"type:uuid;primaryKey" json:"id"`
	AuthUserID   uuid.UUID              `gorm:"column:auth_user_id;type:uuid;uniqueIndex;not null" json:"auth_user_id"`
	Email        string                 `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string                 `gorm:"column:password_hash" json:"-"`
	FullName     string                 `json:"full_name"`
	Role         Role                   `gorm:"not null" json:"role"`
	DepartmentID *uuid.UUID             `gorm:"column:department_id;type:uuid" json:"department_id,omitempty"`
	Department   *department.Department `gorm:"foreignKey:DepartmentID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"department,omitempty"`
	CreatedAt    time.Time              `json:"created_at"`
	UpdatedAt    time.Time              `json:"updated_at"`
}
