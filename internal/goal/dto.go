package goal

import (
	"time"

	"github.com/google/uuid"
	util "github.com/northlane/goalboard/internal/utils"
)

type CreateGoalDTO struct {
	Title        string         `json:"title"`
	Description  string         `json:"description"`
	DepartmentID uuid.UUID      `json:"department_id"`
	OwnerUserID  *uuid.UUID     `json:"owner_user_id"`
	TargetValue  *float64       `json:"target_value"`
	CurrentValue *float64       `json:"current_value"`
	Unit         string         `json:"unit"`
	StartDate    util.LocalDate `json:"start_date"`
	DueDate      util.LocalDate `json:"due_date"`
	Status       *Status        `json:"status"`
}

// UpdateGoalDTO carries one optional field per mutable attribute. Only
// fields present in the payload are applied; absent fields stay untouched.
type UpdateGoalDTO struct {
	Title        *string         `json:"title"`
	Description  *string         `json:"description"`
	DepartmentID *uuid.UUID      `json:"department_id"`
	OwnerUserID  *uuid.UUID      `json:"owner_user_id"`
	TargetValue  *float64        `json:"target_value"`
	CurrentValue *float64        `json:"current_value"`
	Unit         *string         `json:"unit"`
	StartDate    *util.LocalDate `json:"start_date"`
	DueDate      *util.LocalDate `json:"due_date"`
	Status       *Status         `json:"status"`
}

type GoalResponse struct {
	ID             uuid.UUID      `json:"id"`
	Title          string         `json:"title"`
	Description    string         `json:"description,omitempty"`
	DepartmentID   uuid.UUID      `json:"department_id"`
	DepartmentName string         `json:"department_name,omitempty"`
	OwnerUserID    *uuid.UUID     `json:"owner_user_id,omitempty"`
	OwnerName      string         `json:"owner_name,omitempty"`
	TargetValue    float64        `json:"target_value"`
	CurrentValue   float64        `json:"current_value"`
	Unit           string         `json:"unit"`
	StartDate      util.LocalDate `json:"start_date"`
	DueDate        util.LocalDate `json:"due_date"`
	Status         Status         `json:"status"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
}
