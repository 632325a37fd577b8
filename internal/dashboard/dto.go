package dashboard

import "github.com/google/uuid"

type Summary struct {
	TotalGoals           int     `json:"total_goals"`
	CompletedGoals       int     `json:"completed_goals"`
	OnTrackGoals         int     `json:"on_track_goals"`
	AtRiskGoals          int     `json:"at_risk_goals"`
	OffTrackGoals        int     `json:"off_track_goals"`
	CompletionPercentage float64 `json:"completion_percentage"`
}

type DepartmentSummary struct {
	DepartmentID   uuid.UUID `json:"department_id"`
	DepartmentName string    `json:"department_name"`
	Summary
}

type SummaryResponse struct {
	Departments []DepartmentSummary `json:"departments"`
	Global      Summary             `json:"global"`
}
