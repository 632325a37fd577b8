package dashboard_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/northlane/goalboard/internal/dashboard"
	"github.com/northlane/goalboard/internal/department"
	"github.com/northlane/goalboard/internal/goal"
)

func goalsWithStatuses(deptID uuid.UUID, statuses ...goal.Status) []goal.Goal {
	goals := make([]goal.Goal, 0, len(statuses))
	for _, s := range statuses {
		goals = append(goals, goal.Goal{ID: uuid.New(), DepartmentID: deptID, Status: s})
	}
	return goals
}

func TestSummarize(t *testing.T) {
	deptID := uuid.New()

	t.Run("EmptyCollection", func(t *testing.T) {
		s := dashboard.Summarize(nil)
		if s.TotalGoals != 0 {
			t.Errorf("TotalGoals = %d, want 0", s.TotalGoals)
		}
		if s.CompletionPercentage != 0 {
			t.Errorf("CompletionPercentage = %v, want 0 for empty input", s.CompletionPercentage)
		}
	})

	t.Run("CountsByStatus", func(t *testing.T) {
		goals := goalsWithStatuses(deptID,
			goal.StatusCompleted, goal.StatusOnTrack, goal.StatusAtRisk, goal.StatusAtRisk,
		)
		s := dashboard.Summarize(goals)

		if s.TotalGoals != 4 {
			t.Errorf("TotalGoals = %d, want 4", s.TotalGoals)
		}
		if s.CompletedGoals != 1 || s.OnTrackGoals != 1 || s.AtRiskGoals != 2 || s.OffTrackGoals != 0 {
			t.Errorf("counts = {completed:%d on_track:%d at_risk:%d off_track:%d}, want {1 1 2 0}",
				s.CompletedGoals, s.OnTrackGoals, s.AtRiskGoals, s.OffTrackGoals)
		}
		if s.CompletionPercentage != 25 {
			t.Errorf("CompletionPercentage = %v, want 25", s.CompletionPercentage)
		}
	})

	t.Run("PercentageStaysInRange", func(t *testing.T) {
		collections := [][]goal.Goal{
			nil,
			goalsWithStatuses(deptID, goal.StatusCompleted),
			goalsWithStatuses(deptID, goal.StatusCompleted, goal.StatusCompleted, goal.StatusOffTrack),
			goalsWithStatuses(deptID, goal.StatusNotStarted, goal.StatusNotStarted),
		}
		for _, goals := range collections {
			s := dashboard.Summarize(goals)
			if s.CompletionPercentage < 0 || s.CompletionPercentage > 100 {
				t.Errorf("CompletionPercentage = %v out of [0,100] for %d goals", s.CompletionPercentage, len(goals))
			}
		}
	})
}

func TestDepartmentSummaries(t *testing.T) {
	sales := department.Department{ID: uuid.New(), Name: "Sales"}
	eng := department.Department{ID: uuid.New(), Name: "Engineering"}
	ops := department.Department{ID: uuid.New(), Name: "Operations"}
	departments := []department.Department{eng, ops, sales}

	goals := append(
		goalsWithStatuses(sales.ID, goal.StatusCompleted, goal.StatusOnTrack),
		goalsWithStatuses(eng.ID, goal.StatusAtRisk, goal.StatusOffTrack, goal.StatusCompleted)...,
	)

	summaries := dashboard.DepartmentSummaries(departments, goals)

	if len(summaries) != 3 {
		t.Fatalf("got %d summaries, want 3", len(summaries))
	}

	t.Run("DepartmentWithoutGoalsKeepsZeroCounts", func(t *testing.T) {
		var opsSummary *dashboard.DepartmentSummary
		for i := range summaries {
			if summaries[i].DepartmentID == ops.ID {
				opsSummary = &summaries[i]
			}
		}
		if opsSummary == nil {
			t.Fatal("empty department dropped from summaries")
		}
		if opsSummary.TotalGoals != 0 || opsSummary.CompletionPercentage != 0 {
			t.Errorf("empty department should have all-zero summary, got %+v", opsSummary.Summary)
		}
	})

	t.Run("GroupedByID", func(t *testing.T) {
		for _, s := range summaries {
			switch s.DepartmentID {
			case sales.ID:
				if s.TotalGoals != 2 || s.CompletedGoals != 1 {
					t.Errorf("sales summary = %+v", s.Summary)
				}
			case eng.ID:
				if s.TotalGoals != 3 || s.AtRiskGoals != 1 || s.OffTrackGoals != 1 {
					t.Errorf("engineering summary = %+v", s.Summary)
				}
			}
		}
	})

	t.Run("GlobalMatchesSumOfDepartments", func(t *testing.T) {
		global := dashboard.Summarize(goals)

		var total, completed, onTrack, atRisk, offTrack int
		for _, s := range summaries {
			total += s.TotalGoals
			completed += s.CompletedGoals
			onTrack += s.OnTrackGoals
			atRisk += s.AtRiskGoals
			offTrack += s.OffTrackGoals
		}

		if total != global.TotalGoals || completed != global.CompletedGoals ||
			onTrack != global.OnTrackGoals || atRisk != global.AtRiskGoals ||
			offTrack != global.OffTrackGoals {
			t.Errorf("department sums {%d %d %d %d %d} do not match global %+v",
				total, completed, onTrack, atRisk, offTrack, global)
		}
	})
}
