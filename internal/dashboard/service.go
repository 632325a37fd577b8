package dashboard

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/northlane/goalboard/internal/config"
	"github.com/northlane/goalboard/internal/department"
	"github.com/northlane/goalboard/internal/goal"
	"github.com/northlane/goalboard/internal/scope"
	"github.com/northlane/goalboard/internal/user"
)

var ErrInvalidDepartment = errors.New("invalid department filter")

type Service interface {
	Summary(ctx context.Context, departmentFilter string) (*SummaryResponse, error)
}

type service struct {
	goalRepo goal.Repository
	deptRepo department.Repository
	users    user.Service
}

func NewService(goalRepo goal.Repository, deptRepo department.Repository, users user.Service) Service {
	return &service{
		goalRepo: goalRepo,
		deptRepo: deptRepo,
		users:    users,
	}
}

// Summarize counts goals by status in a single pass. The completion
// percentage is defined as 0 when the collection is empty.
func Summarize(goals []goal.Goal) Summary {
	var s Summary
	for i := range goals {
		s.TotalGoals++
		switch goals[i].Status {
		case goal.StatusCompleted:
			s.CompletedGoals++
		case goal.StatusOnTrack:
			s.OnTrackGoals++
		case goal.StatusAtRisk:
			s.AtRiskGoals++
		case goal.StatusOffTrack:
			s.OffTrackGoals++
		}
	}
	if s.TotalGoals > 0 {
		s.CompletionPercentage = float64(s.CompletedGoals) / float64(s.TotalGoals) * 100
	}
	return s
}

// DepartmentSummaries partitions goals by department id and summarizes each
// partition. Departments with no goals keep an all-zero summary so callers
// always see the full roster. Grouping is keyed by id; the name is carried
// for display only.
func DepartmentSummaries(departments []department.Department, goals []goal.Goal) []DepartmentSummary {
	byDept := make(map[uuid.UUID][]goal.Goal, len(departments))
	for i := range goals {
		byDept[goals[i].DepartmentID] = append(byDept[goals[i].DepartmentID], goals[i])
	}

	summaries := make([]DepartmentSummary, 0, len(departments))
	for _, dept := range departments {
		summaries = append(summaries, DepartmentSummary{
			DepartmentID:   dept.ID,
			DepartmentName: dept.Name,
			Summary:        Summarize(byDept[dept.ID]),
		})
	}
	return summaries
}

func (s *service) Summary(ctx context.Context, departmentFilter string) (*SummaryResponse, error) {
	log := config.WithContext(ctx)

	caller, err := s.users.ResolveFromContext(ctx)
	if err != nil {
		return nil, err
	}

	sc := scope.ForProfile(caller)
	if sc.IsEmpty() {
		return &SummaryResponse{Departments: []DepartmentSummary{}}, nil
	}

	var filterID *uuid.UUID
	if departmentFilter != "" {
		id, err := uuid.Parse(departmentFilter)
		if err != nil {
			return nil, ErrInvalidDepartment
		}
		filterID = &id
	}

	departments, err := s.deptRepo.FindAll()
	if err != nil {
		log.WithError(err).Error("Failed to fetch departments")
		return nil, err
	}

	// Scope and filter narrow the roster before aggregation, so excluded
	// departments are absent rather than zeroed.
	included := departments[:0:0]
	for _, dept := range departments {
		if !sc.Allows(dept.ID) {
			continue
		}
		if filterID != nil && dept.ID != *filterID {
			continue
		}
		included = append(included, dept)
	}

	goals, err := s.goalRepo.FindAll(sc, goal.ListOptions{DepartmentID: filterID})
	if err != nil {
		log.WithError(err).Error("Failed to fetch goals for summary")
		return nil, err
	}

	return &SummaryResponse{
		Departments: DepartmentSummaries(included, goals),
		Global:      Summarize(goals),
	}, nil
}
