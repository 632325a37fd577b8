package goal

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/northlane/goalboard/internal/config"
	"github.com/northlane/goalboard/internal/department"
	"github.com/northlane/goalboard/internal/scope"
	"github.com/northlane/goalboard/internal/user"
)

var (
	ErrGoalNotFound   = errors.New("goal not found")
	ErrForbidden      = errors.New("forbidden")
	ErrInvalidID      = errors.New("invalid id format")
	ErrInvalidPayload = errors.New("invalid goal payload")
)

const defaultUnit = "%"

type ListQuery struct {
	Sort         string
	OwnerMe      bool
	DepartmentID string
}

type Service interface {
	List(ctx context.Context, q ListQuery) ([]GoalResponse, error)
	Get(ctx context.Context, id string) (*GoalResponse, error)
	Create(ctx context.Context, dto CreateGoalDTO) (*GoalResponse, error)
	Update(ctx context.Context, id string, dto UpdateGoalDTO) (*GoalResponse, error)
}

type service struct {
	repo     Repository
	users    user.Service
	deptRepo department.Repository
}

func NewService(repo Repository, users user.Service, deptRepo department.Repository) Service {
	return &service{
		repo:     repo,
		users:    users,
		deptRepo: deptRepo,
	}
}

func (s *service) List(ctx context.Context, q ListQuery) ([]GoalResponse, error) {
	caller, err := s.users.ResolveFromContext(ctx)
	if err != nil {
		return nil, err
	}

	opts := ListOptions{SortByDueDate: q.Sort == "due_date"}
	if q.OwnerMe {
		opts.OwnerUserID = &caller.ID
	}
	if q.DepartmentID != "" {
		deptID, err := uuid.Parse(q.DepartmentID)
		if err != nil {
			return nil, ErrInvalidID
		}
		opts.DepartmentID = &deptID
	}

	goals, err := s.repo.FindAll(scope.ForProfile(caller), opts)
	if err != nil {
		config.WithContext(ctx).WithError(err).Error("Failed to list goals")
		return nil, err
	}

	responses := make([]GoalResponse, 0, len(goals))
	for i := range goals {
		responses = append(responses, *ToResponse(&goals[i]))
	}
	return responses, nil
}

func (s *service) Get(ctx context.Context, id string) (*GoalResponse, error) {
	caller, err := s.users.ResolveFromContext(ctx)
	if err != nil {
		return nil, err
	}

	goalID, err := uuid.Parse(id)
	if err != nil {
		return nil, ErrInvalidID
	}

	g, err := s.repo.FindByID(goalID, scope.ForProfile(caller))
	if err != nil {
		config.WithContext(ctx).WithError(err).Error("Failed to fetch goal")
		return nil, err
	}
	if g == nil {
		return nil, ErrGoalNotFound
	}

	return ToResponse(g), nil
}

func (s *service) Create(ctx context.Context, dto CreateGoalDTO) (*GoalResponse, error) {
	log := config.WithContext(ctx)

	caller, err := s.users.ResolveFromContext(ctx)
	if err != nil {
		return nil, err
	}
	if !scope.CanManageGoals(caller) {
		log.WithField("user_id", caller.ID).Warn("Non-ceo attempted to create a goal")
		return nil, ErrForbidden
	}

	if dto.Title == "" {
		return nil, fmt.Errorf("%w: title is required", ErrInvalidPayload)
	}
	if dto.DepartmentID == uuid.Nil {
		return nil, fmt.Errorf("%w: department_id is required", ErrInvalidPayload)
	}
	if dto.TargetValue == nil {
		return nil, fmt.Errorf("%w: target_value is required", ErrInvalidPayload)
	}
	if !isFinite(*dto.TargetValue) {
		return nil, fmt.Errorf("%w: target_value must be a finite number", ErrInvalidPayload)
	}
	if dto.StartDate.IsZero() || dto.DueDate.IsZero() {
		return nil, fmt.Errorf("%w: start_date and due_date are required", ErrInvalidPayload)
	}
	if dto.DueDate.Before(dto.StartDate) {
		return nil, fmt.Errorf("%w: due_date must not precede start_date", ErrInvalidPayload)
	}

	dept, err := s.deptRepo.FindByID(dto.DepartmentID)
	if err != nil {
		log.WithError(err).Error("Failed to look up department")
		return nil, err
	}
	if dept == nil {
		return nil, fmt.Errorf("%w: unknown department", ErrInvalidPayload)
	}

	g := Goal{
		ID:           uuid.New(),
		Title:        dto.Title,
		Description:  dto.Description,
		DepartmentID: dto.DepartmentID,
		OwnerUserID:  dto.OwnerUserID,
		TargetValue:  *dto.TargetValue,
		Unit:         dto.Unit,
		StartDate:    dto.StartDate,
		DueDate:      dto.DueDate,
		Status:       StatusNotStarted,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}
	if dto.CurrentValue != nil {
		if !isFinite(*dto.CurrentValue) || *dto.CurrentValue < 0 {
			return nil, fmt.Errorf("%w: current_value must be a non-negative number", ErrInvalidPayload)
		}
		g.CurrentValue = *dto.CurrentValue
	}
	if g.Unit == "" {
		g.Unit = defaultUnit
	}
	if dto.Status != nil {
		if !dto.Status.IsValid() {
			return nil, fmt.Errorf("%w: unknown status %q", ErrInvalidPayload, *dto.Status)
		}
		g.Status = *dto.Status
	}

	if err := s.repo.Create(&g); err != nil {
		log.WithError(err).Error("Failed to create goal")
		return nil, err
	}

	g.Department = *dept
	return ToResponse(&g), nil
}

func (s *service) Update(ctx context.Context, id string, dto UpdateGoalDTO) (*GoalResponse, error) {
	log := config.WithContext(ctx)

	caller, err := s.users.ResolveFromContext(ctx)
	if err != nil {
		return nil, err
	}
	if !scope.CanManageGoals(caller) {
		log.WithField("user_id", caller.ID).Warn("Non-ceo attempted to edit a goal")
		return nil, ErrForbidden
	}

	goalID, err := uuid.Parse(id)
	if err != nil {
		return nil, ErrInvalidID
	}

	g, err := s.repo.FindByID(goalID, scope.ForProfile(caller))
	if err != nil {
		log.WithError(err).Error("Failed to fetch goal for update")
		return nil, err
	}
	if g == nil {
		return nil, ErrGoalNotFound
	}

	if dto.Title != nil {
		if *dto.Title == "" {
			return nil, fmt.Errorf("%w: title must not be empty", ErrInvalidPayload)
		}
		g.Title = *dto.Title
	}
	if dto.Description != nil {
		g.Description = *dto.Description
	}
	if dto.DepartmentID != nil {
		dept, err := s.deptRepo.FindByID(*dto.DepartmentID)
		if err != nil {
			return nil, err
		}
		if dept == nil {
			return nil, fmt.Errorf("%w: unknown department", ErrInvalidPayload)
		}
		g.DepartmentID = *dto.DepartmentID
		g.Department = *dept
	}
	if dto.OwnerUserID != nil {
		g.OwnerUserID = dto.OwnerUserID
		g.Owner = nil
	}
	if dto.TargetValue != nil {
		if !isFinite(*dto.TargetValue) {
			return nil, fmt.Errorf("%w: target_value must be a finite number", ErrInvalidPayload)
		}
		g.TargetValue = *dto.TargetValue
	}
	if dto.CurrentValue != nil {
		if !isFinite(*dto.CurrentValue) || *dto.CurrentValue < 0 {
			return nil, fmt.Errorf("%w: current_value must be a non-negative number", ErrInvalidPayload)
		}
		g.CurrentValue = *dto.CurrentValue
	}
	if dto.Unit != nil {
		g.Unit = *dto.Unit
	}
	if dto.StartDate != nil {
		g.StartDate = *dto.StartDate
	}
	if dto.DueDate != nil {
		g.DueDate = *dto.DueDate
	}
	if g.DueDate.Before(g.StartDate) {
		return nil, fmt.Errorf("%w: due_date must not precede start_date", ErrInvalidPayload)
	}
	if dto.Status != nil {
		if !dto.Status.IsValid() {
			return nil, fmt.Errorf("%w: unknown status %q", ErrInvalidPayload, *dto.Status)
		}
		g.Status = *dto.Status
	}

	g.UpdatedAt = time.Now()
	if err := s.repo.Update(g); err != nil {
		log.WithError(err).Error("Failed to update goal")
		return nil, err
	}

	return ToResponse(g), nil
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func ToResponse(g *Goal) *GoalResponse {
	resp := &GoalResponse{
		ID:             g.ID,
		Title:          g.Title,
		Description:    g.Description,
		DepartmentID:   g.DepartmentID,
		DepartmentName: g.Department.Name,
		OwnerUserID:    g.OwnerUserID,
		TargetValue:    g.TargetValue,
		CurrentValue:   g.CurrentValue,
		Unit:           g.Unit,
		StartDate:      g.StartDate,
		DueDate:        g.DueDate,
		Status:         g.Status,
		CreatedAt:      g.CreatedAt,
		UpdatedAt:      g.UpdatedAt,
	}
	if g.Owner != nil {
		resp.OwnerName = g.Owner.FullName
	}
	return resp
}
