package goal

import (
	"errors"

	"github.com/google/uuid"
	"github.com/northlane/goalboard/internal/scope"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ListOptions struct {
	// SortByDueDate orders by due date ascending (the employee execution
	// view). The default is created_at descending (the oversight view).
	SortByDueDate bool
	OwnerUserID   *uuid.UUID
	DepartmentID  *uuid.UUID
}

type Repository interface {
	Create(g *Goal) error
	FindAll(sc scope.Scope, opts ListOptions) ([]Goal, error)
	FindByID(id uuid.UUID, sc scope.Scope) (*Goal, error)
	Update(g *Goal) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func applyScope(q *gorm.DB, sc scope.Scope) *gorm.DB {
	if deptID, ok := sc.DepartmentID(); ok {
		return q.Where("department_id = ?", deptID)
	}
	return q
}

func (r *repository) Create(g *Goal) error {
	return r.db.Omit(clause.Associations).Create(g).Error
}

func (r *repository) FindAll(sc scope.Scope, opts ListOptions) ([]Goal, error) {
	if sc.IsEmpty() {
		return []Goal{}, nil
	}

	q := applyScope(r.db.Preload("Department").Preload("Owner"), sc)

	if opts.DepartmentID != nil {
		q = q.Where("department_id = ?", *opts.DepartmentID)
	}
	if opts.OwnerUserID != nil {
		q = q.Where("owner_user_id = ?", *opts.OwnerUserID)
	}

	if opts.SortByDueDate {
		q = q.Order("due_date ASC")
	} else {
		q = q.Order("created_at DESC")
	}

	var goals []Goal
	if err := q.Find(&goals).Error; err != nil {
		return nil, err
	}
	return goals, nil
}

// FindByID applies the scope in the query itself, so an out-of-scope goal
// is indistinguishable from a nonexistent one.
func (r *repository) FindByID(id uuid.UUID, sc scope.Scope) (*Goal, error) {
	if sc.IsEmpty() {
		return nil, nil
	}

	var g Goal
	q := applyScope(r.db.Preload("Department").Preload("Owner"), sc)
	if err := q.First(&g, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &g, nil
}

func (r *repository) Update(g *Goal) error {
	return r.db.Omit(clause.Associations).Save(g).Error
}
