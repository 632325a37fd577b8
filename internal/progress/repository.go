package progress

import (
	"errors"

	"github.com/google/uuid"
	"github.com/northlane/goalboard/internal/goal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Repository interface {
	// Submit appends the ledger entry and applies its delta to the goal's
	// current value in one transaction. The increment runs as a server-side
	// expression so concurrent submissions never lose an update. A result
	// below zero is clamped back to zero; the second return reports whether
	// clamping happened.
	Submit(p *Progress) (*goal.Goal, bool, error)
	FindByIdempotencyKey(key string) (*Progress, error)
	ListByGoal(goalID uuid.UUID) ([]Progress, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Submit(p *Progress) (*goal.Goal, bool, error) {
	var updated goal.Goal
	clamped := false

	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Create(p).Error; err != nil {
			return err
		}

		res := tx.Model(&goal.Goal{}).
			Where("id = ?", p.GoalID).
			UpdateColumn("current_value", gorm.Expr("current_value + ?", p.Value))
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}

		res = tx.Model(&goal.Goal{}).
			Where("id = ? AND current_value < 0", p.GoalID).
			UpdateColumn("current_value", 0)
		if res.Error != nil {
			return res.Error
		}
		clamped = res.RowsAffected > 0

		return tx.First(&updated, "id = ?", p.GoalID).Error
	})
	if err != nil {
		return nil, false, err
	}

	return &updated, clamped, nil
}

func (r *repository) FindByIdempotencyKey(key string) (*Progress, error) {
	var p Progress
	err := r.db.First(&p, "idempotency_key = ?", key).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &p, nil
}

func (r *repository) ListByGoal(goalID uuid.UUID) ([]Progress, error) {
	var entries []Progress
	if err := r.db.Where("goal_id = ?", goalID).Order("created_at DESC").Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}
