package upload

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ErrEmptyUpload rejects evidence rows that carry neither a URL nor a
// stored file; such a record would be meaningless.
var ErrEmptyUpload = errors.New("upload must carry a url or a file path")

type Repository interface {
	Create(u *Upload) error
	ListByGoal(goalID uuid.UUID) ([]Upload, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(u *Upload) error {
	if u.URL == nil && u.FilePath == nil {
		return ErrEmptyUpload
	}
	return r.db.Create(u).Error
}

func (r *repository) ListByGoal(goalID uuid.UUID) ([]Upload, error) {
	var uploads []Upload
	if err := r.db.Where("goal_id = ?", goalID).Order("created_at DESC").Find(&uploads).Error; err != nil {
		return nil, err
	}
	return uploads, nil
}
