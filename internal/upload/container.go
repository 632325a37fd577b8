package upload

import (
	"errors"

	"github.com/northlane/goalboard/internal/config"
	"gorm.io/gorm"
)

type Container struct {
	Repo    Repository
	Storage ObjectStorage
}

func NewContainer(db *gorm.DB) *Container {
	storage, err := NewMinioStorage()
	if err != nil {
		if errors.Is(err, ErrStorageNotConfigured) {
			config.Logger().Warn("Object storage not configured; proof file uploads disabled")
		} else {
			config.Logger().WithError(err).Error("Failed to initialize object storage")
		}
	}

	return &Container{
		Repo:    NewRepository(db),
		Storage: storage,
	}
}
