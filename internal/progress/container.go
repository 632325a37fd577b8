package progress

import (
	"github.com/northlane/goalboard/internal/goal"
	"github.com/northlane/goalboard/internal/upload"
	"github.com/northlane/goalboard/internal/user"
	"gorm.io/gorm"
)

type Container struct {
	Handler *Handler
	Service Service
}

func NewContainer(
	db *gorm.DB,
	goalRepo goal.Repository,
	users user.Service,
	uploads *upload.Container,
) *Container {
	repo := NewRepository(db)
	service := NewService(repo, goalRepo, users, uploads.Repo, uploads.Storage)
	handler := NewHandler(service)

	return &Container{
		Handler: handler,
		Service: service,
	}
}
