package goal

import (
	"github.com/northlane/goalboard/internal/department"
	"github.com/northlane/goalboard/internal/user"
	"gorm.io/gorm"
)

type Container struct {
	Handler *Handler
	Service Service
	Repo    Repository
}

func NewContainer(db *gorm.DB, users user.Service, deptRepo department.Repository) *Container {
	repo := NewRepository(db)
	service := NewService(repo, users, deptRepo)
	handler := NewHandler(service)

	return &Container{
		Handler: handler,
		Service: service,
		Repo:    repo,
	}
}
