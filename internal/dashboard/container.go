package dashboard

import (
	"github.com/northlane/goalboard/internal/department"
	"github.com/northlane/goalboard/internal/goal"
	"github.com/northlane/goalboard/internal/user"
)

type Container struct {
	Handler *Handler
	Service Service
}

func NewContainer(goalRepo goal.Repository, deptRepo department.Repository, users user.Service) *Container {
	service := NewService(goalRepo, deptRepo, users)
	handler := NewHandler(service)

	return &Container{
		Handler: handler,
		Service: service,
	}
}
