package department

import "gorm.io/gorm"

type Container struct {
	Handler *Handler
	Repo    Repository
}

func NewContainer(db *gorm.DB) *Container {
	repo := NewRepository(db)
	handler := NewHandler(repo)

	return &Container{
		Handler: handler,
		Repo:    repo,
	}
}
