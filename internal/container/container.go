package container

import (
	"context"
	"log"
	"os"

	"github.com/northlane/goalboard/internal/auth"
	"github.com/northlane/goalboard/internal/config"
	"github.com/northlane/goalboard/internal/dashboard"
	"github.com/northlane/goalboard/internal/department"
	"github.com/northlane/goalboard/internal/goal"
	"github.com/northlane/goalboard/internal/progress"
	"github.com/northlane/goalboard/internal/upload"
	"github.com/northlane/goalboard/internal/user"
)

type Container struct {
	UserContainer       *user.UserContainer
	DepartmentContainer *department.Container
	GoalContainer       *goal.Container
	ProgressContainer   *progress.Container
	DashboardContainer  *dashboard.Container
	UploadContainer     *upload.Container
}

func New() *Container {
	config.Init()
	auth.Init()

	dsn := os.Getenv("DATABASE_DSN")
	if err := config.Connect(context.Background(), dsn); err != nil {
		log.Fatalf("failed to connect to DB: %v", err)
	}

	if err := config.DB.AutoMigrate(
		&department.Department{},
		&user.User{},
		&goal.Goal{},
		&progress.Progress{},
		&upload.Upload{},
	); err != nil {
		log.Fatalf("failed to migrate schema: %v", err)
	}

	userContainer := user.NewUserContainer(config.DB)
	departmentContainer := department.NewContainer(config.DB)
	uploadContainer := upload.NewContainer(config.DB)

	goalContainer := goal.NewContainer(
		config.DB,
		userContainer.Service,
		departmentContainer.Repo,
	)

	progressContainer := progress.NewContainer(
		config.DB,
		goalContainer.Repo,
		userContainer.Service,
		uploadContainer,
	)

	dashboardContainer := dashboard.NewContainer(
		goalContainer.Repo,
		departmentContainer.Repo,
		userContainer.Service,
	)

	return &Container{
		UserContainer:       userContainer,
		DepartmentContainer: departmentContainer,
		GoalContainer:       goalContainer,
		ProgressContainer:   progressContainer,
		DashboardContainer:  dashboardContainer,
		UploadContainer:     uploadContainer,
	}
}
