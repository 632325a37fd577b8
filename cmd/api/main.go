package main

import (
	"net/http"
	"os"

	"github.com/aws/aws-lambda-go/lambda"
	"github.com/awslabs/aws-lambda-go-api-proxy/httpadapter"
	"github.com/joho/godotenv"

	"github.com/northlane/goalboard/internal/config"
	"github.com/northlane/goalboard/internal/container"
	"github.com/northlane/goalboard/internal/router"
)

func main() {
	_ = godotenv.Load()

	c := container.New()

	handler := router.New(router.RouterConfig{
		UserHandler:       c.UserContainer.Handler,
		DepartmentHandler: c.DepartmentContainer.Handler,
		GoalHandler:       c.GoalContainer.Handler,
		ProgressHandler:   c.ProgressContainer.Handler,
		DashboardHandler:  c.DashboardContainer.Handler,
	})

	if os.Getenv("AWS_LAMBDA_FUNCTION_NAME") != "" {
		adapter := httpadapter.New(handler)
		lambda.Start(adapter.ProxyWithContext)
		return
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	config.Logger().Infof("Listening on :%s", port)
	if err := http.ListenAndServe(":"+port, handler); err != nil {
		config.Logger().WithError(err).Fatal("Server stopped")
	}
}
