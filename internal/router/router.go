package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/northlane/goalboard/internal/auth"
	"github.com/northlane/goalboard/internal/dashboard"
	"github.com/northlane/goalboard/internal/department"
	"github.com/northlane/goalboard/internal/goal"
	"github.com/northlane/goalboard/internal/middlewares"
	"github.com/northlane/goalboard/internal/progress"
	"github.com/northlane/goalboard/internal/user"
)

type RouterConfig struct {
	UserHandler       *user.Handler
	DepartmentHandler *department.Handler
	GoalHandler       *goal.Handler
	ProgressHandler   *progress.Handler
	DashboardHandler  *dashboard.Handler
}

func New(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middlewares.CorsMiddleware)

	r.Get("/swagger/*", httpSwagger.WrapHandler)

	r.Route("/auth", func(r chi.Router) {
		r.Post("/login", cfg.UserHandler.Login)
		r.Post("/logout", auth.NewHandler().Logout)
	})

	r.Group(func(r chi.Router) {
		r.Use(auth.AuthMiddleware)

		r.Mount("/goals", goal.Routes(cfg.GoalHandler))
		r.Mount("/departments", department.Routes(cfg.DepartmentHandler))
		r.Mount("/users", user.Routes(cfg.UserHandler))
		r.Mount("/dashboard", dashboard.Routes(cfg.DashboardHandler))

		r.Get("/profile", cfg.UserHandler.GetProfile)
		r.Post("/goals/{id}/progress", cfg.ProgressHandler.Submit)
		r.Get("/goals/{id}/progress", cfg.ProgressHandler.ListByGoal)
	})
	return r
}
