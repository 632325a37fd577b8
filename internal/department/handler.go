package department

import (
	"net/http"

	"github.com/northlane/goalboard/internal/auth"
	"github.com/northlane/goalboard/internal/config"
)

type Handler struct {
	repo Repository
}

func NewHandler(repo Repository) *Handler {
	return &Handler{repo: repo}
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	if _, err := auth.GetUserClaimsFromContext(r.Context()); err != nil {
		log.Warn("User not authenticated")
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	departments, err := h.repo.FindAll()
	if err != nil {
		log.WithError(err).Error("Failed to list departments")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	config.JSON(w, http.StatusOK, departments)
}
