package dashboard

import (
	"errors"
	"net/http"

	"github.com/northlane/goalboard/internal/config"
	"github.com/northlane/goalboard/internal/user"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) Summary(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	response, err := h.service.Summary(r.Context(), r.URL.Query().Get("department"))
	if err != nil {
		switch {
		case errors.Is(err, user.ErrUnauthenticated):
			http.Error(w, "unauthorized", http.StatusUnauthorized)
		case errors.Is(err, user.ErrProfileNotFound):
			http.Error(w, "profile not found", http.StatusNotFound)
		case errors.Is(err, ErrInvalidDepartment):
			http.Error(w, err.Error(), http.StatusBadRequest)
		default:
			log.WithError(err).Error("Failed to build dashboard summary")
			http.Error(w, "internal server error", http.StatusInternalServerError)
		}
		return
	}

	config.JSON(w, http.StatusOK, response)
}
