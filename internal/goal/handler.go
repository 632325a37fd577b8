package goal

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/northlane/goalboard/internal/config"
	"github.com/northlane/goalboard/internal/user"
	"github.com/sirupsen/logrus"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

func writeServiceError(w http.ResponseWriter, log logrus.FieldLogger, err error, action string) {
	switch {
	case errors.Is(err, user.ErrUnauthenticated):
		http.Error(w, "unauthorized", http.StatusUnauthorized)
	case errors.Is(err, user.ErrProfileNotFound):
		http.Error(w, "profile not found", http.StatusNotFound)
	case errors.Is(err, ErrForbidden):
		http.Error(w, "forbidden", http.StatusForbidden)
	case errors.Is(err, ErrGoalNotFound):
		http.Error(w, "goal not found", http.StatusNotFound)
	case errors.Is(err, ErrInvalidID), errors.Is(err, ErrInvalidPayload):
		http.Error(w, err.Error(), http.StatusBadRequest)
	default:
		log.WithError(err).Errorf("Failed to %s", action)
		http.Error(w, "internal server error", http.StatusInternalServerError)
	}
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	q := ListQuery{
		Sort:         r.URL.Query().Get("sort"),
		OwnerMe:      r.URL.Query().Get("owner") == "me",
		DepartmentID: r.URL.Query().Get("department"),
	}

	responses, err := h.service.List(r.Context(), q)
	if err != nil {
		writeServiceError(w, log, err, "list goals")
		return
	}

	config.JSON(w, http.StatusOK, responses)
}

func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	id := chi.URLParam(r, "id")
	if id == "" {
		http.Error(w, "id required", http.StatusBadRequest)
		return
	}

	response, err := h.service.Get(r.Context(), id)
	if err != nil {
		writeServiceError(w, log, err, "fetch goal")
		return
	}

	config.JSON(w, http.StatusOK, response)
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	var dto CreateGoalDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		log.WithError(err).Error("Invalid request body")
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	response, err := h.service.Create(r.Context(), dto)
	if err != nil {
		writeServiceError(w, log, err, "create goal")
		return
	}

	config.JSON(w, http.StatusCreated, response)
}

func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	id := chi.URLParam(r, "id")
	if id == "" {
		http.Error(w, "id required", http.StatusBadRequest)
		return
	}

	var dto UpdateGoalDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		log.WithError(err).Error("Invalid request body")
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	response, err := h.service.Update(r.Context(), id, dto)
	if err != nil {
		writeServiceError(w, log, err, "update goal")
		return
	}

	config.JSON(w, http.StatusOK, response)
}
