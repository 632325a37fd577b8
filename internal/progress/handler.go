package progress

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/northlane/goalboard/internal/config"
	"github.com/northlane/goalboard/internal/user"
	"github.com/sirupsen/logrus"
)

const maxProofSize = 10 << 20 // 10MB

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
	case errors.Is(err, ErrInvalidID), errors.Is(err, ErrInvalidValue):
		http.Error(w, err.Error(), http.StatusBadRequest)
	default:
		log.WithError(err).Errorf("Failed to %s", action)
		http.Error(w, "internal server error", http.StatusInternalServerError)
	}
}

func (h *Handler) Submit(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	goalID := chi.URLParam(r, "id")
	if goalID == "" {
		http.Error(w, "goal id required", http.StatusBadRequest)
		return
	}

	var dto SubmitProgressDTO
	var proof *ProofFile

	if strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data") {
		if err := r.ParseMultipartForm(maxProofSize); err != nil {
			log.WithError(err).Error("Invalid multipart body")
			http.Error(w, "invalid request body", http.StatusBadRequest)
			return
		}
		dto.Value = json.Number(r.FormValue("value"))
		dto.Note = r.FormValue("note")
		dto.ProofURL = r.FormValue("proof_url")

		if file, header, err := r.FormFile("proof"); err == nil {
			defer file.Close()
			proof = &ProofFile{
				Name:        header.Filename,
				ContentType: header.Header.Get("Content-Type"),
				Size:        header.Size,
				Reader:      file,
			}
		}
	} else {
		if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
			log.WithError(err).Error("Invalid request body")
			http.Error(w, "invalid request body", http.StatusBadRequest)
			return
		}
	}

	response, err := h.service.Submit(r.Context(), goalID, dto, proof, r.Header.Get("Idempotency-Key"))
	if err != nil {
		writeServiceError(w, log, err, "submit progress")
		return
	}

	config.JSON(w, http.StatusCreated, response)
}

func (h *Handler) ListByGoal(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	goalID := chi.URLParam(r, "id")
	if goalID == "" {
		http.Error(w, "goal id required", http.StatusBadRequest)
		return
	}

	ledger, err := h.service.ListByGoal(r.Context(), goalID)
	if err != nil {
		writeServiceError(w, log, err, "list progress")
		return
	}

	config.JSON(w, http.StatusOK, ledger)
}
