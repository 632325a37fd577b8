package user

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/northlane/goalboard/internal/auth"
	"github.com/northlane/goalboard/internal/config"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token string `json:"token"`
	User  *User  `json:"user"`
}

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.WithError(err).Error("Invalid request body")
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	if req.Email == "" || req.Password == "" {
		http.Error(w, "email and password are required", http.StatusBadRequest)
		return
	}

	u, err := h.service.Authenticate(r.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, ErrInvalidCredentials) {
			http.Error(w, "invalid credentials", http.StatusUnauthorized)
			return
		}
		log.WithError(err).Error("Failed to authenticate user")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	token, err := auth.GenerateJWT(u.AuthUserID.String(), string(u.Role), auth.TokenDuration)
	if err != nil {
		log.WithError(err).Error("Failed to generate token")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	auth.SetAuthCookie(w, token)
	config.JSON(w, http.StatusOK, loginResponse{Token: token, User: u})
}

func (h *Handler) GetProfile(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	u, err := h.service.ResolveFromContext(r.Context())
	if err != nil {
		switch {
		case errors.Is(err, ErrUnauthenticated):
			http.Error(w, "unauthorized", http.StatusUnauthorized)
		case errors.Is(err, ErrProfileNotFound):
			http.Error(w, "profile not found", http.StatusNotFound)
		default:
			log.WithError(err).Error("Failed to resolve profile")
			http.Error(w, "internal server error", http.StatusInternalServerError)
		}
		return
	}

	config.JSON(w, http.StatusOK, u)
}

func (h *Handler) ListUsers(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	users, err := h.service.ListUsers(r.Context())
	if err != nil {
		switch {
		case errors.Is(err, ErrUnauthenticated):
			http.Error(w, "unauthorized", http.StatusUnauthorized)
		case errors.Is(err, ErrProfileNotFound):
			http.Error(w, "profile not found", http.StatusNotFound)
		case errors.Is(err, ErrForbidden):
			http.Error(w, "forbidden", http.StatusForbidden)
		default:
			log.WithError(err).Error("Failed to list users")
			http.Error(w, "internal server error", http.StatusInternalServerError)
		}
		return
	}

	config.JSON(w, http.StatusOK, users)
}
