package user

import "github.com/go-chi/chi/v5"

func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()

	r.Get("/", h.ListUsers)
	r.Get("/me", h.GetProfile)
	return r
}
