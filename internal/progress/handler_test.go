package progress_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/northlane/goalboard/internal/progress"
	"github.com/northlane/goalboard/internal/user"
)

type stubProgressService struct {
	err      error
	lastKey  string
	response *progress.SubmitProgressResponse
}

func (s *stubProgressService) Submit(ctx context.Context, goalID string, dto progress.SubmitProgressDTO, proof *progress.ProofFile, idempotencyKey string) (*progress.SubmitProgressResponse, error) {
	s.lastKey = idempotencyKey
	return s.response, s.err
}

func (s *stubProgressService) ListByGoal(ctx context.Context, goalID string) (*progress.LedgerResponse, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &progress.LedgerResponse{Entries: []progress.Progress{}, Proofs: nil}, nil
}

func newProgressRouter(stub *stubProgressService) http.Handler {
	h := progress.NewHandler(stub)
	r := chi.NewRouter()
	r.Post("/goals/{id}/progress", h.Submit)
	r.Get("/goals/{id}/progress", h.ListByGoal)
	return r
}

func TestSubmitStatusMapping(t *testing.T) {
	const path = "/goals/1f0f3a4e-9f48-4a5a-9a29-0d2f0f6f2f10/progress"

	tests := []struct {
		name       string
		serviceErr error
		wantStatus int
	}{
		{"Unauthenticated", user.ErrUnauthenticated, http.StatusUnauthorized},
		{"SessionWithoutProfile", user.ErrProfileNotFound, http.StatusNotFound},
		{"NonOwner", progress.ErrForbidden, http.StatusForbidden},
		{"MissingGoal", progress.ErrGoalNotFound, http.StatusNotFound},
		{"NonNumericValue", progress.ErrInvalidValue, http.StatusBadRequest},
		{"Accepted", nil, http.StatusCreated},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stub := &stubProgressService{err: tt.serviceErr, response: &progress.SubmitProgressResponse{}}
			router := newProgressRouter(stub)

			req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(`{"value":"5"}`))
			req.Header.Set("Content-Type", "application/json")
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			if rec.Code != tt.wantStatus {
				t.Errorf("POST %s = %d, want %d", path, rec.Code, tt.wantStatus)
			}
		})
	}
}

func TestSubmitForwardsIdempotencyKey(t *testing.T) {
	stub := &stubProgressService{response: &progress.SubmitProgressResponse{}}
	router := newProgressRouter(stub)

	req := httptest.NewRequest(http.MethodPost, "/goals/1f0f3a4e-9f48-4a5a-9a29-0d2f0f6f2f10/progress", strings.NewReader(`{"value":"5"}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Idempotency-Key", "retry-7")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if stub.lastKey != "retry-7" {
		t.Errorf("forwarded key = %q, want %q", stub.lastKey, "retry-7")
	}
}

func TestListLedgerStatusMapping(t *testing.T) {
	const path = "/goals/1f0f3a4e-9f48-4a5a-9a29-0d2f0f6f2f10/progress"

	t.Run("Unauthenticated", func(t *testing.T) {
		router := newProgressRouter(&stubProgressService{err: user.ErrUnauthenticated})

		req := httptest.NewRequest(http.MethodGet, path, nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		if rec.Code != http.StatusUnauthorized {
			t.Errorf("GET %s = %d, want 401", path, rec.Code)
		}
	})

	t.Run("OK", func(t *testing.T) {
		router := newProgressRouter(&stubProgressService{})

		req := httptest.NewRequest(http.MethodGet, path, nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		if rec.Code != http.StatusOK {
			t.Errorf("GET %s = %d, want 200", path, rec.Code)
		}
	})
}
