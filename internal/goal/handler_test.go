package goal_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/northlane/goalboard/internal/goal"
	"github.com/northlane/goalboard/internal/user"
)

type stubGoalService struct {
	err  error
	resp *goal.GoalResponse
}

func (s *stubGoalService) List(ctx context.Context, q goal.ListQuery) ([]goal.GoalResponse, error) {
	if s.err != nil {
		return nil, s.err
	}
	return []goal.GoalResponse{}, nil
}

func (s *stubGoalService) Get(ctx context.Context, id string) (*goal.GoalResponse, error) {
	return s.resp, s.err
}

func (s *stubGoalService) Create(ctx context.Context, dto goal.CreateGoalDTO) (*goal.GoalResponse, error) {
	return s.resp, s.err
}

func (s *stubGoalService) Update(ctx context.Context, id string, dto goal.UpdateGoalDTO) (*goal.GoalResponse, error) {
	return s.resp, s.err
}

func TestHandlerStatusMapping(t *testing.T) {
	tests := []struct {
		name       string
		method     string
		path       string
		body       string
		serviceErr error
		wantStatus int
	}{
		{
			name:       "UnauthenticatedList",
			method:     http.MethodGet,
			path:       "/",
			serviceErr: user.ErrUnauthenticated,
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "SessionWithoutProfileList",
			method:     http.MethodGet,
			path:       "/",
			serviceErr: user.ErrProfileNotFound,
			wantStatus: http.StatusNotFound,
		},
		{
			name:       "EmployeeCreateForbidden",
			method:     http.MethodPost,
			path:       "/",
			body:       `{"title":"Close deals"}`,
			serviceErr: goal.ErrForbidden,
			wantStatus: http.StatusForbidden,
		},
		{
			name:       "MissingGoalGet",
			method:     http.MethodGet,
			path:       "/1f0f3a4e-9f48-4a5a-9a29-0d2f0f6f2f10",
			serviceErr: goal.ErrGoalNotFound,
			wantStatus: http.StatusNotFound,
		},
		{
			name:       "MalformedIDGet",
			method:     http.MethodGet,
			path:       "/not-a-uuid",
			serviceErr: goal.ErrInvalidID,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "InvalidPayloadCreate",
			method:     http.MethodPost,
			path:       "/",
			body:       `{"title":""}`,
			serviceErr: goal.ErrInvalidPayload,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "ListOK",
			method:     http.MethodGet,
			path:       "/",
			wantStatus: http.StatusOK,
		},
		{
			name:       "CreateReturnsCreated",
			method:     http.MethodPost,
			path:       "/",
			body:       `{"title":"Close deals"}`,
			wantStatus: http.StatusCreated,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stub := &stubGoalService{err: tt.serviceErr, resp: &goal.GoalResponse{}}
			router := goal.Routes(goal.NewHandler(stub))

			req := httptest.NewRequest(tt.method, tt.path, strings.NewReader(tt.body))
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			if rec.Code != tt.wantStatus {
				t.Errorf("%s %s = %d, want %d", tt.method, tt.path, rec.Code, tt.wantStatus)
			}
		})
	}
}
