package user

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/northlane/goalboard/internal/auth"
	"github.com/northlane/goalboard/internal/config"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrUnauthenticated    = errors.New("unauthenticated")
	ErrProfileNotFound    = errors.New("profile not found")
	ErrForbidden          = errors.New("forbidden")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

type Service interface {
	// ResolveFromContext maps the authenticated session to a provisioned
	// profile. A valid token without a matching user row is reported as
	// ErrProfileNotFound, not as an auth failure.
	ResolveFromContext(ctx context.Context) (*User, error)
	Authenticate(ctx context.Context, email, password string) (*User, error)
	ListUsers(ctx context.Context) ([]User, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) ResolveFromContext(ctx context.Context) (*User, error) {
	log := config.WithContext(ctx)

	claims, err := auth.GetUserClaimsFromContext(ctx)
	if err != nil {
		return nil, ErrUnauthenticated
	}

	authUserID, err := uuid.Parse(claims.UserID)
	if err != nil {
		log.WithError(err).Warn("Malformed user id in token claims")
		return nil, ErrUnauthenticated
	}

	u, err := s.repo.FindByAuthUserID(authUserID)
	if err != nil {
		log.WithError(err).Error("Failed to load user profile")
		return nil, err
	}
	if u == nil {
		log.WithField("auth_user_id", authUserID).Warn("Authenticated identity has no provisioned profile")
		return nil, ErrProfileNotFound
	}

	return u, nil
}

func (s *service) Authenticate(ctx context.Context, email, password string) (*User, error) {
	log := config.WithContext(ctx)

	u, err := s.repo.FindByEmail(email)
	if err != nil {
		log.WithError(err).Error("Failed to look up user by email")
		return nil, err
	}
	if u == nil {
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return u, nil
}

func (s *service) ListUsers(ctx context.Context) ([]User, error) {
	caller, err := s.ResolveFromContext(ctx)
	if err != nil {
		return nil, err
	}
	if caller.Role != RoleCEO {
		return nil, ErrForbidden
	}

	return s.repo.FindAll()
}
