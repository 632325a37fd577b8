package progress

import (
	"context"
	"errors"
	"fmt"
	"math"
	"path"
	"time"

	"github.com/google/uuid"
	"github.com/northlane/goalboard/internal/config"
	"github.com/northlane/goalboard/internal/goal"
	"github.com/northlane/goalboard/internal/scope"
	"github.com/northlane/goalboard/internal/upload"
	"github.com/northlane/goalboard/internal/user"
	"gorm.io/gorm"
)

var (
	ErrGoalNotFound = errors.New("goal not found")
	ErrForbidden    = errors.New("forbidden")
	ErrInvalidID    = errors.New("invalid id format")
	ErrInvalidValue = errors.New("progress value must be a finite number")
)

const submitAttempts = 3

type Service interface {
	Submit(ctx context.Context, goalID string, dto SubmitProgressDTO, proof *ProofFile, idempotencyKey string) (*SubmitProgressResponse, error)
	ListByGoal(ctx context.Context, goalID string) (*LedgerResponse, error)
}

type service struct {
	repo       Repository
	goalRepo   goal.Repository
	users      user.Service
	uploadRepo upload.Repository
	storage    upload.ObjectStorage
}

func NewService(repo Repository, goalRepo goal.Repository, users user.Service, uploadRepo upload.Repository, storage upload.ObjectStorage) Service {
	return &service{
		repo:       repo,
		goalRepo:   goalRepo,
		users:      users,
		uploadRepo: uploadRepo,
		storage:    storage,
	}
}

func (s *service) Submit(ctx context.Context, goalID string, dto SubmitProgressDTO, proof *ProofFile, idempotencyKey string) (*SubmitProgressResponse, error) {
	log := config.WithContext(ctx)

	caller, err := s.users.ResolveFromContext(ctx)
	if err != nil {
		return nil, err
	}

	value, err := dto.Value.Float64()
	if err != nil || math.IsNaN(value) || math.IsInf(value, 0) {
		return nil, ErrInvalidValue
	}

	id, err := uuid.Parse(goalID)
	if err != nil {
		return nil, ErrInvalidID
	}

	sc := scope.ForProfile(caller)
	g, err := s.goalRepo.FindByID(id, sc)
	if err != nil {
		log.WithError(err).Error("Failed to fetch goal for progress submission")
		return nil, err
	}
	if g == nil {
		return nil, ErrGoalNotFound
	}

	if !scope.CanSubmitProgress(caller, g.OwnerUserID) {
		log.WithFields(map[string]interface{}{
			"user_id": caller.ID,
			"goal_id": g.ID,
		}).Warn("Progress submission rejected: caller does not own the goal")
		return nil, ErrForbidden
	}

	if idempotencyKey != "" {
		replay, err := s.replayFor(id, sc, idempotencyKey)
		if err != nil {
			return nil, err
		}
		if replay != nil {
			return replay, nil
		}
	}

	p := &Progress{
		ID:        uuid.New(),
		GoalID:    id,
		UserID:    caller.ID,
		Value:     value,
		Note:      dto.Note,
		CreatedAt: time.Now(),
	}
	if idempotencyKey != "" {
		p.IdempotencyKey = &idempotencyKey
	}

	var clamped bool
	for attempt := 1; ; attempt++ {
		_, clamped, err = s.repo.Submit(p)
		if err == nil {
			break
		}
		if errors.Is(err, gorm.ErrDuplicatedKey) && idempotencyKey != "" {
			// Lost the race against a concurrent retry of the same key.
			replay, rerr := s.replayFor(id, sc, idempotencyKey)
			if rerr != nil || replay == nil {
				return nil, err
			}
			return replay, nil
		}
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrGoalNotFound
		}
		if attempt >= submitAttempts {
			log.WithError(err).Error("Failed to record progress")
			return nil, err
		}
		log.WithError(err).Warnf("Progress submission attempt %d failed, retrying", attempt)
	}

	response := &SubmitProgressResponse{
		Progress: p,
		Clamped:  clamped,
	}

	if proof != nil || dto.ProofURL != "" {
		response.ProofError = s.attachProof(ctx, p, proof, dto.ProofURL)
	}

	// Re-read so the response carries the joined department and owner.
	if updated, err := s.goalRepo.FindByID(id, sc); err == nil && updated != nil {
		response.Goal = goal.ToResponse(updated)
	}

	return response, nil
}

func (s *service) replayFor(goalID uuid.UUID, sc scope.Scope, key string) (*SubmitProgressResponse, error) {
	existing, err := s.repo.FindByIdempotencyKey(key)
	if err != nil {
		return nil, err
	}
	if existing == nil || existing.GoalID != goalID {
		return nil, nil
	}

	response := &SubmitProgressResponse{
		Progress: existing,
		Replayed: true,
	}
	if g, err := s.goalRepo.FindByID(goalID, sc); err == nil && g != nil {
		response.Goal = goal.ToResponse(g)
	}
	return response, nil
}

// attachProof stores the optional evidence. A failed binary upload is
// logged and skipped; a failed metadata row is reported back to the caller
// because losing it would silently drop the evidence link. Neither rolls
// back the already-committed progress.
func (s *service) attachProof(ctx context.Context, p *Progress, proof *ProofFile, proofURL string) string {
	log := config.WithContext(ctx)

	var filePath *string
	if proof != nil {
		if s.storage == nil {
			log.Warn("Proof file supplied but object storage is not configured; skipping")
		} else {
			objectName := fmt.Sprintf("%s/%d%s", p.UserID, time.Now().UnixNano(), path.Ext(proof.Name))
			key, err := s.storage.Store(ctx, objectName, proof.Reader, proof.Size, proof.ContentType)
			if err != nil {
				log.WithError(err).Warn("Proof file upload failed; continuing without it")
			} else {
				filePath = &key
			}
		}
	}

	var url *string
	if proofURL != "" {
		url = &proofURL
	}
	if url == nil && filePath == nil {
		return ""
	}

	row := &upload.Upload{
		ID:        uuid.New(),
		GoalID:    p.GoalID,
		UserID:    p.UserID,
		URL:       url,
		FilePath:  filePath,
		CreatedAt: time.Now(),
	}
	if err := s.uploadRepo.Create(row); err != nil {
		log.WithError(err).Error("Failed to record proof attachment")
		return "failed to record proof attachment"
	}
	return ""
}

func (s *service) ListByGoal(ctx context.Context, goalID string) (*LedgerResponse, error) {
	caller, err := s.users.ResolveFromContext(ctx)
	if err != nil {
		return nil, err
	}

	id, err := uuid.Parse(goalID)
	if err != nil {
		return nil, ErrInvalidID
	}

	g, err := s.goalRepo.FindByID(id, scope.ForProfile(caller))
	if err != nil {
		return nil, err
	}
	if g == nil {
		return nil, ErrGoalNotFound
	}

	entries, err := s.repo.ListByGoal(id)
	if err != nil {
		return nil, err
	}
	proofs, err := s.uploadRepo.ListByGoal(id)
	if err != nil {
		return nil, err
	}

	return &LedgerResponse{Entries: entries, Proofs: proofs}, nil
}
