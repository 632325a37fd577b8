package progress

import (
	"encoding/json"
	"io"

	"github.com/northlane/goalboard/internal/goal"
	"github.com/northlane/goalboard/internal/upload"
)

type SubmitProgressDTO struct {
	// Value stays a json.Number until validated so malformed input is
	// rejected instead of silently coerced.
	Value    json.Number `json:"value"`
	Note     string      `json:"note"`
	ProofURL string      `json:"proof_url"`
}

type ProofFile struct {
	Name        string
	ContentType string
	Size        int64
	Reader      io.Reader
}

// LedgerResponse is the full history for one goal: the delta entries and
// the proof attachments recorded alongside them.
type LedgerResponse struct {
	Entries []Progress      `json:"entries"`
	Proofs  []upload.Upload `json:"proofs"`
}

type SubmitProgressResponse struct {
	Progress   *Progress          `json:"progress"`
	Goal       *goal.GoalResponse `json:"goal"`
	Clamped    bool               `json:"clamped,omitempty"`
	Replayed   bool               `json:"replayed,omitempty"`
	ProofError string             `json:"proof_error,omitempty"`
}
