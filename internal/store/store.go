package store

import (
	"context"
	"time"

	"cpu-scheduler/internal/requests"
	"cpu-scheduler/internal/responses"

	"github.com/google/uuid"
)

// Run is one persisted scheduling run: the input jobs and the response.
type Run struct {
	ID        string                     `json:"id"`
	Jobs      []requests.Job             `json:"jobs"`
	Response  responses.ScheduleResponse `json:"response"`
	CreatedAt time.Time                  `json:"created_at"`
}

func NewRunID() string {
	return "run_" + uuid.New().String()
}

// Store persists run history.
type Store interface {
	SaveRun(ctx context.Context, run *Run) error
	// GetRun returns nil, nil when id is unknown.
	GetRun(ctx context.Context, id string) (*Run, error)
	// ListRuns returns the most recent runs first.
	ListRuns(ctx context.Context, limit int) ([]*Run, error)

	Close() error
	Migrate(ctx context.Context) error
}
