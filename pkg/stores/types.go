package stores

import (
	"context"
	"time"
)

// RunStatus represents the status of an extraction run
type RunStatus string

const (
	RunStatusPending   RunStatus = "pending"
	RunStatusRunning   RunStatus = "running"
	RunStatusCompleted RunStatus = "completed"
	RunStatusFailed    RunStatus = "failed"
)

// ArtifactKind classifies a rendered artifact
type ArtifactKind string

const (
	// ArtifactDocument is the assembled configuration document.
	ArtifactDocument ArtifactKind = "document"

	// ArtifactData is the rendered configuration data file.
	ArtifactData ArtifactKind = "data"

	// ArtifactBlock is a single rendered resource block.
	ArtifactBlock ArtifactKind = "block"
)

// Run represents one extraction run
type Run struct {
	ID            string     `json:"id"`
	ManifestName  string     `json:"manifest_name"`
	Status        RunStatus  `json:"status"`
	StartedAt     time.Time  `json:"started_at"`
	CompletedAt   *time.Time `json:"completed_at,omitempty"`
	Error         *string    `json:"error,omitempty"`
	ResourceCount int        `json:"resource_count"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

// Artifact represents a rendered output attached to a run
type Artifact struct {
	ID        string       `json:"id"`
	RunID     string       `json:"run_id"`
	Kind      ArtifactKind `json:"kind"`
	Name      string       `json:"name"`
	Content   string       `json:"content"`
	CreatedAt time.Time    `json:"created_at"`
}

// Store defines the interface for the persistence layer
type Store interface {
	// Lifecycle
	Init(ctx context.Context) error
	Close() error
	Migrate(ctx context.Context) error

	// Run operations
	CreateRun(ctx context.Context, run *Run) error
	GetRun(ctx context.Context, id string) (*Run, error)
	UpdateRunStatus(ctx context.Context, id string, status RunStatus, err *string) error
	ListRuns(ctx context.Context, limit, offset int) ([]*Run, error)

	// Artifact operations
	CreateArtifact(ctx context.Context, artifact *Artifact) error
	ListArtifactsByRun(ctx context.Context, runID string) ([]*Artifact, error)

	// Utility
	HealthCheck(ctx context.Context) error
}
