package domain

import (
	"context"

	"github.com/google/uuid"
)

type ListFilter struct {
	Search string
	SortBy string
	Order  string
	Limit  int
	Offset int
}

type VersionListFilter struct {
	RegisteredModelID uuid.UUID
	Stage             string
	Status            string
	SortBy            string
	Order             string
	Limit             int
	Offset            int
}

type RegisteredModelRepository interface {
	Create(ctx context.Context, model *RegisteredModel) error
	GetByID(ctx context.Context, id uuid.UUID) (*RegisteredModel, error)
	GetByName(ctx context.Context, name string) (*RegisteredModel, error)
	Update(ctx context.Context, model *RegisteredModel) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, filter ListFilter) ([]*RegisteredModel, int, error)
}

type ModelVersionRepository interface {
	// Create assigns the next version number for the model and stores
	// the version under it.
	Create(ctx context.Context, version *ModelVersion) error
	GetByModelAndVersion(ctx context.Context, modelID uuid.UUID, number int) (*ModelVersion, error)
	Update(ctx context.Context, version *ModelVersion) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, filter VersionListFilter) ([]*ModelVersion, int, error)
	ListByModel(ctx context.Context, modelID uuid.UUID) ([]*ModelVersion, error)
	// TransitionStage moves the version to target and, when
	// archiveExisting is set, archives every other version of the model
	// currently in target, all in one transaction.
	TransitionStage(ctx context.Context, modelID uuid.UUID, number int, target Stage, archiveExisting bool) (*ModelVersion, error)
}

// RunProvider resolves tracking-server runs referenced by model
// versions. A nil provider means no tracking server is configured.
type RunProvider interface {
	GetRun(ctx context.Context, runID string) (*RunInfo, error)
}
