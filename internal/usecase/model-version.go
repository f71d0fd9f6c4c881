package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"mlflow-registry/internal/display"
	"mlflow-registry/internal/domain"
	"mlflow-registry/internal/view"
)

type ModelVersionUseCase struct {
	repo      domain.ModelVersionRepository
	modelRepo domain.RegisteredModelRepository
	runs      domain.RunProvider
	runNamer  display.RunNamer
}

// NewModelVersionUseCase wires the version flows. runs may be nil when
// no tracking server is configured; runNamer may be nil to use the
// default "Run <id>" fallback.
func NewModelVersionUseCase(repo domain.ModelVersionRepository, modelRepo domain.RegisteredModelRepository, runs domain.RunProvider, runNamer display.RunNamer) *ModelVersionUseCase {
	return &ModelVersionUseCase{repo: repo, modelRepo: modelRepo, runs: runs, runNamer: runNamer}
}

func (uc *ModelVersionUseCase) Create(ctx context.Context, modelName, description, userID, source, runID, runLink, storageLocation string, tags map[string]string) (*domain.ModelVersion, error) {
	model, err := uc.modelRepo.GetByName(ctx, modelName)
	if err != nil {
		return nil, err
	}

	if tags == nil {
		tags = make(map[string]string)
	}

	now := time.Now()
	version := &domain.ModelVersion{
		ID:                uuid.New(),
		CreatedAt:         now,
		UpdatedAt:         now,
		RegisteredModelID: model.ID,
		Description:       description,
		UserID:            userID,
		CurrentStage:      domain.StageNone,
		Source:            source,
		RunID:             runID,
		RunLink:           runLink,
		Status:            domain.VersionStatusPending,
		StorageLocation:   storageLocation,
		Tags:              tags,
	}

	if err := uc.repo.Create(ctx, version); err != nil {
		return nil, err
	}

	return uc.repo.GetByModelAndVersion(ctx, model.ID, version.Version)
}

func (uc *ModelVersionUseCase) Get(ctx context.Context, modelName string, number int) (*domain.ModelVersion, error) {
	model, err := uc.modelRepo.GetByName(ctx, modelName)
	if err != nil {
		return nil, err
	}
	return uc.repo.GetByModelAndVersion(ctx, model.ID, number)
}

func (uc *ModelVersionUseCase) List(ctx context.Context, modelName string, filter domain.VersionListFilter) ([]*domain.ModelVersion, int, error) {
	model, err := uc.modelRepo.GetByName(ctx, modelName)
	if err != nil {
		return nil, 0, err
	}

	if filter.Limit <= 0 {
		filter.Limit = 20
	}
	if filter.Limit > 100 {
		filter.Limit = 100
	}
	filter.RegisteredModelID = model.ID
	return uc.repo.List(ctx, filter)
}

func (uc *ModelVersionUseCase) Update(ctx context.Context, modelName string, number int, updates map[string]interface{}) (*domain.ModelVersion, error) {
	model, err := uc.modelRepo.GetByName(ctx, modelName)
	if err != nil {
		return nil, err
	}

	version, err := uc.repo.GetByModelAndVersion(ctx, model.ID, number)
	if err != nil {
		return nil, err
	}

	if v, ok := updates["description"]; ok && v != nil {
		version.Description = v.(string)
	}
	if v, ok := updates["status"]; ok && v != nil {
		version.Status = domain.VersionStatus(v.(string))
	}
	if v, ok := updates["status_message"]; ok && v != nil {
		version.StatusMessage = v.(string)
	}
	if v, ok := updates["run_link"]; ok && v != nil {
		version.RunLink = v.(string)
	}
	if v, ok := updates["tags"]; ok && v != nil {
		version.Tags = v.(map[string]string)
	}

	if err := uc.repo.Update(ctx, version); err != nil {
		return nil, err
	}

	return uc.repo.GetByModelAndVersion(ctx, model.ID, number)
}

// TransitionStage validates the target against the canonical stage set
// and delegates the archival semantics to the repository transaction.
func (uc *ModelVersionUseCase) TransitionStage(ctx context.Context, modelName string, number int, stage string, archiveExisting bool) (*domain.ModelVersion, error) {
	model, err := uc.modelRepo.GetByName(ctx, modelName)
	if err != nil {
		return nil, err
	}

	target, err := domain.ParseStage(stage)
	if err != nil {
		return nil, err
	}
	if archiveExisting && !target.IsActive() {
		return nil, domain.ErrArchiveInactiveTarget
	}

	return uc.repo.TransitionStage(ctx, model.ID, number, target, archiveExisting)
}

func (uc *ModelVersionUseCase) Delete(ctx context.Context, modelName string, number int) error {
	model, err := uc.modelRepo.GetByName(ctx, modelName)
	if err != nil {
		return err
	}

	version, err := uc.repo.GetByModelAndVersion(ctx, model.ID, number)
	if err != nil {
		return err
	}

	if !domain.CanDeleteVersion(version.CurrentStage) {
		return domain.ErrVersionInActiveStage
	}

	return uc.repo.Delete(ctx, version.ID)
}

// View assembles the presentation record for a version. A stored run
// link short-circuits tracking-server resolution, and resolution
// failures degrade to the stored fields.
func (uc *ModelVersionUseCase) View(ctx context.Context, modelName string, number int) (*view.ModelVersionView, error) {
	model, err := uc.modelRepo.GetByName(ctx, modelName)
	if err != nil {
		return nil, err
	}

	version, err := uc.repo.GetByModelAndVersion(ctx, model.ID, number)
	if err != nil {
		return nil, err
	}

	var run *domain.RunInfo
	if uc.runs != nil && version.RunLink == "" && version.RunID != "" {
		run, err = uc.runs.GetRun(ctx, version.RunID)
		if err != nil {
			log.WithError(err).WithField("run_id", version.RunID).Warn("resolve run failed")
			run = nil
		}
	}

	return view.Build(version, run, view.Options{RunNamer: uc.runNamer}), nil
}
