package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"mlflow-registry/internal/domain"
)

type RegisteredModelUseCase struct {
	repo        domain.RegisteredModelRepository
	versionRepo domain.ModelVersionRepository
}

func NewRegisteredModelUseCase(repo domain.RegisteredModelRepository, versionRepo domain.ModelVersionRepository) *RegisteredModelUseCase {
	return &RegisteredModelUseCase{repo: repo, versionRepo: versionRepo}
}

func (uc *RegisteredModelUseCase) Create(ctx context.Context, name, description, owner string, tags map[string]string) (*domain.RegisteredModel, error) {
	if name == "" {
		return nil, domain.ErrInvalidModelName
	}

	if tags == nil {
		tags = make(map[string]string)
	}

	now := time.Now()
	model := &domain.RegisteredModel{
		ID:          uuid.New(),
		CreatedAt:   now,
		UpdatedAt:   now,
		Name:        name,
		Description: description,
		Owner:       owner,
		Tags:        tags,
	}

	if err := uc.repo.Create(ctx, model); err != nil {
		return nil, err
	}

	return uc.repo.GetByID(ctx, model.ID)
}

func (uc *RegisteredModelUseCase) Get(ctx context.Context, name string) (*domain.RegisteredModel, error) {
	return uc.repo.GetByName(ctx, name)
}

func (uc *RegisteredModelUseCase) List(ctx context.Context, filter domain.ListFilter) ([]*domain.RegisteredModel, int, error) {
	if filter.Limit <= 0 {
		filter.Limit = 20
	}
	if filter.Limit > 100 {
		filter.Limit = 100
	}
	return uc.repo.List(ctx, filter)
}

func (uc *RegisteredModelUseCase) Update(ctx context.Context, name string, updates map[string]interface{}) (*domain.RegisteredModel, error) {
	model, err := uc.repo.GetByName(ctx, name)
	if err != nil {
		return nil, err
	}

	if v, ok := updates["description"]; ok && v != nil {
		model.Description = v.(string)
	}
	if v, ok := updates["owner"]; ok && v != nil {
		model.Owner = v.(string)
	}
	if v, ok := updates["tags"]; ok && v != nil {
		model.Tags = v.(map[string]string)
	}

	if err := uc.repo.Update(ctx, model); err != nil {
		return nil, err
	}

	return uc.repo.GetByID(ctx, model.ID)
}

func (uc *RegisteredModelUseCase) Delete(ctx context.Context, name string) error {
	model, err := uc.repo.GetByName(ctx, name)
	if err != nil {
		return err
	}

	versions, err := uc.versionRepo.ListByModel(ctx, model.ID)
	if err != nil {
		return err
	}
	if !domain.CanDeleteModel(versions) {
		return domain.ErrModelHasActiveVersions
	}

	return uc.repo.Delete(ctx, model.ID)
}
