package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"mlflow-registry/internal/domain"
	"mlflow-registry/internal/testutil"
)

func TestRegisteredModelUseCase_Create(t *testing.T) {
	repo := new(testutil.MockRegisteredModelRepo)
	versionRepo := new(testutil.MockModelVersionRepo)
	uc := NewRegisteredModelUseCase(repo, versionRepo)

	modelID := uuid.New()
	returnedModel := &domain.RegisteredModel{
		ID:        modelID,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
		Name:      "fraud-detector",
		Owner:     "alice",
		Tags:      map[string]string{},
	}

	repo.On("Create", mock.Anything, mock.AnythingOfType("*domain.RegisteredModel")).Return(nil)
	repo.On("GetByID", mock.Anything, mock.AnythingOfType("uuid.UUID")).Return(returnedModel, nil)

	model, err := uc.Create(context.Background(), "fraud-detector", "desc", "alice", nil)
	assert.NoError(t, err)
	assert.Equal(t, "fraud-detector", model.Name)
	repo.AssertExpectations(t)
}

func TestRegisteredModelUseCase_Create_EmptyName(t *testing.T) {
	repo := new(testutil.MockRegisteredModelRepo)
	uc := NewRegisteredModelUseCase(repo, new(testutil.MockModelVersionRepo))

	_, err := uc.Create(context.Background(), "", "desc", "alice", nil)
	assert.ErrorIs(t, err, domain.ErrInvalidModelName)
}

func TestRegisteredModelUseCase_Create_NameConflict(t *testing.T) {
	repo := new(testutil.MockRegisteredModelRepo)
	uc := NewRegisteredModelUseCase(repo, new(testutil.MockModelVersionRepo))

	repo.On("Create", mock.Anything, mock.AnythingOfType("*domain.RegisteredModel")).Return(domain.ErrModelNameConflict)

	_, err := uc.Create(context.Background(), "dup", "desc", "", nil)
	assert.ErrorIs(t, err, domain.ErrModelNameConflict)
}

func TestRegisteredModelUseCase_Get(t *testing.T) {
	repo := new(testutil.MockRegisteredModelRepo)
	uc := NewRegisteredModelUseCase(repo, new(testutil.MockModelVersionRepo))

	expected := &domain.RegisteredModel{ID: uuid.New(), Name: "m1"}
	repo.On("GetByName", mock.Anything, "m1").Return(expected, nil)

	model, err := uc.Get(context.Background(), "m1")
	assert.NoError(t, err)
	assert.Equal(t, "m1", model.Name)
}

func TestRegisteredModelUseCase_Get_NotFound(t *testing.T) {
	repo := new(testutil.MockRegisteredModelRepo)
	uc := NewRegisteredModelUseCase(repo, new(testutil.MockModelVersionRepo))

	repo.On("GetByName", mock.Anything, "ghost").Return(nil, domain.ErrModelNotFound)

	_, err := uc.Get(context.Background(), "ghost")
	assert.ErrorIs(t, err, domain.ErrModelNotFound)
}

func TestRegisteredModelUseCase_List(t *testing.T) {
	repo := new(testutil.MockRegisteredModelRepo)
	uc := NewRegisteredModelUseCase(repo, new(testutil.MockModelVersionRepo))

	filter := domain.ListFilter{Limit: 10}
	models := []*domain.RegisteredModel{{ID: uuid.New(), Name: "m1"}}

	repo.On("List", mock.Anything, filter).Return(models, 1, nil)

	result, total, err := uc.List(context.Background(), filter)
	assert.NoError(t, err)
	assert.Equal(t, 1, total)
	assert.Len(t, result, 1)
}

func TestRegisteredModelUseCase_List_DefaultLimit(t *testing.T) {
	repo := new(testutil.MockRegisteredModelRepo)
	uc := NewRegisteredModelUseCase(repo, new(testutil.MockModelVersionRepo))

	expectedFilter := domain.ListFilter{Limit: 20}
	repo.On("List", mock.Anything, expectedFilter).Return([]*domain.RegisteredModel{}, 0, nil)

	_, _, err := uc.List(context.Background(), domain.ListFilter{})
	assert.NoError(t, err)
}

func TestRegisteredModelUseCase_List_MaxLimit(t *testing.T) {
	repo := new(testutil.MockRegisteredModelRepo)
	uc := NewRegisteredModelUseCase(repo, new(testutil.MockModelVersionRepo))

	expectedFilter := domain.ListFilter{Limit: 100}
	repo.On("List", mock.Anything, expectedFilter).Return([]*domain.RegisteredModel{}, 0, nil)

	_, _, err := uc.List(context.Background(), domain.ListFilter{Limit: 500})
	assert.NoError(t, err)
}

func TestRegisteredModelUseCase_Update(t *testing.T) {
	repo := new(testutil.MockRegisteredModelRepo)
	uc := NewRegisteredModelUseCase(repo, new(testutil.MockModelVersionRepo))

	id := uuid.New()
	existing := &domain.RegisteredModel{ID: id, Name: "m1", Tags: map[string]string{}}

	repo.On("GetByName", mock.Anything, "m1").Return(existing, nil)
	repo.On("Update", mock.Anything, mock.AnythingOfType("*domain.RegisteredModel")).Return(nil)
	repo.On("GetByID", mock.Anything, id).Return(existing, nil)

	updated, err := uc.Update(context.Background(), "m1", map[string]interface{}{"description": "new desc"})
	assert.NoError(t, err)
	assert.Equal(t, "new desc", updated.Description)
}

func TestRegisteredModelUseCase_Delete_ActiveVersions(t *testing.T) {
	repo := new(testutil.MockRegisteredModelRepo)
	versionRepo := new(testutil.MockModelVersionRepo)
	uc := NewRegisteredModelUseCase(repo, versionRepo)

	id := uuid.New()
	repo.On("GetByName", mock.Anything, "m1").Return(&domain.RegisteredModel{ID: id, Name: "m1"}, nil)
	versionRepo.On("ListByModel", mock.Anything, id).Return([]*domain.ModelVersion{
		{Version: 1, CurrentStage: domain.StageArchived},
		{Version: 2, CurrentStage: domain.StageProduction},
	}, nil)

	err := uc.Delete(context.Background(), "m1")
	assert.ErrorIs(t, err, domain.ErrModelHasActiveVersions)
	repo.AssertNotCalled(t, "Delete", mock.Anything, id)
}

func TestRegisteredModelUseCase_Delete_Success(t *testing.T) {
	repo := new(testutil.MockRegisteredModelRepo)
	versionRepo := new(testutil.MockModelVersionRepo)
	uc := NewRegisteredModelUseCase(repo, versionRepo)

	id := uuid.New()
	repo.On("GetByName", mock.Anything, "m1").Return(&domain.RegisteredModel{ID: id, Name: "m1"}, nil)
	versionRepo.On("ListByModel", mock.Anything, id).Return([]*domain.ModelVersion{
		{Version: 1, CurrentStage: domain.StageNone},
		{Version: 2, CurrentStage: domain.StageArchived},
	}, nil)
	repo.On("Delete", mock.Anything, id).Return(nil)

	err := uc.Delete(context.Background(), "m1")
	assert.NoError(t, err)
	repo.AssertExpectations(t)
}
