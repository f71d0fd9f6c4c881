package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"mlflow-registry/internal/domain"
	"mlflow-registry/internal/testutil"
)

func TestModelVersionUseCase_Create(t *testing.T) {
	repo := new(testutil.MockModelVersionRepo)
	modelRepo := new(testutil.MockRegisteredModelRepo)
	uc := NewModelVersionUseCase(repo, modelRepo, nil, nil)

	modelID := uuid.New()
	modelRepo.On("GetByName", mock.Anything, "fraud-detector").Return(&domain.RegisteredModel{ID: modelID, Name: "fraud-detector"}, nil)

	created := &domain.ModelVersion{
		ID:                uuid.New(),
		RegisteredModelID: modelID,
		ModelName:         "fraud-detector",
		Version:           1,
		CurrentStage:      domain.StageNone,
		Status:            domain.VersionStatusPending,
	}
	repo.On("Create", mock.Anything, mock.AnythingOfType("*domain.ModelVersion")).Return(nil)
	repo.On("GetByModelAndVersion", mock.Anything, modelID, mock.AnythingOfType("int")).Return(created, nil)

	version, err := uc.Create(context.Background(), "fraud-detector", "first cut", "alice", "s3://bucket/model", "d2c09dbd", "", "", nil)
	require.NoError(t, err)
	assert.Equal(t, 1, version.Version)
	assert.Equal(t, domain.StageNone, version.CurrentStage)
	assert.Equal(t, domain.VersionStatusPending, version.Status)
	repo.AssertExpectations(t)
}

func TestModelVersionUseCase_Create_ModelNotFound(t *testing.T) {
	repo := new(testutil.MockModelVersionRepo)
	modelRepo := new(testutil.MockRegisteredModelRepo)
	uc := NewModelVersionUseCase(repo, modelRepo, nil, nil)

	modelRepo.On("GetByName", mock.Anything, "ghost").Return(nil, domain.ErrModelNotFound)

	_, err := uc.Create(context.Background(), "ghost", "", "", "", "", "", "", nil)
	assert.ErrorIs(t, err, domain.ErrModelNotFound)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestModelVersionUseCase_Get(t *testing.T) {
	repo := new(testutil.MockModelVersionRepo)
	modelRepo := new(testutil.MockRegisteredModelRepo)
	uc := NewModelVersionUseCase(repo, modelRepo, nil, nil)

	modelID := uuid.New()
	modelRepo.On("GetByName", mock.Anything, "m1").Return(&domain.RegisteredModel{ID: modelID, Name: "m1"}, nil)
	repo.On("GetByModelAndVersion", mock.Anything, modelID, 3).Return(&domain.ModelVersion{Version: 3, ModelName: "m1"}, nil)

	version, err := uc.Get(context.Background(), "m1", 3)
	assert.NoError(t, err)
	assert.Equal(t, 3, version.Version)
}

func TestModelVersionUseCase_Get_VersionNotFound(t *testing.T) {
	repo := new(testutil.MockModelVersionRepo)
	modelRepo := new(testutil.MockRegisteredModelRepo)
	uc := NewModelVersionUseCase(repo, modelRepo, nil, nil)

	modelID := uuid.New()
	modelRepo.On("GetByName", mock.Anything, "m1").Return(&domain.RegisteredModel{ID: modelID, Name: "m1"}, nil)
	repo.On("GetByModelAndVersion", mock.Anything, modelID, 99).Return(nil, domain.ErrVersionNotFound)

	_, err := uc.Get(context.Background(), "m1", 99)
	assert.ErrorIs(t, err, domain.ErrVersionNotFound)
}

func TestModelVersionUseCase_List_DefaultLimitAndModelScope(t *testing.T) {
	repo := new(testutil.MockModelVersionRepo)
	modelRepo := new(testutil.MockRegisteredModelRepo)
	uc := NewModelVersionUseCase(repo, modelRepo, nil, nil)

	modelID := uuid.New()
	modelRepo.On("GetByName", mock.Anything, "m1").Return(&domain.RegisteredModel{ID: modelID, Name: "m1"}, nil)

	expectedFilter := domain.VersionListFilter{RegisteredModelID: modelID, Limit: 20}
	repo.On("List", mock.Anything, expectedFilter).Return([]*domain.ModelVersion{}, 0, nil)

	_, _, err := uc.List(context.Background(), "m1", domain.VersionListFilter{})
	assert.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestModelVersionUseCase_Update_Status(t *testing.T) {
	repo := new(testutil.MockModelVersionRepo)
	modelRepo := new(testutil.MockRegisteredModelRepo)
	uc := NewModelVersionUseCase(repo, modelRepo, nil, nil)

	modelID := uuid.New()
	existing := &domain.ModelVersion{ID: uuid.New(), RegisteredModelID: modelID, Version: 1, Status: domain.VersionStatusPending}

	modelRepo.On("GetByName", mock.Anything, "m1").Return(&domain.RegisteredModel{ID: modelID, Name: "m1"}, nil)
	repo.On("GetByModelAndVersion", mock.Anything, modelID, 1).Return(existing, nil)
	repo.On("Update", mock.Anything, mock.AnythingOfType("*domain.ModelVersion")).Return(nil)

	updated, err := uc.Update(context.Background(), "m1", 1, map[string]interface{}{"status": "READY"})
	assert.NoError(t, err)
	assert.Equal(t, domain.VersionStatusReady, updated.Status)
}

func TestModelVersionUseCase_TransitionStage(t *testing.T) {
	repo := new(testutil.MockModelVersionRepo)
	modelRepo := new(testutil.MockRegisteredModelRepo)
	uc := NewModelVersionUseCase(repo, modelRepo, nil, nil)

	modelID := uuid.New()
	modelRepo.On("GetByName", mock.Anything, "m1").Return(&domain.RegisteredModel{ID: modelID, Name: "m1"}, nil)

	promoted := &domain.ModelVersion{Version: 2, CurrentStage: domain.StageProduction}
	repo.On("TransitionStage", mock.Anything, modelID, 2, domain.StageProduction, true).Return(promoted, nil)

	version, err := uc.TransitionStage(context.Background(), "m1", 2, "production", true)
	require.NoError(t, err)
	assert.Equal(t, domain.StageProduction, version.CurrentStage)
	repo.AssertExpectations(t)
}

func TestModelVersionUseCase_TransitionStage_InvalidStage(t *testing.T) {
	repo := new(testutil.MockModelVersionRepo)
	modelRepo := new(testutil.MockRegisteredModelRepo)
	uc := NewModelVersionUseCase(repo, modelRepo, nil, nil)

	modelRepo.On("GetByName", mock.Anything, "m1").Return(&domain.RegisteredModel{ID: uuid.New(), Name: "m1"}, nil)

	_, err := uc.TransitionStage(context.Background(), "m1", 2, "Shadow", false)
	assert.ErrorIs(t, err, domain.ErrInvalidStage)
	repo.AssertNotCalled(t, "TransitionStage", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestModelVersionUseCase_TransitionStage_ArchiveRequiresActiveTarget(t *testing.T) {
	repo := new(testutil.MockModelVersionRepo)
	modelRepo := new(testutil.MockRegisteredModelRepo)
	uc := NewModelVersionUseCase(repo, modelRepo, nil, nil)

	modelRepo.On("GetByName", mock.Anything, "m1").Return(&domain.RegisteredModel{ID: uuid.New(), Name: "m1"}, nil)

	_, err := uc.TransitionStage(context.Background(), "m1", 2, "Archived", true)
	assert.ErrorIs(t, err, domain.ErrArchiveInactiveTarget)
}

func TestModelVersionUseCase_Delete_ActiveStage(t *testing.T) {
	repo := new(testutil.MockModelVersionRepo)
	modelRepo := new(testutil.MockRegisteredModelRepo)
	uc := NewModelVersionUseCase(repo, modelRepo, nil, nil)

	modelID := uuid.New()
	modelRepo.On("GetByName", mock.Anything, "m1").Return(&domain.RegisteredModel{ID: modelID, Name: "m1"}, nil)
	repo.On("GetByModelAndVersion", mock.Anything, modelID, 1).Return(&domain.ModelVersion{ID: uuid.New(), Version: 1, CurrentStage: domain.StageStaging}, nil)

	err := uc.Delete(context.Background(), "m1", 1)
	assert.ErrorIs(t, err, domain.ErrVersionInActiveStage)
	repo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestModelVersionUseCase_Delete_Success(t *testing.T) {
	repo := new(testutil.MockModelVersionRepo)
	modelRepo := new(testutil.MockRegisteredModelRepo)
	uc := NewModelVersionUseCase(repo, modelRepo, nil, nil)

	modelID := uuid.New()
	versionID := uuid.New()
	modelRepo.On("GetByName", mock.Anything, "m1").Return(&domain.RegisteredModel{ID: modelID, Name: "m1"}, nil)
	repo.On("GetByModelAndVersion", mock.Anything, modelID, 1).Return(&domain.ModelVersion{ID: versionID, Version: 1, CurrentStage: domain.StageArchived}, nil)
	repo.On("Delete", mock.Anything, versionID).Return(nil)

	err := uc.Delete(context.Background(), "m1", 1)
	assert.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestModelVersionUseCase_View_RunLinkPreferred(t *testing.T) {
	repo := new(testutil.MockModelVersionRepo)
	modelRepo := new(testutil.MockRegisteredModelRepo)
	runs := new(testutil.MockRunProvider)
	uc := NewModelVersionUseCase(repo, modelRepo, runs, nil)

	modelID := uuid.New()
	runLink := "https://other.mlflow.hosted.instance.com/experiments/18722387/runs/d2c09dbd056c4d9c9289b854f491be10"
	modelRepo.On("GetByName", mock.Anything, "Model A").Return(&domain.RegisteredModel{ID: modelID, Name: "Model A"}, nil)
	repo.On("GetByModelAndVersion", mock.Anything, modelID, 1).Return(&domain.ModelVersion{
		RegisteredModelID: modelID,
		ModelName:         "Model A",
		Version:           1,
		CurrentStage:      domain.StageNone,
		RunID:             "d2c09dbd056c4d9c9289b854f491be10",
		RunLink:           runLink,
	}, nil)

	v, err := uc.View(context.Background(), "Model A", 1)
	require.NoError(t, err)
	assert.Equal(t, "Model A v1 - MLflow Model", v.Title)
	assert.Equal(t, runLink, v.Run.Href)
	assert.Equal(t, "https://other.mlflow.hosted.instance....", v.Run.Text)
	assert.True(t, v.CanDelete)
	runs.AssertNotCalled(t, "GetRun", mock.Anything, mock.Anything)
}

func TestModelVersionUseCase_View_TrackingRunResolved(t *testing.T) {
	repo := new(testutil.MockModelVersionRepo)
	modelRepo := new(testutil.MockRegisteredModelRepo)
	runs := new(testutil.MockRunProvider)
	uc := NewModelVersionUseCase(repo, modelRepo, runs, nil)

	modelID := uuid.New()
	modelRepo.On("GetByName", mock.Anything, "m1").Return(&domain.RegisteredModel{ID: modelID, Name: "m1"}, nil)
	repo.On("GetByModelAndVersion", mock.Anything, modelID, 2).Return(&domain.ModelVersion{
		RegisteredModelID: modelID,
		ModelName:         "m1",
		Version:           2,
		CurrentStage:      domain.StageProduction,
		RunID:             "abc123",
	}, nil)
	runs.On("GetRun", mock.Anything, "abc123").Return(&domain.RunInfo{RunID: "abc123", ExperimentID: "7", RunName: "tuning-sweep"}, nil)

	v, err := uc.View(context.Background(), "m1", 2)
	require.NoError(t, err)
	assert.Equal(t, "/experiments/7/runs/abc123", v.Run.Href)
	assert.Equal(t, "tuning-sweep", v.Run.Text)
	assert.False(t, v.CanDelete)
	assert.Equal(t, domain.ErrVersionInActiveStage.Error(), v.DeleteBlockedReason)
}

func TestModelVersionUseCase_View_TrackingFailureDegrades(t *testing.T) {
	repo := new(testutil.MockModelVersionRepo)
	modelRepo := new(testutil.MockRegisteredModelRepo)
	runs := new(testutil.MockRunProvider)
	uc := NewModelVersionUseCase(repo, modelRepo, runs, nil)

	modelID := uuid.New()
	modelRepo.On("GetByName", mock.Anything, "m1").Return(&domain.RegisteredModel{ID: modelID, Name: "m1"}, nil)
	repo.On("GetByModelAndVersion", mock.Anything, modelID, 1).Return(&domain.ModelVersion{
		RegisteredModelID: modelID,
		ModelName:         "m1",
		Version:           1,
		CurrentStage:      domain.StageNone,
		RunID:             "abc123",
	}, nil)
	runs.On("GetRun", mock.Anything, "abc123").Return(nil, errors.New("tracking server unreachable"))

	v, err := uc.View(context.Background(), "m1", 1)
	require.NoError(t, err)
	assert.Empty(t, v.Run.Href)
	assert.Equal(t, "Run abc123", v.Run.Text)
}

func TestModelVersionUseCase_View_NoTrackingConfigured(t *testing.T) {
	repo := new(testutil.MockModelVersionRepo)
	modelRepo := new(testutil.MockRegisteredModelRepo)
	uc := NewModelVersionUseCase(repo, modelRepo, nil, nil)

	modelID := uuid.New()
	modelRepo.On("GetByName", mock.Anything, "m1").Return(&domain.RegisteredModel{ID: modelID, Name: "m1"}, nil)
	repo.On("GetByModelAndVersion", mock.Anything, modelID, 1).Return(&domain.ModelVersion{
		RegisteredModelID: modelID,
		ModelName:         "m1",
		Version:           1,
		CurrentStage:      domain.StageNone,
		RunID:             "abc123",
	}, nil)

	v, err := uc.View(context.Background(), "m1", 1)
	require.NoError(t, err)
	assert.Equal(t, "Run abc123", v.Run.Text)
}

func TestModelVersionUseCase_View_CustomRunNamer(t *testing.T) {
	repo := new(testutil.MockModelVersionRepo)
	modelRepo := new(testutil.MockRegisteredModelRepo)
	namer := func(runID string) string { return "job-" + runID }
	uc := NewModelVersionUseCase(repo, modelRepo, nil, namer)

	modelID := uuid.New()
	modelRepo.On("GetByName", mock.Anything, "m1").Return(&domain.RegisteredModel{ID: modelID, Name: "m1"}, nil)
	repo.On("GetByModelAndVersion", mock.Anything, modelID, 1).Return(&domain.ModelVersion{
		RegisteredModelID: modelID,
		ModelName:         "m1",
		Version:           1,
		CurrentStage:      domain.StageNone,
		RunID:             "abc123",
	}, nil)

	v, err := uc.View(context.Background(), "m1", 1)
	require.NoError(t, err)
	assert.Equal(t, "job-abc123", v.Run.Text)
}
