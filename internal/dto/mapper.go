package dto

import (
	"time"

	"mlflow-registry/internal/domain"
	"mlflow-registry/internal/view"
)

const timeFormat = time.RFC3339

func ToRegisteredModelResponse(m *domain.RegisteredModel) RegisteredModelResponse {
	resp := RegisteredModelResponse{
		ID:           m.ID,
		CreatedAt:    m.CreatedAt.Format(timeFormat),
		UpdatedAt:    m.UpdatedAt.Format(timeFormat),
		Name:         m.Name,
		Description:  m.Description,
		Owner:        m.Owner,
		Tags:         m.Tags,
		VersionCount: m.VersionCount,
	}

	if m.LatestVersion != nil {
		lv := ToModelVersionResponse(m.LatestVersion)
		resp.LatestVersion = &lv
	}

	return resp
}

func ToModelVersionResponse(v *domain.ModelVersion) ModelVersionResponse {
	return ModelVersionResponse{
		ID:                v.ID,
		CreatedAt:         v.CreatedAt.Format(timeFormat),
		UpdatedAt:         v.UpdatedAt.Format(timeFormat),
		RegisteredModelID: v.RegisteredModelID,
		ModelName:         v.ModelName,
		Version:           v.Version,
		Description:       v.Description,
		UserID:            v.UserID,
		CurrentStage:      string(v.CurrentStage),
		Source:            v.Source,
		RunID:             v.RunID,
		RunLink:           v.RunLink,
		Status:            string(v.Status),
		StatusMessage:     v.StatusMessage,
		StorageLocation:   v.StorageLocation,
		Tags:              v.Tags,
	}
}

func ToModelVersionViewResponse(v *view.ModelVersionView) ModelVersionViewResponse {
	options := make([]string, 0, len(v.StageOptions))
	for _, stage := range v.StageOptions {
		options = append(options, string(stage))
	}

	return ModelVersionViewResponse{
		Title:               v.Title,
		ModelName:           v.ModelName,
		Version:             v.Version,
		Stage:               string(v.Stage),
		StageOptions:        options,
		Status:              string(v.Status),
		StatusMessage:       v.StatusMessage,
		CanDelete:           v.CanDelete,
		DeleteBlockedReason: v.DeleteBlockedReason,
		Run:                 RunLinkResponse{Href: v.Run.Href, Text: v.Run.Text},
		Source:              v.Source,
		Description:         v.Description,
		UserID:              v.UserID,
		CreatedAt:           v.CreatedAt.Format(timeFormat),
		UpdatedAt:           v.UpdatedAt.Format(timeFormat),
	}
}
