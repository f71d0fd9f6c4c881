package dto

import (
	"github.com/google/uuid"
)

type CreateRegisteredModelRequest struct {
	Name        string            `json:"name" binding:"required,max=100"`
	Description string            `json:"description"`
	Owner       string            `json:"owner"`
	Tags        map[string]string `json:"tags"`
}

type UpdateRegisteredModelRequest struct {
	Description *string           `json:"description"`
	Owner       *string           `json:"owner"`
	Tags        map[string]string `json:"tags"`
}

type RegisteredModelResponse struct {
	ID            uuid.UUID             `json:"id"`
	CreatedAt     string                `json:"created_at"`
	UpdatedAt     string                `json:"updated_at"`
	Name          string                `json:"name"`
	Description   string                `json:"description"`
	Owner         string                `json:"owner"`
	Tags          map[string]string     `json:"tags"`
	VersionCount  int                   `json:"version_count"`
	LatestVersion *ModelVersionResponse `json:"latest_version,omitempty"`
}

type ListRegisteredModelsResponse struct {
	Items      []RegisteredModelResponse `json:"items"`
	Total      int                       `json:"total"`
	PageSize   int                       `json:"page_size"`
	NextOffset int                       `json:"next_offset"`
}
