package dto

import (
	"github.com/google/uuid"
)

type CreateModelVersionRequest struct {
	Description     string            `json:"description"`
	UserID          string            `json:"user_id"`
	Source          string            `json:"source"`
	RunID           string            `json:"run_id"`
	RunLink         string            `json:"run_link"`
	StorageLocation string            `json:"storage_location"`
	Tags            map[string]string `json:"tags"`
}

type UpdateModelVersionRequest struct {
	Description   *string           `json:"description"`
	Status        *string           `json:"status"`
	StatusMessage *string           `json:"status_message"`
	RunLink       *string           `json:"run_link"`
	Tags          map[string]string `json:"tags"`
}

type TransitionStageRequest struct {
	Stage                   string `json:"stage" binding:"required"`
	ArchiveExistingVersions bool   `json:"archive_existing_versions"`
}

type ModelVersionResponse struct {
	ID                uuid.UUID         `json:"id"`
	CreatedAt         string            `json:"created_at"`
	UpdatedAt         string            `json:"updated_at"`
	RegisteredModelID uuid.UUID         `json:"registered_model_id"`
	ModelName         string            `json:"model_name"`
	Version           int               `json:"version"`
	Description       string            `json:"description"`
	UserID            string            `json:"user_id"`
	CurrentStage      string            `json:"current_stage"`
	Source            string            `json:"source"`
	RunID             string            `json:"run_id"`
	RunLink           string            `json:"run_link"`
	Status            string            `json:"status"`
	StatusMessage     string            `json:"status_message"`
	StorageLocation   string            `json:"storage_location"`
	Tags              map[string]string `json:"tags"`
}

type ListModelVersionsResponse struct {
	Items      []ModelVersionResponse `json:"items"`
	Total      int                    `json:"total"`
	PageSize   int                    `json:"page_size"`
	NextOffset int                    `json:"next_offset"`
}

type RunLinkResponse struct {
	Href string `json:"href,omitempty"`
	Text string `json:"text,omitempty"`
}

type ModelVersionViewResponse struct {
	Title               string          `json:"title"`
	ModelName           string          `json:"model_name"`
	Version             int             `json:"version"`
	Stage               string          `json:"stage"`
	StageOptions        []string        `json:"stage_options"`
	Status              string          `json:"status"`
	StatusMessage       string          `json:"status_message,omitempty"`
	CanDelete           bool            `json:"can_delete"`
	DeleteBlockedReason string          `json:"delete_blocked_reason,omitempty"`
	Run                 RunLinkResponse `json:"run"`
	Source              string          `json:"source,omitempty"`
	Description         string          `json:"description,omitempty"`
	UserID              string          `json:"user_id,omitempty"`
	CreatedAt           string          `json:"created_at"`
	UpdatedAt           string          `json:"updated_at"`
}
