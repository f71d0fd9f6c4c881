package domain

import (
	"time"

	"github.com/google/uuid"
)

type VersionStatus string

const (
	VersionStatusPending VersionStatus = "PENDING"
	VersionStatusReady   VersionStatus = "READY"
	VersionStatusFailed  VersionStatus = "FAILED"
)

type ModelVersion struct {
	ID                uuid.UUID         `json:"id"`
	CreatedAt         time.Time         `json:"created_at"`
	UpdatedAt         time.Time         `json:"updated_at"`
	RegisteredModelID uuid.UUID         `json:"registered_model_id"`
	Version           int               `json:"version"`
	Description       string            `json:"description"`
	UserID            string            `json:"user_id"`
	CurrentStage      Stage             `json:"current_stage"`
	Source            string            `json:"source"`
	RunID             string            `json:"run_id"`
	RunLink           string            `json:"run_link"`
	Status            VersionStatus     `json:"status"`
	StatusMessage     string            `json:"status_message"`
	StorageLocation   string            `json:"storage_location"`
	Tags              map[string]string `json:"tags"`

	// Computed fields (populated by repository)
	ModelName string `json:"model_name"`
}
