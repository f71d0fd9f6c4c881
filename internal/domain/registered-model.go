package domain

import (
	"time"

	"github.com/google/uuid"
)

type RegisteredModel struct {
	ID          uuid.UUID         `json:"id"`
	CreatedAt   time.Time         `json:"created_at"`
	UpdatedAt   time.Time         `json:"updated_at"`
	Name        string            `json:"name"`
	Description string            `json:"description"`
	Owner       string            `json:"owner"`
	Tags        map[string]string `json:"tags"`

	// Computed fields (populated by repository)
	VersionCount  int           `json:"version_count"`
	LatestVersion *ModelVersion `json:"latest_version,omitempty"`
}
