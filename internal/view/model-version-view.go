package view

import (
	"time"

	"mlflow-registry/internal/display"
	"mlflow-registry/internal/domain"
)

// Options tweaks how a version view is built.
type Options struct {
	// RunNamer overrides the fallback display name for runs without a
	// name of their own. Nil means display.DefaultRunNamer.
	RunNamer display.RunNamer
}

// RunLink is the rendered run reference of a version view. Href stays
// empty when nothing resolvable was found.
type RunLink struct {
	Href string `json:"href,omitempty"`
	Text string `json:"text,omitempty"`
}

// ModelVersionView is the presentation record for a single model
// version: everything a client needs to render the version page
// without re-deriving policy or formatting. Title is returned here and
// applied by the caller; nothing is written to shared state.
type ModelVersionView struct {
	Title               string               `json:"title"`
	ModelName           string               `json:"model_name"`
	Version             int                  `json:"version"`
	Stage               domain.Stage         `json:"stage"`
	StageOptions        []domain.Stage       `json:"stage_options"`
	Status              domain.VersionStatus `json:"status"`
	StatusMessage       string               `json:"status_message,omitempty"`
	CanDelete           bool                 `json:"can_delete"`
	DeleteBlockedReason string               `json:"delete_blocked_reason,omitempty"`
	Run                 RunLink              `json:"run"`
	Source              string               `json:"source,omitempty"`
	Description         string               `json:"description,omitempty"`
	UserID              string               `json:"user_id,omitempty"`
	CreatedAt           time.Time            `json:"created_at"`
	UpdatedAt           time.Time            `json:"updated_at"`
}

// Build assembles the view for a version. run may be nil when the
// version has no run or the tracking server could not resolve it.
func Build(version *domain.ModelVersion, run *domain.RunInfo, opts Options) *ModelVersionView {
	v := &ModelVersionView{
		Title:         display.VersionPageTitle(version.ModelName, version.Version),
		ModelName:     version.ModelName,
		Version:       version.Version,
		Stage:         version.CurrentStage,
		StageOptions:  domain.StageTransitionOptions(version.CurrentStage),
		Status:        version.Status,
		StatusMessage: version.StatusMessage,
		Source:        version.Source,
		Description:   version.Description,
		UserID:        version.UserID,
		CreatedAt:     version.CreatedAt,
		UpdatedAt:     version.UpdatedAt,
	}

	v.CanDelete = domain.CanDeleteVersion(version.CurrentStage)
	if !v.CanDelete {
		v.DeleteBlockedReason = domain.ErrVersionInActiveStage.Error()
	}

	v.Run = resolveRunLink(version, run, opts.RunNamer)
	return v
}

// resolveRunLink prefers a direct run link (shown truncated), then a
// run resolved from the tracking server, then a bare fallback name when
// only the run ID is known.
func resolveRunLink(version *domain.ModelVersion, run *domain.RunInfo, namer display.RunNamer) RunLink {
	if version.RunLink != "" {
		return RunLink{
			Href: version.RunLink,
			Text: display.TruncateURL(version.RunLink, display.RunLinkMaxChars),
		}
	}
	if run != nil {
		return RunLink{
			Href: display.RunPageRoute(run.ExperimentID, run.RunID),
			Text: display.RunDisplayName(run.RunName, run.RunID, namer),
		}
	}
	if version.RunID != "" {
		return RunLink{Text: display.RunDisplayName("", version.RunID, namer)}
	}
	return RunLink{}
}
