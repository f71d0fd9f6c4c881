package domain

import "strings"

// Stage is the lifecycle stage of a model version. The canonical set is
// closed; write paths go through ParseStage so nothing else reaches
// storage.
type Stage string

const (
	StageNone       Stage = "None"
	StageStaging    Stage = "Staging"
	StageProduction Stage = "Production"
	StageArchived   Stage = "Archived"
)

// AllStages in menu order.
var AllStages = []Stage{StageNone, StageStaging, StageProduction, StageArchived}

// ActiveStages are the stages considered to be serving. Membership is
// exact-match on the canonical strings.
var ActiveStages = []Stage{StageStaging, StageProduction}

// ParseStage canonicalizes a stage string case-insensitively and
// rejects values outside the canonical set.
func ParseStage(s string) (Stage, error) {
	normalized := strings.ToLower(strings.TrimSpace(s))
	for _, stage := range AllStages {
		if normalized == strings.ToLower(string(stage)) {
			return stage, nil
		}
	}
	return "", ErrInvalidStage
}

func (s Stage) IsActive() bool {
	for _, active := range ActiveStages {
		if s == active {
			return true
		}
	}
	return false
}

// CanDeleteVersion reports whether a version in the given stage may be
// deleted. Only exact membership in ActiveStages blocks deletion; any
// other value, including ones that never passed ParseStage, is
// deletable.
func CanDeleteVersion(stage Stage) bool {
	return !stage.IsActive()
}

// CanDeleteModel reports whether a registered model may be deleted:
// false while any of its versions sits in an active stage.
func CanDeleteModel(versions []*ModelVersion) bool {
	for _, v := range versions {
		if v.CurrentStage.IsActive() {
			return false
		}
	}
	return true
}

// StageTransitionOptions lists the stages a version may move to: every
// canonical stage except the current one.
func StageTransitionOptions(current Stage) []Stage {
	options := make([]Stage, 0, len(AllStages)-1)
	for _, stage := range AllStages {
		if stage != current {
			options = append(options, stage)
		}
	}
	return options
}
