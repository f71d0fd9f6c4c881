package domain

import "errors"

var (
	ErrModelNotFound          = errors.New("registered model not found")
	ErrModelNameConflict      = errors.New("model with this name already exists")
	ErrVersionNotFound        = errors.New("model version not found")
	ErrVersionConflict        = errors.New("version number already exists for this model")
	ErrRunNotFound            = errors.New("run not found on tracking server")
	ErrInvalidModelName       = errors.New("model name is required")
	ErrInvalidVersionNumber   = errors.New("version must be a positive integer")
	ErrInvalidStage           = errors.New("stage must be one of None, Staging, Production, Archived")
	ErrVersionInActiveStage   = errors.New("cannot delete version in an active stage: transition to Archived first")
	ErrModelHasActiveVersions = errors.New("cannot delete model: versions in active stages exist")
	ErrArchiveInactiveTarget  = errors.New("archive_existing_versions requires an active target stage")
)
