package display

import (
	"fmt"
	"strconv"
)

// RunLinkMaxChars caps how many characters of a direct run link are
// shown before the ellipsis.
const RunLinkMaxChars = 37

const ellipsis = "..."

// VersionPageTitle builds the browser title for a model version page:
// "<model> v<version> - MLflow Model".
func VersionPageTitle(modelName string, version int) string {
	return fmt.Sprintf("%s v%d - MLflow Model", modelName, version)
}

// TruncateURL returns the first maxChars characters of url followed by
// "..." when url is longer than maxChars, and url unchanged otherwise.
// Counting is per rune so multi-byte characters are never split.
func TruncateURL(url string, maxChars int) string {
	if maxChars <= 0 {
		return url
	}
	runes := []rune(url)
	if len(runes) <= maxChars {
		return url
	}
	return string(runes[:maxChars]) + ellipsis
}

// RunNamer produces a display name for a run that has no name of its
// own. The mapping must be deterministic for a given run ID.
type RunNamer func(runID string) string

// DefaultRunNamer matches the tracking UI fallback: "Run <id>".
func DefaultRunNamer(runID string) string {
	return "Run " + runID
}

// RunDisplayName prefers the run's own name and falls back to namer
// applied to the run ID. A nil namer means DefaultRunNamer.
func RunDisplayName(runName, runID string, namer RunNamer) string {
	if runName != "" {
		return runName
	}
	if runID == "" {
		return ""
	}
	if namer == nil {
		namer = DefaultRunNamer
	}
	return namer(runID)
}

// RunPageRoute is the tracking UI path for a run.
func RunPageRoute(experimentID, runID string) string {
	return "/experiments/" + experimentID + "/runs/" + runID
}

// ModelVersionPageRoute is the registry UI path for a model version.
func ModelVersionPageRoute(modelName string, version int) string {
	return "/models/" + modelName + "/versions/" + strconv.Itoa(version)
}
