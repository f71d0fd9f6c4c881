package display

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVersionPageTitle(t *testing.T) {
	assert.Equal(t, "Model A v1 - MLflow Model", VersionPageTitle("Model A", 1))
}

func TestVersionPageTitle_LargeVersion(t *testing.T) {
	assert.Equal(t, "fraud-detector v42 - MLflow Model", VersionPageTitle("fraud-detector", 42))
}

func TestVersionPageTitle_Deterministic(t *testing.T) {
	first := VersionPageTitle("Model A", 1)
	second := VersionPageTitle("Model A", 1)
	assert.Equal(t, first, second)
}

func TestTruncateURL_LongLink(t *testing.T) {
	url := "https://other.mlflow.hosted.instance.com/experiments/18722387/runs/d2c09dbd056c4d9c9289b854f491be10"
	got := TruncateURL(url, RunLinkMaxChars)
	assert.Equal(t, url[:37]+"...", got)
	assert.Equal(t, "https://other.mlflow.hosted.instance....", got)
}

func TestTruncateURL_ShortLinkUnchanged(t *testing.T) {
	url := "https://mlflow.local/runs/abc"
	assert.Equal(t, url, TruncateURL(url, RunLinkMaxChars))
}

func TestTruncateURL_ExactLengthUnchanged(t *testing.T) {
	url := "0123456789012345678901234567890123456"
	assert.Len(t, url, 37)
	assert.Equal(t, url, TruncateURL(url, 37))
}

func TestTruncateURL_CountsRunes(t *testing.T) {
	url := "https://mlflow.example/run/模型模型模型模型模型模型模型模型模型模型模型模型模型模型模型"
	got := TruncateURL(url, 37)
	assert.Equal(t, string([]rune(url)[:37])+"...", got)
}

func TestTruncateURL_NonPositiveMaxUnchanged(t *testing.T) {
	url := "https://mlflow.local/runs/abc"
	assert.Equal(t, url, TruncateURL(url, 0))
	assert.Equal(t, url, TruncateURL(url, -1))
}

func TestRunDisplayName_PrefersRunName(t *testing.T) {
	got := RunDisplayName("nightly-retrain", "d2c09dbd056c4d9c9289b854f491be10", nil)
	assert.Equal(t, "nightly-retrain", got)
}

func TestRunDisplayName_DefaultFallback(t *testing.T) {
	got := RunDisplayName("", "d2c09dbd056c4d9c9289b854f491be10", nil)
	assert.Equal(t, "Run d2c09dbd056c4d9c9289b854f491be10", got)
}

func TestRunDisplayName_CustomNamer(t *testing.T) {
	namer := func(runID string) string { return "run:" + runID[:8] }
	got := RunDisplayName("", "d2c09dbd056c4d9c9289b854f491be10", namer)
	assert.Equal(t, "run:d2c09dbd", got)
}

func TestRunDisplayName_EmptyRunID(t *testing.T) {
	assert.Equal(t, "", RunDisplayName("", "", nil))
}

func TestRunPageRoute(t *testing.T) {
	got := RunPageRoute("18722387", "d2c09dbd056c4d9c9289b854f491be10")
	assert.Equal(t, "/experiments/18722387/runs/d2c09dbd056c4d9c9289b854f491be10", got)
}

func TestModelVersionPageRoute(t *testing.T) {
	assert.Equal(t, "/models/Model A/versions/1", ModelVersionPageRoute("Model A", 1))
}
