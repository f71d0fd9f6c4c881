package tracking

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"mlflow-registry/internal/config"
	"mlflow-registry/internal/domain"
)

// Client talks to an MLflow tracking server over its REST API. It only
// reads; the registry never writes runs.
type Client struct {
	baseURL string
	client  *http.Client
}

func NewClient(cfg *config.TrackingConfig) *Client {
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 10 * time.Second
	}

	return &Client{
		baseURL: strings.TrimRight(cfg.URL, "/"),
		client: &http.Client{
			Timeout: timeout,
		},
	}
}

// IsAvailable probes the tracking server health endpoint.
func (c *Client) IsAvailable() bool {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	req, _ := http.NewRequestWithContext(ctx, "GET", c.baseURL+"/health", nil)
	resp, err := c.client.Do(req)
	if err != nil {
		return false
	}
	defer resp.Body.Close()
	return resp.StatusCode == http.StatusOK
}

// Tracking API response structures. Older servers fill run_uuid, newer
// ones run_id.
type getRunResponse struct {
	Run struct {
		Info struct {
			RunID        string `json:"run_id"`
			RunUUID      string `json:"run_uuid"`
			ExperimentID string `json:"experiment_id"`
			RunName      string `json:"run_name"`
			Status       string `json:"status"`
			StartTime    int64  `json:"start_time"`
			EndTime      int64  `json:"end_time"`
		} `json:"info"`
	} `json:"run"`
}

func (c *Client) GetRun(ctx context.Context, runID string) (*domain.RunInfo, error) {
	params := url.Values{}
	params.Set("run_id", runID)

	reqURL := fmt.Sprintf("%s/api/2.0/mlflow/runs/get?%s", c.baseURL, params.Encode())
	req, err := http.NewRequestWithContext(ctx, "GET", reqURL, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("get run: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, domain.ErrRunNotFound
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("get run: tracking server returned %d", resp.StatusCode)
	}

	var payload getRunResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("decode run: %w", err)
	}

	info := payload.Run.Info
	id := info.RunID
	if id == "" {
		id = info.RunUUID
	}

	return &domain.RunInfo{
		RunID:        id,
		ExperimentID: info.ExperimentID,
		RunName:      info.RunName,
		Status:       domain.RunStatus(info.Status),
		StartTime:    info.StartTime,
		EndTime:      info.EndTime,
	}, nil
}
