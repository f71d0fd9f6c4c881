package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"mlflow-registry/internal/dto"
)

const apiPrefix = "/api/v1/registry"

// APIClient talks to a running registry server over its HTTP API.
type APIClient struct {
	httpClient *http.Client
	baseURL    string
}

func NewAPIClient(baseURL string, timeout time.Duration) *APIClient {
	return &APIClient{
		httpClient: &http.Client{
			Timeout: timeout,
		},
		baseURL: strings.TrimRight(baseURL, "/"),
	}
}

func (c *APIClient) do(ctx context.Context, method, path string, body interface{}, out interface{}) error {
	var payload io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		payload = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+apiPrefix+path, payload)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("registry request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		var apiErr struct {
			Error string `json:"error"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&apiErr); err == nil && apiErr.Error != "" {
			return fmt.Errorf("registry: %s", apiErr.Error)
		}
		return fmt.Errorf("registry returned %d", resp.StatusCode)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func (c *APIClient) ListModels(ctx context.Context, search string, limit, offset int) (*dto.ListRegisteredModelsResponse, error) {
	path := fmt.Sprintf("/models?limit=%d&offset=%d", limit, offset)
	if search != "" {
		path += "&search=" + url.QueryEscape(search)
	}

	var out dto.ListRegisteredModelsResponse
	if err := c.do(ctx, http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *APIClient) GetModel(ctx context.Context, name string) (*dto.RegisteredModelResponse, error) {
	var out dto.RegisteredModelResponse
	if err := c.do(ctx, http.MethodGet, "/models/"+url.PathEscape(name), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *APIClient) DeleteModel(ctx context.Context, name string) error {
	return c.do(ctx, http.MethodDelete, "/models/"+url.PathEscape(name), nil, nil)
}

func (c *APIClient) ListVersions(ctx context.Context, model, stage string, limit, offset int) (*dto.ListModelVersionsResponse, error) {
	path := fmt.Sprintf("/models/%s/versions?limit=%d&offset=%d", url.PathEscape(model), limit, offset)
	if stage != "" {
		path += "&stage=" + url.QueryEscape(stage)
	}

	var out dto.ListModelVersionsResponse
	if err := c.do(ctx, http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *APIClient) GetVersion(ctx context.Context, model string, number int) (*dto.ModelVersionResponse, error) {
	var out dto.ModelVersionResponse
	path := fmt.Sprintf("/models/%s/versions/%d", url.PathEscape(model), number)
	if err := c.do(ctx, http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *APIClient) GetVersionView(ctx context.Context, model string, number int) (*dto.ModelVersionViewResponse, error) {
	var out dto.ModelVersionViewResponse
	path := fmt.Sprintf("/models/%s/versions/%d/view", url.PathEscape(model), number)
	if err := c.do(ctx, http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *APIClient) TransitionStage(ctx context.Context, model string, number int, stage string, archiveExisting bool) (*dto.ModelVersionResponse, error) {
	req := dto.TransitionStageRequest{
		Stage:                   stage,
		ArchiveExistingVersions: archiveExisting,
	}

	var out dto.ModelVersionResponse
	path := fmt.Sprintf("/models/%s/versions/%d/stage", url.PathEscape(model), number)
	if err := c.do(ctx, http.MethodPost, path, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *APIClient) DeleteVersion(ctx context.Context, model string, number int) error {
	path := fmt.Sprintf("/models/%s/versions/%d", url.PathEscape(model), number)
	return c.do(ctx, http.MethodDelete, path, nil, nil)
}
