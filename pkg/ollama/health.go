package ollama

import (
	"context"
	"fmt"
	"net/http"
)

// HealthStatus reports whether the daemon is reachable and which models
// it is serving.
type HealthStatus struct {
	Available bool
	Error     error
	Models    []Model
}

// CheckHealth probes the daemon. An unreachable daemon is not an error
// for the caller: the relay keeps running on canned responses.
func (c *Client) CheckHealth(ctx context.Context) *HealthStatus {
	url := fmt.Sprintf("%s/api/tags", c.baseURL)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return &HealthStatus{Available: false, Error: err}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &HealthStatus{
			Available: false,
			Error:     fmt.Errorf("cannot connect to Ollama at %s: %w", c.baseURL, err),
		}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return &HealthStatus{
			Available: false,
			Error:     fmt.Errorf("Ollama returned status %d", resp.StatusCode),
		}
	}

	tagsResp, err := c.Tags()
	if err != nil {
		return &HealthStatus{
			Available: true,
			Error:     fmt.Errorf("failed to get model list: %w", err),
			Models:    []Model{},
		}
	}

	return &HealthStatus{
		Available: true,
		Models:    tagsResp.Models,
	}
}

// HasModel reports whether the daemon serves the named model.
func (c *Client) HasModel(ctx context.Context, modelName string) (bool, error) {
	tagsResp, err := c.Tags()
	if err != nil {
		return false, fmt.Errorf("failed to check model availability: %w", err)
	}

	for _, model := range tagsResp.Models {
		if model.Name == modelName || model.Model == modelName {
			return true, nil
		}
	}
	return false, nil
}
