package api

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// HealthPath is the companion service's status resource.
const HealthPath = "/api/health"

var validate = validator.New()

// HealthReport is the validated /api/health payload. Status is trimmed
// before validation, so a blank status is rejected.
type HealthReport struct {
	Status  string `json:"status" validate:"required"`
	Version string `json:"version,omitempty"`
}

// HealthCheckFailure is the only error Health returns. Network errors,
// non-2xx responses and malformed bodies are not told apart.
type HealthCheckFailure struct {
	Cause error
}

func (e *HealthCheckFailure) Error() string {
	if e.Cause == nil {
		return "health check failed"
	}
	return "health check failed: " + e.Cause.Error()
}

func (e *HealthCheckFailure) Unwrap() error {
	return e.Cause
}

// Health calls /api/health and returns the decoded status payload.
func (c *Client) Health(ctx context.Context) (*HealthReport, error) {
	data, err := c.get(ctx, HealthPath)
	if err != nil {
		return nil, &HealthCheckFailure{Cause: err}
	}

	report, err := parseHealth(data)
	if err != nil {
		return nil, &HealthCheckFailure{Cause: err}
	}
	return report, nil
}

func parseHealth(data []byte) (*HealthReport, error) {
	var report HealthReport
	if err := json.Unmarshal(data, &report); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	report.Status = strings.TrimSpace(report.Status)
	if err := validate.Struct(report); err != nil {
		return nil, fmt.Errorf("invalid response: %w", err)
	}
	return &report, nil
}
