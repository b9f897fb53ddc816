package services

import (
	"errors"
	"fmt"

	"bpo-website/internal/cms"
	"bpo-website/internal/repository"
)

// ErrNotConfigured means the sink a request needs was never configured.
var ErrNotConfigured = errors.New("service not configured")

type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string { return "Validation error" }

// UpstreamError reports which downstream step of a submission failed.
type UpstreamError struct {
	Step string
	Err  error
}

func (e *UpstreamError) Error() string { return fmt.Sprintf("%s failed: %v", e.Step, e.Err) }

func (e *UpstreamError) Unwrap() error { return e.Err }

type UnauthorizedError struct{ Message string }

func (e *UnauthorizedError) Error() string { return e.Message }

// notConfigured folds the per-package sentinels into ErrNotConfigured.
func notConfigured(err error) error {
	if errors.Is(err, cms.ErrNotConfigured) || errors.Is(err, repository.ErrNotConfigured) {
		return fmt.Errorf("%w: %w", ErrNotConfigured, err)
	}
	return err
}
