package summary

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned when no summary image has been generated yet.
var ErrNotFound = errors.New("summary image not found")

// GenerationError reports a failed artifact regeneration. The refresh that
// triggered it has already committed.
type GenerationError struct {
	// Stage is the step that failed (load, render, store).
	Stage string
	Err   error
}

func (e *GenerationError) Error() string {
	return fmt.Sprintf("summary generation failed at %s: %v", e.Stage, e.Err)
}

func (e *GenerationError) Unwrap() error {
	return e.Err
}
