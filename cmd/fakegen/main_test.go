package main

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"fakegen/internal/export"
	"fakegen/internal/generate"
)

func TestExitCodeClassification(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"Validation", generate.ErrInvalidCount, exitValidation},
		{"WrappedValidation", fmt.Errorf("parsing flags: %w", generate.ErrInvalidCount), exitValidation},
		{"Storage", &export.StorageError{Path: "out", Err: errors.New("permission denied")}, exitStorage},
		{"Generation", &generate.GenerationError{Err: generate.ErrPoolExhausted}, exitUnexpected},
		{"Export", &export.ExportError{Format: "json", Err: errors.New("boom")}, exitUnexpected},
		{"Unknown", errors.New("something else"), exitUnexpected},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, exitCode(tt.err))
		})
	}
}
