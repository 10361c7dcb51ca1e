package cmd

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	oerrors "github.com/reactcreative/cli/internal/errors"
	"github.com/reactcreative/cli/internal/manifest"
	"github.com/reactcreative/cli/internal/pkgmanager"
	"github.com/reactcreative/cli/internal/transform"
)

func TestExitCodeFromError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
	}{
		{
			name:     "nil error returns success",
			err:      nil,
			wantCode: ExitSuccess,
		},
		{
			name:     "validation error",
			err:      oerrors.NewValidationError("bad name", "", ""),
			wantCode: ExitValidationError,
		},
		{
			name:     "template defect",
			err:      oerrors.NewTemplateError("no marker", transform.RootUIFile, nil),
			wantCode: ExitTemplateError,
		},
		{
			name:     "wrapped template defect",
			err:      fmt.Errorf("step: %w", manifest.ErrPackageNotInBaseline),
			wantCode: ExitTemplateError,
		},
		{
			name:     "conflict",
			err:      oerrors.NewConflictError("/tmp/x/index.html"),
			wantCode: ExitConflict,
		},
		{
			name:     "not found",
			err:      oerrors.NewNotFoundError("missing", "src/demo/x", ""),
			wantCode: ExitNotFound,
		},
		{
			name:     "package manager failure",
			err:      &pkgmanager.ProcessError{Command: "npm install", ExitCode: 1},
			wantCode: ExitExternalError,
		},
		{
			name:     "cancelled",
			err:      oerrors.Wrap(oerrors.ErrCancelled, "operation cancelled"),
			wantCode: ExitCancelled,
		},
		{
			name:     "explicit exit error",
			err:      &oerrors.ExitError{Err: errors.New("boom"), Code: ExitNotFound},
			wantCode: ExitNotFound,
		},
		{
			name:     "unknown error returns general error",
			err:      errors.New("unknown error"),
			wantCode: ExitGeneralError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantCode, ExitCodeFromError(tt.err))
		})
	}
}

func TestExitCodeName(t *testing.T) {
	assert.Equal(t, "Success", ExitCodeName(ExitSuccess))
	assert.Equal(t, "Template Error", ExitCodeName(ExitTemplateError))
	assert.Equal(t, "Cancelled", ExitCodeName(ExitCancelled))
	assert.Equal(t, "Unknown", ExitCodeName(42))
}
