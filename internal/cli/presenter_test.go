package cli

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	apperrors "github.com/agbru/bigradix/internal/errors"
)

func TestHandleError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		err          error
		wantExitCode int
		wantContains string
	}{
		{
			name:         "nil error is success",
			err:          nil,
			wantExitCode: apperrors.ExitSuccess,
			wantContains: "",
		},
		{
			name:         "mismatch error",
			err:          apperrors.MismatchError{CoreResult: "12", OracleResult: "13"},
			wantExitCode: apperrors.ExitErrorMismatch,
			wantContains: "Mismatch",
		},
		{
			name:         "validation error",
			err:          apperrors.ValidationError{Field: "base", Message: "must have magnitude at least 2"},
			wantExitCode: apperrors.ExitErrorConfig,
			wantContains: "Invalid base",
		},
		{
			name:         "config error",
			err:          apperrors.NewConfigError("unknown flag %q", "--bogus"),
			wantExitCode: apperrors.ExitErrorConfig,
			wantContains: "Configuration error",
		},
		{
			name:         "timeout error",
			err:          apperrors.TimeoutError{Operation: "compute", Limit: 30 * time.Second},
			wantExitCode: apperrors.ExitErrorTimeout,
			wantContains: "Timed out",
		},
		{
			name:         "bare context cancellation",
			err:          context.Canceled,
			wantExitCode: apperrors.ExitErrorCanceled,
			wantContains: "Canceled",
		},
		{
			name:         "wrapped context deadline without TimeoutError is canceled, not timed out",
			err:          apperrors.WrapError(context.DeadlineExceeded, "compute interrupted"),
			wantExitCode: apperrors.ExitErrorCanceled,
			wantContains: "Canceled",
		},
		{
			name:         "generic error",
			err:          errorString("disk full"),
			wantExitCode: apperrors.ExitErrorGeneric,
			wantContains: "Error after",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			var out bytes.Buffer
			got := HandleError(tt.err, 42*time.Millisecond, &out)
			if got != tt.wantExitCode {
				t.Errorf("exit code = %d, want %d (output=%q)", got, tt.wantExitCode, out.String())
			}
			if tt.wantContains != "" && !strings.Contains(stripANSI(out.String()), tt.wantContains) {
				t.Errorf("output = %q, want substring %q", out.String(), tt.wantContains)
			}
		})
	}
}

type errorString string

func (e errorString) Error() string { return string(e) }

// stripANSI removes the color escape codes HandleError writes so tests can
// match on plain substrings regardless of ColorRed/ColorReset's output.
func stripANSI(s string) string {
	var b strings.Builder
	inEscape := false
	for i := 0; i < len(s); i++ {
		c := s[i]
		if inEscape {
			if c == 'm' {
				inEscape = false
			}
			continue
		}
		if c == '\x1b' {
			inEscape = true
			continue
		}
		b.WriteByte(c)
	}
	return b.String()
}
