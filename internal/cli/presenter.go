package cli

import (
	"errors"
	"fmt"
	"io"
	"time"

	apperrors "github.com/agbru/bigradix/internal/errors"
	"github.com/agbru/bigradix/internal/format"
	"github.com/agbru/bigradix/internal/validate"
)

// PresentComparisonTable displays the two-core comparison table (binary-core
// vs. naive-core) produced by internal/validate.Run: name, duration, status,
// always exactly two rows.
func PresentComparisonTable(results []validate.CoreResult, out io.Writer) {
	fmt.Fprintf(out, "\n--- Comparison Summary ---\n")

	maxNameLen := 4 // "Core" header length
	maxDurationLen := 8
	for _, res := range results {
		if len(res.Name) > maxNameLen {
			maxNameLen = len(res.Name)
		}
		duration := formatDuration(res.Duration)
		if len(duration) > maxDurationLen {
			maxDurationLen = len(duration)
		}
	}

	fmt.Fprintf(out, "%sCore%s%s   %sDuration%s%s   %sStatus%s\n",
		ColorUnderline(), ColorReset(), padRight("", maxNameLen-4),
		ColorUnderline(), ColorReset(), padRight("", maxDurationLen-8),
		ColorUnderline(), ColorReset())

	for _, res := range results {
		var status string
		if res.Err != nil {
			status = fmt.Sprintf("%s❌ Failure (%v)%s", ColorRed(), res.Err, ColorReset())
		} else {
			status = fmt.Sprintf("%s✅ Success%s", ColorGreen(), ColorReset())
		}
		duration := formatDuration(res.Duration)
		fmt.Fprintf(out, "%s%s%s%s   %s%s%s%s   %s\n",
			ColorBlue(), res.Name, ColorReset(), padRight("", maxNameLen-len(res.Name)),
			ColorYellow(), duration, ColorReset(), padRight("", maxDurationLen-len(duration)),
			status)
	}
}

func formatDuration(d time.Duration) string {
	if d == 0 {
		return "< 1µs"
	}
	return format.FormatExecutionDuration(d)
}

// padRight returns s followed by length spaces (or s unchanged if length is
// not positive), used to align table columns manually since ANSI color
// codes defeat fmt's own width padding.
func padRight(s string, length int) string {
	if length <= 0 {
		return s
	}
	return s + fmt.Sprintf("%*s", length, "")
}

// FormatDuration formats a duration for display using the CLI's standard
// duration formatting.
func FormatDuration(d time.Duration) string {
	return format.FormatExecutionDuration(d)
}

// HandleError prints a diagnostic for a failed computation and returns the
// exit code that best classifies it: a core/oracle disagreement, a
// validation or configuration error, a configured deadline elapsing and a
// context cancellation each get their own dedicated code, everything else
// falls back to a generic failure.
func HandleError(err error, duration time.Duration, out io.Writer) int {
	if err == nil {
		return apperrors.ExitSuccess
	}

	var mismatch apperrors.MismatchError
	var cfgErr apperrors.ConfigError
	var valErr apperrors.ValidationError
	var timeoutErr apperrors.TimeoutError
	switch {
	case errors.As(err, &mismatch):
		fmt.Fprintf(out, "%s✗ Mismatch after %s:%s core=%q oracle=%q\n",
			ColorRed(), FormatDuration(duration), ColorReset(), mismatch.CoreResult, mismatch.OracleResult)
		return apperrors.ExitErrorMismatch
	case errors.As(err, &valErr):
		fmt.Fprintf(out, "%s✗ Invalid %s:%s %s\n", ColorRed(), valErr.Field, ColorReset(), valErr.Message)
		return apperrors.ExitErrorConfig
	case errors.As(err, &cfgErr):
		fmt.Fprintf(out, "%s✗ Configuration error:%s %v\n", ColorRed(), ColorReset(), err)
		return apperrors.ExitErrorConfig
	case errors.As(err, &timeoutErr):
		fmt.Fprintf(out, "%s✗ Timed out after %s%s: %s exceeded its %s limit\n",
			ColorRed(), FormatDuration(duration), ColorReset(), timeoutErr.Operation, timeoutErr.Limit)
		return apperrors.ExitErrorTimeout
	case apperrors.IsContextError(err):
		fmt.Fprintf(out, "%s✗ Canceled after %s%s\n", ColorRed(), FormatDuration(duration), ColorReset())
		return apperrors.ExitErrorCanceled
	default:
		fmt.Fprintf(out, "%s✗ Error after %s:%s %v\n", ColorRed(), FormatDuration(duration), ColorReset(), err)
		return apperrors.ExitErrorGeneric
	}
}

// DisplayMemoryStats shows memory statistics after a computation, useful
// diagnostic detail for the largest operands this core is designed to
// handle.
func DisplayMemoryStats(heapAlloc, totalAlloc uint64, numGC uint32, pauseTotalNs uint64, out io.Writer) {
	fmt.Fprintf(out, "\nMemory Stats:\n")
	fmt.Fprintf(out, "  Peak heap:       %s\n", format.FormatBytes(heapAlloc))
	fmt.Fprintf(out, "  Total allocated: %s\n", format.FormatBytes(totalAlloc))
	fmt.Fprintf(out, "  GC cycles:       %d\n", numGC)
	if pauseTotalNs > 0 {
		fmt.Fprintf(out, "  GC pause total:  %.2fms\n", float64(pauseTotalNs)/1e6)
	} else {
		fmt.Fprintf(out, "  GC pause total:  0ms (GC disabled)\n")
	}
}

