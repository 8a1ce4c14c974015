// # Naming Conventions
//
// Functions in this package follow consistent naming patterns based on their behavior:
//
//   - Display* functions write formatted output to an [io.Writer].
//     They handle presentation logic and colorization.
//     Examples: [DisplayResult], [DisplayQuietResult], [DisplayProgress].
//
//   - Format* functions return a formatted string without performing I/O.
//     They are pure functions suitable for composition.
//     Examples: [FormatQuietResult], [FormatDuration].
//
//   - Write* functions write data to files on the filesystem.
//     They handle file creation, directory setup, and error handling.
//     Examples: [WriteResultToFile].

package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/agbru/bigradix/internal/format"
)

// OutputConfig holds configuration for result output.
type OutputConfig struct {
	// OutputFile is the path to save the result (empty for no file output).
	OutputFile string
	// Quiet mode suppresses verbose output.
	Quiet bool
	// Verbose shows the full result value instead of truncating it.
	Verbose bool
}

// WriteResultToFile writes a computation result to a file, annotated with
// the inputs that produced it.
func WriteResultToFile(result string, base int, op byte, z1, z2 string, duration time.Duration, config OutputConfig) error {
	if config.OutputFile == "" {
		return nil
	}

	dir := filepath.Dir(config.OutputFile)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory: %w", err)
		}
	}

	file, err := os.Create(config.OutputFile)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer file.Close()

	fmt.Fprintf(file, "# bigradix Computation Result\n")
	fmt.Fprintf(file, "# Generated: %s\n", time.Now().Format(time.RFC3339))
	fmt.Fprintf(file, "# Base: %d\n", base)
	fmt.Fprintf(file, "# Operation: %s %c %s\n", z1, op, z2)
	fmt.Fprintf(file, "# Duration: %s\n", duration)
	fmt.Fprintf(file, "# Digits: %d\n", len(result))
	fmt.Fprintf(file, "\n")
	fmt.Fprintf(file, "%s\n", result)

	return nil
}

// FormatQuietResult formats a result for quiet mode output: the digit
// string alone, suitable for scripting.
func FormatQuietResult(result string) string {
	return result
}

// DisplayQuietResult outputs a result in quiet mode (minimal output).
func DisplayQuietResult(out io.Writer, result string) {
	fmt.Fprintln(out, FormatQuietResult(result))
}

// DisplayResult shows a computation result, truncating very long digit
// strings unless verbose is set.
func DisplayResult(out io.Writer, result string, base int, duration time.Duration, verbose bool) {
	fmt.Fprintf(out, "\n%sResult:%s\n", ColorBold(), ColorReset())
	fmt.Fprintf(out, "  Time:   %s%s%s\n", ColorGreen(), format.FormatExecutionDuration(duration), ColorReset())
	fmt.Fprintf(out, "  Base:   %s%d%s\n", ColorCyan(), base, ColorReset())

	numDigits := len(result)
	fmt.Fprintf(out, "  Digits: %s%s%s\n", ColorCyan(), format.FormatNumberString(fmt.Sprintf("%d", numDigits)), ColorReset())

	if verbose || numDigits <= TruncationLimit {
		fmt.Fprintf(out, "  Value:  %s%s%s\n", ColorGreen(), result, ColorReset())
		return
	}

	neg := numDigits > 0 && result[0] == '-'
	digits := result
	if neg {
		digits = result[1:]
	}
	n := len(digits)
	fmt.Fprintf(out, "  Value:  %s%s%s...%s%s (truncated, use -verbose for the full value)\n",
		ColorGreen(), signPrefix(neg), digits[:DisplayEdges], digits[n-DisplayEdges:], ColorReset())
}

func signPrefix(neg bool) string {
	if neg {
		return "-"
	}
	return ""
}

// DisplayResultWithConfig displays a result according to the given output
// configuration (quiet vs. standard) and, if requested, saves it to a file.
func DisplayResultWithConfig(out io.Writer, result string, base int, op byte, z1, z2 string, duration time.Duration, config OutputConfig) error {
	if config.Quiet {
		DisplayQuietResult(out, result)
	} else {
		DisplayResult(out, result, base, duration, config.Verbose)
	}

	if config.OutputFile != "" {
		if err := WriteResultToFile(result, base, op, z1, z2, duration, config); err != nil {
			return err
		}
		if !config.Quiet {
			fmt.Fprintf(out, "\n%s✓ Result saved to: %s%s%s\n",
				ColorGreen(), ColorCyan(), config.OutputFile, ColorReset())
		}
	}

	return nil
}
