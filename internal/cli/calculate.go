package cli

import (
	"fmt"
	"io"
	"runtime"

	"github.com/agbru/bigradix/internal/config"
)

// PrintExecutionConfig displays the current execution configuration to the
// user: the operands and operator, the radix/alphabet they're read in, and
// the timeout governing the whole invocation.
//
// Parameters:
//   - cfg: The application configuration.
//   - out: The writer for standard output.
func PrintExecutionConfig(cfg config.AppConfig, out io.Writer) {
	fmt.Fprintf(out, "--- Execution Configuration ---\n")
	fmt.Fprintf(out, "Computing %s%s %s %s%s in base %s%d%s with a timeout of %s%s%s.\n",
		ColorMagenta(), cfg.Z1, cfg.Op, cfg.Z2, ColorReset(),
		ColorCyan(), cfg.Base, ColorReset(),
		ColorYellow(), cfg.Timeout, ColorReset())
	fmt.Fprintf(out, "Alphabet: %s%s%s.\n", ColorCyan(), cfg.Alphabet, ColorReset())
	fmt.Fprintf(out, "Environment: %s%d%s logical processors, Go %s%s%s.\n",
		ColorCyan(), runtime.NumCPU(), ColorReset(), ColorCyan(), runtime.Version(), ColorReset())
}

// PrintExecutionMode displays the execution mode: a single binary-core
// computation, or a binary-core/naive-core cross-validated one when
// verification is requested.
//
// Parameters:
//   - verify: Whether the naive oracle core also runs, for comparison.
//   - out: The writer for standard output.
func PrintExecutionMode(verify bool, out io.Writer) {
	var modeDesc string
	if verify {
		modeDesc = "Cross-validated run against the binary-core and naive-core"
	} else {
		modeDesc = fmt.Sprintf("Single run with the %sbinary-core%s", ColorGreen(), ColorReset())
	}
	fmt.Fprintf(out, "Execution mode: %s.\n", modeDesc)
	fmt.Fprintf(out, "\n--- Starting Execution ---\n")
}
