// Package cli provides the REPL (Read-Eval-Print Loop) functionality for
// interactive arbitrary-radix arithmetic.
package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/agbru/bigradix/internal/arithop"
	"github.com/agbru/bigradix/internal/logging"
	"github.com/agbru/bigradix/internal/validate"
)

// REPLConfig holds configuration for the REPL session.
type REPLConfig struct {
	// Base is the starting radix (positive or negative).
	Base int
	// Alphabet is the starting digit alphabet, one character per digit value.
	Alphabet string
	// Timeout is shown by the status command; a computation is not cut off
	// when it elapses.
	Timeout time.Duration
	// UseSIMD selects the word-tiered SIMD-simulated arithmetic path.
	UseSIMD bool
	// Verify cross-checks every computation against the naive oracle core.
	Verify bool
}

// REPL represents an interactive arithmetic session: it holds the current
// base/alphabet/mode state across commands.
type REPL struct {
	config REPLConfig
	logger logging.Logger
	in     io.Reader
	out    io.Writer
}

// NewREPL creates a new REPL instance.
func NewREPL(config REPLConfig, logger logging.Logger) *REPL {
	return &REPL{
		config: config,
		logger: logger,
		in:     os.Stdin,
		out:    os.Stdout,
	}
}

// SetInput sets a custom input reader (useful for testing).
func (r *REPL) SetInput(in io.Reader) {
	r.in = in
}

// SetOutput sets a custom output writer (useful for testing).
func (r *REPL) SetOutput(out io.Writer) {
	r.out = out
}

// Start begins the interactive REPL session. It continuously reads user
// commands and processes them until the user exits or EOF is reached.
func (r *REPL) Start() {
	r.printBanner()
	r.printHelp()
	fmt.Fprintln(r.out)

	reader := bufio.NewReader(r.in)

	for {
		fmt.Fprint(r.out, ColorGreen()+"bigradix> "+ColorReset())

		input, err := reader.ReadString('\n')
		if err != nil {
			if errors.Is(err, io.EOF) {
				fmt.Fprintln(r.out, "\nGoodbye!")
				return
			}
			fmt.Fprintf(r.out, "%sRead error: %v%s\n", ColorRed(), err, ColorReset())
			continue
		}

		input = strings.TrimSpace(input)
		if input == "" {
			continue
		}

		if !r.processCommand(input) {
			return // Exit command received
		}
	}
}

// printBanner displays the REPL welcome banner.
func (r *REPL) printBanner() {
	fmt.Fprintf(r.out, "\n%s╔══════════════════════════════════════════════════════════╗%s\n", ColorCyan(), ColorReset())
	fmt.Fprintf(r.out, "%s║%s     %sbigradix - Interactive Mode%s                          %s║%s\n",
		ColorCyan(), ColorReset(), ColorBold(), ColorReset(), ColorCyan(), ColorReset())
	fmt.Fprintf(r.out, "%s╚══════════════════════════════════════════════════════════╝%s\n\n", ColorCyan(), ColorReset())
}

// printHelp displays available commands.
func (r *REPL) printHelp() {
	fmt.Fprintf(r.out, "%sAvailable commands:%s\n", ColorBold(), ColorReset())
	fmt.Fprintf(r.out, "  %scalc <op> <z1> <z2>%s - Compute z1 op z2 (op is +, -, or *)\n", ColorYellow(), ColorReset())
	fmt.Fprintf(r.out, "  %sbase <n>%s            - Change the working radix\n", ColorYellow(), ColorReset())
	fmt.Fprintf(r.out, "  %salphabet <s>%s        - Change the digit alphabet\n", ColorYellow(), ColorReset())
	fmt.Fprintf(r.out, "  %sverify%s              - Toggle cross-validation against the naive oracle\n", ColorYellow(), ColorReset())
	fmt.Fprintf(r.out, "  %ssimd%s                - Toggle the SIMD-simulated arithmetic path\n", ColorYellow(), ColorReset())
	fmt.Fprintf(r.out, "  %sstatus%s              - Display current configuration\n", ColorYellow(), ColorReset())
	fmt.Fprintf(r.out, "  %shelp%s                - Display this help\n", ColorYellow(), ColorReset())
	fmt.Fprintf(r.out, "  %sexit%s / %squit%s        - Exit interactive mode\n", ColorYellow(), ColorReset(), ColorYellow(), ColorReset())
}

// processCommand parses and executes a user command.
// Returns false if the REPL should exit.
func (r *REPL) processCommand(input string) bool {
	parts := strings.Fields(input)
	if len(parts) == 0 {
		return true
	}

	cmd := strings.ToLower(parts[0])
	args := parts[1:]

	switch cmd {
	case "calc", "c":
		r.cmdCalc(args)
	case "base":
		r.cmdBase(args)
	case "alphabet":
		r.cmdAlphabet(args)
	case "verify":
		r.cmdVerify()
	case "simd":
		r.cmdSIMD()
	case "status", "st":
		r.cmdStatus()
	case "help", "h", "?":
		r.printHelp()
	case "exit", "quit", "q":
		fmt.Fprintf(r.out, "%sGoodbye!%s\n", ColorGreen(), ColorReset())
		return false
	default:
		fmt.Fprintf(r.out, "%sUnknown command: %s%s\n", ColorRed(), cmd, ColorReset())
		fmt.Fprintf(r.out, "Type %shelp%s to see available commands.\n", ColorYellow(), ColorReset())
	}

	return true
}

// cmdCalc handles the "calc" command.
func (r *REPL) cmdCalc(args []string) {
	if len(args) != 3 {
		fmt.Fprintf(r.out, "%sUsage: calc <op> <z1> <z2>%s\n", ColorRed(), ColorReset())
		return
	}
	op, z1, z2 := args[0], args[1], args[2]

	if err := ValidateInputs(r.config.Base, r.config.Alphabet, z1, z2, op); err != nil {
		fmt.Fprintf(r.out, "%sInvalid input: %v%s\n", ColorRed(), err, ColorReset())
		return
	}

	r.calculate(op[0], z1, z2)
}

// calculate performs a single computation with the REPL's current settings,
// optionally cross-validated against the naive oracle.
func (r *REPL) calculate(op byte, z1, z2 string) {
	ctx, cancel := context.WithTimeout(context.Background(), r.config.Timeout)
	defer cancel()
	_ = ctx

	fmt.Fprintf(r.out, "Computing %s%s %c %s%s in base %s%d%s...\n",
		ColorMagenta(), z1, op, z2, ColorReset(),
		ColorCyan(), r.config.Base, ColorReset())

	done := make(chan struct{})
	var wg sync.WaitGroup
	wg.Add(1)
	go DisplayProgress(&wg, done, "computing", r.out)

	start := time.Now()
	var (
		result string
		err    error
	)
	if r.config.Verify {
		results := validate.Run(r.config.Base, []byte(r.config.Alphabet), z1, z2, op, r.config.UseSIMD, true, r.logger)
		close(done)
		wg.Wait()
		duration := time.Since(start)
		result, err = validate.Compare(results)
		PresentComparisonTable(results, r.out)
		if err != nil {
			HandleError(err, duration, r.out)
			return
		}
		DisplayResult(r.out, result, r.config.Base, duration, false)
		return
	}

	result, err = arithop.Compute(r.config.Base, []byte(r.config.Alphabet), z1, z2, op, r.config.UseSIMD, r.logger)
	close(done)
	wg.Wait()
	duration := time.Since(start)

	if err != nil {
		HandleError(err, duration, r.out)
		return
	}
	DisplayResult(r.out, result, r.config.Base, duration, false)
}

// cmdBase handles the "base" command.
func (r *REPL) cmdBase(args []string) {
	if len(args) != 1 {
		fmt.Fprintf(r.out, "%sUsage: base <n>%s\n", ColorRed(), ColorReset())
		return
	}
	var n int
	if _, err := fmt.Sscanf(args[0], "%d", &n); err != nil {
		fmt.Fprintf(r.out, "%sInvalid base: %s%s\n", ColorRed(), args[0], ColorReset())
		return
	}
	if err := ValidateBase(n); err != nil {
		fmt.Fprintf(r.out, "%s%v%s\n", ColorRed(), err, ColorReset())
		return
	}
	r.config.Base = n
	fmt.Fprintf(r.out, "Base changed to: %s%d%s\n", ColorGreen(), n, ColorReset())
}

// cmdAlphabet handles the "alphabet" command.
func (r *REPL) cmdAlphabet(args []string) {
	if len(args) != 1 {
		fmt.Fprintf(r.out, "%sUsage: alphabet <s>%s\n", ColorRed(), ColorReset())
		return
	}
	if err := ValidateAlphabet(args[0]); err != nil {
		fmt.Fprintf(r.out, "%s%v%s\n", ColorRed(), err, ColorReset())
		return
	}
	r.config.Alphabet = args[0]
	fmt.Fprintf(r.out, "Alphabet changed to: %s%s%s\n", ColorGreen(), args[0], ColorReset())
}

// cmdVerify toggles naive-oracle cross-validation.
func (r *REPL) cmdVerify() {
	r.config.Verify = !r.config.Verify
	status := "disabled"
	if r.config.Verify {
		status = "enabled"
	}
	fmt.Fprintf(r.out, "Cross-validation: %s%s%s\n", ColorGreen(), status, ColorReset())
}

// cmdSIMD toggles the SIMD-simulated arithmetic path.
func (r *REPL) cmdSIMD() {
	r.config.UseSIMD = !r.config.UseSIMD
	status := "disabled"
	if r.config.UseSIMD {
		status = "enabled"
	}
	fmt.Fprintf(r.out, "SIMD path: %s%s%s\n", ColorGreen(), status, ColorReset())
}

// cmdStatus displays current REPL configuration.
func (r *REPL) cmdStatus() {
	fmt.Fprintf(r.out, "\n%sCurrent configuration:%s\n", ColorBold(), ColorReset())
	fmt.Fprintf(r.out, "  Base:       %s%d%s\n", ColorCyan(), r.config.Base, ColorReset())
	fmt.Fprintf(r.out, "  Alphabet:   %s%s%s\n", ColorCyan(), r.config.Alphabet, ColorReset())
	fmt.Fprintf(r.out, "  Timeout:    %s%s%s\n", ColorCyan(), r.config.Timeout, ColorReset())
	verifyStatus := "no"
	if r.config.Verify {
		verifyStatus = "yes"
	}
	fmt.Fprintf(r.out, "  Verify:     %s%s%s\n", ColorCyan(), verifyStatus, ColorReset())
	simdStatus := "no"
	if r.config.UseSIMD {
		simdStatus = "yes"
	}
	fmt.Fprintf(r.out, "  SIMD:       %s%s%s\n", ColorCyan(), simdStatus, ColorReset())
	fmt.Fprintln(r.out)
}
