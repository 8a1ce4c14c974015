package app

import (
	"context"
	"io"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/agbru/bigradix/internal/arithop"
	"github.com/agbru/bigradix/internal/cli"
	apperrors "github.com/agbru/bigradix/internal/errors"
	"github.com/agbru/bigradix/internal/validate"
)

// runCalculate orchestrates a single compute invocation: validate inputs,
// run the core (optionally cross-validated against the naive oracle), and
// present the result.
func (a *Application) runCalculate(ctx context.Context, out io.Writer) int {
	if err := cli.ValidateInputs(a.Config.Base, a.Config.Alphabet, a.Config.Z1, a.Config.Z2, a.Config.Op); err != nil {
		return cli.HandleError(err, 0, a.ErrWriter)
	}
	op := a.Config.Op[0]

	ctx, cancelTimeout := context.WithTimeout(ctx, a.Config.Timeout)
	defer cancelTimeout()
	ctx, stopSignals := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stopSignals()

	if !a.Config.Quiet {
		cli.PrintExecutionConfig(a.Config, out)
		cli.PrintExecutionMode(a.Config.Verify, out)
	}

	progressOut := out
	if a.Config.Quiet {
		progressOut = io.Discard
	}

	done := make(chan struct{})
	var wg sync.WaitGroup
	wg.Add(1)
	go cli.DisplayProgress(&wg, done, "computing", progressOut)

	start := time.Now()
	outcomeCh := make(chan computeOutcome, 1)
	go func() {
		if a.Config.Verify {
			results := validate.Run(a.Config.Base, []byte(a.Config.Alphabet), a.Config.Z1, a.Config.Z2, op, a.Config.UseSIMD, true, a.Logger)
			result, err := validate.Compare(results)
			outcomeCh <- computeOutcome{results: results, result: result, err: err}
			return
		}
		result, err := arithop.Compute(a.Config.Base, []byte(a.Config.Alphabet), a.Config.Z1, a.Config.Z2, op, a.Config.UseSIMD, a.Logger)
		outcomeCh <- computeOutcome{result: result, err: err}
	}()

	var outcome computeOutcome
	select {
	case outcome = <-outcomeCh:
	case <-ctx.Done():
		close(done)
		wg.Wait()
		return cli.HandleError(timeoutOrCancelError(ctx, a.Config.Timeout), time.Since(start), a.ErrWriter)
	}
	close(done)
	wg.Wait()
	duration := time.Since(start)

	if a.Config.Verify && !a.Config.Quiet {
		cli.PresentComparisonTable(outcome.results, out)
	}
	if outcome.err != nil {
		return cli.HandleError(outcome.err, duration, a.ErrWriter)
	}
	return a.present(outcome.result, duration, out)
}

// computeOutcome carries either core's result back from the goroutine racing
// against ctx.Done() in runCalculate. results is only populated in verify mode.
type computeOutcome struct {
	results []validate.CoreResult
	result  string
	err     error
}

// timeoutOrCancelError distinguishes a configured deadline elapsing from an
// external cancellation (e.g. SIGINT via signal.NotifyContext), since the two
// report through different exit codes in cli.HandleError.
func timeoutOrCancelError(ctx context.Context, limit time.Duration) error {
	if ctx.Err() == context.DeadlineExceeded {
		return apperrors.TimeoutError{Operation: "compute", Limit: limit}
	}
	return ctx.Err()
}

// present writes the final result, honoring quiet/verbose/output-file
// configuration, and returns the process exit code.
func (a *Application) present(result string, duration time.Duration, out io.Writer) int {
	outputCfg := cli.OutputConfig{
		OutputFile: a.Config.OutputFile,
		Quiet:      a.Config.Quiet,
		Verbose:    a.Config.Verbose,
	}
	op := a.Config.Op[0]
	if err := cli.DisplayResultWithConfig(out, result, a.Config.Base, op, a.Config.Z1, a.Config.Z2, duration, outputCfg); err != nil {
		return cli.HandleError(err, duration, a.ErrWriter)
	}
	return apperrors.ExitSuccess
}
