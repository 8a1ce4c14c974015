// Package validate runs the binary-conversion core and the naive oracle core
// for the same operation, sequentially, and reports whether they agree.
// There are always exactly two cores and no concurrency across operations,
// so this is a straight sequential comparison rather than a race.
package validate

import (
	"time"

	"github.com/agbru/bigradix/internal/arithop"
	apperrors "github.com/agbru/bigradix/internal/errors"
	"github.com/agbru/bigradix/internal/logging"
)

// CoreResult is one core's outcome for a single operation, analogous to the
// teacher's CalculationResult but keyed by core name instead of algorithm
// name and holding a digit string instead of a *big.Int.
type CoreResult struct {
	Name     string
	Value    string
	Duration time.Duration
	Err      error
}

// Run executes the binary-conversion core (arithop.Compute) and, if
// verify is true, the naive oracle (arithop.NaiveCompute) immediately
// afterward in the same goroutine, and returns both outcomes for
// Compare to reconcile. With verify false only the binary core runs, at
// the cost of never detecting a disagreement.
func Run(base int, alphabet []byte, z1, z2 string, op byte, useSIMD, verify bool, logger logging.Logger) []CoreResult {
	results := make([]CoreResult, 0, 2)

	start := time.Now()
	value, err := arithop.Compute(base, alphabet, z1, z2, op, useSIMD, logger)
	results = append(results, CoreResult{Name: "binary-core", Value: value, Duration: time.Since(start), Err: err})

	if !verify {
		return results
	}

	start = time.Now()
	value, err = arithop.NaiveCompute(base, alphabet, z1, z2, op)
	results = append(results, CoreResult{Name: "naive-core", Value: value, Duration: time.Since(start), Err: err})

	return results
}

// Compare reconciles the results of Run: if every core failed, it returns
// the first error; if any two successful cores disagree, it returns a
// MismatchError; otherwise it returns the (agreed-upon) value.
func Compare(results []CoreResult) (string, error) {
	var firstValue string
	var firstErr error
	haveValue := false

	for _, r := range results {
		if r.Err != nil {
			if firstErr == nil {
				firstErr = r.Err
			}
			continue
		}
		if !haveValue {
			firstValue = r.Value
			haveValue = true
			continue
		}
		if r.Value != firstValue {
			return "", apperrors.MismatchError{CoreResult: firstValue, OracleResult: r.Value}
		}
	}

	if !haveValue {
		if firstErr != nil {
			return "", firstErr
		}
		return "", apperrors.NewConfigError("no core produced a result")
	}
	return firstValue, nil
}
