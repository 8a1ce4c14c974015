package cli

import (
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/briandowns/spinner"
)

// colorsEnabled gates ANSI output behind NO_COLOR, the same override the
// teacher's deleted internal/ui.Theme honored via its NoColorTheme.
var colorsEnabled = os.Getenv("NO_COLOR") == ""

func color(code string) string {
	if !colorsEnabled {
		return ""
	}
	return code
}

func ColorReset() string     { return color("\033[0m") }
func ColorBold() string      { return color("\033[1m") }
func ColorUnderline() string { return color("\033[4m") }
func ColorRed() string       { return color("\033[31m") }
func ColorGreen() string     { return color("\033[32m") }
func ColorYellow() string    { return color("\033[33m") }
func ColorBlue() string      { return color("\033[34m") }
func ColorMagenta() string   { return color("\033[35m") }
func ColorCyan() string      { return color("\033[36m") }

const (
	// TruncationLimit is the digit threshold from which a result is truncated
	// in standard output to avoid cluttering the terminal.
	TruncationLimit = 100
	// DisplayEdges specifies the number of digits to display at the beginning
	// and end of a truncated number.
	DisplayEdges = 25
	// HexDisplayEdges specifies the number of hex characters to display at the
	// beginning and end of a truncated hexadecimal number.
	HexDisplayEdges = 40
	// ProgressRefreshRate defines the refresh frequency of the progress bar.
	// Optimized to 200ms to reduce updates and improve performance.
	ProgressRefreshRate = 200 * time.Millisecond
	// ProgressBarWidth defines the width in characters of the progress bar.
	ProgressBarWidth = 40
)

// Spinner is an interface that abstracts the behavior of a terminal spinner.
// This allows for the decoupling of the `DisplayProgress` function from a
// specific spinner implementation, facilitating easier testing and maintenance.
// It defines the essential controls for a spinner: starting, stopping, and
// updating its status message.
type Spinner interface {
	// Start begins the spinner animation.
	Start()
	// Stop halts the spinner animation.
	Stop()
	// UpdateSuffix sets the text that is displayed after the spinner.
	//
	// Parameters:
	//   - suffix: The text string to display.
	UpdateSuffix(suffix string)
}

// realSpinner is a wrapper for the `spinner.Spinner` that implements the
// `Spinner` interface. This adapter allows the `spinner` library to be used
// within the application's CLI framework.
type realSpinner struct {
	s *spinner.Spinner
}

// Start begins the spinner animation.
func (rs *realSpinner) Start() {
	rs.s.Start()
}

// Stop halts the spinner animation.
func (rs *realSpinner) Stop() {
	rs.s.Stop()
}

// UpdateSuffix sets the text that is displayed after the spinner.
//
// Parameters:
//   - suffix: The string to display.
func (rs *realSpinner) UpdateSuffix(suffix string) {
	rs.s.Suffix = suffix
}

var newSpinner = func(options ...spinner.Option) Spinner {
	// Using the same interval as ProgressRefreshRate to synchronize
	s := spinner.New(spinner.CharSets[11], ProgressRefreshRate, options...)
	return &realSpinner{s}
}

// progressBar generates a string representing a textual progress bar.
//
// Parameters:
//   - progress: The normalized progress value (0.0 to 1.0).
//   - length: The total character width of the progress bar.
//
// Returns:
//   - string: A string representation of the progress bar.
func progressBar(progress float64, length int) string {
	if progress > 1.0 {
		progress = 1.0
	}
	if progress < 0.0 {
		progress = 0.0
	}
	count := int(progress * float64(length))
	var builder strings.Builder
	builder.Grow(length)
	for i := 0; i < length; i++ {
		if i < count {
			builder.WriteRune('█')
		} else {
			builder.WriteRune('░')
		}
	}
	return builder.String()
}

// DisplayProgress shows an indeterminate spinner labeled with the operation
// underway until done is closed. There are never more than two sequential,
// synchronous cores to wait on and nothing fractional to report, so the
// spinner just marks "still working" rather than tracking a percentage.
func DisplayProgress(wg *sync.WaitGroup, done <-chan struct{}, label string, out io.Writer) {
	defer wg.Done()
	s := newSpinner(spinner.WithWriter(out))
	s.UpdateSuffix(" " + label)
	s.Start()
	<-done
	s.Stop()
}
