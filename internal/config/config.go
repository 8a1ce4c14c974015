// Package config parses and resolves AppConfig: the flag set, BIGRADIX_*
// environment variable overrides, and adaptive hardware defaults that
// together decide how a single compute invocation runs.
package config

import (
	"flag"
	"time"
)

// EnvPrefix is prepended to every environment variable name env.go checks.
const EnvPrefix = "BIGRADIX_"

// AppConfig holds every knob a single bigradix invocation needs: which
// radix and alphabet to parse/project in, the two operands and the
// operator, whether to use the SIMD-tiered arithmetic path, whether to
// cross-validate against the naive oracle, and the usual verbosity/output/
// serve knobs.
type AppConfig struct {
	Base       int
	Alphabet   string
	Z1         string
	Z2         string
	Op         string
	UseSIMD    bool
	Verify     bool
	Verbose    bool
	Quiet      bool
	OutputFile string
	Timeout    time.Duration
	ServeAddr  string
	Completion string
}

// DefaultConfig is AppConfig's zero-flags starting point: decimal, addition,
// the hardware-estimated SIMD default, a generous but finite timeout.
func DefaultConfig() AppConfig {
	return AppConfig{
		Base:     10,
		Alphabet: "0123456789",
		Op:       "+",
		UseSIMD:  EstimateOptimalSIMDDefault(),
		Timeout:  30 * time.Second,
	}
}

// ParseConfig builds an AppConfig from command-line args, then layers in any
// BIGRADIX_* environment variable overrides for flags the caller did not set
// explicitly (CLI flags beat environment variables beat defaults).
func ParseConfig(args []string) (AppConfig, error) {
	cfg := DefaultConfig()
	fs := flag.NewFlagSet("bigradix", flag.ContinueOnError)

	fs.IntVar(&cfg.Base, "base", cfg.Base, "radix to operate in; a negative value selects a negative base")
	fs.StringVar(&cfg.Alphabet, "alphabet", cfg.Alphabet, "ordered digit characters, one per digit value 0..|base|-1")
	fs.StringVar(&cfg.Z1, "z1", cfg.Z1, "first operand, as a digit string in the given base/alphabet")
	fs.StringVar(&cfg.Z2, "z2", cfg.Z2, "second operand")
	fs.StringVar(&cfg.Op, "op", cfg.Op, "operator: +, -, or *")
	fs.BoolVar(&cfg.UseSIMD, "simd", cfg.UseSIMD, "use the word-tiered SIMD-simulated arithmetic path")
	fs.BoolVar(&cfg.Verify, "verify", cfg.Verify, "cross-check the result against the naive oracle core")
	fs.BoolVar(&cfg.Verbose, "verbose", cfg.Verbose, "show the full result value instead of truncating it")
	fs.BoolVar(&cfg.Verbose, "v", cfg.Verbose, "alias for -verbose")
	fs.BoolVar(&cfg.Quiet, "quiet", cfg.Quiet, "suppress non-essential output")
	fs.BoolVar(&cfg.Quiet, "q", cfg.Quiet, "alias for -quiet")
	fs.StringVar(&cfg.OutputFile, "output", cfg.OutputFile, "also write the result to this file")
	fs.StringVar(&cfg.OutputFile, "o", cfg.OutputFile, "alias for -output")
	fs.DurationVar(&cfg.Timeout, "timeout", cfg.Timeout, "overall operation timeout")
	fs.StringVar(&cfg.ServeAddr, "serve", cfg.ServeAddr, "if set, run an HTTP server on this address instead of a one-shot computation")
	fs.StringVar(&cfg.Completion, "completion", cfg.Completion, "print a shell completion script for this shell (bash, zsh, fish, powershell) and exit")

	if err := fs.Parse(args); err != nil {
		return cfg, err
	}
	applyEnvOverrides(&cfg, fs)
	return cfg, nil
}
