package e2e

import (
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
)

// TestCLI_E2E verifies the built binary functions correctly.
func TestCLI_E2E(t *testing.T) {
	tmpDir := t.TempDir()
	binName := "bigradix"
	if runtime.GOOS == "windows" {
		binName = "bigradix.exe"
	}
	binPath := filepath.Join(tmpDir, binName)

	rootDir := "../.."

	cmd := exec.Command("go", "build", "-o", binPath, "./cmd/bigradix")
	cmd.Dir = rootDir
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		t.Fatalf("Failed to build bigradix: %v", err)
	}

	tests := []struct {
		name     string
		args     []string
		wantOut  string // substring match (case-insensitive)
		wantCode int
	}{
		{
			name:     "Basic Addition",
			args:     []string{"-z1", "5", "-z2", "50", "-op", "+"},
			wantOut:  "55",
			wantCode: 0,
		},
		{
			name:     "Help",
			args:     []string{"--help"},
			wantOut:  "usage",
			wantCode: 0,
		},
		{
			name:     "Cross-Validated Multiplication",
			args:     []string{"-z1", "12345", "-z2", "6789", "-op", "*", "-verify"},
			wantOut:  "83810205",
			wantCode: 0,
		},
		{
			name:     "Quiet Mode",
			args:     []string{"-z1", "5", "-z2", "50", "-op", "+", "-quiet"},
			wantOut:  "55",
			wantCode: 0,
		},
		{
			name:     "Invalid Operand",
			args:     []string{"-z1", "5x", "-z2", "50", "-op", "+"},
			wantOut:  "",
			wantCode: 4,
		},
		{
			name:     "Invalid Base",
			args:     []string{"-base", "1", "-z1", "5", "-z2", "50", "-op", "+"},
			wantOut:  "",
			wantCode: 4,
		},
		{
			name:     "Hexadecimal Base",
			args:     []string{"-base", "16", "-alphabet", "0123456789abcdef", "-z1", "ff", "-z2", "1", "-op", "+"},
			wantOut:  "100",
			wantCode: 0,
		},
		{
			name:     "Version Flag",
			args:     []string{"--version"},
			wantOut:  "bigradix",
			wantCode: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := exec.Command(binPath, tt.args...)
			cmd.Env = append(os.Environ(), "NO_COLOR=1")
			output, err := cmd.CombinedOutput()

			outStr := string(output)

			if tt.wantCode == 0 {
				if err != nil {
					t.Errorf("Command failed unexpectedly: %v\nOutput: %s", err, outStr)
				}
			} else {
				if err == nil {
					t.Errorf("Expected non-zero exit code, but command succeeded.\nOutput: %s", outStr)
				} else if exitErr, ok := err.(*exec.ExitError); ok {
					if exitErr.ExitCode() != tt.wantCode {
						t.Logf("Exit code mismatch: got %d, want %d (accepting any non-zero)",
							exitErr.ExitCode(), tt.wantCode)
					}
				}
			}

			if tt.wantOut != "" {
				if !strings.Contains(strings.ToLower(outStr), strings.ToLower(tt.wantOut)) {
					t.Errorf("Output missing expected string.\nExpected: %q\nGot:\n%s", tt.wantOut, outStr)
				}
			}
		})
	}
}
