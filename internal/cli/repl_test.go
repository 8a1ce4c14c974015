package cli

import (
	"bytes"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/agbru/bigradix/internal/logging"
)

func newTestREPL(out *bytes.Buffer) *REPL {
	r := NewREPL(REPLConfig{
		Base:     10,
		Alphabet: "0123456789",
		Timeout:  time.Second,
	}, logging.NewLogger(io.Discard, "test"))
	r.SetOutput(out)
	return r
}

func TestREPLCalc(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	r := newTestREPL(&buf)

	if !r.processCommand("calc + 5 50") {
		t.Fatal("calc should not exit the REPL")
	}
	if !strings.Contains(buf.String(), "55") {
		t.Errorf("expected result 55 in output, got %q", buf.String())
	}
}

func TestREPLCalcInvalidOperand(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	r := newTestREPL(&buf)

	r.processCommand("calc + 5x 50")
	if !strings.Contains(buf.String(), "Invalid input") {
		t.Errorf("expected invalid input message, got %q", buf.String())
	}
}

func TestREPLBaseAndAlphabet(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	r := newTestREPL(&buf)

	r.processCommand("base 16")
	if r.config.Base != 16 {
		t.Errorf("base should be 16, got %d", r.config.Base)
	}

	r.processCommand("alphabet 0123456789abcdef")
	if r.config.Alphabet != "0123456789abcdef" {
		t.Errorf("alphabet not updated, got %q", r.config.Alphabet)
	}

	buf.Reset()
	r.processCommand("base 1")
	if !strings.Contains(buf.String(), "magnitude") {
		t.Errorf("expected base validation error, got %q", buf.String())
	}
}

func TestREPLToggles(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	r := newTestREPL(&buf)

	r.processCommand("verify")
	if !r.config.Verify {
		t.Error("verify should be enabled after toggle")
	}
	r.processCommand("simd")
	if !r.config.UseSIMD {
		t.Error("simd should be enabled after toggle")
	}
}

func TestREPLExit(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	r := newTestREPL(&buf)

	if r.processCommand("exit") {
		t.Error("exit command should return false")
	}
}

func TestREPLUnknownCommand(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	r := newTestREPL(&buf)

	r.processCommand("frobnicate")
	if !strings.Contains(buf.String(), "Unknown command") {
		t.Errorf("expected unknown command message, got %q", buf.String())
	}
}
