package logger_test

import (
	"bytes"
	"io"
	"os"
	"strings"
	"testing"

	"go.trai.ch/cratepath/internal/adapters/logger"
)

// captureStderr captures output written to os.Stderr during the execution of fn.
func captureStderr(fn func()) (string, error) {
	originalStderr := os.Stderr

	r, w, err := os.Pipe()
	if err != nil {
		return "", err
	}
	os.Stderr = w

	done := make(chan string, 1)
	go func() {
		buf, _ := io.ReadAll(r)
		done <- string(buf)
	}()

	fn()

	if err := w.Close(); err != nil {
		os.Stderr = originalStderr
		return "", err
	}

	output := <-done

	if err := r.Close(); err != nil {
		os.Stderr = originalStderr
		return "", err
	}

	os.Stderr = originalStderr

	return output, nil
}

func TestLogger_New_WritesToStderr(t *testing.T) {
	output, err := captureStderr(func() {
		// Create the logger inside the capture function so it uses the redirected stderr
		lg := logger.New()
		lg.Warn("cargo options ignored")
	})
	if err != nil {
		t.Fatalf("Failed to capture stderr: %v", err)
	}

	if !strings.Contains(output, "cargo options ignored") {
		t.Errorf("Expected output to contain 'cargo options ignored', got: %s", output)
	}
	if !strings.Contains(output, "WARN") {
		t.Errorf("Expected output to contain 'WARN', got: %s", output)
	}
}

func TestLogger_Warn(t *testing.T) {
	var buf bytes.Buffer
	lg := logger.NewWithWriter(&buf)
	lg.Warn("some warning")

	output := buf.String()
	if !strings.Contains(output, "some warning") {
		t.Errorf("Expected output to contain 'some warning', got: %s", output)
	}
	if !strings.Contains(output, "WARN") {
		t.Errorf("Expected output to contain 'WARN', got: %s", output)
	}
}

func TestLogger_Debug_Verbosity(t *testing.T) {
	var buf bytes.Buffer
	lg := logger.NewWithWriter(&buf)

	lg.Debug("hidden")
	if buf.Len() != 0 {
		t.Fatalf("Expected debug output to be suppressed at info level, got: %s", buf.String())
	}

	lg.SetVerbose(true)
	lg.Debug("running cargo metadata")
	if !strings.Contains(buf.String(), "running cargo metadata") {
		t.Errorf("Expected debug output after SetVerbose(true), got: %s", buf.String())
	}

	buf.Reset()
	lg.SetVerbose(false)
	lg.Debug("hidden again")
	if buf.Len() != 0 {
		t.Errorf("Expected debug output to be suppressed after SetVerbose(false), got: %s", buf.String())
	}
}
