package cmd

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/PolarWolf314/pounamu/internal/configs"
)

// captureOutput redirects stdout and stderr while fn runs and returns what
// was written.
func captureOutput(t *testing.T, fn func()) string {
	t.Helper()

	originalStdout := os.Stdout
	originalStderr := os.Stderr

	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("Failed to create pipe: %v", err)
	}
	os.Stdout = w
	os.Stderr = w

	done := make(chan string)
	go func() {
		var buf bytes.Buffer
		_, _ = io.Copy(&buf, r)
		done <- buf.String()
	}()

	fn()

	w.Close()
	os.Stdout = originalStdout
	os.Stderr = originalStderr

	return <-done
}

// withTempSettings isolates user config and audit state for one test.
func withTempSettings(t *testing.T) {
	t.Helper()
	original := configs.UserPounamuSettings
	tmpDir := t.TempDir()
	configs.UserPounamuSettings = &configs.UserSettings{
		UserConfigPath: filepath.Join(tmpDir, "config"),
		UserDataPath:   filepath.Join(tmpDir, "data"),
	}
	t.Cleanup(func() { configs.UserPounamuSettings = original })
}
