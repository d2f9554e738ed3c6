package cli

import (
	"io"
	"os"
	"strings"
	"testing"
)

func TestSatisfiesConstraint(t *testing.T) {
	tests := []struct {
		expr     string
		expected bool
	}{
		{">=0.1.0", true},
		{">=0.1.0, <1.0.0", true},
		{"=" + Version, true},
		{">=1.0.0", false},
		{"<0.1.0", false},
	}

	for i, tt := range tests {
		got, err := SatisfiesConstraint(tt.expr)
		if err != nil {
			t.Fatalf("tests[%d] - constraint %q failed: %v", i, tt.expr, err)
		}
		if got != tt.expected {
			t.Fatalf("tests[%d] - constraint %q = %v, expected %v", i, tt.expr, got, tt.expected)
		}
	}
}

func TestSatisfiesConstraintInvalid(t *testing.T) {
	if _, err := SatisfiesConstraint("not a constraint"); err == nil {
		t.Fatal("expected invalid constraint to fail")
	}
}

// captureOutput runs f with stdout and stderr redirected to pipes and
// returns what was written to each.
func captureOutput(t *testing.T, f func()) (stdout, stderr string) {
	t.Helper()

	oldOut, oldErr := os.Stdout, os.Stderr
	rOut, wOut, err := os.Pipe()
	if err != nil {
		t.Fatal(err)
	}
	rErr, wErr, err := os.Pipe()
	if err != nil {
		t.Fatal(err)
	}
	os.Stdout, os.Stderr = wOut, wErr
	defer func() { os.Stdout, os.Stderr = oldOut, oldErr }()

	f()

	wOut.Close()
	wErr.Close()
	outBytes, _ := io.ReadAll(rOut)
	errBytes, _ := io.ReadAll(rErr)
	return string(outBytes), string(errBytes)
}

func TestLoggerLevels(t *testing.T) {
	quiet := NewLogger(false, false)
	stdout, stderr := captureOutput(t, func() {
		quiet.Info("hidden info")
		quiet.Debug("hidden debug")
		quiet.Warn("shown warning")
		quiet.Error("shown error")
	})

	if strings.Contains(stdout, "hidden info") || strings.Contains(stdout, "hidden debug") {
		t.Fatalf("quiet logger leaked info/debug output: %q", stdout)
	}
	if !strings.Contains(stdout, "[WARN]") || !strings.Contains(stdout, "shown warning") {
		t.Fatalf("warning missing from stdout: %q", stdout)
	}
	if !strings.Contains(stderr, "[ERROR]") || !strings.Contains(stderr, "shown error") {
		t.Fatalf("error missing from stderr: %q", stderr)
	}

	loud := NewLogger(true, true)
	stdout, _ = captureOutput(t, func() {
		loud.Info("info line")
		loud.Debug("debug line")
	})
	if !strings.Contains(stdout, "[INFO]") || !strings.Contains(stdout, "info line") {
		t.Fatalf("info missing from stdout: %q", stdout)
	}
	if !strings.Contains(stdout, "[DEBUG]") || !strings.Contains(stdout, "debug line") {
		t.Fatalf("debug missing from stdout: %q", stdout)
	}
}

func TestGetVersionInfo(t *testing.T) {
	info := GetVersionInfo()
	if info.Version != Version {
		t.Fatalf("version wrong: %s", info.Version)
	}
	if info.GoVersion == "" || info.Platform == "" || info.Arch == "" {
		t.Fatalf("incomplete build info: %+v", info)
	}
}
