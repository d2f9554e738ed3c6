// Package cli provides shared helpers for the Lett command-line tools.
package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"runtime"
	"time"

	semver "github.com/Masterminds/semver/v3"
)

// Version information for all CLI tools
const (
	Version   = "0.1.0"
	BuildDate = "2026-08-30"
	CommitSHA = "unknown" // Will be set during build
)

// VersionInfo contains version and build information
type VersionInfo struct {
	Version   string `json:"version"`
	BuildDate string `json:"build_date"`
	CommitSHA string `json:"commit_sha"`
	GoVersion string `json:"go_version"`
	Platform  string `json:"platform"`
	Arch      string `json:"arch"`
}

// GetVersionInfo returns structured version information
func GetVersionInfo() *VersionInfo {
	return &VersionInfo{
		Version:   Version,
		BuildDate: BuildDate,
		CommitSHA: CommitSHA,
		GoVersion: runtime.Version(),
		Platform:  runtime.GOOS,
		Arch:      runtime.GOARCH,
	}
}

// PrintVersion prints version information in a consistent format
func PrintVersion(toolName string, jsonOutput bool) {
	info := GetVersionInfo()

	if jsonOutput {
		data, err := json.MarshalIndent(map[string]interface{}{
			"tool":         toolName,
			"version_info": info,
		}, "", "  ")
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: Failed to marshal version info to JSON: %v\n", err)
		} else {
			fmt.Println(string(data))
			return
		}
	}

	fmt.Printf("%s v%s\n", toolName, info.Version)
	fmt.Printf("Build Date: %s\n", info.BuildDate)
	if info.CommitSHA != "unknown" && info.CommitSHA != "" {
		fmt.Printf("Commit: %s\n", info.CommitSHA)
	}
	fmt.Printf("Go Version: %s\n", info.GoVersion)
	fmt.Printf("Platform: %s/%s\n", info.Platform, info.Arch)
}

// SatisfiesConstraint reports whether the tool version satisfies a
// SemVer constraint expression such as ">=0.1.0, <1.0.0". Used by the
// --require flag so scripts can pin the tool versions they expect.
func SatisfiesConstraint(expr string) (bool, error) {
	con, err := semver.NewConstraint(expr)
	if err != nil {
		return false, fmt.Errorf("invalid version constraint %q: %w", expr, err)
	}
	v, err := semver.NewVersion(Version)
	if err != nil {
		return false, fmt.Errorf("invalid tool version %q: %w", Version, err)
	}
	return con.Check(v), nil
}

// RequireVersion exits with an error when the tool version does not
// satisfy the given constraint. An empty constraint is a no-op.
func RequireVersion(toolName, expr string) {
	if expr == "" {
		return
	}
	ok, err := SatisfiesConstraint(expr)
	if err != nil {
		ExitWithError("%v", err)
	}
	if !ok {
		ExitWithError("%s v%s does not satisfy required version %q", toolName, Version, expr)
	}
}

// ExitWithError prints an error message and exits with code 1
func ExitWithError(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}

// Logger provides leveled logging for CLI tools
type Logger struct {
	Verbose   bool
	DebugMode bool
}

// NewLogger creates a new logger instance
func NewLogger(verbose, debug bool) *Logger {
	return &Logger{
		Verbose:   verbose,
		DebugMode: debug,
	}
}

// Info logs an info message
func (l *Logger) Info(format string, args ...interface{}) {
	if l.Verbose {
		fmt.Printf("[INFO] %s: %s\n", time.Now().Format("15:04:05"), fmt.Sprintf(format, args...))
	}
}

// Debug logs a debug message
func (l *Logger) Debug(format string, args ...interface{}) {
	if l.DebugMode {
		fmt.Printf("[DEBUG] %s: %s\n", time.Now().Format("15:04:05"), fmt.Sprintf(format, args...))
	}
}

// Warn logs a warning message
func (l *Logger) Warn(format string, args ...interface{}) {
	fmt.Printf("[WARN] %s: %s\n", time.Now().Format("15:04:05"), fmt.Sprintf(format, args...))
}

// Error logs an error message
func (l *Logger) Error(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "[ERROR] %s: %s\n", time.Now().Format("15:04:05"), fmt.Sprintf(format, args...))
}
