//go:build integration

package integration

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"os/exec"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// TestConfig holds configuration for integration tests.
type TestConfig struct {
	API        string
	SecretKey  string
	BinaryPath string
	Verbose    bool
}

// LoadTestConfig loads configuration from environment variables.
func LoadTestConfig() *TestConfig {
	return &TestConfig{
		API:        os.Getenv("PAYAPI_API"),
		SecretKey:  os.Getenv("PAYAPI_SECRET_KEY"),
		BinaryPath: getBinaryPath(),
		Verbose:    os.Getenv("PAYAPI_VERBOSE") == "true",
	}
}

func getBinaryPath() string {
	if path := os.Getenv("PAYAPI_BINARY_PATH"); path != "" {
		return path
	}

	for _, candidate := range []string{"../../payapi", "./payapi", "../payapi"} {
		if _, err := os.Stat(candidate); err == nil {
			return candidate
		}
	}

	return "payapi"
}

// SkipIfMissingConfig skips the test unless a test mode key and the binary
// are available. Live keys are never used.
func (config *TestConfig) SkipIfMissingConfig(t *testing.T) {
	t.Helper()

	if !strings.HasPrefix(config.SecretKey, "sk_test_") {
		t.Skip("PAYAPI_SECRET_KEY is not a test mode key, skipping integration test")
	}

	if _, err := exec.LookPath(config.BinaryPath); err != nil {
		t.Skipf("payapi binary not found at %s, skipping integration test", config.BinaryPath)
	}
}

// CommandRunner runs the payapi binary with an isolated config file.
type CommandRunner struct {
	config     *TestConfig
	configFile string
	t          *testing.T
}

// NewCommandRunner creates a new command runner.
func NewCommandRunner(config *TestConfig, t *testing.T) *CommandRunner {
	t.Helper()

	return &CommandRunner{
		config:     config,
		configFile: t.TempDir() + "/config.yml",
		t:          t,
	}
}

func (runner *CommandRunner) command(args []string) *exec.Cmd {
	full := []string{"--config", runner.configFile}
	if runner.config.API != "" {
		full = append(full, "--api", runner.config.API)
	}

	cmd := exec.Command(runner.config.BinaryPath, append(full, args...)...)
	cmd.Env = append(os.Environ(), "PAYAPI_SECRET_KEY="+runner.config.SecretKey)

	if runner.config.Verbose {
		runner.t.Logf("Running: %s %s", runner.config.BinaryPath, strings.Join(args, " "))
	}

	return cmd
}

// Run executes a payapi command and returns its output.
func (runner *CommandRunner) Run(args ...string) (stdout, stderr string, err error) {
	return runner.RunWithInput("", args...)
}

// RunWithInput executes a payapi command with stdin input.
func (runner *CommandRunner) RunWithInput(input string, args ...string) (stdout, stderr string, err error) {
	cmd := runner.command(args)

	var stdoutBuf, stderrBuf bytes.Buffer

	cmd.Stdout = &stdoutBuf
	cmd.Stderr = &stderrBuf
	cmd.Stdin = strings.NewReader(input)

	err = cmd.Run()
	stdout = stdoutBuf.String()
	stderr = stderrBuf.String()

	if runner.config.Verbose && err != nil {
		runner.t.Logf("Command failed: %v\nStdout: %s\nStderr: %s", err, stdout, stderr)
	}

	return stdout, stderr, err
}

// RunJSON executes a command with JSON output and decodes the result into out.
func (runner *CommandRunner) RunJSON(out any, args ...string) {
	runner.t.Helper()

	stdout, stderr, err := runner.Run(append(args, "--output", "json")...)
	require.NoError(runner.t, err, "payapi %s: %s", strings.Join(args, " "), stderr)
	require.NoError(runner.t, json.Unmarshal([]byte(stdout), out), "output is not JSON: %s", stdout)
}

// GenerateTestName creates a unique test resource name.
func GenerateTestName(prefix string) string {
	return fmt.Sprintf("%s-%d", prefix, time.Now().UnixNano())
}

// CleanupResource attempts to delete a test resource.
func (runner *CommandRunner) CleanupResource(resourceType, id string) {
	var args []string

	switch resourceType {
	case "customer":
		args = []string{"customers", "delete", id, "--force"}
	case "invoice":
		args = []string{"invoices", "delete", id, "--force"}
	case "test-clock":
		args = []string{"test-clocks", "delete", id, "--force"}
	default:
		runner.t.Logf("Unknown resource type for cleanup: %s", resourceType)

		return
	}

	stdout, stderr, err := runner.Run(args...)
	if err != nil && runner.config.Verbose {
		runner.t.Logf("Cleanup warning for %s %s: %s\nStderr: %s", resourceType, id, stdout, stderr)
	}
}

// WaitForCondition waits for a condition to be met with timeout.
func WaitForCondition(t *testing.T, condition func() bool, timeout time.Duration, message string) {
	t.Helper()

	ticker := time.NewTicker(2 * time.Second)
	defer ticker.Stop()

	timeoutChan := time.After(timeout)

	for {
		select {
		case <-ticker.C:
			if condition() {
				return
			}
		case <-timeoutChan:
			t.Fatalf("Timeout waiting for condition: %s", message)
		}
	}
}
