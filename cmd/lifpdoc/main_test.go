package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gorewood/lifpdoc/internal/output"
)

const mathSource = `// Arithmetic helpers.
// Operates on numbers.
// ___HEADER_END___
#include "../lifp.h"

/**
 * Adds two numbers.
 * @name math:add
 * @example
 *   (math:add 1 2) ; 3
 */
static int add(void) { return 0; }

/**
 * Subtracts the second number from the first.
 * @name math:sub
 * @example
 *   (math:sub 3 2) ; 1
 */
static int sub(void) { return 0; }
`

const specialsSource = `// Special forms.
// ___HEADER_END___
#include "lifp.h"

/**
 * Binds a value to a symbol.
 * @name def!
 * @example
 *   (def! x 1)
 */
`

// setupRoot lays out a lifp checkout in a temp dir and isolates the
// command from the caller's environment and global config.
func setupRoot(t *testing.T) string {
	t.Helper()

	root := t.TempDir()
	writeFile(t, filepath.Join(root, "lifp", "std", "math.c"), mathSource)
	writeFile(t, filepath.Join(root, "lifp", "specials.c"), specialsSource)

	t.Setenv("LIFPDOC_CONFIG_HOME", t.TempDir())
	t.Setenv("VERSION", "")
	t.Setenv("SHA", "")
	return root
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("MkdirAll() error = %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile(%s) error = %v", path, err)
	}
	return string(data)
}

// execute runs the root command and returns stdout, stderr and the error.
func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	cmd := newRootCmd()
	stdout := new(bytes.Buffer)
	stderr := new(bytes.Buffer)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestRootCommand_Version(t *testing.T) {
	version = "1.2.3"

	stdout, _, err := execute(t, "--version")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if !strings.Contains(stdout, "1.2.3") {
		t.Errorf("--version output should contain version: %q", stdout)
	}
	if !strings.Contains(stdout, "lifpdoc") {
		t.Errorf("--version output should contain 'lifpdoc': %q", stdout)
	}
}

func TestRootCommand_Help(t *testing.T) {
	stdout, _, err := execute(t, "--help")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	for _, expected := range []string{"lifpdoc", "Usage:", "web", "man", "repl", "--json", "--root", "--config"} {
		if !strings.Contains(stdout, expected) {
			t.Errorf("--help output should contain %q: %q", expected, stdout)
		}
	}
}

func TestRootCommand_MissingMode(t *testing.T) {
	root := setupRoot(t)

	_, stderr, err := execute(t, "--root", root)
	if err == nil {
		t.Fatal("expected error without a mode")
	}
	if code := output.GetExitCode(err); code != output.ExitUserError {
		t.Errorf("exit code = %d, want %d", code, output.ExitUserError)
	}
	if stderr != usageMessage+"\n" {
		t.Errorf("stderr = %q, want only the usage line", stderr)
	}
	assertNoOutputs(t, root)
}

func TestRun_ManModeWritesManpage(t *testing.T) {
	root := setupRoot(t)
	var stdout, stderr bytes.Buffer

	code := run([]string{"man", "--root", root}, &stdout, &stderr)
	if code != output.ExitSuccess {
		t.Fatalf("run(man) = %d, stderr: %s", code, stderr.String())
	}

	page := readFile(t, filepath.Join(root, "artifacts", "lifp.1"))
	if !strings.HasPrefix(page, `.TH lifp 1 "v0.0.0" "dev" "lifp manual"`+"\n") {
		t.Errorf("lifp.1 should hold the lifp manual page, got: %q", page)
	}
	if strings.Contains(stdout.String(), ".TH") {
		t.Errorf("stdout should report the write, not print a manual page: %q", stdout.String())
	}
	if !strings.Contains(stdout.String(), "Wrote "+filepath.Join(root, "artifacts", "lifp.1")) {
		t.Errorf("stdout should report the written file: %q", stdout.String())
	}
}

func TestRun_ModesWriteTheirArtifact(t *testing.T) {
	tests := []struct {
		mode string
		file string
	}{
		{mode: "web", file: "docs/index.md"},
		{mode: "man", file: "artifacts/lifp.1"},
		{mode: "repl", file: "artifacts/docs.h"},
	}

	for _, tt := range tests {
		t.Run(tt.mode, func(t *testing.T) {
			root := setupRoot(t)
			var stdout, stderr bytes.Buffer

			if code := run([]string{tt.mode, "--root", root}, &stdout, &stderr); code != output.ExitSuccess {
				t.Fatalf("run(%s) = %d, stderr: %s", tt.mode, code, stderr.String())
			}
			if _, err := os.Stat(filepath.Join(root, tt.file)); err != nil {
				t.Errorf("%s should write %s: %v", tt.mode, tt.file, err)
			}
		})
	}
}

func TestRun_UsageErrorReportedOnce(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{name: "missing mode", args: nil, want: usageMessage},
		{name: "unknown mode", args: []string{"pdf"}, want: unknownModeMessage},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root := setupRoot(t)
			var stdout, stderr bytes.Buffer

			code := run(append(tt.args, "--root", root), &stdout, &stderr)
			if code != output.ExitUserError {
				t.Errorf("exit code = %d, want %d", code, output.ExitUserError)
			}
			if n := strings.Count(stderr.String(), tt.want); n != 1 {
				t.Errorf("%q appears %d times in stderr, want 1: %q", tt.want, n, stderr.String())
			}
			assertNoOutputs(t, root)
		})
	}
}

func TestRun_UnknownFlagExitsUserError(t *testing.T) {
	var stdout, stderr bytes.Buffer

	if code := run([]string{"web", "--out-dir", "x"}, &stdout, &stderr); code != output.ExitUserError {
		t.Errorf("exit code = %d, want %d", code, output.ExitUserError)
	}
	if !strings.Contains(stderr.String(), "out-dir") {
		t.Errorf("stderr should name the unknown flag: %q", stderr.String())
	}
}

func TestRootCommand_JSONFlag_NoMode(t *testing.T) {
	setupRoot(t)

	stdout, _, err := execute(t, "--json")
	if err == nil {
		t.Fatal("expected error when running with --json but no mode")
	}

	var result map[string]any
	if err := json.Unmarshal([]byte(stdout), &result); err != nil {
		t.Fatalf("output should be valid JSON: %v\noutput: %q", err, stdout)
	}
	if result["error"] != usageMessage {
		t.Errorf("error = %v, want %q", result["error"], usageMessage)
	}
	if code, ok := result["code"].(float64); !ok || int(code) != output.ExitUserError {
		t.Errorf("code = %v, want %d", result["code"], output.ExitUserError)
	}
}

func TestRootCommand_InvalidColor(t *testing.T) {
	root := setupRoot(t)

	_, _, err := execute(t, "web", "--root", root, "--color", "sometimes")
	if err == nil {
		t.Fatal("expected error for invalid --color")
	}
	var exitErr *output.ExitError
	if !errors.As(err, &exitErr) {
		t.Fatalf("error should be ExitError, got %T", err)
	}
	assertNoOutputs(t, root)
}

func TestBuildVersion(t *testing.T) {
	tests := []struct {
		name    string
		version string
		commit  string
		date    string
		want    string
	}{
		{name: "plain", version: "dev", commit: "none", date: "unknown", want: "dev"},
		{name: "full", version: "1.0.0", commit: "abcdef123456", date: "2024-01-01", want: "1.0.0 (abcdef1, 2024-01-01)"},
		{name: "short commit", version: "1.0.0", commit: "abc", date: "2024-01-01", want: "1.0.0 (abc, 2024-01-01)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			oldVersion, oldCommit, oldDate := version, commit, date
			t.Cleanup(func() { version, commit, date = oldVersion, oldCommit, oldDate })

			version, commit, date = tt.version, tt.commit, tt.date
			if got := buildVersion(); got != tt.want {
				t.Errorf("buildVersion() = %q, want %q", got, tt.want)
			}
		})
	}
}

// assertNoOutputs fails if any default artifact exists under root.
func assertNoOutputs(t *testing.T, root string) {
	t.Helper()
	for _, rel := range []string{"docs/index.md", "artifacts/lifp.1", "artifacts/docs.h"} {
		if _, err := os.Stat(filepath.Join(root, rel)); err == nil {
			t.Errorf("%s should not have been written", rel)
		}
	}
}
