package envfile

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestRead_NonexistentFile(t *testing.T) {
	vars, err := Read("/nonexistent/.env")
	if err != nil {
		t.Fatalf("expected nil for nonexistent file, got %v", err)
	}
	if len(vars) != 0 {
		t.Errorf("vars = %v, want empty", vars)
	}
}

func TestRead(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".env.local")
	content := "VERSION=v2.0.0\nSHA=abc1234\n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}

	vars, err := Read(path)
	if err != nil {
		t.Fatal(err)
	}
	if got, _ := vars.Lookup("VERSION"); got != "v2.0.0" {
		t.Errorf("VERSION = %q, want %q", got, "v2.0.0")
	}
	if got, _ := vars.Lookup("SHA"); got != "abc1234" {
		t.Errorf("SHA = %q, want %q", got, "abc1234")
	}
}

func TestRead_DoesNotTouchEnvironment(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".env")
	if err := os.WriteFile(path, []byte("TEST_ENVFILE_C=from_file\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	t.Setenv("TEST_ENVFILE_C", "from_env")

	if _, err := Read(path); err != nil {
		t.Fatal(err)
	}
	if got := os.Getenv("TEST_ENVFILE_C"); got != "from_env" {
		t.Errorf("TEST_ENVFILE_C = %q, want %q", got, "from_env")
	}
}

func TestParse(t *testing.T) {
	content := strings.Join([]string{
		"# This is a comment",
		"",
		"A=plain",
		"  # indented comment",
		`B="double quoted"`,
		"C='single quoted'",
		"export D=exported",
		"no equals sign",
		"=novalue",
		"E=first",
		"E=second",
		`F="unbalanced`,
	}, "\n")

	vars, err := Parse(strings.NewReader(content))
	if err != nil {
		t.Fatal(err)
	}

	want := Vars{
		"A": "plain",
		"B": "double quoted",
		"C": "single quoted",
		"D": "exported",
		"E": "second",
		"F": `"unbalanced`,
	}
	if len(vars) != len(want) {
		t.Errorf("vars = %v, want %v", vars, want)
	}
	for key, value := range want {
		if vars[key] != value {
			t.Errorf("%s = %q, want %q", key, vars[key], value)
		}
	}
}

func TestChain(t *testing.T) {
	env := Vars{"VERSION": "", "SHA": "env-sha"}
	local := Vars{"VERSION": "v1.0.0-local"}
	shared := Vars{"VERSION": "v0.9.0", "EXTRA": "x"}

	lookup := Chain(env.Lookup, local.Lookup, shared.Lookup)

	tests := []struct {
		key    string
		want   string
		wantOK bool
	}{
		{key: "VERSION", want: "v1.0.0-local", wantOK: true},
		{key: "SHA", want: "env-sha", wantOK: true},
		{key: "EXTRA", want: "x", wantOK: true},
		{key: "MISSING", want: "", wantOK: false},
	}
	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			got, ok := lookup(tt.key)
			if got != tt.want || ok != tt.wantOK {
				t.Errorf("lookup(%q) = %q, %v; want %q, %v", tt.key, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}
