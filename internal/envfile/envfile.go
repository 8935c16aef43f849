// Package envfile reads variables from .env files without touching the
// process environment.
package envfile

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// Vars holds the variables of one env file.
type Vars map[string]string

// Lookup reports the value of key.
func (v Vars) Lookup(key string) (string, bool) {
	value, ok := v[key]
	return value, ok
}

// Read parses the env file at path.
// A missing file yields empty Vars and no error.
func Read(path string) (Vars, error) {
	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Vars{}, nil
		}
		return nil, fmt.Errorf("opening env file %s: %w", path, err)
	}
	defer file.Close() //nolint:errcheck // best-effort close on read-only file

	vars, err := Parse(file)
	if err != nil {
		return nil, fmt.Errorf("reading env file %s: %w", path, err)
	}
	return vars, nil
}

// Parse reads KEY=VALUE lines. Blank lines, comments and lines without '='
// are skipped; later assignments replace earlier ones.
func Parse(r io.Reader) (Vars, error) {
	vars := Vars{}
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		key, value, ok := parseEnvLine(line)
		if !ok {
			continue
		}
		vars[key] = value
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return vars, nil
}

// parseEnvLine extracts KEY=VALUE from a line.
// Handles an optional export prefix and matching quotes around the value.
func parseEnvLine(line string) (key, value string, ok bool) {
	key, value, found := strings.Cut(line, "=")
	if !found {
		return "", "", false
	}

	key = strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(key), "export "))
	value = strings.TrimSpace(value)
	if key == "" {
		return "", "", false
	}

	if len(value) >= 2 {
		if (value[0] == '"' && value[len(value)-1] == '"') ||
			(value[0] == '\'' && value[len(value)-1] == '\'') {
			value = value[1 : len(value)-1]
		}
	}

	return key, value, true
}

// Chain combines lookups in priority order. The first non-empty value wins,
// so an empty variable in the environment falls through to the files.
func Chain(lookups ...func(string) (string, bool)) func(string) (string, bool) {
	return func(key string) (string, bool) {
		for _, lookup := range lookups {
			if value, ok := lookup(key); ok && value != "" {
				return value, true
			}
		}
		return "", false
	}
}
