package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSeed = `
requirements:
  - name: slug
    base: string
    rules:
      - non_empty
      - max_len: 8
      - pattern: '^[a-z-]+$'
`

func writeSeed(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "invis.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	// keep the working directory's invis.yaml out of the tests
	t.Setenv("INVIS_SEED_FILE", filepath.Join(t.TempDir(), "absent.yaml"))

	cmd := newRootCmd()
	stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestList(t *testing.T) {
	out, _, err := run(t, "list")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "NAME"))
	for _, name := range []string{"int", "float", "callable", "natural", "uuid"} {
		assert.Contains(t, out, "\n"+name+" ")
	}

	out, _, err = run(t, "list", "--seed", writeSeed(t, testSeed))
	require.NoError(t, err)
	assert.Contains(t, out, "\nslug ")
}

func TestDescribe(t *testing.T) {
	out, _, err := run(t, "describe", "--seed", writeSeed(t, testSeed), "slug")
	require.NoError(t, err)
	assert.Contains(t, out, "name: slug\n")
	assert.Contains(t, out, "kind: composite\n")
	assert.Contains(t, out, "chain: [string, slug]\n")
	assert.Contains(t, out, "requirement: slug")
	assert.Contains(t, out, "max_len(max=8)")

	_, _, err = run(t, "describe", "nope")
	assert.Error(t, err)
}

func TestCheck(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		wantErr bool
		want    string
	}{
		{"accepted int", []string{"check", "natural", "3"}, false, "ok: natural accepts 3 (int)"},
		{"zero", []string{"check", "natural", "0"}, true, "positive: must be > 0"},
		{"float for natural", []string{"check", "natural", "1.5"}, true, "expected natural, got float64"},
		{"quoted number", []string{"check", "int", `"1"`}, true, "got string"},
		{"list", []string{"check", "list", "[1, 2]"}, false, "ok: list accepts [1 2] ([]interface {})"},
		{"null", []string{"check", "any", "null"}, true, "got nil"},
		{"uuid string", []string{"check", "uuid_string", "7d444840-9dc0-11d1-b245-5ffdce74fad2"}, false, "ok: uuid_string"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, _, err := run(t, tt.args...)
			if tt.wantErr {
				assert.ErrorIs(t, err, errCheckFailed)
			} else {
				assert.NoError(t, err)
			}
			assert.Contains(t, out, tt.want)
		})
	}

	t.Run("explain lists every failing rule", func(t *testing.T) {
		out, _, err := run(t, "check", "--explain", "--seed", writeSeed(t, testSeed), "slug", "Not A Slug")
		assert.ErrorIs(t, err, errCheckFailed)
		assert.Contains(t, out, "  - max_len:")
		assert.Contains(t, out, "  - pattern:")
	})

	t.Run("unknown requirement", func(t *testing.T) {
		_, _, err := run(t, "check", "integer", "1")
		assert.Error(t, err)
		assert.NotErrorIs(t, err, errCheckFailed)
	})
}

func TestSeedValidate(t *testing.T) {
	out, _, err := run(t, "seed", "validate", writeSeed(t, testSeed))
	require.NoError(t, err)
	assert.Contains(t, out, "1 requirements ok")

	_, _, err = run(t, "seed", "validate", writeSeed(t, "requirements:\n  - name: x\n    base: nope\n"))
	assert.Error(t, err)

	_, _, err = run(t, "seed", "validate", filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestRules(t *testing.T) {
	out, _, err := run(t, "rules")
	require.NoError(t, err)
	assert.Contains(t, out, "between\n")
	assert.Contains(t, out, "pattern\n")
}

func TestFlags(t *testing.T) {
	t.Run("explicit seed must exist", func(t *testing.T) {
		_, _, err := run(t, "list", "--seed", filepath.Join(t.TempDir(), "missing.yaml"))
		assert.Error(t, err)
	})

	t.Run("invalid log level", func(t *testing.T) {
		_, _, err := run(t, "list", "--log-level", "loud")
		assert.Error(t, err)
	})

	t.Run("debug logs go to stderr with the command name", func(t *testing.T) {
		_, stderr, err := run(t, "list", "--log-level", "debug", "--log-format", "json")
		require.NoError(t, err)
		assert.Contains(t, stderr, `"msg":"Registry ready."`)
		assert.Contains(t, stderr, `"command":"list"`)
	})
}
