package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeEnvFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestEnvironmentWinsOverDotfile(t *testing.T) {
	path := writeEnvFile(t, "GARAGE_TEST_KEY=from-file\n")
	t.Setenv("GARAGE_TEST_KEY", "from-env")

	l := Load(path)
	assert.Equal(t, "from-env", l.Get("GARAGE_TEST_KEY"))
}

func TestBlankEnvironmentFallsBackToDotfile(t *testing.T) {
	path := writeEnvFile(t, "GARAGE_TEST_KEY=from-file\n")
	t.Setenv("GARAGE_TEST_KEY", "   ")

	l := Load(path)
	assert.Equal(t, "from-file", l.Get("GARAGE_TEST_KEY"))
}

func TestQuotesAreStripped(t *testing.T) {
	path := writeEnvFile(t, `
DOUBLE="quoted value"
SINGLE='another value'
MIXED="not stripped'
`)
	l := Load(path)
	assert.Equal(t, "quoted value", l.Get("DOUBLE"))
	assert.Equal(t, "another value", l.Get("SINGLE"))
	assert.Equal(t, `"not stripped'`, l.Get("MIXED"))
}

func TestFirstOccurrenceWins(t *testing.T) {
	path := writeEnvFile(t, "KEY=first\nKEY=second\n")
	l := Load(path)
	assert.Equal(t, "first", l.Get("KEY"))
}

func TestCommentsAndMalformedLinesIgnored(t *testing.T) {
	path := writeEnvFile(t, `
# a comment
  # indented comment
no-separator-line
=starts-with-separator
GOOD = value
`)
	l := Load(path)
	assert.Equal(t, "value", l.Get("GOOD"))
	assert.Equal(t, "", l.Get("no-separator-line"))
}

func TestMissingFileIsNotFatal(t *testing.T) {
	l := Load(filepath.Join(t.TempDir(), "does-not-exist"))
	assert.Equal(t, "", l.Get("ANYTHING"))
	assert.Equal(t, "fallback", l.GetOrDefault("ANYTHING", "fallback"))
}

func TestMissingReportsBlankKeys(t *testing.T) {
	path := writeEnvFile(t, "PRESENT=yes\nBLANK=\n")
	l := Load(path)
	assert.Equal(t, []string{"BLANK", "ABSENT"}, l.Missing("PRESENT", "BLANK", "ABSENT"))
	assert.Nil(t, l.Missing("PRESENT"))
}

func TestFirstNonBlank(t *testing.T) {
	path := writeEnvFile(t, "SECONDARY=fallback\n")
	l := Load(path)
	assert.Equal(t, "fallback", l.FirstNonBlank("PRIMARY", "SECONDARY"))

	t.Setenv("PRIMARY", "primary")
	assert.Equal(t, "primary", l.FirstNonBlank("PRIMARY", "SECONDARY"))
	assert.Equal(t, "", l.FirstNonBlank("NOPE", "ALSO_NOPE"))
}
