package editor

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestEditorWithLog(tabStop int) *Editor {
	e := newTestEditor(tabStop)
	e.log = zerolog.Nop()
	e.languages = BuiltinLanguages()
	return e
}

func TestOpenSplitsLinesAndStripsCR(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "sample.txt")
	require.NoError(t, os.WriteFile(path, []byte("first\r\nsecond\nthird"), 0644))

	e := newTestEditorWithLog(4)
	require.NoError(t, e.Open(path))

	assert.Equal(t, []string{"first", "second", "third"}, rowsToStrings(e.rows))
	assert.False(t, e.Dirty())
	assert.Equal(t, path, e.filename)
}

func TestOpenSelectsLanguageFromExtension(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "main.go")
	require.NoError(t, os.WriteFile(path, []byte("package main"), 0644))

	e := newTestEditorWithLog(4)
	require.NoError(t, e.Open(path))

	if assert.NotNil(t, e.syntax) {
		assert.Equal(t, "go", e.syntax.Filetype)
	}
}

func TestSaveWritesRowsWithTrailingNewlines(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.txt")

	e := newTestEditorWithLog(4)
	e.filename = path
	e.insertRow(0, []byte("one"))
	e.insertRow(1, []byte("two"))
	e.dirty = 2

	e.Save()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "one\ntwo\n", string(data))
	assert.False(t, e.Dirty())
}

func TestSaveTruncatesShorterContent(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.txt")
	require.NoError(t, os.WriteFile(path, []byte("a very long original line\n"), 0644))

	e := newTestEditorWithLog(4)
	e.filename = path
	e.insertRow(0, []byte("short"))

	e.Save()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "short\n", string(data))
}

func TestOpenThenSaveRoundTrips(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "roundtrip.txt")
	original := "alpha\nbeta\ngamma\n"
	require.NoError(t, os.WriteFile(path, []byte(original), 0644))

	e := newTestEditorWithLog(4)
	require.NoError(t, e.Open(path))
	e.Save()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, original, string(data))
}
