package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileReturnsDefault(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "does-not-exist.toml"))

	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadEmptyPathReturnsDefault(t *testing.T) {
	cfg, err := Load("")

	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadParsesLanguagesAndOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "vied.toml")
	contents := `
tab_stop = 2
quit_times = 1

[[languages]]
filetype = "rust"
filematch = [".rs"]
keywords = ["fn", "let", "mut"]
keywords2 = ["i32", "String"]
single_line_comment = "//"
highlight_numbers = true
highlight_strings = true
`
	require.NoError(t, os.WriteFile(path, []byte(contents), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 2, cfg.TabStop)
	assert.Equal(t, 1, cfg.QuitTimes)
	require.Len(t, cfg.Languages, 1)
	assert.Equal(t, "rust", cfg.Languages[0].Filetype)
	assert.Equal(t, []string{"i32", "String"}, cfg.Languages[0].Keywords2)
}

func TestLoadMalformedFileIsError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "vied.toml")
	require.NoError(t, os.WriteFile(path, []byte("tab_stop = [this is not valid"), 0644))

	_, err := Load(path)

	assert.Error(t, err)
}

func TestLoadClampsNonPositiveOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "vied.toml")
	require.NoError(t, os.WriteFile(path, []byte("tab_stop = 0\nquit_times = -1\n"), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, DefaultTabStop, cfg.TabStop)
	assert.Equal(t, DefaultQuitTimes, cfg.QuitTimes)
}
