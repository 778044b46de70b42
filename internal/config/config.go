// Package config loads the optional vied configuration file.
package config

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// Language mirrors the editor's Syntax descriptor so a config file can
// register additional filetypes without a code change. Keywords listed
// under keywords2 are type/KEYWORD2 words; the two lists are merged into
// one at the editor.Syntax boundary with a trailing "|" sentinel marking
// the KEYWORD2 entries, matching editor.Syntax.Keywords.
type Language struct {
	Filetype              string   `toml:"filetype"`
	FileMatch             []string `toml:"filematch"`
	Keywords              []string `toml:"keywords"`
	Keywords2             []string `toml:"keywords2"`
	SingleLineComment     string   `toml:"single_line_comment"`
	MultiLineCommentStart string   `toml:"multiline_comment_start"`
	MultiLineCommentEnd   string   `toml:"multiline_comment_end"`
	HighlightNumbers      bool     `toml:"highlight_numbers"`
	HighlightStrings      bool     `toml:"highlight_strings"`
}

// Config is the parsed shape of the TOML config file. Default returns the
// values used when no file is found.
type Config struct {
	TabStop   int        `toml:"tab_stop"`
	QuitTimes int        `toml:"quit_times"`
	Languages []Language `toml:"languages"`
}

const (
	DefaultTabStop   = 4
	DefaultQuitTimes = 2
)

// Default returns the built-in configuration used when no file is present.
func Default() Config {
	return Config{TabStop: DefaultTabStop, QuitTimes: DefaultQuitTimes}
}

// Load reads and parses path. A missing file is not an error and yields
// Default(); a malformed file is.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config %s: %w", path, err)
	}
	if cfg.TabStop <= 0 {
		cfg.TabStop = DefaultTabStop
	}
	if cfg.QuitTimes <= 0 {
		cfg.QuitTimes = DefaultQuitTimes
	}
	return cfg, nil
}
