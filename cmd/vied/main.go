// Command vied is a small terminal text editor: raw-mode input, a
// row-oriented buffer with single-line syntax highlighting, incremental
// search, and in-place save.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/cedarwright/vied/internal/config"
	"github.com/cedarwright/vied/internal/editor"
	"github.com/cedarwright/vied/internal/logging"
	"github.com/cedarwright/vied/internal/term"
)

func main() {
	configPath := flag.String("config", "", "path to a vied.toml configuration file (default: vied/config.toml under the user config directory)")
	logPath := flag.String("log", "", "path to a debug log file (disabled when empty, since stdout/stderr are owned by the terminal session)")
	flag.Parse()

	path := *configPath
	if path == "" {
		if dir, err := os.UserConfigDir(); err == nil {
			path = filepath.Join(dir, "vied", "config.toml")
		}
	}
	cfg, err := config.Load(path)
	if err != nil {
		fmt.Fprintln(os.Stderr, "vied:", err)
		os.Exit(1)
	}

	logger, closeLog, err := logging.New(*logPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, "vied:", err)
		os.Exit(1)
	}
	defer closeLog()

	t := term.New()
	if !t.IsTerminal() {
		fmt.Fprintln(os.Stderr, "vied: stdin is not a terminal")
		os.Exit(1)
	}
	if err := t.EnableRaw(); err != nil {
		fmt.Fprintln(os.Stderr, "vied: enable raw mode:", err)
		os.Exit(1)
	}
	defer t.DisableRaw()

	e := editor.New(editor.Options{
		TabStop:   cfg.TabStop,
		QuitTimes: cfg.QuitTimes,
		Languages: languagesFromConfig(cfg.Languages),
		Term:      t,
		Logger:    logger,
	})

	if err := e.Init(); err != nil {
		t.DisableRaw()
		fmt.Fprintln(os.Stderr, "vied: query terminal size:", err)
		os.Exit(1)
	}

	if args := flag.Args(); len(args) > 0 {
		if err := e.Open(args[0]); err != nil {
			e.ShowError("%v", err)
		}
	}

	e.SetStatusMessage("HELP: Ctrl-S save | Ctrl-Q quit | Ctrl-F find | Ctrl-O open | Ctrl-G help")
	e.Run()
}

// languagesFromConfig merges each config language's two keyword lists into
// editor.Syntax's single list, appending the "|" sentinel to keywords2
// entries so the highlighter classifies them as KEYWORD2.
func languagesFromConfig(langs []config.Language) []editor.Syntax {
	out := make([]editor.Syntax, 0, len(langs))
	for _, l := range langs {
		keywords := make([]string, 0, len(l.Keywords)+len(l.Keywords2))
		keywords = append(keywords, l.Keywords...)
		for _, kw := range l.Keywords2 {
			keywords = append(keywords, kw+"|")
		}

		var flags editor.SyntaxFlag
		if l.HighlightNumbers {
			flags |= editor.HighlightNumbers
		}
		if l.HighlightStrings {
			flags |= editor.HighlightStrings
		}

		out = append(out, editor.Syntax{
			Filetype:              l.Filetype,
			FileMatch:             l.FileMatch,
			Keywords:              keywords,
			SingleLineComment:     l.SingleLineComment,
			MultiLineCommentStart: l.MultiLineCommentStart,
			MultiLineCommentEnd:   l.MultiLineCommentEnd,
			Flags:                 flags,
		})
	}
	return out
}
