// Package editor implements the in-memory document, viewport, renderer, and
// command dispatch for a single-buffer terminal text editor.
package editor

import (
	"time"

	"github.com/rs/zerolog"

	"github.com/cedarwright/vied/internal/term"
)

// Highlight is the lexical category of one rendered byte.
type Highlight int

const (
	HLNormal Highlight = iota
	HLComment
	HLMLComment
	HLKeyword1
	HLKeyword2
	HLString
	HLNumber
	HLMatch
)

// SyntaxFlag toggles optional highlight behaviors for a language.
type SyntaxFlag int

const (
	HighlightNumbers SyntaxFlag = 1 << iota
	HighlightStrings
)

// Syntax is a static language descriptor: display name, filename match
// patterns, keywords, comment delimiters, and feature flags. A keyword
// ending in a literal "|" is a type/KEYWORD2 word (the sentinel is stripped
// before matching); any other keyword is KEYWORD1.
type Syntax struct {
	Filetype              string
	FileMatch             []string
	Keywords              []string
	SingleLineComment     string
	MultiLineCommentStart string
	MultiLineCommentEnd   string
	Flags                 SyntaxFlag
}

// Row is one logical line of the document: the logical bytes (chars), the
// tab-expanded display bytes (render), and a highlight class per rendered
// byte. hlOpenComment records whether the row ends inside an unterminated
// multi-line comment, so the next row's scan can pick up the state.
type Row struct {
	idx           int
	chars         []byte
	render        []byte
	hl            []Highlight
	hlOpenComment bool
}

// Len returns the logical byte length of the row.
func (r *Row) Len() int { return len(r.chars) }

// editor mode: which overlay, if any, currently owns key dispatch.
type mode int

const (
	modeEdit mode = iota
	modeExplorer
	modeHelp
)

const (
	statusMessageTTL = 5 * time.Second
)

// Editor holds the entire state of one open document plus the viewport and
// terminal session driving it. There is exactly one Editor per process.
type Editor struct {
	cx, cy int
	rx     int

	rowOff, colOff         int
	screenRows, screenCols int

	rows  []Row
	dirty int

	filename          string
	statusMessage     string
	statusMessageTime time.Time

	syntax    *Syntax
	languages []Syntax

	mode mode

	tabStop       int
	quitTimesInit int
	quitTimesLeft int

	term *term.Terminal
	log  zerolog.Logger

	// saved state for the find overlay, carried across Prompt callbacks.
	find findState
}

// Options configures a new Editor.
type Options struct {
	TabStop   int
	QuitTimes int
	Languages []Syntax
	Term      *term.Terminal
	Logger    zerolog.Logger
}

// New constructs an Editor in its initial, empty-buffer state. Call Init to
// size the viewport against the live terminal before the first render.
func New(opts Options) *Editor {
	tabStop := opts.TabStop
	if tabStop <= 0 {
		tabStop = 4
	}
	quitTimes := opts.QuitTimes
	if quitTimes <= 0 {
		quitTimes = 2
	}
	return &Editor{
		tabStop:       tabStop,
		quitTimesInit: quitTimes,
		quitTimesLeft: quitTimes,
		languages:     append(BuiltinLanguages(), opts.Languages...),
		term:          opts.Term,
		log:           opts.Logger,
	}
}

// Init queries the terminal window size and reserves the bottom two rows
// for the status and message bars.
func (e *Editor) Init() error {
	rows, cols, err := e.term.WindowSize()
	if err != nil {
		return err
	}
	e.screenRows = rows - 2
	e.screenCols = cols
	return nil
}

// Dirty reports whether the document has unsaved mutations.
func (e *Editor) Dirty() bool { return e.dirty > 0 }

// NumRows returns the number of rows in the document.
func (e *Editor) NumRows() int { return len(e.rows) }
