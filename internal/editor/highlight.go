package editor

import (
	"bytes"
	"strings"
)

// BuiltinLanguages returns the static language table shipped with the
// editor. Keywords ending in "|" are KEYWORD2 (types); others are KEYWORD1.
func BuiltinLanguages() []Syntax {
	return []Syntax{
		{
			Filetype:  "c",
			FileMatch: []string{".c", ".h", ".cpp"},
			Keywords: []string{
				"switch", "if", "while", "for", "break", "continue", "return", "else",
				"struct", "union", "typedef", "static", "enum", "class", "case",
				"int|", "long|", "double|", "float|", "char|", "unsigned|", "signed|", "void|",
			},
			SingleLineComment:     "//",
			MultiLineCommentStart: "/*",
			MultiLineCommentEnd:   "*/",
			Flags:                 HighlightNumbers | HighlightStrings,
		},
		{
			Filetype:  "go",
			FileMatch: []string{".go"},
			Keywords: []string{
				"break", "case", "chan", "const", "continue", "default", "defer", "else",
				"fallthrough", "for", "go", "goto", "if", "import", "map", "package",
				"range", "return", "select", "struct", "switch", "type", "var",
				"interface|", "func|",
			},
			SingleLineComment:     "//",
			MultiLineCommentStart: "/*",
			MultiLineCommentEnd:   "*/",
			Flags:                 HighlightNumbers | HighlightStrings,
		},
	}
}

// separators terminate a keyword or number scan, in addition to whitespace
// and end-of-row.
const separators = ",.()+-/*=~%<>[];"

func isSeparator(c byte) bool {
	if c == ' ' || c == '\t' || c == '\n' || c == '\r' || c == 0 {
		return true
	}
	return strings.IndexByte(separators, c) >= 0
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

// SelectLanguage scans the language table for the first descriptor whose
// file-match patterns fit filename, and re-highlights every row against it.
// A pattern beginning with "." matches the extension exactly; otherwise it
// matches as a substring of filename. Unmatched clears the active language.
func (e *Editor) SelectLanguage(filename string) {
	e.syntax = nil
	if filename == "" {
		return
	}

	ext := ""
	if dot := strings.LastIndex(filename, "."); dot != -1 {
		ext = filename[dot:]
	}

	for i := range e.languages {
		s := &e.languages[i]
		for _, pattern := range s.FileMatch {
			isExt := len(pattern) > 0 && pattern[0] == '.'
			matched := (isExt && ext != "" && ext == pattern) ||
				(!isExt && strings.Contains(filename, pattern))
			if !matched {
				continue
			}
			e.syntax = s
			for i := range e.rows {
				e.rows[i].update(e)
			}
			return
		}
	}
}

// updateSyntax recomputes this row's highlight vector from render, per the
// single-pass scanner: comments end the row, strings and numbers are
// scanned conditionally on the active language's flags, and keywords match
// at word boundaries (prevSep).
func (row *Row) updateSyntax(e *Editor) {
	row.hl = make([]Highlight, len(row.render))

	if e.syntax == nil {
		row.hlOpenComment = false
		return
	}
	syn := e.syntax

	scs := []byte(syn.SingleLineComment)
	mcs := []byte(syn.MultiLineCommentStart)
	mce := []byte(syn.MultiLineCommentEnd)

	prevSep := true
	var inString byte
	inComment := row.idx > 0 && row.idx-1 < len(e.rows) && e.rows[row.idx-1].hlOpenComment

	render := row.render
	for i := 0; i < len(render); {
		c := render[i]
		prevHl := HLNormal
		if i > 0 {
			prevHl = row.hl[i-1]
		}

		if len(mcs) > 0 && len(mce) > 0 && inString == 0 {
			if inComment {
				row.hl[i] = HLMLComment
				if bytes.HasPrefix(render[i:], mce) {
					for j := 0; j < len(mce) && i+j < len(render); j++ {
						row.hl[i+j] = HLMLComment
					}
					i += len(mce)
					inComment = false
					prevSep = true
					continue
				}
				i++
				continue
			} else if bytes.HasPrefix(render[i:], mcs) {
				for j := 0; j < len(mcs) && i+j < len(render); j++ {
					row.hl[i+j] = HLMLComment
				}
				i += len(mcs)
				inComment = true
				continue
			}
		}

		if len(scs) > 0 && inString == 0 && !inComment {
			if bytes.HasPrefix(render[i:], scs) {
				for j := i; j < len(render); j++ {
					row.hl[j] = HLComment
				}
				break
			}
		}

		if syn.Flags&HighlightStrings != 0 {
			if inString != 0 {
				row.hl[i] = HLString
				if c == '\\' && i+1 < len(render) {
					row.hl[i+1] = HLString
					i += 2
					continue
				}
				if c == inString {
					inString = 0
				}
				i++
				prevSep = true
				continue
			} else if c == '"' || c == '\'' {
				inString = c
				row.hl[i] = HLString
				i++
				continue
			}
		}

		if syn.Flags&HighlightNumbers != 0 {
			if (isDigit(c) && (prevSep || prevHl == HLNumber)) || (c == '.' && prevHl == HLNumber) {
				row.hl[i] = HLNumber
				i++
				prevSep = false
				continue
			}
		}

		if prevSep {
			if kw, kind := matchKeyword(syn.Keywords, render[i:]); kw != "" {
				for k := 0; k < len(kw); k++ {
					row.hl[i+k] = kind
				}
				i += len(kw)
				prevSep = false
				continue
			}
		}

		prevSep = isSeparator(c)
		i++
	}

	changed := row.hlOpenComment != inComment
	row.hlOpenComment = inComment
	if changed && row.idx+1 < len(e.rows) {
		e.rows[row.idx+1].updateSyntax(e)
	}
}

// matchKeyword returns the keyword (sentinel stripped) matching the start of
// s at a word boundary, and its highlight class, or ("", 0) if none match.
func matchKeyword(keywords []string, s []byte) (string, Highlight) {
	for _, kw := range keywords {
		kind := HLKeyword1
		word := kw
		if strings.HasSuffix(word, "|") {
			kind = HLKeyword2
			word = word[:len(word)-1]
		}
		if !bytes.HasPrefix(s, []byte(word)) {
			continue
		}
		end := len(word)
		if end < len(s) && !isSeparator(s[end]) {
			continue
		}
		return word, kind
	}
	return "", 0
}

// SGR foreground color codes per highlight class, per spec's color mapping.
const (
	sgrComment  = 36
	sgrKeyword1 = 33
	sgrKeyword2 = 32
	sgrString   = 35
	sgrNumber   = 31
	sgrMatch    = 34
	sgrDefault  = 39
)

func sgrColor(hl Highlight) int {
	switch hl {
	case HLComment, HLMLComment:
		return sgrComment
	case HLKeyword1:
		return sgrKeyword1
	case HLKeyword2:
		return sgrKeyword2
	case HLString:
		return sgrString
	case HLNumber:
		return sgrNumber
	case HLMatch:
		return sgrMatch
	default:
		return sgrDefault
	}
}
