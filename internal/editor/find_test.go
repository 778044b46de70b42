package editor

import (
	"testing"

	"github.com/cedarwright/vied/internal/term"
	"github.com/stretchr/testify/assert"
)

func TestFindCallbackLandsOnFirstMatch(t *testing.T) {
	e := newTestEditorWithLog(4)
	e.insertRow(0, []byte("apple"))
	e.insertRow(1, []byte("banana"))
	e.insertRow(2, []byte("cherry"))
	e.find = findState{lastMatch: -1, direction: 1}

	e.findCallback([]byte("an"), term.Key('a'))

	assert.Equal(t, 1, e.cy)
	assert.Equal(t, 1, e.cx)
}

func TestFindCallbackArrowDownAdvancesWrapping(t *testing.T) {
	e := newTestEditorWithLog(4)
	e.insertRow(0, []byte("cat"))
	e.insertRow(1, []byte("cat"))
	e.find = findState{lastMatch: -1, direction: 1}

	e.findCallback([]byte("cat"), term.Key('c'))
	assert.Equal(t, 0, e.cy)

	e.findCallback([]byte("cat"), term.ArrowDown)
	assert.Equal(t, 1, e.cy)

	e.findCallback([]byte("cat"), term.ArrowDown)
	assert.Equal(t, 0, e.cy)
}

func TestFindCallbackRestoresHighlightOnNextCall(t *testing.T) {
	e := newTestEditorWithLog(4)
	e.languages = BuiltinLanguages()
	e.insertRow(0, []byte("int x;"))
	e.SelectLanguage("main.c")

	before := make([]Highlight, len(e.rows[0].hl))
	copy(before, e.rows[0].hl)

	e.find = findState{lastMatch: -1, direction: 1}
	e.findCallback([]byte("int"), term.Key('i'))
	assert.Equal(t, HLMatch, e.rows[0].hl[0])

	e.findCallback([]byte(""), term.Esc)
	assert.Equal(t, before, e.rows[0].hl)
}
