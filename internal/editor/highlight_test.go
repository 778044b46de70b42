package editor

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSelectLanguageMatchesExtensionExactly(t *testing.T) {
	e := newTestEditor(4)
	e.languages = BuiltinLanguages()
	e.insertRow(0, []byte("x = 42; // note"))

	e.SelectLanguage("main.c")

	if assert.NotNil(t, e.syntax) {
		assert.Equal(t, "c", e.syntax.Filetype)
	}
}

func TestSelectLanguageNoMatchClearsSyntax(t *testing.T) {
	e := newTestEditor(4)
	e.languages = BuiltinLanguages()
	e.SelectLanguage("README.md")

	assert.Nil(t, e.syntax)
}

func TestUpdateSyntaxHighlightsNumberAndComment(t *testing.T) {
	e := newTestEditor(4)
	e.languages = BuiltinLanguages()
	e.insertRow(0, []byte("x = 42; // note"))
	e.SelectLanguage("main.c")

	row := &e.rows[0]
	assert.Equal(t, HLNumber, row.hl[4])  // '4' in 42
	assert.Equal(t, HLNumber, row.hl[5])  // '2' in 42
	for i := 8; i < len(row.hl); i++ {
		assert.Equalf(t, HLComment, row.hl[i], "index %d should be a comment", i)
	}
}

func TestUpdateSyntaxKeyword1AndKeyword2(t *testing.T) {
	e := newTestEditor(4)
	e.languages = BuiltinLanguages()
	e.insertRow(0, []byte("int x; return x;"))
	e.SelectLanguage("main.c")

	row := &e.rows[0]
	assert.Equal(t, HLKeyword2, row.hl[0]) // "int" is KEYWORD2
	// "return" starts after "int x; "
	assert.Equal(t, HLKeyword1, row.hl[7])
}

func TestUpdateSyntaxStringWithEscape(t *testing.T) {
	e := newTestEditor(4)
	e.languages = BuiltinLanguages()
	e.insertRow(0, []byte(`"a\"b"`))
	e.SelectLanguage("main.c")

	row := &e.rows[0]
	for i := range row.hl {
		assert.Equalf(t, HLString, row.hl[i], "index %d should be string", i)
	}
}

func TestUpdateSyntaxMultiLineCommentCarriesAcrossRows(t *testing.T) {
	e := newTestEditor(4)
	e.languages = BuiltinLanguages()
	e.insertRow(0, []byte("/* start"))
	e.insertRow(1, []byte("still comment */"))
	e.insertRow(2, []byte("int x;"))
	e.SelectLanguage("main.c")

	assert.True(t, e.rows[0].hlOpenComment)
	for _, hl := range e.rows[1].hl[:len("still comment")] {
		assert.Equal(t, HLMLComment, hl)
	}
	assert.False(t, e.rows[1].hlOpenComment)
	assert.Equal(t, HLKeyword2, e.rows[2].hl[0])
}

func TestMatchKeywordStripsSentinelAndRespectsBoundary(t *testing.T) {
	kw, kind := matchKeyword([]string{"int|"}, []byte("interface"))
	assert.Equal(t, "", kw)
	assert.Equal(t, Highlight(0), kind)

	kw, kind = matchKeyword([]string{"int|"}, []byte("int x"))
	assert.Equal(t, "int", kw)
	assert.Equal(t, HLKeyword2, kind)
}
