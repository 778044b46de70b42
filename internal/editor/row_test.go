package editor

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func newTestEditor(tabStop int) *Editor {
	return &Editor{tabStop: tabStop, quitTimesInit: 2, quitTimesLeft: 2}
}

func TestRowUpdateExpandsTabsVerbatim(t *testing.T) {
	e := newTestEditor(4)
	row := Row{chars: []byte("a\tb")}
	row.update(e)

	assert.Equal(t, "a   b", string(row.render))
}

func TestRowUpdateCopiesControlBytesVerbatim(t *testing.T) {
	e := newTestEditor(4)
	row := Row{chars: []byte{'a', 0x01, 'b'}}
	row.update(e)

	assert.Equal(t, []byte{'a', 0x01, 'b'}, row.render)
}

func TestCxToRxTabsOnly(t *testing.T) {
	row := Row{chars: []byte("ab\tc")}
	assert.Equal(t, 0, row.cxToRx(4, 0))
	assert.Equal(t, 2, row.cxToRx(4, 2))
	assert.Equal(t, 4, row.cxToRx(4, 3)) // tab at col 2 expands to col 4
	assert.Equal(t, 5, row.cxToRx(4, 4))
}

func TestCxToRxControlByteIsWidthOne(t *testing.T) {
	row := Row{chars: []byte{'a', 0x01, 'b'}}
	assert.Equal(t, 1, row.cxToRx(4, 1))
	assert.Equal(t, 2, row.cxToRx(4, 2))
	assert.Equal(t, 3, row.cxToRx(4, 3))
}

func TestRxToCxRoundTripsWithTabs(t *testing.T) {
	row := Row{chars: []byte("ab\tcd")}
	for cx := 0; cx <= row.Len(); cx++ {
		rx := row.cxToRx(4, cx)
		got := row.rxToCx(4, rx)
		assert.Equalf(t, cx, got, "rxToCx(cxToRx(%d)) = %d, want %d", cx, got, cx)
	}
}

func TestInsertRowRenumbersIdx(t *testing.T) {
	e := newTestEditor(4)
	e.insertRow(0, []byte("first"))
	e.insertRow(1, []byte("second"))
	e.insertRow(1, []byte("middle"))

	assert.Equal(t, []string{"first", "middle", "second"}, rowsToStrings(e.rows))
	for i, r := range e.rows {
		assert.Equal(t, i, r.idx)
	}
}

func TestDeleteRowRenumbersIdx(t *testing.T) {
	e := newTestEditor(4)
	e.insertRow(0, []byte("a"))
	e.insertRow(1, []byte("b"))
	e.insertRow(2, []byte("c"))

	e.deleteRow(1)

	assert.Equal(t, []string{"a", "c"}, rowsToStrings(e.rows))
	assert.Equal(t, 0, e.rows[0].idx)
	assert.Equal(t, 1, e.rows[1].idx)
}

func TestInsertCharOnVirtualTailRowCreatesRow(t *testing.T) {
	e := newTestEditor(4)
	e.cy, e.cx = 0, 0

	e.InsertChar('x')

	assert.Equal(t, 1, len(e.rows))
	assert.Equal(t, "x", string(e.rows[0].chars))
	assert.Equal(t, 1, e.cx)
}

func TestInsertNewlineSplitsAtCursor(t *testing.T) {
	e := newTestEditor(4)
	e.insertRow(0, []byte("hello world"))
	e.cy, e.cx = 0, 5

	e.InsertNewline()

	assert.Equal(t, []string{"hello", " world"}, rowsToStrings(e.rows))
	assert.Equal(t, 1, e.cy)
	assert.Equal(t, 0, e.cx)
}

func TestDeleteCharJoinsRowsAtColumnZero(t *testing.T) {
	e := newTestEditor(4)
	e.insertRow(0, []byte("foo"))
	e.insertRow(1, []byte("bar"))
	e.cy, e.cx = 1, 0

	e.DeleteChar()

	assert.Equal(t, []string{"foobar"}, rowsToStrings(e.rows))
	assert.Equal(t, 0, e.cy)
	assert.Equal(t, 3, e.cx)
}

func TestDeleteCharNoopAtDocumentStart(t *testing.T) {
	e := newTestEditor(4)
	e.insertRow(0, []byte("abc"))
	e.cy, e.cx = 0, 0

	e.DeleteChar()

	assert.Equal(t, "abc", string(e.rows[0].chars))
}

func rowsToStrings(rows []Row) []string {
	out := make([]string, len(rows))
	for i, r := range rows {
		out[i] = string(r.chars)
	}
	return out
}
