// Package buffer implements the row-based text document: raw content, tab
// expansion, highlight projections and persistence.
package buffer

import (
	"bytes"
	"errors"
	"strings"

	"github.com/alecthomas/chroma/v2/lexers"

	"kilo/internal/syntax"
)

var ErrNoFilename = errors.New("no filename")

// Document is an ordered sequence of rows plus the file it came from.
type Document struct {
	rows     []Row
	dirty    int
	filename string
	syntax   *syntax.Definition
	tabStop  int
}

// New returns an empty, unnamed document. A non-positive tabStop selects
// DefaultTabStop.
func New(tabStop int) *Document {
	if tabStop <= 0 {
		tabStop = DefaultTabStop
	}
	return &Document{tabStop: tabStop}
}

// Load replaces the content with lines and clears the dirty counter.
func (d *Document) Load(lines []string) {
	d.rows = make([]Row, len(lines))
	for i, ln := range lines {
		d.rows[i] = Row{idx: i, chars: []byte(ln)}
		d.rows[i].render = renderChars(nil, d.rows[i].chars, d.tabStop)
	}
	d.rehighlight()
	d.dirty = 0
}

func (d *Document) NumRows() int { return len(d.rows) }
func (d *Document) TabStop() int { return d.tabStop }

// Row returns the row at i, or nil when i is out of range.
func (d *Document) Row(i int) *Row {
	if i < 0 || i >= len(d.rows) {
		return nil
	}
	return &d.rows[i]
}

// RowSize is the length of row i, zero for rows past the end.
func (d *Document) RowSize(i int) int {
	if r := d.Row(i); r != nil {
		return r.Size()
	}
	return 0
}

// Dirty is the number of mutations since the last load or save.
func (d *Document) Dirty() int { return d.dirty }

func (d *Document) Filename() string { return d.filename }

// SetFilename binds the document to path and re-selects its syntax.
func (d *Document) SetFilename(path string) {
	d.filename = path
	d.SetSyntax(syntax.Select(path))
}

func (d *Document) Syntax() *syntax.Definition { return d.syntax }

// SetSyntax switches the definition and re-highlights every row.
func (d *Document) SetSyntax(def *syntax.Definition) {
	d.syntax = def
	d.rehighlight()
}

// FileType names the document's language for display.
func (d *Document) FileType() string {
	if d.syntax != nil {
		return d.syntax.Name
	}
	if d.filename == "" {
		return ""
	}
	if l := lexers.Match(d.filename); l != nil {
		return strings.ToLower(l.Config().Name)
	}
	return ""
}

// InsertRow inserts a new row holding text before row at. at may equal
// NumRows to append.
func (d *Document) InsertRow(at int, text []byte) {
	if at < 0 || at > len(d.rows) {
		return
	}
	// The new row starts with the comment state its successor was last
	// highlighted with, so the cascade only runs when that changes.
	r := Row{chars: append([]byte(nil), text...), open: at > 0 && d.rows[at-1].open}
	d.rows = append(d.rows, Row{})
	copy(d.rows[at+1:], d.rows[at:])
	d.rows[at] = r
	d.renumber(at)
	d.update(at)
	d.dirty++
}

// DeleteRow removes row at.
func (d *Document) DeleteRow(at int) {
	if at < 0 || at >= len(d.rows) {
		return
	}
	removedOpen := d.rows[at].open
	d.rows = append(d.rows[:at], d.rows[at+1:]...)
	d.renumber(at)
	d.dirty++
	if at < len(d.rows) {
		prevOpen := at > 0 && d.rows[at-1].open
		if prevOpen != removedOpen {
			d.cascade(at)
		}
	}
}

// InsertChar inserts c into row before column col.
func (d *Document) InsertChar(row, col int, c byte) {
	r := d.Row(row)
	if r == nil {
		return
	}
	col = clamp(col, 0, len(r.chars))
	r.chars = append(r.chars, 0)
	copy(r.chars[col+1:], r.chars[col:])
	r.chars[col] = c
	d.update(row)
	d.dirty++
}

// DeleteChar deletes the character before col. At column zero the row is
// joined onto the previous one. It returns the resulting cursor position.
func (d *Document) DeleteChar(row, col int) (int, int) {
	r := d.Row(row)
	if r == nil {
		return row, col
	}
	col = clamp(col, 0, len(r.chars))
	if col == 0 {
		if row == 0 {
			return 0, 0
		}
		prevLen := d.rows[row-1].Size()
		d.AppendText(row-1, r.chars)
		d.DeleteRow(row)
		return row - 1, prevLen
	}
	copy(r.chars[col-1:], r.chars[col:])
	r.chars = r.chars[:len(r.chars)-1]
	d.update(row)
	d.dirty++
	return row, col - 1
}

// SplitRow moves everything from col onwards into a new row below.
func (d *Document) SplitRow(row, col int) {
	r := d.Row(row)
	if r == nil {
		return
	}
	col = clamp(col, 0, len(r.chars))
	d.InsertRow(row+1, r.chars[col:])
	r = &d.rows[row]
	r.chars = r.chars[:col]
	d.update(row)
	d.dirty++
}

// AppendText appends text to the end of row.
func (d *Document) AppendText(row int, text []byte) {
	r := d.Row(row)
	if r == nil {
		return
	}
	r.chars = append(r.chars, text...)
	d.update(row)
	d.dirty++
}

// Bytes serializes the document: every row followed by a newline.
func (d *Document) Bytes() []byte {
	n := 0
	for i := range d.rows {
		n += len(d.rows[i].chars) + 1
	}
	var b bytes.Buffer
	b.Grow(n)
	for i := range d.rows {
		b.Write(d.rows[i].chars)
		b.WriteByte('\n')
	}
	return b.Bytes()
}

// RenderColumn maps a character column of row to its render column.
func (d *Document) RenderColumn(row, cx int) int {
	r := d.Row(row)
	if r == nil {
		return 0
	}
	return CharToRender(r.chars, cx, d.tabStop)
}

// CharColumn maps a render column of row back to its character column.
func (d *Document) CharColumn(row, rx int) int {
	r := d.Row(row)
	if r == nil {
		return 0
	}
	return RenderToChar(r.chars, rx, d.tabStop)
}

// Overlay tags render columns [start, end) of row with c and returns a copy
// of the previous highlight for RestoreHighlight.
func (d *Document) Overlay(row, start, end int, c syntax.Class) []syntax.Class {
	r := d.Row(row)
	if r == nil {
		return nil
	}
	saved := append([]syntax.Class(nil), r.hl...)
	start = clamp(start, 0, len(r.hl))
	end = clamp(end, start, len(r.hl))
	for i := start; i < end; i++ {
		r.hl[i] = c
	}
	return saved
}

// RestoreHighlight puts back a highlight saved by Overlay. It is ignored
// when the row has been re-rendered to a different width since.
func (d *Document) RestoreHighlight(row int, saved []syntax.Class) {
	r := d.Row(row)
	if r == nil || len(saved) != len(r.hl) {
		return
	}
	copy(r.hl, saved)
}

// update rebuilds row at's render and highlight.
func (d *Document) update(at int) {
	r := &d.rows[at]
	r.render = renderChars(r.render, r.chars, d.tabStop)
	d.cascade(at)
}

// cascade highlights row at and keeps going down while a row's closing
// comment state differs from the one it had before.
func (d *Document) cascade(at int) {
	for ; at < len(d.rows); at++ {
		r := &d.rows[at]
		open := at > 0 && d.rows[at-1].open
		var closing bool
		r.hl, closing = syntax.Highlight(r.hl, r.render, d.syntax, open)
		if closing == r.open {
			return
		}
		r.open = closing
	}
}

func (d *Document) rehighlight() {
	for i := range d.rows {
		r := &d.rows[i]
		open := i > 0 && d.rows[i-1].open
		r.hl, r.open = syntax.Highlight(r.hl, r.render, d.syntax, open)
	}
}

func (d *Document) renumber(from int) {
	for i := from; i < len(d.rows); i++ {
		d.rows[i].idx = i
	}
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
