package buffer

import "kilo/internal/syntax"

// DefaultTabStop is the render width of a tab stop.
const DefaultTabStop = 8

// Row is one line of a Document. The render and highlight projections are
// rebuilt by the owning Document whenever chars change.
type Row struct {
	idx    int
	chars  []byte
	render []byte
	hl     []syntax.Class
	open   bool
}

// Index is the row's position in its document.
func (r *Row) Index() int { return r.idx }

// Chars returns the raw content. Callers must not modify it.
func (r *Row) Chars() []byte { return r.chars }

// Render returns the content with tabs expanded.
func (r *Row) Render() []byte { return r.render }

// Highlight returns one class per rendered byte.
func (r *Row) Highlight() []syntax.Class { return r.hl }

// Size is the length of the raw content in bytes.
func (r *Row) Size() int { return len(r.chars) }

// RenderSize is the length of the content with tabs expanded.
func (r *Row) RenderSize() int { return len(r.render) }

// OpenComment reports whether the row ends inside a multiline comment.
func (r *Row) OpenComment() bool { return r.open }

// renderChars expands tabs in chars into dst.
func renderChars(dst, chars []byte, tabStop int) []byte {
	dst = dst[:0]
	for _, c := range chars {
		if c != '\t' {
			dst = append(dst, c)
			continue
		}
		dst = append(dst, ' ')
		for len(dst)%tabStop != 0 {
			dst = append(dst, ' ')
		}
	}
	return dst
}

// CharToRender converts a column in chars to the matching render column.
func CharToRender(chars []byte, cx, tabStop int) int {
	if cx > len(chars) {
		cx = len(chars)
	}
	rx := 0
	for j := 0; j < cx; j++ {
		if chars[j] == '\t' {
			rx += (tabStop - 1) - (rx % tabStop)
		}
		rx++
	}
	return rx
}

// RenderToChar converts a render column back to a column in chars: the
// first character whose render range extends past rx.
func RenderToChar(chars []byte, rx, tabStop int) int {
	cur := 0
	for cx, c := range chars {
		if c == '\t' {
			cur += (tabStop - 1) - (cur % tabStop)
		}
		cur++
		if cur > rx {
			return cx
		}
	}
	return len(chars)
}
