package editor

import "kilo/internal/terminal"

// viewport is the cursor plus the scroll offsets. cx is a byte index into
// the current row; rx is the matching render column, derived on scroll.
// cy may equal the row count, the virtual line past the end.
type viewport struct {
	cx, cy int
	rx     int
	rowOff int
	colOff int
	// preferred is the column vertical moves try to return to.
	preferred int
}

func (s *Session) moveCursor(k terminal.Key) {
	v := &s.view
	n := s.doc.NumRows()
	switch k {
	case terminal.KeyArrowLeft:
		if v.cx > 0 {
			v.cx--
		} else if v.cy > 0 {
			v.cy--
			v.cx = s.doc.RowSize(v.cy)
		}
		v.preferred = v.cx
	case terminal.KeyArrowRight:
		if v.cy < n {
			if v.cx < s.doc.RowSize(v.cy) {
				v.cx++
			} else {
				v.cy++
				v.cx = 0
			}
		}
		v.preferred = v.cx
	case terminal.KeyArrowUp:
		if v.cy > 0 {
			v.cy--
		}
		v.cx = min(v.preferred, s.doc.RowSize(v.cy))
	case terminal.KeyArrowDown:
		if v.cy < n {
			v.cy++
		}
		v.cx = min(v.preferred, s.doc.RowSize(v.cy))
	}
}

// page moves the cursor to the top or bottom of the screen and then a full
// screen further.
func (s *Session) page(k terminal.Key) {
	v := &s.view
	dir := terminal.KeyArrowUp
	if k == terminal.KeyPageUp {
		v.cy = v.rowOff
	} else {
		dir = terminal.KeyArrowDown
		v.cy = min(v.rowOff+s.screenRows-1, s.doc.NumRows())
	}
	for i := 0; i < s.screenRows; i++ {
		s.moveCursor(dir)
	}
}

// scroll derives rx and adjusts the offsets so the cursor is on screen.
func (s *Session) scroll() {
	v := &s.view
	v.rx = 0
	if v.cy < s.doc.NumRows() {
		v.rx = s.doc.RenderColumn(v.cy, v.cx)
	}
	if v.cy < v.rowOff {
		v.rowOff = v.cy
	}
	if v.cy >= v.rowOff+s.screenRows {
		v.rowOff = v.cy - s.screenRows + 1
	}
	if v.rx < v.colOff {
		v.colOff = v.rx
	}
	if v.rx >= v.colOff+s.screenCols {
		v.colOff = v.rx - s.screenCols + 1
	}
}
