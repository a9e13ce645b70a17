package editor

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/muesli/termenv"

	"kilo/internal/buffer"
	"kilo/internal/syntax"
)

var (
	hideCursor   = termenv.CSI + termenv.HideCursorSeq
	showCursor   = termenv.CSI + termenv.ShowCursorSeq
	cursorHome   = termenv.CSI + "H"
	eraseLine    = termenv.CSI + termenv.EraseLineRightSeq
	reverseVideo = termenv.CSI + termenv.ReverseSeq + "m"
	resetStyle   = termenv.CSI + termenv.ResetSeq + "m"
	defaultFg    = termenv.CSI + "39m"
)

var classColors = [...]termenv.ANSIColor{
	syntax.Comment:   termenv.ANSICyan,
	syntax.MLComment: termenv.ANSICyan,
	syntax.Keyword1:  termenv.ANSIYellow,
	syntax.Keyword2:  termenv.ANSIGreen,
	syntax.String:    termenv.ANSIMagenta,
	syntax.Number:    termenv.ANSIRed,
	syntax.Match:     termenv.ANSIBlue,
}

// colorSeqs holds the foreground escape for each class; Normal maps to the
// default foreground.
var colorSeqs = func() [len(classColors)]string {
	var seqs [len(classColors)]string
	for c, color := range classColors {
		if syntax.Class(c) == syntax.Normal {
			seqs[c] = defaultFg
			continue
		}
		seqs[c] = termenv.CSI + color.Sequence(false) + "m"
	}
	return seqs
}()

func classSeq(c syntax.Class) string {
	if int(c) >= len(colorSeqs) {
		return defaultFg
	}
	return colorSeqs[c]
}

func writeCursorPos(b *bytes.Buffer, row, col int) {
	var num [20]byte
	b.WriteString(termenv.CSI)
	b.Write(strconv.AppendInt(num[:0], int64(row), 10))
	b.WriteByte(';')
	b.Write(strconv.AppendInt(num[:0], int64(col), 10))
	b.WriteByte('H')
}

// Refresh composes a full frame and writes it in one call.
func (s *Session) Refresh() error {
	s.scroll()

	b := &s.frame
	b.Reset()
	b.WriteString(hideCursor)
	b.WriteString(cursorHome)
	s.drawRows(b)
	s.drawStatusBar(b)
	s.drawMessageBar(b)
	writeCursorPos(b, s.view.cy-s.view.rowOff+1, s.view.rx-s.view.colOff+1)
	b.WriteString(showCursor)

	if _, err := s.term.Write(b.Bytes()); err != nil {
		return fmt.Errorf("write frame: %w", err)
	}
	return nil
}

func (s *Session) drawRows(b *bytes.Buffer) {
	n := s.doc.NumRows()
	for y := 0; y < s.screenRows; y++ {
		filerow := y + s.view.rowOff
		switch {
		case filerow < n:
			s.drawRow(b, s.doc.Row(filerow))
		case n == 0 && y == s.screenRows/3:
			s.drawWelcome(b)
		default:
			b.WriteByte('~')
		}
		b.WriteString(eraseLine)
		b.WriteString("\r\n")
	}
}

func (s *Session) drawWelcome(b *bytes.Buffer) {
	msg := "Kilo editor -- version " + s.opts.Version
	if len(msg) > s.screenCols {
		msg = msg[:s.screenCols]
	}
	padding := (s.screenCols - len(msg)) / 2
	if padding > 0 {
		b.WriteByte('~')
		padding--
	}
	for ; padding > 0; padding-- {
		b.WriteByte(' ')
	}
	b.WriteString(safeTermString(msg))
}

// drawRow writes the visible slice of r, switching colour only where the
// highlight class changes. Control bytes are drawn in reverse video.
func (s *Session) drawRow(b *bytes.Buffer, r *buffer.Row) {
	render, hl := r.Render(), r.Highlight()
	start := min(s.view.colOff, len(render))
	end := min(start+s.screenCols, len(render))

	cur := defaultFg
	for i := start; i < end; i++ {
		c := render[i]
		if c < 0x20 || c == 0x7f {
			sym := byte('?')
			if c < 0x20 {
				sym = '@' + c
			}
			b.WriteString(reverseVideo)
			b.WriteByte(sym)
			b.WriteString(resetStyle)
			if cur != defaultFg {
				b.WriteString(cur)
			}
			continue
		}
		seq := defaultFg
		if i < len(hl) {
			seq = classSeq(hl[i])
		}
		if seq != cur {
			b.WriteString(seq)
			cur = seq
		}
		b.WriteByte(c)
	}
	b.WriteString(defaultFg)
}

func (s *Session) drawStatusBar(b *bytes.Buffer) {
	b.WriteString(reverseVideo)

	name := s.doc.Filename()
	if name == "" {
		name = "[No Name]"
	}
	modified := ""
	if s.doc.Dirty() > 0 {
		modified = "(modified)"
	}
	status := safeTermString(fmt.Sprintf("%.20s - %d lines %s", name, s.doc.NumRows(), modified))
	ft := s.doc.FileType()
	if ft == "" {
		ft = "no ft"
	}
	rstatus := safeTermString(fmt.Sprintf("%s | %d/%d", ft, s.view.cy+1, s.doc.NumRows()))

	if len(status) > s.screenCols {
		status = status[:s.screenCols]
	}
	b.WriteString(status)
	for l := len(status); l < s.screenCols; l++ {
		if s.screenCols-l == len(rstatus) {
			b.WriteString(rstatus)
			break
		}
		b.WriteByte(' ')
	}
	b.WriteString(resetStyle)
	b.WriteString("\r\n")
}

func (s *Session) drawMessageBar(b *bytes.Buffer) {
	b.WriteString(eraseLine)
	msg := s.statusMsg
	if len(msg) > s.screenCols {
		msg = msg[:s.screenCols]
	}
	if msg != "" && s.now().Sub(s.statusTime) < s.opts.MessageTimeout {
		b.WriteString(safeTermString(msg))
	}
}
