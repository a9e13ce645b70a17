package terminal

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/muesli/termenv"
	"golang.org/x/sys/unix"
)

var ErrCursorReport = errors.New("malformed cursor position report")

const (
	cursorReportQuery = termenv.CSI + "6n"
	maxReportLen      = 32
	maxReportWaits    = 10
)

// Size returns the window size in character cells. The result is cached
// until the next resize. When the size ioctl is unavailable the cursor is
// pushed to the bottom-right corner and its reported position is used.
func (t *Terminal) Size() (rows, cols int, err error) {
	if t.rows > 0 && t.cols > 0 {
		return t.rows, t.cols, nil
	}
	ws, err := unix.IoctlGetWinsize(t.outFd, unix.TIOCGWINSZ)
	if err == nil && ws.Row > 0 && ws.Col > 0 {
		t.rows, t.cols = int(ws.Row), int(ws.Col)
		return t.rows, t.cols, nil
	}
	rows, cols, err = t.cursorSize()
	if err != nil {
		return 0, 0, fmt.Errorf("window size: %w", err)
	}
	t.rows, t.cols = rows, cols
	return rows, cols, nil
}

func (t *Terminal) cursorSize() (int, int, error) {
	probe := fmt.Sprintf(termenv.CSI+termenv.CursorForwardSeq+termenv.CSI+termenv.CursorDownSeq, 999, 999)
	if _, err := io.WriteString(t.out, probe+cursorReportQuery); err != nil {
		return 0, 0, err
	}
	var (
		reply [maxReportLen]byte
		b     [1]byte
		n     int
		waits int
	)
	for n < len(reply) {
		got, err := t.Read(b[:])
		if err != nil {
			return 0, 0, err
		}
		if got == 0 {
			if waits++; waits >= maxReportWaits {
				return 0, 0, fmt.Errorf("%w: no reply", ErrCursorReport)
			}
			continue
		}
		if b[0] == 'R' {
			return ParseCursorReport(reply[:n])
		}
		reply[n] = b[0]
		n++
	}
	return 0, 0, fmt.Errorf("%w: reply too long", ErrCursorReport)
}

// ParseCursorReport parses a cursor position report of the form
// ESC [ rows ; cols, with or without the terminating R.
func ParseCursorReport(b []byte) (rows, cols int, err error) {
	body := bytes.TrimSuffix(b, []byte("R"))
	if !bytes.HasPrefix(body, []byte(termenv.CSI)) {
		return 0, 0, fmt.Errorf("%w: %q", ErrCursorReport, b)
	}
	r, c, ok := bytes.Cut(body[len(termenv.CSI):], []byte(";"))
	if !ok {
		return 0, 0, fmt.Errorf("%w: %q", ErrCursorReport, b)
	}
	rows, err = strconv.Atoi(string(r))
	if err != nil || rows <= 0 {
		return 0, 0, fmt.Errorf("%w: %q", ErrCursorReport, b)
	}
	cols, err = strconv.Atoi(string(c))
	if err != nil || cols <= 0 {
		return 0, 0, fmt.Errorf("%w: %q", ErrCursorReport, b)
	}
	return rows, cols, nil
}
