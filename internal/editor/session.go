// Package editor runs an editing session: it owns the document, the
// cursor and viewport, and turns key presses into edits and frames.
package editor

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"time"

	"kilo/internal/buffer"
	"kilo/internal/terminal"
)

const maxStatusLen = 80

var (
	quitKey = terminal.CtrlKey('q')
	saveKey = terminal.CtrlKey('s')
	findKey = terminal.CtrlKey('f')
)

// Options tune a session. Zero fields take their DefaultOptions value.
type Options struct {
	TabStop        int
	QuitTimes      int
	MessageTimeout time.Duration
	Version        string
}

func DefaultOptions() Options {
	return Options{
		TabStop:        buffer.DefaultTabStop,
		QuitTimes:      3,
		MessageTimeout: 5 * time.Second,
		Version:        "dev",
	}
}

func (o Options) withDefaults() Options {
	def := DefaultOptions()
	if o.TabStop <= 0 {
		o.TabStop = def.TabStop
	}
	if o.QuitTimes <= 0 {
		o.QuitTimes = def.QuitTimes
	}
	if o.MessageTimeout <= 0 {
		o.MessageTimeout = def.MessageTimeout
	}
	if o.Version == "" {
		o.Version = def.Version
	}
	return o
}

// Terminal is what a session needs from the screen it runs on.
type Terminal interface {
	ReadKey() (terminal.Key, error)
	Write(p []byte) (int, error)
	Size() (rows, cols int, err error)
}

// Session is one editor instance bound to one terminal.
type Session struct {
	term Terminal
	opts Options
	log  *slog.Logger
	now  func() time.Time

	doc        *buffer.Document
	view       viewport
	screenRows int
	screenCols int

	statusMsg     string
	statusTime    time.Time
	quitRemaining int

	frame bytes.Buffer
}

// New creates a session with an empty, unnamed document. A nil logger
// discards everything.
func New(t Terminal, opts Options, log *slog.Logger) (*Session, error) {
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	opts = opts.withDefaults()
	s := &Session{
		term:          t,
		opts:          opts,
		log:           log,
		now:           time.Now,
		doc:           buffer.New(opts.TabStop),
		quitRemaining: opts.QuitTimes,
	}
	if err := s.updateWindowSize(); err != nil {
		return nil, err
	}
	return s, nil
}

// Document exposes the session's document.
func (s *Session) Document() *buffer.Document { return s.doc }

func (s *Session) updateWindowSize() error {
	rows, cols, err := s.term.Size()
	if err != nil {
		return fmt.Errorf("get window size: %w", err)
	}
	// Two lines are reserved for the status and message bars.
	s.screenRows = max(rows-2, 1)
	s.screenCols = max(cols, 1)
	s.log.Debug("window size", "rows", rows, "cols", cols)
	return nil
}

// Open loads path. A missing file starts an empty document bound to path.
// Other failures leave the current document in place and are reported on
// the message bar.
func (s *Session) Open(path string) error {
	name, err := normalizeFilename(path)
	if err != nil {
		s.SetStatus("Can't resolve path: %s", ioErrText(err))
		return err
	}
	doc := buffer.New(s.opts.TabStop)
	err = doc.Open(name)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		doc.SetFilename(name)
		s.SetStatus("%q [New File]", name)
	case err != nil:
		s.log.Debug("open failed", "file", name, "err", err)
		s.SetStatus("Can't open file: %s", ioErrText(err))
		return err
	}
	s.doc = doc
	s.view = viewport{}
	s.log.Debug("opened", "file", name, "rows", doc.NumRows())
	return nil
}

// SetStatus sets the message bar text, truncated to 80 bytes.
func (s *Session) SetStatus(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	if len(msg) > maxStatusLen {
		msg = msg[:maxStatusLen]
	}
	s.statusMsg = msg
	s.statusTime = s.now()
}

// Run draws and handles keys until the user quits or the terminal fails.
func (s *Session) Run() error {
	for {
		if err := s.Refresh(); err != nil {
			return err
		}
		k, err := s.term.ReadKey()
		if err != nil {
			return fmt.Errorf("read key: %w", err)
		}
		quit, err := s.ProcessKey(k)
		if err != nil {
			return err
		}
		if quit {
			return nil
		}
	}
}

// ProcessKey applies one key press. It reports whether the session should
// end. Errors are terminal failures.
func (s *Session) ProcessKey(k terminal.Key) (bool, error) {
	switch k {
	case quitKey:
		if s.doc.Dirty() > 0 {
			s.quitRemaining--
			if s.quitRemaining > 0 {
				s.SetStatus("WARNING!!! File has unsaved changes. Press Ctrl-Q %d more times to quit.", s.quitRemaining)
				return false, nil
			}
		}
		return true, nil
	case terminal.KeyResize:
		return false, s.updateWindowSize()
	case terminal.KeyEnter:
		s.insertNewline()
	case saveKey:
		if err := s.save(); err != nil {
			return false, err
		}
	case findKey:
		if err := s.find(); err != nil {
			return false, err
		}
	case terminal.KeyBackspace, terminal.CtrlKey('h'), terminal.KeyDelete:
		if k == terminal.KeyDelete {
			s.moveCursor(terminal.KeyArrowRight)
		}
		s.deleteChar()
	case terminal.KeyHome:
		s.view.cx = 0
		s.view.preferred = 0
	case terminal.KeyEnd:
		s.view.cx = s.doc.RowSize(s.view.cy)
		s.view.preferred = s.view.cx
	case terminal.KeyPageUp, terminal.KeyPageDown:
		s.page(k)
	case terminal.KeyArrowUp, terminal.KeyArrowDown, terminal.KeyArrowLeft, terminal.KeyArrowRight:
		s.moveCursor(k)
	case terminal.CtrlKey('l'), terminal.KeyEscape:
	default:
		if k == '\t' || (k >= 0x20 && k < 0x100 && k != terminal.KeyBackspace) {
			s.insertChar(byte(k))
		}
	}
	s.quitRemaining = s.opts.QuitTimes
	return false, nil
}

func (s *Session) insertChar(c byte) {
	if s.view.cy == s.doc.NumRows() {
		s.doc.InsertRow(s.doc.NumRows(), nil)
	}
	s.doc.InsertChar(s.view.cy, s.view.cx, c)
	s.view.cx++
	s.view.preferred = s.view.cx
}

func (s *Session) insertNewline() {
	if s.view.cx == 0 {
		s.doc.InsertRow(s.view.cy, nil)
	} else {
		s.doc.SplitRow(s.view.cy, s.view.cx)
	}
	s.view.cy++
	s.view.cx = 0
	s.view.preferred = 0
}

func (s *Session) deleteChar() {
	if s.view.cy >= s.doc.NumRows() {
		return
	}
	if s.view.cx == 0 && s.view.cy == 0 {
		return
	}
	s.view.cy, s.view.cx = s.doc.DeleteChar(s.view.cy, s.view.cx)
	s.view.preferred = s.view.cx
}

func (s *Session) save() error {
	if s.doc.Filename() == "" {
		name, ok, err := s.prompt("Save as: %s (ESC to cancel)", nil)
		if err != nil {
			return err
		}
		if !ok {
			s.SetStatus("Save aborted")
			return nil
		}
		if name, err = normalizeFilename(name); err != nil {
			s.SetStatus("Can't resolve path: %s", ioErrText(err))
			return nil
		}
		s.doc.SetFilename(name)
	}
	n, err := s.doc.Save()
	if err != nil {
		s.log.Debug("save failed", "file", s.doc.Filename(), "err", err)
		s.SetStatus("Can't save! I/O error: %s", ioErrText(err))
		return nil
	}
	s.log.Debug("saved", "file", s.doc.Filename(), "bytes", n)
	s.SetStatus("%d bytes written to disk", n)
	return nil
}
