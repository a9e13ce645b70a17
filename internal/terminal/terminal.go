// Package terminal drives a raw-mode terminal: termios state, key decoding
// and window geometry.
package terminal

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/muesli/termenv"
	"golang.org/x/sys/unix"
)

var ErrNotTerminal = errors.New("not a terminal")

// ClearScreen erases the display and homes the cursor.
var ClearScreen = fmt.Sprintf(termenv.CSI+termenv.EraseDisplaySeq, 2) + termenv.CSI + "H"

// Terminal is a controlling terminal split into an input and output file,
// normally stdin and stdout.
type Terminal struct {
	in, out *os.File
	inFd    int
	outFd   int
	orig    *unix.Termios
	keys    *KeyReader
	winch   chan os.Signal

	rows, cols int
}

// Open checks that in is a terminal and starts watching for resizes.
func Open(in, out *os.File) (*Terminal, error) {
	t := &Terminal{
		in:    in,
		out:   out,
		inFd:  int(in.Fd()),
		outFd: int(out.Fd()),
		winch: make(chan os.Signal, 1),
	}
	if _, err := unix.IoctlGetTermios(t.inFd, ioctlReadTermios); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNotTerminal, err)
	}
	t.keys = NewKeyReader(t)
	t.keys.idle = t.resized
	signal.Notify(t.winch, unix.SIGWINCH)
	return t, nil
}

// EnableRawMode switches off canonical input, echo, signal keys and output
// post-processing, and makes reads time out after 100ms.
func (t *Terminal) EnableRawMode() error {
	if t.orig != nil {
		return nil
	}
	orig, err := unix.IoctlGetTermios(t.inFd, ioctlReadTermios)
	if err != nil {
		return fmt.Errorf("tcgetattr: %w", err)
	}
	raw := *orig
	raw.Iflag &^= unix.BRKINT | unix.ICRNL | unix.INPCK | unix.ISTRIP | unix.IXON
	raw.Oflag &^= unix.OPOST
	raw.Cflag |= unix.CS8
	raw.Lflag &^= unix.ECHO | unix.ICANON | unix.IEXTEN | unix.ISIG
	raw.Cc[unix.VMIN] = 0
	raw.Cc[unix.VTIME] = 1
	if err := unix.IoctlSetTermios(t.inFd, ioctlWriteTermios, &raw); err != nil {
		return fmt.Errorf("tcsetattr: %w", err)
	}
	t.orig = orig
	return nil
}

// Restore puts back the termios state saved by EnableRawMode. It is safe
// to call more than once.
func (t *Terminal) Restore() error {
	if t.orig == nil {
		return nil
	}
	orig := t.orig
	t.orig = nil
	if err := unix.IoctlSetTermios(t.inFd, ioctlWriteTermios, orig); err != nil {
		return fmt.Errorf("tcsetattr: %w", err)
	}
	return nil
}

// Raw reports whether raw mode is active.
func (t *Terminal) Raw() bool { return t.orig != nil }

// Close restores the terminal and stops resize notifications.
func (t *Terminal) Close() error {
	signal.Stop(t.winch)
	return t.Restore()
}

// Read reads from the input without Go's zero-read-is-EOF translation, so
// a raw-mode timeout shows up as (0, nil).
func (t *Terminal) Read(p []byte) (int, error) {
	n, err := unix.Read(t.inFd, p)
	if err != nil {
		if errors.Is(err, unix.EINTR) || errors.Is(err, unix.EAGAIN) {
			return 0, nil
		}
		return 0, err
	}
	return n, nil
}

func (t *Terminal) Write(p []byte) (int, error) {
	return t.out.Write(p)
}

// ReadKey blocks until the next key press or a window resize.
func (t *Terminal) ReadKey() (Key, error) {
	return t.keys.ReadKey()
}

func (t *Terminal) resized() bool {
	select {
	case <-t.winch:
		t.rows, t.cols = 0, 0
		return true
	default:
		return false
	}
}

var _ io.ReadWriter = (*Terminal)(nil)
