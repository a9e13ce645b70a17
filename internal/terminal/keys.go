package terminal

import (
	"fmt"
	"io"
)

// Key is a decoded key press. Plain bytes are their own value; special
// keys start at 1000 so they never collide with a byte.
type Key int

const (
	KeyEnter     Key = '\r'
	KeyEscape    Key = 0x1b
	KeyBackspace Key = 127
)

const (
	KeyArrowLeft Key = 1000 + iota
	KeyArrowRight
	KeyArrowUp
	KeyArrowDown
	KeyDelete
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown
	// KeyResize is reported when the window size changed while waiting
	// for input.
	KeyResize
)

// CtrlKey returns the key produced by Ctrl plus c.
func CtrlKey(c byte) Key { return Key(c & 0x1f) }

var keyNames = map[Key]string{
	KeyEnter:      "Enter",
	KeyEscape:     "Esc",
	KeyBackspace:  "Backspace",
	KeyArrowLeft:  "Left",
	KeyArrowRight: "Right",
	KeyArrowUp:    "Up",
	KeyArrowDown:  "Down",
	KeyDelete:     "Delete",
	KeyHome:       "Home",
	KeyEnd:        "End",
	KeyPageUp:     "PageUp",
	KeyPageDown:   "PageDown",
	KeyResize:     "Resize",
}

func (k Key) String() string {
	if s, ok := keyNames[k]; ok {
		return s
	}
	if k >= 0 && k < 0x20 {
		return fmt.Sprintf("Ctrl-%c", byte(k)+'@')
	}
	if k >= 0x20 && k < 0x100 {
		return fmt.Sprintf("%q", rune(k))
	}
	return fmt.Sprintf("Key(%d)", int(k))
}

// KeyReader decodes raw terminal input into keys. The underlying reader is
// expected to return zero bytes when nothing arrives within the terminal
// read timeout; that is how a lone Escape is told apart from a sequence.
type KeyReader struct {
	r   io.Reader
	buf [1]byte
	// idle is polled each time a read for the first byte of a key comes
	// back empty. Returning true ends the wait with KeyResize.
	idle func() bool
}

func NewKeyReader(r io.Reader) *KeyReader {
	return &KeyReader{r: r}
}

// ReadKey blocks until a full key has been read.
func (k *KeyReader) ReadKey() (Key, error) {
	c, resized, err := k.first()
	if err != nil {
		return 0, err
	}
	if resized {
		return KeyResize, nil
	}
	if c != 0x1b {
		return Key(c), nil
	}

	s0, ok := k.next()
	if !ok {
		return KeyEscape, nil
	}
	s1, ok := k.next()
	if !ok {
		return KeyEscape, nil
	}
	switch s0 {
	case '[':
		if s1 >= '0' && s1 <= '9' {
			s2, ok := k.next()
			if !ok || s2 != '~' {
				return KeyEscape, nil
			}
			switch s1 {
			case '1', '7':
				return KeyHome, nil
			case '3':
				return KeyDelete, nil
			case '4', '8':
				return KeyEnd, nil
			case '5':
				return KeyPageUp, nil
			case '6':
				return KeyPageDown, nil
			}
			return KeyEscape, nil
		}
		switch s1 {
		case 'A':
			return KeyArrowUp, nil
		case 'B':
			return KeyArrowDown, nil
		case 'C':
			return KeyArrowRight, nil
		case 'D':
			return KeyArrowLeft, nil
		case 'H':
			return KeyHome, nil
		case 'F':
			return KeyEnd, nil
		}
	case 'O':
		switch s1 {
		case 'H':
			return KeyHome, nil
		case 'F':
			return KeyEnd, nil
		}
	}
	return KeyEscape, nil
}

func (k *KeyReader) first() (byte, bool, error) {
	for {
		n, err := k.r.Read(k.buf[:])
		if n == 1 {
			return k.buf[0], false, nil
		}
		if err != nil {
			return 0, false, err
		}
		if k.idle != nil && k.idle() {
			return 0, true, nil
		}
	}
}

// next reads one more byte of an escape sequence, giving up after a
// single empty read.
func (k *KeyReader) next() (byte, bool) {
	n, _ := k.r.Read(k.buf[:])
	if n != 1 {
		return 0, false
	}
	return k.buf[0], true
}
