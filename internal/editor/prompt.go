package editor

import "kilo/internal/terminal"

// promptCallback observes every key the prompt handles together with the
// input as it stands after that key.
type promptCallback func(input string, k terminal.Key)

// prompt reads a line on the message bar. format must contain one %s for
// the input. ok is false when the user cancelled with Escape.
func (s *Session) prompt(format string, cb promptCallback) (input string, ok bool, err error) {
	var buf []byte
	for {
		s.SetStatus(format, buf)
		if err := s.Refresh(); err != nil {
			return "", false, err
		}
		k, err := s.term.ReadKey()
		if err != nil {
			return "", false, err
		}
		switch {
		case k == terminal.KeyResize:
			if err := s.updateWindowSize(); err != nil {
				return "", false, err
			}
			continue
		case k == terminal.KeyDelete || k == terminal.KeyBackspace || k == terminal.CtrlKey('h'):
			if len(buf) > 0 {
				buf = buf[:len(buf)-1]
			}
		case k == terminal.KeyEscape:
			s.SetStatus("")
			if cb != nil {
				cb(string(buf), k)
			}
			return "", false, nil
		case k == terminal.KeyEnter:
			if len(buf) > 0 {
				s.SetStatus("")
				if cb != nil {
					cb(string(buf), k)
				}
				return string(buf), true, nil
			}
		case k >= 0x20 && k < 0x7f:
			buf = append(buf, byte(k))
		}
		if cb != nil {
			cb(string(buf), k)
		}
	}
}
