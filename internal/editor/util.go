package editor

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
)

func ioErrText(err error) string {
	if err == nil {
		return ""
	}
	var pe *os.PathError
	if errors.As(err, &pe) && pe.Err != nil {
		return pe.Err.Error()
	}
	return err.Error()
}

// normalizeFilename expands a leading ~ to the home directory.
func normalizeFilename(name string) (string, error) {
	if name == "~" || strings.HasPrefix(name, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		if name == "~" {
			return home, nil
		}
		return filepath.Join(home, name[2:]), nil
	}
	return name, nil
}

func safeTermByte(c byte) byte {
	if c < 0x20 || c == 0x7f {
		return '?'
	}
	return c
}

// safeTermString replaces control bytes so text from file names and
// messages cannot inject escape sequences.
func safeTermString(s string) string {
	if s == "" {
		return s
	}
	out := []byte(s)
	for i := range out {
		out[i] = safeTermByte(out[i])
	}
	return string(out)
}
