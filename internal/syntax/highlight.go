package syntax

import (
	"bytes"
	"strings"
)

const separators = ",.()+-/*=~%<>[];"

// IsSeparator reports whether c ends a word for keyword and number matching.
func IsSeparator(c byte) bool {
	switch c {
	case 0, ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return strings.IndexByte(separators, c) >= 0
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

// Highlight classifies every byte of render. open reports whether the
// previous row ended inside a multiline comment; the second result reports
// whether this row does. dst is reused when it has enough capacity.
func Highlight(dst []Class, render []byte, def *Definition, open bool) ([]Class, bool) {
	n := len(render)
	hl := dst[:0]
	if cap(hl) < n {
		hl = make([]Class, n)
	} else {
		hl = hl[:n]
		for i := range hl {
			hl[i] = Normal
		}
	}
	if def == nil {
		return hl, false
	}

	scs := []byte(def.SingleLineComment)
	mcs := []byte(def.MultiLineStart)
	mce := []byte(def.MultiLineEnd)
	multiline := len(mcs) > 0 && len(mce) > 0

	prevSep := true
	var inString byte
	inComment := open

	for i := 0; i < n; {
		c := render[i]
		prev := Normal
		if i > 0 {
			prev = hl[i-1]
		}

		if len(scs) > 0 && inString == 0 && !inComment && bytes.HasPrefix(render[i:], scs) {
			fill(hl[i:], Comment)
			break
		}

		if multiline && inString == 0 {
			if inComment {
				if bytes.HasPrefix(render[i:], mce) {
					fill(hl[i:i+len(mce)], MLComment)
					i += len(mce)
					inComment = false
					prevSep = true
					continue
				}
				hl[i] = MLComment
				i++
				continue
			}
			if bytes.HasPrefix(render[i:], mcs) {
				fill(hl[i:i+len(mcs)], MLComment)
				i += len(mcs)
				inComment = true
				continue
			}
		}

		if def.Flags&HighlightStrings != 0 {
			if inString != 0 {
				hl[i] = String
				if c == '\\' && i+1 < n {
					hl[i+1] = String
					i += 2
					continue
				}
				if c == inString {
					inString = 0
				}
				i++
				prevSep = true
				continue
			}
			if c == '"' || c == '\'' {
				inString = c
				hl[i] = String
				i++
				continue
			}
		}

		if def.Flags&HighlightNumbers != 0 {
			if (isDigit(c) && (prevSep || prev == Number)) || (c == '.' && prev == Number) {
				hl[i] = Number
				i++
				prevSep = false
				continue
			}
		}

		if prevSep {
			if klen, class := matchKeyword(render[i:], def); klen > 0 {
				fill(hl[i:i+klen], class)
				i += klen
				prevSep = false
				continue
			}
		}

		prevSep = IsSeparator(c)
		i++
	}
	return hl, inComment
}

// matchKeyword returns the length and class of the longest keyword at the
// start of s that is followed by a separator or the end of the row.
func matchKeyword(s []byte, def *Definition) (int, Class) {
	best, class := 0, Normal
	try := func(kws []string, c Class) {
		for _, kw := range kws {
			k := len(kw)
			if k <= best || k > len(s) || string(s[:k]) != kw {
				continue
			}
			if k < len(s) && !IsSeparator(s[k]) {
				continue
			}
			best, class = k, c
		}
	}
	try(def.Keywords1, Keyword1)
	try(def.Keywords2, Keyword2)
	return best, class
}

func fill(hl []Class, c Class) {
	for i := range hl {
		hl[i] = c
	}
}
