// Package syntax holds the built-in syntax definitions and the single-row
// highlighting pass used by the buffer.
package syntax

import "strings"

// Class is the highlight classification of one rendered character.
type Class uint8

const (
	Normal Class = iota
	Comment
	MLComment
	Keyword1
	Keyword2
	String
	Number
	Match
)

var classNames = [...]string{
	Normal:    "normal",
	Comment:   "comment",
	MLComment: "mlcomment",
	Keyword1:  "keyword1",
	Keyword2:  "keyword2",
	String:    "string",
	Number:    "number",
	Match:     "match",
}

func (c Class) String() string {
	if int(c) < len(classNames) {
		return classNames[c]
	}
	return "unknown"
}

// Flags select optional highlighting passes.
type Flags uint8

const (
	HighlightNumbers Flags = 1 << iota
	HighlightStrings
)

// Definition describes how to highlight one language. Definitions are
// shared between documents and must not be modified after registration.
type Definition struct {
	Name string
	// FileMatch entries starting with '.' match a filename suffix, all
	// others match anywhere in the filename.
	FileMatch         []string
	Keywords1         []string
	Keywords2         []string
	SingleLineComment string
	MultiLineStart    string
	MultiLineEnd      string
	Flags             Flags
}

var cKeywords1 = []string{
	"switch", "if", "while", "for", "break", "continue", "return", "else",
	"struct", "union", "typedef", "static", "enum", "class", "case",
}

var cKeywords2 = []string{
	"int", "long", "double", "float", "char", "unsigned", "signed", "void",
}

var goKeywords1 = []string{
	"break", "case", "chan", "const", "continue", "default", "defer", "else",
	"fallthrough", "for", "func", "go", "goto", "if", "import", "interface",
	"map", "package", "range", "return", "select", "struct", "switch", "type", "var",
}

var goKeywords2 = []string{
	"bool", "byte", "error", "float32", "float64", "int", "int8", "int16",
	"int32", "int64", "rune", "string", "uint", "uint8", "uint16", "uint32",
	"uint64", "uintptr", "any", "nil", "true", "false",
}

// Database is the table Select searches, in order.
var Database = []*Definition{
	{
		Name:              "c",
		FileMatch:         []string{".c", ".h", ".cpp", ".hpp"},
		Keywords1:         cKeywords1,
		Keywords2:         cKeywords2,
		SingleLineComment: "//",
		MultiLineStart:    "/*",
		MultiLineEnd:      "*/",
		Flags:             HighlightNumbers | HighlightStrings,
	},
	{
		Name:              "go",
		FileMatch:         []string{".go"},
		Keywords1:         goKeywords1,
		Keywords2:         goKeywords2,
		SingleLineComment: "//",
		MultiLineStart:    "/*",
		MultiLineEnd:      "*/",
		Flags:             HighlightNumbers | HighlightStrings,
	},
}

// Select returns the first definition in Database matching filename, or nil.
func Select(filename string) *Definition {
	if filename == "" {
		return nil
	}
	for _, def := range Database {
		if def.Matches(filename) {
			return def
		}
	}
	return nil
}

// Matches reports whether filename selects d.
func (d *Definition) Matches(filename string) bool {
	for _, pat := range d.FileMatch {
		if pat == "" {
			continue
		}
		if pat[0] == '.' {
			if strings.HasSuffix(filename, pat) {
				return true
			}
			continue
		}
		if strings.Contains(filename, pat) {
			return true
		}
	}
	return false
}
