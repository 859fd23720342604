package stringlist

import (
	"strings"

	"github.com/matzehuels/toolbelt/pkg/utils"
)

// StringList is a list of lines in a multiline string.
//
// The zero value is empty with a zero indent and ready to use. Lines fed to
// Append and Insert are split on newlines, prefixed with the current indent
// and right-stripped.
type StringList struct {
	lines  []string
	indent Indent

	// ConvertIndents rewrites leading indentation of incoming lines to the
	// current indent type (four spaces to a tab or vice versa). It only
	// applies to lines added while it is enabled.
	ConvertIndents bool
}

// New builds a StringList from existing text. The input is split on
// newlines and each line is stripped of surrounding whitespace.
func New(text string) *StringList {
	sl := &StringList{}
	for _, line := range strings.Split(text, "\n") {
		sl.lines = append(sl.lines, strings.TrimSpace(line))
	}
	return sl
}

func (sl *StringList) makeLine(line string) string {
	if sl.ConvertIndents {
		if sl.indent.Type() == "\t" {
			line = utils.ConvertIndents(line, 1, "    ", "\t")
		} else {
			line = utils.ConvertIndents(line, 1, "\t", sl.indent.Type())
		}
	}
	return strings.TrimRight(sl.indent.String()+line, " \t")
}

// Append adds a line (or several, if it contains newlines) to the end.
func (sl *StringList) Append(line string) {
	for _, inner := range strings.Split(line, "\n") {
		sl.lines = append(sl.lines, sl.makeLine(inner))
	}
}

// Insert adds a line at the given position. Indices outside the current
// range append at the nearest end, matching slice-free list semantics.
func (sl *StringList) Insert(index int, line string) {
	parts := strings.Split(line, "\n")

	if index < 0 {
		index = 0
	}
	if index >= len(sl.lines) {
		sl.Append(line)
		return
	}

	made := make([]string, len(parts))
	for i, p := range parts {
		made[i] = sl.makeLine(p)
	}

	sl.lines = append(sl.lines[:index], append(made, sl.lines[index:]...)...)
}

// Set replaces the line at index. Multiline input shifts subsequent lines
// down. Indices out of range append instead.
func (sl *StringList) Set(index int, line string) {
	if index >= 0 && index < len(sl.lines) {
		sl.lines = append(sl.lines[:index], sl.lines[index+1:]...)
	}
	sl.Insert(index, line)
}

// At returns the line at the given position.
func (sl *StringList) At(index int) string {
	return sl.lines[index]
}

// Len returns the number of lines.
func (sl *StringList) Len() int { return len(sl.lines) }

// Lines returns a copy of the underlying lines.
func (sl *StringList) Lines() []string {
	out := make([]string, len(sl.lines))
	copy(out, sl.lines)
	return out
}

// Blankline appends an empty line. With ensureSingle, trailing blank lines
// are first collapsed so exactly one remains.
func (sl *StringList) Blankline(ensureSingle bool) {
	if ensureSingle {
		for len(sl.lines) > 0 && sl.lines[len(sl.lines)-1] == "" {
			sl.lines = sl.lines[:len(sl.lines)-1]
		}
	}
	sl.lines = append(sl.lines, "")
}

// Indent returns the current indent.
func (sl *StringList) Indent() Indent { return sl.indent }

// SetIndent replaces the current indent.
func (sl *StringList) SetIndent(indent Indent) {
	sl.indent = indent
}

// SetIndentSize changes the repetition count of the current indent.
func (sl *StringList) SetIndentSize(size int) {
	sl.indent.size = size
	if sl.indent.size < 0 {
		sl.indent.size = 0
	}
}

// SetIndentType changes the indent symbol.
// The empty string is rejected with ErrEmptyIndentType.
func (sl *StringList) SetIndentType(typ string) error {
	if typ == "" {
		return ErrEmptyIndentType
	}
	sl.indent.typ = typ
	return nil
}

// WithIndent runs fn with the given indent, restoring the previous indent
// afterwards.
func (sl *StringList) WithIndent(indent Indent, fn func()) {
	previous := sl.indent
	sl.indent = indent
	defer func() { sl.indent = previous }()
	fn()
}

// WithIndentSize runs fn with the given indent size.
func (sl *StringList) WithIndentSize(size int, fn func()) {
	previous := sl.indent.size
	sl.SetIndentSize(size)
	defer func() { sl.indent.size = previous }()
	fn()
}

// WithIndentType runs fn with the given indent symbol.
func (sl *StringList) WithIndentType(typ string, fn func()) error {
	if typ == "" {
		return ErrEmptyIndentType
	}
	previous := sl.indent.typ
	sl.indent.typ = typ
	defer func() { sl.indent.typ = previous }()
	fn()
	return nil
}

// String joins the lines with newlines.
func (sl *StringList) String() string {
	return strings.Join(sl.lines, "\n")
}

// EqualString reports whether the rendered list equals the given string.
func (sl *StringList) EqualString(s string) bool {
	return sl.String() == s
}

// EqualLines reports whether the stored lines equal the given slice.
func (sl *StringList) EqualLines(lines []string) bool {
	if len(sl.lines) != len(lines) {
		return false
	}
	for i, line := range sl.lines {
		if line != lines[i] {
			return false
		}
	}
	return true
}
