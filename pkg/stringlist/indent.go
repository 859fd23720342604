package stringlist

import (
	"errors"
	"fmt"
	"strings"
)

// ErrEmptyIndentType is returned when an indent type is set to the empty
// string.
var ErrEmptyIndentType = errors.New("indent type cannot be an empty string")

// Indent is a line prefix: a symbol repeated a number of times.
type Indent struct {
	size int
	typ  string
}

// NewIndent creates an Indent of size copies of typ.
func NewIndent(size int, typ string) (Indent, error) {
	if typ == "" {
		return Indent{}, ErrEmptyIndentType
	}
	if size < 0 {
		size = 0
	}
	return Indent{size: size, typ: typ}, nil
}

// Size returns the number of repetitions.
func (i Indent) Size() int { return i.size }

// Type returns the indent symbol, defaulting to a tab for the zero value.
func (i Indent) Type() string {
	if i.typ == "" {
		return "\t"
	}
	return i.typ
}

// String returns the indent as the prefix it produces.
func (i Indent) String() string {
	return strings.Repeat(i.Type(), i.size)
}

// GoString returns a constructor-style representation for debugging.
func (i Indent) GoString() string {
	return fmt.Sprintf("Indent(size=%d, type=%q)", i.size, i.Type())
}
