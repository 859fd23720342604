package utils

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// ErrInvalidBool is returned by Strtobool for unrecognised input.
var ErrInvalidBool = errors.New("invalid truth value")

// AsText converts a value to a string, rendering nil as the empty string.
func AsText(value any) string {
	if value == nil {
		return ""
	}
	return fmt.Sprintf("%v", value)
}

// Str2Ints parses a separated string of integers, e.g. "1,2,3".
func Str2Ints(s, sep string) ([]int, error) {
	if s == "" {
		return nil, nil
	}

	parts := strings.Split(s, sep)
	out := make([]int, len(parts))
	for i, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, fmt.Errorf("parsing element %d: %w", i, err)
		}
		out[i] = n
	}
	return out, nil
}

// Ints2Str joins integers into a separated string, the inverse of Str2Ints.
func Ints2Str(values []int, sep string) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = strconv.Itoa(v)
	}
	return strings.Join(parts, sep)
}

// List2Str joins arbitrary values into a separated string.
func List2Str(values []any, sep string) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = AsText(v)
	}
	return strings.Join(parts, sep)
}

// Strtobool converts a truthy/falsy string to a bool.
// True values are y, yes, t, true, on and 1; false values are n, no, f,
// false, off and 0. Anything else is ErrInvalidBool.
func Strtobool(s string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "y", "yes", "t", "true", "on", "1":
		return true, nil
	case "n", "no", "f", "false", "off", "0":
		return false, nil
	default:
		return false, fmt.Errorf("%w: %q", ErrInvalidBool, s)
	}
}

// EnquoteValue renders a value the way it would appear in source: strings
// get quotes, everything else formats plainly.
func EnquoteValue(value any) string {
	switch v := value.(type) {
	case string:
		return strconv.Quote(v)
	case fmt.Stringer:
		return strconv.Quote(v.String())
	default:
		return fmt.Sprintf("%v", v)
	}
}

// ConvertIndents rewrites leading indentation from one style to another.
// A chunk of tabWidth copies of from at the start of the line becomes a
// single to; the rest of the line is untouched.
func ConvertIndents(line string, tabWidth int, from, to string) string {
	if tabWidth < 1 || from == "" {
		return line
	}

	chunk := strings.Repeat(from, tabWidth)
	depth := 0
	rest := line
	for strings.HasPrefix(rest, chunk) {
		depth++
		rest = rest[len(chunk):]
	}
	if depth == 0 {
		return line
	}
	return strings.Repeat(to, depth) + rest
}

// Head returns the display form of value truncated to n characters, with
// an ellipsis when anything was cut.
func Head(value any, n int) string {
	s := fmt.Sprintf("%v", value)
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	if n <= 0 {
		return "…"
	}
	return string(runes[:n]) + "…"
}

// UniqueSorted returns the distinct values in sorted order.
func UniqueSorted(values []string) []string {
	seen := make(map[string]bool, len(values))
	out := make([]string, 0, len(values))
	for _, v := range values {
		if !seen[v] {
			seen[v] = true
			out = append(out, v)
		}
	}
	sort.Strings(out)
	return out
}
