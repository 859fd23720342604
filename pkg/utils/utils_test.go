package utils

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAsText(t *testing.T) {
	tests := []struct {
		name  string
		value any
		want  string
	}{
		{"nil", nil, ""},
		{"string", "hello", "hello"},
		{"int", 42, "42"},
		{"float", 1.5, "1.5"},
		{"bool", true, "true"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := AsText(tt.value); got != tt.want {
				t.Errorf("AsText(%v) = %q, want %q", tt.value, got, tt.want)
			}
		})
	}
}

func TestStr2Ints(t *testing.T) {
	got, err := Str2Ints("1, 2, 3", ",")
	require.NoError(t, err)
	require.Equal(t, []int{1, 2, 3}, got)

	got, err = Str2Ints("", ",")
	require.NoError(t, err)
	require.Nil(t, got)

	_, err = Str2Ints("1,two,3", ",")
	require.Error(t, err)
}

func TestInts2Str(t *testing.T) {
	if got := Ints2Str([]int{1, 2, 3}, ","); got != "1,2,3" {
		t.Errorf("Ints2Str = %q", got)
	}
	if got := Ints2Str(nil, ","); got != "" {
		t.Errorf("Ints2Str(nil) = %q", got)
	}
}

func TestList2Str(t *testing.T) {
	got := List2Str([]any{"a", 1, true}, "; ")
	if got != "a; 1; true" {
		t.Errorf("List2Str = %q", got)
	}
}

func TestStrtobool(t *testing.T) {
	for _, s := range []string{"y", "Yes", "t", "TRUE", "on", "1", " true "} {
		got, err := Strtobool(s)
		require.NoError(t, err, s)
		require.True(t, got, s)
	}
	for _, s := range []string{"n", "No", "f", "FALSE", "off", "0"} {
		got, err := Strtobool(s)
		require.NoError(t, err, s)
		require.False(t, got, s)
	}

	_, err := Strtobool("maybe")
	require.ErrorIs(t, err, ErrInvalidBool)
	_, err = Strtobool("")
	require.ErrorIs(t, err, ErrInvalidBool)
}

func TestEnquoteValue(t *testing.T) {
	tests := []struct {
		name  string
		value any
		want  string
	}{
		{"string", "hello", `"hello"`},
		{"int", 42, "42"},
		{"bool", false, "false"},
		{"float", 2.5, "2.5"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := EnquoteValue(tt.value); got != tt.want {
				t.Errorf("EnquoteValue(%v) = %q, want %q", tt.value, got, tt.want)
			}
		})
	}
}

func TestConvertIndents(t *testing.T) {
	tests := []struct {
		name     string
		line     string
		tabWidth int
		from     string
		to       string
		want     string
	}{
		{"spaces to tab", "    hello", 4, " ", "\t", "\thello"},
		{"two levels", "        hello", 4, " ", "\t", "\t\thello"},
		{"tab to spaces", "\thello", 1, "\t", "    ", "    hello"},
		{"no indent", "hello", 4, " ", "\t", "hello"},
		{"four space chunk", "    spaces lead here", 1, "    ", "\t", "\tspaces lead here"},
		{"interior untouched", "\ta b  c", 1, "\t", "  ", "  a b  c"},
		{"empty line", "", 4, " ", "\t", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ConvertIndents(tt.line, tt.tabWidth, tt.from, tt.to)
			if got != tt.want {
				t.Errorf("ConvertIndents(%q) = %q, want %q", tt.line, got, tt.want)
			}
		})
	}
}

func TestHead(t *testing.T) {
	if got := Head("hello world", 5); got != "hello…" {
		t.Errorf("Head = %q", got)
	}
	if got := Head("hi", 5); got != "hi" {
		t.Errorf("Head = %q", got)
	}
	if got := Head(123456789, 3); got != "123…" {
		t.Errorf("Head = %q", got)
	}
	if got := Head("héllo wörld", 6); got != "héllo …" {
		t.Errorf("Head on multibyte = %q", got)
	}
}

func TestUniqueSorted(t *testing.T) {
	got := UniqueSorted([]string{"b", "a", "b", "c", "a"})
	require.Equal(t, []string{"a", "b", "c"}, got)

	require.Empty(t, UniqueSorted(nil))
}

func TestTwoWayMap(t *testing.T) {
	m := NewTwoWayMap[string, int]()
	require.NoError(t, m.Set("one", 1))
	require.NoError(t, m.Set("two", 2))
	require.Equal(t, 2, m.Len())

	v, ok := m.Get("one")
	require.True(t, ok)
	require.Equal(t, 1, v)

	k, ok := m.GetKey(2)
	require.True(t, ok)
	require.Equal(t, "two", k)

	// Identical reinsert is fine.
	require.NoError(t, m.Set("one", 1))

	// Conflicting key or value is not.
	require.ErrorIs(t, m.Set("one", 3), ErrAmbiguousMapping)
	require.ErrorIs(t, m.Set("uno", 1), ErrAmbiguousMapping)

	m.Delete("one")
	require.Equal(t, 1, m.Len())
	_, ok = m.Get("one")
	require.False(t, ok)
	_, ok = m.GetKey(1)
	require.False(t, ok)
}
