package terminal

import (
	"regexp"
	"strconv"
)

// ANSI escape sequence prefixes.
const (
	CSI = "["
	OSC = "]"
	BEL = "\a"
)

// Clear modes for ClearScreen and ClearLine.
const (
	// ClearToEnd clears from the cursor to the end of the screen or line.
	ClearToEnd = 0
	// ClearToStart clears from the cursor to the start of the screen or line.
	ClearToStart = 1
	// ClearAll clears the entire screen or line.
	ClearAll = 2
)

// CodeToChars converts a numeric ANSI code to its escape sequence.
func CodeToChars(code int) string {
	return CSI + strconv.Itoa(code) + "m"
}

// SetTitle returns the sequence that sets the terminal window title.
func SetTitle(title string) string {
	return OSC + "2;" + title + BEL
}

// ClearScreen returns the sequence that clears the screen in the given mode.
func ClearScreen(mode int) string {
	return CSI + strconv.Itoa(mode) + "J"
}

// ClearLine returns the sequence that clears the current line in the given mode.
func ClearLine(mode int) string {
	return CSI + strconv.Itoa(mode) + "K"
}

var ansiPattern = regexp.MustCompile("\\[[0-9;]*[A-Za-z]")

// StripANSI removes all ANSI escape sequences from a string.
func StripANSI(s string) string {
	return ansiPattern.ReplaceAllString(s, "")
}

// Cursor groups the cursor movement sequences.
var Cursor cursor

type cursor struct{}

// Up moves the cursor up n rows.
func (cursor) Up(n int) string { return CSI + strconv.Itoa(n) + "A" }

// Down moves the cursor down n rows.
func (cursor) Down(n int) string { return CSI + strconv.Itoa(n) + "B" }

// Forward moves the cursor right n columns.
func (cursor) Forward(n int) string { return CSI + strconv.Itoa(n) + "C" }

// Back moves the cursor left n columns.
func (cursor) Back(n int) string { return CSI + strconv.Itoa(n) + "D" }

// Pos moves the cursor to column x, row y (1-based).
func (cursor) Pos(x, y int) string {
	return CSI + strconv.Itoa(y) + ";" + strconv.Itoa(x) + "H"
}
