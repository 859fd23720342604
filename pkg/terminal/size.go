package terminal

import (
	"os"

	"golang.org/x/term"
)

// Fallback dimensions when the output is not a terminal.
const (
	fallbackWidth  = 80
	fallbackHeight = 25
)

// Size reports the terminal dimensions of stdout, falling back to 80x25
// when stdout is not attached to a terminal.
func Size() (width, height int) {
	w, h, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || w <= 0 || h <= 0 {
		return fallbackWidth, fallbackHeight
	}
	return w, h
}
