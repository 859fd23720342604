package terminal

import "sync"

// stack tracks the currently active codes for one colour plane. The bottom
// entry is the plane's reset code and is never popped.
type stack struct {
	mu    sync.Mutex
	codes []string
}

func newStack(reset string) *stack {
	return &stack{codes: []string{reset}}
}

func (s *stack) peek() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.codes[len(s.codes)-1]
}

func (s *stack) push(code string) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.codes = append(s.codes, code)
	return code
}

func (s *stack) pop() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.codes) > 1 {
		s.codes = s.codes[:len(s.codes)-1]
	}
	return s.codes[len(s.codes)-1]
}

var (
	foreStack  = newStack(CodeToChars(39))
	backStack  = newStack(CodeToChars(49))
	styleStack = newStack(CodeToChars(22))
)

// Colour is a single ANSI code tied to the stack of its plane.
type Colour struct {
	code string
	st   *stack
}

func newColour(code int, st *stack) Colour {
	return Colour{code: CodeToChars(code), st: st}
}

// String returns the raw escape sequence.
func (c Colour) String() string { return c.code }

// Wrap surrounds text with this colour, then restores whatever colour was
// active on the stack before the call.
func (c Colour) Wrap(text string) string {
	return c.code + text + c.st.peek()
}

// Push activates this colour until the matching Pop. The returned sequence
// should be written to the terminal.
func (c Colour) Push() string { return c.st.push(c.code) }

// Pop deactivates the most recently pushed colour on this plane and returns
// the sequence that restores the previous one.
func (c Colour) Pop() string { return c.st.pop() }

// palette holds the eight standard colours, their light variants and the
// plane's reset code.
type palette struct {
	Black   Colour
	Red     Colour
	Green   Colour
	Yellow  Colour
	Blue    Colour
	Magenta Colour
	Cyan    Colour
	White   Colour
	Reset   Colour

	LightBlackEx   Colour
	LightRedEx     Colour
	LightGreenEx   Colour
	LightYellowEx  Colour
	LightBlueEx    Colour
	LightMagentaEx Colour
	LightCyanEx    Colour
	LightWhiteEx   Colour
}

// newPalette builds a colour table. Standard colours start at base, light
// variants at base+60, matching the ANSI layout for both planes.
func newPalette(base int, st *stack) palette {
	return palette{
		Black:   newColour(base, st),
		Red:     newColour(base+1, st),
		Green:   newColour(base+2, st),
		Yellow:  newColour(base+3, st),
		Blue:    newColour(base+4, st),
		Magenta: newColour(base+5, st),
		Cyan:    newColour(base+6, st),
		White:   newColour(base+7, st),
		Reset:   newColour(base+9, st),

		LightBlackEx:   newColour(base+60, st),
		LightRedEx:     newColour(base+61, st),
		LightGreenEx:   newColour(base+62, st),
		LightYellowEx:  newColour(base+63, st),
		LightBlueEx:    newColour(base+64, st),
		LightMagentaEx: newColour(base+65, st),
		LightCyanEx:    newColour(base+66, st),
		LightWhiteEx:   newColour(base+67, st),
	}
}

// Fore holds the foreground colour codes.
var Fore = newPalette(30, foreStack)

// Back holds the background colour codes.
var Back = newPalette(40, backStack)

// Style holds the text style codes.
var Style = struct {
	Bright, Dim, Normal, ResetAll Colour
}{
	Bright:   newColour(1, styleStack),
	Dim:      newColour(2, styleStack),
	Normal:   newColour(22, styleStack),
	ResetAll: newColour(0, styleStack),
}
