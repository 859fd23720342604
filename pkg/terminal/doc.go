// Package terminal provides ANSI escape helpers: foreground, background and
// style code tables with nestable colour stacks, screen and cursor control
// sequences, terminal size detection and a small set of lipgloss style
// presets shared across the library.
//
// # Colour Stacks
//
// Each Colour belongs to one of three stacks (foreground, background, style).
// Wrapping text restores whatever colour was active before, so nested wraps
// compose correctly:
//
//	terminal.Fore.Red.Wrap("red " + terminal.Fore.Blue.Wrap("blue") + " red again")
//
// # Screen Control
//
// The escape sequence helpers (ClearScreen, SetTitle, the Cursor functions)
// return strings; callers decide where to write them.
package terminal
