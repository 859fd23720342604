package pagesizes

import (
	"fmt"
	"strconv"
	"strings"
)

// Size is a page size, width and height in printer's points.
type Size struct {
	Width  float64
	Height float64
}

// NewSize builds a Size from a width and height given in the supplied unit.
func NewSize(width, height float64, unit Unit) Size {
	return Size{Width: unit.Points(width), Height: unit.Points(height)}
}

// In returns the width and height converted to the given unit.
func (s Size) In(unit Unit) (width, height float64) {
	return unit.From(s.Width), unit.From(s.Height)
}

// IsLandscape reports whether the size is at least as wide as it is tall.
func (s Size) IsLandscape() bool { return s.Width >= s.Height }

// IsPortrait reports whether the size is taller than it is wide.
func (s Size) IsPortrait() bool { return s.Width < s.Height }

// IsSquare reports whether width and height are equal.
func (s Size) IsSquare() bool { return s.Width == s.Height }

// Landscape returns the size rotated into landscape orientation.
// A size already in landscape is returned unchanged.
func (s Size) Landscape() Size {
	if s.IsPortrait() {
		return Size{Width: s.Height, Height: s.Width}
	}
	return s
}

// Portrait returns the size rotated into portrait orientation.
// A size already in portrait is returned unchanged.
func (s Size) Portrait() Size {
	if s.IsLandscape() && !s.IsSquare() {
		return Size{Width: s.Height, Height: s.Width}
	}
	return s
}

// String renders the size in points with trailing zeros trimmed.
func (s Size) String() string {
	return fmt.Sprintf("Size(width=%s, height=%s)", trimFloat(s.Width), trimFloat(s.Height))
}

func trimFloat(f float64) string {
	out := strconv.FormatFloat(f, 'f', 3, 64)
	out = strings.TrimRight(out, "0")
	return strings.TrimRight(out, ".")
}
