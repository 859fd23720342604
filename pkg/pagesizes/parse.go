package pagesizes

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
)

// Sentinel errors for measurement parsing.
var (
	// ErrUnparseable is returned when no measurement is found in the input.
	ErrUnparseable = errors.New("unable to parse measurement")

	// ErrTooManyMeasurements is returned when the input holds more than one.
	ErrTooManyMeasurements = errors.New("too many measurements")

	// ErrUnknownUnit is returned for units the package does not know.
	ErrUnknownUnit = errors.New("unknown unit")
)

var measurementRe = regexp.MustCompile(`(\d*\.?\d+) *([A-Za-zμµ"']*)`)

// unitsByName resolves the unit suffixes ParseMeasurement accepts.
var unitsByName = map[string]Unit{
	"pt":   Pt,
	"mm":   Mm,
	"cm":   Cm,
	"um":   Um,
	"μm":   Um, // U+03BC mu
	"µm":   Um, // U+00B5 micro sign
	"inch": Inch,
	"in":   Inch,
	`"`:    Inch,
	"pc":   Pica,
	"pica": Pica,
}

// ParseMeasurement converts a measurement such as "12 mm", "8.5in" or
// `6.5"` to points. The input must contain exactly one measurement with an
// explicit unit.
func ParseMeasurement(measurement string) (float64, error) {
	matches := measurementRe.FindAllStringSubmatch(measurement, -1)

	switch {
	case len(matches) == 0:
		return 0, fmt.Errorf("%w: %q", ErrUnparseable, measurement)
	case len(matches) > 1:
		return 0, fmt.Errorf("%w in %q", ErrTooManyMeasurements, measurement)
	}

	value, unitName := matches[0][1], matches[0][2]
	if value == "" || unitName == "" {
		return 0, fmt.Errorf("%w: %q", ErrUnparseable, measurement)
	}

	v, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrUnparseable, measurement)
	}

	unit, ok := unitsByName[unitName]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownUnit, unitName)
	}
	return unit.Points(v), nil
}
