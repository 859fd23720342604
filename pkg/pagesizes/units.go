package pagesizes

// Unit is a typographic unit expressed as the number of printer's points
// it contains. Multiplying a value by its Unit yields points.
type Unit float64

// Typographic units, after reportlab's tables.
const (
	// Pt is the printer's point, the base unit of the package.
	Pt Unit = 1

	// Inch is 72 points.
	Inch Unit = 72

	// Cm is a centimetre.
	Cm = Inch / 2.54

	// Mm is a millimetre.
	Mm = Cm / 10

	// Um is a micrometre.
	Um = Mm / 1000

	// Pica is 12 points.
	Pica Unit = 12

	// Didot is the traditional continental point.
	Didot Unit = 1.07

	// Cicero is 12 didots.
	Cicero = Didot * 12

	// NewDidot is the metric didot (0.375 mm).
	NewDidot Unit = 1.067

	// NewCicero is 12 new didots.
	NewCicero = NewDidot * 12

	// ScaledPoint is TeX's smallest unit, 1/65536 of a point.
	ScaledPoint Unit = 1.0 / 65536
)

// Points converts a value given in this unit to points.
func (u Unit) Points(value float64) float64 {
	return value * float64(u)
}

// From converts a value given in points to this unit.
func (u Unit) From(points float64) float64 {
	return points / float64(u)
}
