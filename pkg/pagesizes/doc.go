// Package pagesizes provides typographic units and paper-size tables.
//
// # Units
//
// All sizes are stored in printer's points (1/72 inch). A [Unit] is simply
// the number of points it represents, so conversion is multiplication:
//
//	width := 210 * pagesizes.Mm // A4 width in points
//
// The full set covers the metric units (Cm, Mm, Um), Inch, Pica and the
// continental typographic units (Didot, Cicero and their "new" metric
// variants).
//
// # Sizes
//
// [Size] is a width/height pair in points with orientation helpers
// (Landscape, Portrait, IsSquare) and per-unit conversion via [Size.In].
// The package ships the ISO 216 A/B/C series, the common American sizes
// and the ISO/IEC 7810 identification-card sizes as package-level
// variables.
//
// [ParseMeasurement] converts strings such as "12mm" or `8.5"` to points.
package pagesizes
