// Package dates provides month lookup tables and small date helpers.
//
// Months are addressed three ways throughout: by number (1-12), by
// three-letter abbreviation ("Jan") or by full name ("January"), always
// case-insensitively. [ParseMonth] and [MonthNumber] convert between the
// forms; [CheckDate] validates a day number against a month, with 29
// February accepted or rejected on request.
//
// The timezone helpers are thin wrappers over the standard library's IANA
// database support.
package dates
