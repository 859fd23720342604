// Package utils collects small general-purpose functions that fit no other
// package: string/slice conversions, boolean parsing, indent rewriting,
// truncated display values and a bidirectional map.
package utils
