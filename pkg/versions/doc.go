// Package versions models three-part version numbers with both strict and
// truncated comparison semantics, so "1.2" can be treated as equal to
// "1.2.3" when only the first two parts matter.
package versions
