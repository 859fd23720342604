// Package records provides an ordered, name-addressable record type.
//
// # Overview
//
// A [Record] is a sequence of named fields. Fields keep the position they
// were inserted at for the lifetime of the record, and every field name is
// unique within it. Values can be reached both positionally ([Record.At])
// and by name ([Record.Get]), and records convert losslessly to and from
// plain map and pair-slice forms.
//
// Records compare by content: two records are equal when they hold the same
// field names in the same order with equal values.
//
// # Example
//
//	r := records.New(
//	    records.Field{Name: "name", Value: "ampelmann"},
//	    records.Field{Name: "colour", Value: "green"},
//	)
//	v, _ := r.Get("colour") // "green"
//	r2, _ := records.FromPairs(r.Pairs())
//	r.Equal(r2) // true
//
// [List] is the companion type for ordered values without names: a slice
// with a display name, rendered one element per line.
package records
