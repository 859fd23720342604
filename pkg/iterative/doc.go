// Package iterative provides generic helpers for slicing, flattening and
// combining sequences, plus a tree(1)-style renderer for nested string lists.
package iterative
