// Package testutil holds helpers shared by this repository's tests:
// whitespace permutation inputs, counting sequences, platform skips and a
// filesystem fixture builder.
package testutil
