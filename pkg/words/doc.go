// Package words provides helpers for working with (English) words.
//
// # Overview
//
// The package bundles a handful of independent text utilities:
//
//   - [Pluralize] and [PluralizeN] for English plural forms. Pluralize is
//     idempotent: feeding it an already-plural word returns the word
//     unchanged.
//   - [WordJoin] for natural-language list joining ("a, b and c"), with an
//     optional Oxford comma.
//   - [AlphaSort] for sorting strings by a caller-supplied alphabet.
//   - [Font] and the prebuilt fonts ([SerifBold], [Monospace], ...) for
//     mapping ASCII text onto the Unicode mathematical alphanumeric blocks.
//   - [List] and [Random] over an embedded list of common English words,
//     handy for generating test fixtures and placeholder names.
//   - [ToSnake] and [ToCamel] case conversion.
//
// All functions are pure; the only state in the package is the embedded
// word list.
package words
