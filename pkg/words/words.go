package words

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/serenize/snaker"
)

// Alphabet constants used by the pseudo-font tables and AlphaSort.
const (
	ASCIILowercase = "abcdefghijklmnopqrstuvwxyz"
	ASCIIUppercase = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	ASCIIDigits    = "0123456789"

	// GreekUppercase lists the Greek capitals in the order used by the
	// Unicode mathematical alphanumeric blocks (theta symbol after rho,
	// nabla at the end).
	GreekUppercase = "ΑΒΓΔΕΖΗΘΙΚΛΜΝΞΟΠΡϴΣΤΥΦΧΨΩ∇"

	// GreekLowercase lists the Greek small letters in block order,
	// followed by partial differential and the symbol variants.
	GreekLowercase = "αβγδεζηθικλμνξοπρςστυφχψω∂ϵϑϰϕϱϖ"
)

// ErrNotInAlphabet is returned by AlphaSort when a string contains a
// character missing from the supplied alphabet.
var ErrNotInAlphabet = errors.New("character not found in the alphabet")

// irregularPlurals maps singular forms to plurals that follow no rule.
var irregularPlurals = map[string]string{
	"child":  "children",
	"foot":   "feet",
	"goose":  "geese",
	"man":    "men",
	"mouse":  "mice",
	"person": "people",
	"tooth":  "teeth",
	"woman":  "women",
}

// knownPlurals is the reverse of irregularPlurals, used to keep Pluralize
// idempotent for irregular forms.
var knownPlurals = func() map[string]bool {
	m := make(map[string]bool, len(irregularPlurals))
	for _, plural := range irregularPlurals {
		m[plural] = true
	}
	return m
}()

// Pluralize returns the English plural of word.
// Already-plural input is returned unchanged, so the function is idempotent.
func Pluralize(word string) string {
	if word == "" {
		return word
	}

	lower := strings.ToLower(word)

	if knownPlurals[lower] {
		return word
	}
	if plural, ok := irregularPlurals[lower]; ok {
		return matchCase(word, plural)
	}
	if looksPlural(lower) {
		return word
	}

	switch {
	case strings.HasSuffix(lower, "ss"),
		strings.HasSuffix(lower, "x"),
		strings.HasSuffix(lower, "z"),
		strings.HasSuffix(lower, "ch"),
		strings.HasSuffix(lower, "sh"),
		strings.HasSuffix(lower, "s"):
		return word + "es"
	case strings.HasSuffix(lower, "y") && len(lower) > 1 && !isVowel(rune(lower[len(lower)-2])):
		return word[:len(word)-1] + "ies"
	case strings.HasSuffix(lower, "fe"):
		return word[:len(word)-2] + "ves"
	case strings.HasSuffix(lower, "f"):
		return word[:len(word)-1] + "ves"
	default:
		return word + "s"
	}
}

// PluralizeN returns word unchanged when n is 1 or -1, and its plural
// otherwise.
func PluralizeN(word string, n int) string {
	if n == 1 || n == -1 {
		return word
	}
	return Pluralize(word)
}

// looksPlural reports whether a lowercase word already appears to be a
// regular plural. Words ending in "ss", "us" or "is" are treated as
// singular ("glass", "bus", "axis").
func looksPlural(lower string) bool {
	if strings.HasSuffix(lower, "ies") || strings.HasSuffix(lower, "ves") {
		return true
	}
	if !strings.HasSuffix(lower, "s") {
		return false
	}
	for _, singularSuffix := range []string{"ss", "us", "is"} {
		if strings.HasSuffix(lower, singularSuffix) {
			return false
		}
	}
	return true
}

func isVowel(r rune) bool {
	return strings.ContainsRune("aeiou", r)
}

// matchCase copies leading-capital casing from src onto dst.
func matchCase(src, dst string) string {
	if src == "" || dst == "" {
		return dst
	}
	if src[0] >= 'A' && src[0] <= 'Z' {
		return strings.ToUpper(dst[:1]) + dst[1:]
	}
	return dst
}

// WordJoin joins words for a natural-language sentence:
//
//	WordJoin([]string{"a", "b", "c"}, false) // "a, b and c"
//	WordJoin([]string{"a", "b", "c"}, true)  // "a, b, and c"
//
// oxford controls the comma before the conjunction.
func WordJoin(words []string, oxford bool) string {
	return WordJoinWith(words, "and", oxford)
}

// WordJoinWith is WordJoin with a custom conjunction, e.g. "or".
func WordJoinWith(words []string, conjunction string, oxford bool) string {
	switch len(words) {
	case 0:
		return ""
	case 1:
		return words[0]
	case 2:
		return words[0] + " " + conjunction + " " + words[1]
	}

	head := strings.Join(words[:len(words)-1], ", ")
	if oxford {
		head += ","
	}
	return head + " " + conjunction + " " + words[len(words)-1]
}

// AlphaSort sorts strings by the order of characters in alphabet.
// Characters missing from the alphabet produce ErrNotInAlphabet.
func AlphaSort(values []string, alphabet string) ([]string, error) {
	rank := make(map[rune]int)
	for i, r := range alphabet {
		if _, seen := rank[r]; !seen {
			rank[r] = i
		}
	}

	keys := make([][]int, len(values))
	for i, v := range values {
		key := make([]int, 0, len(v))
		for _, r := range v {
			pos, ok := rank[r]
			if !ok {
				return nil, fmt.Errorf("%w: %q", ErrNotInAlphabet, r)
			}
			key = append(key, pos)
		}
		keys[i] = key
	}

	sorted := make([]string, len(values))
	order := make([]int, len(values))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return lessIntSlice(keys[order[a]], keys[order[b]])
	})
	for i, idx := range order {
		sorted[i] = values[idx]
	}
	return sorted, nil
}

func lessIntSlice(a, b []int) bool {
	for i := 0; i < len(a) && i < len(b); i++ {
		if a[i] != b[i] {
			return a[i] < b[i]
		}
	}
	return len(a) < len(b)
}

// ToSnake converts a CamelCase identifier to snake_case.
func ToSnake(s string) string {
	return snaker.CamelToSnake(s)
}

// ToCamel converts a snake_case identifier to CamelCase.
func ToCamel(s string) string {
	return snaker.SnakeToCamel(s)
}
