package words

import (
	_ "embed"
	"math/rand"
	"strings"
	"sync"
)

// wordList is a list of common English words, one per line, derived from
// word-frequency counts over a large web corpus.
//
//go:embed words.txt
var wordList string

var parseWords = sync.OnceValue(func() []string {
	return strings.Fields(wordList)
})

// List returns the embedded word list, optionally filtered by length.
// maxLen of -1 means no upper limit. The returned slice is freshly
// allocated and safe to modify.
func List(minLen, maxLen int) []string {
	all := parseWords()

	out := make([]string, 0, len(all))
	for _, w := range all {
		if len(w) < minLen {
			continue
		}
		if maxLen != -1 && len(w) > maxLen {
			continue
		}
		out = append(out, w)
	}
	return out
}

// Random returns a random word whose length is between minLen and maxLen.
// maxLen of -1 means no upper limit. It returns "" when no word matches.
func Random(minLen, maxLen int) string {
	candidates := List(minLen, maxLen)
	if len(candidates) == 0 {
		return ""
	}
	return candidates[rand.Intn(len(candidates))]
}
