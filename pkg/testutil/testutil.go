package testutil

import (
	"math/rand"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/spf13/afero"
)

const whitespace = " \t\n"

// WhitespacePermsList returns every ordering of 1 to 3 distinct whitespace
// characters (space, tab, newline), useful for exercising parsers.
func WhitespacePermsList() []string {
	chars := []rune(whitespace)
	var out []string

	var build func(current []rune, used []bool)
	build = func(current []rune, used []bool) {
		if len(current) > 0 {
			out = append(out, string(current))
		}
		if len(current) == len(chars) {
			return
		}
		for i, c := range chars {
			if used[i] {
				continue
			}
			used[i] = true
			build(append(current, c), used)
			used[i] = false
		}
	}
	build(nil, make([]bool, len(chars)))
	return out
}

// WhitespacePerms returns a deterministic sample of WhitespacePermsList.
// ratio is the fraction to keep, clamped to (0, 1].
func WhitespacePerms(ratio float64) []string {
	perms := WhitespacePermsList()
	if ratio <= 0 || ratio >= 1 {
		return perms
	}

	n := max(int(float64(len(perms))*ratio), 1)
	rng := rand.New(rand.NewSource(1))
	rng.Shuffle(len(perms), func(i, j int) {
		perms[i], perms[j] = perms[j], perms[i]
	})
	return perms[:n]
}

// Count returns the integers from 0 up to but not including stop.
func Count(stop int) []int {
	return CountFrom(0, stop, 1)
}

// CountFrom returns the integers from start up to but not including stop,
// in increments of step.
func CountFrom(start, stop, step int) []int {
	if step <= 0 {
		return nil
	}
	var out []int
	for i := start; i < stop; i += step {
		out = append(out, i)
	}
	return out
}

// SkipOnWindows skips the test on Windows.
func SkipOnWindows(tb testing.TB, reason string) {
	tb.Helper()
	if runtime.GOOS == "windows" {
		tb.Skip(reason)
	}
}

// SkipUnlessWindows skips the test everywhere except Windows.
func SkipUnlessWindows(tb testing.TB, reason string) {
	tb.Helper()
	if runtime.GOOS != "windows" {
		tb.Skip(reason)
	}
}

// WriteTree builds a file tree under root. Keys ending in a slash become
// directories; everything else becomes a file holding the value, with
// parent directories created as needed.
func WriteTree(tb testing.TB, fsys afero.Fs, root string, entries map[string]string) {
	tb.Helper()
	for name, content := range entries {
		path := filepath.Join(root, name)
		if strings.HasSuffix(name, "/") {
			if err := fsys.MkdirAll(path, 0o755); err != nil {
				tb.Fatalf("creating directory %s: %v", path, err)
			}
			continue
		}
		if err := fsys.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			tb.Fatalf("creating parent of %s: %v", path, err)
		}
		if err := afero.WriteFile(fsys, path, []byte(content), 0o644); err != nil {
			tb.Fatalf("writing %s: %v", path, err)
		}
	}
}
