package iterative

import (
	"errors"
	"fmt"
	"reflect"
)

// Sentinel errors for invalid arguments and unsupported elements.
var (
	ErrInvalidSize        = errors.New("size must be at least 1")
	ErrZeroLength         = errors.New("length cannot be 0")
	ErrUnsupportedElement = errors.New("unsupported element")
)

// Chunks splits items into consecutive slices of at most n elements. The
// final chunk may be shorter.
func Chunks[T any](items []T, n int) ([][]T, error) {
	if n < 1 {
		return nil, ErrInvalidSize
	}

	var out [][]T
	for start := 0; start < len(items); start += n {
		end := min(start+n, len(items))
		out = append(out, items[start:end:end])
	}
	return out, nil
}

// SplitLen splits a string into pieces of at most n characters.
func SplitLen(s string, n int) ([]string, error) {
	if n < 1 {
		return nil, ErrInvalidSize
	}

	runes := []rune(s)
	var out []string
	for start := 0; start < len(runes); start += n {
		end := min(start+n, len(runes))
		out = append(out, string(runes[start:end]))
	}
	return out, nil
}

// Permutations returns the length-n orderings of items, skipping any ordering
// whose reverse was already produced.
func Permutations[T comparable](items []T, n int) ([][]T, error) {
	if n == 0 {
		return nil, ErrZeroLength
	}
	if n > len(items) {
		return nil, nil
	}

	var out [][]T
	indices := make([]int, 0, n)
	used := make([]bool, len(items))

	var build func()
	build = func() {
		if len(indices) == n {
			perm := make([]T, n)
			for i, idx := range indices {
				perm[i] = items[idx]
			}
			if !containsReversed(out, perm) {
				out = append(out, perm)
			}
			return
		}
		for i := range items {
			if used[i] {
				continue
			}
			used[i] = true
			indices = append(indices, i)
			build()
			indices = indices[:len(indices)-1]
			used[i] = false
		}
	}
	build()
	return out, nil
}

func containsReversed[T comparable](perms [][]T, perm []T) bool {
	for _, p := range perms {
		if isReverse(p, perm) {
			return true
		}
	}
	return false
}

func isReverse[T comparable](a, b []T) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[len(b)-1-i] {
			return false
		}
	}
	return true
}

// DoubleChain flattens two levels of nesting into a single slice.
func DoubleChain[T any](items [][][]T) []T {
	var out []T
	for _, outer := range items {
		for _, inner := range outer {
			out = append(out, inner...)
		}
	}
	return out
}

// Flatten recursively flattens arbitrarily nested slices. Strings are
// treated as scalars, not as sequences of characters.
func Flatten(items []any) ([]any, error) {
	var out []any
	for _, item := range items {
		if item == nil {
			out = append(out, item)
			continue
		}
		v := reflect.ValueOf(item)
		switch v.Kind() {
		case reflect.Slice, reflect.Array:
			nested := make([]any, v.Len())
			for i := range nested {
				nested[i] = v.Index(i).Interface()
			}
			flat, err := Flatten(nested)
			if err != nil {
				return nil, err
			}
			out = append(out, flat...)
		case reflect.Chan, reflect.Func:
			return nil, fmt.Errorf("%w: %T", ErrUnsupportedElement, item)
		default:
			out = append(out, item)
		}
	}
	return out, nil
}
