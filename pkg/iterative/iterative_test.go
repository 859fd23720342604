package iterative

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestChunks(t *testing.T) {
	got, err := Chunks([]int{1, 2, 3, 4, 5}, 2)
	require.NoError(t, err)
	require.Equal(t, [][]int{{1, 2}, {3, 4}, {5}}, got)

	got, err = Chunks([]int{1, 2}, 5)
	require.NoError(t, err)
	require.Equal(t, [][]int{{1, 2}}, got)

	got, err = Chunks[int](nil, 2)
	require.NoError(t, err)
	require.Nil(t, got)

	_, err = Chunks([]int{1}, 0)
	require.ErrorIs(t, err, ErrInvalidSize)
}

func TestSplitLen(t *testing.T) {
	got, err := SplitLen("Spam Spam Spam Spam Spam Spam Spam Spam ", 5)
	require.NoError(t, err)
	require.Equal(t, []string{"Spam ", "Spam ", "Spam ", "Spam ", "Spam ", "Spam ", "Spam ", "Spam "}, got)

	got, err = SplitLen("abcde", 2)
	require.NoError(t, err)
	require.Equal(t, []string{"ab", "cd", "e"}, got)

	got, err = SplitLen("héllo", 2)
	require.NoError(t, err)
	require.Equal(t, []string{"hé", "ll", "o"}, got)

	_, err = SplitLen("x", 0)
	require.ErrorIs(t, err, ErrInvalidSize)
}

func TestPermutations(t *testing.T) {
	got, err := Permutations([]string{"a", "b", "c"}, 2)
	require.NoError(t, err)
	require.Equal(t, [][]string{{"a", "b"}, {"a", "c"}, {"b", "c"}}, got)

	// Longer than the input yields nothing.
	got, err = Permutations([]string{"a"}, 3)
	require.NoError(t, err)
	require.Nil(t, got)

	_, err = Permutations([]string{"a", "b"}, 0)
	require.ErrorIs(t, err, ErrZeroLength)
}

func TestPermutationsFull(t *testing.T) {
	got, err := Permutations([]int{1, 2, 3}, 3)
	require.NoError(t, err)
	require.Equal(t, [][]int{{1, 2, 3}, {1, 3, 2}, {2, 1, 3}}, got)
}

func TestDoubleChain(t *testing.T) {
	got := DoubleChain([][][]int{{{1, 2}, {3, 4}}, {{5, 6}, {7, 8}}})
	require.Equal(t, []int{1, 2, 3, 4, 5, 6, 7, 8}, got)

	require.Nil(t, DoubleChain[int](nil))
}

func TestFlatten(t *testing.T) {
	got, err := Flatten([]any{1, []any{2, []any{3, 4}}, 5})
	require.NoError(t, err)
	require.Equal(t, []any{1, 2, 3, 4, 5}, got)

	// Typed slices flatten too; strings stay whole.
	got, err = Flatten([]any{"ab", []string{"cd", "ef"}})
	require.NoError(t, err)
	require.Equal(t, []any{"ab", "cd", "ef"}, got)

	_, err = Flatten([]any{1, make(chan int)})
	require.ErrorIs(t, err, ErrUnsupportedElement)
}

func TestMakeTree(t *testing.T) {
	got, err := MakeTree([]any{
		"pkg",
		[]any{
			"dates",
			"words",
			[]any{
				"fonts.go",
				"words.go",
			},
		},
		"go.mod",
	})
	require.NoError(t, err)
	require.Equal(t, []string{
		"├── pkg",
		"│   ├── dates",
		"│   └── words",
		"│       ├── fonts.go",
		"│       └── words.go",
		"└── go.mod",
	}, got)
}

func TestMakeTreeUnsupported(t *testing.T) {
	_, err := MakeTree([]any{"a", 42})
	require.ErrorIs(t, err, ErrUnsupportedElement)
}
