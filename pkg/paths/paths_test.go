package paths

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"

	"github.com/matzehuels/toolbelt/pkg/testutil"
)

func TestMaybeMake(t *testing.T) {
	fsys := afero.NewMemMapFs()

	require.NoError(t, MaybeMake(fsys, "dir", 0o755))

	// Second call is a no-op, not an error.
	require.NoError(t, MaybeMake(fsys, "dir", 0o755))

	exists, err := afero.DirExists(fsys, "dir")
	require.NoError(t, err)
	require.True(t, exists)
}

func TestMaybeMakeAll(t *testing.T) {
	fsys := afero.NewMemMapFs()

	require.NoError(t, MaybeMakeAll(fsys, "a/b/c", 0o755))

	exists, err := afero.DirExists(fsys, "a/b/c")
	require.NoError(t, err)
	require.True(t, exists)
}

func TestReadWriteAppendDelete(t *testing.T) {
	fsys := afero.NewMemMapFs()

	require.NoError(t, Write(fsys, "file.txt", "hello"))
	require.NoError(t, Append(fsys, "file.txt", " world"))

	got, err := Read(fsys, "file.txt")
	require.NoError(t, err)
	require.Equal(t, "hello world", got)

	require.NoError(t, Delete(fsys, "file.txt"))
	_, err = Read(fsys, "file.txt")
	require.Error(t, err)
}

func TestAppendCreates(t *testing.T) {
	fsys := afero.NewMemMapFs()

	require.NoError(t, Append(fsys, "new.txt", "content"))

	got, err := Read(fsys, "new.txt")
	require.NoError(t, err)
	require.Equal(t, "content", got)
}

func TestCleanWriter(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain", "a\nb", "a\nb\n"},
		{"trailing spaces", "a   \nb\t", "a\nb\n"},
		{"trailing blank lines", "a\n\n\n", "a\n"},
		{"inner blank kept", "a\n\nb", "a\n\nb\n"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, CleanWriter(&buf, tt.in))
			require.Equal(t, tt.want, buf.String())
		})
	}
}

func TestWriteClean(t *testing.T) {
	fsys := afero.NewMemMapFs()

	require.NoError(t, WriteClean(fsys, "clean.txt", "line one  \nline two\n\n\n"))

	got, err := Read(fsys, "clean.txt")
	require.NoError(t, err)
	require.Equal(t, "line one\nline two\n", got)
}

func TestMakeExecutable(t *testing.T) {
	fsys := afero.NewMemMapFs()
	require.NoError(t, Write(fsys, "script.sh", "#!/bin/sh\n"))

	require.NoError(t, MakeExecutable(fsys, "script.sh"))

	info, err := fsys.Stat("script.sh")
	require.NoError(t, err)
	require.NotZero(t, info.Mode()&0o111)
}

func TestCopyTree(t *testing.T) {
	fsys := afero.NewMemMapFs()
	testutil.WriteTree(t, fsys, "src", map[string]string{
		"a.txt":     "a",
		"sub/b.txt": "b",
	})

	require.NoError(t, CopyTree(fsys, "src", "dst"))

	for path, want := range map[string]string{
		"dst/a.txt":     "a",
		"dst/sub/b.txt": "b",
	} {
		got, err := Read(fsys, path)
		require.NoError(t, err)
		require.Equal(t, want, got)
	}

	// Copying onto an existing destination fails.
	err := CopyTree(fsys, "src", "dst")
	require.Error(t, err)
	require.True(t, strings.Contains(err.Error(), "already exists"))
}

func TestParentPath(t *testing.T) {
	require.Equal(t, filepath.Join("a", "b"), ParentPath(filepath.Join("a", "b", "c")))
}

func TestRelPath(t *testing.T) {
	base := t.TempDir()
	inside := filepath.Join(base, "sub", "file.txt")

	require.Equal(t, filepath.Join("sub", "file.txt"), RelPath(inside, base))

	// A path outside base comes back absolute.
	outside := filepath.Join(filepath.Dir(base), "elsewhere")
	got := RelPath(outside, base)
	require.True(t, filepath.IsAbs(got), "got %q", got)
}

func TestTempDir(t *testing.T) {
	fsys := afero.NewMemMapFs()

	dir, cleanup, err := TempDir(fsys, "toolbelt-test")
	require.NoError(t, err)
	require.NotEmpty(t, dir)

	require.NoError(t, Write(fsys, filepath.Join(dir, "f"), "x"))
	cleanup()

	exists, err := afero.DirExists(fsys, dir)
	require.NoError(t, err)
	require.False(t, exists)
}
