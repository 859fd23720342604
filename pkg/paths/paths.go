package paths

import (
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
)

// Default returns the OS-backed filesystem used when helpers receive nil.
func Default() afero.Fs {
	return afero.NewOsFs()
}

func orDefault(fsys afero.Fs) afero.Fs {
	if fsys == nil {
		return Default()
	}
	return fsys
}

// MaybeMake creates the directory if it does not already exist.
// Unlike Mkdir, an existing directory is not an error.
func MaybeMake(fsys afero.Fs, dir string, perm fs.FileMode) error {
	fsys = orDefault(fsys)

	if exists, err := afero.DirExists(fsys, dir); err != nil {
		return err
	} else if exists {
		return nil
	}
	return fsys.Mkdir(dir, perm)
}

// MaybeMakeAll creates the directory and any missing parents, mkdir -p
// style.
func MaybeMakeAll(fsys afero.Fs, dir string, perm fs.FileMode) error {
	return orDefault(fsys).MkdirAll(dir, perm)
}

// Delete removes the named file.
func Delete(fsys afero.Fs, name string) error {
	return orDefault(fsys).Remove(name)
}

// Read returns the contents of the named file as a string.
func Read(fsys afero.Fs, name string) (string, error) {
	data, err := afero.ReadFile(orDefault(fsys), name)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// Write writes content to the named file, truncating any previous content.
func Write(fsys afero.Fs, name, content string) error {
	return afero.WriteFile(orDefault(fsys), name, []byte(content), 0o644)
}

// Append appends content to the named file, creating it if necessary.
func Append(fsys afero.Fs, name, content string) error {
	f, err := orDefault(fsys).OpenFile(name, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}
	defer f.Close()

	_, err = f.WriteString(content)
	return err
}

// CleanWriter writes s to w with trailing whitespace stripped from every
// line and trailing blank lines dropped. Each remaining line ends in \n.
func CleanWriter(w io.Writer, s string) error {
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " \t")
	}
	for len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}

	for _, line := range lines {
		if _, err := io.WriteString(w, line+"\n"); err != nil {
			return err
		}
	}
	return nil
}

// WriteClean writes content to the named file through CleanWriter.
func WriteClean(fsys afero.Fs, name, content string) error {
	f, err := orDefault(fsys).Create(name)
	if err != nil {
		return err
	}
	defer f.Close()

	return CleanWriter(f, content)
}

// MakeExecutable adds the executable bits to the file's current mode.
func MakeExecutable(fsys afero.Fs, name string) error {
	fsys = orDefault(fsys)

	info, err := fsys.Stat(name)
	if err != nil {
		return err
	}
	return fsys.Chmod(name, info.Mode()|0o111)
}

// CopyTree recursively copies the directory src to dst.
// dst must not already exist.
func CopyTree(fsys afero.Fs, src, dst string) error {
	fsys = orDefault(fsys)

	if exists, err := afero.DirExists(fsys, dst); err != nil {
		return err
	} else if exists {
		return fmt.Errorf("destination %q already exists", dst)
	}

	srcInfo, err := fsys.Stat(src)
	if err != nil {
		return err
	}
	if err := fsys.MkdirAll(dst, srcInfo.Mode().Perm()); err != nil {
		return err
	}

	return afero.Walk(fsys, src, func(path string, info fs.FileInfo, err error) error {
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(src, path)
		if err != nil {
			return err
		}
		if rel == "." {
			return nil
		}
		target := filepath.Join(dst, rel)

		if info.IsDir() {
			return fsys.MkdirAll(target, info.Mode().Perm())
		}
		return copyFile(fsys, path, target, info.Mode().Perm())
	})
}

func copyFile(fsys afero.Fs, src, dst string, perm fs.FileMode) error {
	in, err := fsys.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := fsys.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, perm)
	if err != nil {
		return err
	}
	defer out.Close()

	_, err = io.Copy(out, in)
	return err
}

// ParentPath returns the parent directory of the given path.
func ParentPath(path string) string {
	return filepath.Dir(path)
}

// RelPath returns path relative to base or, if that would require
// traversal outside base, the absolute path instead.
func RelPath(path, base string) string {
	abs, err := filepath.Abs(path)
	if err != nil {
		return path
	}
	absBase, err := filepath.Abs(base)
	if err != nil {
		return abs
	}

	rel, err := filepath.Rel(absBase, abs)
	if err != nil || strings.HasPrefix(rel, "..") {
		return abs
	}
	return rel
}
