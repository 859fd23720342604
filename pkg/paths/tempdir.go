package paths

import (
	"github.com/charmbracelet/log"
	"github.com/spf13/afero"
)

// TempDir creates a temporary directory and returns its path alongside a
// cleanup function. Removal failures cannot be returned from the cleanup,
// so they are logged instead.
func TempDir(fsys afero.Fs, pattern string) (string, func(), error) {
	fsys = orDefault(fsys)

	dir, err := afero.TempDir(fsys, "", pattern)
	if err != nil {
		return "", nil, err
	}

	cleanup := func() {
		if err := fsys.RemoveAll(dir); err != nil {
			log.Warn("failed to remove temporary directory", "dir", dir, "err", err)
		}
	}
	return dir, cleanup, nil
}
