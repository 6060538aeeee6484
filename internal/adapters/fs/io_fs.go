package fs

import (
	iofs "io/fs"
	"path/filepath"
	"strings"
)

// IOFileSystem adapts any fs.FS, typically an embed.FS holding the built
// client assets.
type IOFileSystem struct {
	fsys iofs.FS
}

func NewIOFileSystem(fsys iofs.FS) *IOFileSystem {
	return &IOFileSystem{fsys: fsys}
}

func clean(path string) string {
	return strings.TrimPrefix(filepath.ToSlash(filepath.Clean(path)), "/")
}

func (fs *IOFileSystem) ReadFile(path string) ([]byte, error) {
	return iofs.ReadFile(fs.fsys, clean(path))
}

func (fs *IOFileSystem) FileExists(path string) bool {
	info, err := iofs.Stat(fs.fsys, clean(path))
	return err == nil && !info.IsDir()
}
