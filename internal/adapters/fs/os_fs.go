package fs

import (
	"os"
	"path/filepath"
)

// OSFileSystem reads from the local disk. Relative paths resolve against
// Root when it is set, otherwise against the working directory.
type OSFileSystem struct {
	Root string
}

func NewOSFileSystem(root string) *OSFileSystem {
	return &OSFileSystem{Root: root}
}

func (fs *OSFileSystem) resolve(path string) string {
	if fs.Root == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(fs.Root, path)
}

func (fs *OSFileSystem) ReadFile(path string) ([]byte, error) {
	return os.ReadFile(fs.resolve(path))
}

func (fs *OSFileSystem) FileExists(path string) bool {
	info, err := os.Stat(fs.resolve(path))
	return err == nil && !info.IsDir()
}
