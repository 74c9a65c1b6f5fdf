package pathlib

import (
	"os"
	"path/filepath"
)

func Abs(path string) (string, error) {
	return filepath.Abs(path)
}

func IsFile(pathname string) bool {
	stat, err := os.Stat(pathname)
	return err == nil && stat.Mode().IsRegular()
}

func EnsureParentDirectory(resource string) error {
	return os.MkdirAll(filepath.Dir(resource), 0o755)
}
