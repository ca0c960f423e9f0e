package os

import (
	"fmt"
	"os"
)

// EnsureDir creates dir and any missing parents. It is a no-op when dir
// already exists, and fails when dir or one of its parents is a file.
func EnsureDir(dir string, mode os.FileMode) error {
	if err := os.MkdirAll(dir, mode); err != nil {
		return fmt.Errorf("could not create directory %v: %w", dir, err)
	}
	return nil
}

func FileExists(filePath string) bool {
	_, err := os.Stat(filePath)
	return !os.IsNotExist(err)
}
