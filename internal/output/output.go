// Package output writes generated artifacts and renders terminal progress.
package output

import (
	"errors"
	"fmt"
	"os"
)

var ErrFileWrite = errors.New("file write error")

// WriteFile creates or truncates path and writes data to it.
func WriteFile(path string, data []byte) error {
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("%w: %w", ErrFileWrite, err)
	}
	return nil
}
