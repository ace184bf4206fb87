package notes

import (
	"fmt"
	"os"
	"path/filepath"
)

// writeTextFile writes content to path, creating parent directories.
func writeTextFile(path, content string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create output dir: %w", err)
		}
	}

	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}

	return nil
}
