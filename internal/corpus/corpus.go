// Package corpus implements the file-reader collaborator that supplies
// training text to the frequency model, the "file reader provides
// corpus text" external interface named in spec §6.
package corpus

import (
	"fmt"
	"os"
	"strings"
)

// ReadText reads the merged corpus file and lowercases its contents,
// matching the teacher's convention of doing case normalization once at
// ingestion rather than at every query.
func ReadText(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read corpus file %q: %w", path, err)
	}
	return strings.ToLower(string(data)), nil
}
