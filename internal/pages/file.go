package pages

import (
	"fmt"
	"os"
)

// ReadFile loads a delimited document from disk
func ReadFile(path, delimiter string) (Slice, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	pages, err := Split(string(data), delimiter)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return pages, nil
}
