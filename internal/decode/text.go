package decode

import (
	"os"
	"strings"
)

// decodeText reads a plain text file, normalizing line endings so that
// downstream line-anchored matching sees bare newlines.
func decodeText(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	text := strings.ReplaceAll(string(data), "\r\n", "\n")
	return text, nil
}
