// Package decode turns SOP document files into a single linear text stream.
// Section extraction downstream only cares about lines, so every format is
// flattened: headings stay on their own lines, structure is discarded.
package decode

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Options controls format-specific decoding behavior.
type Options struct {
	PDFFallbackPdftotext bool
}

// SupportedExtensions lists file extensions this service can decode.
var SupportedExtensions = map[string]bool{
	".txt":      true,
	".md":       true,
	".markdown": true,
	".html":     true,
	".htm":      true,
	".pdf":      true,
	".docx":     true,
}

// Supported checks if a file extension is decodable.
func Supported(filename string) bool {
	return SupportedExtensions[strings.ToLower(filepath.Ext(filename))]
}

// File decodes the document at path into plain text.
func File(path string, opts Options) (string, error) {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".txt":
		return decodeText(path)
	case ".md", ".markdown":
		return decodeMarkdown(path)
	case ".html", ".htm":
		return decodeHTML(path)
	case ".pdf":
		return decodePDF(path, opts.PDFFallbackPdftotext)
	case ".docx":
		return decodeDOCX(path)
	default:
		return "", fmt.Errorf("unsupported file extension: %s", ext)
	}
}
