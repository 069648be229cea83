// Package extract turns uploaded résumé binaries into plain text.
package extract

import (
	"fmt"
	"os"

	"code.sajari.com/docconv"
)

// Placeholder is stored verbatim when the uploaded format has no text
// extractor. Kept stable because clients display it as-is.
const Placeholder = "Text extraction for this file type is not supported yet."

// TextExtractor extracts plain text from an uploaded file.
type TextExtractor interface {
	// Extract returns the text content for the given bytes. Formats without a
	// parser yield Placeholder with no error; a parser failure returns an
	// error and the caller decides how to degrade.
	Extract(data []byte, mimeType string) (string, error)
}

// DocconvExtractor extracts PDF text with docconv. The upload is spooled to a
// scoped temp file that is removed on every exit path.
type DocconvExtractor struct {
	tempDir string
}

// NewDocconvExtractor creates an extractor that spools uploads under tempDir.
func NewDocconvExtractor(tempDir string) *DocconvExtractor {
	return &DocconvExtractor{tempDir: tempDir}
}

var _ TextExtractor = (*DocconvExtractor)(nil)

var convertPath = docconv.ConvertPath

// Extract writes the upload to a temp file, parses it if it is a PDF, and
// removes the temp file regardless of outcome.
func (e *DocconvExtractor) Extract(data []byte, mimeType string) (string, error) {
	f, err := os.CreateTemp(e.tempDir, "upload-*")
	if err != nil {
		return "", fmt.Errorf("create temp file: %w", err)
	}
	path := f.Name()
	defer os.Remove(path)

	if _, err := f.Write(data); err != nil {
		f.Close()
		return "", fmt.Errorf("write temp file: %w", err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("close temp file: %w", err)
	}

	if mimeType != "application/pdf" {
		return Placeholder, nil
	}

	res, err := convertPath(path)
	if err != nil {
		return "", fmt.Errorf("convert pdf: %w", err)
	}
	return res.Body, nil
}
