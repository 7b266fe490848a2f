package validation

import (
	"fmt"
	"io"
	"strings"

	"github.com/username/fundfolio/src/logger"
)

// AllowedClientContentTypes is a map for quick lookup of allowed
// client-declared MIME types for document upload.
var AllowedClientContentTypes = map[string]bool{
	"application/pdf":          true,
	"application/x-pdf":        true,
	"application/octet-stream": true, // Fallback; magic-byte check still applies
}

// ValidateClientContentType checks the Content-Type header provided by the client.
func ValidateClientContentType(contentType string) error {
	normalized := strings.ToLower(strings.TrimSpace(strings.Split(contentType, ";")[0]))
	if allowed, exists := AllowedClientContentTypes[normalized]; !exists || !allowed {
		logger.L.Warn("Disallowed client-declared Content-Type", "contentType", contentType)
		return fmt.Errorf("client-declared file type '%s' is not allowed for PDF upload", contentType)
	}
	return nil
}

// ValidateFilename checks the file extension; only PDF documents are accepted.
func ValidateFilename(filename string) error {
	if !strings.HasSuffix(strings.ToLower(filename), ".pdf") {
		return fmt.Errorf("file '%s' is not a PDF document", filename)
	}
	return nil
}

// ValidatePDFMagicBytes checks the actual file content signature. PDF files
// start with "%PDF-".
func ValidatePDFMagicBytes(file io.ReadSeeker) error {
	if file == nil {
		return fmt.Errorf("file is nil")
	}

	buffer := make([]byte, 5)
	n, err := file.Read(buffer)
	if err != nil && err != io.EOF {
		return fmt.Errorf("failed to read file for content checking: %w", err)
	}

	// IMPORTANT: Reset the file read pointer so the upload can read the full file.
	if _, seekErr := file.Seek(0, io.SeekStart); seekErr != nil {
		return fmt.Errorf("failed to reset file read pointer: %w", seekErr)
	}

	if n < 5 || string(buffer[:5]) != "%PDF-" {
		logger.L.Warn("File content does not look like a PDF", "prefix", string(buffer[:n]))
		return fmt.Errorf("file content is not consistent with a PDF document")
	}
	return nil
}
