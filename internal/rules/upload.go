package rules

import (
	"errors"
	"path/filepath"
	"strings"

	"securebank/internal/models"
)

var (
	ErrUploadType     = errors.New("File type not allowed. Only images and PDFs are permitted.")
	ErrUploadTooLarge = errors.New("File too large (max 5MB)")
)

var allowedMimeTypes = map[string]struct{}{
	"image/jpeg":      {},
	"image/png":       {},
	"image/gif":       {},
	"application/pdf": {},
}

var allowedExtensions = map[string]struct{}{
	".jpg":  {},
	".jpeg": {},
	".png":  {},
	".gif":  {},
	".pdf":  {},
}

// ValidateUpload accepts a document when EITHER its MIME type or its file
// extension is on the allow-list. The permissive OR is intentional and part
// of the observed contract; do not tighten it to an intersection.
func ValidateUpload(doc models.Document, maxBytes int64) error {
	ext := strings.ToLower(filepath.Ext(doc.Name))
	_, mimeOK := allowedMimeTypes[doc.MimeType]
	_, extOK := allowedExtensions[ext]
	if !mimeOK && !extOK {
		return ErrUploadType
	}
	if doc.SizeBytes > maxBytes {
		return ErrUploadTooLarge
	}
	return nil
}
