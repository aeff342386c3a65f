package model

import (
	"path/filepath"
	"strings"
)

// Canonical file type tags stored on a Document.
// The pptx extension collapses to the canonical "ppt" tag.
const (
	FileTypePDF  = "pdf"
	FileTypeDOCX = "docx"
	FileTypePPT  = "ppt"
)

var fileTypeByExtension = map[string]string{
	".pdf":  FileTypePDF,
	".docx": FileTypeDOCX,
	".ppt":  FileTypePPT,
	".pptx": FileTypePPT,
}

var allowedMIMETypes = map[string]struct{}{
	"application/pdf":               {},
	"application/msword":            {},
	"application/vnd.ms-powerpoint": {},
	"application/vnd.openxmlformats-officedocument.wordprocessingml.document":   {},
	"application/vnd.openxmlformats-officedocument.presentationml.presentation": {},
}

// FileTypeForFilename maps a filename to its canonical file type tag based on
// the extension (case-insensitive). ok is false for any extension outside the
// allow-list.
func FileTypeForFilename(name string) (fileType string, ok bool) {
	ext := strings.ToLower(filepath.Ext(name))
	fileType, ok = fileTypeByExtension[ext]
	return fileType, ok
}

// IsAllowedMIME reports whether the declared media type is one of the known
// MIME strings for PDF, Word (legacy or OOXML) or PowerPoint (legacy or OOXML).
func IsAllowedMIME(contentType string) bool {
	// Strip any ";charset=..." style parameters before matching.
	if i := strings.IndexByte(contentType, ';'); i >= 0 {
		contentType = contentType[:i]
	}
	_, ok := allowedMIMETypes[strings.TrimSpace(strings.ToLower(contentType))]
	return ok
}
