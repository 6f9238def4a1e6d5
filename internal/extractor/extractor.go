package extractor

import (
	"jobsearch-agent/pkg/utils"
)

// Supported MIME types for resume uploads
const (
	MimePDF  = "application/pdf"
	MimeDocx = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	MimeDoc  = "application/msword"
)

// Extract converts an uploaded document into plain text based on its
// declared content type. An empty result is valid; a document that cannot
// be decoded at all fails with an extraction error.
func Extract(data []byte, contentType string) (string, error) {
	switch contentType {
	case MimePDF:
		return extractPDF(data)
	case MimeDocx, MimeDoc:
		return extractDocx(data)
	default:
		return "", utils.NewUnsupportedFileTypeError(contentType)
	}
}

// Extension returns the archive file extension for a declared content type.
// Unknown types get no extension rather than an error; archiving accepts
// anything the client sends.
func Extension(contentType string) string {
	switch contentType {
	case MimePDF:
		return ".pdf"
	case MimeDocx, MimeDoc:
		return ".docx"
	default:
		return ""
	}
}
