package utils

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrorKind identifies the failure class of an AppError. Handlers map kinds
// to HTTP status codes; nothing in the pipeline retries on any of them.
type ErrorKind string

const (
	KindUnsupportedFileType ErrorKind = "unsupported_file_type"
	KindExtractionError     ErrorKind = "extraction_failed"
	KindMissingInput        ErrorKind = "missing_input"
	KindUpstreamDecodeError ErrorKind = "upstream_decode_failed"
	KindUpstreamUnavailable ErrorKind = "upstream_unavailable"
	KindArchiveWriteError   ErrorKind = "archive_write_failed"
)

// AppError is the application error type surfaced to API clients
type AppError struct {
	Kind    ErrorKind
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// KindOf returns the error kind of err, or an empty kind for foreign errors
func KindOf(err error) ErrorKind {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return ""
}

// HTTPStatus maps an error to the response status code for the error envelope
func HTTPStatus(err error) int {
	switch KindOf(err) {
	case KindMissingInput, KindUnsupportedFileType:
		return http.StatusBadRequest
	case KindExtractionError:
		return http.StatusUnprocessableEntity
	case KindUpstreamDecodeError, KindUpstreamUnavailable:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

func NewUnsupportedFileTypeError(contentType string) *AppError {
	return &AppError{
		Kind:    KindUnsupportedFileType,
		Message: fmt.Sprintf("unsupported file type: %s", contentType),
	}
}

func NewExtractionError(cause error) *AppError {
	return &AppError{
		Kind:    KindExtractionError,
		Message: "failed to extract text from document",
		Err:     cause,
	}
}

func NewMissingInputError() *AppError {
	return &AppError{
		Kind:    KindMissingInput,
		Message: "either free text input or a resume file is required",
	}
}

func NewUpstreamDecodeError(cause error) *AppError {
	return &AppError{
		Kind:    KindUpstreamDecodeError,
		Message: "failed to decode model response",
		Err:     cause,
	}
}

func NewUpstreamUnavailableError(cause error) *AppError {
	return &AppError{
		Kind:    KindUpstreamUnavailable,
		Message: "model API request failed",
		Err:     cause,
	}
}

func NewArchiveWriteError(cause error) *AppError {
	return &AppError{
		Kind:    KindArchiveWriteError,
		Message: "failed to archive uploaded file",
		Err:     cause,
	}
}
