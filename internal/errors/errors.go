// Package errors defines the domain error taxonomy shared by all services.
// Every business-rule violation is surfaced as a DomainError with a
// machine-checkable kind; anything else is an internal failure and is never
// leaked to callers in detail.
package errors

import "errors"

// Kind classifies a domain failure.
type Kind string

const (
	KindNotFound   Kind = "NOT_FOUND"
	KindValidation Kind = "VALIDATION"
	KindInternal   Kind = "INTERNAL"
)

type DomainError struct {
	Kind    Kind
	Code    string
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

// NotFound builds a DomainError for a missing entity.
func NotFound(code, message string) *DomainError {
	return &DomainError{Kind: KindNotFound, Code: code, Message: message}
}

// Validation builds a DomainError for a failed precondition.
func Validation(code, message string) *DomainError {
	return &DomainError{Kind: KindValidation, Code: code, Message: message}
}

// Internal builds a DomainError for an unexpected failure. The message is a
// generic one; the underlying cause belongs in logs, not in responses.
func Internal(message string) *DomainError {
	return &DomainError{Kind: KindInternal, Code: "INTERNAL", Message: message}
}

// IsNotFound reports whether err is a NotFound domain error.
func IsNotFound(err error) bool {
	return kindOf(err) == KindNotFound
}

// IsValidation reports whether err is a Validation domain error.
func IsValidation(err error) bool {
	return kindOf(err) == KindValidation
}

func kindOf(err error) Kind {
	var de *DomainError
	if errors.As(err, &de) {
		return de.Kind
	}
	return ""
}
