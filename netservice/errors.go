package netservice

import (
	"errors"
	"fmt"
)

// ServiceError represents different types of request pipeline errors
type ServiceError interface {
	error
	Type() ErrorType
}

// ErrorType defines the category of service error
type ErrorType string

const (
	TransportError       ErrorType = "transport"
	InvalidResponseError ErrorType = "invalid_response_format"
	NoDataError          ErrorType = "no_data_in_response"
	ValidationError      ErrorType = "validation_failed"
	DecodingError        ErrorType = "decoding"
	StringDecodingError  ErrorType = "decoding_string"
)

// transportError represents a failure of the underlying transport call
type transportError struct {
	message string
	wrapped error
}

func (e *transportError) Error() string {
	if e.wrapped != nil {
		return fmt.Sprintf("transport error: %s: %v", e.message, e.wrapped)
	}
	return fmt.Sprintf("transport error: %s", e.message)
}

func (e *transportError) Type() ErrorType {
	return TransportError
}

func (e *transportError) Unwrap() error {
	return e.wrapped
}

// invalidResponseError signals a response that lacks the expected
// status/header shape
type invalidResponseError struct {
	message string
}

func (e *invalidResponseError) Error() string {
	return fmt.Sprintf("invalid response format: %s", e.message)
}

func (e *invalidResponseError) Type() ErrorType {
	return InvalidResponseError
}

// noDataError signals a successful exchange that returned no body
type noDataError struct{}

func (e *noDataError) Error() string {
	return "no data in response"
}

func (e *noDataError) Type() ErrorType {
	return NoDataError
}

// validationError wraps the cause reported by a rejecting validator
type validationError struct {
	message string
	wrapped error
}

func (e *validationError) Error() string {
	if e.wrapped != nil {
		return fmt.Sprintf("validation failed: %s: %v", e.message, e.wrapped)
	}
	return fmt.Sprintf("validation failed: %s", e.message)
}

func (e *validationError) Type() ErrorType {
	return ValidationError
}

func (e *validationError) Unwrap() error {
	return e.wrapped
}

// decodingError wraps a JSON decode failure from the typed facade
type decodingError struct {
	message string
	wrapped error
}

func (e *decodingError) Error() string {
	if e.wrapped != nil {
		return fmt.Sprintf("decoding error: %s: %v", e.message, e.wrapped)
	}
	return fmt.Sprintf("decoding error: %s", e.message)
}

func (e *decodingError) Type() ErrorType {
	return DecodingError
}

func (e *decodingError) Unwrap() error {
	return e.wrapped
}

// stringDecodingError signals bytes that are not valid under the requested
// text encoding
type stringDecodingError struct {
	charset string
	wrapped error
}

func (e *stringDecodingError) Error() string {
	if e.wrapped != nil {
		return fmt.Sprintf("string decoding error: body is not valid %s: %v", e.charset, e.wrapped)
	}
	return fmt.Sprintf("string decoding error: body is not valid %s", e.charset)
}

func (e *stringDecodingError) Type() ErrorType {
	return StringDecodingError
}

func (e *stringDecodingError) Unwrap() error {
	return e.wrapped
}

// NewTransportError creates a new transport error
func NewTransportError(message string, wrapped error) ServiceError {
	return &transportError{
		message: message,
		wrapped: wrapped,
	}
}

// NewInvalidResponseError creates a new invalid-response-format error
func NewInvalidResponseError(message string) ServiceError {
	return &invalidResponseError{
		message: message,
	}
}

// NewNoDataError creates a new no-data error
func NewNoDataError() ServiceError {
	return &noDataError{}
}

// NewValidationError creates a new validation error
func NewValidationError(message string, wrapped error) ServiceError {
	return &validationError{
		message: message,
		wrapped: wrapped,
	}
}

// NewDecodingError creates a new decoding error
func NewDecodingError(message string, wrapped error) ServiceError {
	return &decodingError{
		message: message,
		wrapped: wrapped,
	}
}

// NewStringDecodingError creates a new string-decoding error
func NewStringDecodingError(charset string, wrapped error) ServiceError {
	return &stringDecodingError{
		charset: charset,
		wrapped: wrapped,
	}
}

// UnexpectedStatusError is the cause reported by the stock status
// validators. It survives the validation wrapping, so error handlers can
// classify failures by status code.
type UnexpectedStatusError struct {
	StatusCode int
	Body       []byte
}

func (e *UnexpectedStatusError) Error() string {
	return fmt.Sprintf("unexpected status code %d", e.StatusCode)
}

// IsErrorType checks if an error is of a specific type
func IsErrorType(err error, errorType ErrorType) bool {
	if err == nil {
		return false
	}
	var svcErr ServiceError
	if errors.As(err, &svcErr) {
		return svcErr.Type() == errorType
	}
	return false
}

// IsHTTPStatusError checks if an error carries a specific rejected status code
func IsHTTPStatusError(err error, statusCode int) bool {
	var statusErr *UnexpectedStatusError
	if errors.As(err, &statusErr) {
		return statusErr.StatusCode == statusCode
	}
	return false
}

// IsSuccessStatus checks if a status code represents success (2xx)
func IsSuccessStatus(statusCode int) bool {
	return statusCode >= 200 && statusCode < 300
}
