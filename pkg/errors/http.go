package errors

import "fmt"

// HTTPError is an error that carries the HTTP status and the client facing message.
type HTTPError struct {
	StatusCode int
	Message    string
}

// NewHTTPError creates an HTTPError.
func NewHTTPError(statusCode int, message string) *HTTPError {
	return &HTTPError{StatusCode: statusCode, Message: message}
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("%d: %s", e.StatusCode, e.Message)
}
