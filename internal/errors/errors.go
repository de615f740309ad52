package errors

import "errors"

// This package defines a centralized set of sentinel errors for the application.
// Using sentinel errors allows services to return specific, recognizable error types
// without coupling them to implementation details like HTTP status codes. The API
// layer can then use `errors.Is()` to check for these specific errors and map
// them to the correct HTTP responses.

var (
	// ErrNotFound signifies that a requested resource could not be located.
	// This is typically mapped to a 404 Not Found HTTP status.
	ErrNotFound = errors.New("resource not found")

	// ErrValidation signifies that input data provided by a client failed
	// business rule validation.
	// This is typically mapped to a 400 Bad Request HTTP status.
	ErrValidation = errors.New("validation failed")

	// ErrCompletion signifies that a call to the external text-completion API
	// failed. The send-message flow never retries it internally.
	// This is typically mapped to a 500 Internal Server Error HTTP status.
	ErrCompletion = errors.New("completion failed")

	// ErrStorage signifies that a persistence operation failed for a reason
	// other than the target entity being absent.
	// This is typically mapped to a 500 Internal Server Error HTTP status.
	ErrStorage = errors.New("storage failure")

	// ErrInternal signifies an unexpected error on the server. This is a generic
	// error used to prevent leaking sensitive implementation details to the client.
	// This is typically mapped to a 500 Internal Server Error HTTP status.
	ErrInternal = errors.New("internal server error")
)
