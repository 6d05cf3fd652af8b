// Package errors provides typed error values for the Flowkit application.
//
// Using sentinel errors allows callers to handle specific error conditions
// programmatically with errors.Is() rather than string matching.
//
// # Error Categories
//
// Errors are grouped by category:
//
//   - Scaffolding errors: local filesystem problems (ErrMissingName,
//     ErrAlreadyExists, ErrDirectoryNotFound)
//   - Remote errors: scheduler rejections and unreachability
//     (ErrAuthenticationFailed, ErrUploadFailed, ErrExecutionFailed,
//     ErrRemoteUnavailable)
//
// # Usage
//
// Return errors from internal packages:
//
//	if name == "" {
//	    return errors.ErrMissingName
//	}
//
// Wrap errors with additional context so the raw scheduler response stays
// visible to the user:
//
//	return fmt.Errorf("%w: %s", errors.ErrUploadFailed, body)
//
// Handle errors in the CLI layer with errors.Is().
package errors
