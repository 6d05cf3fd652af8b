package errors

import "errors"

// Scaffolding errors indicate problems creating a collection or flow tree.
var (
	// ErrMissingName indicates the collection or flow name was empty.
	ErrMissingName = errors.New("name must not be empty")

	// ErrAlreadyExists indicates a directory of the requested name already exists.
	ErrAlreadyExists = errors.New("directory already exists")

	// ErrDirectoryNotFound indicates the named collection directory does not exist.
	ErrDirectoryNotFound = errors.New("directory not found")
)

// Remote errors indicate the scheduler rejected or never received a request.
var (
	// ErrAuthenticationFailed indicates the scheduler rejected the login request.
	ErrAuthenticationFailed = errors.New("scheduler authentication failed")

	// ErrUploadFailed indicates the scheduler rejected the project upload.
	ErrUploadFailed = errors.New("project upload failed")

	// ErrExecutionFailed indicates the scheduler rejected the flow execution request.
	ErrExecutionFailed = errors.New("flow execution failed")

	// ErrRemoteUnavailable indicates the scheduler could not be reached at all
	// (connection refused, DNS failure, or request timeout).
	ErrRemoteUnavailable = errors.New("scheduler unreachable")
)
