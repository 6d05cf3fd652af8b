// Package workflows provides high-level orchestration for Flowkit commands.
//
// Workflows coordinate the scaffold, archive, and azkaban packages to
// implement complete user-facing operations, independent of CLI concerns
// like flag parsing, spinners, and output formatting.
//
// # Design Philosophy
//
// The cmd/ package should be a thin layer that:
//   - Parses command-line flags and arguments
//   - Calls the appropriate workflow function
//   - Formats the result for display
//
// Workflows handle everything else:
//   - Validating the local collection directory
//   - Building and disposing of the transient archive
//   - Driving the scheduler API in the required order
//
// # Error Handling
//
// Workflows return typed errors from the internal/errors package, allowing
// the CLI layer to provide appropriate user-facing messages without string
// matching. Remote rejections carry the scheduler's raw response body in
// the error message.
//
// # Context Usage
//
// All workflow functions accept a context.Context as their first parameter.
// Every network call goes through it, so a cancelled context aborts the
// remaining calls; the archive cleanup still runs.
package workflows
