// Package logger provides leveled logging for Flowkit CLI commands.
//
// Logging behavior is controlled by two flags:
//
//   - --verbose: Shows info messages
//   - --debug: Shows all messages including debug details
//
// Warnings and errors are always shown. Commands create a logger in their
// PersistentPreRun and pass it down to the workflow layer.
package logger
