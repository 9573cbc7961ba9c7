// Package errors provides the classified error primitives used across docnav.
//
// Key features:
//   - ErrorCategory: broad classification (config, reference, not_found, build, ...)
//   - ErrorSeverity: impact level (fatal, error, warning, info)
//   - RetryStrategy: retry behavior
//   - ClassifiedError: structured error with category, severity, and context
//   - ErrorBuilder: fluent API for creating classified errors
//   - CLIErrorAdapter: exit codes and user-facing formatting
//
// Example usage:
//
//	err := errors.InvalidReferenceError("empty media reference").
//		WithContext(errors.ContextReference, ref).
//		Build()
package errors
