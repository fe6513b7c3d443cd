// Package logging provides structured logging utilities for the calexport
// application.
//
// This package centralizes logging patterns to ensure consistent, structured
// logging throughout the codebase using the standard library's slog package.
// User emails are never logged directly; AnonymizeEmail hashes them so log
// entries can still be correlated without exposing PII.
package logging
