// Package errors provides standardized error handling for the health
// aggregation engine. It includes error classification, standard error
// variables, and helper functions for consistent error wrapping across the
// module.
//
// The engine itself has a very small failure surface: health input is
// well-formed by construction, lookup misses are reported with (value, ok)
// returns rather than errors, and an abandoned wait is a normal early exit.
// What remains is configuration validation, use-after-close, and internal
// invariant violations, classified here as invalid, closed, and fatal.
package errors
