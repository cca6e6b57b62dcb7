// Package diag defines the diagnostic model shared by the lexer and parser.
//
// Diagnostic is the central record: Severity, a stable numeric Code with a
// printable ID (LEX1002, SYN2001, ...), a short message, the primary
// source.Span, and optional Notes. Producers emit through a Reporter so they
// stay decoupled from storage; BagReporter aggregates into a bounded Bag
// that supports sorting and deduplication.
//
// Error wraps the first error-severity diagnostic of a parse together with
// its resolved line/column, and implements the error interface. It is the
// value the driver hands to callers: a parse either yields a declaration
// tree or a single *Error, never both.
//
// Package diag performs no formatting or IO; rendering lives in
// internal/diagfmt and orchestration in internal/driver.
package diag
