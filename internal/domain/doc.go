// Package domain contains shared domain types used across entity sub-packages.
// The factorial engine lives in domain/factorial. This root package holds the
// sentinel errors and the validation error type that transports map to
// client-facing responses.
package domain
