// Package errors provides structured error types for the TOON value bridge.
//
// Errors fall into two disjoint classes:
//
//	ClassCodec       failures reported by the external TOON codec
//	ClassValidation  failures detected by the bridge itself
//
// The codec class forms a three-level hierarchy for selective handling:
//
//	ErrCodec              any codec-origin failure
//	├── ErrSyntax         syntax error with a 1-based line number
//	└── ErrIO             I/O failure
//
// Generic codec messages and embedded-format failures match only the base
// ErrCodec sentinel. Validation errors (bad option tokens, unsupported host
// types, non-finite floats, malformed JSON input) match ErrValidation and
// never match the codec hierarchy.
//
// Matching uses the standard errors.Is:
//
//	if errors.Is(err, bridgeerrors.ErrSyntax) { ... }
package errors
