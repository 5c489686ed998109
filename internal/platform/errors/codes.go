// Package errors provides structured domain errors for roll table generation.
package errors

// Code is a machine-readable error code.
type Code string

const (
	// CodeUnknown represents an unknown error.
	CodeUnknown Code = "UNKNOWN"

	// Source document errors
	CodeMalformedSource Code = "MALFORMED_SOURCE"

	// Frequency errors
	CodeUnknownFrequency  Code = "UNKNOWN_FREQUENCY"
	CodeUnknownOption     Code = "UNKNOWN_OPTION"
	CodeEmptyDistribution Code = "EMPTY_DISTRIBUTION"

	// Table errors
	CodeInvalidDie   Code = "INVALID_DIE"
	CodeUnknownTable Code = "UNKNOWN_TABLE"
)

// String returns the code as a string.
func (c Code) String() string {
	return string(c)
}
