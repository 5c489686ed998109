package rolltable

import apperrors "github.com/louisbranch/rolltable/internal/platform/errors"

// Sentinel errors. Errors returned by this package carry metadata about the
// failing source or option but match these with errors.Is.
var (
	// ErrMalformedSource indicates a document does not have the expected shape.
	ErrMalformedSource = apperrors.New(apperrors.CodeMalformedSource, "malformed source")
	// ErrUnknownFrequency indicates the requested distribution is not declared.
	ErrUnknownFrequency = apperrors.New(apperrors.CodeUnknownFrequency, "unknown frequency")
	// ErrUnknownOption indicates a distribution names an option the document lacks.
	ErrUnknownOption = apperrors.New(apperrors.CodeUnknownOption, "unknown option")
	// ErrEmptyDistribution indicates there is no weight left to draw from.
	ErrEmptyDistribution = apperrors.New(apperrors.CodeEmptyDistribution, "empty distribution")
	// ErrInvalidDie indicates a die with fewer than one face.
	ErrInvalidDie = apperrors.New(apperrors.CodeInvalidDie, "die must have at least one face")
)

func malformed(message string, metadata map[string]string) error {
	return apperrors.WithMetadata(apperrors.CodeMalformedSource, message, metadata)
}
