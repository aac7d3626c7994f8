package codes

import "errors"

// Package-specific errors
var (
	// ErrInvalidCount is returned when the requested number of codes is not positive.
	ErrInvalidCount = errors.New("code count must be positive")

	// ErrInvalidLength is returned when the requested code length is not positive.
	ErrInvalidLength = errors.New("code length must be positive")

	// ErrSpaceExhausted is returned when the alphabet/length combination cannot
	// yield the requested number of unique codes within bounded attempts.
	ErrSpaceExhausted = errors.New("code space exhausted for requested count and length")

	// ErrFailedToGenerate is returned when the random source fails.
	ErrFailedToGenerate = errors.New("failed to generate code")
)
