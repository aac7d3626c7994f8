// Package codes produces batches of unique identifier codes, either by random
// synthesis from a numeric or alphanumeric alphabet or by reading them from a
// plain-text file.
//
// # Generation
//
// Generate draws random candidates of a fixed length until the requested number
// of distinct codes has been collected. Randomness comes from crypto/rand. The
// generator refuses requests that cannot be satisfied: when the requested count
// exceeds the size of the code space, or when the space is so close to full
// that bounded sampling cannot find enough free codes, it returns
// ErrSpaceExhausted instead of looping forever.
//
// # File input
//
// ReadFile treats each non-empty line of the file as a code verbatim, in file
// order. No uniqueness is enforced beyond what the file already provides.
//
// # Usage
//
//	batch, err := codes.Generate(100, 12, false)
//	if err != nil {
//		// handle error
//	}
//
// Errors are declared as package-level variables so they can be compared with
// errors.Is.
package codes
