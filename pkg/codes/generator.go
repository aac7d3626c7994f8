package codes

import (
	"crypto/rand"
	"errors"
	"math"
)

const (
	digits       = "0123456789"
	alphanumeric = "0123456789abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"

	// attemptsPerCode bounds rejection sampling so a nearly-full code space
	// terminates with ErrSpaceExhausted instead of spinning.
	attemptsPerCode = 100
)

// Generate returns count unique random codes of the given length, in the order
// they were first drawn. The alphabet is decimal digits, or digits plus ASCII
// letters when alphanum is true.
func Generate(count, length int, alphanum bool) ([]string, error) {
	if count < 1 {
		return nil, ErrInvalidCount
	}
	if length < 1 {
		return nil, ErrInvalidLength
	}

	alphabet := digits
	if alphanum {
		alphabet = alphanumeric
	}

	// Refuse upfront when the space cannot hold the batch at all. Pow
	// saturates to +Inf for large exponents, which compares as plenty.
	if space := math.Pow(float64(len(alphabet)), float64(length)); space < float64(count) {
		return nil, ErrSpaceExhausted
	}

	seen := make(map[string]struct{}, count)
	batch := make([]string, 0, count)
	maxAttempts := count * attemptsPerCode

	for attempts := 0; len(batch) < count; attempts++ {
		if attempts >= maxAttempts {
			return nil, ErrSpaceExhausted
		}
		code, err := randomCode(alphabet, length)
		if err != nil {
			return nil, err
		}
		if _, dup := seen[code]; dup {
			continue
		}
		seen[code] = struct{}{}
		batch = append(batch, code)
	}

	return batch, nil
}

// randomCode draws a single candidate of the given length from the alphabet.
func randomCode(alphabet string, length int) (string, error) {
	b := make([]byte, length)
	if _, err := rand.Read(b); err != nil {
		return "", errors.Join(ErrFailedToGenerate, err)
	}
	for i := range b {
		b[i] = alphabet[b[i]%byte(len(alphabet))]
	}
	return string(b), nil
}
