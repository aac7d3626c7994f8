package barcode

import (
	"bytes"
	"errors"
	"fmt"
	"image/png"
	"strings"

	boombuler "github.com/boombuler/barcode"
	"github.com/boombuler/barcode/ean"
)

// Error variables for barcode rendering
var (
	// ErrInvalidCode is returned when a code does not fit the requested symbology.
	ErrInvalidCode = errors.New("code does not fit the barcode symbology")
	// ErrFailedToRender is returned when the underlying library cannot render the code.
	ErrFailedToRender = errors.New("failed to render barcode")
)

// Raster dimensions per symbology. EAN13 is 95 modules wide, EAN8 is 67;
// the scaled sizes keep the modules crisp at integer multiples.
const (
	ean13Width = 400
	ean8Width  = 300
	eanHeight  = 200
)

// EncodeEAN13 renders an EAN13 barcode PNG for the given code. The code must
// be numeric: 12 digits get a computed check digit, 13 digits must already
// carry a valid one, shorter codes are zero-padded to 12.
func EncodeEAN13(code string) ([]byte, error) {
	normalized, err := normalize(code, 12)
	if err != nil {
		return nil, err
	}
	return render(normalized, ean13Width)
}

// EncodeEAN8 renders an EAN8 barcode PNG for the given code. The code must be
// numeric: 7 digits get a computed check digit, 8 digits must already carry a
// valid one, shorter codes are zero-padded to 7.
func EncodeEAN8(code string) ([]byte, error) {
	normalized, err := normalize(code, 7)
	if err != nil {
		return nil, err
	}
	return render(normalized, ean8Width)
}

// Checksum computes the EAN check digit for a payload of 12 (EAN13) or 7
// (EAN8) digits.
func Checksum(digits string) (byte, error) {
	if len(digits) != 12 && len(digits) != 7 {
		return 0, fmt.Errorf("%w: checksum needs 12 or 7 digits, got %d", ErrInvalidCode, len(digits))
	}
	sum := 0
	weight := 3
	for i := len(digits) - 1; i >= 0; i-- {
		d := digits[i]
		if d < '0' || d > '9' {
			return 0, fmt.Errorf("%w: %q is not a digit", ErrInvalidCode, d)
		}
		sum += int(d-'0') * weight
		weight = 4 - weight
	}
	return byte('0' + (10-sum%10)%10), nil
}

// normalize validates the alphabet and brings the code to the payload length,
// keeping a trailing check digit when one is supplied.
func normalize(code string, payloadLen int) (string, error) {
	if code == "" {
		return "", fmt.Errorf("%w: empty code", ErrInvalidCode)
	}
	for _, r := range code {
		if r < '0' || r > '9' {
			return "", fmt.Errorf("%w: %q is not numeric", ErrInvalidCode, code)
		}
	}
	switch {
	case len(code) == payloadLen+1:
		// Carries a check digit; the library verifies it.
		return code, nil
	case len(code) <= payloadLen:
		return strings.Repeat("0", payloadLen-len(code)) + code, nil
	default:
		return "", fmt.Errorf("%w: %q is longer than %d digits", ErrInvalidCode, code, payloadLen+1)
	}
}

func render(code string, width int) ([]byte, error) {
	bc, err := ean.Encode(code)
	if err != nil {
		return nil, errors.Join(ErrInvalidCode, err)
	}
	scaled, err := boombuler.Scale(bc, width, eanHeight)
	if err != nil {
		return nil, errors.Join(ErrFailedToRender, err)
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, scaled); err != nil {
		return nil, errors.Join(ErrFailedToRender, err)
	}
	return buf.Bytes(), nil
}
