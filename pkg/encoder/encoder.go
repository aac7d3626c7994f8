// Package encoder dispatches code rendering to the QR or EAN barcode
// renderers based on an encoding type selected on the command line.
package encoder

import (
	"errors"
	"fmt"
	"image"

	"github.com/dmitrymomot/batchcode/pkg/barcode"
	"github.com/dmitrymomot/batchcode/pkg/qrcode"
)

// Type identifies the symbology used to render a code.
type Type string

// Supported encoding types.
const (
	TypeEAN13 Type = "ean13"
	TypeEAN8  Type = "ean8"
	TypeQR    Type = "qr"
)

// ErrUnknownType is returned when an encoding type flag value is not supported.
var ErrUnknownType = errors.New("unknown encoding type")

// ParseType validates an encoding type flag value.
func ParseType(s string) (Type, error) {
	switch t := Type(s); t {
	case TypeEAN13, TypeEAN8, TypeQR:
		return t, nil
	default:
		return "", fmt.Errorf("%w: %q (want %s, %s or %s)", ErrUnknownType, s, TypeEAN13, TypeEAN8, TypeQR)
	}
}

// Option configures an Encoder.
type Option func(*Encoder)

// WithQRSize sets the rendered QR image side length in pixels.
func WithQRSize(size int) Option {
	return func(e *Encoder) {
		if size > 0 {
			e.qrSize = size
		}
	}
}

// WithLogo sets a logo to composite over QR symbols. Barcode types ignore it.
func WithLogo(logo image.Image) Option {
	return func(e *Encoder) { e.logo = logo }
}

// Encoder renders codes with a fixed symbology.
type Encoder struct {
	typ    Type
	qrSize int
	logo   image.Image
}

// New creates an Encoder for the given type.
func New(typ Type, opts ...Option) *Encoder {
	e := &Encoder{typ: typ}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Type returns the encoder's symbology.
func (e *Encoder) Type() Type { return e.typ }

// Encode renders a single code as PNG bytes.
func (e *Encoder) Encode(code string) ([]byte, error) {
	switch e.typ {
	case TypeEAN13:
		return barcode.EncodeEAN13(code)
	case TypeEAN8:
		return barcode.EncodeEAN8(code)
	case TypeQR:
		return qrcode.GenerateWithLogo(code, e.qrSize, e.logo)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownType, e.typ)
	}
}
