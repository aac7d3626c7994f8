// Package qrcode renders QR code images as PNG bytes, optionally with a logo
// composited over the center of the symbol.
//
// The package is a thin wrapper around github.com/skip2/go-qrcode that adds
// sensible defaults, input validation, and logo embedding.
//
// # Architecture
//
// Generate validates the input and returns a PNG image in a byte slice.
// GenerateWithLogo renders the symbol at the highest error-correction level,
// scales the logo to a quarter of the symbol's smaller dimension, and draws it
// centered over the modules; the elevated error correction keeps the payload
// decodable despite the occluded area. LoadLogo decodes a PNG or JPEG logo
// from disk.
//
// # Usage
//
//	import "github.com/dmitrymomot/batchcode/pkg/qrcode"
//
//	img, err := qrcode.Generate("123456789012", 256)
//	if err != nil {
//		// handle error
//	}
//
//	logo, err := qrcode.LoadLogo("logo.png")
//	if err != nil {
//		// handle error
//	}
//	img, err = qrcode.GenerateWithLogo("123456789012", 256, logo)
//
// # Error Handling
//
// The functions return well-defined sentinel errors:
//
//   • ErrEmptyContent      – the content argument was empty.
//   • ErrFailedToGenerate  – the underlying library could not render the code.
//   • ErrInvalidLogo       – the logo file could not be opened or decoded.
//
// Wrap your error handling with errors.Is for robust comparisons.
package qrcode
