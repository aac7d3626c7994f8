// Package barcode renders EAN13 and EAN8 retail barcodes as PNG bytes.
//
// The package wraps github.com/boombuler/barcode: codes are validated and
// zero-padded here, encoded by the library, scaled to a fixed raster, and
// PNG-encoded. EAN13 takes 12 payload digits (the check digit is computed) or
// 13 digits carrying a valid check digit; EAN8 takes 7 or 8 digits
// respectively. Shorter all-digit codes are left-padded with zeros to the
// payload length. Anything else is ErrInvalidCode.
package barcode
