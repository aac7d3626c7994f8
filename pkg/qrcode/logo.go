package qrcode

import (
	"bytes"
	"errors"
	"image"
	"image/draw"
	_ "image/jpeg"
	"image/png"
	"os"
	"strings"

	skipqrcode "github.com/skip2/go-qrcode"
	xdraw "golang.org/x/image/draw"
)

// ErrInvalidLogo is returned when the logo file cannot be opened or decoded.
var ErrInvalidLogo = errors.New("cannot load logo image")

// logoFraction is the divisor applied to the symbol's smaller dimension to get
// the logo side length. A quarter-sized logo stays within what the highest
// error-correction level can recover.
const logoFraction = 4

// LoadLogo reads and decodes a logo image (PNG or JPEG) from disk.
func LoadLogo(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Join(ErrInvalidLogo, err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, errors.Join(ErrInvalidLogo, err)
	}
	return img, nil
}

// GenerateWithLogo creates a QR code image in PNG format with the logo drawn
// centered over the symbol. The symbol is rendered at the highest
// error-correction level so the payload survives the occluded center. A nil
// logo falls back to Generate.
func GenerateWithLogo(content string, size int, logo image.Image) ([]byte, error) {
	if logo == nil {
		return Generate(content, size)
	}
	if strings.TrimSpace(content) == "" {
		return nil, ErrEmptyContent
	}
	if size <= 0 {
		size = defaultSize
	}

	qr, err := skipqrcode.New(content, skipqrcode.Highest)
	if err != nil {
		return nil, errors.Join(ErrFailedToGenerate, err)
	}
	symbol := qr.Image(size)
	bounds := symbol.Bounds()

	canvas := image.NewRGBA(bounds)
	draw.Draw(canvas, bounds, symbol, bounds.Min, draw.Src)

	side := min(bounds.Dx(), bounds.Dy()) / logoFraction
	scaled := image.NewRGBA(image.Rect(0, 0, side, side))
	xdraw.ApproxBiLinear.Scale(scaled, scaled.Bounds(), logo, logo.Bounds(), xdraw.Over, nil)

	origin := image.Pt(
		bounds.Min.X+(bounds.Dx()-side)/2,
		bounds.Min.Y+(bounds.Dy()-side)/2,
	)
	draw.Draw(canvas, image.Rectangle{Min: origin, Max: origin.Add(image.Pt(side, side))},
		scaled, image.Point{}, draw.Over)

	var buf bytes.Buffer
	if err := png.Encode(&buf, canvas); err != nil {
		return nil, errors.Join(ErrFailedToGenerate, err)
	}
	return buf.Bytes(), nil
}
