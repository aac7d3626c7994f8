package qrcode_test

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/batchcode/pkg/qrcode"
)

// solidLogo builds a uniformly colored square for compositing tests.
func solidLogo(side int, c color.RGBA) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, side, side))
	for y := 0; y < side; y++ {
		for x := 0; x < side; x++ {
			img.SetRGBA(x, y, c)
		}
	}
	return img
}

func TestLoadLogo(t *testing.T) {
	t.Parallel()

	t.Run("loads a PNG logo from disk", func(t *testing.T) {
		t.Parallel()
		path := filepath.Join(t.TempDir(), "logo.png")
		f, err := os.Create(path)
		require.NoError(t, err)
		require.NoError(t, png.Encode(f, solidLogo(32, color.RGBA{R: 255, A: 255})))
		require.NoError(t, f.Close())

		logo, err := qrcode.LoadLogo(path)

		require.NoError(t, err)
		require.NotNil(t, logo)
		assert.Equal(t, 32, logo.Bounds().Dx())
	})

	t.Run("returns error for missing file", func(t *testing.T) {
		t.Parallel()
		logo, err := qrcode.LoadLogo(filepath.Join(t.TempDir(), "missing.png"))

		require.Error(t, err)
		require.Nil(t, logo)
		assert.True(t, errors.Is(err, qrcode.ErrInvalidLogo))
	})

	t.Run("returns error for non-image file", func(t *testing.T) {
		t.Parallel()
		path := filepath.Join(t.TempDir(), "logo.png")
		require.NoError(t, os.WriteFile(path, []byte("not an image"), 0o644))

		logo, err := qrcode.LoadLogo(path)

		require.Error(t, err)
		require.Nil(t, logo)
		assert.True(t, errors.Is(err, qrcode.ErrInvalidLogo))
	})
}

func TestGenerateWithLogo(t *testing.T) {
	t.Parallel()

	t.Run("nil logo behaves like Generate", func(t *testing.T) {
		t.Parallel()
		content := "123456789012"
		size := 256

		withLogo, err := qrcode.GenerateWithLogo(content, size, nil)
		require.NoError(t, err)

		plain, err := qrcode.Generate(content, size)
		require.NoError(t, err)

		assert.Equal(t, plain, withLogo, "nil logo should fall back to plain generation")
	})

	t.Run("returns error when content is empty", func(t *testing.T) {
		t.Parallel()
		logo := solidLogo(32, color.RGBA{R: 255, A: 255})

		result, err := qrcode.GenerateWithLogo("", 256, logo)

		require.Error(t, err)
		require.Nil(t, result)
		assert.True(t, errors.Is(err, qrcode.ErrEmptyContent))
	})

	t.Run("keeps the symbol dimensions", func(t *testing.T) {
		t.Parallel()
		logo := solidLogo(64, color.RGBA{R: 255, A: 255})
		size := 256

		result, err := qrcode.GenerateWithLogo("123456789012", size, logo)

		require.NoError(t, err)
		img, err := png.Decode(bytes.NewReader(result))
		require.NoError(t, err, "Result should be a valid PNG image")
		assert.Equal(t, size, img.Bounds().Dx())
		assert.Equal(t, size, img.Bounds().Dy())
	})

	t.Run("draws the logo over the symbol center", func(t *testing.T) {
		t.Parallel()
		logo := solidLogo(64, color.RGBA{R: 255, A: 255})
		size := 256

		result, err := qrcode.GenerateWithLogo("123456789012", size, logo)
		require.NoError(t, err)

		img, err := png.Decode(bytes.NewReader(result))
		require.NoError(t, err)

		r, g, b, _ := img.At(size/2, size/2).RGBA()
		assert.Greater(t, r>>8, uint32(200), "center pixel should be dominated by the red logo")
		assert.Less(t, g>>8, uint32(64), "center pixel should carry no green")
		assert.Less(t, b>>8, uint32(64), "center pixel should carry no blue")
	})
}
