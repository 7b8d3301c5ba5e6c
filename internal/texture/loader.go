package texture

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	"github.com/ftrvxmtrx/tga"
)

// The tga package registers itself with an empty magic string, so it
// claims every input given to image.Decode. Decoders are picked
// explicitly instead.

var (
	pngMagic  = []byte("\x89PNG\r\n\x1a\n")
	jpegMagic = []byte{0xff, 0xd8, 0xff}
)

// LoadTexture reads a PNG, JPEG or TGA file and returns an NRGBA image.
func LoadTexture(path string) (*image.NRGBA, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("texture: read %s: %w", path, err)
	}

	var img image.Image
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		img, err = png.Decode(bytes.NewReader(raw))
	case ".jpg", ".jpeg":
		img, err = jpeg.Decode(bytes.NewReader(raw))
	case ".tga":
		img, err = tga.Decode(bytes.NewReader(raw))
	default:
		return Decode(raw)
	}
	if err != nil {
		return nil, fmt.Errorf("texture: decode %s: %w", path, err)
	}
	return toNRGBA(img), nil
}

// Decode decodes an in-memory PNG, JPEG or TGA image. PNG and JPEG are
// recognized by their signature; anything else is tried as TGA.
func Decode(raw []byte) (*image.NRGBA, error) {
	var (
		img image.Image
		err error
	)
	switch {
	case bytes.HasPrefix(raw, pngMagic):
		img, err = png.Decode(bytes.NewReader(raw))
	case bytes.HasPrefix(raw, jpegMagic):
		img, err = jpeg.Decode(bytes.NewReader(raw))
	default:
		img, err = tga.Decode(bytes.NewReader(raw))
	}
	if err != nil {
		return nil, fmt.Errorf("texture: decode: %w", err)
	}
	return toNRGBA(img), nil
}

// Checker returns a size×size two-tone checker board with cells of cell
// pixels. Used when a texture cannot be loaded.
func Checker(size, cell int, a, b color.NRGBA) *image.NRGBA {
	if cell <= 0 {
		cell = 1
	}
	img := image.NewNRGBA(image.Rect(0, 0, size, size))
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			c := a
			if (x/cell+y/cell)%2 == 1 {
				c = b
			}
			img.SetNRGBA(x, y, c)
		}
	}
	return img
}

// toNRGBA converts any image to a zero-origin NRGBA.
func toNRGBA(src image.Image) *image.NRGBA {
	if n, ok := src.(*image.NRGBA); ok && n.Rect.Min == (image.Point{}) {
		return n
	}
	b := src.Bounds()
	dst := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	switch src.(type) {
	case *image.YCbCr, *image.Gray:
		// No alpha: draw and set alpha to 255.
		draw.Draw(dst, dst.Bounds(), src, b.Min, draw.Src)
		for i := 3; i < len(dst.Pix); i += 4 {
			dst.Pix[i] = 255
		}
	default:
		for y := 0; y < b.Dy(); y++ {
			for x := 0; x < b.Dx(); x++ {
				c := color.NRGBAModel.Convert(src.At(b.Min.X+x, b.Min.Y+y)).(color.NRGBA)
				dst.SetNRGBA(x, y, c)
			}
		}
	}
	return dst
}
