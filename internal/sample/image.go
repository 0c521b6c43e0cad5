package sample

import (
	"fmt"
	"image"
	"image/png"
	"os"

	"github.com/lawnchairsociety/terragen/internal/wfc"
)

// ImageSource is a decoded sample image exposing raw RGB triples.
type ImageSource interface {
	Dimensions() (width, height int)
	PixelAt(x, y int) (r, g, b uint8)
}

// PNGImage is an ImageSource backed by a decoded PNG file.
type PNGImage struct {
	img image.Image
}

// LoadPNG reads and decodes the sample image at path.
func LoadPNG(path string) (*PNGImage, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open sample: %w", err)
	}
	defer f.Close()

	img, err := png.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("failed to decode sample %s: %w", path, err)
	}

	return &PNGImage{img: img}, nil
}

// Dimensions returns the sample's width and height in pixels.
func (p *PNGImage) Dimensions() (int, int) {
	bounds := p.img.Bounds()
	return bounds.Dx(), bounds.Dy()
}

// PixelAt returns the 8-bit RGB triple at (x, y). Coordinates are
// relative to the top-left corner regardless of the decoded bounds.
func (p *PNGImage) PixelAt(x, y int) (uint8, uint8, uint8) {
	bounds := p.img.Bounds()
	r, g, b, _ := p.img.At(bounds.Min.X+x, bounds.Min.Y+y).RGBA()
	return uint8(r >> 8), uint8(g >> 8), uint8(b >> 8)
}

// ClassifiedImage adapts an ImageSource into the tile source consumed
// by rule learning by classifying each pixel through the palette.
type ClassifiedImage struct {
	src     ImageSource
	palette *Palette
}

// NewClassifiedImage wraps an image with a palette.
func NewClassifiedImage(src ImageSource, palette *Palette) *ClassifiedImage {
	return &ClassifiedImage{src: src, palette: palette}
}

// Dimensions returns the underlying image's dimensions.
func (c *ClassifiedImage) Dimensions() (int, int) {
	return c.src.Dimensions()
}

// TileAt classifies the pixel at (x, y). A color missing from the
// palette surfaces as an error wrapping ErrUnknownPixel.
func (c *ClassifiedImage) TileAt(x, y int) (wfc.TileType, error) {
	return c.palette.Classify(c.src.PixelAt(x, y))
}
