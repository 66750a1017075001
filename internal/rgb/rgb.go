// Package rgb provides the packed 8-bit three-channel raster the projection
// code operates on. The layout is row-major with 3 bytes per pixel (stride
// 3*W), so pixel arithmetic in the remap loop works on raw offsets.
package rgb

import (
	"image"
	"image/color"
)

// Image is a row-major 8-bit RGB raster. Pixel (x, y) occupies
// Pix[(y*W+x)*3 : (y*W+x)*3+3] as R, G, B.
type Image struct {
	W, H int
	Pix  []uint8
}

// New returns a zero-filled (black) w-by-h image.
func New(w, h int) *Image {
	return &Image{W: w, H: h, Pix: make([]uint8, 3*w*h)}
}

// PixOffset returns the index of the first channel of pixel (x, y).
func (m *Image) PixOffset(x, y int) int {
	return (y*m.W + x) * 3
}

// At returns the channels of pixel (x, y). Bounds are the caller's
// responsibility.
func (m *Image) At(x, y int) (r, g, b uint8) {
	i := m.PixOffset(x, y)
	return m.Pix[i], m.Pix[i+1], m.Pix[i+2]
}

// Set writes the channels of pixel (x, y).
func (m *Image) Set(x, y int, r, g, b uint8) {
	i := m.PixOffset(x, y)
	m.Pix[i] = r
	m.Pix[i+1] = g
	m.Pix[i+2] = b
}

// Fill sets every pixel to the given channels.
func (m *Image) Fill(r, g, b uint8) {
	for i := 0; i < len(m.Pix); i += 3 {
		m.Pix[i] = r
		m.Pix[i+1] = g
		m.Pix[i+2] = b
	}
}

// FromImage converts any decoded stdlib image into the packed RGB layout.
// Alpha is dropped; color models are converted through color.RGBA.
func FromImage(src image.Image) *Image {
	b := src.Bounds()
	out := New(b.Dx(), b.Dy())
	for y := 0; y < b.Dy(); y++ {
		for x := 0; x < b.Dx(); x++ {
			c := color.RGBAModel.Convert(src.At(b.Min.X+x, b.Min.Y+y)).(color.RGBA)
			out.Set(x, y, c.R, c.G, c.B)
		}
	}
	return out
}

// ToRGBA copies the raster into a stdlib RGBA image for encoding, with alpha
// fully opaque.
func (m *Image) ToRGBA() *image.RGBA {
	dst := image.NewRGBA(image.Rect(0, 0, m.W, m.H))
	for y := 0; y < m.H; y++ {
		si := y * m.W * 3
		di := y * dst.Stride
		for x := 0; x < m.W; x++ {
			dst.Pix[di] = m.Pix[si]
			dst.Pix[di+1] = m.Pix[si+1]
			dst.Pix[di+2] = m.Pix[si+2]
			dst.Pix[di+3] = 0xff
			si += 3
			di += 4
		}
	}
	return dst
}
