// Package imageio loads and saves the packed RGB rasters the projector
// operates on. It is the file-facing collaborator of the projection core:
// decode whatever the input file holds, hand the core a plain H×W×3 buffer,
// and encode the result by output extension.
package imageio

import (
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"

	"github.com/fchemotti/canwarp/internal/rgb"
)

// jpegQuality matches the sort of default a capture pipeline expects;
// lossless formats ignore it.
const jpegQuality = 90

// Load decodes the image file at path into a packed RGB raster. JPEG, PNG,
// BMP and TIFF inputs are recognized by content, not extension.
func Load(path string) (*rgb.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open input image: %w", err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return rgb.FromImage(img), nil
}

// Save encodes img to path, choosing the format from the file extension:
// .jpg/.jpeg, .png, .bmp, .tif/.tiff. Unknown extensions fall back to PNG.
func Save(path string, img *rgb.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create output image: %w", err)
	}

	if err := encode(f, path, img); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close output image: %w", err)
	}
	return nil
}

func encode(f *os.File, path string, img *rgb.Image) error {
	dst := img.ToRGBA()
	switch strings.ToLower(filepath.Ext(path)) {
	case ".jpg", ".jpeg":
		return jpeg.Encode(f, dst, &jpeg.Options{Quality: jpegQuality})
	case ".bmp":
		return bmp.Encode(f, dst)
	case ".tif", ".tiff":
		return tiff.Encode(f, dst, nil)
	default:
		return png.Encode(f, dst)
	}
}
