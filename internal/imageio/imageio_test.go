package imageio

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/fchemotti/canwarp/internal/rgb"
)

func testImage() *rgb.Image {
	img := rgb.New(6, 4)
	for y := 0; y < 4; y++ {
		for x := 0; x < 6; x++ {
			img.Set(x, y, uint8(40*x), uint8(60*y), uint8(10*(x+y)))
		}
	}
	return img
}

func TestSaveLoadLossless(t *testing.T) {
	dir := t.TempDir()
	want := testImage()

	// PNG and BMP are lossless, so the raster must round-trip exactly.
	for _, name := range []string{"img.png", "img.bmp", "img.tiff"} {
		path := filepath.Join(dir, name)
		require.NoError(t, Save(path, want), name)

		got, err := Load(path)
		require.NoError(t, err, name)
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("%s round trip (-want +got):\n%s", name, diff)
		}
	}
}

func TestSaveJPEGLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "img.jpg")
	want := testImage()

	require.NoError(t, Save(path, want))
	got, err := Load(path)
	require.NoError(t, err)

	// JPEG is lossy; only the shape is guaranteed.
	if got.W != want.W || got.H != want.H {
		t.Errorf("jpeg round trip dims = %dx%d, want %dx%d", got.W, got.H, want.W, want.H)
	}
}

func TestSaveUnknownExtensionDefaultsToPNG(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "img.raw")
	want := testImage()

	require.NoError(t, Save(path, want))

	// The content should be decodable PNG regardless of the extension.
	got, err := Load(path)
	require.NoError(t, err)
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("default-png round trip (-want +got):\n%s", diff)
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.png"))
	require.Error(t, err)
}

func TestLoadGarbage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "garbage.png")
	require.NoError(t, os.WriteFile(path, []byte("not an image"), 0644))

	_, err := Load(path)
	require.Error(t, err)
}
