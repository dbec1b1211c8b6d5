package imagesource

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/png"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/bmp"
)

func checker(w, h int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			v := uint8(0)
			if (x+y)%2 == 0 {
				v = 255
			}
			img.Set(x, y, color.RGBA{R: v, G: v, B: v, A: 255})
		}
	}
	return img
}

func TestLoadPNG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "in.png")
	f, err := os.Create(path)
	require.NoError(t, err)
	require.NoError(t, png.Encode(f, checker(4, 3)))
	require.NoError(t, f.Close())

	img, format, err := Load(path, 0)
	require.NoError(t, err)
	assert.Equal(t, "png", format)
	assert.Equal(t, 4, img.Width)
	assert.Equal(t, 3, img.Height)
	assert.Equal(t, []uint8{255, 255, 255, 255, 0, 0, 0, 255}, img.Pix[:8])
}

func TestDecodeBMPAndDownsample(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, bmp.Encode(&buf, checker(40, 20)))

	img, format, err := Decode(&buf, 10)
	require.NoError(t, err)
	assert.Equal(t, "bmp", format)
	assert.Equal(t, 10, img.Width)
	assert.Equal(t, 5, img.Height)
}

func TestFitKeepsSmallImages(t *testing.T) {
	src := checker(8, 16)
	assert.Same(t, image.Image(src), Fit(src, 16))
	out := Fit(src, 4)
	assert.Equal(t, 2, out.Bounds().Dx())
	assert.Equal(t, 4, out.Bounds().Dy())
}

func TestDecodeRejectsGarbage(t *testing.T) {
	_, _, err := Decode(strings.NewReader("not an image"), 0)
	assert.Error(t, err)
	_, _, err = Load(filepath.Join(t.TempDir(), "missing.png"), 0)
	assert.Error(t, err)
}

func TestDemoIsDeterministicGrayscale(t *testing.T) {
	opts := DefaultDemoOptions()
	opts.Width, opts.Height, opts.Seed = 16, 8, 42
	a := Demo(opts)
	b := Demo(opts)
	assert.Equal(t, a.Pix, b.Pix)
	assert.Equal(t, 16, a.Width)
	for i := 0; i < len(a.Pix); i += 4 {
		assert.Equal(t, a.Pix[i], a.Pix[i+1])
		assert.Equal(t, a.Pix[i], a.Pix[i+2])
		assert.Equal(t, uint8(255), a.Pix[i+3])
	}

	opts.Seed = 43
	assert.NotEqual(t, a.Pix, Demo(opts).Pix)
}

func TestFetchSavesImage(t *testing.T) {
	var body bytes.Buffer
	require.NoError(t, bmp.Encode(&body, checker(4, 4)))
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/photos/cat pic":
			w.Header().Set("Content-Type", "image/bmp")
			_, _ = w.Write(body.Bytes())
		case "/named":
			w.Header().Set("Content-Type", "application/octet-stream")
			w.Header().Set("Content-Disposition", `attachment; filename="moon.png"`)
			_, _ = w.Write(body.Bytes())
		case "/page.html":
			w.Header().Set("Content-Type", "text/html")
			_, _ = w.Write([]byte("<html></html>"))
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()
	dir := t.TempDir()

	saved, err := Fetch(context.Background(), srv.URL+"/photos/cat%20pic?size=large", dir)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "cat_20pic.bmp"), saved)
	img, format, err := Load(saved, 0)
	require.NoError(t, err)
	assert.Equal(t, "bmp", format)
	assert.Equal(t, 4, img.Width)

	saved, err = Fetch(context.Background(), srv.URL+"/named", dir)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "moon.png"), saved)

	_, err = Fetch(context.Background(), srv.URL+"/page.html", dir)
	assert.Error(t, err)
	_, err = Fetch(context.Background(), srv.URL+"/missing.png", dir)
	assert.Error(t, err)
}

func TestIsURL(t *testing.T) {
	assert.True(t, IsURL("https://example.com/a.png"))
	assert.True(t, IsURL("http://example.com/a.png"))
	assert.False(t, IsURL("photos/a.png"))
}
