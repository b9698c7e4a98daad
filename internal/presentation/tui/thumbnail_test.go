package tui

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"img2pdf/internal/domain/entities"
)

func writeTestPNG(t *testing.T, path string, width, height int) {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.Set(x, y, color.RGBA{R: 10, G: 20, B: 30, A: 255})
		}
	}

	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()
	require.NoError(t, png.Encode(f, img))
}

func TestThumbnailCache(t *testing.T) {
	dir := t.TempDir()
	wide := filepath.Join(dir, "wide.png")
	writeTestPNG(t, wide, 400, 200)
	broken := filepath.Join(dir, "broken.png")
	require.NoError(t, os.WriteFile(broken, []byte("not a png"), 0644))

	cache := NewThumbnailCache(80)

	thumb, err := cache.Get(wide)
	require.NoError(t, err)
	assert.Equal(t, 80, thumb.Bounds().Dx())
	assert.Equal(t, 40, thumb.Bounds().Dy())

	_, err = cache.Get(broken)
	assert.Error(t, err)
	_, err = cache.Get(broken)
	assert.Error(t, err, "failures are cached too")
	assert.Equal(t, 2, cache.Len())

	cache.Prune([]entities.ImageEntry{{Path: wide}})
	assert.Equal(t, 1, cache.Len())

	cache.Prune(nil)
	assert.Zero(t, cache.Len())
}

func TestRenderHalfBlocks(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 2, 3))
	img.Set(0, 0, color.RGBA{R: 255, A: 255})
	img.Set(1, 0, color.RGBA{R: 255, A: 255})
	img.Set(0, 1, color.RGBA{B: 255, A: 255})
	img.Set(1, 1, color.RGBA{B: 255, A: 255})
	img.Set(0, 2, color.RGBA{G: 255, A: 255})
	img.Set(1, 2, color.RGBA{G: 255, A: 255})

	out := RenderHalfBlocks(img, 10, 10)
	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")

	require.Len(t, lines, 2, "three pixel rows fit into two text rows")
	assert.Equal(t, "[#ff0000:#0000ff]▀[#ff0000:#0000ff]▀[-:-]", lines[0])
	assert.Equal(t, "[#00ff00:-]▀[#00ff00:-]▀[-:-]", lines[1])

	assert.Empty(t, RenderHalfBlocks(nil, 10, 10))
	assert.Empty(t, RenderHalfBlocks(img, 0, 10))
}

func TestTruncateFileName(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"Short name kept", "photo.png", "photo.png"},
		{"Exactly at limit", "abcdefghijklmnop.png", "abcdefghijklmnop.png"},
		{"Long name cut", "a_very_long_holiday_photo.jpg", "a_very_long_holid..."},
		{"Runes counted", "фотография_с_отпуска_2024.png", "фотография_с_отпу..."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, truncateFileName(tt.in, MaxFileNameLength, MaxFileNameDisplay))
		})
	}
}
