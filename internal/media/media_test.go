package media

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dome-preview/internal/config"
)

func grayImage(level uint8) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, 8, 8))
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			img.Set(x, y, color.RGBA{level, level, level, 255})
		}
	}
	return img
}

func luminance(img image.Image) float64 {
	b := img.Bounds()
	var sum, n float64
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			r, g, bl, _ := img.At(x, y).RGBA()
			sum += float64(r+g+bl) / 3
			n++
		}
	}
	return sum / n
}

func TestApplyAdjustNeutralReturnsSameImage(t *testing.T) {
	img := grayImage(100)
	out := ApplyAdjust(img, config.Adjust{Gamma: 1})
	assert.Equal(t, image.Image(img), out, "neutral adjust must not copy")
}

func TestApplyAdjustBrightness(t *testing.T) {
	img := grayImage(100)
	brighter := ApplyAdjust(img, config.Adjust{Brightness: 0.4, Gamma: 1})
	darker := ApplyAdjust(img, config.Adjust{Brightness: -0.4, Gamma: 1})
	assert.Greater(t, luminance(brighter), luminance(img))
	assert.Less(t, luminance(darker), luminance(img))
}

func TestApplyAdjustGamma(t *testing.T) {
	img := grayImage(60)
	lifted := ApplyAdjust(img, config.Adjust{Gamma: 2.2})
	assert.Greater(t, luminance(lifted), luminance(img))
}

func TestClockAdvancesAndWraps(t *testing.T) {
	c := NewClock(4, 10) // 0.1s per frame
	assert.Equal(t, 0, c.Advance(0.05))
	assert.Equal(t, 1, c.Advance(0.05))
	assert.Equal(t, 3, c.Advance(0.2))
	assert.Equal(t, 0, c.Advance(0.1), "wraps to the first frame")
}

func TestClockPauseHoldsFrame(t *testing.T) {
	c := NewClock(4, 10)
	c.Advance(0.15)
	c.SetPlaying(false)
	got := c.Index()
	assert.Equal(t, got, c.Advance(5))
	assert.True(t, c.TogglePlay())
}

func TestClockSingleFrameNeverAdvances(t *testing.T) {
	c := NewClock(1, 24)
	assert.Equal(t, 0, c.Advance(100))
}

func TestClockRewind(t *testing.T) {
	c := NewClock(8, 24)
	c.Advance(0.3)
	require.NotEqual(t, 0, c.Index())
	c.Rewind()
	assert.Equal(t, 0, c.Index())
}

func TestListFramesSortedAndFiltered(t *testing.T) {
	dir := t.TempDir()
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, grayImage(10)))
	for _, name := range []string{"frame_0002.png", "frame_0001.png", "notes.txt", "frame_0010.png"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), buf.Bytes(), 0644))
	}
	frames, err := ListFrames(dir)
	require.NoError(t, err)
	require.Len(t, frames, 3)
	assert.Equal(t, filepath.Join(dir, "frame_0001.png"), frames[0])
	assert.Equal(t, filepath.Join(dir, "frame_0010.png"), frames[2])
}

func TestDecodeImage(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "img.png")
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, grayImage(42)))
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0644))

	img, err := decodeImage(path)
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 8, 8), img.Bounds())

	_, err = decodeImage(filepath.Join(dir, "missing.png"))
	assert.Error(t, err)
}
