package media

import (
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"path/filepath"
	"sort"
	"strings"

	rl "github.com/gen2brain/raylib-go/raylib"

	"dome-preview/internal/config"
)

// imageExts are the frame formats the loader accepts.
var imageExts = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".gif":  true,
}

// Player owns the GPU textures of the loaded media and the playback clock.
// A still image is a one-frame player. Call Unload before loading replacement
// media so textures do not leak.
type Player struct {
	textures []rl.Texture2D
	clock    *Clock
}

// Load opens path as projected media: a single image file, or a directory of
// numbered frames played as a sequence at fps. The adjustment pipeline is
// applied to every frame before upload. Requires a live GL context.
func Load(path string, fps float64, a config.Adjust) (*Player, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("media: %w", err)
	}
	var files []string
	if info.IsDir() {
		files, err = ListFrames(path)
		if err != nil {
			return nil, err
		}
		if len(files) == 0 {
			return nil, fmt.Errorf("media: no image frames in %s", path)
		}
	} else {
		files = []string{path}
	}

	p := &Player{clock: NewClock(len(files), fps)}
	for _, f := range files {
		tex, err := loadTexture(f, a)
		if err != nil {
			p.Unload()
			return nil, err
		}
		p.textures = append(p.textures, tex)
	}
	return p, nil
}

// ListFrames returns the image files directly under dir, sorted by name so
// zero-padded frame numbering plays in order.
func ListFrames(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("media: %w", err)
	}
	var files []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if imageExts[strings.ToLower(filepath.Ext(e.Name()))] {
			files = append(files, filepath.Join(dir, e.Name()))
		}
	}
	sort.Strings(files)
	return files, nil
}

// loadTexture decodes an image file, applies the adjustment pipeline, and
// uploads it as a texture.
func loadTexture(path string, a config.Adjust) (rl.Texture2D, error) {
	img, err := decodeImage(path)
	if err != nil {
		return rl.Texture2D{}, err
	}
	rlImg := rl.NewImageFromImage(ApplyAdjust(img, a))
	tex := rl.LoadTextureFromImage(rlImg)
	rl.UnloadImage(rlImg)
	if tex.ID == 0 {
		return rl.Texture2D{}, fmt.Errorf("media: texture upload failed for %s", path)
	}
	rl.SetTextureFilter(tex, rl.FilterBilinear)
	return tex, nil
}

func decodeImage(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("media: %w", err)
	}
	defer f.Close()
	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("media: decode %s: %w", path, err)
	}
	return img, nil
}

// Update advances playback by dt seconds and returns the texture to project
// this frame.
func (p *Player) Update(dt float32) rl.Texture2D {
	return p.textures[p.clock.Advance(float64(dt))]
}

// Current returns the texture for the current frame without advancing.
func (p *Player) Current() rl.Texture2D {
	return p.textures[p.clock.Index()]
}

// Clock exposes the playback clock for the panel's play/pause control.
func (p *Player) Clock() *Clock {
	return p.clock
}

// FrameCount returns the number of loaded frames.
func (p *Player) FrameCount() int {
	return len(p.textures)
}

// Unload releases all GPU textures. The player is unusable afterwards.
func (p *Player) Unload() {
	for _, tex := range p.textures {
		if tex.ID != 0 {
			rl.UnloadTexture(tex)
		}
	}
	p.textures = nil
}
