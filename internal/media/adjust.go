// Package media loads the images projected onto the dome screen: single stills
// or numbered frame sequences played at a fixed rate, with color/lighting
// adjustments applied at load time. Real video decode is out of scope; a frame
// sequence stands in for it.
package media

import (
	"image"

	"github.com/anthonynsimon/bild/adjust"

	"dome-preview/internal/config"
)

// ApplyAdjust runs the color pipeline over img: brightness, contrast,
// saturation, then gamma. Neutral stages are skipped, and a fully neutral
// adjustment returns img unchanged.
func ApplyAdjust(img image.Image, a config.Adjust) image.Image {
	if a.Neutral() {
		return img
	}
	out := img
	if a.Brightness != 0 {
		out = adjust.Brightness(out, a.Brightness)
	}
	if a.Contrast != 0 {
		out = adjust.Contrast(out, a.Contrast)
	}
	if a.Saturation != 0 {
		out = adjust.Saturation(out, a.Saturation)
	}
	if a.Gamma != 1 && a.Gamma > 0 {
		out = adjust.Gamma(out, a.Gamma)
	}
	return out
}
