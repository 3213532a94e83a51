package debug

import (
	"fmt"
	"runtime"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/go-gl/mathgl/mgl32"
)

const (
	fontSize   = 20
	padding    = 12
	lineHeight = fontSize + 4
	// updateInterval: only refresh overlay text every N frames to reduce allocations.
	updateInterval = 30
)

// Pose is the camera readout shown by the pose overlay.
type Pose struct {
	Position   mgl32.Vec3
	Yaw, Pitch float32
	Fly        bool
}

// Debug holds the runtime overlays (FPS, heap, camera pose). All overlays are
// off by default; the pose overlay needs a PoseProvider.
type Debug struct {
	ShowFPS      bool
	ShowMemAlloc bool
	ShowPose     bool
	PoseProvider func() Pose

	frameCount   uint32
	lastFpsText  string
	lastMemText  string
	lastMemStats runtime.MemStats
}

// New returns a Debug system with all overlays hidden.
func New() *Debug {
	return &Debug{}
}

// SetShowFPS sets whether the FPS counter is drawn (top-right, green).
func (d *Debug) SetShowFPS(show bool) {
	d.ShowFPS = show
}

// SetShowMemAlloc sets whether the heap allocation counter is drawn under FPS.
func (d *Debug) SetShowMemAlloc(show bool) {
	d.ShowMemAlloc = show
}

// SetShowPose sets whether the camera position/orientation readout is drawn.
func (d *Debug) SetShowPose(show bool) {
	d.ShowPose = show
}

// Draw renders the enabled overlays at the top-right. Call after the scene and
// panel in the draw loop. FPS/Mem text is only recomputed every updateInterval
// frames; the pose line is cheap and refreshes every frame.
func (d *Debug) Draw() {
	d.frameCount++
	update := (d.frameCount % updateInterval) == 0
	if d.ShowFPS && d.lastFpsText == "" {
		update = true
	}
	if d.ShowMemAlloc && d.lastMemText == "" {
		update = true
	}

	screenW := int32(rl.GetScreenWidth())
	y := int32(padding)

	if d.ShowFPS {
		if update {
			d.lastFpsText = fmt.Sprintf("FPS: %d", rl.GetFPS())
		}
		drawRight(d.lastFpsText, screenW, y, rl.Green)
		y += lineHeight
	}

	if d.ShowMemAlloc {
		if update {
			runtime.ReadMemStats(&d.lastMemStats)
			mb := float64(d.lastMemStats.Alloc) / (1024 * 1024)
			d.lastMemText = fmt.Sprintf("Mem: %.2f MiB", mb)
		}
		drawRight(d.lastMemText, screenW, y, rl.Green)
		y += lineHeight
	}

	if d.ShowPose && d.PoseProvider != nil {
		p := d.PoseProvider()
		mode := "walk"
		if p.Fly {
			mode = "fly"
		}
		text := fmt.Sprintf("%.1f %.1f %.1f  yaw %.0f° pitch %.0f°  %s",
			p.Position.X(), p.Position.Y(), p.Position.Z(),
			mgl32.RadToDeg(p.Yaw), mgl32.RadToDeg(p.Pitch), mode)
		drawRight(text, screenW, y, rl.SkyBlue)
	}
}

func drawRight(text string, screenW, y int32, color rl.Color) {
	if text == "" {
		return
	}
	w := rl.MeasureText(text, fontSize)
	rl.DrawText(text, screenW-w-padding, y, fontSize, color)
}
