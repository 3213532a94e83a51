// Package panel draws the floating control panel: toggles, sliders, and
// movement buttons bound to the viewer settings and the simulation intent set.
// Widgets are immediate-mode over raylib shapes; the panel owns no state beyond
// what is needed to track an active drag.
package panel

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"

	"dome-preview/internal/config"
	"dome-preview/internal/sim"
)

const (
	panelX      = 12
	panelY      = 12
	panelW      = 230
	rowH        = 26
	rowGap      = 4
	pad         = 10
	textSize    = 16
	sliderBarH  = 6
	sliderKnobW = 10
	moveBtnW    = 32
)

var (
	bgColor     = rl.NewColor(24, 24, 28, 230)
	rowColor    = rl.NewColor(46, 46, 54, 255)
	onColor     = rl.NewColor(90, 160, 90, 255)
	hotColor    = rl.NewColor(70, 70, 84, 255)
	knobColor   = rl.NewColor(200, 200, 210, 255)
	barColor    = rl.NewColor(90, 90, 104, 255)
	labelColor  = rl.NewColor(210, 210, 215, 255)
	headerColor = rl.NewColor(150, 150, 160, 255)
)

// Panel binds widgets to the viewer settings. OnChange fires with a copy of the
// settings whenever a widget changed a field this frame; OnTogglePlay flips
// media playback and reports the new state. Movement buttons feed Intents,
// which the main loop merges into the touch intent set (panel movement runs at
// touch speed).
type Panel struct {
	Visible      bool
	OnChange     func(config.Settings)
	OnTogglePlay func() bool

	settings *config.Settings
	playing  bool
	intents  sim.Intents

	activeSlider string
	hover        bool
}

// New returns a visible panel bound to s. The panel mutates s directly; callers
// keep s as the single source of truth.
func New(s *config.Settings) *Panel {
	return &Panel{Visible: true, settings: s}
}

// SetPlaying updates the play/pause button display state.
func (p *Panel) SetPlaying(playing bool) {
	p.playing = playing
}

// Intents returns the movement intents from buttons held this frame.
func (p *Panel) Intents() sim.Intents {
	return p.intents
}

// CapturesPointer reports whether the mouse is over the panel (or mid-drag on a
// slider), in which case the look tracker must ignore the pointer.
func (p *Panel) CapturesPointer() bool {
	return p.Visible && (p.hover || p.activeSlider != "")
}

// Update runs hit-testing and widget logic for this frame. Tab toggles
// visibility. Call before the movement input poll so CapturesPointer is fresh.
func (p *Panel) Update() {
	if rl.IsKeyPressed(rl.KeyTab) {
		p.Visible = !p.Visible
	}
	p.intents = sim.Intents{}
	if !p.Visible {
		p.hover = false
		p.activeSlider = ""
		return
	}

	before := p.settings.Clone()
	mouse := rl.GetMousePosition()
	p.hover = rl.CheckCollisionPointRec(mouse, p.bounds())
	if !rl.IsMouseButtonDown(rl.MouseButtonLeft) {
		p.activeSlider = ""
	}

	l := newLayout()
	l.header("media")
	if l.toggle(mouse, playLabel(p.playing), p.playing) && p.OnTogglePlay != nil {
		p.playing = p.OnTogglePlay()
	}
	l.slider(p, mouse, "brightness", &p.settings.Adjust.Brightness, -1, 1)
	l.slider(p, mouse, "contrast", &p.settings.Adjust.Contrast, -1, 1)
	l.slider(p, mouse, "saturation", &p.settings.Adjust.Saturation, -1, 1)
	l.slider(p, mouse, "gamma", &p.settings.Adjust.Gamma, 0.2, 3)

	l.header("camera")
	speed := float64(p.settings.BaseSpeed)
	l.slider(p, mouse, "speed", &speed, 0.5, 8)
	p.settings.BaseSpeed = float32(speed)
	if l.toggle(mouse, "fly mode", p.settings.FlyMode) {
		p.settings.FlyMode = !p.settings.FlyMode
	}
	l.moveRow(p, mouse)

	l.header("overlays")
	if l.toggle(mouse, "grid", p.settings.GridVisible) {
		p.settings.GridVisible = !p.settings.GridVisible
	}
	if l.toggle(mouse, "fps", p.settings.ShowFPS) {
		p.settings.ShowFPS = !p.settings.ShowFPS
	}
	if l.toggle(mouse, "pose", p.settings.ShowPose) {
		p.settings.ShowPose = !p.settings.ShowPose
	}

	if p.OnChange != nil && *p.settings != before {
		p.OnChange(p.settings.Clone())
	}
}

// Draw renders the panel. Call in the 2D overlay pass, after the 3D scene.
func (p *Panel) Draw() {
	if !p.Visible {
		return
	}
	rl.DrawRectangleRec(p.bounds(), bgColor)

	mouse := rl.GetMousePosition()
	l := newLayout()
	l.draw = true
	l.header("media")
	l.toggle(mouse, playLabel(p.playing), p.playing)
	l.slider(p, mouse, "brightness", &p.settings.Adjust.Brightness, -1, 1)
	l.slider(p, mouse, "contrast", &p.settings.Adjust.Contrast, -1, 1)
	l.slider(p, mouse, "saturation", &p.settings.Adjust.Saturation, -1, 1)
	l.slider(p, mouse, "gamma", &p.settings.Adjust.Gamma, 0.2, 3)

	l.header("camera")
	speed := float64(p.settings.BaseSpeed)
	l.slider(p, mouse, "speed", &speed, 0.5, 8)
	l.toggle(mouse, "fly mode", p.settings.FlyMode)
	l.moveRow(p, mouse)

	l.header("overlays")
	l.toggle(mouse, "grid", p.settings.GridVisible)
	l.toggle(mouse, "fps", p.settings.ShowFPS)
	l.toggle(mouse, "pose", p.settings.ShowPose)
}

func playLabel(playing bool) string {
	if playing {
		return "pause"
	}
	return "play"
}

func (p *Panel) bounds() rl.Rectangle {
	return rl.NewRectangle(panelX, panelY, panelW, newLayout().totalHeight())
}

// layout walks the widget rows top to bottom. The same walk runs twice per
// frame: once in Update (logic only) and once in Draw (draw only), so hit
// rectangles and visuals can never drift apart.
type layout struct {
	y    float32
	draw bool
}

func newLayout() *layout {
	return &layout{y: panelY + pad}
}

// totalHeight sizes the background: 3 headers, 5 toggles, 5 sliders, 1 move row.
func (l *layout) totalHeight() float32 {
	rows := float32(3+5+5+1) * (rowH + rowGap)
	return rows + 2*pad
}

func (l *layout) row() rl.Rectangle {
	r := rl.NewRectangle(panelX+pad, l.y, panelW-2*pad, rowH)
	l.y += rowH + rowGap
	return r
}

func (l *layout) header(label string) {
	r := l.row()
	if l.draw {
		rl.DrawText(label, int32(r.X), int32(r.Y+4), textSize, headerColor)
	}
}

// toggle returns true when the row was clicked this frame (Update pass only).
func (l *layout) toggle(mouse rl.Vector2, label string, on bool) bool {
	r := l.row()
	hot := rl.CheckCollisionPointRec(mouse, r)
	if l.draw {
		c := rowColor
		if on {
			c = onColor
		} else if hot {
			c = hotColor
		}
		rl.DrawRectangleRec(r, c)
		rl.DrawText(label, int32(r.X+6), int32(r.Y+5), textSize, labelColor)
		return false
	}
	return hot && rl.IsMouseButtonPressed(rl.MouseButtonLeft)
}

// slider edits *value in [min, max]. Dragging anywhere on the row moves the
// knob; the drag stays latched to this slider until the button is released.
func (l *layout) slider(p *Panel, mouse rl.Vector2, label string, value *float64, min, max float64) {
	r := l.row()
	barY := r.Y + rowH - sliderBarH - 3
	bar := rl.NewRectangle(r.X, barY, r.Width, sliderBarH)

	if !l.draw {
		hot := rl.CheckCollisionPointRec(mouse, r)
		if hot && rl.IsMouseButtonPressed(rl.MouseButtonLeft) {
			p.activeSlider = label
		}
		if p.activeSlider == label && rl.IsMouseButtonDown(rl.MouseButtonLeft) {
			frac := float64((mouse.X - bar.X) / bar.Width)
			if frac < 0 {
				frac = 0
			}
			if frac > 1 {
				frac = 1
			}
			*value = min + frac*(max-min)
		}
		return
	}

	rl.DrawText(fmt.Sprintf("%s %.2f", label, *value), int32(r.X), int32(r.Y+1), textSize-2, labelColor)
	rl.DrawRectangleRec(bar, barColor)
	frac := float32((*value - min) / (max - min))
	knobX := bar.X + frac*bar.Width - sliderKnobW/2
	rl.DrawRectangle(int32(knobX), int32(barY-3), sliderKnobW, sliderBarH+6, knobColor)
}

// moveRow is the held-button strip: strafe left, forward, backward, strafe
// right, rotate left, rotate right. Held buttons assert intents every frame.
func (l *layout) moveRow(p *Panel, mouse rl.Vector2) {
	r := l.row()
	labels := [6]string{"<", "^", "v", ">", "rl", "rr"}
	targets := [6]*bool{
		&p.intents.Left, &p.intents.Forward, &p.intents.Backward,
		&p.intents.Right, &p.intents.RotateLeft, &p.intents.RotateRight,
	}
	x := r.X
	for i := 0; i < len(labels); i++ {
		btn := rl.NewRectangle(x, r.Y, moveBtnW, rowH)
		hot := rl.CheckCollisionPointRec(mouse, btn)
		if l.draw {
			c := rowColor
			if hot && rl.IsMouseButtonDown(rl.MouseButtonLeft) {
				c = onColor
			} else if hot {
				c = hotColor
			}
			rl.DrawRectangleRec(btn, c)
			w := rl.MeasureText(labels[i], textSize)
			rl.DrawText(labels[i], int32(btn.X+(moveBtnW-float32(w))/2), int32(btn.Y+5), textSize, labelColor)
		} else if hot && rl.IsMouseButtonDown(rl.MouseButtonLeft) {
			*targets[i] = true
		}
		x += moveBtnW + 2
	}
}
