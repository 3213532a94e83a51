package main

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"dome-preview/internal/config"
	"dome-preview/internal/debug"
	"dome-preview/internal/fetch"
	"dome-preview/internal/input"
	"dome-preview/internal/logger"
	"dome-preview/internal/media"
	"dome-preview/internal/nav"
	"dome-preview/internal/panel"
	"dome-preview/internal/scene"
	"dome-preview/internal/sim"
	"dome-preview/internal/terminal"
)

// app wires the viewer together and drives one simulation step per frame:
// command bar and panel first, then input polling, the controller step,
// camera sync, media playback, and finally the draw pass.
type app struct {
	settings config.Settings
	log      *logger.Logger

	scn     *scene.Scene
	ctrl    *sim.Controller
	tracker *input.Tracker
	pan     *panel.Panel
	term    *terminal.Terminal
	dbg     *debug.Debug
	player  *media.Player

	// Model/media loading needs the GL context, which only exists once the
	// window is up; loaded defers it to the first update call.
	loaded        bool
	settingsDirty bool
	appliedAdjust config.Adjust
}

func newApp(settings config.Settings, log *logger.Logger) *app {
	a := &app{settings: settings, log: log}

	a.scn = scene.New(settings.EyeHeight)
	a.scn.GridVisible = settings.GridVisible

	cfg := sim.DefaultConfig()
	cfg.BaseSpeed = settings.BaseSpeed
	cfg.LookSensitivity = settings.LookSensitivity
	cfg.EyeHeight = settings.EyeHeight
	a.ctrl = sim.NewController(cfg, a.scn.Rig())
	a.ctrl.SetFly(settings.FlyMode)

	a.tracker = input.New()
	a.tracker.Ready = a.scn.Ready

	a.pan = panel.New(&a.settings)
	a.pan.OnChange = a.applySettings
	a.pan.OnTogglePlay = a.togglePlay
	a.tracker.CapturePointer = a.pan.CapturesPointer

	a.dbg = debug.New()
	a.dbg.SetShowFPS(settings.ShowFPS)
	a.dbg.SetShowMemAlloc(settings.ShowMemAlloc)
	a.dbg.SetShowPose(settings.ShowPose)
	a.dbg.PoseProvider = a.pose

	a.term = terminal.New(log, a.registerCommands())
	a.appliedAdjust = settings.Adjust
	return a
}

func (a *app) update() {
	a.ensureLoaded()

	a.term.Update()
	a.pan.Update()

	frame := a.tracker.Poll()
	if a.term.IsOpen() {
		// The bar owns the keyboard while open; panel buttons and touch still work.
		frame.Keys = sim.Intents{}
	}
	frame.Touch = frame.Touch.Or(a.pan.Intents())

	a.ctrl.Step(frame, rl.GetFrameTime())
	a.scn.Update()

	if a.player != nil {
		a.scn.SetScreenTexture(a.player.Update(rl.GetFrameTime()))
	}

	// Adjustment reloads and settings writes wait for the slider drag to end.
	if !rl.IsMouseButtonDown(rl.MouseButtonLeft) {
		if a.settings.Adjust != a.appliedAdjust {
			a.reloadMedia(a.settings.MediaPath)
			a.appliedAdjust = a.settings.Adjust
		}
		if a.settingsDirty {
			if err := config.Save(a.settings); err != nil {
				a.log.Log("settings: " + err.Error())
			}
			a.settingsDirty = false
		}
	}
}

func (a *app) draw() {
	a.scn.Draw()
	a.pan.Draw()
	a.term.Draw()
	a.dbg.Draw()
}

func (a *app) shutdown() {
	if a.player != nil {
		a.player.Unload()
	}
	a.scn.Unload()
}

// ensureLoaded installs the dome and media on the first frame after the window
// exists. A model that fails to load falls back to the generated dome so the
// viewer always starts.
func (a *app) ensureLoaded() {
	if a.loaded {
		return
	}
	a.loaded = true

	a.installModel(a.settings.ModelPath)
	if a.settings.MediaPath != "" {
		a.reloadMedia(a.settings.MediaPath)
	}
}

// installModel loads path (fetching URLs first) or generates the fallback dome,
// then rebuilds the navmesh and re-arms the controller.
func (a *app) installModel(path string) {
	if path != "" && fetch.IsURL(path) {
		local, err := fetch.Fetch(path, "")
		if err != nil {
			a.log.Log(err.Error())
			path = ""
		} else {
			path = local
		}
	}
	if path != "" {
		if err := a.scn.LoadModel(path); err != nil {
			a.log.Log(err.Error() + ", using generated dome")
			path = ""
		} else {
			a.log.Log("model loaded: " + path)
		}
	}
	if path == "" {
		a.scn.GenerateDome()
		a.log.Log("generated dome installed")
	}

	verts, idx := a.scn.NavGeometry()
	mesh := nav.Build(verts, idx, nav.DefaultBuildOptions())
	if mesh == nil {
		a.log.Log("no walkable surface found, movement unconstrained")
	} else {
		a.log.Log("navmesh ready")
	}
	a.ctrl.SetNavmesh(meshOrNil(mesh))
	a.ctrl.SetReady(a.scn.Ready())
}

// meshOrNil avoids handing the controller a typed nil interface.
func meshOrNil(m *nav.Mesh) sim.Navmesh {
	if m == nil {
		return nil
	}
	return m
}

// reloadMedia replaces the projected media (fetching URLs first). An empty path
// clears the screen.
func (a *app) reloadMedia(path string) {
	if a.player != nil {
		a.player.Unload()
		a.player = nil
		a.scn.SetScreenTexture(rl.Texture2D{})
	}
	if path == "" {
		return
	}
	if fetch.IsURL(path) {
		local, err := fetch.Fetch(path, "")
		if err != nil {
			a.log.Log(err.Error())
			return
		}
		path = local
	}
	p, err := media.Load(path, a.settings.MediaFPS, a.settings.Adjust)
	if err != nil {
		a.log.Log(err.Error())
		return
	}
	a.player = p
	a.scn.SetScreenTexture(p.Current())
	a.pan.SetPlaying(p.Clock().Playing())
	a.log.Log("media loaded: " + path)
}

// applySettings pushes panel edits into the live systems and marks the settings
// file dirty.
func (a *app) applySettings(s config.Settings) {
	cfg := a.ctrl.Config()
	cfg.BaseSpeed = s.BaseSpeed
	cfg.LookSensitivity = s.LookSensitivity
	cfg.EyeHeight = s.EyeHeight
	a.ctrl.SetConfig(cfg)
	a.ctrl.SetFly(s.FlyMode)
	a.scn.GridVisible = s.GridVisible
	a.dbg.SetShowFPS(s.ShowFPS)
	a.dbg.SetShowMemAlloc(s.ShowMemAlloc)
	a.dbg.SetShowPose(s.ShowPose)
	a.settingsDirty = true
}

func (a *app) togglePlay() bool {
	if a.player == nil {
		return false
	}
	return a.player.Clock().TogglePlay()
}

func (a *app) pose() debug.Pose {
	o := a.ctrl.Orientation()
	return debug.Pose{
		Position: a.scn.Rig().Position(),
		Yaw:      o.Yaw,
		Pitch:    o.Pitch,
		Fly:      a.ctrl.Fly(),
	}
}
