package scene

import (
	"fmt"
	"os"
	"path/filepath"
	"unsafe"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/go-gl/mathgl/mgl32"

	"dome-preview/internal/domegen"
)

const (
	gridExtent     = 12
	gridStep       = 1
	gridAlpha      = 60
	axisAlpha      = 200
	backdropScale  = 400
	domeRings      = 24
	domeSlices     = 48
	floorThickness = 0.05
)

// backdropPaths are tried in order so the panorama is found whether run from the
// repo root or cmd/domeview.
var backdropPaths = []string{
	"assets/backdrop/panorama.png",
	"assets/backdrop/panorama.jpg",
	"../../assets/backdrop/panorama.png",
	"../../assets/backdrop/panorama.jpg",
}

// Scene hosts the dome: either a model loaded from disk or the generated
// hemisphere-plus-floor fallback, the screen material the media texture is bound
// to, an optional equirectangular panorama backdrop, and the floor grid. It also
// owns the rl.Camera3D and the Rig the controller drives.
type Scene struct {
	Camera      rl.Camera3D
	GridVisible bool

	rig   *Rig
	ready bool

	model     rl.Model
	hasModel  bool
	dome      rl.Model // generated fallback shell
	floor     rl.Model
	generated bool
	domeOpts  domegen.Options

	navVerts []mgl32.Vec3
	navIdx   []uint32

	screenTex rl.Texture2D
	hasScreen bool

	// Backdrop GPU load is deferred until the first Draw so it runs after the
	// window/GL context exists.
	backdropTex     rl.Texture2D
	backdropMesh    rl.Mesh
	backdropMtl     rl.Material
	backdropShader  rl.Shader
	backdropCamLoc  int32
	backdropTexLoc  int32
	backdropLoaded  bool
	backdropPending bool
	backdropPath    string
}

// New returns a scene with a perspective camera at dome center, fovy 75° for a
// wide fulldome view. The dome itself is loaded later with LoadModel or
// GenerateDome; until then Ready() is false and the controller stays inert.
func New(eyeHeight float32) *Scene {
	s := &Scene{
		rig:         NewRig(mgl32.Vec3{0, eyeHeight, 0}),
		GridVisible: true,
		domeOpts:    domegen.DefaultOptions(),
	}
	s.Camera.Up = rl.NewVector3(0, 1, 0)
	s.Camera.Fovy = 75
	s.Camera.Projection = rl.CameraPerspective
	s.rig.Apply(&s.Camera)
	s.findBackdrop()
	return s
}

// Rig returns the camera rig the walkthrough controller drives.
func (s *Scene) Rig() *Rig {
	return s.rig
}

// Ready reports whether a dome (loaded or generated) is in place. This is the
// model-ready signal that gates all movement.
func (s *Scene) Ready() bool {
	return s.ready
}

// LoadModel replaces the current dome with a model from disk (obj/glb/gltf,
// whatever raylib can read). The previous dome is unloaded first. Requires a
// live GL context.
func (s *Scene) LoadModel(path string) error {
	model := rl.LoadModel(path)
	if !rl.IsModelValid(model) {
		return fmt.Errorf("scene: cannot load model %s", path)
	}
	s.unloadDome()
	s.model = model
	s.hasModel = true
	s.navVerts, s.navIdx = ModelTriangles(model)
	s.bindScreen()
	s.ready = true
	return nil
}

// GenerateDome installs the procedural fallback dome. Requires a live GL context.
func (s *Scene) GenerateDome() {
	s.unloadDome()
	s.dome = rl.LoadModelFromMesh(rl.GenMeshHemiSphere(s.domeOpts.Radius, domeRings, domeSlices))
	s.floor = rl.LoadModelFromMesh(rl.GenMeshCylinder(s.domeOpts.Radius-s.domeOpts.FloorInset, floorThickness, domeSlices))
	s.generated = true
	s.navVerts, s.navIdx = domegen.Generate(s.domeOpts)
	s.bindScreen()
	s.ready = true
}

// NavGeometry returns the triangle soup of the current dome for the navmesh
// build. Empty until the dome is ready.
func (s *Scene) NavGeometry() ([]mgl32.Vec3, []uint32) {
	return s.navVerts, s.navIdx
}

// SetScreenTexture binds tex as the projected media on the dome's screen
// surface (material 0 diffuse map).
func (s *Scene) SetScreenTexture(tex rl.Texture2D) {
	s.screenTex = tex
	s.hasScreen = tex.ID != 0
	s.bindScreen()
}

func (s *Scene) bindScreen() {
	if !s.hasScreen {
		return
	}
	if s.hasModel && s.model.Materials != nil && s.model.MaterialCount > 0 {
		mats := unsafe.Slice(s.model.Materials, s.model.MaterialCount)
		rl.SetMaterialTexture(&mats[0], rl.MapDiffuse, s.screenTex)
	}
	if s.generated && s.dome.Materials != nil && s.dome.MaterialCount > 0 {
		mats := unsafe.Slice(s.dome.Materials, s.dome.MaterialCount)
		rl.SetMaterialTexture(&mats[0], rl.MapDiffuse, s.screenTex)
	}
}

// Update pushes the rig transform into the camera. Call after the controller
// step, before Draw.
func (s *Scene) Update() {
	s.rig.Apply(&s.Camera)
}

// Draw renders the 3D scene: backdrop first, then the dome interior and the
// floor grid. Backface culling is off while the dome draws so its inside is
// visible from within.
func (s *Scene) Draw() {
	s.ensureBackdropLoaded()
	rl.BeginMode3D(s.Camera)
	if s.backdropLoaded {
		s.drawBackdrop()
	}
	if s.ready {
		rl.DisableBackfaceCulling()
		if s.hasModel {
			rl.DrawModel(s.model, rl.NewVector3(0, 0, 0), 1, rl.White)
		} else if s.generated {
			rl.DrawModel(s.dome, rl.NewVector3(0, 0, 0), 1, rl.White)
			rl.DrawModel(s.floor, rl.NewVector3(0, -floorThickness, 0), 1, rl.NewColor(60, 60, 70, 255))
		}
		rl.EnableBackfaceCulling()
	}
	if s.GridVisible {
		drawFloorGrid()
	}
	rl.EndMode3D()
}

// Unload releases the dome's GPU resources.
func (s *Scene) Unload() {
	s.unloadDome()
	if s.backdropLoaded {
		rl.UnloadTexture(s.backdropTex)
		rl.UnloadShader(s.backdropShader)
		s.backdropLoaded = false
	}
}

func (s *Scene) unloadDome() {
	if s.hasModel {
		rl.UnloadModel(s.model)
		s.hasModel = false
	}
	if s.generated {
		rl.UnloadModel(s.dome)
		rl.UnloadModel(s.floor)
		s.generated = false
	}
	s.navVerts, s.navIdx = nil, nil
	s.ready = false
}

// findBackdrop records the panorama path if one exists; GPU load waits for the
// first Draw.
func (s *Scene) findBackdrop() {
	for _, p := range backdropPaths {
		cleaned := filepath.Clean(p)
		if _, err := os.Stat(cleaned); err == nil {
			s.backdropPath = cleaned
			s.backdropPending = true
			return
		}
	}
}

// drawFloorGrid draws a modest line grid on Y=0 with X/Z axis lines, enough to
// keep bearings inside the dome without washing out the projection.
func drawFloorGrid() {
	line := rl.NewColor(140, 140, 140, gridAlpha)
	axisX := rl.NewColor(220, 80, 80, axisAlpha)
	axisZ := rl.NewColor(80, 80, 220, axisAlpha)

	var start, end rl.Vector3
	for i := -gridExtent; i <= gridExtent; i += gridStep {
		start.X, start.Y, start.Z = float32(i), 0, float32(-gridExtent)
		end.X, end.Y, end.Z = float32(i), 0, float32(gridExtent)
		rl.DrawLine3D(start, end, line)
		start.X, start.Y, start.Z = float32(-gridExtent), 0, float32(i)
		end.X, end.Y, end.Z = float32(gridExtent), 0, float32(i)
		rl.DrawLine3D(start, end, line)
	}
	rl.DrawLine3D(rl.NewVector3(-gridExtent, 0, 0), rl.NewVector3(gridExtent, 0, 0), axisX)
	rl.DrawLine3D(rl.NewVector3(0, 0, -gridExtent), rl.NewVector3(0, 0, gridExtent), axisZ)
}
