package scene

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

// Equirectangular backdrop shader: samples the panorama by world view direction,
// so the image surrounds the dome at infinity.
const (
	backdropVS = `#version 330
in vec3 vertexPosition;
uniform mat4 matProjection;
uniform mat4 matView;
uniform mat4 matModel;
out vec3 fragWorldPos;
void main() {
  vec4 worldPos = matModel * vec4(vertexPosition, 1.0);
  fragWorldPos = worldPos.xyz;
  gl_Position = matProjection * matView * worldPos;
}
`
	backdropFS = `#version 330
in vec3 fragWorldPos;
out vec4 finalColor;
uniform sampler2D panorama;
uniform vec3 cameraPosition;
void main() {
  vec3 dir = normalize(fragWorldPos - cameraPosition);
  float lon = atan(dir.z, dir.x);
  float lat = asin(clamp(dir.y, -1.0, 1.0));
  float u = lon / 6.28318530718 + 0.5;
  float v = 0.5 - lat / 3.14159265359;
  finalColor = texture(panorama, vec2(u, v));
}
`
)

// ensureBackdropLoaded runs on the first Draw with a pending backdrop, after the
// GL context exists: texture, cube mesh, material, shader.
func (s *Scene) ensureBackdropLoaded() {
	if !s.backdropPending || s.backdropPath == "" {
		return
	}
	path := s.backdropPath
	s.backdropPending = false
	s.backdropPath = ""

	s.backdropTex = rl.LoadTexture(path)
	if !rl.IsTextureValid(s.backdropTex) {
		return
	}
	shader := rl.LoadShaderFromMemory(backdropVS, backdropFS)
	if !rl.IsShaderValid(shader) {
		rl.UnloadTexture(s.backdropTex)
		return
	}
	s.backdropMesh = rl.GenMeshCube(1, 1, 1)
	s.backdropMtl = rl.LoadMaterialDefault()
	s.backdropMtl.Shader = shader
	s.backdropShader = shader
	s.backdropCamLoc = rl.GetShaderLocation(shader, "cameraPosition")
	s.backdropTexLoc = rl.GetShaderLocation(shader, "panorama")
	s.backdropLoaded = true
}

// drawBackdrop draws the panorama as a large cube centered on the camera, with
// depth writes off so everything else renders in front of it.
func (s *Scene) drawBackdrop() {
	rl.DisableDepthMask()
	rl.DisableBackfaceCulling()
	pos := s.Camera.Position
	scale := rl.MatrixScale(backdropScale, backdropScale, backdropScale)
	trans := rl.MatrixTranslate(pos.X, pos.Y, pos.Z)
	transform := rl.MatrixMultiply(scale, trans)
	if s.backdropCamLoc >= 0 {
		rl.SetShaderValueV(s.backdropMtl.Shader, s.backdropCamLoc, []float32{pos.X, pos.Y, pos.Z}, rl.ShaderUniformVec3, 1)
	}
	if s.backdropTexLoc >= 0 {
		rl.SetShaderValueTexture(s.backdropMtl.Shader, s.backdropTexLoc, s.backdropTex)
	}
	rl.DrawMesh(s.backdropMesh, s.backdropMtl, transform)
	rl.EnableBackfaceCulling()
	rl.EnableDepthMask()
}
