package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	s, err := LoadFrom(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), s)
}

func TestLoadInvalidFileReturnsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("model_path: [unterminated"), 0644))
	s, err := LoadFrom(path)
	require.NoError(t, err)
	assert.Equal(t, Default(), s)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cfg", "domeview.yaml")
	want := Default()
	want.ModelPath = "assets/dome.glb"
	want.FlyMode = true
	want.BaseSpeed = 4.5
	want.Adjust = Adjust{Brightness: 0.2, Gamma: 1.8}

	require.NoError(t, SaveTo(path, want))
	got, err := LoadFrom(path)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestPartialFileKeepsDefaultsForOmittedFields(t *testing.T) {
	path := filepath.Join(t.TempDir(), "partial.yaml")
	require.NoError(t, os.WriteFile(path, []byte("base_speed: 3\n"), 0644))
	s, err := LoadFrom(path)
	require.NoError(t, err)
	assert.Equal(t, float32(3), s.BaseSpeed)
	assert.Equal(t, Default().EyeHeight, s.EyeHeight)
	assert.Equal(t, Default().MediaFPS, s.MediaFPS)
}

func TestCloneIsIndependent(t *testing.T) {
	s := Default()
	c := s.Clone()
	c.BaseSpeed = 99
	c.Adjust.Gamma = 0.1
	assert.Equal(t, Default(), s)
	assert.NotEqual(t, s, c)
}

func TestAdjustNeutral(t *testing.T) {
	assert.True(t, Adjust{Gamma: 1}.Neutral())
	assert.True(t, Adjust{}.Neutral())
	assert.False(t, Adjust{Brightness: 0.1, Gamma: 1}.Neutral())
	assert.False(t, Adjust{Gamma: 2}.Neutral())
}

func TestApplyEnvOverrides(t *testing.T) {
	t.Setenv("DOMEVIEW_MODEL", "override.glb")
	t.Setenv("DOMEVIEW_MEDIA", "")
	s := Default()
	s.MediaPath = "keep.png"
	ApplyEnv(&s)
	assert.Equal(t, "override.glb", s.ModelPath)
	assert.Equal(t, "keep.png", s.MediaPath)
}

func TestLoadEnvFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(path, []byte("# comment\nDOMEVIEW_MEDIA=\"shows/aurora\"\n"), 0644))
	t.Setenv("DOMEVIEW_MEDIA", "") // isolate from the outer environment
	s := Default()
	require.NoError(t, LoadEnv(path, &s))
	assert.Equal(t, "shows/aurora", s.MediaPath)

	// Missing file is fine.
	require.NoError(t, LoadEnv(filepath.Join(dir, "absent.env"), &s))
}
