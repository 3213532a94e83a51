package config

import (
	"os"
	"path/filepath"

	"github.com/jinzhu/copier"
	"gopkg.in/yaml.v3"
)

// SettingsPath is the path to the viewer settings file, relative to the process
// working directory.
const SettingsPath = "config/domeview.yaml"

// Adjust holds the color/lighting adjustments applied to projected media.
// Brightness, Contrast, and Saturation are offsets in [-1, 1] where 0 means
// unchanged; Gamma is a factor where 1 means unchanged.
type Adjust struct {
	Brightness float64 `yaml:"brightness"`
	Contrast   float64 `yaml:"contrast"`
	Saturation float64 `yaml:"saturation"`
	Gamma      float64 `yaml:"gamma"`
}

// Neutral reports whether the adjustment leaves media untouched.
func (a Adjust) Neutral() bool {
	return a.Brightness == 0 && a.Contrast == 0 && a.Saturation == 0 && (a.Gamma == 1 || a.Gamma == 0)
}

// Settings holds the viewer preferences persisted across runs: which dome model
// and media to show, movement tuning, and overlay toggles. In-session state
// (camera position, current frame) is not persisted.
type Settings struct {
	ModelPath string  `yaml:"model_path"` // empty = generated dome
	MediaPath string  `yaml:"media_path"` // image file or frame-sequence directory
	MediaFPS  float64 `yaml:"media_fps"`  // frame-sequence playback rate

	BaseSpeed       float32 `yaml:"base_speed"`       // world units per second
	LookSensitivity float32 `yaml:"look_sensitivity"` // radians per pixel
	EyeHeight       float32 `yaml:"eye_height"`       // world units
	FlyMode         bool    `yaml:"fly_mode"`

	GridVisible  bool `yaml:"grid_visible"`
	ShowFPS      bool `yaml:"show_fps"`
	ShowMemAlloc bool `yaml:"show_memalloc"`
	ShowPose     bool `yaml:"show_pose"`
	Fullscreen   bool `yaml:"fullscreen"`

	Adjust Adjust `yaml:"adjust"`
}

// Default returns the settings used when no file exists: generated dome, no
// media, walking speed, grid on, overlays off.
func Default() Settings {
	return Settings{
		MediaFPS:        24,
		BaseSpeed:       2.0,
		LookSensitivity: 0.0025,
		EyeHeight:       1.7,
		GridVisible:     true,
		Adjust:          Adjust{Gamma: 1},
	}
}

// Load reads settings from SettingsPath. A missing or invalid file yields
// Default() with no error and does not create a file.
func Load() (Settings, error) {
	return LoadFrom(SettingsPath)
}

// LoadFrom is Load with an explicit path.
func LoadFrom(path string) (Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Default(), nil
	}
	s := Default()
	if err := yaml.Unmarshal(data, &s); err != nil {
		return Default(), nil
	}
	return s, nil
}

// Save writes settings to SettingsPath, creating the config directory if needed.
func Save(s Settings) error {
	return SaveTo(SettingsPath, s)
}

// SaveTo is Save with an explicit path.
func SaveTo(path string, s Settings) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	data, err := yaml.Marshal(s)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Clone returns an independent copy, used by the panel to detect which fields a
// frame's widget interactions changed.
func (s Settings) Clone() Settings {
	var out Settings
	_ = copier.Copy(&out, &s)
	return out
}
