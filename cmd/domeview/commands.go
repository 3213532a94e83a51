package main

import (
	"flag"
	"fmt"
	"strconv"

	"github.com/go-gl/mathgl/mgl32"

	"dome-preview/internal/commands"
	"dome-preview/internal/config"
)

// registerCommands builds the command bar registry. Every command mutates the
// live settings so a following "cmd save" persists the session.
func (a *app) registerCommands() *commands.Registry {
	reg := commands.NewRegistry()

	reg.Register("fly", "fly [on|off] - toggle or set fly mode", nil, func(args []string) error {
		on, err := parseToggle(args, !a.settings.FlyMode)
		if err != nil {
			return err
		}
		a.settings.FlyMode = on
		a.ctrl.SetFly(on)
		a.log.Log("fly mode " + onOff(on))
		return nil
	})

	reg.Register("speed", "speed <units/s> - set movement speed", nil, func(args []string) error {
		if len(args) != 1 {
			return fmt.Errorf("usage: cmd speed <units/s>")
		}
		v, err := strconv.ParseFloat(args[0], 32)
		if err != nil || v <= 0 {
			return fmt.Errorf("speed: need a positive number, got %q", args[0])
		}
		a.settings.BaseSpeed = float32(v)
		a.applySettings(a.settings)
		a.log.Log(fmt.Sprintf("speed %.2f", v))
		return nil
	})

	reg.Register("teleport", "teleport <x> <y> <z> [yaw deg] - jump the camera", nil, func(args []string) error {
		if len(args) != 3 && len(args) != 4 {
			return fmt.Errorf("usage: cmd teleport <x> <y> <z> [yaw deg]")
		}
		var vals [4]float32
		for i, s := range args {
			v, err := strconv.ParseFloat(s, 32)
			if err != nil {
				return fmt.Errorf("teleport: bad number %q", s)
			}
			vals[i] = float32(v)
		}
		yaw := float32(0)
		if len(args) == 4 {
			yaw = mgl32.DegToRad(vals[3])
		}
		a.ctrl.Teleport(mgl32.Vec3{vals[0], vals[1], vals[2]}, mgl32.Vec3{0, yaw, 0})
		return nil
	})

	reg.Register("model", "model <path|url> - load a dome model (no path = generated dome)", nil, func(args []string) error {
		path := ""
		if len(args) > 0 {
			path = args[0]
		}
		a.settings.ModelPath = path
		a.installModel(path)
		return nil
	})

	reg.Register("media", "media <path|url> - project an image or frame-sequence directory", nil, func(args []string) error {
		path := ""
		if len(args) > 0 {
			path = args[0]
		}
		a.settings.MediaPath = path
		a.reloadMedia(path)
		return nil
	})

	reg.Register("grid", "grid [on|off] - toggle the floor grid", nil, func(args []string) error {
		on, err := parseToggle(args, !a.settings.GridVisible)
		if err != nil {
			return err
		}
		a.settings.GridVisible = on
		a.scn.GridVisible = on
		return nil
	})

	adjustFlags := flag.NewFlagSet("adjust", flag.ContinueOnError)
	brightness := adjustFlags.Float64("brightness", 0, "offset in [-1, 1]")
	contrast := adjustFlags.Float64("contrast", 0, "offset in [-1, 1]")
	saturation := adjustFlags.Float64("saturation", 0, "offset in [-1, 1]")
	gamma := adjustFlags.Float64("gamma", 1, "factor, 1 = unchanged")
	reg.Register("adjust", "adjust -brightness v -contrast v -saturation v -gamma v", adjustFlags, func(args []string) error {
		a.settings.Adjust = config.Adjust{
			Brightness: *brightness,
			Contrast:   *contrast,
			Saturation: *saturation,
			Gamma:      *gamma,
		}
		a.reloadMedia(a.settings.MediaPath)
		a.appliedAdjust = a.settings.Adjust
		return nil
	})

	reg.Register("play", "play - toggle media playback", nil, func(args []string) error {
		if a.player == nil {
			return fmt.Errorf("play: no media loaded")
		}
		playing := a.player.Clock().TogglePlay()
		a.pan.SetPlaying(playing)
		a.log.Log("playback " + onOff(playing))
		return nil
	})

	reg.Register("save", "save - write settings to "+config.SettingsPath, nil, func(args []string) error {
		if err := config.Save(a.settings); err != nil {
			return err
		}
		a.log.Log("settings saved")
		return nil
	})

	return reg
}

// parseToggle reads an optional on/off argument; no argument means flip.
func parseToggle(args []string, flipped bool) (bool, error) {
	if len(args) == 0 {
		return flipped, nil
	}
	switch args[0] {
	case "on", "true", "1":
		return true, nil
	case "off", "false", "0":
		return false, nil
	}
	return false, fmt.Errorf("expected on or off, got %q", args[0])
}

func onOff(on bool) string {
	if on {
		return "on"
	}
	return "off"
}
