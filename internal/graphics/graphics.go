package graphics

import rl "github.com/gen2brain/raylib-go/raylib"

// Options controls the window the viewer runs in.
type Options struct {
	Title      string
	Fullscreen bool
	Width      int32 // windowed size; ignored when fullscreen
	Height     int32
	TargetFPS  int32
}

// DefaultOptions returns a resizable 1280x800 window at 60 FPS.
func DefaultOptions() Options {
	return Options{Title: "dome preview", Width: 1280, Height: 800, TargetFPS: 60}
}

// Run opens the window and drives the main loop. Each frame it calls update
// (input polling and simulation), then clears the screen and calls draw. ESC is
// reserved for the command bar, so the window closes via the close button only.
func Run(opts Options, update, draw func()) {
	if opts.Fullscreen {
		rl.SetConfigFlags(rl.FlagFullscreenMode)
		rl.InitWindow(int32(rl.GetMonitorWidth(0)), int32(rl.GetMonitorHeight(0)), opts.Title)
	} else {
		rl.SetConfigFlags(rl.FlagWindowResizable)
		rl.InitWindow(opts.Width, opts.Height, opts.Title)
	}
	defer rl.CloseWindow()

	rl.SetExitKey(rl.KeyNull)
	if opts.TargetFPS > 0 {
		rl.SetTargetFPS(opts.TargetFPS)
	}

	for !rl.WindowShouldClose() {
		update()

		rl.BeginDrawing()
		rl.ClearBackground(rl.Black)
		draw()
		rl.EndDrawing()
	}
}
