package main

import (
	"dome-preview/internal/config"
	"dome-preview/internal/graphics"
	"dome-preview/internal/logger"
)

func main() {
	settings, _ := config.Load()
	_ = config.LoadEnv(".env", &settings)
	log := logger.New()

	app := newApp(settings, log)
	opts := graphics.DefaultOptions()
	opts.Fullscreen = settings.Fullscreen
	graphics.Run(opts, app.update, app.draw)
	app.shutdown()
}
