package main

import (
	"errors"
	"flag"

	"github.com/sirupsen/logrus"

	"github.com/hubastard/pixelgrove/engine/assets"
	"github.com/hubastard/pixelgrove/engine/colors"
	"github.com/hubastard/pixelgrove/engine/config"
	"github.com/hubastard/pixelgrove/engine/core"
	"github.com/hubastard/pixelgrove/engine/platform"
	"github.com/hubastard/pixelgrove/engine/platform/headless"
	"github.com/hubastard/pixelgrove/engine/profiler"
	"github.com/hubastard/pixelgrove/engine/surface"
	"github.com/hubastard/pixelgrove/engine/text"
)

var log = logrus.WithField("component", "sandbox")

type App struct {
	font     *text.Font
	sprite   string
	snapshot string
	profile  string
	layer    *Layer2D
	debug    *LayerDebug
	menu     *menu
}

func (a *App) OnStart(e *core.Engine) {
	profiler.Init(1 << 16)

	a.layer = newLayer2D(a.sprite)
	e.PushLayer(a.layer)

	var err error
	a.menu, err = newMenu(a.font, e)
	if err != nil {
		log.WithError(err).Fatal("building menu")
	}
	e.PushLayer(a.menu.layer)

	a.debug, err = newLayerDebug(a.font, e.Surface.Width())
	if err != nil {
		log.WithError(err).Fatal("building debug overlay")
	}
	e.PushLayer(a.debug)
}

func (a *App) OnUpdate(e *core.Engine, in *core.Input) {
	if in.IsKeyDown(core.KeyEscape) {
		e.RequestClose()
	}
}

func (a *App) OnRender(e *core.Engine, s *surface.Surface) {
	s.Clear(colors.Black)
}

func (a *App) OnFrame(e *core.Engine, r core.FrameReport) {
	a.debug.Report(r)
	log.WithField("frame", r.String()).Trace("frame done")
}

func (a *App) OnShutdown(e *core.Engine) {
	a.dumpProfile()
	if a.snapshot == "" {
		return
	}
	if err := e.Surface.SavePNG(a.snapshot); err != nil {
		log.WithError(err).Error("saving snapshot")
		return
	}
	log.WithField("path", a.snapshot).Info("snapshot written")
}

func (a *App) dumpProfile() {
	if a.profile == "" {
		return
	}
	if err := profiler.Dump(a.profile); err != nil {
		log.WithError(err).Warn("writing profile")
		return
	}
	log.WithField("path", a.profile).Info("speedscope profile written")
}

func main() {
	cfgPath := flag.String("config", "pixelgrove.toml", "TOML config file")
	dotenv := flag.String("env", ".env", "dotenv file with PIXELGROVE_* overrides")
	sprite := flag.String("sprite", "", "PNG/BMP/WebP sprite to show (a generated one if empty)")
	headlessFrames := flag.Int("headless", 0, "run without a window for this many frames")
	snapshot := flag.String("snapshot", "", "write the last frame to this PNG on exit")
	profileOut := flag.String("profile-out", "", "write scope events as speedscope JSON on exit (profile builds)")
	flag.Parse()

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		log.WithError(err).Fatal("loading config")
	}
	if cfg, err = config.FromEnv(cfg, *dotenv); err != nil {
		log.WithError(err).Fatal("reading environment")
	}
	if err := config.Validate(cfg); err != nil {
		log.WithError(err).Fatal("config")
	}
	if err := config.ConfigureLogging(cfg); err != nil {
		log.WithError(err).Fatal("configuring logging")
	}

	data, err := assets.FontOrDefault(cfg.Font)
	if err != nil {
		log.WithError(err).Fatal("reading font")
	}
	font, err := text.LoadFont(data)
	if err != nil {
		log.WithError(err).Fatal("loading font")
	}

	app := &App{font: font, sprite: *sprite, snapshot: *snapshot, profile: *profileOut}

	newWindow := func(cfg core.Config) (core.Window, error) {
		return platform.NewGLFWWindow(cfg)
	}
	if *headlessFrames > 0 {
		newWindow = headless.Opener(headless.WithMaxFrames(*headlessFrames))
	}

	if err := core.Run(app, cfg, newWindow); err != nil {
		var sie *core.SurfaceInitError
		if errors.As(err, &sie) {
			log.WithError(err).Fatal("no surface, try -headless")
		}
		log.WithError(err).Fatal("engine stopped")
	}
}
