package app

import (
	"context"
	"os/signal"
	"syscall"
	"time"

	"slot_reel/internal/backend"
	"slot_reel/internal/clock"
	"slot_reel/internal/config"
	"slot_reel/internal/config/env"
	"slot_reel/internal/game"
	"slot_reel/internal/reel"
	"slot_reel/internal/render"
	"slot_reel/internal/sound"
	"slot_reel/pkg/logger"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"
)

const (
	frameInterval    = 16 * time.Millisecond
	bootstrapTimeout = 10 * time.Second
)

// ClientApp терминальный клиент: барабан, звук и связь с сервером
type ClientApp struct {
	log     *zap.Logger
	reelCfg config.ReelConfig
	ticker  *clock.Ticker
	game    *game.Game
	sound   sound.Player
}

func NewClientApp() *ClientApp {
	return &ClientApp{}
}

func (a *ClientApp) Run() error {
	envErr := config.Load(".env")

	logCfg := env.NewLogConfig()
	// В консоль писать нельзя, там барабан
	a.log = logger.New(logger.Config{
		Level: logCfg.Level(),
		App:   "slot_client",
		Dir:   logCfg.Dir(),
	})
	defer func() { _ = a.log.Sync() }()
	if envErr != nil {
		a.log.Warn("error loading .env file", zap.Error(envErr))
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := a.init(ctx); err != nil {
		return err
	}
	defer a.sound.Close()
	defer a.game.Close()

	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()
	screen.HideCursor()

	renderer := render.NewRenderer(screen, render.NewGlyphs(a.reelCfg.Symbols()))
	a.loop(ctx, screen, renderer)

	return nil
}

func (a *ClientApp) init(ctx context.Context) error {
	backendCfg, err := env.NewBackendConfig()
	if err != nil {
		return err
	}
	a.reelCfg, err = env.NewReelConfigFromYAML(env.ReelConfigPath())
	if err != nil {
		return err
	}

	beep, err := sound.NewBeep(a.reelCfg.Symbols())
	if err != nil {
		a.log.Warn("sound disabled", zap.Error(err))
		a.sound = sound.Nop{}
	} else {
		a.sound = beep
	}

	a.ticker = clock.NewTicker(clock.NewRealTimeSource())
	controller := reel.NewController(a.ticker, reelParams(a.reelCfg))

	a.game = game.NewGame(game.Deps{
		Backend:   backend.NewClient(backendCfg),
		Reel:      controller,
		Scheduler: a.ticker,
		Sound:     a.sound,
		Log:       a.log,
	}, game.Params{
		Bet:     a.reelCfg.BetCost(),
		MaxSpin: a.reelCfg.MaxSpin(),
	})

	bootCtx, cancel := context.WithTimeout(ctx, bootstrapTimeout)
	defer cancel()
	if err := a.game.Bootstrap(bootCtx); err != nil {
		a.game.Close()
		a.sound.Close()
		return err
	}
	return nil
}

func (a *ClientApp) loop(ctx context.Context, screen tcell.Screen, renderer *render.Renderer) {
	frames := time.NewTicker(frameInterval)
	defer frames.Stop()

	done := make(chan struct{})
	defer close(done)

	events := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return
		case ev := <-events:
			if !a.handleEvent(screen, ev) {
				return
			}
		case <-frames.C:
			a.ticker.Tick()
			renderer.Draw(a.game.View())
		}
	}
}

// handleEvent false - пора выходить
func (a *ClientApp) handleEvent(screen tcell.Screen, ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch {
		case ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC:
			return false
		case ev.Key() == tcell.KeyRune && ev.Rune() == 'q':
			return false
		case ev.Key() == tcell.KeyEnter || (ev.Key() == tcell.KeyRune && ev.Rune() == ' '):
			a.game.Activate()
		}
	case *tcell.EventResize:
		screen.Sync()
	}
	return true
}

func reelParams(cfg config.ReelConfig) reel.Params {
	return reel.Params{
		VisibleCount: cfg.VisibleSymbols(),
		SlotHeight:   cfg.SlotHeight(),
		SpinSpeed:    cfg.SpinSpeed(),
		AccelerateMS: cfg.AccelerateMS(),
		DecelerateMS: cfg.DecelerateMS(),
		MinFrameMS:   cfg.MinFrameMS(),
		BlurFactor:   cfg.BlurFactor(),
		Bounce:       cfg.Bounce(),
	}
}
