// cmd/game/main.go
package main

import (
	"log/slog"
	"os"
	"time"

	"go-ant-colony/internal/app"
	"go-ant-colony/internal/assets"
	"go-ant-colony/internal/config"
	"go-ant-colony/internal/save"
	"go-ant-colony/internal/state"

	"github.com/hajimehoshi/ebiten/v2"
)

const (
	startFromGame = false // true skips the title screen
	maxDeltaTime  = 0.25
)

type AppGame struct {
	stateMachine   *state.StateMachine
	lastUpdateTime time.Time
}

func (a *AppGame) Update() error {
	now := time.Now()
	deltaTime := now.Sub(a.lastUpdateTime).Seconds()
	if deltaTime > maxDeltaTime {
		deltaTime = maxDeltaTime
	}
	a.lastUpdateTime = now
	a.stateMachine.Update(deltaTime)
	return nil
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.stateMachine.Draw(screen)
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}

func main() {
	settings, err := config.LoadSettings(".env")
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: settings.LogLevel}))
	slog.SetDefault(logger)
	if err != nil {
		logger.Warn("using default settings", "err", err)
	}

	store, closeStore, err := save.Open(settings.SaveBackend, settings.SavePath)
	if err != nil {
		logger.Error("save store unavailable, progress will not be kept", "backend", settings.SaveBackend, "err", err)
		store = nil
	}
	defer closeStore()

	face, err := assets.FontFaceOrDefault(settings.FontPath, 12)
	if err != nil {
		logger.Warn("falling back to the built-in font", "path", settings.FontPath, "err", err)
	}

	opts := []app.Option{app.WithSettings(settings), app.WithLogger(logger)}
	if store != nil {
		opts = append(opts, app.WithStore(store))
	}
	game := app.NewGame(opts...)

	sm := state.NewStateMachine()
	if startFromGame {
		game.Load()
		sm.SetState(state.NewGameState(sm, game, face))
	} else {
		sm.SetState(state.NewMenuState(sm, game, face))
	}

	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle("Ant Colony Simulator")
	if err := ebiten.RunGame(&AppGame{stateMachine: sm, lastUpdateTime: time.Now()}); err != nil {
		logger.Error("game exited", "err", err)
		closeStore()
		os.Exit(1)
	}
}
