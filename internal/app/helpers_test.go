package app

import (
	"log/slog"
	"testing"

	"go-ant-colony/internal/component"
	"go-ant-colony/internal/config"
	"go-ant-colony/internal/defs"
	"go-ant-colony/internal/save"
	"go-ant-colony/internal/utils"
)

// newTestGame returns a game whose chance rolls all fail unless scripted,
// backed by an in-memory store.
func newTestGame(t *testing.T) (*Game, *utils.ScriptedSource, *save.MemoryStore) {
	t.Helper()
	src := newScripted()
	store := save.NewMemoryStore()
	g := NewGame(
		WithRandom(src),
		WithSettings(config.DefaultSettings()),
		WithStore(store),
		WithLogger(discardLogger()),
	)
	return g, src, store
}

func newEnemy(g *Game, x, y float64) *component.Enemy {
	return component.NewEnemy(g.World.NewEntity(), defs.Common, x, y)
}

func newScripted() *utils.ScriptedSource {
	return utils.NewScriptedSource()
}

func discardLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}
