// internal/app/runner.go
package app

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"go-ant-colony/internal/config"
)

// ErrRunnerStopped is returned by Do and Snapshot once Run has returned.
var ErrRunnerStopped = errors.New("runner stopped")

// Runner owns a Game on a single goroutine. Ticks and queued commands are
// serialized, so actions always land between two ticks.
type Runner struct {
	game     *Game
	interval time.Duration
	logger   *slog.Logger
	cmds     chan func(*Game)
	stopChan chan struct{}
	done     chan struct{}
}

// NewRunner wraps g. The tick interval defaults to 1/60 s.
func NewRunner(g *Game) *Runner {
	return &Runner{
		game:     g,
		interval: time.Second / config.TicksPerSec,
		logger:   g.logger,
		cmds:     make(chan func(*Game)),
		stopChan: make(chan struct{}),
		done:     make(chan struct{}),
	}
}

// SetInterval changes the tick period. It must be called before Run.
func (r *Runner) SetInterval(d time.Duration) {
	if d > 0 {
		r.interval = d
	}
}

// Run ticks the game until ctx is cancelled or Stop is called. Call it once.
func (r *Runner) Run(ctx context.Context) {
	defer close(r.done)
	r.logger.Info("simulation runner started", "interval", r.interval)

	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			r.logger.Info("simulation runner stopped by context", "ticks", r.game.Ticks())
			return
		case <-r.stopChan:
			r.logger.Info("simulation runner stopped", "ticks", r.game.Ticks())
			return
		case fn := <-r.cmds:
			fn(r.game)
		case <-ticker.C:
			r.game.Update()
		}
	}
}

// Stop ends Run. It is safe to call once.
func (r *Runner) Stop() {
	close(r.stopChan)
}

// Done is closed when Run returns.
func (r *Runner) Done() <-chan struct{} {
	return r.done
}

// Do runs fn on the owner goroutine between ticks and waits for it.
func (r *Runner) Do(ctx context.Context, fn func(*Game)) error {
	finished := make(chan struct{})
	cmd := func(g *Game) {
		defer close(finished)
		fn(g)
	}
	select {
	case r.cmds <- cmd:
	case <-r.done:
		return ErrRunnerStopped
	case <-ctx.Done():
		return ctx.Err()
	}
	// Once accepted the command always runs to completion.
	<-finished
	return nil
}

// Snapshot copies the game state on the owner goroutine.
func (r *Runner) Snapshot(ctx context.Context) (Snapshot, error) {
	var s Snapshot
	err := r.Do(ctx, func(g *Game) { s = g.Snapshot() })
	return s, err
}
