// cmd/headless/run.go
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"slices"
	"strings"
	"time"

	"go-ant-colony/internal/app"
	"go-ant-colony/internal/defs"
	"go-ant-colony/internal/save"
	"go-ant-colony/internal/utils"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

type runOptions struct {
	ticks      int
	seed       int64
	realtime   bool
	enemyDefs  string
	saveDir    string
	codes      []string
	buyAll     bool
	jsonReport bool
}

// Report summarises a headless run.
type Report struct {
	RunID            string   `json:"runId"`
	Seed             int64    `json:"seed"`
	Ticks            uint64   `json:"ticks"`
	GameTime         float64  `json:"gameTime"`
	Level            int      `json:"level"`
	EnemiesKilled    int      `json:"enemiesKilled"`
	EnemiesAlive     int      `json:"enemiesAlive"`
	Coins            int      `json:"coins"`
	TotalCoinsEarned int      `json:"totalCoinsEarned"`
	Food             int      `json:"food"`
	Water            float64  `json:"water"`
	Ants             int      `json:"ants"`
	Achievements     []string `json:"achievements"`
	Elapsed          string   `json:"elapsed"`
}

func newRunCmd() *cobra.Command {
	var o runOptions
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run the simulation for a number of ticks and print a report",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("seed") {
				o.seed = settingsFrom(cmd.Context()).Seed
			}
			return runSimulation(cmd.Context(), cmd.OutOrStdout(), o)
		},
	}
	f := cmd.Flags()
	f.IntVar(&o.ticks, "ticks", 3600, "number of ticks to simulate (60 per in-game second)")
	f.Int64Var(&o.seed, "seed", 0, "random seed; 0 picks one from the clock")
	f.BoolVar(&o.realtime, "realtime", false, "tick at 60 Hz wall-clock instead of as fast as possible")
	f.StringVar(&o.enemyDefs, "enemy-defs", "", "JSON file overriding the enemy stat table")
	f.StringVar(&o.saveDir, "save", "", "directory of a file save store to load from and write back to")
	f.StringSliceVar(&o.codes, "code", nil, "redeem codes applied before the run")
	f.BoolVar(&o.buyAll, "buy-upgrades", false, "buy every affordable upgrade once per in-game second")
	f.BoolVar(&o.jsonReport, "json", false, "print the report as JSON")
	return cmd
}

func runSimulation(ctx context.Context, out io.Writer, o runOptions) error {
	if o.ticks < 0 {
		return fmt.Errorf("ticks must be non-negative, got %d", o.ticks)
	}
	if o.enemyDefs != "" {
		if err := defs.LoadEnemyDefinitions(o.enemyDefs); err != nil {
			return err
		}
		defer defs.ResetEnemyDefinitions()
	}

	settings := settingsFrom(ctx)
	prng := utils.NewPRNGService(o.seed)
	runID := uuid.NewString()
	logger := slog.Default().With("run", runID)

	opts := []app.Option{app.WithRandom(prng), app.WithSettings(settings), app.WithLogger(logger)}
	if o.saveDir != "" {
		opts = append(opts, app.WithStore(save.NewFileStore(o.saveDir)))
	}
	g := app.NewGame(opts...)
	if o.saveDir != "" {
		g.Load()
	} else {
		g.SetAutoSave(false)
	}
	for _, c := range o.codes {
		if res := g.RedeemCode(c); !res.OK {
			logger.Warn("code rejected", "code", c)
		}
	}

	start := time.Now()
	step := func(g *app.Game) {
		g.Update()
		if o.buyAll && g.Ticks()%60 == 0 {
			g.PurchaseAffordableUpgrades()
		}
	}
	var err error
	if o.realtime {
		err = runRealtime(ctx, g, o.ticks, func(g *app.Game) {
			if o.buyAll {
				g.PurchaseAffordableUpgrades()
			}
		})
	} else {
		err = runFast(ctx, g, o.ticks, step)
	}
	if err != nil {
		logger.Warn("run interrupted", "err", err, "ticks", g.Ticks())
	}

	if o.saveDir != "" {
		if res := g.Save(); !res.OK {
			return fmt.Errorf("failed to write save: %s", res.Message)
		}
	}

	report := buildReport(runID, prng.Seed(), g.Snapshot(), time.Since(start))
	if o.jsonReport {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(report)
	}
	printReport(out, report)
	return nil
}

func runFast(ctx context.Context, g *app.Game, ticks int, step func(*app.Game)) error {
	for i := 0; i < ticks; i++ {
		if i%600 == 0 {
			if err := ctx.Err(); err != nil {
				return err
			}
		}
		step(g)
	}
	return nil
}

// runRealtime drives the game through a Runner and stops once enough ticks
// have elapsed. onPoll runs between ticks a few times per second.
func runRealtime(ctx context.Context, g *app.Game, ticks int, onPoll func(*app.Game)) error {
	target := uint64(ticks)
	if g.Ticks() >= target {
		return nil
	}
	r := app.NewRunner(g)
	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()
	go r.Run(runCtx)

	poll := time.NewTicker(50 * time.Millisecond)
	defer poll.Stop()
	for {
		select {
		case <-ctx.Done():
			<-r.Done()
			return ctx.Err()
		case <-poll.C:
			var done bool
			if err := r.Do(runCtx, func(g *app.Game) {
				onPoll(g)
				done = g.Ticks() >= target
			}); err != nil {
				return err
			}
			if done {
				cancel()
				<-r.Done()
				return nil
			}
		}
	}
}

func buildReport(runID string, seed int64, s app.Snapshot, elapsed time.Duration) Report {
	var unlocked []string
	for id, ok := range s.Achievements {
		if ok {
			unlocked = append(unlocked, id)
		}
	}
	slices.Sort(unlocked)
	return Report{
		RunID:            runID,
		Seed:             seed,
		Ticks:            s.Tick,
		GameTime:         s.GameTime,
		Level:            s.Level,
		EnemiesKilled:    s.EnemiesKilled,
		EnemiesAlive:     len(s.Enemies),
		Coins:            s.Resources.Coins,
		TotalCoinsEarned: s.TotalCoinsEarned,
		Food:             s.Resources.Food,
		Water:            s.Resources.Water,
		Ants:             s.Resources.Ants,
		Achievements:     unlocked,
		Elapsed:          elapsed.Round(time.Millisecond).String(),
	}
}

func printReport(w io.Writer, r Report) {
	fmt.Fprintf(w, "run %s (seed %d)\n", r.RunID, r.Seed)
	fmt.Fprintf(w, "  ticks:         %d (%.1fs game time, %s wall)\n", r.Ticks, r.GameTime, r.Elapsed)
	fmt.Fprintf(w, "  level:         %d\n", r.Level)
	fmt.Fprintf(w, "  kills:         %d (%d enemies alive)\n", r.EnemiesKilled, r.EnemiesAlive)
	fmt.Fprintf(w, "  coins:         %d (%d earned from kills)\n", r.Coins, r.TotalCoinsEarned)
	fmt.Fprintf(w, "  food / water:  %d / %.1f\n", r.Food, r.Water)
	fmt.Fprintf(w, "  ants:          %d\n", r.Ants)
	achievements := "none"
	if len(r.Achievements) > 0 {
		achievements = strings.Join(r.Achievements, ", ")
	}
	fmt.Fprintf(w, "  achievements:  %s\n", achievements)
}
