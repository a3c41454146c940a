// internal/app/game.go
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"time"

	"go-ant-colony/internal/component"
	"go-ant-colony/internal/config"
	"go-ant-colony/internal/defs"
	"go-ant-colony/internal/entity"
	"go-ant-colony/internal/event"
	"go-ant-colony/internal/save"
	"go-ant-colony/internal/system"
	"go-ant-colony/internal/utils"
)

// ActionResult reports whether an input action went through and the message
// shown to the player.
type ActionResult struct {
	OK      bool
	Message string
}

// Game is the simulation clock. It owns the world and runs every system
// exactly once per tick in a fixed order. It is not safe for concurrent use;
// see Runner.
type Game struct {
	World             *entity.World
	EventDispatcher   *event.Dispatcher
	AntSystem         *system.AntSystem
	MetabolismSystem  *system.MetabolismSystem
	EnemySystem       *system.EnemySystem
	ParticleSystem    *system.ParticleSystem
	CombatSystem      *system.CombatSystem
	DehydrationSystem *system.DehydrationSystem
	ProgressionSystem *system.ProgressionSystem
	UpgradeSystem     *system.UpgradeSystem

	settings       config.Settings
	store          save.Store
	logger         *slog.Logger
	messages       *MessageLog
	paused         bool
	ticks          uint64
	lastAutoSave   int
	saveTimeout    time.Duration
	lastSaveFailed bool
}

// Option configures a Game.
type Option func(*gameOptions)

type gameOptions struct {
	random   utils.RandomSource
	settings config.Settings
	store    save.Store
	logger   *slog.Logger
}

// WithRandom injects the random source. The default is a PRNGService seeded
// from Settings.Seed.
func WithRandom(r utils.RandomSource) Option {
	return func(o *gameOptions) { o.random = r }
}

func WithSettings(s config.Settings) Option {
	return func(o *gameOptions) { o.settings = s }
}

// WithStore sets where saves go. Without one, Save and Load are declined.
func WithStore(s save.Store) Option {
	return func(o *gameOptions) { o.store = s }
}

func WithLogger(l *slog.Logger) Option {
	return func(o *gameOptions) { o.logger = l }
}

// NewGame initializes a new game instance.
func NewGame(opts ...Option) *Game {
	o := gameOptions{settings: config.DefaultSettings()}
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger == nil {
		o.logger = slog.Default()
	}
	if o.random == nil {
		prng := utils.NewPRNGService(o.settings.Seed)
		o.logger.Debug("seeded random source", "seed", prng.Seed())
		o.random = prng
	}

	world := entity.NewWorld(o.random)
	world.ParticlesEnabled = o.settings.ParticlesEnabled
	eventDispatcher := event.NewDispatcher()

	g := &Game{
		World:             world,
		EventDispatcher:   eventDispatcher,
		AntSystem:         system.NewAntSystem(world),
		MetabolismSystem:  system.NewMetabolismSystem(world),
		EnemySystem:       system.NewEnemySystem(world),
		ParticleSystem:    system.NewParticleSystem(world),
		CombatSystem:      system.NewCombatSystem(world, eventDispatcher),
		DehydrationSystem: system.NewDehydrationSystem(world, eventDispatcher),
		ProgressionSystem: system.NewProgressionSystem(world, eventDispatcher),
		UpgradeSystem:     system.NewUpgradeSystem(world, eventDispatcher),
		settings:          o.settings,
		store:             o.store,
		logger:            o.logger,
		messages:          NewMessageLog(config.MessageLogSize),
		saveTimeout:       5 * time.Second,
	}

	listener := &GameEventListener{game: g}
	eventDispatcher.Subscribe(event.Message, listener)
	eventDispatcher.Subscribe(event.LevelUp, listener)
	eventDispatcher.Subscribe(event.AchievementUnlocked, listener)
	eventDispatcher.Subscribe(event.AntDied, listener)

	g.say("Welcome to Ant Colony Simulator! Start by digging tunnels and gathering food.")
	return g
}

// GameEventListener mirrors simulation events into the message log and slog.
type GameEventListener struct {
	game *Game
}

func (l *GameEventListener) OnEvent(e event.Event) {
	switch e.Type {
	case event.Message:
		if text, ok := e.Data.(string); ok {
			l.game.messages.Add(text)
			l.game.logger.Debug("message", "text", text)
		}
	case event.LevelUp:
		l.game.logger.Info("level up", "level", e.Data)
	case event.AchievementUnlocked:
		if a, ok := e.Data.(defs.AchievementDefinition); ok {
			l.game.logger.Info("achievement unlocked", "id", a.ID, "bonus", a.Bonus)
		}
	case event.AntDied:
		if a, ok := e.Data.(*component.Ant); ok {
			l.game.logger.Debug("ant died", "id", a.ID, "rarity", a.Rarity)
		}
	}
}

// Update advances the simulation by one tick. A paused game does nothing.
func (g *Game) Update() {
	if g.paused {
		return
	}
	g.ticks++
	g.World.Progress.GameTime += config.TickDuration

	g.AntSystem.Update()
	g.MetabolismSystem.Update()
	g.EnemySystem.Update()
	g.ParticleSystem.Update()
	g.CombatSystem.Update()
	g.DehydrationSystem.Update()
	g.ProgressionSystem.Update()
	g.autoSave()
}

// autoSave fires once per in-game minute, on the tick where the whole-second
// game time first lands on a multiple of 60.
func (g *Game) autoSave() {
	if !g.settings.AutoSave || g.store == nil {
		return
	}
	sec := int(math.Floor(g.World.Progress.GameTime))
	if sec%config.AutoSaveEverySec != 0 || sec == g.lastAutoSave {
		return
	}
	g.lastAutoSave = sec
	if err := g.persist(); err != nil {
		if !g.lastSaveFailed {
			g.logger.Warn("auto-save failed", "err", err)
		}
		g.lastSaveFailed = true
		return
	}
	g.lastSaveFailed = false
	g.logger.Debug("auto-saved", "game_time", sec)
}

// Ticks is the number of unpaused ticks run so far.
func (g *Game) Ticks() uint64 { return g.ticks }

func (g *Game) IsPaused() bool { return g.paused }

// Settings returns the session settings.
func (g *Game) Settings() config.Settings { return g.settings }

// Messages returns the player message log, oldest first.
func (g *Game) Messages() []string { return g.messages.Messages() }

func (g *Game) say(text string) {
	g.EventDispatcher.Message(text)
}

func (g *Game) ok(text string) ActionResult {
	g.say(text)
	return ActionResult{OK: true, Message: text}
}

func (g *Game) declined(text string) ActionResult {
	g.say(text)
	g.logger.Debug("action declined", "reason", text)
	return ActionResult{Message: text}
}

// SetParticlesEnabled toggles particle effects. Existing particles are kept.
func (g *Game) SetParticlesEnabled(on bool) {
	g.settings.ParticlesEnabled = on
	g.World.ParticlesEnabled = on
}

// SetAutoSave toggles the once-a-minute auto-save.
func (g *Game) SetAutoSave(on bool) {
	g.settings.AutoSave = on
}

// Save writes the progression state to the store.
func (g *Game) Save() ActionResult {
	if g.store == nil {
		return g.declined("Saving is not available.")
	}
	if err := g.persist(); err != nil {
		g.logger.Warn("save failed", "err", err)
		return g.declined("Save failed.")
	}
	return g.ok("Game saved!")
}

func (g *Game) persist() error {
	blob, err := save.Encode(g.captureState())
	if err != nil {
		return err
	}
	ctx, cancel := context.WithTimeout(context.Background(), g.saveTimeout)
	defer cancel()
	if err := g.store.Save(ctx, g.settings.SaveSlot, blob); err != nil {
		return fmt.Errorf("failed to store save: %w", err)
	}
	return nil
}

func (g *Game) captureState() save.State {
	w := g.World
	achievements := make(map[string]bool, len(w.Progress.Achievements))
	for id, v := range w.Progress.Achievements {
		achievements[id] = v
	}
	return save.State{
		Resources:        w.Resources,
		Upgrades:         w.Upgrades.Clone(),
		Achievements:     achievements,
		Level:            w.Progress.Level,
		EnemiesKilled:    w.Progress.EnemiesKilled,
		TotalCoinsEarned: w.Progress.TotalCoinsEarned,
		GameTime:         w.Progress.GameTime,
		Timestamp:        time.Now().UnixMilli(),
	}
}

// Load restores progression from the store. A missing save is declined
// quietly; an unreadable one leaves the current state untouched.
func (g *Game) Load() ActionResult {
	if g.store == nil {
		return g.declined("Loading is not available.")
	}
	ctx, cancel := context.WithTimeout(context.Background(), g.saveTimeout)
	defer cancel()
	blob, err := g.store.Load(ctx, g.settings.SaveSlot)
	if errors.Is(err, save.ErrNotFound) {
		return ActionResult{Message: "No saved game found."}
	}
	if err != nil {
		g.logger.Warn("load failed", "err", err)
		return g.declined("Could not load the saved game.")
	}
	st, err := save.Decode(blob)
	if err != nil {
		g.logger.Warn("save is corrupt, keeping current state", "err", err)
		return g.declined("Saved game is corrupt and was not loaded.")
	}
	g.ApplyState(st)
	return g.ok("Game loaded successfully!")
}

// ApplyState replaces progression with st and rebuilds the colony to the
// saved ant count. Enemies, particles and the map start fresh.
func (g *Game) ApplyState(st save.State) {
	w := g.World
	w.Reset()
	w.Resources = st.Resources
	for _, k := range defs.UpgradeKinds {
		w.Upgrades[k] = st.Upgrades.Level(k)
	}
	w.Progress.Level = max(1, st.Level)
	w.Progress.EnemiesKilled = st.EnemiesKilled
	w.Progress.TotalCoinsEarned = st.TotalCoinsEarned
	w.Progress.GameTime = st.GameTime
	for id, v := range st.Achievements {
		if v {
			w.Progress.Achievements[id] = true
		}
	}

	want := max(1, min(st.Resources.Ants, config.MaxLoadedAnts))
	w.RecomputeAnts()
	for w.Colony.Len() < want {
		w.SpawnRolledAnt()
	}
	w.Resources.Ants = w.Colony.Len()
	g.lastAutoSave = int(math.Floor(st.GameTime))
}
