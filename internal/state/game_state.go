// internal/state/game_state.go
package state

import (
	"image"

	"go-ant-colony/internal/app"
	"go-ant-colony/internal/config"
	"go-ant-colony/internal/interfaces"
	"go-ant-colony/internal/ui"
	"go-ant-colony/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

const (
	// maxCatchUpTicks bounds how many ticks one frame may run after a stall.
	maxCatchUpTicks = 5

	panelMargin   = 6
	buttonHeight  = 18
	buttonGap     = 3
	messageLines  = 6
	keyRepeatWait = 20
	keyRepeatStep = 3
)

// GameState runs the simulation at a fixed 60 Hz step and maps mouse and
// keyboard input onto game actions.
type GameState struct {
	sm        *StateMachine
	game      interfaces.Game
	renderer  *render.ArenaRenderer
	infoPanel *ui.InfoPanel
	messages  *ui.MessagePanel
	actions   *ui.ButtonColumn
	codeInput *ui.CodeInput
	redeem    *ui.Button
	particles *ui.Button
	autoSave  *ui.Button
	fontFace  font.Face

	particlesOn bool
	autoSaveOn  bool
	accumulator float64
	snapshot    app.Snapshot
}

func NewGameState(sm *StateMachine, game interfaces.Game, face font.Face) *GameState {
	g := &GameState{
		sm:       sm,
		game:     game,
		fontFace: face,
		renderer: render.NewArenaRenderer(int(config.ArenaWidth), int(config.ArenaHeight), render.ArenaColors{
			BackgroundColor: config.BackgroundColor,
			DirtColor:       config.DirtColor,
			TunnelColor:     config.TunnelColor,
			HealthBarBg:     config.HealthBarBg,
			HealthBarFg:     config.HealthBarFg,
			AccentColor:     config.AccentColor,
		}),
	}
	g.snapshot = game.Snapshot()

	panelX := int(config.ArenaWidth) + panelMargin
	panelW := int(config.PanelWidth) - 2*panelMargin
	g.infoPanel = ui.NewInfoPanel(panelX, panelMargin, panelW, face, config.PanelColor, config.TextLightColor, config.CoinColor)

	g.actions = &ui.ButtonColumn{
		X: panelX, Y: panelMargin + g.infoPanel.Height(&g.snapshot) + panelMargin,
		Width: panelW, Height: buttonHeight, Gap: buttonGap,
	}
	add := func(label string, fn func()) *ui.Button {
		return g.actions.Add(label, config.ButtonColor, config.ButtonHover, config.TextLightColor, fn)
	}
	add("Dig Tunnel (10 dirt)", func() { game.DigTunnel() })
	add("Gather Food", func() { game.GatherFood() })
	add("Gather Water", func() { game.GatherWater() })
	add("Spawn Ant (10 food)", func() { game.SpawnAnt() })
	add("Buy Upgrades", func() { game.PurchaseAffordableUpgrades() })
	add("Pause", g.pause)
	add("Save", func() { game.Save() })
	add("Load", func() { game.Load() })
	add("Reset", func() { game.Reset() })
	g.particles = add("Particles: on", g.toggleParticles)
	g.autoSave = add("Auto-save: on", g.toggleAutoSave)

	top := g.actions.Bottom() + panelMargin
	redeemW := 54
	g.codeInput = ui.NewCodeInput(image.Rect(panelX, top, panelX+panelW-redeemW-buttonGap, top+buttonHeight),
		face, config.PanelColor, config.TextLightColor)
	g.redeem = ui.NewButton(image.Rect(panelX+panelW-redeemW, top, panelX+panelW, top+buttonHeight),
		"Redeem", config.ButtonColor, config.ButtonHover, config.AccentColor, g.submitCode)

	g.SyncToggles(game.Settings().ParticlesEnabled, game.Settings().AutoSave)

	g.messages = ui.NewMessagePanel(0, int(config.ArenaHeight)-messageLines*15-8, int(config.ArenaWidth)*2/3,
		messageLines, face, config.TextLightColor)
	return g
}

func (g *GameState) Enter() {}

func (g *GameState) Update(deltaTime float64) {
	if code, ok := g.codeInput.Update(); ok {
		g.game.RedeemCode(code)
	}
	if !g.codeInput.Focused {
		if g.handleKeys() {
			return
		}
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		if g.handleClick(ebiten.CursorPosition()) {
			return
		}
	}

	g.accumulator += deltaTime
	steps := 0
	for g.accumulator >= config.TickDuration && steps < maxCatchUpTicks {
		g.game.Update()
		g.accumulator -= config.TickDuration
		steps++
	}
	if steps == maxCatchUpTicks {
		g.accumulator = 0
	}
	g.snapshot = g.game.Snapshot()
}

// handleKeys reports whether the state changed.
func (g *GameState) handleKeys() bool {
	if inpututil.IsKeyJustPressed(ebiten.KeyP) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.pause()
		return true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.game.GatherFood()
	}
	nudges := []struct {
		keys   []ebiten.Key
		dx, dy int
	}{
		{[]ebiten.Key{ebiten.KeyArrowUp, ebiten.KeyW}, 0, -1},
		{[]ebiten.Key{ebiten.KeyArrowDown, ebiten.KeyS}, 0, 1},
		{[]ebiten.Key{ebiten.KeyArrowLeft, ebiten.KeyA}, -1, 0},
		{[]ebiten.Key{ebiten.KeyArrowRight, ebiten.KeyD}, 1, 0},
	}
	for _, n := range nudges {
		for _, k := range n.keys {
			if repeating(k) {
				g.game.NudgeLeadAnt(n.dx, n.dy)
				break
			}
		}
	}
	return false
}

// repeating mimics keyboard auto-repeat: once on press, then every few
// frames while held.
func repeating(k ebiten.Key) bool {
	d := inpututil.KeyPressDuration(k)
	return d == 1 || (d >= keyRepeatWait && (d-keyRepeatWait)%keyRepeatStep == 0)
}

// handleClick reports whether the state changed.
func (g *GameState) handleClick(x, y int) bool {
	g.codeInput.Focused = g.codeInput.Contains(x, y)
	if g.codeInput.Focused {
		return false
	}
	if float64(x) < config.ArenaWidth && float64(y) < config.ArenaHeight {
		g.game.Click(float64(x), float64(y))
		return false
	}
	if g.redeem.Click(x, y) {
		return false
	}
	before := g.sm.Current()
	g.actions.Click(x, y)
	return g.sm.Current() != before
}

func (g *GameState) pause() {
	g.sm.SetState(NewPauseState(g.sm, g, g.game, g.fontFace))
}

func (g *GameState) submitCode() {
	if code := g.codeInput.Take(); code != "" {
		g.game.RedeemCode(code)
	}
	g.codeInput.Focused = false
}

func (g *GameState) toggleParticles() {
	g.particlesOn = !g.particlesOn
	g.game.SetParticlesEnabled(g.particlesOn)
	g.particles.Label = onOff("Particles", g.particlesOn)
}

func (g *GameState) toggleAutoSave() {
	g.autoSaveOn = !g.autoSaveOn
	g.game.SetAutoSave(g.autoSaveOn)
	g.autoSave.Label = onOff("Auto-save", g.autoSaveOn)
}

func onOff(name string, on bool) string {
	if on {
		return name + ": on"
	}
	return name + ": off"
}

// SyncToggles aligns the toggle buttons with the session settings.
func (g *GameState) SyncToggles(particles, autoSave bool) {
	g.particlesOn, g.autoSaveOn = particles, autoSave
	g.particles.Label = onOff("Particles", particles)
	g.autoSave.Label = onOff("Auto-save", autoSave)
}

func (g *GameState) Draw(screen *ebiten.Image) {
	screen.Fill(config.PanelColor)
	g.renderer.Draw(screen, &g.snapshot)

	vector.DrawFilledRect(screen, float32(config.ArenaWidth), 0, config.PanelWidth, config.ScreenHeight, config.BackgroundColor, false)
	g.infoPanel.Draw(screen, &g.snapshot)
	mx, my := ebiten.CursorPosition()
	g.actions.Draw(screen, g.fontFace, mx, my)
	g.codeInput.Draw(screen)
	g.redeem.Draw(screen, g.fontFace, mx, my)
	g.messages.Draw(screen, g.snapshot.Messages)
}

func (g *GameState) Exit() {}
