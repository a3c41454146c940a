// internal/state/menu_state.go
package state

import (
	"image/color"

	"go-ant-colony/internal/config"
	"go-ant-colony/internal/interfaces"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"
)

// MenuState is the title screen. Space or a click starts the game; the
// saved game, if any, is loaded on the way in.
type MenuState struct {
	sm       *StateMachine
	game     interfaces.Game
	fontFace font.Face
}

func NewMenuState(sm *StateMachine, game interfaces.Game, face font.Face) *MenuState {
	return &MenuState{sm: sm, game: game, fontFace: face}
}

func (m *MenuState) Enter() {}

func (m *MenuState) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) || inpututil.IsKeyJustPressed(ebiten.KeyEnter) ||
		inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		m.game.Load()
		m.sm.SetState(NewGameState(m.sm, m.game, m.fontFace))
	}
}

func (m *MenuState) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)
	drawCentered(screen, m.fontFace, "ANT COLONY SIMULATOR", config.ScreenHeight/2-20, config.AccentColor)
	drawCentered(screen, m.fontFace, "Press Space to start", config.ScreenHeight/2+10, config.TextLightColor)
}

func (m *MenuState) Exit() {}

func drawCentered(screen *ebiten.Image, face font.Face, s string, y int, c color.Color) {
	w := text.BoundString(face, s).Dx()
	text.Draw(screen, s, face, (config.ScreenWidth-w)/2, y, c)
}
