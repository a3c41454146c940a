// internal/state/pause_state.go
package state

import (
	"go-ant-colony/internal/config"
	"go-ant-colony/internal/interfaces"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

var _ State = (*PauseState)(nil)

// PauseState freezes the simulation and draws the previous state under a
// dimmed overlay.
type PauseState struct {
	stateMachine  *StateMachine
	previousState State
	game          interfaces.Game
	fontFace      font.Face
}

func NewPauseState(sm *StateMachine, prevState State, game interfaces.Game, face font.Face) *PauseState {
	return &PauseState{
		stateMachine:  sm,
		previousState: prevState,
		game:          game,
		fontFace:      face,
	}
}

func (s *PauseState) Enter() {
	if !s.game.IsPaused() {
		s.game.TogglePause()
	}
}

func (s *PauseState) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeyP) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) ||
		inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		s.stateMachine.SetState(s.previousState)
	}
}

func (s *PauseState) Draw(screen *ebiten.Image) {
	if s.previousState != nil {
		s.previousState.Draw(screen)
	}
	vector.DrawFilledRect(screen, 0, 0, config.ScreenWidth, config.ScreenHeight, config.PauseOverlay, false)
	drawCentered(screen, s.fontFace, "PAUSED", config.ScreenHeight/2, config.TextLightColor)
	drawCentered(screen, s.fontFace, "P / Esc / click to resume", config.ScreenHeight/2+20, config.TextLightColor)
}

func (s *PauseState) Exit() {
	if s.game.IsPaused() {
		s.game.TogglePause()
	}
}
