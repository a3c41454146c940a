// internal/ui/info_panel.go
package ui

import (
	"fmt"
	"image/color"

	"go-ant-colony/internal/app"
	"go-ant-colony/internal/defs"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

const lineHeight = 15

// InfoPanel lists resources, progression and upgrade levels.
type InfoPanel struct {
	X, Y, Width int
	fontFace    font.Face
	bg, fg, hi  color.RGBA
}

func NewInfoPanel(x, y, width int, face font.Face, bg, fg, highlight color.RGBA) *InfoPanel {
	return &InfoPanel{X: x, Y: y, Width: width, fontFace: face, bg: bg, fg: fg, hi: highlight}
}

// Lines builds the panel text for s.
func (p *InfoPanel) Lines(s *app.Snapshot) []string {
	r := s.Resources
	lines := []string{
		fmt.Sprintf("Coins: %d", r.Coins),
		fmt.Sprintf("Food: %d", r.Food),
		fmt.Sprintf("Water: %.1f", r.Water),
		fmt.Sprintf("Dirt: %d", r.Dirt),
		fmt.Sprintf("Ants: %d/%d", r.Ants, s.MaxAnts),
		fmt.Sprintf("Tunnels: %d/%d", s.TunnelsDug, s.MaxTunnels),
		fmt.Sprintf("Level: %d  Kills: %d", s.Level, s.EnemiesKilled),
		fmt.Sprintf("Time: %s", formatGameTime(s.GameTime)),
		"",
	}
	for _, k := range defs.UpgradeKinds {
		lines = append(lines, fmt.Sprintf("%s L%d (%d)", k, s.Upgrades.Level(k), s.UpgradeCosts[k]))
	}
	return lines
}

// Height is the pixel height the panel needs for s.
func (p *InfoPanel) Height(s *app.Snapshot) int {
	return len(p.Lines(s))*lineHeight + 8
}

func (p *InfoPanel) Draw(screen *ebiten.Image, s *app.Snapshot) {
	lines := p.Lines(s)
	vector.DrawFilledRect(screen, float32(p.X), float32(p.Y), float32(p.Width), float32(len(lines)*lineHeight+8), p.bg, false)
	for i, line := range lines {
		c := p.fg
		if i == 0 {
			c = p.hi
		}
		text.Draw(screen, line, p.fontFace, p.X+6, p.Y+lineHeight*(i+1), c)
	}
}

func formatGameTime(sec float64) string {
	total := int(sec)
	return fmt.Sprintf("%02d:%02d:%02d", total/3600, total/60%60, total%60)
}
