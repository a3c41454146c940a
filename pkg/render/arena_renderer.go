// pkg/render/arena_renderer.go
package render

import (
	"slices"

	"go-ant-colony/internal/app"
	"go-ant-colony/internal/component"
	"go-ant-colony/internal/defs"
	"go-ant-colony/pkg/tunnelmap"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const (
	barWidth     = 20
	barHeight    = 3
	antBarOffset = 10
	enemyBarOff  = 15
)

// ArenaRenderer draws the arena from a snapshot. The dirt grid is cached in
// an offscreen image and redrawn only when a tunnel is dug.
type ArenaRenderer struct {
	width, height int
	colors        ArenaColors
	mapImage      *ebiten.Image
	lastGrid      []tunnelmap.Cell
}

func NewArenaRenderer(width, height int, colors ArenaColors) *ArenaRenderer {
	return &ArenaRenderer{
		width:    width,
		height:   height,
		colors:   colors,
		mapImage: ebiten.NewImage(width, height),
	}
}

// RenderMapImage redraws the cached grid.
func (r *ArenaRenderer) RenderMapImage(s *app.Snapshot) {
	r.mapImage.Fill(r.colors.BackgroundColor)
	cs := float32(s.CellSize)
	for gy := 0; gy < s.GridHeight; gy++ {
		for gx := 0; gx < s.GridWidth; gx++ {
			c := r.colors.TunnelColor
			if s.Grid[gy*s.GridWidth+gx] == tunnelmap.Dirt {
				c = r.colors.DirtColor
			}
			vector.DrawFilledRect(r.mapImage, float32(gx)*cs, float32(gy)*cs, cs, cs, c, false)
		}
	}
	r.lastGrid = slices.Clone(s.Grid)
}

// Draw paints the grid, particles, enemies and ants, in that order.
func (r *ArenaRenderer) Draw(screen *ebiten.Image, s *app.Snapshot) {
	if !slices.Equal(r.lastGrid, s.Grid) {
		r.RenderMapImage(s)
	}
	screen.DrawImage(r.mapImage, nil)

	for _, p := range s.Particles {
		vector.DrawFilledCircle(screen, float32(p.X), float32(p.Y), float32(p.Size), WithAlpha(p.Color, p.Alpha), true)
	}
	for _, e := range s.Enemies {
		vector.DrawFilledCircle(screen, float32(e.X), float32(e.Y), float32(e.Radius), e.Color, true)
		r.drawHealthBar(screen, e.X, e.Y-enemyBarOff, e.HealthRatio)
	}
	for _, a := range s.Ants {
		r.drawAnt(screen, a)
	}
}

func (r *ArenaRenderer) drawAnt(screen *ebiten.Image, a app.AntView) {
	if a.Invisible {
		return
	}
	x, y, rad := float32(a.X), float32(a.Y), float32(a.Radius)
	// Glow for anything above common, brighter for shiny ants.
	if a.Rarity != defs.Common {
		vector.DrawFilledCircle(screen, x, y, rad*2, WithAlpha(a.Color, 0.25), true)
	}
	if a.Shiny {
		vector.DrawFilledCircle(screen, x, y, rad*3, WithAlpha(a.Color, 0.2), true)
	}
	vector.DrawFilledCircle(screen, x, y, rad, a.Color, true)
	switch a.Tunnel {
	case component.TunnelStopped:
		vector.StrokeCircle(screen, x, y, rad+2, 1, r.colors.TunnelColor, true)
	case component.TunnelBuffed:
		vector.StrokeCircle(screen, x, y, rad+2, 1, r.colors.AccentColor, true)
	}
	r.drawHealthBar(screen, a.X, a.Y-antBarOffset, a.HealthRatio)
}

func (r *ArenaRenderer) drawHealthBar(screen *ebiten.Image, cx, top, ratio float64) {
	x := float32(cx) - barWidth/2
	vector.DrawFilledRect(screen, x, float32(top), barWidth, barHeight, r.colors.HealthBarBg, false)
	if ratio > 0 {
		vector.DrawFilledRect(screen, x, float32(top), barWidth*float32(min(1, ratio)), barHeight, r.colors.HealthBarFg, false)
	}
}
