// internal/ui/button.go
package ui

import (
	"image"
	"image/color"

	"go-ant-colony/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

// Button is a clickable rectangle with a centred label.
type Button struct {
	Rect       image.Rectangle
	Label      string
	TextColor  color.RGBA
	BgColor    color.RGBA
	HoverColor color.RGBA
	OnClick    func()
}

func NewButton(rect image.Rectangle, label string, bg, hover, fg color.RGBA, onClick func()) *Button {
	return &Button{
		Rect:       rect,
		Label:      label,
		TextColor:  fg,
		BgColor:    bg,
		HoverColor: hover,
		OnClick:    onClick,
	}
}

// Contains reports whether the point is inside the button.
func (b *Button) Contains(x, y int) bool {
	return image.Pt(x, y).In(b.Rect)
}

// Click runs OnClick if (x, y) hits the button.
func (b *Button) Click(x, y int) bool {
	if !b.Contains(x, y) || b.OnClick == nil {
		return false
	}
	b.OnClick()
	return true
}

func (b *Button) Draw(screen *ebiten.Image, face font.Face, mouseX, mouseY int) {
	bg := b.BgColor
	if b.Contains(mouseX, mouseY) {
		bg = b.HoverColor
	}
	x, y := float32(b.Rect.Min.X), float32(b.Rect.Min.Y)
	w, h := float32(b.Rect.Dx()), float32(b.Rect.Dy())
	vector.DrawFilledRect(screen, x, y, w, h, bg, false)
	vector.StrokeRect(screen, x, y, w, h, 1, render.DarkenColor(bg), false)

	bounds := text.BoundString(face, b.Label)
	tx := b.Rect.Min.X + (b.Rect.Dx()-bounds.Dx())/2
	ty := b.Rect.Min.Y + (b.Rect.Dy()+bounds.Dy())/2
	text.Draw(screen, b.Label, face, tx, ty, b.TextColor)
}

// ButtonColumn stacks buttons vertically from (x, y).
type ButtonColumn struct {
	X, Y, Width, Height, Gap int
	Buttons                  []*Button
}

// Add appends a button below the previous one and returns it.
func (c *ButtonColumn) Add(label string, bg, hover, fg color.RGBA, onClick func()) *Button {
	top := c.Y + len(c.Buttons)*(c.Height+c.Gap)
	b := NewButton(image.Rect(c.X, top, c.X+c.Width, top+c.Height), label, bg, hover, fg, onClick)
	c.Buttons = append(c.Buttons, b)
	return b
}

// Bottom is the y just below the last button.
func (c *ButtonColumn) Bottom() int {
	return c.Y + len(c.Buttons)*(c.Height+c.Gap)
}

// Click dispatches a click to the first button hit.
func (c *ButtonColumn) Click(x, y int) bool {
	for _, b := range c.Buttons {
		if b.Click(x, y) {
			return true
		}
	}
	return false
}

func (c *ButtonColumn) Draw(screen *ebiten.Image, face font.Face, mouseX, mouseY int) {
	for _, b := range c.Buttons {
		b.Draw(screen, face, mouseX, mouseY)
	}
}
