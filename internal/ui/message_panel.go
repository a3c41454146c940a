// internal/ui/message_panel.go
package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"
)

// MessagePanel shows the newest messages, newest at the bottom.
type MessagePanel struct {
	X, Y, Width, Lines int
	fontFace           font.Face
	fg                 color.RGBA
}

func NewMessagePanel(x, y, width, lines int, face font.Face, fg color.RGBA) *MessagePanel {
	return &MessagePanel{X: x, Y: y, Width: width, Lines: lines, fontFace: face, fg: fg}
}

// Visible returns the tail of msgs that fits, each clipped to the width.
func (p *MessagePanel) Visible(msgs []string) []string {
	if len(msgs) > p.Lines {
		msgs = msgs[len(msgs)-p.Lines:]
	}
	out := make([]string, len(msgs))
	for i, m := range msgs {
		out[i] = p.clip(m)
	}
	return out
}

func (p *MessagePanel) clip(s string) string {
	r := []rune(s)
	for len(r) > 0 && text.BoundString(p.fontFace, string(r)).Dx() > p.Width-8 {
		r = r[:len(r)-1]
	}
	return string(r)
}

func (p *MessagePanel) Draw(screen *ebiten.Image, msgs []string) {
	for i, m := range p.Visible(msgs) {
		text.Draw(screen, m, p.fontFace, p.X+4, p.Y+lineHeight*(i+1), p.fg)
	}
}
