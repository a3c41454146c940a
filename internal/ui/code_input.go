// internal/ui/code_input.go
package ui

import (
	"image"
	"image/color"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

const maxCodeLength = 24

// CodeInput is a one-line text field for redeem codes. It only takes
// keyboard input while focused.
type CodeInput struct {
	Rect     image.Rectangle
	Focused  bool
	value    []rune
	fontFace font.Face
	bg, fg   color.RGBA
	runes    []rune
}

func NewCodeInput(rect image.Rectangle, face font.Face, bg, fg color.RGBA) *CodeInput {
	return &CodeInput{Rect: rect, fontFace: face, bg: bg, fg: fg}
}

func (c *CodeInput) Value() string { return string(c.value) }

// Type appends printable runes up to the length limit.
func (c *CodeInput) Type(rs ...rune) {
	for _, r := range rs {
		if r < 0x20 || r == 0x7f || len(c.value) >= maxCodeLength {
			continue
		}
		c.value = append(c.value, r)
	}
}

func (c *CodeInput) Backspace() {
	if len(c.value) > 0 {
		c.value = c.value[:len(c.value)-1]
	}
}

// Take returns the trimmed value and clears the field.
func (c *CodeInput) Take() string {
	v := strings.TrimSpace(string(c.value))
	c.value = c.value[:0]
	return v
}

// Update reads keyboard input while focused. It returns the submitted code
// when Enter is pressed.
func (c *CodeInput) Update() (string, bool) {
	if !c.Focused {
		return "", false
	}
	c.runes = ebiten.AppendInputChars(c.runes[:0])
	c.Type(c.runes...)
	if inpututil.IsKeyJustPressed(ebiten.KeyBackspace) {
		c.Backspace()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		c.Focused = false
		return "", false
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeyNumpadEnter) {
		return c.Take(), true
	}
	return "", false
}

func (c *CodeInput) Contains(x, y int) bool {
	return image.Pt(x, y).In(c.Rect)
}

func (c *CodeInput) Draw(screen *ebiten.Image) {
	x, y := float32(c.Rect.Min.X), float32(c.Rect.Min.Y)
	w, h := float32(c.Rect.Dx()), float32(c.Rect.Dy())
	vector.DrawFilledRect(screen, x, y, w, h, c.bg, false)
	border := c.fg
	if !c.Focused {
		border.A /= 2
	}
	vector.StrokeRect(screen, x, y, w, h, 1, border, false)

	label := string(c.value)
	if c.Focused {
		label += "_"
	} else if label == "" {
		label = "code..."
	}
	text.Draw(screen, label, c.fontFace, c.Rect.Min.X+4, c.Rect.Min.Y+c.Rect.Dy()/2+4, c.fg)
}
