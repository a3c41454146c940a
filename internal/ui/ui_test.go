package ui

import (
	"image"
	"image/color"
	"strings"
	"testing"

	"golang.org/x/image/font/basicfont"
)

func TestButtonColumn_LayoutAndClick(t *testing.T) {
	col := &ButtonColumn{X: 10, Y: 20, Width: 100, Height: 24, Gap: 4}
	var clicked string
	col.Add("Dig", color.RGBA{}, color.RGBA{}, color.RGBA{}, func() { clicked = "dig" })
	col.Add("Gather", color.RGBA{}, color.RGBA{}, color.RGBA{}, func() { clicked = "gather" })

	if got := col.Buttons[1].Rect; got != image.Rect(10, 48, 110, 72) {
		t.Fatalf("second button rect = %v", got)
	}
	if col.Bottom() != 76 {
		t.Fatalf("Bottom = %d", col.Bottom())
	}
	if !col.Click(50, 60) || clicked != "gather" {
		t.Fatalf("click hit %q", clicked)
	}
	if col.Click(5, 60) {
		t.Fatal("click outside the column hit a button")
	}
}

func TestCodeInput_TypeAndTake(t *testing.T) {
	c := NewCodeInput(image.Rect(0, 0, 100, 20), basicfont.Face7x13, color.RGBA{}, color.RGBA{})
	c.Type([]rune(" pink\n")...)
	c.Type('x')
	c.Backspace()
	if c.Value() != " pink" {
		t.Fatalf("value = %q", c.Value())
	}
	if got := c.Take(); got != "pink" || c.Value() != "" {
		t.Fatalf("Take = %q, left %q", got, c.Value())
	}

	c.Type([]rune(strings.Repeat("a", 40))...)
	if len(c.Value()) != maxCodeLength {
		t.Fatalf("length = %d", len(c.Value()))
	}

	if _, ok := c.Update(); ok {
		t.Fatal("unfocused input submitted")
	}
}

func TestMessagePanel_VisibleTail(t *testing.T) {
	p := NewMessagePanel(0, 0, 120, 2, basicfont.Face7x13, color.RGBA{})
	got := p.Visible([]string{"one", "two", "a message far too long to fit in the panel"})
	if len(got) != 2 || got[0] != "two" {
		t.Fatalf("visible = %q", got)
	}
	if len(got[1]) >= len("a message far too long to fit in the panel") {
		t.Fatal("long message was not clipped")
	}
}
