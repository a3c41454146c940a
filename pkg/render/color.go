// pkg/render/color.go
package render

import "image/color"

// ArenaColors holds the palette for the static arena background.
type ArenaColors struct {
	BackgroundColor color.RGBA
	DirtColor       color.RGBA
	TunnelColor     color.RGBA
	HealthBarBg     color.RGBA
	HealthBarFg     color.RGBA
	AccentColor     color.RGBA
}

// DarkenColor reduces the brightness of a color.
func DarkenColor(c color.RGBA) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * 0.5),
		G: uint8(float64(c.G) * 0.5),
		B: uint8(float64(c.B) * 0.5),
		A: c.A,
	}
}

// WithAlpha scales the alpha channel by a in [0, 1]. Channels stay
// premultiplied.
func WithAlpha(c color.RGBA, a float64) color.RGBA {
	a = max(0, min(1, a))
	return color.RGBA{
		R: uint8(float64(c.R) * a),
		G: uint8(float64(c.G) * a),
		B: uint8(float64(c.B) * a),
		A: uint8(float64(c.A) * a),
	}
}
