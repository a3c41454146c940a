// internal/assets/fonts.go
package assets

import (
	"fmt"
	"os"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/opentype"
)

// LoadFontFace loads a TTF/OTF face at size. An empty path gives the built-in
// 7x13 bitmap face.
func LoadFontFace(path string, size float64) (font.Face, error) {
	if path == "" {
		return basicfont.Face7x13, nil
	}
	fontData, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read font file: %w", err)
	}
	tt, err := opentype.Parse(fontData)
	if err != nil {
		return nil, fmt.Errorf("failed to parse font: %w", err)
	}
	face, err := opentype.NewFace(tt, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create font face: %w", err)
	}
	return face, nil
}

// FontFaceOrDefault is LoadFontFace that falls back to the bitmap face.
func FontFaceOrDefault(path string, size float64) (font.Face, error) {
	face, err := LoadFontFace(path, size)
	if err != nil {
		return basicfont.Face7x13, err
	}
	return face, nil
}
