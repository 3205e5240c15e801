// pkg/render/color.go
package render

import "image/color"

// ArenaColors holds the colors of the static arena background.
type ArenaColors struct {
	BackgroundColor color.RGBA
	GridColor       color.RGBA
	BoundaryColor   color.RGBA
	TrackColor      color.RGBA
	StrokeWidth     float32
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

// Fade scales the alpha of c by opacity in 0..1.
func Fade(c color.RGBA, opacity float64) color.RGBA {
	if opacity < 0 {
		opacity = 0
	} else if opacity > 1 {
		opacity = 1
	}
	// premultiplied alpha
	return color.RGBA{
		R: uint8(float64(c.R) * opacity),
		G: uint8(float64(c.G) * opacity),
		B: uint8(float64(c.B) * opacity),
		A: uint8(float64(c.A) * opacity),
	}
}
