package render

import (
	"fmt"
	"image/color"

	"BezierBoard/internal/geom"
)

// Style selects colors and sizes for a rendered board.
type Style struct {
	MarkerRadius  float64
	MarkerColor   color.NRGBA
	PolygonColor  color.NRGBA
	PolygonWidth  float64
	CurveColor    color.NRGBA
	SelectedColor color.NRGBA
	CurveWidth    float64
	SampleStep    float64
}

// DefaultStyle returns the board's stock look.
func DefaultStyle() Style {
	return Style{
		MarkerRadius:  4,
		MarkerColor:   color.NRGBA{R: 0xd6, G: 0x18, B: 0x18, A: 0xff},
		PolygonColor:  color.NRGBA{R: 0xae, G: 0xb5, B: 0xbf, A: 0xff},
		PolygonWidth:  1,
		CurveColor:    color.NRGBA{R: 0x20, G: 0x56, B: 0xe8, A: 0xff},
		SelectedColor: color.NRGBA{R: 0xdb, G: 0x90, B: 0xde, A: 0xff},
		CurveWidth:    1,
		SampleStep:    geom.SampleStep,
	}
}

// ParseColor parses "#rrggbb" or "#rrggbbaa".
func ParseColor(s string) (color.NRGBA, error) {
	c := color.NRGBA{A: 0xff}
	var err error
	switch len(s) {
	case 7:
		_, err = fmt.Sscanf(s, "#%02x%02x%02x", &c.R, &c.G, &c.B)
	case 9:
		_, err = fmt.Sscanf(s, "#%02x%02x%02x%02x", &c.R, &c.G, &c.B, &c.A)
	default:
		err = fmt.Errorf("invalid color %q: want #rrggbb", s)
	}
	return c, err
}

// Hex formats c as "#rrggbb", ignoring alpha.
func Hex(c color.Color) string {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return fmt.Sprintf("#%02x%02x%02x", n.R, n.G, n.B)
}
