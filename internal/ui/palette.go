package ui

import (
	"github.com/gdamore/tcell/v2"
	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/diegok/remotepong/internal/session"
)

// Swatch is one entry of the color chooser.
type Swatch struct {
	Name  string
	Color tcell.Color
}

// Palette lists the colors the sprites can take, in chooser order.
var Palette = []Swatch{
	{"red", tcell.ColorRed},
	{"blue", tcell.ColorBlue},
	{"green", tcell.ColorGreen},
	{"yellow", tcell.ColorYellow},
	{"purple", tcell.ColorPurple},
	{"orange", tcell.ColorOrange},
	{"teal", tcell.ColorTeal},
	{"fuchsia", tcell.ColorFuchsia},
	{"black", tcell.ColorBlack},
}

// Colors holds the palette index of each sprite.
type Colors struct {
	Ball  int
	Left  int
	Right int
}

func DefaultColors() Colors {
	return Colors{Ball: 8, Left: 0, Right: 1}
}

// SwatchColor returns the palette color at i, or white when out of range.
func SwatchColor(i int) tcell.Color {
	if i < 0 || i >= len(Palette) {
		return tcell.ColorWhite
	}
	return Palette[i].Color
}

var backgrounds = map[session.Background]colorful.Color{
	session.BackgroundDefault: mustHex("#dcdcdc"), // gainsboro
	session.BackgroundGold:    mustHex("#daa520"), // goldenrod
	session.BackgroundPink:    mustHex("#ffc0cb"), // pink
}

// mustHex parses a "#rrggbb" literal with colorful.Hex and panics on error.
func mustHex(s string) colorful.Color {
	c, err := colorful.Hex(s)
	if err != nil {
		panic(err)
	}
	return c
}

var black = colorful.Color{}

func background(bg session.Background) colorful.Color {
	c, ok := backgrounds[bg]
	if !ok {
		return backgrounds[session.BackgroundDefault]
	}
	return c
}

func toTcell(c colorful.Color) tcell.Color {
	r, g, b := c.Clamped().RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}

// FieldColor is the terminal color of the playing field background.
func FieldColor(bg session.Background) tcell.Color {
	return toTcell(background(bg))
}

// LineColor is the center line color: the field color darkened in Lab space
// so it stays readable on every preset.
func LineColor(bg session.Background) tcell.Color {
	return toTcell(background(bg).BlendLab(black, 0.35))
}
