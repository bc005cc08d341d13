package ascii

import (
	"strings"

	"github.com/gookit/color"
)

// Palette colours a rendered map for terminal output
type Palette struct {
	Wall     color.Style
	Floor    color.Style
	Corridor color.Style
}

// DefaultPalette returns the styles used by the layout command
func DefaultPalette() *Palette {
	return &Palette{
		Wall:     color.Style{color.FgGray, color.OpBold},
		Floor:    color.Style{color.FgGray},
		Corridor: color.Style{color.FgYellow},
	}
}

// Apply wraps each map character in its style, leaving other runes untouched
func (p *Palette) Apply(rendered string) string {
	var b strings.Builder
	for _, r := range rendered {
		switch r {
		case cellWall:
			b.WriteString(p.Wall.Sprint(string(r)))
		case cellFloor:
			b.WriteString(p.Floor.Sprint(string(r)))
		case cellVertical, cellLevel:
			b.WriteString(p.Corridor.Sprint(string(r)))
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}
