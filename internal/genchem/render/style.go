package render

import (
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/daniacca/genchem/internal/genchem"
	"github.com/muesli/termenv"
)

// colorHex maps the palette names used by generated species to RGB values.
var colorHex = map[string]string{
	"teal":       "#008080",
	"hotpink":    "#FF69B4",
	"darkorange": "#FF8C00",
	"yellow":     "#FFFF00",
	"limegreen":  "#32CD32",
	"royalblue":  "#4169E1",
	"orchid":     "#DA70D6",
	"tomato":     "#FF6347",
	"gold":       "#FFD700",
	"skyblue":    "#87CEEB",
	"salmon":     "#FA8072",
	"plum":       "#DDA0DD",
	"khaki":      "#F0E68C",
	"white":      "#FFFFFF",
}

// Palette styles species names. A nil *Palette renders names unstyled.
type Palette struct {
	renderer *lipgloss.Renderer
	styles   map[string]lipgloss.Style
	title    lipgloss.Style
}

// NewPalette returns a palette that writes ANSI colours for w regardless of
// whether w is a terminal; callers decide when colour is wanted.
func NewPalette(w io.Writer) *Palette {
	r := lipgloss.NewRenderer(w)
	r.SetColorProfile(termenv.ANSI256)
	return &Palette{
		renderer: r,
		styles:   make(map[string]lipgloss.Style),
		title:    r.NewStyle().Bold(true),
	}
}

// Name returns the species name styled with its colour.
func (p *Palette) Name(sp genchem.Species) string {
	if p == nil {
		return string(sp.Name)
	}
	hex, ok := lookupColor(sp.Color)
	if !ok {
		return string(sp.Name)
	}
	style, ok := p.styles[hex]
	if !ok {
		style = p.renderer.NewStyle().Foreground(lipgloss.Color(hex))
		p.styles[hex] = style
	}
	return style.Render(string(sp.Name))
}

// Title renders a table banner.
func (p *Palette) Title(s string) string {
	if p == nil {
		return s
	}
	return p.title.Render(s)
}

func lookupColor(name string) (string, bool) {
	if strings.HasPrefix(name, "#") {
		return name, true
	}
	hex, ok := colorHex[strings.ToLower(name)]
	return hex, ok
}
