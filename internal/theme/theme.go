package theme

import (
	"github.com/arcanaland/cardface/internal/card"
	"github.com/arcanaland/cardface/internal/color"
)

const (
	paletteText       = "text"
	paletteBackground = "background"
)

// Theme is a skin for cards: a text colour, a background colour and a
// corner style. The theme owns its colours; cards it is applied to share
// them.
type Theme struct {
	Name        string
	CornerStyle card.CornerStyle

	palette *color.Palette
}

// New builds a theme holding one reference to each of its colours.
func New(name string, text, background color.Color, style card.CornerStyle) *Theme {
	p := color.NewPalette()
	p.Set(paletteText, text)
	p.Set(paletteBackground, background)
	return &Theme{
		Name:        name,
		CornerStyle: style,
		palette:     p,
	}
}

func (t *Theme) TextColor() *color.Shared {
	return t.palette.Get(paletteText)
}

func (t *Theme) BackgroundColor() *color.Shared {
	return t.palette.Get(paletteBackground)
}

// Apply skins c with the theme's colours and corner style. Orientation and
// text are left alone.
func (t *Theme) Apply(c *card.Card) {
	c.SetTextColor(t.TextColor())
	c.SetBackgroundColor(t.BackgroundColor())
	c.SetCornerStyle(t.CornerStyle)
}

// Close releases the theme's own colour references. Cards that were
// skinned keep theirs.
func (t *Theme) Close() {
	t.palette.Close()
}

// Builtin returns fresh copies of the themes shipped with cardface.
func Builtin() []*Theme {
	return []*Theme{
		New("classic", color.Black, color.White, card.Rounded),
		New("night", color.RGB(0xe0, 0xe0, 0xe0), color.RGB(0x1c, 0x1c, 0x1e), card.Rounded),
		New("index", color.RGB(0x1f, 0x2a, 0x56), color.RGB(0xfa, 0xf3, 0xdd), card.Cornered),
		New("felt", color.White, color.RGB(0x0b, 0x6e, 0x3b), card.Rounded),
	}
}
