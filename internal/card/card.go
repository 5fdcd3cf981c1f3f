package card

import (
	"fmt"
	"strings"

	"github.com/arcanaland/cardface/internal/color"
)

// Card is the visual state of one playable card: its face text, two
// colours, its rotation and its corner style.
//
// A Card is not safe for concurrent use; its owner synchronises access.
type Card struct {
	text            string
	textColor       *color.Shared
	backgroundColor *color.Shared
	orientation     Orientation
	cornerStyle     CornerStyle
}

// New returns a card showing text, facing Up with Rounded corners and no
// colours set.
func New(text string) *Card {
	c := &Card{
		orientation: Up,
		cornerStyle: Rounded,
	}
	c.SetText(text)
	return c
}

func (c *Card) Text() string {
	return c.text
}

// SetText stores a private copy of s.
func (c *Card) SetText(s string) {
	c.text = strings.Clone(s)
}

// TextColor returns the text colour handle, or nil if none was set.
func (c *Card) TextColor() *color.Shared {
	return c.textColor
}

// SetTextColor retains s and releases the previous text colour.
func (c *Card) SetTextColor(s *color.Shared) {
	c.textColor = swap(c.textColor, s)
}

// BackgroundColor returns the background colour handle, or nil if none was set.
func (c *Card) BackgroundColor() *color.Shared {
	return c.backgroundColor
}

// SetBackgroundColor retains s and releases the previous background colour.
func (c *Card) SetBackgroundColor(s *color.Shared) {
	c.backgroundColor = swap(c.backgroundColor, s)
}

func (c *Card) Orientation() Orientation {
	return c.orientation
}

// SetOrientation panics if o is not one of Up, Right, Down or Left.
func (c *Card) SetOrientation(o Orientation) {
	if !o.Valid() {
		panic(fmt.Sprintf("card: %v", o))
	}
	c.orientation = o
}

func (c *Card) CornerStyle() CornerStyle {
	return c.cornerStyle
}

// SetCornerStyle panics if s is not Rounded or Cornered.
func (c *Card) SetCornerStyle(s CornerStyle) {
	if !s.Valid() {
		panic(fmt.Sprintf("card: %v", s))
	}
	c.cornerStyle = s
}

// Release gives back both colour references. The card stays usable with
// its colours unset.
func (c *Card) Release() {
	c.textColor = swap(c.textColor, nil)
	c.backgroundColor = swap(c.backgroundColor, nil)
}

// swap retains next before releasing prev so reassigning the same handle
// never drops it to zero.
func swap(prev, next *color.Shared) *color.Shared {
	next.Retain()
	prev.Release()
	return next
}
