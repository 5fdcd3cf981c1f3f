package card

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrInvalidOrientation = errors.New("invalid orientation")
	ErrInvalidCornerStyle = errors.New("invalid corner style")
)

// Orientation is the rotation of a card face, in clockwise quarter turns.
type Orientation uint8

const (
	Up Orientation = iota
	Right
	Down
	Left
)

// OrientationCount is the number of orientations. It is not an Orientation.
const OrientationCount = 4

// Orientations returns every orientation in clockwise order.
func Orientations() []Orientation {
	return []Orientation{Up, Right, Down, Left}
}

func (o Orientation) Valid() bool {
	return o < OrientationCount
}

func (o Orientation) String() string {
	switch o {
	case Up:
		return "up"
	case Right:
		return "right"
	case Down:
		return "down"
	case Left:
		return "left"
	default:
		return fmt.Sprintf("orientation(%d)", uint8(o))
	}
}

// Degrees returns the clockwise rotation: 0, 90, 180 or 270.
func (o Orientation) Degrees() int {
	return int(o) * 90
}

// Rotate turns o by steps clockwise quarter turns. Negative steps turn
// counter-clockwise.
func (o Orientation) Rotate(steps int) Orientation {
	n := (int(o) + steps) % OrientationCount
	if n < 0 {
		n += OrientationCount
	}
	return Orientation(n)
}

// Flip turns the card upside down.
func (o Orientation) Flip() Orientation {
	return o.Rotate(2)
}

// ParseOrientation accepts a name (up, right, down, left) or a degree
// value (0, 90, 180, 270).
func ParseOrientation(s string) (Orientation, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "up", "0":
		return Up, nil
	case "right", "90":
		return Right, nil
	case "down", "180":
		return Down, nil
	case "left", "270":
		return Left, nil
	}
	return Up, fmt.Errorf("%w: %q", ErrInvalidOrientation, s)
}

func (o Orientation) MarshalText() ([]byte, error) {
	if !o.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrInvalidOrientation, uint8(o))
	}
	return []byte(o.String()), nil
}

func (o *Orientation) UnmarshalText(text []byte) error {
	parsed, err := ParseOrientation(string(text))
	if err != nil {
		return err
	}
	*o = parsed
	return nil
}

// CornerStyle selects how the corners of a card are drawn.
type CornerStyle uint8

const (
	Rounded CornerStyle = iota
	Cornered
)

// CornerStyleCount is the number of corner styles. It is not a CornerStyle.
const CornerStyleCount = 2

func CornerStyles() []CornerStyle {
	return []CornerStyle{Rounded, Cornered}
}

func (s CornerStyle) Valid() bool {
	return s < CornerStyleCount
}

func (s CornerStyle) String() string {
	switch s {
	case Rounded:
		return "rounded"
	case Cornered:
		return "cornered"
	default:
		return fmt.Sprintf("cornerstyle(%d)", uint8(s))
	}
}

// ParseCornerStyle accepts "rounded", "cornered" or its alias "square".
func ParseCornerStyle(s string) (CornerStyle, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "rounded":
		return Rounded, nil
	case "cornered", "square":
		return Cornered, nil
	}
	return Rounded, fmt.Errorf("%w: %q", ErrInvalidCornerStyle, s)
}

func (s CornerStyle) MarshalText() ([]byte, error) {
	if !s.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrInvalidCornerStyle, uint8(s))
	}
	return []byte(s.String()), nil
}

func (s *CornerStyle) UnmarshalText(text []byte) error {
	parsed, err := ParseCornerStyle(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}
