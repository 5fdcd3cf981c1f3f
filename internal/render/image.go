package render

import (
	"fmt"
	"image"
	"image/png"
	"io"

	"github.com/nfnt/resize"

	"github.com/arcanaland/cardface/internal/card"
	"github.com/arcanaland/cardface/internal/color"
)

const supersample = 4

var (
	defaultInk   = color.Black
	defaultPaper = color.White
)

// Image rasterises the card at width x height pixels (upright size). The
// face is drawn without text: background, a border in the text colour
// fading into the background, and a pip marking the edge the top of the
// card faces. Pixels outside the card outline are transparent.
func Image(c *card.Card, width, height int) image.Image {
	if c.Orientation() == card.Right || c.Orientation() == card.Left {
		width, height = height, width
	}
	width, height = max(width, 1), max(height, 1)

	ink, paper := defaultInk, defaultPaper
	if c.TextColor() != nil {
		ink = c.TextColor().Color()
	}
	if c.BackgroundColor() != nil {
		paper = c.BackgroundColor().Color()
	}

	edge := ink.Blend(paper, 0.5)

	w, h := float64(width*supersample), float64(height*supersample)
	short := min(w, h)
	radius := 0.0
	if c.CornerStyle() == card.Rounded {
		radius = short / 8
	}
	border := max(1, short/40)
	pipX, pipY := pipCenter(c.Orientation(), w, h, short/6)
	pipRadius := short / 16

	img := image.NewNRGBA(image.Rect(0, 0, width*supersample, height*supersample))
	for y := 0; y < img.Bounds().Dy(); y++ {
		for x := 0; x < img.Bounds().Dx(); x++ {
			px, py := float64(x)+0.5, float64(y)+0.5
			if !inRoundRect(px, py, 0, 0, w, h, radius) {
				continue
			}

			fill := paper
			dx, dy := px-pipX, py-pipY
			switch {
			case !inRoundRect(px, py, border, border, w-border, h-border, max(radius-border, 0)):
				fill = ink
			case !inRoundRect(px, py, 2*border, 2*border, w-2*border, h-2*border, max(radius-2*border, 0)):
				fill = edge
			case dx*dx+dy*dy <= pipRadius*pipRadius:
				fill = ink
			}
			img.Set(x, y, fill)
		}
	}

	return resize.Resize(uint(width), uint(height), img, resize.Lanczos3)
}

func pipCenter(o card.Orientation, w, h, margin float64) (float64, float64) {
	switch o {
	case card.Right:
		return w - margin, h / 2
	case card.Down:
		return w / 2, h - margin
	case card.Left:
		return margin, h / 2
	default:
		return w / 2, margin
	}
}

// inRoundRect reports whether (px, py) lies inside the rectangle
// (x0, y0)-(x1, y1) with corners of radius r.
func inRoundRect(px, py, x0, y0, x1, y1, r float64) bool {
	if px < x0 || px > x1 || py < y0 || py > y1 {
		return false
	}
	if r <= 0 {
		return true
	}
	cx := min(max(px, x0+r), x1-r)
	cy := min(max(py, y0+r), y1-r)
	dx, dy := px-cx, py-cy
	return dx*dx+dy*dy <= r*r
}

// WritePNG encodes img as PNG.
func WritePNG(w io.Writer, img image.Image) error {
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("error encoding png: %w", err)
	}
	return nil
}
