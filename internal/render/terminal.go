package render

import (
	"os"
	"strings"

	colorize "github.com/fatih/color"
	"github.com/mattn/go-runewidth"
	"golang.org/x/term"

	"github.com/arcanaland/cardface/internal/card"
	"github.com/arcanaland/cardface/internal/color"
)

const minSide = 3

// columns measures text in terminal cells. East Asian ambiguous runes are
// narrow so the box-drawing border keeps one cell per glyph.
var columns = func() *runewidth.Condition {
	c := runewidth.NewCondition()
	c.EastAsianWidth = false
	return c
}()

type corners struct {
	topLeft, topRight, bottomLeft, bottomRight rune
}

var cornerGlyphs = map[card.CornerStyle]corners{
	card.Rounded:  {'╭', '╮', '╰', '╯'},
	card.Cornered: {'┌', '┐', '└', '┘'},
}

// Terminal draws cards with box-drawing characters. Width and Height are
// the size of an upright card including its border; cards lying on their
// side are drawn Height wide and Width tall.
type Terminal struct {
	Width  int
	Height int
	// Color enables 24-bit ANSI colours.
	Color bool
}

// Render returns the card as newline separated rows.
func (t Terminal) Render(c *card.Card) string {
	return strings.Join(t.Lines(c), "\n")
}

// Lines returns the rows of the rendered card.
func (t Terminal) Lines(c *card.Card) []string {
	width, height := max(t.Width, minSide), max(t.Height, minSide)
	upright := layout(c.Text(), width-2, height-2)
	grid := rotate(upright, c.Orientation())
	glyphs := cornerGlyphs[c.CornerStyle()]

	painter := t.painter(c)
	inner := len(grid[0])
	rows := make([]string, 0, len(grid)+2)
	rows = append(rows, painter.Sprint(string(glyphs.topLeft)+strings.Repeat("─", inner)+string(glyphs.topRight)))
	for _, row := range grid {
		rows = append(rows, painter.Sprint("│"+fitRow(row, inner)+"│"))
	}
	rows = append(rows, painter.Sprint(string(glyphs.bottomLeft)+strings.Repeat("─", inner)+string(glyphs.bottomRight)))
	return rows
}

func (t Terminal) painter(c *card.Card) *colorize.Color {
	var attrs []colorize.Attribute
	if bg, ok := visible(c.BackgroundColor()); ok {
		attrs = append(attrs, 48, 2, colorize.Attribute(bg.R), colorize.Attribute(bg.G), colorize.Attribute(bg.B))
	}
	if fg, ok := visible(c.TextColor()); ok {
		attrs = append(attrs, 38, 2, colorize.Attribute(fg.R), colorize.Attribute(fg.G), colorize.Attribute(fg.B))
	}

	painter := colorize.New(attrs...)
	if t.Color && len(attrs) > 0 {
		painter.EnableColor()
	} else {
		painter.DisableColor()
	}
	return painter
}

func visible(s *color.Shared) (color.Color, bool) {
	if s == nil {
		return color.Color{}, false
	}
	c := s.Color()
	return c, c.A > 0
}

// FitColumns shrinks the card so that it spans at most cols columns once
// drawn in orientation o.
func (t Terminal) FitColumns(cols int, o card.Orientation) Terminal {
	if cols < minSide {
		return t
	}
	if o == card.Right || o == card.Left {
		t.Height = min(t.Height, cols)
	} else {
		t.Width = min(t.Width, cols)
	}
	return t
}

// FitStdout fits the card to the width of the terminal on stdout, leaving
// it unchanged when stdout is not a terminal.
func (t Terminal) FitStdout(o card.Orientation) Terminal {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return t
	}
	return t.FitColumns(width, o)
}

// layout places text centred in a width x height grid of terminal cells,
// word wrapped and truncated to fit. A wide rune is followed by a 0 cell.
func layout(text string, width, height int) [][]rune {
	grid := make([][]rune, height)
	for y := range grid {
		grid[y] = []rune(strings.Repeat(" ", width))
	}

	lines := wrapText(text, width)
	if len(lines) > height {
		lines = lines[:height]
	}

	top := (height - len(lines)) / 2
	for i, line := range lines {
		row := cells(line)
		if len(row) > width {
			row = row[:width]
		}
		left := (width - len(row)) / 2
		copy(grid[top+i][left:], row)
	}
	return grid
}

// cells spreads line over one cell per terminal column.
func cells(line string) []rune {
	var out []rune
	for _, r := range line {
		out = append(out, r)
		for i := 1; i < columns.RuneWidth(r); i++ {
			out = append(out, 0)
		}
	}
	return out
}

// fitRow turns a row of cells back into text exactly cols columns wide.
// Sideways cards can stack a wide rune into a one-cell column; the space
// after it is given up first, then the row is truncated.
func fitRow(row []rune, cols int) string {
	over := -cols
	for _, r := range row {
		if r != 0 {
			over += columns.RuneWidth(r)
		}
	}

	var b strings.Builder
	for i := 0; i < len(row); i++ {
		r := row[i]
		if r == 0 {
			continue
		}
		b.WriteRune(r)
		if over > 0 && columns.RuneWidth(r) > 1 && i+1 < len(row) && row[i+1] == ' ' {
			i++
			over--
		}
	}
	return columns.FillRight(columns.Truncate(b.String(), cols, ""), cols)
}

// rotate turns an upright grid to orientation o.
func rotate(grid [][]rune, o card.Orientation) [][]rune {
	h, w := len(grid), len(grid[0])
	var out [][]rune
	switch o {
	case card.Right, card.Left:
		out = make([][]rune, w)
		for x := range out {
			out[x] = make([]rune, h)
		}
	default:
		out = make([][]rune, h)
		for y := range out {
			out[y] = make([]rune, w)
		}
	}

	for y, row := range grid {
		for x, r := range row {
			switch o {
			case card.Right:
				out[x][h-1-y] = r
			case card.Down:
				out[h-1-y][w-1-x] = r
			case card.Left:
				out[w-1-x][y] = r
			default:
				out[y][x] = r
			}
		}
	}
	return out
}

// wrapText wraps text to a specified width in terminal columns, splitting
// words that are longer than a line
func wrapText(text string, width int) []string {
	if width < 1 {
		return nil
	}

	var result []string
	for _, paragraph := range strings.Split(text, "\n") {
		var currentLine string
		for _, word := range strings.Fields(paragraph) {
			for columns.StringWidth(word) > width {
				if currentLine != "" {
					result = append(result, currentLine)
					currentLine = ""
				}
				head := columns.Truncate(word, width, "")
				if head == "" {
					// a wide rune in a one column line
					head = string([]rune(word)[:1])
				}
				result = append(result, head)
				word = word[len(head):]
			}
			if word == "" {
				continue
			}

			switch {
			case currentLine == "":
				currentLine = word
			case columns.StringWidth(currentLine)+1+columns.StringWidth(word) <= width:
				currentLine += " " + word
			default:
				result = append(result, currentLine)
				currentLine = word
			}
		}
		if currentLine != "" {
			result = append(result, currentLine)
		}
	}

	return result
}

// Columns returns the number of terminal columns s occupies once its ANSI
// escape sequences are removed.
func Columns(s string) int {
	return columns.StringWidth(StripAnsi(s))
}

// StripAnsi removes ANSI escape sequences from a string
func StripAnsi(s string) string {
	var result strings.Builder
	inEscape := false
	for _, c := range s {
		if inEscape {
			if c == 'm' {
				inEscape = false
			}
		} else if c == '\033' {
			inEscape = true
		} else {
			result.WriteRune(c)
		}
	}
	return result.String()
}
