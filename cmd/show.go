package cmd

import (
	"fmt"
	"strings"

	colorize "github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/arcanaland/cardface/internal/card"
	"github.com/arcanaland/cardface/internal/color"
	"github.com/arcanaland/cardface/internal/config"
	"github.com/arcanaland/cardface/internal/render"
)

var showCmd = &cobra.Command{
	Use:   "show [text]",
	Short: "Draw a card in the terminal",
	Long: `Show draws a card with the given face text in the terminal.

The theme decides the card's colours and corner style. Use --theme to pick a
theme from the builtins or your themes file, otherwise the default theme from
your config is used.

Examples:
  cardface show Ace
  cardface show --theme night --orientation right "King of Hearts"
  cardface show -t index -c rounded -r 2 "Question 12"`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		session, err := buildCard(cmd, args)
		if err != nil {
			return err
		}
		defer session.Close()

		cfg, err := config.LoadConfig()
		if err != nil {
			return fmt.Errorf("error loading config: %w", err)
		}

		width, _ := cmd.Flags().GetInt("width")
		height, _ := cmd.Flags().GetInt("height")
		noColor, _ := cmd.Flags().GetBool("no-color")
		if width <= 0 {
			width = cfg.CardWidth
		}
		if height <= 0 {
			height = cfg.CardHeight
		}

		term := render.Terminal{Width: width, Height: height, Color: !noColor}
		term = term.FitStdout(session.Card.Orientation())

		displayCard(session.Card, term.Lines(session.Card), session.Theme.Name, !noColor)
		return nil
	},
}

func init() {
	RootCmd.AddCommand(showCmd)

	addCardFlags(showCmd)
	showCmd.Flags().Int("width", 0, "Card width in columns (defaults to card_width from your config)")
	showCmd.Flags().Int("height", 0, "Card height in rows (defaults to card_height from your config)")
	showCmd.Flags().Bool("no-color", false, "Disable ANSI colours")
}

// colorLabel formats a colour handle for the info block
func colorLabel(s *color.Shared, useColor bool) string {
	if s == nil {
		return "unset"
	}
	c := s.Color()
	if !useColor {
		return c.Hex()
	}
	swatch := colorize.New(48, 2, colorize.Attribute(c.R), colorize.Attribute(c.G), colorize.Attribute(c.B))
	swatch.EnableColor()
	return swatch.Sprint("  ") + " " + c.Hex()
}

// displayCard prints the rendered card with its attributes beside it
func displayCard(c *card.Card, cardLines []string, themeName string, useColor bool) {
	label := colorize.New(colorize.FgCyan)
	value := colorize.New(colorize.FgHiWhite)
	if !useColor {
		label.DisableColor()
		value.DisableColor()
	}

	text := c.Text()
	if text == "" {
		text = "(blank)"
	}

	infoLines := []string{
		label.Sprint("Text:        ") + value.Sprint(strings.ReplaceAll(text, "\n", " ⏎ ")),
		label.Sprint("Theme:       ") + value.Sprint(themeName),
		label.Sprint("Orientation: ") + value.Sprintf("%s (%d°)", c.Orientation(), c.Orientation().Degrees()),
		label.Sprint("Corners:     ") + value.Sprint(c.CornerStyle()),
		label.Sprint("Text color:  ") + colorLabel(c.TextColor(), useColor),
		label.Sprint("Background:  ") + colorLabel(c.BackgroundColor(), useColor),
	}

	cardWidth := 0
	for _, line := range cardLines {
		cardWidth = max(cardWidth, render.Columns(line))
	}

	spacing := 4
	fmt.Println()

	for i := 0; i < max(len(cardLines), len(infoLines)); i++ {
		fmt.Print("  ")
		if i < len(cardLines) {
			fmt.Print(cardLines[i])
			fmt.Print(strings.Repeat(" ", cardWidth-render.Columns(cardLines[i])+spacing))
		} else {
			fmt.Print(strings.Repeat(" ", cardWidth+spacing))
		}

		if i < len(infoLines) {
			fmt.Print(infoLines[i])
		}

		fmt.Println()
	}

	fmt.Println()
}
