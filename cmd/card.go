package cmd

import (
	"fmt"
	"os"

	"github.com/arcanaland/cardface/internal/card"
	"github.com/arcanaland/cardface/internal/config"
	"github.com/arcanaland/cardface/internal/theme"
	"github.com/spf13/cobra"
)

// addCardFlags registers the flags shared by commands that build a card
func addCardFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("theme", "t", "", "Theme to apply (defaults to the theme from your config)")
	cmd.Flags().StringP("orientation", "o", "up", "Card orientation: up, right, down, left (or 0, 90, 180, 270)")
	cmd.Flags().StringP("corner-style", "c", "", "Override the theme's corner style: rounded or cornered")
	cmd.Flags().IntP("rotate", "r", 0, "Clockwise quarter turns applied after --orientation")
}

// loadLibrary returns the builtin themes merged with the user's themes file
func loadLibrary() (*theme.Library, error) {
	lib := theme.NewLibrary()

	themesPath := config.GetThemesFilePath()
	if _, err := os.Stat(themesPath); os.IsNotExist(err) {
		return lib, nil
	}

	if err := lib.LoadFile(themesPath); err != nil {
		lib.Close()
		return nil, fmt.Errorf("error loading themes: %w", err)
	}
	return lib, nil
}

// cardSession holds a card built from the command line and the themes its
// colours were taken from.
type cardSession struct {
	Card  *card.Card
	Theme *theme.Theme
	lib   *theme.Library
}

func (s *cardSession) Close() {
	s.Card.Release()
	s.lib.Close()
}

// buildCard creates the card described by the text argument and the card flags
func buildCard(cmd *cobra.Command, args []string) (*cardSession, error) {
	text := ""
	if len(args) > 0 {
		text = args[0]
	}

	themeName, _ := cmd.Flags().GetString("theme")
	orientationFlag, _ := cmd.Flags().GetString("orientation")
	cornerFlag, _ := cmd.Flags().GetString("corner-style")
	rotate, _ := cmd.Flags().GetInt("rotate")

	orientation, err := card.ParseOrientation(orientationFlag)
	if err != nil {
		return nil, err
	}

	if themeName == "" {
		themeName, err = config.GetDefaultTheme()
		if err != nil {
			return nil, fmt.Errorf("error getting default theme: %w", err)
		}
	}

	lib, err := loadLibrary()
	if err != nil {
		return nil, err
	}

	t, err := lib.Get(themeName)
	if err != nil {
		lib.Close()
		return nil, err
	}

	c := card.New(text)
	t.Apply(c)
	c.SetOrientation(orientation.Rotate(rotate))

	if cornerFlag != "" {
		style, err := card.ParseCornerStyle(cornerFlag)
		if err != nil {
			c.Release()
			lib.Close()
			return nil, err
		}
		c.SetCornerStyle(style)
	}

	return &cardSession{Card: c, Theme: t, lib: lib}, nil
}
