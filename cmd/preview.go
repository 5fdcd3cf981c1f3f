package cmd

import (
	"crypto/md5"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/arcanaland/cardface/internal/card"
	"github.com/arcanaland/cardface/internal/config"
	"github.com/arcanaland/cardface/internal/render"
)

var previewCmd = &cobra.Command{
	Use:   "preview [text]",
	Short: "Write a PNG preview of a card",
	Long: `Preview rasterises a card to a PNG file: its background, its border in the
text colour, its corner style, and a pip marking where the top of the card
faces. Without --out the file is written to the cardface cache directory
(XDG_CACHE_HOME/cardface).

Examples:
  cardface preview Ace
  cardface preview --theme felt --orientation left --out ace.png Ace`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		session, err := buildCard(cmd, args)
		if err != nil {
			return err
		}
		defer session.Close()

		size, _ := cmd.Flags().GetInt("size")
		if size <= 0 {
			return fmt.Errorf("--size must be positive, got %d", size)
		}
		width, height := size*5/7, size

		outPath, _ := cmd.Flags().GetString("out")
		if outPath == "" {
			outPath = previewPath(session.Card, session.Theme.Name, size)
		}

		if err := os.MkdirAll(filepath.Dir(outPath), 0755); err != nil {
			return fmt.Errorf("failed to create preview directory: %w", err)
		}

		file, err := os.Create(outPath)
		if err != nil {
			return fmt.Errorf("failed to create preview: %w", err)
		}
		defer file.Close()

		if err := render.WritePNG(file, render.Image(session.Card, width, height)); err != nil {
			return err
		}

		fmt.Println("Preview written to:", outPath)
		return nil
	},
}

func init() {
	RootCmd.AddCommand(previewCmd)

	addCardFlags(previewCmd)
	previewCmd.Flags().String("out", "", "Output PNG path")
	previewCmd.Flags().Int("size", 350, "Card height in pixels; width follows the 5:7 card ratio")
}

// previewPath names a cached preview after everything that affects its pixels
func previewPath(c *card.Card, themeName string, size int) string {
	key := fmt.Sprintf("%s|%s|%s|%s|%d", c.Text(), themeName, c.Orientation(), c.CornerStyle(), size)
	return filepath.Join(config.GetCacheDir(), "previews", fmt.Sprintf("%x.png", md5.Sum([]byte(key))))
}
