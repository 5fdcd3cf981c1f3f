package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"

	"github.com/arcanaland/cardface/internal/card"
	"github.com/arcanaland/cardface/internal/color"
	"github.com/arcanaland/cardface/internal/config"
)

func newCardCommand(t *testing.T, flags ...string) *cobra.Command {
	t.Helper()
	cmd := &cobra.Command{Use: "test"}
	addCardFlags(cmd)
	require.NoError(t, cmd.ParseFlags(flags))
	return cmd
}

func isolateConfig(t *testing.T) {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, "config"))
	t.Setenv("XDG_CACHE_HOME", filepath.Join(dir, "cache"))
}

func TestBuildCard(t *testing.T) {
	t.Run("defaults_to_configured_theme", func(t *testing.T) {
		isolateConfig(t)
		require.NoError(t, config.SetDefaultTheme("index"))

		session, err := buildCard(newCardCommand(t), []string{"Ace"})
		require.NoError(t, err)
		defer session.Close()

		require.Equal(t, "index", session.Theme.Name)
		require.Equal(t, "Ace", session.Card.Text())
		require.Equal(t, card.Up, session.Card.Orientation())
		require.Equal(t, card.Cornered, session.Card.CornerStyle())
		require.Same(t, session.Theme.TextColor(), session.Card.TextColor())
	})

	t.Run("applies_flags", func(t *testing.T) {
		isolateConfig(t)

		session, err := buildCard(newCardCommand(t,
			"--theme", "night", "--orientation", "right", "--rotate", "2", "--corner-style", "square"), nil)
		require.NoError(t, err)
		defer session.Close()

		require.Equal(t, "", session.Card.Text())
		require.Equal(t, card.Left, session.Card.Orientation())
		require.Equal(t, card.Cornered, session.Card.CornerStyle())
	})

	t.Run("uses_themes_file", func(t *testing.T) {
		isolateConfig(t)
		path := config.GetThemesFilePath()
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
		require.NoError(t, os.WriteFile(path, []byte(`
[themes.mono]
text_color = "#101010"
background_color = "#f0f0f0"
`), 0644))

		session, err := buildCard(newCardCommand(t, "-t", "mono"), []string{"7"})
		require.NoError(t, err)
		defer session.Close()

		require.Equal(t, color.RGB(0x10, 0x10, 0x10), session.Card.TextColor().Color())
		require.Equal(t, card.Rounded, session.Card.CornerStyle())
	})

	t.Run("rejects_bad_flags", func(t *testing.T) {
		isolateConfig(t)

		_, err := buildCard(newCardCommand(t, "-o", "sideways"), nil)
		require.ErrorIs(t, err, card.ErrInvalidOrientation)

		_, err = buildCard(newCardCommand(t, "-c", "beveled"), nil)
		require.ErrorIs(t, err, card.ErrInvalidCornerStyle)

		_, err = buildCard(newCardCommand(t, "-t", "neon"), nil)
		require.Error(t, err)
	})
}

func TestPreviewPath(t *testing.T) {
	isolateConfig(t)
	c := card.New("Ace")
	first := previewPath(c, "classic", 350)
	require.Equal(t, first, previewPath(c, "classic", 350))

	c.SetOrientation(card.Down)
	require.NotEqual(t, first, previewPath(c, "classic", 350))
	require.Equal(t, filepath.Join(config.GetCacheDir(), "previews"), filepath.Dir(first))
}
