package validator_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/arcanaland/cardface/internal/validator"
	"github.com/stretchr/testify/require"
)

func writeThemes(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "themes.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))
	return path
}

func TestValidate(t *testing.T) {
	t.Run("clean_file", func(t *testing.T) {
		path := writeThemes(t, `
[themes.classic]
text_color = "#000000"
background_color = "#ffffff"
corner_style = "rounded"
`)
		results, err := validator.NewValidator(path).Validate()
		require.NoError(t, err)
		require.Empty(t, results.Errors)
		require.Empty(t, results.Warnings)
	})

	t.Run("reports_every_problem", func(t *testing.T) {
		path := writeThemes(t, `
[themes.a]
background_color = "#12"
corner_style = "beveled"

[themes.b]
text_color = "#777777"
background_color = "#88888880"
`)
		results, err := validator.NewValidator(path).Validate()
		require.NoError(t, err)
		require.Len(t, results.Errors, 3)
		require.Contains(t, results.Errors[0], "themes.a.text_color is required")
		require.Contains(t, results.Errors[1], "themes.a.background_color")
		require.Contains(t, results.Errors[2], "themes.a.corner_style")

		require.Len(t, results.Warnings, 3)
		require.Contains(t, results.Warnings[0], "themes.b.corner_style not set")
		require.Contains(t, results.Warnings[1], "not opaque")
		require.Contains(t, results.Warnings[2], "low contrast")
	})

	t.Run("spaced_hex_is_not_a_color", func(t *testing.T) {
		path := writeThemes(t, `
[themes.spaced]
text_color = "#000000"
background_color = "# 1 2 3"
corner_style = "rounded"
`)
		results, err := validator.NewValidator(path).Validate()
		require.NoError(t, err)
		require.Len(t, results.Errors, 1)
		require.Contains(t, results.Errors[0], "themes.spaced.background_color")
	})

	t.Run("empty_file", func(t *testing.T) {
		results, err := validator.NewValidator(writeThemes(t, "")).Validate()
		require.NoError(t, err)
		require.Len(t, results.Errors, 1)
	})

	t.Run("missing_file", func(t *testing.T) {
		_, err := validator.NewValidator(filepath.Join(t.TempDir(), "none.toml")).Validate()
		require.Error(t, err)
	})

	t.Run("broken_toml", func(t *testing.T) {
		_, err := validator.NewValidator(writeThemes(t, "[themes\n")).Validate()
		require.Error(t, err)
	})
}
