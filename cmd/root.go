package cmd

import (
	"github.com/spf13/cobra"
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "cardface",
	Short: "Tool for drawing and theming game cards",
	Long: `Cardface draws game cards in the terminal or as PNG previews.
A card has face text, a text colour, a background colour, an orientation
(up, right, down, left) and a corner style (rounded or cornered). Colours and
corner styles come from themes, either builtin or from your themes file.`,
	SilenceUsage: true,
}

func init() {
	RootCmd.AddCommand(validateCmd)
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return RootCmd.Execute()
}
