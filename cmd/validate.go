package cmd

import (
	"fmt"
	"os"

	"github.com/arcanaland/cardface/internal/config"
	"github.com/arcanaland/cardface/internal/validator"
	"github.com/spf13/cobra"
)

// validateCmd represents the validate command
var validateCmd = &cobra.Command{
	Use:   "validate [themes_file]",
	Short: "Validate a themes file",
	Long: `Validate checks that every theme in a themes file has parseable colours and a
known corner style, and warns about themes whose text would be hard to read.
Without an argument your own themes file is checked.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		themesPath := config.GetThemesFilePath()
		if len(args) > 0 {
			themesPath = args[0]
		}

		// Check if path exists
		if _, err := os.Stat(themesPath); os.IsNotExist(err) {
			return fmt.Errorf("themes file not found: %s", themesPath)
		}

		v := validator.NewValidator(themesPath)
		results, err := v.Validate()
		if err != nil {
			return fmt.Errorf("validation error: %w", err)
		}

		fmt.Println("Validation Results:")
		fmt.Println("-------------------")

		if len(results.Errors) == 0 {
			fmt.Printf("✅ Themes file '%s' is valid.\n", themesPath)
		} else {
			fmt.Printf("❌ Themes file '%s' has %d validation errors:\n", themesPath, len(results.Errors))
			for i, err := range results.Errors {
				fmt.Printf("%d. %s\n", i+1, err)
			}
			return fmt.Errorf("validation failed")
		}

		if len(results.Warnings) > 0 {
			fmt.Println("\nWarnings:")
			for i, warn := range results.Warnings {
				fmt.Printf("%d. %s\n", i+1, warn)
			}
		}

		return nil
	},
}
