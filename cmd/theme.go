package cmd

import (
	"fmt"
	"os"

	colorize "github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/arcanaland/cardface/internal/config"
	"github.com/arcanaland/cardface/internal/theme"
)

// themeCmd represents the theme command group
var themeCmd = &cobra.Command{
	Use:   "theme",
	Short: "Manage card themes",
	Long:  `Commands for listing themes, choosing the default theme and creating a themes file.`,
}

// themeListCmd represents the theme ls command
var themeListCmd = &cobra.Command{
	Use:   "ls",
	Short: "List available themes",
	RunE: func(cmd *cobra.Command, args []string) error {
		lib, err := loadLibrary()
		if err != nil {
			return err
		}
		defer lib.Close()

		defaultTheme, err := config.GetDefaultTheme()
		if err != nil {
			return fmt.Errorf("error getting default theme: %w", err)
		}

		for _, t := range lib.Themes() {
			text, background := t.TextColor().Color(), t.BackgroundColor().Color()
			sample := colorize.New(
				48, 2, colorize.Attribute(background.R), colorize.Attribute(background.G), colorize.Attribute(background.B),
				38, 2, colorize.Attribute(text.R), colorize.Attribute(text.G), colorize.Attribute(text.B),
			).Sprint(" Aa ")

			marker := " "
			suffix := ""
			if t.Name == defaultTheme {
				marker = "*"
				suffix = " [DEFAULT]"
			}
			fmt.Printf("%s %s %-10s %s on %s, %s%s\n",
				marker, sample, t.Name, text.Hex(), background.Hex(), t.CornerStyle, suffix)
		}
		return nil
	},
}

// themeSetDefaultCmd represents the theme set-default command
var themeSetDefaultCmd = &cobra.Command{
	Use:   "set-default [theme_name]",
	Short: "Set the default theme",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := args[0]

		lib, err := loadLibrary()
		if err != nil {
			return err
		}
		defer lib.Close()

		if _, err := lib.Get(name); err != nil {
			return err
		}

		if err := config.SetDefaultTheme(name); err != nil {
			return fmt.Errorf("error setting default theme: %w", err)
		}

		fmt.Printf("Default theme set to: %s\n", name)
		return nil
	},
}

// themeInitCmd represents the theme init command
var themeInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a themes file with the builtin themes",
	RunE: func(cmd *cobra.Command, args []string) error {
		themesPath := config.GetThemesFilePath()

		if _, err := os.Stat(themesPath); err == nil {
			fmt.Println("Themes file already exists at:", themesPath)
			return nil
		}

		builtin := theme.Builtin()
		defer func() {
			for _, t := range builtin {
				t.Close()
			}
		}()

		if err := theme.WriteFile(themesPath, builtin); err != nil {
			return err
		}

		fmt.Println("Themes file initialized at:", themesPath)
		fmt.Println("Edit it to add your own [themes.<name>] tables.")

		if _, err := config.LoadConfig(); err != nil {
			return fmt.Errorf("error initializing config: %w", err)
		}
		fmt.Println("Config file initialized at:", config.GetConfigFilePath())
		return nil
	},
}

func init() {
	RootCmd.AddCommand(themeCmd)
	themeCmd.AddCommand(themeListCmd)
	themeCmd.AddCommand(themeSetDefaultCmd)
	themeCmd.AddCommand(themeInitCmd)
}
