package validator

import (
	"fmt"
	"os"
	"sort"

	"github.com/arcanaland/cardface/internal/card"
	"github.com/arcanaland/cardface/internal/color"
	"github.com/arcanaland/cardface/internal/theme"
)

// MinContrast is the contrast ratio below which card text is flagged as
// hard to read.
const MinContrast = 3.0

type ValidationResults struct {
	Errors   []string
	Warnings []string
}

type Validator struct {
	ThemesPath string
	Results    ValidationResults
}

func NewValidator(themesPath string) *Validator {
	return &Validator{
		ThemesPath: themesPath,
		Results:    ValidationResults{},
	}
}

// Validate checks every theme in the file. A missing or unparseable file
// is returned as an error; problems inside the file go to the results.
func (v *Validator) Validate() (ValidationResults, error) {
	if _, err := os.Stat(v.ThemesPath); os.IsNotExist(err) {
		return v.Results, fmt.Errorf("themes file not found: %s", v.ThemesPath)
	}

	f, err := theme.DecodeFile(v.ThemesPath)
	if err != nil {
		return v.Results, err
	}

	if len(f.Themes) == 0 {
		v.Results.Errors = append(v.Results.Errors, "no [themes.<name>] tables found")
		return v.Results, nil
	}

	names := make([]string, 0, len(f.Themes))
	for name := range f.Themes {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		v.validateEntry(name, f.Themes[name])
	}

	return v.Results, nil
}

func (v *Validator) validateEntry(name string, e theme.Entry) {
	text, textOK := v.validateColor(name, "text_color", e.TextColor)
	background, backgroundOK := v.validateColor(name, "background_color", e.BackgroundColor)

	if e.CornerStyle == "" {
		v.warn("themes.%s.corner_style not set, cards will use rounded corners", name)
	} else if _, err := card.ParseCornerStyle(e.CornerStyle); err != nil {
		v.fail("themes.%s.corner_style: %v (expected one of: rounded, cornered)", name, err)
	}

	if backgroundOK && background.A < 255 {
		v.warn("themes.%s.background_color %s is not opaque", name, background.Hex())
	}

	if textOK && backgroundOK {
		if ratio := color.ContrastRatio(text, background); ratio < MinContrast {
			v.warn("themes.%s has low contrast %.2f:1 between text and background (minimum %.1f:1)",
				name, ratio, MinContrast)
		}
	}
}

func (v *Validator) validateColor(name, field, value string) (color.Color, bool) {
	if value == "" {
		v.fail("themes.%s.%s is required", name, field)
		return color.Color{}, false
	}
	c, err := color.Parse(value)
	if err != nil {
		v.fail("themes.%s.%s: %v", name, field, err)
		return color.Color{}, false
	}
	return c, true
}

func (v *Validator) fail(format string, args ...any) {
	v.Results.Errors = append(v.Results.Errors, fmt.Sprintf(format, args...))
}

func (v *Validator) warn(format string, args ...any) {
	v.Results.Warnings = append(v.Results.Warnings, fmt.Sprintf(format, args...))
}
