package theme

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/BurntSushi/toml"
	"github.com/arcanaland/cardface/internal/card"
	"github.com/arcanaland/cardface/internal/color"
)

var ErrThemeNotFound = errors.New("theme not found")

// File is the on-disk layout of a themes file.
type File struct {
	Themes map[string]Entry `toml:"themes"`
}

// Entry is one [themes.<name>] table. Values are kept as strings so that a
// validator can report every bad field instead of stopping at the first.
type Entry struct {
	TextColor       string `toml:"text_color"`
	BackgroundColor string `toml:"background_color"`
	CornerStyle     string `toml:"corner_style,omitempty"`
}

// Theme parses the entry. A missing corner style means rounded.
func (e Entry) Theme(name string) (*Theme, error) {
	if e.TextColor == "" {
		return nil, fmt.Errorf("theme %s: text_color is required", name)
	}
	if e.BackgroundColor == "" {
		return nil, fmt.Errorf("theme %s: background_color is required", name)
	}

	text, err := color.Parse(e.TextColor)
	if err != nil {
		return nil, fmt.Errorf("theme %s: text_color: %w", name, err)
	}
	background, err := color.Parse(e.BackgroundColor)
	if err != nil {
		return nil, fmt.Errorf("theme %s: background_color: %w", name, err)
	}

	style := card.Rounded
	if e.CornerStyle != "" {
		style, err = card.ParseCornerStyle(e.CornerStyle)
		if err != nil {
			return nil, fmt.Errorf("theme %s: corner_style: %w", name, err)
		}
	}

	return New(name, text, background, style), nil
}

// DecodeFile reads a themes file without interpreting its values.
func DecodeFile(path string) (*File, error) {
	var f File
	if _, err := toml.DecodeFile(path, &f); err != nil {
		return nil, fmt.Errorf("error parsing %s: %w", filepath.Base(path), err)
	}
	return &f, nil
}

// WriteFile writes themes to path, creating parent directories.
func WriteFile(path string, themes []*Theme) error {
	f := File{Themes: make(map[string]Entry, len(themes))}
	for _, t := range themes {
		f.Themes[t.Name] = Entry{
			TextColor:       t.TextColor().Color().Hex(),
			BackgroundColor: t.BackgroundColor().Color().Hex(),
			CornerStyle:     t.CornerStyle.String(),
		}
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("error creating themes directory: %w", err)
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("error creating themes file: %w", err)
	}
	defer file.Close()

	if err := toml.NewEncoder(file).Encode(f); err != nil {
		return fmt.Errorf("error encoding themes: %w", err)
	}
	return nil
}

// Library is a set of themes addressed by name.
type Library struct {
	themes map[string]*Theme
}

// NewLibrary returns a library holding the builtin themes.
func NewLibrary() *Library {
	l := &Library{themes: make(map[string]*Theme)}
	for _, t := range Builtin() {
		l.Add(t)
	}
	return l
}

// Add stores t, closing any theme it replaces.
func (l *Library) Add(t *Theme) {
	if prev, ok := l.themes[t.Name]; ok {
		prev.Close()
	}
	l.themes[t.Name] = t
}

// LoadFile merges the themes in path into the library. Nothing is added
// if any entry is invalid.
func (l *Library) LoadFile(path string) error {
	f, err := DecodeFile(path)
	if err != nil {
		return err
	}

	loaded := make([]*Theme, 0, len(f.Themes))
	for name, entry := range f.Themes {
		t, err := entry.Theme(name)
		if err != nil {
			for _, done := range loaded {
				done.Close()
			}
			return err
		}
		loaded = append(loaded, t)
	}

	for _, t := range loaded {
		l.Add(t)
	}
	return nil
}

func (l *Library) Get(name string) (*Theme, error) {
	t, ok := l.themes[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrThemeNotFound, name)
	}
	return t, nil
}

func (l *Library) Names() []string {
	names := make([]string, 0, len(l.themes))
	for name := range l.themes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Themes returns the themes sorted by name.
func (l *Library) Themes() []*Theme {
	themes := make([]*Theme, 0, len(l.themes))
	for _, name := range l.Names() {
		themes = append(themes, l.themes[name])
	}
	return themes
}

func (l *Library) Close() {
	for name, t := range l.themes {
		t.Close()
		delete(l.themes, name)
	}
}
