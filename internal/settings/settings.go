// Package settings persists the UI preferences that live next to the tasks:
// language and theme.
package settings

import (
	"context"
	"errors"
	"fmt"

	"taskboard/internal/i18n"
	"taskboard/internal/store"
)

const (
	LanguageKey = "proactive-task-manager-language"
	ThemeKey    = "proactive-task-manager-theme"
)

// Theme is the colour scheme.
type Theme string

const (
	ThemeLight  Theme = "light"
	ThemeDark   Theme = "dark"
	ThemeSystem Theme = "system"
)

// IsValid reports whether t is a known theme.
func (t Theme) IsValid() bool {
	switch t {
	case ThemeLight, ThemeDark, ThemeSystem:
		return true
	}
	return false
}

// Toggle flips between light and dark. System resolves to dark.
func (t Theme) Toggle() Theme {
	if t == ThemeDark {
		return ThemeLight
	}
	return ThemeDark
}

// Preferences are the stored UI choices.
type Preferences struct {
	Language i18n.Language `json:"language"`
	Theme    Theme         `json:"theme"`
}

// Defaults are used for anything not stored yet.
func Defaults() Preferences {
	return Preferences{Language: i18n.Default, Theme: ThemeSystem}
}

// Dir is the document direction for the chosen language.
func (p Preferences) Dir() string {
	return i18n.Dir(p.Language)
}

// Load reads both preferences. Missing or unsupported values fall back to the
// defaults; only backend failures are errors.
func Load(ctx context.Context, s store.Store) (Preferences, error) {
	return LoadOr(ctx, s, Defaults())
}

// LoadOr is Load with caller-supplied fallbacks, e.g. a language negotiated
// from the request.
func LoadOr(ctx context.Context, s store.Store, prefs Preferences) (Preferences, error) {
	lang, err := get(ctx, s, LanguageKey)
	if err != nil {
		return prefs, err
	}
	if l := i18n.Language(lang); l.IsValid() {
		prefs.Language = l
	}

	theme, err := get(ctx, s, ThemeKey)
	if err != nil {
		return prefs, err
	}
	if t := Theme(theme); t.IsValid() {
		prefs.Theme = t
	}

	return prefs, nil
}

// Save validates and writes both preferences.
func Save(ctx context.Context, s store.Store, prefs Preferences) error {
	if err := SaveLanguage(ctx, s, prefs.Language); err != nil {
		return err
	}
	return SaveTheme(ctx, s, prefs.Theme)
}

// SaveLanguage writes only the language, leaving a stored theme untouched.
func SaveLanguage(ctx context.Context, s store.Store, lang i18n.Language) error {
	if !lang.IsValid() {
		return fmt.Errorf("unsupported language %q", lang)
	}
	if err := s.Put(ctx, LanguageKey, []byte(lang)); err != nil {
		return fmt.Errorf("failed to save language: %w", err)
	}
	return nil
}

// SaveTheme writes only the theme, leaving a stored language untouched.
func SaveTheme(ctx context.Context, s store.Store, theme Theme) error {
	if !theme.IsValid() {
		return fmt.Errorf("unsupported theme %q", theme)
	}
	if err := s.Put(ctx, ThemeKey, []byte(theme)); err != nil {
		return fmt.Errorf("failed to save theme: %w", err)
	}
	return nil
}

// Reset forgets both stored preferences so the next Load falls back again.
func Reset(ctx context.Context, s store.Store) error {
	for _, key := range []string{LanguageKey, ThemeKey} {
		if err := s.Delete(ctx, key); err != nil {
			return fmt.Errorf("failed to reset %s: %w", key, err)
		}
	}
	return nil
}

func get(ctx context.Context, s store.Store, key string) (string, error) {
	v, err := s.Get(ctx, key)
	if errors.Is(err, store.ErrNotFound) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", key, err)
	}
	return string(v), nil
}
