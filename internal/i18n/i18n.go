// Package i18n holds the English and Arabic UI strings.
package i18n

import "golang.org/x/text/language"

// Language is a supported UI language.
type Language string

const (
	English Language = "en"
	Arabic  Language = "ar"
)

// Languages lists the supported languages in toggle order.
var Languages = []Language{English, Arabic}

// Default is used when no preference has been stored.
const Default = English

// IsValid reports whether l is a supported language.
func (l Language) IsValid() bool {
	_, ok := catalog[l]
	return ok
}

// Parse returns the Language for s, or Default when s is not supported.
func Parse(s string) Language {
	l := Language(s)
	if l.IsValid() {
		return l
	}
	return Default
}

// Dir returns the document direction for l: "rtl" for Arabic, "ltr" otherwise.
func Dir(l Language) string {
	if l == Arabic {
		return "rtl"
	}
	return "ltr"
}

// T looks up key for l. Unknown keys come back unchanged.
func T(l Language, key string) string {
	if msg, ok := catalog[l][key]; ok {
		return msg
	}
	return key
}

// Translator binds a language for templates.
type Translator struct {
	Lang Language
}

// T looks up key in the bound language.
func (tr Translator) T(key string) string {
	return T(tr.Lang, key)
}

// Dir returns the bound language's direction.
func (tr Translator) Dir() string {
	return Dir(tr.Lang)
}

var matcher = language.NewMatcher([]language.Tag{language.English, language.Arabic})

// Match picks the supported language closest to an Accept-Language header.
// An empty or unparsable header yields Default.
func Match(acceptLanguage string) Language {
	if acceptLanguage == "" {
		return Default
	}
	tags, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(tags) == 0 {
		return Default
	}
	_, idx, conf := matcher.Match(tags...)
	if conf == language.No {
		return Default
	}
	return Languages[idx]
}
