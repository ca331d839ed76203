package i18n

import (
	"testing"
	"time"
)

func TestT(t *testing.T) {
	tests := []struct {
		name string
		lang Language
		key  string
		want string
	}{
		{name: "english", lang: English, key: "action.add-task", want: "Add Task"},
		{name: "arabic", lang: Arabic, key: "status.completed", want: "مكتملة"},
		{name: "missing key falls back to key", lang: English, key: "nope.missing", want: "nope.missing"},
		{name: "unknown language falls back to key", lang: "fr", key: "app.title", want: "app.title"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := T(tt.lang, tt.key); got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestCatalogsHaveSameKeys(t *testing.T) {
	for key := range catalog[English] {
		if _, ok := catalog[Arabic][key]; !ok {
			t.Errorf("arabic catalog is missing %q", key)
		}
	}
	for key := range catalog[Arabic] {
		if _, ok := catalog[English][key]; !ok {
			t.Errorf("english catalog is missing %q", key)
		}
	}
}

func TestDir(t *testing.T) {
	if Dir(Arabic) != "rtl" {
		t.Errorf("expected rtl for arabic, got %s", Dir(Arabic))
	}
	if Dir(English) != "ltr" {
		t.Errorf("expected ltr for english, got %s", Dir(English))
	}
	if (Translator{Lang: Arabic}).Dir() != "rtl" {
		t.Error("translator should report rtl for arabic")
	}
}

func TestParse(t *testing.T) {
	if Parse("ar") != Arabic {
		t.Error("expected ar to parse")
	}
	if Parse("de") != Default {
		t.Error("expected unsupported language to fall back to default")
	}
	if Parse("") != English {
		t.Error("expected empty language to be english")
	}
}

func TestMatch(t *testing.T) {
	tests := []struct {
		header string
		want   Language
	}{
		{header: "", want: English},
		{header: "ar-EG,ar;q=0.9,en;q=0.8", want: Arabic},
		{header: "en-GB,en;q=0.9", want: English},
		{header: "fr-FR", want: English},
		{header: ";;;", want: English},
	}

	for _, tt := range tests {
		t.Run(tt.header, func(t *testing.T) {
			if got := Match(tt.header); got != tt.want {
				t.Errorf("Match(%q) = %s, want %s", tt.header, got, tt.want)
			}
		})
	}
}

func TestRelative(t *testing.T) {
	now := time.Date(2026, 5, 10, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		lang Language
		at   time.Time
		want string
	}{
		{name: "just now", lang: English, at: now.Add(-30 * time.Second), want: "just now"},
		{name: "minutes ago", lang: English, at: now.Add(-5 * time.Minute), want: "5 min ago"},
		{name: "hours ago", lang: English, at: now.Add(-3 * time.Hour), want: "3 h ago"},
		{name: "days ago", lang: English, at: now.Add(-49 * time.Hour), want: "2 days ago"},
		{name: "in days", lang: English, at: now.Add(72 * time.Hour), want: "in 3 days"},
		{name: "arabic", lang: Arabic, at: now.Add(-2 * time.Hour), want: "منذ 2 ساعة"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Relative(tt.lang, tt.at, now); got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}
