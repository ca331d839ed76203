package handlers

import (
	"fmt"
	"html/template"
	"io/fs"
	"net/url"
	"path"
	"time"

	"taskboard/internal/i18n"
	"taskboard/internal/view"
)

// ParseTemplates parses templates/*.html and templates/partials/*.html from
// fsys. Each template is registered under its base name.
func ParseTemplates(fsys fs.FS) (*template.Template, error) {
	tmpl := template.New("").Funcs(templateFuncs())

	patterns := []string{
		"templates/*.html",
		"templates/partials/*.html",
	}

	for _, pattern := range patterns {
		matches, err := fs.Glob(fsys, pattern)
		if err != nil {
			return nil, fmt.Errorf("failed to glob pattern %s: %w", pattern, err)
		}

		for _, match := range matches {
			content, err := fs.ReadFile(fsys, match)
			if err != nil {
				return nil, fmt.Errorf("failed to read template %s: %w", match, err)
			}

			name := path.Base(match)
			if _, err := tmpl.New(name).Parse(string(content)); err != nil {
				return nil, fmt.Errorf("failed to parse template %s: %w", name, err)
			}
		}
	}

	return tmpl, nil
}

func templateFuncs() template.FuncMap {
	return template.FuncMap{
		"dict": func(values ...any) map[string]any {
			if len(values)%2 != 0 {
				return nil
			}
			dict := make(map[string]any, len(values)/2)
			for i := 0; i < len(values); i += 2 {
				key, ok := values[i].(string)
				if !ok {
					continue
				}
				dict[key] = values[i+1]
			}
			return dict
		},
		"relative": func(lang i18n.Language, t, now time.Time) string {
			return i18n.Relative(lang, t, now)
		},
		"date": func(t *time.Time) string {
			if t == nil {
				return ""
			}
			return t.In(time.Local).Format("2006-01-02")
		},
		// link returns the page URL for q with one parameter replaced.
		"link": func(q view.Query, key, value string) template.URL {
			v := q.Values()
			switch key {
			case "q", "status", "priority", "tab", "sort", "view":
				v.Set(key, value)
			}
			return template.URL("/?" + cleanDefaults(v).Encode())
		},
	}
}

// cleanDefaults drops parameters that carry their default value so links
// stay short.
func cleanDefaults(v url.Values) url.Values {
	defaults := map[string]string{
		"status":   string(view.All),
		"priority": string(view.All),
		"tab":      string(view.All),
		"sort":     string(view.Desc),
		"view":     string(view.ModeList),
	}
	for key, def := range defaults {
		if v.Get(key) == def {
			v.Del(key)
		}
	}
	if v.Get("q") == "" {
		v.Del("q")
	}
	return v
}
