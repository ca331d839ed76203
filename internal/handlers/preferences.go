package handlers

import (
	"net/http"

	"taskboard/internal/i18n"
	"taskboard/internal/settings"
)

type preferencesResponse struct {
	settings.Preferences
	Dir string `json:"dir"`
}

// GetPreferences returns the language, theme and text direction.
func (h *Handlers) GetPreferences(w http.ResponseWriter, r *http.Request) {
	prefs, err := h.preferences(r)
	if err != nil {
		h.respondServerError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, preferencesResponse{Preferences: prefs, Dir: prefs.Dir()})
}

// UpdatePreferences stores language and/or theme. Only the fields present in
// the body are written, so a negotiated language is not pinned by a theme
// change.
func (h *Handlers) UpdatePreferences(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Language *i18n.Language  `json:"language"`
		Theme    *settings.Theme `json:"theme"`
	}
	if err := decodeJSON(w, r, &payload); err != nil {
		respondError(w, http.StatusBadRequest, "invalid json: "+err.Error())
		return
	}
	if payload.Language != nil && !payload.Language.IsValid() {
		respondError(w, http.StatusBadRequest, "unsupported language")
		return
	}
	if payload.Theme != nil && !payload.Theme.IsValid() {
		respondError(w, http.StatusBadRequest, "unsupported theme")
		return
	}

	ctx := r.Context()
	if payload.Language != nil {
		if err := settings.SaveLanguage(ctx, h.prefs, *payload.Language); err != nil {
			h.respondServerError(w, r, err)
			return
		}
	}
	if payload.Theme != nil {
		if err := settings.SaveTheme(ctx, h.prefs, *payload.Theme); err != nil {
			h.respondServerError(w, r, err)
			return
		}
	}

	prefs, err := h.preferences(r)
	if err != nil {
		h.respondServerError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, preferencesResponse{Preferences: prefs, Dir: prefs.Dir()})
}
