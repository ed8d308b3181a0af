package handlers

import (
	"colis-service/internal/api/dto"
	"colis-service/internal/domain"
	"colis-service/internal/store"
	"net/http"
)

type SettingsHandler struct {
	Store *store.SettingsStore
}

func (h *SettingsHandler) Get(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusOK, h.Store.Current())
}

func (h *SettingsHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req dto.UpdateSettingsRequest
	if !decodeBody(w, r, &req) {
		return
	}
	writeJSON(w, r, http.StatusOK, h.Store.Update(r.Context(), req.Patch()))
}

// SetIdentifierType sets the identifier type and derives its label.
func (h *SettingsHandler) SetIdentifierType(w http.ResponseWriter, r *http.Request) {
	var req dto.SetIdentifierTypeRequest
	if !decodeBody(w, r, &req) {
		return
	}
	writeJSON(w, r, http.StatusOK, h.Store.SetPassengerIdentifierType(r.Context(), domain.IdentifierType(req.Type)))
}

func (h *SettingsHandler) Reset(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusOK, h.Store.ResetToDefaults(r.Context()))
}
