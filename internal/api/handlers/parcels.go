package handlers

import (
	"colis-service/internal/api/dto"
	"colis-service/internal/domain"
	"colis-service/internal/store"
	"net/http"
)

// ParcelHandler exposes the parcel store over HTTP.
type ParcelHandler struct {
	Store *store.ParcelStore
}

// List returns all parcels, newest first. ?statut= narrows by status.
func (h *ParcelHandler) List(w http.ResponseWriter, r *http.Request) {
	parcels := h.Store.All()
	if status := r.URL.Query().Get("statut"); status != "" {
		s := domain.ParcelStatus(status)
		if !s.Valid() {
			writeError(w, r, http.StatusBadRequest, "unknown statut")
			return
		}
		parcels = h.Store.Filter(func(p domain.Parcel) bool { return p.Status == s })
	}

	writeJSON(w, r, http.StatusOK, dto.ListParcelsResponse{Parcels: parcels})
}

func (h *ParcelHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	p, found := h.Store.FindByID(id)
	if !found {
		writeError(w, r, http.StatusNotFound, "colis not found")
		return
	}
	writeJSON(w, r, http.StatusOK, p)
}

func (h *ParcelHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateParcelRequest
	if !decodeBody(w, r, &req) {
		return
	}

	writeJSON(w, r, http.StatusCreated, h.Store.Create(req.Draft()))
}

func (h *ParcelHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var req dto.UpdateParcelRequest
	if !decodeBody(w, r, &req) {
		return
	}

	if !h.Store.Update(id, req.Patch()) {
		writeError(w, r, http.StatusNotFound, "colis not found")
		return
	}
	p, _ := h.Store.FindByID(id)
	writeJSON(w, r, http.StatusOK, p)
}

func (h *ParcelHandler) Deliver(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	if !h.Store.MarkDelivered(id) {
		writeError(w, r, http.StatusNotFound, "colis not found")
		return
	}
	p, _ := h.Store.FindByID(id)
	writeJSON(w, r, http.StatusOK, p)
}

func (h *ParcelHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	if !h.Store.Delete(id) {
		writeError(w, r, http.StatusNotFound, "colis not found")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
