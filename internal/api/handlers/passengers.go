package handlers

import (
	"colis-service/internal/api/dto"
	"colis-service/internal/store"
	"net/http"
)

// PassengerHandler exposes the passenger store over HTTP.
type PassengerHandler struct {
	Store *store.PassengerStore
}

// List returns passengers, newest first. ?q= searches name, phone and
// identity document.
func (h *PassengerHandler) List(w http.ResponseWriter, r *http.Request) {
	res := dto.ListPassengersResponse{Passengers: h.Store.Search(r.URL.Query().Get("q"))}
	writeJSON(w, r, http.StatusOK, res)
}

func (h *PassengerHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	p, found := h.Store.FindByID(id)
	if !found {
		writeError(w, r, http.StatusNotFound, "passager not found")
		return
	}
	writeJSON(w, r, http.StatusOK, p)
}

func (h *PassengerHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreatePassengerRequest
	if !decodeBody(w, r, &req) {
		return
	}

	writeJSON(w, r, http.StatusCreated, h.Store.Create(req.Draft()))
}

func (h *PassengerHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var req dto.UpdatePassengerRequest
	if !decodeBody(w, r, &req) {
		return
	}

	if !h.Store.Update(id, req.Patch()) {
		writeError(w, r, http.StatusNotFound, "passager not found")
		return
	}
	p, _ := h.Store.FindByID(id)
	writeJSON(w, r, http.StatusOK, p)
}

func (h *PassengerHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	if !h.Store.Delete(id) {
		writeError(w, r, http.StatusNotFound, "passager not found")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
