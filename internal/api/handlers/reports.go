package handlers

import (
	"colis-service/internal/api/dto"
	"colis-service/internal/services"
	"net/http"
)

type ReportsHandler struct {
	Reports *services.Reports
}

func (h *ReportsHandler) KPIs(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusOK, h.Reports.KPIs())
}

// Routes returns revenue per route. ?q= filters by city name.
func (h *ReportsHandler) Routes(w http.ResponseWriter, r *http.Request) {
	res := dto.RouteRevenueResponse{Routes: h.Reports.RevenueByRoute(r.URL.Query().Get("q"))}
	writeJSON(w, r, http.StatusOK, res)
}
