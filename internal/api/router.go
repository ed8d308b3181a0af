package api

import (
	"colis-service/internal/api/handlers"
	"colis-service/internal/services"
	"colis-service/internal/store"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Deps are the collaborators the HTTP layer is built from.
type Deps struct {
	Parcels    *store.ParcelStore
	Passengers *store.PassengerStore
	Settings   *store.SettingsStore
	Reports    *services.Reports
	// Gatherer, when set, is served at /metrics.
	Gatherer prometheus.Gatherer
}

// NewRouter wires HTTP handlers with their dependencies and returns an http.Handler.
func NewRouter(d Deps) http.Handler {
	mux := http.NewServeMux()

	parcels := &handlers.ParcelHandler{Store: d.Parcels}
	passengers := &handlers.PassengerHandler{Store: d.Passengers}
	settings := &handlers.SettingsHandler{Store: d.Settings}
	reports := &handlers.ReportsHandler{Reports: d.Reports}

	mux.HandleFunc("/health", handlers.Health)

	mux.HandleFunc("GET /parcels", parcels.List)
	mux.HandleFunc("POST /parcels", parcels.Create)
	mux.HandleFunc("GET /parcels/{id}", parcels.Get)
	mux.HandleFunc("PATCH /parcels/{id}", parcels.Update)
	mux.HandleFunc("DELETE /parcels/{id}", parcels.Delete)
	mux.HandleFunc("POST /parcels/{id}/deliver", parcels.Deliver)

	mux.HandleFunc("GET /passengers", passengers.List)
	mux.HandleFunc("POST /passengers", passengers.Create)
	mux.HandleFunc("GET /passengers/{id}", passengers.Get)
	mux.HandleFunc("PATCH /passengers/{id}", passengers.Update)
	mux.HandleFunc("DELETE /passengers/{id}", passengers.Delete)

	mux.HandleFunc("GET /settings", settings.Get)
	mux.HandleFunc("PATCH /settings", settings.Update)
	mux.HandleFunc("PUT /settings/identifier-type", settings.SetIdentifierType)
	mux.HandleFunc("POST /settings/reset", settings.Reset)

	mux.HandleFunc("GET /reports/kpis", reports.KPIs)
	mux.HandleFunc("GET /reports/routes", reports.Routes)

	if d.Gatherer != nil {
		mux.Handle("GET /metrics", promhttp.HandlerFor(d.Gatherer, promhttp.HandlerOpts{}))
	}

	return requestIDMiddleware(loggingMiddleware(mux))
}
