// Package metrics exports store activity to Prometheus by subscribing to
// store change notifications.
package metrics

import (
	"colis-service/internal/domain"
	"colis-service/internal/services"
	"colis-service/internal/store"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the Prometheus collectors fed by store observers.
type Metrics struct {
	Mutations     *prometheus.CounterVec
	Records       *prometheus.GaugeVec
	ParcelsStatus *prometheus.GaugeVec
	Revenue       prometheus.Gauge
}

// New creates the collectors and registers them with reg.
func New(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		Mutations: f.NewCounterVec(prometheus.CounterOpts{
			Name: "colis_store_mutations_total",
			Help: "Applied store mutations by store and kind",
		}, []string{"store", "kind"}),
		Records: f.NewGaugeVec(prometheus.GaugeOpts{
			Name: "colis_store_records",
			Help: "Current number of records held by each store",
		}, []string{"store"}),
		ParcelsStatus: f.NewGaugeVec(prometheus.GaugeOpts{
			Name: "colis_parcels",
			Help: "Current number of parcels by status",
		}, []string{"status"}),
		Revenue: f.NewGauge(prometheus.GaugeOpts{
			Name: "colis_parcels_revenue",
			Help: "Sum of the tariffs of all current parcels",
		}),
	}
}

// ObserveParcels keeps the parcel collectors in step with s. The observer
// reads s from inside its notification, so values always reflect the
// post-mutation collection.
func (m *Metrics) ObserveParcels(s *store.ParcelStore) (unsubscribe func()) {
	update := func() {
		parcels := s.All()
		m.Records.WithLabelValues(s.Name()).Set(float64(services.Count(parcels)))
		m.ParcelsStatus.WithLabelValues(string(domain.ParcelInTransit)).Set(float64(services.CountByStatus(parcels, domain.ParcelInTransit)))
		m.ParcelsStatus.WithLabelValues(string(domain.ParcelDelivered)).Set(float64(services.CountByStatus(parcels, domain.ParcelDelivered)))
		m.Revenue.Set(services.ComputeKPIs(parcels, nil).TotalRevenue)
	}
	update()

	return s.Subscribe(func(ch store.Change[domain.Parcel]) {
		m.Mutations.WithLabelValues(ch.Store, string(ch.Kind)).Inc()
		update()
	})
}

func (m *Metrics) ObservePassengers(s *store.PassengerStore) (unsubscribe func()) {
	m.Records.WithLabelValues(s.Name()).Set(float64(s.Len()))

	return s.Subscribe(func(ch store.Change[domain.Passenger]) {
		m.Mutations.WithLabelValues(ch.Store, string(ch.Kind)).Inc()
		m.Records.WithLabelValues(s.Name()).Set(float64(s.Len()))
	})
}
