package metrics

import (
	"colis-service/internal/domain"
	"colis-service/internal/store"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestObserveParcels(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := New(reg)
	parcels := store.NewParcelStore()
	parcels.Load([]domain.Parcel{{ID: 1, Tariff: 10, Status: domain.ParcelDelivered}})

	unsubscribe := m.ObserveParcels(parcels)
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Records.WithLabelValues("parcels")))
	assert.Equal(t, 10.0, testutil.ToFloat64(m.Revenue))

	parcels.Create(domain.ParcelDraft{Sender: "a", Recipient: "b", Tariff: 90, Status: domain.ParcelInTransit})
	parcels.Create(domain.ParcelDraft{Sender: "a", Recipient: "b", Tariff: 5, Status: domain.ParcelInTransit})
	parcels.MarkDelivered(2)
	parcels.Delete(3)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.Records.WithLabelValues("parcels")))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.ParcelsStatus.WithLabelValues(string(domain.ParcelDelivered))))
	assert.Equal(t, 0.0, testutil.ToFloat64(m.ParcelsStatus.WithLabelValues(string(domain.ParcelInTransit))))
	assert.Equal(t, 100.0, testutil.ToFloat64(m.Revenue))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.Mutations.WithLabelValues("parcels", "created")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Mutations.WithLabelValues("parcels", "updated")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Mutations.WithLabelValues("parcels", "deleted")))

	unsubscribe()
	parcels.Delete(1)
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Mutations.WithLabelValues("parcels", "deleted")))
}

func TestObservePassengers(t *testing.T) {
	m := New(prometheus.NewRegistry())
	passengers := store.NewPassengerStore()

	m.ObservePassengers(passengers)
	passengers.Create(domain.PassengerDraft{Name: "Aicha", Phone: "36"})
	passengers.Load([]domain.Passenger{{ID: 1}, {ID: 2}, {ID: 3}})

	assert.Equal(t, 3.0, testutil.ToFloat64(m.Records.WithLabelValues("passengers")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Mutations.WithLabelValues("passengers", "loaded")))
}
