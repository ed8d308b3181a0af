package services

import (
	"colis-service/internal/domain"
	"colis-service/internal/store"
	"sync"
)

// Reports serves the derived views over the parcel and passenger stores.
// Views are recomputed from a store snapshot on read; a result is reused
// only while both store versions are unchanged, so it can never outlive
// a mutation.
type Reports struct {
	parcels    *store.ParcelStore
	passengers *store.PassengerStore

	mu   sync.Mutex
	memo reportMemo
}

type reportMemo struct {
	valid            bool
	parcelVersion    uint64
	passengerVersion uint64
	kpis             KPIs
	revenueByRoute   []RouteRevenue
}

func NewReports(parcels *store.ParcelStore, passengers *store.PassengerStore) *Reports {
	return &Reports{parcels: parcels, passengers: passengers}
}

func (r *Reports) KPIs() KPIs {
	return r.current().kpis
}

// RevenueByRoute returns the route revenue table, filtered by query.
func (r *Reports) RevenueByRoute(query string) []RouteRevenue {
	routes := r.current().revenueByRoute
	out := make([]RouteRevenue, len(routes))
	copy(out, routes)
	return FilterRoutes(out, query)
}

func (r *Reports) InTransitCount() int {
	return r.current().kpis.InTransit
}

func (r *Reports) DeliveredCount() int {
	return r.current().kpis.Delivered
}

func (r *Reports) current() reportMemo {
	parcels, pv := r.parcels.Snapshot()

	var passengers []domain.Passenger
	var qv uint64
	if r.passengers != nil {
		passengers, qv = r.passengers.Snapshot()
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if r.memo.valid && r.memo.parcelVersion == pv && r.memo.passengerVersion == qv {
		return r.memo
	}

	r.memo = reportMemo{
		valid:            true,
		parcelVersion:    pv,
		passengerVersion: qv,
		kpis:             ComputeKPIs(parcels, passengers),
		revenueByRoute:   RevenueByRoute(parcels),
	}
	return r.memo
}
