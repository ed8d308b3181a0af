package services

import (
	"colis-service/internal/domain"
	"slices"
	"strings"
)

// Count returns the number of records.
func Count[T any](records []T) int {
	return len(records)
}

// CountByStatus returns the number of parcels in the given status.
func CountByStatus(parcels []domain.Parcel, status domain.ParcelStatus) int {
	n := 0
	for _, p := range parcels {
		if p.Status == status {
			n++
		}
	}
	return n
}

// RouteRevenue is the tariff total of the parcels sharing a route.
type RouteRevenue struct {
	domain.Route
	Parcels int     `json:"parcels"`
	Revenue float64 `json:"revenue"`
}

// RevenueByRoute groups parcels by exact (origin, destination) and sums
// their tariffs. Parcels without a city fall in the group whose
// corresponding key is the empty string. Groups are ordered by revenue,
// highest first, then by origin and destination.
func RevenueByRoute(parcels []domain.Parcel) []RouteRevenue {
	idx := make(map[domain.Route]int)
	out := make([]RouteRevenue, 0)

	for _, p := range parcels {
		r := p.Route()
		i, ok := idx[r]
		if !ok {
			i = len(out)
			idx[r] = i
			out = append(out, RouteRevenue{Route: r})
		}
		out[i].Parcels++
		out[i].Revenue += p.Tariff
	}

	slices.SortStableFunc(out, func(a, b RouteRevenue) int {
		switch {
		case a.Revenue > b.Revenue:
			return -1
		case a.Revenue < b.Revenue:
			return 1
		}
		if c := strings.Compare(a.Origin, b.Origin); c != 0 {
			return c
		}
		return strings.Compare(a.Destination, b.Destination)
	})

	return out
}

// FilterRoutes keeps the routes whose origin or destination contains
// query, ignoring case. A blank query keeps everything.
func FilterRoutes(routes []RouteRevenue, query string) []RouteRevenue {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return routes
	}

	out := make([]RouteRevenue, 0, len(routes))
	for _, r := range routes {
		if strings.Contains(strings.ToLower(r.Origin), q) || strings.Contains(strings.ToLower(r.Destination), q) {
			out = append(out, r)
		}
	}
	return out
}

// KPIs is the summary shown on the reports page.
type KPIs struct {
	TotalParcels     int     `json:"totalColis"`
	InTransit        int     `json:"enTransit"`
	Delivered        int     `json:"livres"`
	TotalPassengers  int     `json:"totalPassagers"`
	TotalRevenue     float64 `json:"revenuTotal"`
	DeliveredRevenue float64 `json:"revenuLivre"`
	AverageTariff    float64 `json:"tarifMoyen"`
	TotalWeight      float64 `json:"poidsTotal"`
	Routes           int     `json:"trajets"`
}

// ComputeKPIs summarizes the parcel and passenger collections.
func ComputeKPIs(parcels []domain.Parcel, passengers []domain.Passenger) KPIs {
	k := KPIs{
		TotalParcels:    Count(parcels),
		InTransit:       CountByStatus(parcels, domain.ParcelInTransit),
		Delivered:       CountByStatus(parcels, domain.ParcelDelivered),
		TotalPassengers: Count(passengers),
		Routes:          len(RevenueByRoute(parcels)),
	}

	for _, p := range parcels {
		k.TotalRevenue += p.Tariff
		k.TotalWeight += p.Weight
		if p.Status == domain.ParcelDelivered {
			k.DeliveredRevenue += p.Tariff
		}
	}
	if k.TotalParcels > 0 {
		k.AverageTariff = k.TotalRevenue / float64(k.TotalParcels)
	}

	return k
}
