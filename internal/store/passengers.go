package store

import (
	"colis-service/internal/domain"
	"strings"
)

type PassengerStore struct {
	*RecordStore[domain.Passenger]
}

func NewPassengerStore(opts ...Option) *PassengerStore {
	return &PassengerStore{RecordStore: NewRecordStore[domain.Passenger](append([]Option{WithName("passengers")}, opts...)...)}
}

func (s *PassengerStore) Create(d domain.PassengerDraft) domain.Passenger {
	return s.Insert(func(id int64) domain.Passenger {
		return domain.NewPassenger(id, d)
	})
}

func (s *PassengerStore) Update(id int64, patch domain.PassengerPatch) bool {
	return s.Modify(id, patch.Apply)
}

// Search returns passengers whose name, phone or identity document
// contains query, ignoring case. A blank query matches everyone.
func (s *PassengerStore) Search(query string) []domain.Passenger {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return s.All()
	}
	return s.Filter(func(p domain.Passenger) bool {
		if strings.Contains(strings.ToLower(p.Name), q) || strings.Contains(strings.ToLower(p.Phone), q) {
			return true
		}
		return p.IdentityNo != nil && strings.Contains(strings.ToLower(*p.IdentityNo), q)
	})
}
