package store

import "colis-service/internal/domain"

// ParcelStore is the RecordStore of parcels. It mints ids and codes on
// create and never touches a stored code afterwards.
type ParcelStore struct {
	*RecordStore[domain.Parcel]
}

func NewParcelStore(opts ...Option) *ParcelStore {
	return &ParcelStore{RecordStore: NewRecordStore[domain.Parcel](append([]Option{WithName("parcels")}, opts...)...)}
}

// Create stores a new parcel at the front of the collection and returns it.
func (s *ParcelStore) Create(d domain.ParcelDraft) domain.Parcel {
	return s.Insert(func(id int64) domain.Parcel {
		return domain.NewParcel(id, d)
	})
}

// Update merges patch onto the parcel. It returns false when id is unknown.
func (s *ParcelStore) Update(id int64, patch domain.ParcelPatch) bool {
	return s.Modify(id, patch.Apply)
}

func (s *ParcelStore) MarkDelivered(id int64) bool {
	delivered := domain.ParcelDelivered
	return s.Update(id, domain.ParcelPatch{Status: &delivered})
}

func (s *ParcelStore) InTransit() []domain.Parcel {
	return s.Filter(func(p domain.Parcel) bool { return p.Status == domain.ParcelInTransit })
}
