package domain

// ParcelStatus is the delivery state of a parcel.
// Values are the ones exchanged with the back-office API.
type ParcelStatus string

const (
	ParcelInTransit ParcelStatus = "En transit"
	ParcelDelivered ParcelStatus = "Livré"
)

// Valid reports whether s is one of the known statuses.
func (s ParcelStatus) Valid() bool {
	return s == ParcelInTransit || s == ParcelDelivered
}

// Parcel ("colis") is a shipment moving between two cities.
// ID and Code are assigned by the parcel store on creation; Code never
// changes afterwards.
type Parcel struct {
	ID              int64        `json:"id"`
	Code            string       `json:"code"`
	Sender          string       `json:"expediteur"`
	Recipient       string       `json:"destinataire"`
	SenderPhone     *string      `json:"telephoneExpediteur,omitempty"`
	RecipientPhone  *string      `json:"telephoneDestinataire,omitempty"`
	Weight          float64      `json:"poids"`
	Volume          *float64     `json:"volume,omitempty"`
	OriginCity      *string      `json:"villeDepart,omitempty"`
	DestinationCity *string      `json:"villeArrivee,omitempty"`
	Tariff          float64      `json:"tarif"`
	Status          ParcelStatus `json:"statut"`
}

func (p Parcel) RecordID() int64 { return p.ID }

// Route returns the (origin, destination) pair of the parcel.
// Unspecified cities map to the empty string.
func (p Parcel) Route() Route {
	return Route{Origin: deref(p.OriginCity), Destination: deref(p.DestinationCity)}
}

// ParcelDraft carries the caller-supplied fields of a new parcel.
// Required fields are the caller's responsibility; the store accepts
// whatever is given.
type ParcelDraft struct {
	Sender          string
	Recipient       string
	SenderPhone     *string
	RecipientPhone  *string
	Weight          float64
	Volume          *float64
	OriginCity      *string
	DestinationCity *string
	Tariff          float64
	Status          ParcelStatus
}

// ParcelPatch is a field-level partial update. Nil fields are left
// untouched. ID and Code are not patchable.
type ParcelPatch struct {
	Sender          *string       `json:"expediteur,omitempty"`
	Recipient       *string       `json:"destinataire,omitempty"`
	SenderPhone     *string       `json:"telephoneExpediteur,omitempty"`
	RecipientPhone  *string       `json:"telephoneDestinataire,omitempty"`
	Weight          *float64      `json:"poids,omitempty"`
	Volume          *float64      `json:"volume,omitempty"`
	OriginCity      *string       `json:"villeDepart,omitempty"`
	DestinationCity *string       `json:"villeArrivee,omitempty"`
	Tariff          *float64      `json:"tarif,omitempty"`
	Status          *ParcelStatus `json:"statut,omitempty"`
}

// NewParcel builds the stored record for a draft with the given id.
func NewParcel(id int64, d ParcelDraft) Parcel {
	return Parcel{
		ID:              id,
		Code:            ParcelCode(id, d.OriginCity, d.DestinationCity),
		Sender:          d.Sender,
		Recipient:       d.Recipient,
		SenderPhone:     d.SenderPhone,
		RecipientPhone:  d.RecipientPhone,
		Weight:          d.Weight,
		Volume:          d.Volume,
		OriginCity:      d.OriginCity,
		DestinationCity: d.DestinationCity,
		Tariff:          d.Tariff,
		Status:          d.Status,
	}
}

// Apply merges the non-nil fields of patch onto p.
func (patch ParcelPatch) Apply(p *Parcel) {
	if patch.Sender != nil {
		p.Sender = *patch.Sender
	}
	if patch.Recipient != nil {
		p.Recipient = *patch.Recipient
	}
	if patch.SenderPhone != nil {
		p.SenderPhone = patch.SenderPhone
	}
	if patch.RecipientPhone != nil {
		p.RecipientPhone = patch.RecipientPhone
	}
	if patch.Weight != nil {
		p.Weight = *patch.Weight
	}
	if patch.Volume != nil {
		p.Volume = patch.Volume
	}
	if patch.OriginCity != nil {
		p.OriginCity = patch.OriginCity
	}
	if patch.DestinationCity != nil {
		p.DestinationCity = patch.DestinationCity
	}
	if patch.Tariff != nil {
		p.Tariff = *patch.Tariff
	}
	if patch.Status != nil {
		p.Status = *patch.Status
	}
}

// Route is an (origin city, destination city) pair used as a grouping key.
// An unspecified city is the empty string.
type Route struct {
	Origin      string `json:"origin"`
	Destination string `json:"destination"`
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
