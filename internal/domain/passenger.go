package domain

// Passenger ("passager") is a traveller record. The identifier document is
// either a national id (NNI) or a passport number, per Settings.
type Passenger struct {
	ID         int64   `json:"id"`
	Name       string  `json:"nom"`
	Phone      string  `json:"telephone"`
	IdentityNo *string `json:"nniPassport,omitempty"`
}

func (p Passenger) RecordID() int64 { return p.ID }

type PassengerDraft struct {
	Name       string
	Phone      string
	IdentityNo *string
}

type PassengerPatch struct {
	Name       *string `json:"nom,omitempty"`
	Phone      *string `json:"telephone,omitempty"`
	IdentityNo *string `json:"nniPassport,omitempty"`
}

func NewPassenger(id int64, d PassengerDraft) Passenger {
	return Passenger{ID: id, Name: d.Name, Phone: d.Phone, IdentityNo: d.IdentityNo}
}

// Apply merges the non-nil fields of patch onto p.
func (patch PassengerPatch) Apply(p *Passenger) {
	if patch.Name != nil {
		p.Name = *patch.Name
	}
	if patch.Phone != nil {
		p.Phone = *patch.Phone
	}
	if patch.IdentityNo != nil {
		p.IdentityNo = patch.IdentityNo
	}
}
