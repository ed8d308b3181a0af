package dto

import "colis-service/internal/domain"

type CreateParcelRequest struct {
	Sender          string   `json:"expediteur" validate:"required"`
	Recipient       string   `json:"destinataire" validate:"required"`
	SenderPhone     *string  `json:"telephoneExpediteur"`
	RecipientPhone  *string  `json:"telephoneDestinataire"`
	Weight          *float64 `json:"poids" validate:"required,gte=0"`
	Volume          *float64 `json:"volume" validate:"omitempty,gte=0"`
	OriginCity      *string  `json:"villeDepart"`
	DestinationCity *string  `json:"villeArrivee"`
	Tariff          *float64 `json:"tarif" validate:"required,gte=0"`
	Status          string   `json:"statut" validate:"required,oneof='En transit' 'Livré'"`
}

func (r CreateParcelRequest) Draft() domain.ParcelDraft {
	return domain.ParcelDraft{
		Sender:          r.Sender,
		Recipient:       r.Recipient,
		SenderPhone:     r.SenderPhone,
		RecipientPhone:  r.RecipientPhone,
		Weight:          *r.Weight,
		Volume:          r.Volume,
		OriginCity:      r.OriginCity,
		DestinationCity: r.DestinationCity,
		Tariff:          *r.Tariff,
		Status:          domain.ParcelStatus(r.Status),
	}
}

type UpdateParcelRequest struct {
	Sender          *string  `json:"expediteur" validate:"omitempty,min=1"`
	Recipient       *string  `json:"destinataire" validate:"omitempty,min=1"`
	SenderPhone     *string  `json:"telephoneExpediteur"`
	RecipientPhone  *string  `json:"telephoneDestinataire"`
	Weight          *float64 `json:"poids" validate:"omitempty,gte=0"`
	Volume          *float64 `json:"volume" validate:"omitempty,gte=0"`
	OriginCity      *string  `json:"villeDepart"`
	DestinationCity *string  `json:"villeArrivee"`
	Tariff          *float64 `json:"tarif" validate:"omitempty,gte=0"`
	Status          *string  `json:"statut" validate:"omitempty,oneof='En transit' 'Livré'"`
}

func (r UpdateParcelRequest) Patch() domain.ParcelPatch {
	p := domain.ParcelPatch{
		Sender:          r.Sender,
		Recipient:       r.Recipient,
		SenderPhone:     r.SenderPhone,
		RecipientPhone:  r.RecipientPhone,
		Weight:          r.Weight,
		Volume:          r.Volume,
		OriginCity:      r.OriginCity,
		DestinationCity: r.DestinationCity,
		Tariff:          r.Tariff,
	}
	if r.Status != nil {
		s := domain.ParcelStatus(*r.Status)
		p.Status = &s
	}
	return p
}

type ListParcelsResponse struct {
	Parcels []domain.Parcel `json:"colis"`
}
