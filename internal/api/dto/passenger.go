package dto

import "colis-service/internal/domain"

type CreatePassengerRequest struct {
	Name       string  `json:"nom" validate:"required"`
	Phone      string  `json:"telephone" validate:"required"`
	IdentityNo *string `json:"nniPassport"`
}

func (r CreatePassengerRequest) Draft() domain.PassengerDraft {
	return domain.PassengerDraft{Name: r.Name, Phone: r.Phone, IdentityNo: r.IdentityNo}
}

type UpdatePassengerRequest struct {
	Name       *string `json:"nom" validate:"omitempty,min=1"`
	Phone      *string `json:"telephone" validate:"omitempty,min=1"`
	IdentityNo *string `json:"nniPassport"`
}

func (r UpdatePassengerRequest) Patch() domain.PassengerPatch {
	return domain.PassengerPatch{Name: r.Name, Phone: r.Phone, IdentityNo: r.IdentityNo}
}

type ListPassengersResponse struct {
	Passengers []domain.Passenger `json:"passagers"`
}
