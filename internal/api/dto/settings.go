package dto

import (
	"colis-service/internal/domain"
	"colis-service/internal/services"
)

type UpdateSettingsRequest struct {
	PassengerIdentifierType  *string `json:"passengerIdentifierType" validate:"omitempty,oneof=NNI Passport Both"`
	PassengerIdentifierLabel *string `json:"passengerIdentifierLabel" validate:"omitempty,min=1"`
}

func (r UpdateSettingsRequest) Patch() domain.SettingsPatch {
	p := domain.SettingsPatch{PassengerIdentifierLabel: r.PassengerIdentifierLabel}
	if r.PassengerIdentifierType != nil {
		t := domain.IdentifierType(*r.PassengerIdentifierType)
		p.PassengerIdentifierType = &t
	}
	return p
}

type SetIdentifierTypeRequest struct {
	Type string `json:"type" validate:"required,oneof=NNI Passport Both"`
}

type RouteRevenueResponse struct {
	Routes []services.RouteRevenue `json:"trajets"`
}
