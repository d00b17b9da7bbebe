package dto

import "staybook/internal/domain/property"

type CreatePropertyRequest struct {
	Name              string  `json:"name"`
	Description       string  `json:"description"`
	MaxGuests         int     `json:"max_guests"`
	BasePricePerNight float64 `json:"base_price_per_night"`
}

type PropertyResponse struct {
	ID                string  `json:"id"`
	Name              string  `json:"name"`
	Description       string  `json:"description"`
	MaxGuests         int     `json:"max_guests"`
	BasePricePerNight float64 `json:"base_price_per_night"`
}

func NewPropertyResponse(p *property.Property) PropertyResponse {
	return PropertyResponse{
		ID:                p.ID,
		Name:              p.Name,
		Description:       p.Description,
		MaxGuests:         p.MaxGuests,
		BasePricePerNight: p.BasePricePerNight,
	}
}
