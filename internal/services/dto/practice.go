package dto

import "practicehub_backend/internal/models"

type AddressRequest struct {
	Line1      string `json:"line1" binding:"required"`
	Line2      string `json:"line2,omitempty"`
	City       string `json:"city" binding:"required"`
	State      string `json:"state,omitempty"`
	PostalCode string `json:"postal_code,omitempty"`
	Country    string `json:"country" binding:"required"`
}

type UpdatePracticeRequest struct {
	BusinessName string           `json:"business_name" binding:"required"`
	IsCompany    bool             `json:"is_company"`
	Website      string           `json:"website,omitempty" binding:"omitempty,url"`
	Addresses    []AddressRequest `json:"addresses" binding:"omitempty,dive"`
}

type AddressDTO struct {
	ID         string  `json:"id"`
	Line1      string  `json:"line1"`
	Line2      string  `json:"line2,omitempty"`
	City       string  `json:"city,omitempty"`
	State      string  `json:"state,omitempty"`
	PostalCode string  `json:"postal_code,omitempty"`
	Country    string  `json:"country,omitempty"`
	Latitude   float64 `json:"latitude"`
	Longitude  float64 `json:"longitude"`
	Verified   bool    `json:"verified"`
}

type PracticeDTO struct {
	ID           string       `json:"id"`
	BusinessName string       `json:"business_name"`
	IsCompany    bool         `json:"is_company"`
	Website      string       `json:"website,omitempty"`
	Addresses    []AddressDTO `json:"addresses"`
}

func NewPracticeDTO(practice *models.Practice) *PracticeDTO {
	dto := &PracticeDTO{
		ID:           practice.ID,
		BusinessName: practice.BusinessName,
		IsCompany:    practice.IsCompany,
		Website:      practice.Website,
		Addresses:    make([]AddressDTO, 0, len(practice.Addresses)),
	}
	for _, a := range practice.Addresses {
		dto.Addresses = append(dto.Addresses, AddressDTO{
			ID:         a.ID,
			Line1:      a.Line1,
			Line2:      a.Line2,
			City:       a.City,
			State:      a.State,
			PostalCode: a.PostalCode,
			Country:    a.Country,
			Latitude:   a.Latitude,
			Longitude:  a.Longitude,
			Verified:   a.Verified,
		})
	}
	return dto
}
