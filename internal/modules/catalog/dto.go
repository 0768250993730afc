package catalog

import (
	"strconv"

	"beautysalon/internal/domain"
)

// ServiceResponse mirrors the public API shape. Price is rendered with two
// fractional digits, as the site has always shown it.
type ServiceResponse struct {
	ID              int64  `json:"id"`
	Name            string `json:"name"`
	Description     string `json:"description"`
	Price           string `json:"price"`
	Duration        int    `json:"duration"`
	Category        string `json:"category"`
	CategoryDisplay string `json:"category_display"`
	Image           string `json:"image"`
}

// MasterResponse is the full master projection with the capable-service
// list attached.
type MasterResponse struct {
	ID             int64             `json:"id"`
	Name           string            `json:"name"`
	Photo          string            `json:"photo"`
	Specialization string            `json:"specialization"`
	Experience     int               `json:"experience"`
	Bio            string            `json:"bio"`
	Services       []ServiceResponse `json:"services"`
	IsActive       bool              `json:"is_active"`
}

// CategoryGroup is one bucket of the grouped services listing.
type CategoryGroup struct {
	Category        string            `json:"category"`
	CategoryDisplay string            `json:"category_display"`
	Services        []ServiceResponse `json:"services"`
}

func toServiceResponse(s domain.Service) ServiceResponse {
	return ServiceResponse{
		ID:              s.ID,
		Name:            s.Name,
		Description:     s.Description,
		Price:           strconv.FormatFloat(s.Price, 'f', 2, 64),
		Duration:        s.Duration,
		Category:        string(s.Category),
		CategoryDisplay: s.Category.Display(),
		Image:           s.Image,
	}
}

func toMasterResponse(m domain.Master) MasterResponse {
	services := make([]ServiceResponse, 0, len(m.Services))
	for _, s := range m.Services {
		services = append(services, toServiceResponse(s))
	}

	return MasterResponse{
		ID:             m.ID,
		Name:           m.Name,
		Photo:          m.Photo,
		Specialization: m.Specialization,
		Experience:     m.Experience,
		Bio:            m.Bio,
		Services:       services,
		IsActive:       m.IsActive,
	}
}
