// Package domain holds DTOs for centers http and service contracts
package domain

// ListInput filters the centre list
type ListInput struct {
	DistrictID string `json:"district_id,omitempty" validate:"omitempty,uuid" example:"53c5c5a1-2f5a-4c39-9a9c-0a5d7d3f1b11"`
	Status     string `json:"status,omitempty" validate:"omitempty,oneof=active inactive" example:"active"`
}

// GetInput selects one centre
type GetInput struct {
	CenterID string `json:"center_id" validate:"required,uuid" example:"9be9cc11-64a7-4de0-8c1e-6a11ee3a38b2"`
}

// Center is one row of the centre list
type Center struct {
	ID         string `json:"id"`
	DistrictID string `json:"district_id"`
	Name       string `json:"name"`
	Village    string `json:"village"`
	Status     string `json:"status"`
	CreatedAt  string `json:"created_at"`
}

// Detail is a single centre with district name and roster counts
type Detail struct {
	Center
	DistrictName string `json:"district_name"`
	Facilitators int    `json:"facilitators"`
	Volunteers   int    `json:"volunteers"`
	Partners     int    `json:"partners"`
	Children     int    `json:"children"`
}
