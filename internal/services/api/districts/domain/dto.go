// Package domain holds DTOs for districts http and service contracts
package domain

// ListInput filters the district list
type ListInput struct {
	Name string `json:"name,omitempty" validate:"omitempty,min=1,max=200" example:"Khammam"`
}

// GetInput selects one district
type GetInput struct {
	DistrictID string `json:"district_id" validate:"required,uuid" example:"53c5c5a1-2f5a-4c39-9a9c-0a5d7d3f1b11"`
}

// District is one row of the district list
type District struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	State       string `json:"state"`
	CenterCount int    `json:"center_count"`
	CreatedAt   string `json:"created_at"`
}

// Detail is a single district with roll-up counts
type Detail struct {
	District
	ActiveCenters int `json:"active_centers"`
}
