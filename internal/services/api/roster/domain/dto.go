// Package domain holds DTOs for roster http and service contracts
package domain

// RosterInput selects a centre's roster
type RosterInput struct {
	CenterID   string `json:"center_id" validate:"required,uuid" example:"9be9cc11-64a7-4de0-8c1e-6a11ee3a38b2"`
	ActiveOnly bool   `json:"active_only,omitempty" example:"true"`
}

// Facilitator is one facilitator row
type Facilitator struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Phone    string `json:"phone"`
	JoinedOn string `json:"joined_on"`
	Active   bool   `json:"active"`
}

// Volunteer is one volunteer row
type Volunteer struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Phone    string `json:"phone"`
	JoinedOn string `json:"joined_on"`
	Active   bool   `json:"active"`
}

// Partner is one partner organisation row
type Partner struct {
	ID          string `json:"id"`
	OrgName     string `json:"org_name"`
	ContactName string `json:"contact_name"`
	Phone       string `json:"phone"`
}

// Child is one enrolled child row
// Alias is the short name field notes refer to the child by
type Child struct {
	ID         string `json:"id"`
	FullName   string `json:"full_name"`
	Alias      string `json:"alias"`
	BirthYear  int    `json:"birth_year"`
	EnrolledOn string `json:"enrolled_on"`
	Active     bool   `json:"active"`
}
