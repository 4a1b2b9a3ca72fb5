// Package domain holds DTOs for the activity feed http and service contracts
package domain

import "time"

// ActivityInput selects one centre's activity for a reporting period
type ActivityInput struct {
	CenterID string `json:"center_id" validate:"required,uuid" example:"9be9cc11-64a7-4de0-8c1e-6a11ee3a38b2"`
	Period   string `json:"period" validate:"required,datetime=2006-01" example:"2026-07"`
}

// Image is one shared photo in the feed
// SentAt is the raw wire value; EffectiveAt is the parsed ordering instant,
// absent when neither timestamp parses
type Image struct {
	ID          string     `json:"id"`
	ImageURL    string     `json:"image_url"`
	Caption     string     `json:"caption,omitempty"`
	SentAt      string     `json:"sent_at,omitempty"`
	CreatedAt   string     `json:"created_at"`
	EffectiveAt *time.Time `json:"effective_at,omitempty"`
}

// Note is one free-text field note in the feed
type Note struct {
	ID          string     `json:"id"`
	Body        string     `json:"body"`
	SentAt      string     `json:"sent_at,omitempty"`
	CreatedAt   string     `json:"created_at"`
	EffectiveAt *time.Time `json:"effective_at,omitempty"`
}

// Activity is the assembled feed for one centre and period
type Activity struct {
	CenterID    string  `json:"center_id"`
	Period      string  `json:"period"`
	WindowStart string  `json:"window_start"`
	WindowEnd   string  `json:"window_end"`
	Images      []Image `json:"images"`
	Notes       []Note  `json:"notes"`
}
