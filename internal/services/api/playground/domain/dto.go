// Package domain holds transport-facing DTOs for the LLM playground
package domain

// SummarizeInput selects the centre and month to summarize.
// Prompt optionally steers the summary; IncludeImages forwards the period's
// image URLs alongside the notes
type SummarizeInput struct {
	CenterID      string `json:"center_id" validate:"required,uuid"`
	Period        string `json:"period" validate:"required,datetime=2006-01"`
	Prompt        string `json:"prompt,omitempty" validate:"omitempty,max=2000"`
	IncludeImages bool   `json:"include_images,omitempty"`
}

// SummarizeOutput is one playground run
type SummarizeOutput struct {
	RunID      string `json:"run_id"`
	Model      string `json:"model"`
	Summary    string `json:"summary"`
	NotesUsed  int    `json:"notes_used"`
	ImagesUsed int    `json:"images_used"`
}
