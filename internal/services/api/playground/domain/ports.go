package domain

import "context"

// ServicePort defines the service contract for the playground
type ServicePort interface {
	Summarize(ctx context.Context, in SummarizeInput) (SummarizeOutput, error)
}

// Summarizer is the LLM seam; the Gemini adapter satisfies it
type Summarizer interface {
	Model() string
	Summarize(ctx context.Context, prompt string, notes, imageURLs []string) (string, error)
}
