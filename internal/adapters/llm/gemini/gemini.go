// Package gemini adapts the Google GenAI SDK for playground summarization
package gemini

import (
	"context"
	"strings"

	perr "fieldnotes/internal/platform/errors"

	"google.golang.org/genai"
)

// Config configures the Gemini client
type Config struct {
	APIKey string
	Model  string
}

// Client wraps a genai client pinned to one model
type Client struct {
	c     *genai.Client
	model string
}

// Open creates a Gemini client. The API key is required
func Open(ctx context.Context, cfg Config) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, perr.InvalidArgf("gemini: api key is required")
	}
	model := cfg.Model
	if model == "" {
		model = "gemini-2.0-flash"
	}
	c, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey: cfg.APIKey,
	})
	if err != nil {
		return nil, perr.Wrapf(err, perr.ErrorCodeUnavailable, "gemini: client init failed")
	}
	return &Client{c: c, model: model}, nil
}

// Model returns the pinned model name
func (c *Client) Model() string { return c.model }

// Summarize sends one generation request built from the prompt, the note
// bodies, and optional image URL references, and returns the summary text
func (c *Client) Summarize(ctx context.Context, prompt string, notes []string, imageURLs []string) (string, error) {
	contents := []*genai.Content{
		genai.NewContentFromText(buildRequestText(prompt, notes, imageURLs), genai.RoleUser),
	}

	result, err := c.c.Models.GenerateContent(ctx, c.model, contents, nil)
	if err != nil {
		return "", perr.Wrapf(err, perr.ErrorCodeUnavailable, "gemini: generate failed")
	}

	text := result.Text()
	if strings.TrimSpace(text) == "" {
		return "", perr.Unavailablef("gemini: empty response")
	}
	return text, nil
}

// buildRequestText flattens the summarization inputs into a single user turn
func buildRequestText(prompt string, notes []string, imageURLs []string) string {
	var b strings.Builder
	b.WriteString(strings.TrimSpace(prompt))
	if len(notes) > 0 {
		b.WriteString("\n\nNotes:\n")
		for _, n := range notes {
			n = strings.TrimSpace(n)
			if n == "" {
				continue
			}
			b.WriteString("- ")
			b.WriteString(n)
			b.WriteString("\n")
		}
	}
	if len(imageURLs) > 0 {
		b.WriteString("\nImages shared this period:\n")
		for _, u := range imageURLs {
			if u == "" {
				continue
			}
			b.WriteString("- ")
			b.WriteString(u)
			b.WriteString("\n")
		}
	}
	return b.String()
}
