// file: internal/ai/enhancer.go
// version: 2.0.0
// guid: 9a0b1c2d-3e4f-5a6b-7c8d-9e0f1a2b3c4d

// Package ai provides the optional AI enhancement pass over heuristically
// merged book metadata. Its absence or failure degrades the merge, never
// aborts it.
package ai

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	"github.com/openai/openai-go/packages/param"
	"github.com/openai/openai-go/shared"
)

// ErrDisabled is returned when the enhancer was constructed without an API
// key or explicitly disabled.
var ErrDisabled = errors.New("AI enhancer is not enabled")

// Enhancement is the validated, coerced result of one AI pass. Empty
// fields mean the model had nothing to add.
type Enhancement struct {
	Title       string
	Subtitle    string
	Author      string
	Narrator    string
	Series      string
	Sequence    string
	Genres      []string
	Year        string
	Description string
}

// rawEnhancement is the permissive intermediate record. Every scalar field
// is coerced through flexString so a model returning numbers or nulls does
// not break decoding.
type rawEnhancement struct {
	Title       flexString  `json:"title"`
	Subtitle    flexString  `json:"subtitle"`
	Author      flexString  `json:"author"`
	Narrator    flexString  `json:"narrator"`
	Series      flexString  `json:"series"`
	Sequence    flexString  `json:"series_number"`
	Genres      flexStrings `json:"genres"`
	Year        flexString  `json:"year"`
	Description flexString  `json:"description"`
}

// Enhancer runs AI metadata enhancement using OpenAI chat completions.
type Enhancer struct {
	client  *openai.Client
	model   string
	enabled bool
}

// NewEnhancer creates an enhancer. With an empty key or enabled=false the
// enhancer is valid but every Enhance call returns ErrDisabled.
func NewEnhancer(apiKey string, enabled bool) *Enhancer {
	if !enabled || apiKey == "" {
		return &Enhancer{enabled: false}
	}
	client := openai.NewClient(option.WithAPIKey(apiKey))
	return &Enhancer{
		client:  &client,
		model:   "gpt-4o-mini",
		enabled: true,
	}
}

// IsEnabled returns whether the enhancer is enabled.
func (e *Enhancer) IsEnabled() bool {
	return e.enabled
}

const systemPrompt = `You are an expert audiobook librarian. You are given the best-known metadata for one audiobook. Improve and complete it.

Rules:
- Preserve the given title and author unless they are obviously malformed.
- Extract the narrator if it is embedded in another field.
- Provide up to three genres for the book.
- Provide a publication year only if you are confident.
- Write a description of at least 100 characters if you know the book.

Return ONLY valid JSON with these fields (omit if not known):
{
  "title": "book title",
  "subtitle": "subtitle",
  "author": "author name",
  "narrator": "narrator name",
  "series": "series name",
  "series_number": "1",
  "genres": ["genre", "genre"],
  "year": "2020",
  "description": "plot summary"
}`

// Enhance sends the current metadata snapshot and returns the coerced
// enhancement record.
func (e *Enhancer) Enhance(ctx context.Context, seed Enhancement) (*Enhancement, error) {
	if !e.enabled {
		return nil, ErrDisabled
	}

	seedJSON, err := json.Marshal(map[string]interface{}{
		"title":       seed.Title,
		"subtitle":    seed.Subtitle,
		"author":      seed.Author,
		"narrator":    seed.Narrator,
		"series":      seed.Series,
		"genres":      seed.Genres,
		"year":        seed.Year,
		"description": seed.Description,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to encode seed metadata: %w", err)
	}

	jsonObjectFormat := shared.NewResponseFormatJSONObjectParam()
	completion, err := e.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(systemPrompt),
			openai.UserMessage("Improve this audiobook metadata:\n\n" + string(seedJSON)),
		},
		Model:       shared.ChatModel(e.model),
		Temperature: param.NewOpt(0.1),
		MaxTokens:   param.NewOpt[int64](800),
		ResponseFormat: openai.ChatCompletionNewParamsResponseFormatUnion{
			OfJSONObject: &jsonObjectFormat,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("OpenAI API call failed: %w", err)
	}
	if len(completion.Choices) == 0 {
		return nil, fmt.Errorf("no response from OpenAI")
	}

	return ParseEnhancement([]byte(completion.Choices[0].Message.Content))
}

// ParseEnhancement decodes a model payload through the permissive
// intermediate record into a validated Enhancement.
func ParseEnhancement(payload []byte) (*Enhancement, error) {
	var raw rawEnhancement
	if err := json.Unmarshal(payload, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse AI response: %w", err)
	}
	return &Enhancement{
		Title:       raw.Title.String(),
		Subtitle:    raw.Subtitle.String(),
		Author:      raw.Author.String(),
		Narrator:    raw.Narrator.String(),
		Series:      raw.Series.String(),
		Sequence:    raw.Sequence.String(),
		Genres:      raw.Genres,
		Year:        raw.Year.String(),
		Description: raw.Description.String(),
	}, nil
}

// TestConnection verifies the API is reachable and responding.
func (e *Enhancer) TestConnection(ctx context.Context) error {
	if !e.enabled {
		return ErrDisabled
	}
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	_, err := e.Enhance(ctx, Enhancement{Title: "The Hobbit", Author: "J.R.R. Tolkien"})
	return err
}
