package itemgen

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/lexiq/lexiq/internal/llm"
)

// LLMGenerator implements Generator using the LLM provider.
type LLMGenerator struct {
	provider llm.Provider
	config   Config
}

// New creates a new LLMGenerator with the given provider and config.
func New(provider llm.Provider, cfg Config) *LLMGenerator {
	return &LLMGenerator{provider: provider, config: cfg}
}

// draftOutput is the raw LLM response before validation.
type draftOutput struct {
	Prompt      string   `json:"prompt"`
	Format      string   `json:"format"`
	Choices     []string `json:"choices"`
	AnswerIndex int      `json:"answer_index"`
	Difficulty  int      `json:"difficulty"`
	Rationale   string   `json:"rationale"`
}

// Generate produces a single item draft for the given input.
func (g *LLMGenerator) Generate(ctx context.Context, input GenerateInput) (*Draft, error) {
	ctx = llm.WithPurpose(ctx, "item-draft")

	userMsg := buildUserMessage(input, g.config)

	req := llm.Request{
		System: systemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: userMsg},
		},
		Schema:      DraftSchema,
		MaxTokens:   g.config.MaxTokens,
		Temperature: g.config.Temperature,
	}

	resp, err := g.provider.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("LLM generation failed: %w", err)
	}

	var raw draftOutput
	if err := json.Unmarshal(resp.Content, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse LLM response: %w", err)
	}

	d := &Draft{
		Prompt:      raw.Prompt,
		Format:      Format(raw.Format),
		Choices:     raw.Choices,
		AnswerIndex: raw.AnswerIndex,
		Difficulty:  raw.Difficulty,
		Rationale:   raw.Rationale,
		Skill:       input.Skill,
		Language:    input.Language,
	}

	// Run validators in order.
	for _, v := range g.config.Validators {
		if verr := v.Validate(d, input); verr != nil {
			return nil, verr
		}
	}

	return d, nil
}
