package itemgen

import "context"

// Generator drafts assessment items using an LLM provider.
type Generator interface {
	// Generate produces a single item draft for the given input.
	// All configured validators are run before returning.
	Generate(ctx context.Context, input GenerateInput) (*Draft, error)
}
