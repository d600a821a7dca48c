package itembank

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
)

// ErrInvalidItem indicates an item with malformed parameters or content.
var ErrInvalidItem = errors.New("itembank: invalid item")

// ItemType discriminates the content variant of an item.
type ItemType string

const (
	// TypeMultipleChoice is a prompt with a fixed set of options.
	TypeMultipleChoice ItemType = "multiple_choice"

	// TypeCloze is a fill-in-the-blank sentence.
	TypeCloze ItemType = "cloze"

	// TypeListening is an audio prompt with options.
	TypeListening ItemType = "listening"
)

// Content is the presentation payload of an item, keyed by Type. The
// assessment core never inspects it beyond passing it through to the
// UI; only Prompt/Choices/AnswerIndex are meaningful to the bundled
// terminal front-end, and Extra carries any provider-specific fields
// unchanged.
type Content struct {
	// Type selects the variant.
	Type ItemType `json:"type"`

	// Prompt is the question text (or cloze sentence with a blank).
	Prompt string `json:"prompt"`

	// Choices holds the answer options for choice-based variants.
	Choices []string `json:"choices,omitempty"`

	// AnswerIndex is the index into Choices of the correct option.
	AnswerIndex int `json:"answer_index"`

	// AudioURL points at the audio clip for listening items.
	AudioURL string `json:"audio_url,omitempty"`

	// Extra preserves fields this engine does not interpret.
	Extra json.RawMessage `json:"extra,omitempty"`
}

// Item is a calibrated assessment item. Immutable once fetched from
// the bank: the engine reads Difficulty and Discrimination and treats
// Content as opaque.
type Item struct {
	// ID uniquely identifies the item within its bank.
	ID string `json:"id"`

	// Difficulty is the ability level at which a test-taker has a 50%
	// chance of answering correctly. Typically in [-3, 3].
	Difficulty float64 `json:"difficulty"`

	// Discrimination is how sharply correctness probability changes
	// with ability near Difficulty. Positive, typically in (0, 3].
	Discrimination float64 `json:"discrimination"`

	// Content is the presentation payload, opaque to the core.
	Content Content `json:"content"`
}

// Validate checks the item's parameters and content shape.
func (i Item) Validate() error {
	if i.ID == "" {
		return fmt.Errorf("%w: empty id", ErrInvalidItem)
	}
	if i.Discrimination <= 0 {
		return fmt.Errorf("%w: item %s: discrimination %v must be positive", ErrInvalidItem, i.ID, i.Discrimination)
	}
	if math.IsNaN(i.Difficulty) || math.IsInf(i.Difficulty, 0) {
		return fmt.Errorf("%w: item %s: non-finite difficulty", ErrInvalidItem, i.ID)
	}
	if math.IsNaN(i.Discrimination) || math.IsInf(i.Discrimination, 0) {
		return fmt.Errorf("%w: item %s: non-finite discrimination", ErrInvalidItem, i.ID)
	}
	switch i.Content.Type {
	case TypeMultipleChoice, TypeListening:
		if len(i.Content.Choices) < 2 {
			return fmt.Errorf("%w: item %s: %s content needs at least 2 choices", ErrInvalidItem, i.ID, i.Content.Type)
		}
		if i.Content.AnswerIndex < 0 || i.Content.AnswerIndex >= len(i.Content.Choices) {
			return fmt.Errorf("%w: item %s: answer index %d out of range", ErrInvalidItem, i.ID, i.Content.AnswerIndex)
		}
	case TypeCloze:
		if len(i.Content.Choices) > 0 && (i.Content.AnswerIndex < 0 || i.Content.AnswerIndex >= len(i.Content.Choices)) {
			return fmt.Errorf("%w: item %s: answer index %d out of range", ErrInvalidItem, i.ID, i.Content.AnswerIndex)
		}
	case "":
		// Parameter-only items (tests, external banks) are allowed.
	default:
		return fmt.Errorf("%w: item %s: unknown content type %q", ErrInvalidItem, i.ID, i.Content.Type)
	}
	return nil
}
