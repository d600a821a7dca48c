package itemgen

import (
	"fmt"

	"github.com/lexiq/lexiq/internal/itembank"
)

// Provisional IRT parameters for uncalibrated drafts. The difficulty
// mapping spreads the 1-5 self-assessment over [-2, 2] on the theta
// scale; discrimination starts at 1.0 until response data accumulates.
const (
	provisionalDiscrimination = 1.0
	provisionalDifficultyStep = 1.0
)

// ProvisionalDifficulty maps a 1-5 self-assessed difficulty onto the
// theta scale: 1 → -2, 3 → 0, 5 → 2.
func ProvisionalDifficulty(level int) float64 {
	return float64(level-3) * provisionalDifficultyStep
}

// ToItem converts a validated draft into a bank item with provisional
// IRT parameters under the given ID.
func ToItem(d *Draft, id string) (itembank.Item, error) {
	var itemType itembank.ItemType
	switch d.Format {
	case FormatMultipleChoice:
		itemType = itembank.TypeMultipleChoice
	case FormatCloze:
		itemType = itembank.TypeCloze
	default:
		return itembank.Item{}, fmt.Errorf("itemgen: unknown format %q", d.Format)
	}

	item := itembank.Item{
		ID:             id,
		Difficulty:     ProvisionalDifficulty(d.Difficulty),
		Discrimination: provisionalDiscrimination,
		Content: itembank.Content{
			Type:        itemType,
			Prompt:      d.Prompt,
			Choices:     append([]string(nil), d.Choices...),
			AnswerIndex: d.AnswerIndex,
		},
	}
	if err := item.Validate(); err != nil {
		return itembank.Item{}, err
	}
	return item, nil
}
