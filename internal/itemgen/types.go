package itemgen

// Draft represents a generated assessment item awaiting review and
// calibration. Its IRT parameters are provisional until enough real
// responses accumulate.
type Draft struct {
	// Prompt is the text shown to the test-taker.
	// For cloze items it contains exactly one ____ blank,
	// e.g. "She ____ to the store every morning."
	Prompt string

	// Format indicates how the test-taker answers this item.
	Format Format

	// Choices contains exactly 4 options, one of which is correct.
	Choices []string

	// AnswerIndex is the position of the correct option in Choices.
	AnswerIndex int

	// Difficulty is the LLM's self-assessed difficulty (1-5).
	// Mapped onto a provisional theta-scale difficulty by ToItem.
	Difficulty int

	// Rationale is a brief explanation of why the keyed answer is
	// correct, shown to reviewers rather than test-takers.
	Rationale string

	// Skill is the target skill the item was generated for.
	Skill string

	// Language is the assessed language.
	Language string
}

// Format describes how the test-taker provides their answer.
type Format string

const (
	// FormatMultipleChoice means the test-taker picks from 4 choices.
	FormatMultipleChoice Format = "multiple_choice"

	// FormatCloze means the item has a sentence with one blank and the
	// test-taker picks the word that fills it from 4 choices.
	FormatCloze Format = "cloze"
)

// GenerateInput holds all context needed to draft an item.
type GenerateInput struct {
	// Language is the assessed language, e.g. "Spanish".
	Language string

	// Skill is the target skill, e.g. "past tense conjugation" or
	// "food vocabulary".
	Skill string

	// TargetDifficulty is the requested difficulty (1-5). The
	// generator asks for this level; the LLM's self-assessment in
	// Draft.Difficulty may differ.
	TargetDifficulty int

	// PriorPrompts contains the prompts of items already drafted in
	// this batch for this skill. Used for deduplication in the prompt.
	PriorPrompts []string
}
