package itemgen

import (
	"fmt"
	"strings"
)

const systemPrompt = `You are a language assessment author creating items for an adaptive placement test.

Rules:
- Generate a single item for the given language, skill, and difficulty level.
- The item must have exactly one defensible correct answer. Avoid items where two options are arguably acceptable.
- Provide exactly 4 options. Distractors should reflect plausible learner errors (wrong tense, false friends, common confusions), not random words.
- Choose "cloze" format for grammar and usage skills: a sentence with exactly one ____ blank, filled from the options.
- Choose "multiple_choice" format for vocabulary, comprehension, and identification skills.
- Write instructions and the rationale in English; the assessed content is in the target language.
- Keep the prompt self-contained. No references to pictures, audio, or prior items.
- The rationale must justify the keyed answer and briefly dismiss each distractor.
- Do not repeat any item from the "already drafted" list.`

// buildUserMessage constructs the user message from GenerateInput and Config limits.
func buildUserMessage(input GenerateInput, cfg Config) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Language: %s\n", input.Language)
	fmt.Fprintf(&b, "Skill: %s\n", input.Skill)
	fmt.Fprintf(&b, "Difficulty level: %d of 5\n", input.TargetDifficulty)

	b.WriteString("\nAlready drafted for this skill:\n")
	b.WriteString(buildDedup(input.PriorPrompts, cfg.MaxPriorPrompts))

	return b.String()
}

// buildDedup formats prior prompts for the message, respecting the max
// limit. Returns "None" if there are no prior prompts.
func buildDedup(prior []string, max int) string {
	if len(prior) == 0 {
		return "None"
	}

	// Keep only the most recent N prompts.
	if max > 0 && len(prior) > max {
		prior = prior[len(prior)-max:]
	}

	var b strings.Builder
	for i, p := range prior {
		fmt.Fprintf(&b, "%d. %s\n", i+1, p)
	}
	return strings.TrimRight(b.String(), "\n")
}
