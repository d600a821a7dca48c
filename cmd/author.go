package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/lexiq/lexiq/internal/itembank"
	"github.com/lexiq/lexiq/internal/itemgen"
	"github.com/lexiq/lexiq/internal/llm"
	"github.com/lexiq/lexiq/internal/store"
	"github.com/spf13/cobra"
)

var authorCmd = &cobra.Command{
	Use:   "author",
	Short: "Draft new assessment items with an LLM",
	Long: `Generate candidate items for a skill and print them as a bank file.

Drafted items carry provisional IRT parameters and need review and
calibration before they are trusted. Pipe the output to a file and load
it with --bank once reviewed.`,
	RunE: runAuthor,
}

func init() {
	authorCmd.Flags().String("language", "Spanish", "Assessed language")
	authorCmd.Flags().String("skill", "", "Target skill, e.g. \"past tense conjugation\" (required)")
	authorCmd.Flags().Int("difficulty", 3, "Target difficulty 1-5")
	authorCmd.Flags().IntP("count", "n", 5, "Number of items to draft")
	_ = authorCmd.MarkFlagRequired("skill")
}

func runAuthor(cmd *cobra.Command, args []string) error {
	language, _ := cmd.Flags().GetString("language")
	skill, _ := cmd.Flags().GetString("skill")
	difficulty, _ := cmd.Flags().GetInt("difficulty")
	count, _ := cmd.Flags().GetInt("count")

	if difficulty < 1 || difficulty > 5 {
		return fmt.Errorf("difficulty %d out of range 1-5", difficulty)
	}

	ctx := context.Background()

	// Open the store so LLM calls land in `lexiq llm` stats.
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve database path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	defer st.Close()

	eventRepo, err := st.EventRepo()
	if err != nil {
		return fmt.Errorf("open event repo: %w", err)
	}

	provider, err := llm.NewProviderFromEnv(ctx, eventRepo)
	if err != nil {
		return fmt.Errorf("LLM provider: %w", err)
	}

	gen := itemgen.New(provider, itemgen.DefaultConfig())

	var items []itembank.Item
	var priorPrompts []string
	for i := 0; i < count; i++ {
		fmt.Fprintf(os.Stderr, "Drafting item %d/%d...\n", i+1, count)

		draft, err := gen.Generate(ctx, itemgen.GenerateInput{
			Language:         language,
			Skill:            skill,
			TargetDifficulty: difficulty,
			PriorPrompts:     priorPrompts,
		})
		if err != nil {
			return fmt.Errorf("draft item %d: %w", i+1, err)
		}
		priorPrompts = append(priorPrompts, draft.Prompt)

		id := fmt.Sprintf("draft-%s", uuid.NewString()[:8])
		item, err := itemgen.ToItem(draft, id)
		if err != nil {
			return fmt.Errorf("convert draft %d: %w", i+1, err)
		}
		items = append(items, item)

		fmt.Fprintf(os.Stderr, "  %s\n  key: %s\n  why: %s\n\n",
			draft.Prompt, draft.Choices[draft.AnswerIndex], draft.Rationale)
	}

	bank := itembank.Bank{
		Name:     fmt.Sprintf("%s drafts: %s", language, skill),
		Language: strings.ToLower(language),
		Items:    items,
	}
	out, err := json.MarshalIndent(bank, "", "  ")
	if err != nil {
		return fmt.Errorf("encode bank: %w", err)
	}
	fmt.Println(string(out))
	return nil
}
