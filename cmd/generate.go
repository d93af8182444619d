package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/thomasmccollum2508/studylo-sub000/internal/cardgen"
	"github.com/thomasmccollum2508/studylo-sub000/internal/llm"
)

var generateCmd = &cobra.Command{
	Use:   "generate <notes-file>",
	Short: "Generate a study set from notes using AI",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}

		notes, err := os.ReadFile(args[0])
		if err != nil {
			return err
		}

		st, err := openStore(cmd, cfg)
		if err != nil {
			return err
		}
		defer st.Close()

		lc, err := llmConfig(cfg)
		if err != nil {
			return fmt.Errorf("card generation needs a configured LLM provider: %w", err)
		}

		provider, err := llm.NewProvider(ctx, lc, st.Events())
		if err != nil {
			return err
		}

		genCfg := cardgen.Config{
			CardCount:   cfg.Generate.CardCount,
			MaxTokens:   cfg.Generate.MaxTokens,
			Temperature: cfg.Generate.Temperature,
		}
		if n, _ := cmd.Flags().GetInt("count"); n > 0 {
			genCfg.CardCount = n
		}

		fmt.Println("Generating cards...")
		generated, err := cardgen.New(provider, genCfg).Generate(ctx, string(notes))
		if err != nil {
			return err
		}

		title, _ := cmd.Flags().GetString("title")
		if title == "" {
			title = generated.Title
		}

		set, err := st.Sets().Create(ctx, title, generated.Cards)
		if err != nil {
			return err
		}

		fmt.Printf("Generated %d cards into %q (set %s)\n", len(generated.Cards), set.Title, set.ID)
		return nil
	},
}

func init() {
	generateCmd.Flags().String("title", "", "Title for the new study set (default: model-suggested)")
	generateCmd.Flags().Int("count", 0, "How many cards to generate")
}
