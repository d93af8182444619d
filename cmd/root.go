package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/thomasmccollum2508/studylo-sub000/internal/config"
	"github.com/thomasmccollum2508/studylo-sub000/internal/grader"
	"github.com/thomasmccollum2508/studylo-sub000/internal/llm"
	"github.com/thomasmccollum2508/studylo-sub000/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "studylo",
	Short: "AI-assisted flashcard study tool",
	Long:  "Studylo — terminal flashcard trainer with AI grading, deck generation, and mastery tracking.",
}

func Execute() error {
	// Local .env is optional; real environment always wins.
	_ = godotenv.Load()
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides STUDYLO_DB env var)")
	rootCmd.PersistentFlags().String("config", "", "Path to config file")
	rootCmd.PersistentFlags().String("provider", "", "LLM provider (anthropic, openai, gemini, mock)")

	rootCmd.AddCommand(importCmd)
	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(learnCmd)
	rootCmd.AddCommand(flipCmd)
	rootCmd.AddCommand(testCmd)
	rootCmd.AddCommand(setsCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(versionCmd)
}

// loadConfig layers the config file, environment, and flags.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	return config.Load(path, cmd.Flags())
}

// resolveDBPath returns the database path using the --db flag (highest
// priority), then config, then STUDYLO_DB, then the default XDG path.
func resolveDBPath(cmd *cobra.Command, cfg config.Config) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	if cfg.DBPath != "" {
		return cfg.DBPath, store.EnsureDir(cfg.DBPath)
	}
	return store.DefaultDBPath()
}

func openStore(cmd *cobra.Command, cfg config.Config) (*store.Store, error) {
	dbPath, err := resolveDBPath(cmd, cfg)
	if err != nil {
		return nil, fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}
	return st, nil
}

// llmConfig resolves the provider configuration: explicit provider from
// flag/config first, otherwise environment, otherwise key discovery.
func llmConfig(cfg config.Config) (llm.Config, error) {
	lc := llm.ConfigFromEnv()
	if cfg.Provider != "" {
		lc.Provider = cfg.Provider
	}
	if err := lc.Validate(); err != nil {
		if discovered, ok := llm.Discover(); ok && cfg.Provider == "" {
			return discovered, nil
		}
		return llm.Config{}, err
	}
	return lc, nil
}

// newGrader builds the answer grader. Grading calls are never retried;
// without a working provider, grading degrades to literal matching.
func newGrader(ctx context.Context, cfg config.Config, st *store.Store) *grader.Grader {
	lc, err := llmConfig(cfg)
	if err != nil {
		fmt.Fprintln(os.Stderr, "LLM provider not configured:", err)
		fmt.Fprintln(os.Stderr, "Answers will be graded by exact match only.")
		return grader.New(nil, grader.DefaultConfig())
	}
	lc.Retry = llm.NoRetry

	provider, err := llm.NewProvider(ctx, lc, st.Events())
	if err != nil {
		fmt.Fprintln(os.Stderr, "LLM provider unavailable:", err)
		return grader.New(nil, grader.DefaultConfig())
	}
	return grader.New(provider, grader.DefaultConfig())
}
