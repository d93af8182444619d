package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/thomasmccollum2508/studylo-sub000/internal/card"
	"github.com/thomasmccollum2508/studylo-sub000/internal/deck"
)

var importCmd = &cobra.Command{
	Use:   "import <path>",
	Short: "Import a deck from markdown files",
	Long: `Import flashcards from markdown files using Q:/A: blocks.

The path may be a single .md file or a directory, which is walked
recursively. With --git, the argument is a repository URL that is
cloned (or pulled) into the local cache and imported from there.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}

		source := args[0]
		fromGit, _ := cmd.Flags().GetBool("git")

		var cards []card.Card
		if fromGit {
			local, err := repoCachePath(source)
			if err != nil {
				return err
			}
			if err := deck.SyncRepo(source, local, os.Stderr); err != nil {
				return err
			}
			cards, err = deck.LoadDir(local)
			if err != nil {
				return err
			}
		} else {
			info, err := os.Stat(source)
			if err != nil {
				return err
			}
			if info.IsDir() {
				cards, err = deck.LoadDir(source)
			} else {
				cards, err = deck.LoadFile(source)
			}
			if err != nil {
				return err
			}
		}

		if len(cards) == 0 {
			return fmt.Errorf("no cards found in %s", source)
		}

		title, _ := cmd.Flags().GetString("title")
		if title == "" {
			title = defaultTitle(source)
		}

		st, err := openStore(cmd, cfg)
		if err != nil {
			return err
		}
		defer st.Close()

		set, err := st.Sets().Create(cmd.Context(), title, cards)
		if err != nil {
			return err
		}

		fmt.Printf("Imported %d cards into %q (set %s)\n", len(cards), set.Title, set.ID)
		return nil
	},
}

func init() {
	importCmd.Flags().String("title", "", "Title for the new study set (default: derived from the path)")
	importCmd.Flags().Bool("git", false, "Treat the path as a git repository URL")
}

// repoCachePath maps a repository URL to a stable local clone location
// under the data directory.
func repoCachePath(url string) (string, error) {
	dbPath, err := resolveCacheRoot()
	if err != nil {
		return "", err
	}
	name := strings.TrimSuffix(filepath.Base(url), ".git")
	if name == "" || name == "." || name == string(filepath.Separator) {
		return "", fmt.Errorf("cannot derive a directory name from %q", url)
	}
	return filepath.Join(dbPath, "repos", name), nil
}

func resolveCacheRoot() (string, error) {
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		dataHome = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dataHome, "studylo"), nil
}

func defaultTitle(source string) string {
	base := filepath.Base(source)
	base = strings.TrimSuffix(base, filepath.Ext(base))
	base = strings.TrimSuffix(base, ".git")
	if base == "" || base == "." {
		return "Imported study set"
	}
	return base
}
