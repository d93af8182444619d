package deck

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/thomasmccollum2508/studylo-sub000/internal/card"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// LoadFile parses one markdown file into a validated, deduplicated
// card list.
func LoadFile(path string) ([]card.Card, error) {
	cards, err := ParseFile(path)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return finalize(cards, path)
}

// LoadDir walks root and parses every markdown file found. Cards from
// all files are merged and deduplicated.
func LoadDir(root string) ([]card.Card, error) {
	var cards []card.Card

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			// Skip dot-directories such as .git.
			if name := d.Name(); name != "." && strings.HasPrefix(name, ".") {
				return filepath.SkipDir
			}
			return nil
		}
		if !strings.EqualFold(filepath.Ext(path), ".md") {
			return nil
		}

		parsed, err := ParseFile(path)
		if err != nil {
			return fmt.Errorf("parse %s: %w", path, err)
		}
		cards = append(cards, parsed...)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return finalize(cards, root)
}

// finalize validates and deduplicates parsed cards. Cards that fail
// validation (e.g. a question with no answer) are rejected as a whole:
// a broken deck file should be fixed, not silently thinned.
func finalize(cards []card.Card, source string) ([]card.Card, error) {
	for i, c := range cards {
		if err := validate.Struct(c); err != nil {
			return nil, fmt.Errorf("%s: card %d (%q) is incomplete: %w", source, i+1, firstLine(c.Front), err)
		}
	}
	return card.Dedupe(cards), nil
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i]
	}
	return s
}
