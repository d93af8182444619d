package deck

import (
	"bufio"
	"io"
	"os"
	"strings"

	"github.com/thomasmccollum2508/studylo-sub000/internal/card"
)

// Markdown deck format: a card is a "Q:" block followed by an "A:"
// block, each of which may span multiple lines. "---" or the next "Q:"
// ends the card. Anything outside a block is ignored, so decks can live
// inside ordinary notes files.
const (
	frontPrefix = "Q:"
	backPrefix  = "A:"
	separator   = "---"
)

type parseState int

const (
	seeking parseState = iota
	readingFront
	readingBack
)

// ParseFile reads a markdown file and extracts all cards.
func ParseFile(path string) ([]card.Card, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return Parse(f)
}

// Parse reads markdown from r and extracts all cards. Cards without a
// front side are dropped.
func Parse(r io.Reader) ([]card.Card, error) {
	scanner := bufio.NewScanner(r)

	var cards []card.Card
	var current card.Card
	var block []string
	state := seeking

	closeBlock := func() {
		if len(block) == 0 {
			return
		}
		content := strings.Join(block, "\n")
		switch state {
		case readingFront:
			current.Front = content
		case readingBack:
			current.Back = content
		}
		block = nil
	}

	finishCard := func() {
		closeBlock()
		if strings.TrimSpace(current.Front) != "" {
			cards = append(cards, current)
		}
		current = card.Card{}
		state = seeking
	}

	for scanner.Scan() {
		line := scanner.Text()

		if line == separator {
			finishCard()
			continue
		}

		isFront := strings.HasPrefix(line, frontPrefix)
		isBack := strings.HasPrefix(line, backPrefix)

		switch {
		case isFront:
			if state != seeking {
				finishCard()
			}
			closeBlock()
			state = readingFront
			block = append(block, stripPrefix(line, frontPrefix))
		case isBack:
			closeBlock()
			state = readingBack
			block = append(block, stripPrefix(line, backPrefix))
		case state != seeking:
			block = append(block, line)
		}
	}

	finishCard()

	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return cards, nil
}

func stripPrefix(line, prefix string) string {
	content := line[len(prefix):]
	return strings.TrimPrefix(content, " ")
}
