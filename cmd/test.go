package cmd

import (
	"errors"
	"fmt"
	"io"
	"math/rand"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/thomasmccollum2508/studylo-sub000/internal/practice"
)

var testCmd = &cobra.Command{
	Use:   "test",
	Short: "Take a practice test on a set",
	Long: `Practice tests mix multiple-choice, true/false, matching, and written
questions. The whole test is built up front and scored at the end;
results do not affect mastery, only the score history.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		st, err := openStore(cmd, cfg)
		if err != nil {
			return err
		}
		defer st.Close()

		set, err := pickSet(cmd, st)
		if err != nil {
			return err
		}
		if len(set.Cards) == 0 {
			return fmt.Errorf("set %q has no cards", set.Title)
		}

		size := cfg.Test.Size
		if n, _ := cmd.Flags().GetInt("size"); n > 0 {
			size = n
		}

		test := practice.Build(set.ID, set.Cards, size, rand.NewSource(time.Now().UnixNano()))
		fmt.Printf("Practice test on %q — %d questions.\n", set.Title, len(test.Questions))

		for i, q := range test.Questions {
			if err := askTestQuestion(test, i, q); err != nil {
				if errors.Is(err, io.EOF) {
					fmt.Println("\nTest abandoned; nothing recorded.")
					return nil
				}
				return err
			}
		}

		fmt.Println("\nScoring...")
		res := test.Score(ctx, newGrader(ctx, cfg, st))

		fmt.Printf("\nScore: %d/%d\n", res.Score, res.Total)
		for i, ok := range res.Correct {
			if ok {
				continue
			}
			q := test.Questions[i]
			if q.Type == practice.TypeMatching {
				fmt.Printf("  %d. matching — at least one pair was wrong\n", i+1)
				continue
			}
			fmt.Printf("  %d. %s — correct answer: %s\n", i+1, q.Card.Front, q.Card.Back)
		}

		if err := st.Results().Append(ctx, set.ID, res.Score, res.Total); err != nil {
			return fmt.Errorf("record result: %w", err)
		}
		return nil
	},
}

func init() {
	testCmd.Flags().String("set", "", "Study set ID")
	testCmd.Flags().Int("size", 0, "Number of questions")
}

func askTestQuestion(test *practice.Test, i int, q practice.Question) error {
	fmt.Printf("\n%d. ", i+1)

	switch q.Type {
	case practice.TypeMultipleChoice:
		fmt.Println(q.Card.Front)
		for j, choice := range q.Choices {
			fmt.Printf("   %d. %s\n", j+1, choice)
		}
		for {
			answer, err := readLine("Answer (number): ")
			if err != nil {
				return err
			}
			n, cerr := strconv.Atoi(strings.TrimSpace(answer))
			if cerr == nil && n >= 1 && n <= len(q.Choices) {
				test.SetAnswer(i, practice.Answer{Choice: n - 1})
				return nil
			}
			fmt.Println("Enter a choice number.")
		}

	case practice.TypeTrueFalse:
		fmt.Printf("True or false: %q answers %q\n", q.ShownBack, q.Card.Front)
		for {
			answer, err := readLine("Answer (t/f): ")
			if err != nil {
				return err
			}
			switch strings.ToLower(strings.TrimSpace(answer)) {
			case "t", "true":
				test.SetAnswer(i, practice.Answer{Bool: true})
				return nil
			case "f", "false":
				test.SetAnswer(i, practice.Answer{Bool: false})
				return nil
			}
			fmt.Println("Enter t or f.")
		}

	case practice.TypeMatching:
		fmt.Println("Match each prompt to an answer.")
		for j, right := range q.Right {
			fmt.Printf("   %c. %s\n", 'a'+j, right)
		}
		matches := make([]int, len(q.Left))
		for j, left := range q.Left {
			for {
				answer, err := readLine(fmt.Sprintf("%s -> (letter): ", left))
				if err != nil {
					return err
				}
				answer = strings.ToLower(strings.TrimSpace(answer))
				if len(answer) == 1 && answer[0] >= 'a' && int(answer[0]-'a') < len(q.Right) {
					matches[j] = int(answer[0] - 'a')
					break
				}
				fmt.Println("Enter a letter.")
			}
		}
		test.SetAnswer(i, practice.Answer{Matches: matches})
		return nil

	case practice.TypeWritten:
		fmt.Println(q.Card.Front)
		answer, err := readLine("Answer: ")
		if err != nil {
			return err
		}
		test.SetAnswer(i, practice.Answer{Text: answer})
		return nil
	}

	return nil
}
