package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math/rand"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/thomasmccollum2508/studylo-sub000/internal/learn"
	"github.com/thomasmccollum2508/studylo-sub000/internal/mastery"
)

var learnCmd = &cobra.Command{
	Use:   "learn",
	Short: "Study a set in rounds until every card is mastered",
	Long: `Learn mode serves cards in rounds of up to eight. Each card needs two
correct answers in a row to count as mastered; a miss sends it back to
learning. Progress is saved after every answer.`,
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

		records, err := learn.LoadMastery(ctx, st.Mastery(), set.ID)
		if err != nil {
			return err
		}

		mode, err := questionMode(cmd)
		if err != nil {
			return err
		}

		gr := newGrader(ctx, cfg, st)
		sess := learn.NewSession(
			set.ID, set.Cards, records, mode,
			gr, learn.NewStoreSaver(st.Mastery()),
			rand.NewSource(time.Now().UnixNano()),
		)
		sess.Start()

		if sess.Phase() == learn.PhaseComplete {
			fmt.Println("All cards in this set are mastered. Nothing to study!")
			return nil
		}

		fmt.Printf("Studying %q — %d cards.\n", set.Title, len(set.Cards))
		return runLearnLoop(ctx, sess)
	},
}

func init() {
	learnCmd.Flags().String("set", "", "Study set ID")
	learnCmd.Flags().String("mode", "both", "Question types: choice, typed, or both")
}

func questionMode(cmd *cobra.Command) (learn.QuestionMode, error) {
	mode, _ := cmd.Flags().GetString("mode")
	switch strings.ToLower(mode) {
	case "choice":
		return learn.ModeMultipleChoice, nil
	case "typed":
		return learn.ModeTyped, nil
	case "both", "":
		return learn.ModeBoth, nil
	}
	return 0, fmt.Errorf("unknown mode %q (want choice, typed, or both)", mode)
}

func runLearnLoop(ctx context.Context, sess *learn.Session) error {
	for {
		switch sess.Phase() {
		case learn.PhaseInRound:
			if err := askQuestion(ctx, sess); err != nil {
				if errors.Is(err, io.EOF) {
					sess.Exit()
					return nil
				}
				return err
			}
		case learn.PhaseRoundSummary:
			done, err := roundSummaryMenu(sess)
			if err != nil {
				if errors.Is(err, io.EOF) {
					sess.Exit()
					return nil
				}
				return err
			}
			if done {
				return nil
			}
		case learn.PhaseComplete:
			fmt.Println("\nEvery card is mastered. Session complete!")
			return nil
		}
	}
}

func askQuestion(ctx context.Context, sess *learn.Session) error {
	q := sess.Current()
	fmt.Printf("\n[%d left] %s\n", sess.Remaining(), q.Card.Front)

	var fb learn.Feedback
	var err error

	if q.Kind == learn.KindMultipleChoice {
		for i, choice := range q.Choices {
			fmt.Printf("  %d. %s\n", i+1, choice)
		}
		answer, rerr := readLine("Answer (number, or s to skip): ")
		if rerr != nil {
			return rerr
		}
		if strings.EqualFold(answer, "s") {
			fb, err = sess.SubmitSkip(ctx)
		} else {
			n, cerr := strconv.Atoi(strings.TrimSpace(answer))
			if cerr != nil || n < 1 || n > len(q.Choices) {
				fmt.Println("Enter a choice number.")
				return nil
			}
			fb, err = sess.SubmitChoice(ctx, n-1)
		}
	} else {
		answer, rerr := readLine("Answer (or /skip): ")
		if rerr != nil {
			return rerr
		}
		if strings.EqualFold(strings.TrimSpace(answer), "/skip") {
			fb, err = sess.SubmitSkip(ctx)
		} else {
			fb, err = sess.SubmitTyped(ctx, answer)
		}
	}
	if err != nil {
		return err
	}

	printFeedback(fb)
	return nil
}

func printFeedback(fb learn.Feedback) {
	if fb.Correct {
		if fb.After == mastery.StatusMastered && fb.Before != mastery.StatusMastered {
			fmt.Println("Correct — mastered!")
		} else {
			fmt.Println("Correct!")
		}
		return
	}
	fmt.Printf("Incorrect. The answer is: %s\n", fb.Expected)
	if fb.Before == mastery.StatusMastered {
		fmt.Println("This card is back in learning.")
	}
}

// roundSummaryMenu shows the summary and handles the continuation
// choice. Returns true when the learner exits.
func roundSummaryMenu(sess *learn.Session) (bool, error) {
	sum := sess.Summary()
	fmt.Println("\n--- Round complete ---")
	fmt.Printf("  Newly learned:  %d\n", sum.NewlyLearned)
	fmt.Printf("  Still learning: %d\n", sum.StillLearning)
	fmt.Printf("  Mastered:       %d\n", sum.Mastered)

	counts := sess.Counts()
	fmt.Printf("Overall: %d mastered, %d learning, %d new.\n",
		counts[mastery.StatusMastered], counts[mastery.StatusLearning], counts[mastery.StatusNew])

	for {
		answer, err := readLine("(c)ontinue, (r)eview learning cards, e(x)it: ")
		if err != nil {
			return false, err
		}
		switch strings.ToLower(strings.TrimSpace(answer)) {
		case "c", "":
			return false, sess.Continue()
		case "r":
			return false, sess.ReviewLearning()
		case "x":
			sess.Exit()
			return true, nil
		}
		fmt.Println("Enter c, r, or x.")
	}
}
