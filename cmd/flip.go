package cmd

import (
	"errors"
	"fmt"
	"io"
	"math/rand"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/thomasmccollum2508/studylo-sub000/internal/learn"
	"github.com/thomasmccollum2508/studylo-sub000/internal/mastery"
)

var flipCmd = &cobra.Command{
	Use:   "flip",
	Short: "Flip through cards and self-grade",
	Long: `Flip mode shows each card front, reveals the back on request, and asks
whether you knew it. "Know" and "don't know" feed the same mastery
transitions as learn mode, so a miss here also resets the card's
streak.`,
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

		includeMastered, _ := cmd.Flags().GetBool("include-mastered")

		working := mastery.Initialize(set.Cards, records)
		var queue []mastery.CardWithMastery
		for _, c := range working {
			if includeMastered || c.Record.Status != mastery.StatusMastered {
				queue = append(queue, c)
			}
		}

		if len(queue) == 0 {
			if len(set.Cards) == 0 {
				fmt.Println("This set has no cards.")
			} else {
				fmt.Println("All cards mastered. Use --include-mastered to review them anyway.")
			}
			return nil
		}

		rng := rand.New(rand.NewSource(time.Now().UnixNano()))
		rng.Shuffle(len(queue), func(i, j int) {
			queue[i], queue[j] = queue[j], queue[i]
		})

		saver := learn.NewStoreSaver(st.Mastery())
		fmt.Printf("Flipping through %d cards from %q.\n", len(queue), set.Title)

		for i, c := range queue {
			fmt.Printf("\n[%d/%d] %s\n", i+1, len(queue), c.Card.Front)
			if _, err := readLine("(enter to flip) "); err != nil {
				if errors.Is(err, io.EOF) {
					return nil
				}
				return err
			}
			fmt.Printf("-> %s\n", c.Card.Back)

			outcome, err := askKnow()
			if err != nil {
				if errors.Is(err, io.EOF) {
					return nil
				}
				return err
			}
			if outcome == nil {
				return nil
			}

			records[c.ID] = mastery.Apply(c.Record, *outcome, time.Now())
			if err := saver.SaveMastery(ctx, set.ID, records); err != nil {
				return err
			}
		}

		counts := records.CountByStatus()
		fmt.Printf("\nDone. %d mastered, %d learning.\n",
			counts[mastery.StatusMastered], counts[mastery.StatusLearning])
		return nil
	},
}

func init() {
	flipCmd.Flags().String("set", "", "Study set ID")
	flipCmd.Flags().Bool("include-mastered", false, "Also show mastered cards")
}

// askKnow reads the self-grade. Returns nil outcome when the user
// quits.
func askKnow() (*mastery.Outcome, error) {
	for {
		answer, err := readLine("(k)now it, (d)on't know it, (q)uit: ")
		if err != nil {
			return nil, err
		}
		switch strings.ToLower(strings.TrimSpace(answer)) {
		case "k":
			o := mastery.OutcomeCorrect
			return &o, nil
		case "d":
			o := mastery.OutcomeUnknown
			return &o, nil
		case "q":
			return nil, nil
		}
		fmt.Println("Enter k, d, or q.")
	}
}
