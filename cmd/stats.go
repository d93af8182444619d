package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/thomasmccollum2508/studylo-sub000/internal/learn"
	"github.com/thomasmccollum2508/studylo-sub000/internal/mastery"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show mastery progress and test history",
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

		working := mastery.Initialize(set.Cards, records)
		counts := make(map[mastery.Status]int)
		for _, c := range working {
			counts[c.Record.Status]++
		}

		fmt.Printf("%s — %d cards\n", set.Title, len(set.Cards))
		fmt.Printf("  Mastered: %d\n", counts[mastery.StatusMastered])
		fmt.Printf("  Learning: %d\n", counts[mastery.StatusLearning])
		fmt.Printf("  New:      %d\n", counts[mastery.StatusNew])

		results, err := st.Results().List(ctx, set.ID)
		if err != nil {
			return err
		}
		if len(results) == 0 {
			fmt.Println("No practice tests taken yet.")
			return nil
		}

		fmt.Println("Practice tests:")
		for _, r := range results {
			pct := 0
			if r.Total > 0 {
				pct = r.Score * 100 / r.Total
			}
			fmt.Printf("  %s  %d/%d (%d%%)\n", r.TakenAt.Format("2006-01-02 15:04"), r.Score, r.Total, pct)
		}
		return nil
	},
}

func init() {
	statsCmd.Flags().String("set", "", "Study set ID")
}
