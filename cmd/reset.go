package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/thomasmccollum2508/studylo-sub000/internal/learn"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Reset mastery progress for a set",
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

		if cardID, _ := cmd.Flags().GetString("card"); cardID != "" {
			records, err := learn.LoadMastery(ctx, st.Mastery(), set.ID)
			if err != nil {
				return err
			}
			records.Reset(cardID)
			if err := learn.NewStoreSaver(st.Mastery()).SaveMastery(ctx, set.ID, records); err != nil {
				return err
			}
			fmt.Println("Card progress reset.")
			return nil
		}

		if yes, _ := cmd.Flags().GetBool("yes"); !yes {
			answer, err := readLine(fmt.Sprintf("Reset all progress for %q? (y/N): ", set.Title))
			if err != nil {
				return err
			}
			if !strings.EqualFold(strings.TrimSpace(answer), "y") {
				fmt.Println("Aborted.")
				return nil
			}
		}

		if err := st.Mastery().Delete(ctx, set.ID); err != nil {
			return err
		}
		fmt.Printf("Progress for %q reset.\n", set.Title)
		return nil
	},
}

func init() {
	resetCmd.Flags().String("set", "", "Study set ID")
	resetCmd.Flags().String("card", "", "Reset only the card with this identifier")
	resetCmd.Flags().Bool("yes", false, "Skip the confirmation prompt")
}
