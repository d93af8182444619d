package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var setsCmd = &cobra.Command{
	Use:   "sets",
	Short: "Manage study sets",
}

var setsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List study sets",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		st, err := openStore(cmd, cfg)
		if err != nil {
			return err
		}
		defer st.Close()

		sets, err := st.Sets().List(cmd.Context())
		if err != nil {
			return err
		}
		if len(sets) == 0 {
			fmt.Println("No study sets yet.")
			return nil
		}
		for _, s := range sets {
			fmt.Printf("%s  %s  (created %s)\n", s.ID, s.Title, s.CreatedAt.Format("2006-01-02"))
		}
		return nil
	},
}

var setsShowCmd = &cobra.Command{
	Use:   "show <set-id>",
	Short: "Show the cards in a set",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		st, err := openStore(cmd, cfg)
		if err != nil {
			return err
		}
		defer st.Close()

		set, err := st.Sets().Get(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		fmt.Printf("%s — %d cards\n", set.Title, len(set.Cards))
		for i, c := range set.Cards {
			fmt.Printf("%3d. Q: %s\n     A: %s\n", i+1, c.Front, c.Back)
		}
		return nil
	},
}

var setsDeleteCmd = &cobra.Command{
	Use:   "delete <set-id>",
	Short: "Delete a set and all its data",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		st, err := openStore(cmd, cfg)
		if err != nil {
			return err
		}
		defer st.Close()

		if err := st.Sets().Delete(cmd.Context(), args[0]); err != nil {
			return err
		}
		fmt.Println("Deleted", args[0])
		return nil
	},
}

func init() {
	setsCmd.AddCommand(setsListCmd)
	setsCmd.AddCommand(setsShowCmd)
	setsCmd.AddCommand(setsDeleteCmd)
}
