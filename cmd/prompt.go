package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/thomasmccollum2508/studylo-sub000/internal/store"
)

var stdin = bufio.NewReader(os.Stdin)

// readLine prompts and reads one trimmed line from stdin.
func readLine(prompt string) (string, error) {
	fmt.Print(prompt)
	line, err := stdin.ReadString('\n')
	if err != nil {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// pickSet resolves which study set a command operates on: the --set
// flag if given, the only set if there is exactly one, otherwise an
// interactive pick from the list.
func pickSet(cmd *cobra.Command, st *store.Store) (*store.StudySet, error) {
	ctx := cmd.Context()

	if id, _ := cmd.Flags().GetString("set"); id != "" {
		return st.Sets().Get(ctx, id)
	}

	sets, err := st.Sets().List(ctx)
	if err != nil {
		return nil, err
	}
	switch len(sets) {
	case 0:
		return nil, fmt.Errorf("no study sets yet — run 'studylo import' or 'studylo generate' first")
	case 1:
		return st.Sets().Get(ctx, sets[0].ID)
	}

	fmt.Println("Study sets:")
	for i, s := range sets {
		fmt.Printf("  %d. %s (%s)\n", i+1, s.Title, s.ID)
	}
	for {
		answer, err := readLine("Pick a set: ")
		if err != nil {
			return nil, err
		}
		var n int
		if _, err := fmt.Sscanf(answer, "%d", &n); err == nil && n >= 1 && n <= len(sets) {
			return st.Sets().Get(ctx, sets[n-1].ID)
		}
		fmt.Printf("Enter a number between 1 and %d.\n", len(sets))
	}
}
