package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/danieljhkim/grapple/internal/picker"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick a mark interactively",
	Long: `Open an interactive menu over the first nine marks and print the chosen
path. When stdout is not a terminal the menu degrades to a plain listing.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		eng, err := newEngine()
		if err != nil {
			return err
		}

		cwd, err := workingDir()
		if err != nil {
			return err
		}

		items, err := eng.Menu(cwd, 0)
		if err != nil {
			return err
		}
		if len(items) == 0 {
			PrintInfo("No marks in this scope")
			return nil
		}

		if !picker.IsInteractive() {
			for _, item := range items {
				fmt.Fprintf(cmd.OutOrStdout(), "%d\t%s\n", item.Number, item.Path)
			}
			return nil
		}

		pickItems := make([]picker.Item, len(items))
		for i, item := range items {
			pickItems[i] = picker.Item{Number: item.Number, Label: item.Label, Path: item.Path}
		}

		chosen, err := picker.Pick(pickItems)
		if err != nil {
			if errors.Is(err, picker.ErrCancelled) {
				return nil
			}
			return err
		}

		fmt.Fprintln(cmd.OutOrStdout(), chosen.Path)
		return nil
	},
}
