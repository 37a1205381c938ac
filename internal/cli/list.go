package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the marks in the current scope",
	Long:  `Display the quick menu view of the current scope's marks.`,
	Args:  cobra.NoArgs,
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

		if jsonOutput {
			return outputJSON(items)
		}

		if len(items) == 0 {
			PrintInfo("No marks in this scope")
			return nil
		}

		PrintInfo(fmt.Sprintf("Marks for %s:", eng.Scope(cwd).Key))
		for _, item := range items {
			PrintLabelValue(fmt.Sprintf("%d", item.Number), item.Label)
		}
		return nil
	},
}
