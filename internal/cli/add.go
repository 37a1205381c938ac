package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var addCmd = &cobra.Command{
	Use:   "add <path>",
	Short: "Mark a file under the next free slot",
	Long:  `Add a file to the current scope's marks, assigning the next free slot number.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		eng, err := newEngine()
		if err != nil {
			return err
		}

		cwd, err := workingDir()
		if err != nil {
			return err
		}

		res, err := eng.Add(cwd, args[0])
		if err != nil {
			return err
		}

		if jsonOutput {
			return outputJSON(res)
		}

		if res.AlreadyPresent {
			PrintWarning(fmt.Sprintf("Already marked as slot %d", res.Number))
			return nil
		}
		PrintSuccess(fmt.Sprintf("Marked as slot %d", res.Number))
		return nil
	},
}
