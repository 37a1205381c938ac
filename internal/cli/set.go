package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var setCmd = &cobra.Command{
	Use:   "set <slot> <path>",
	Short: "Pin a file to a specific slot",
	Long:  `Pin a file to a slot in the quick range 1..9, replacing any previous occupant.`,
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		slot, err := parseQuickSlot(args[0])
		if err != nil {
			return err
		}

		eng, err := newEngine()
		if err != nil {
			return err
		}

		cwd, err := workingDir()
		if err != nil {
			return err
		}

		if err := eng.Assign(cwd, slot, args[1]); err != nil {
			return err
		}

		PrintSuccess(fmt.Sprintf("Slot %d set", slot))
		return nil
	},
}
