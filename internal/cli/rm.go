package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var rmCmd = &cobra.Command{
	Use:   "rm <slot>",
	Short: "Remove the mark in a slot",
	Long:  `Remove the mark in a slot. The slot number is retired, not reused.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		slot, err := parseSlot(args[0])
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

		if err := eng.Delete(cwd, slot); err != nil {
			return err
		}

		PrintSuccess(fmt.Sprintf("Slot %d removed", slot))
		return nil
	},
}
