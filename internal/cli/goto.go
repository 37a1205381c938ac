package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/danieljhkim/grapple/internal/engine"
)

var gotoCmd = &cobra.Command{
	Use:   "go <slot>",
	Short: "Print the path pinned to a slot",
	Long: `Print the absolute path pinned to a slot, for shell integration:

  $EDITOR "$(grapple go 2)"`,
	Args: cobra.ExactArgs(1),
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

		path, err := eng.Goto(cwd, slot)
		if err != nil {
			if errors.Is(err, engine.ErrSlotEmpty) {
				return fmt.Errorf("nothing marked in slot %d", slot)
			}
			if errors.Is(err, engine.ErrFileMissing) {
				return fmt.Errorf("file for slot %d no longer exists", slot)
			}
			return err
		}

		fmt.Fprintln(cmd.OutOrStdout(), path)
		return nil
	},
}
