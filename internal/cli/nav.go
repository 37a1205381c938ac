package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/danieljhkim/grapple/internal/engine"
)

var nextCmd = &cobra.Command{
	Use:   "next [current]",
	Short: "Print the mark after the current file",
	Long: `Print the path of the mark after [current] in slot order, wrapping from
the last slot to the first. With no argument, or when [current] is not
marked, the lowest-numbered mark is printed.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runNavigate(cmd, args, (*engine.Engine).Next)
	},
}

var prevCmd = &cobra.Command{
	Use:   "prev [current]",
	Short: "Print the mark before the current file",
	Long: `Print the path of the mark before [current] in slot order, wrapping from
the first slot to the last. With no argument, or when [current] is not
marked, the highest-numbered mark is printed.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runNavigate(cmd, args, (*engine.Engine).Prev)
	},
}

func runNavigate(cmd *cobra.Command, args []string, step func(*engine.Engine, string, string) (engine.Pick, error)) error {
	eng, err := newEngine()
	if err != nil {
		return err
	}

	cwd, err := workingDir()
	if err != nil {
		return err
	}

	current := ""
	if len(args) == 1 {
		current = args[0]
	}

	pick, err := step(eng, cwd, current)
	if err != nil {
		if errors.Is(err, engine.ErrNoMarks) {
			return fmt.Errorf("no marks in this scope")
		}
		return err
	}

	if jsonOutput {
		return outputJSON(pick)
	}

	fmt.Fprintln(cmd.OutOrStdout(), pick.Path)
	return nil
}
