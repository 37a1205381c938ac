// Package picker renders the interactive quick menu for marks.
//
// The picker is pure presentation: it consumes the ordered
// (number, label, path) rows the engine produces and returns the chosen
// one. Callers should check IsInteractive first and fall back to a plain
// listing when stdout is not a terminal.
package picker

import (
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/huh"
	"github.com/mattn/go-isatty"
)

// ErrCancelled indicates the user dismissed the menu without choosing.
var ErrCancelled = errors.New("menu cancelled")

// Item is one selectable row of the quick menu.
type Item struct {
	Number int
	Label  string
	Path   string
}

// IsInteractive reports whether stdout is attached to a terminal.
func IsInteractive() bool {
	fd := os.Stdout.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// Pick shows a single-select menu over items and returns the chosen one.
func Pick(items []Item) (Item, error) {
	if len(items) == 0 {
		return Item{}, errors.New("no items to pick from")
	}

	opts := make([]huh.Option[int], len(items))
	for i, item := range items {
		opts[i] = huh.NewOption(renderItem(item), i)
	}

	var selected int
	sel := huh.NewSelect[int]().
		Title("Marks").
		Options(opts...).
		Value(&selected)

	form := huh.NewForm(huh.NewGroup(sel))
	if err := form.Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return Item{}, ErrCancelled
		}
		return Item{}, fmt.Errorf("menu error: %w", err)
	}

	return items[selected], nil
}

// renderItem formats one row as "<number>  <label>".
func renderItem(item Item) string {
	return fmt.Sprintf("%s  %s", numberStyle.Render(fmt.Sprintf("%d", item.Number)), labelStyle.Render(item.Label))
}
