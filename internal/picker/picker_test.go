package picker

import (
	"strings"
	"testing"
)

func TestRenderItem(t *testing.T) {
	item := Item{Number: 3, Label: "util.py at x", Path: "/code/x/util.py"}

	rendered := renderItem(item)
	if !strings.Contains(rendered, "3") {
		t.Errorf("rendered %q missing slot number", rendered)
	}
	if !strings.Contains(rendered, "util.py at x") {
		t.Errorf("rendered %q missing label", rendered)
	}
}

func TestPick_EmptyItems(t *testing.T) {
	if _, err := Pick(nil); err == nil {
		t.Error("expected error for empty item list")
	}
}
