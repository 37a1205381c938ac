package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// setupTestEnv points GRAPPLE_ROOT at a temp directory and chdirs into a
// fake git repository so every command resolves the same scope.
func setupTestEnv(t *testing.T) string {
	t.Helper()

	t.Setenv("GRAPPLE_ROOT", t.TempDir())

	repoDir := filepath.Join(t.TempDir(), "myrepo")
	if err := os.MkdirAll(filepath.Join(repoDir, ".git"), 0755); err != nil {
		t.Fatalf("failed to create .git dir: %v", err)
	}

	oldDir, err := os.Getwd()
	if err != nil {
		t.Fatalf("failed to get cwd: %v", err)
	}
	if err := os.Chdir(repoDir); err != nil {
		t.Fatalf("failed to chdir: %v", err)
	}
	t.Cleanup(func() {
		_ = os.Chdir(oldDir)
	})

	return repoDir
}

// runCommand executes the root command with args and returns stdout.
func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()

	rootCmd.SetArgs(args)
	var bufOut, bufErr bytes.Buffer
	rootCmd.SetOut(&bufOut)
	rootCmd.SetErr(&bufErr)
	defer func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
	}()

	err := rootCmd.Execute()
	return bufOut.String(), err
}

// markFile returns the scope's backing file for the test repo.
func markFile(t *testing.T) string {
	t.Helper()
	return filepath.Join(os.Getenv("GRAPPLE_ROOT"), "marks", "myrepo.json")
}

func TestAddAndGoCommands(t *testing.T) {
	repoDir := setupTestEnv(t)

	if err := os.WriteFile(filepath.Join(repoDir, "a.txt"), []byte("x"), 0644); err != nil {
		t.Fatalf("failed to create file: %v", err)
	}

	if _, err := runCommand(t, "add", "a.txt"); err != nil {
		t.Fatalf("add failed: %v", err)
	}

	out, err := runCommand(t, "go", "1")
	if err != nil {
		t.Fatalf("go failed: %v", err)
	}
	want := filepath.Join(repoDir, "a.txt")
	if strings.TrimSpace(out) != want {
		t.Errorf("go output = %q, want %q", strings.TrimSpace(out), want)
	}
}

func TestGoCommand_EmptySlot(t *testing.T) {
	setupTestEnv(t)

	if _, err := runCommand(t, "go", "5"); err == nil {
		t.Error("expected error for empty slot")
	}
}

func TestGoCommand_MissingFile(t *testing.T) {
	setupTestEnv(t)

	if _, err := runCommand(t, "set", "1", "gone.txt"); err != nil {
		t.Fatalf("set failed: %v", err)
	}

	if _, err := runCommand(t, "go", "1"); err == nil {
		t.Error("expected error for vanished file")
	}
}

func TestSetCommand_WritesStoreFile(t *testing.T) {
	setupTestEnv(t)

	if _, err := runCommand(t, "set", "2", "src/main.go"); err != nil {
		t.Fatalf("set failed: %v", err)
	}

	data, err := os.ReadFile(markFile(t))
	if err != nil {
		t.Fatalf("failed to read mark file: %v", err)
	}

	var records []map[string]interface{}
	if err := json.Unmarshal(data, &records); err != nil {
		t.Fatalf("mark file is not valid JSON: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("len(records) = %d, want 1", len(records))
	}
	if records[0]["harpoon_number"] != float64(2) {
		t.Errorf("harpoon_number = %v, want 2", records[0]["harpoon_number"])
	}
	if records[0]["filepath"] != "src/main.go" {
		t.Errorf("filepath = %v, want src/main.go", records[0]["filepath"])
	}
}

func TestSetCommand_RejectsSlotOutsideQuickRange(t *testing.T) {
	setupTestEnv(t)

	if _, err := runCommand(t, "set", "10", "a.txt"); err == nil {
		t.Error("expected error for slot 10")
	}
}

func TestRmCommand(t *testing.T) {
	setupTestEnv(t)

	if _, err := runCommand(t, "set", "1", "a.txt"); err != nil {
		t.Fatalf("set failed: %v", err)
	}
	if _, err := runCommand(t, "rm", "1"); err != nil {
		t.Fatalf("rm failed: %v", err)
	}

	if _, err := runCommand(t, "go", "1"); err == nil {
		t.Error("expected slot 1 to be empty after rm")
	}
}

func TestNextCommand(t *testing.T) {
	repoDir := setupTestEnv(t)

	for _, name := range []string{"a.txt", "b.txt"} {
		if _, err := runCommand(t, "add", name); err != nil {
			t.Fatalf("add %s failed: %v", name, err)
		}
	}

	out, err := runCommand(t, "next", "a.txt")
	if err != nil {
		t.Fatalf("next failed: %v", err)
	}
	want := filepath.Join(repoDir, "b.txt")
	if strings.TrimSpace(out) != want {
		t.Errorf("next output = %q, want %q", strings.TrimSpace(out), want)
	}

	// Wraps back around.
	out, err = runCommand(t, "next", "b.txt")
	if err != nil {
		t.Fatalf("next failed: %v", err)
	}
	want = filepath.Join(repoDir, "a.txt")
	if strings.TrimSpace(out) != want {
		t.Errorf("next output = %q, want %q", strings.TrimSpace(out), want)
	}
}

func TestNextCommand_EmptyScope(t *testing.T) {
	setupTestEnv(t)

	if _, err := runCommand(t, "next"); err == nil {
		t.Error("expected error for empty scope")
	}
}

func TestClearCommand(t *testing.T) {
	setupTestEnv(t)

	if _, err := runCommand(t, "set", "1", "a.txt"); err != nil {
		t.Fatalf("set failed: %v", err)
	}
	if _, err := runCommand(t, "clear"); err != nil {
		t.Fatalf("clear failed: %v", err)
	}

	data, err := os.ReadFile(markFile(t))
	if err != nil {
		t.Fatalf("failed to read mark file: %v", err)
	}
	if strings.TrimSpace(string(data)) != "[]" {
		t.Errorf("mark file = %q, want empty array", string(data))
	}
}

func TestEditCommand_CreatesBackingFile(t *testing.T) {
	setupTestEnv(t)

	out, err := runCommand(t, "edit")
	if err != nil {
		t.Fatalf("edit failed: %v", err)
	}

	path := strings.TrimSpace(out)
	if path != markFile(t) {
		t.Errorf("edit output = %q, want %q", path, markFile(t))
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read backing file: %v", err)
	}
	if strings.TrimSpace(string(data)) != "[]" {
		t.Errorf("backing file = %q, want empty array", string(data))
	}
}

func TestMenuCommand_NonInteractiveFallback(t *testing.T) {
	repoDir := setupTestEnv(t)

	if _, err := runCommand(t, "add", "a.txt"); err != nil {
		t.Fatalf("add failed: %v", err)
	}

	// Test stdout is never a TTY, so menu takes the plain-listing path.
	out, err := runCommand(t, "menu")
	if err != nil {
		t.Fatalf("menu failed: %v", err)
	}
	if !strings.Contains(out, filepath.Join(repoDir, "a.txt")) {
		t.Errorf("menu output %q missing marked path", out)
	}
}
