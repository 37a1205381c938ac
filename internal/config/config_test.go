package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad(t *testing.T) {
	t.Run("returns defaults when file is missing", func(t *testing.T) {
		cfg, err := Load(filepath.Join(t.TempDir(), "config.yaml"))
		if err != nil {
			t.Fatalf("Load failed: %v", err)
		}

		if cfg.SeparateByBranch {
			t.Error("expected SeparateByBranch to default to false")
		}
		if cfg.FallbackName != DefaultFallbackName {
			t.Errorf("FallbackName = %q, want %q", cfg.FallbackName, DefaultFallbackName)
		}
		if cfg.ProjectBackend != BackendGit {
			t.Errorf("ProjectBackend = %q, want %q", cfg.ProjectBackend, BackendGit)
		}
	})

	t.Run("reads values from file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yaml")
		content := "separate_by_branch: true\nfallback_name: scratch\nproject_backend: dir\n"
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			t.Fatalf("failed to write config: %v", err)
		}

		cfg, err := Load(path)
		if err != nil {
			t.Fatalf("Load failed: %v", err)
		}

		if !cfg.SeparateByBranch {
			t.Error("expected SeparateByBranch = true")
		}
		if cfg.FallbackName != "scratch" {
			t.Errorf("FallbackName = %q, want %q", cfg.FallbackName, "scratch")
		}
		if cfg.ProjectBackend != BackendDir {
			t.Errorf("ProjectBackend = %q, want %q", cfg.ProjectBackend, BackendDir)
		}
	})

	t.Run("fills defaults for missing fields", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yaml")
		if err := os.WriteFile(path, []byte("separate_by_branch: true\n"), 0644); err != nil {
			t.Fatalf("failed to write config: %v", err)
		}

		cfg, err := Load(path)
		if err != nil {
			t.Fatalf("Load failed: %v", err)
		}

		if cfg.FallbackName != DefaultFallbackName {
			t.Errorf("FallbackName = %q, want %q", cfg.FallbackName, DefaultFallbackName)
		}
		if cfg.ProjectBackend != BackendGit {
			t.Errorf("ProjectBackend = %q, want %q", cfg.ProjectBackend, BackendGit)
		}
	})

	t.Run("rejects malformed yaml", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yaml")
		if err := os.WriteFile(path, []byte("separate_by_branch: [unclosed"), 0644); err != nil {
			t.Fatalf("failed to write config: %v", err)
		}

		if _, err := Load(path); err == nil {
			t.Error("expected error for malformed yaml")
		}
	})
}
