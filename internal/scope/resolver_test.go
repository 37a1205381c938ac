package scope

import (
	"errors"
	"testing"

	"github.com/danieljhkim/grapple/internal/gitx"
	"github.com/danieljhkim/grapple/internal/project"
)

func TestResolver_Resolve(t *testing.T) {
	t.Run("project name alone by default", func(t *testing.T) {
		backend := project.NewFakeBackend(&project.Project{Name: "myapp", Root: "/code/myapp"})
		r := NewResolver(backend, gitx.NewFakeBranchProvider("main"), false, nil)

		sc := r.Resolve("/code/myapp/src")
		if sc.Key != "myapp" {
			t.Errorf("Key = %q, want %q", sc.Key, "myapp")
		}
		if sc.Root != "/code/myapp" {
			t.Errorf("Root = %q, want %q", sc.Root, "/code/myapp")
		}
	})

	t.Run("appends branch when separation is enabled", func(t *testing.T) {
		backend := project.NewFakeBackend(&project.Project{Name: "myapp", Root: "/code/myapp"})
		r := NewResolver(backend, gitx.NewFakeBranchProvider("feature/auth"), true, nil)

		sc := r.Resolve("/code/myapp")
		if sc.Key != "myapp#feature%auth" {
			t.Errorf("Key = %q, want %q", sc.Key, "myapp#feature%auth")
		}
	})

	t.Run("branch lookup failure degrades to empty branch", func(t *testing.T) {
		backend := project.NewFakeBackend(&project.Project{Name: "myapp", Root: "/code/myapp"})
		branches := gitx.NewFakeBranchProvider("main")
		branches.SetError(errors.New("git not installed"))
		r := NewResolver(backend, branches, true, nil)

		sc := r.Resolve("/code/myapp")
		if sc.Key != "myapp#" {
			t.Errorf("Key = %q, want %q", sc.Key, "myapp#")
		}
	})

	t.Run("no project falls back to configured name", func(t *testing.T) {
		backend := project.NewFakeBackend(nil)
		r := NewResolver(backend, gitx.NewFakeBranchProvider("main"), true, func() string { return "scratch" })

		sc := r.Resolve("/tmp")
		if sc.Key != "scratch" {
			t.Errorf("Key = %q, want %q", sc.Key, "scratch")
		}
		if sc.Root != "" {
			t.Errorf("Root = %q, want empty", sc.Root)
		}
	})

	t.Run("nil fallback defaults to global", func(t *testing.T) {
		backend := project.NewFakeBackend(nil)
		r := NewResolver(backend, gitx.NewFakeBranchProvider(""), false, nil)

		sc := r.Resolve("/tmp")
		if sc.Key != "global" {
			t.Errorf("Key = %q, want %q", sc.Key, "global")
		}
	})

	t.Run("sentinel project name is treated as no project", func(t *testing.T) {
		backend := project.NewFakeBackend(&project.Project{Name: "none", Root: "/tmp"})
		r := NewResolver(backend, gitx.NewFakeBranchProvider(""), false, nil)

		sc := r.Resolve("/tmp")
		if sc.Key != "global" {
			t.Errorf("Key = %q, want %q", sc.Key, "global")
		}
	})

	t.Run("sanitizes separators in project and fallback names", func(t *testing.T) {
		backend := project.NewFakeBackend(&project.Project{Name: "team/app", Root: "/code/team/app"})
		r := NewResolver(backend, gitx.NewFakeBranchProvider(""), false, nil)

		sc := r.Resolve("/code/team/app")
		if sc.Key != "team%app" {
			t.Errorf("Key = %q, want %q", sc.Key, "team%app")
		}
	})
}

func TestSanitize(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"plain", "plain"},
		{"feature/auth", "feature%auth"},
		{`a\b/c`, "a%b%c"},
		{"", ""},
	}

	for _, tt := range tests {
		if got := Sanitize(tt.in); got != tt.want {
			t.Errorf("Sanitize(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
