package gitignore

import (
	"os"
	"path/filepath"
	"testing"
)

func Test_Load(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".gitignore")
	content := "# build artifacts\n\n*.log\ndist/\n  node_modules  \n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	gi, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	want := []string{"*.log", "dist/", "node_modules"}
	got := gi.Patterns()
	if len(got) != len(want) {
		t.Fatalf("patterns = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("patterns = %v, want %v", got, want)
		}
	}
}

func Test_Load_missingFile(t *testing.T) {
	gi, err := Load(filepath.Join(t.TempDir(), "nope"))
	if err != nil {
		t.Fatalf("a missing file must not be an error: %v", err)
	}
	if len(gi.Patterns()) != 0 {
		t.Fatalf("expected empty matcher, got %v", gi.Patterns())
	}
}

func Test_LoadRepo(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, ".gitignore"), []byte("*.log\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.MkdirAll(filepath.Join(dir, ".git", "info"), 0o755); err != nil {
		t.Fatal(err)
	}
	exclude := filepath.Join(dir, ".git", "info", "exclude")
	if err := os.WriteFile(exclude, []byte("local-scratch\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	gi := LoadRepo(dir)
	if !gi.IsIgnored("server.log") {
		t.Fatal("pattern from .gitignore not applied")
	}
	if !gi.IsIgnored("local-scratch") {
		t.Fatal("pattern from .git/info/exclude not applied")
	}
	if gi.IsIgnored("main.go") {
		t.Fatal("unrelated path must not be ignored")
	}
}

func Test_ParseLines(t *testing.T) {
	gi := ParseLines([]string{"# comment", "", "build/", "*.tmp"})
	if len(gi.Patterns()) != 2 {
		t.Fatalf("patterns = %v", gi.Patterns())
	}
}

func Test_IsIgnored(t *testing.T) {
	cases := []struct {
		name    string
		pattern string
		path    string
		want    bool
	}{
		{"bare name matches segment", "node_modules", "node_modules", true},
		{"bare name matches nested segment", "node_modules", "web/node_modules", true},
		{"bare name no partial match", "node_modules", "node_modules_backup", false},
		{"wildcard suffix", "*.log", "debug.log", true},
		{"wildcard suffix nested", "*.log", "logs/debug.log", true},
		{"wildcard no match", "*.log", "debug.txt", false},
		{"directory pattern", "dist/", "dist", true},
		{"directory pattern nested", "dist/", "web/dist", true},
		{"rooted pattern matches at root", "/build", "build", true},
		{"rooted pattern rejects nested", "/build", "web/build", false},
		{"rooted directory pattern", "/out/", "out", true},
		{"rooted directory pattern rejects nested", "/out/", "pkg/out", false},
		{"multi segment", "docs/generated", "docs/generated", true},
		{"multi segment nested", "docs/generated", "site/docs/generated", true},
		{"negation unsupported", "!keep.log", "keep.log", false},
		{"prefix wildcard", "temp*", "temp123", true},
		{"infix wildcard", "a*b", "axxb", true},
		{"infix wildcard too short", "a*b", "b", false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			gi := ParseLines([]string{tc.pattern})
			if got := gi.IsIgnored(tc.path); got != tc.want {
				t.Fatalf("IsIgnored(%q) with pattern %q = %v, want %v", tc.path, tc.pattern, got, tc.want)
			}
		})
	}
}

func Test_IsIgnored_windowsSeparators(t *testing.T) {
	gi := ParseLines([]string{"node_modules"})
	if !gi.IsIgnored(filepath.Join("web", "node_modules")) {
		t.Fatal("platform separators must be normalized before matching")
	}
}
