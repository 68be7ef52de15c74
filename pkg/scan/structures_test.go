package scan

import (
	"slices"
	"testing"
)

func Test_detectStructures(t *testing.T) {
	cases := []struct {
		names []string
		want  []string
	}{
		{[]string{"src", "README.md"}, []string{"src_layout"}},
		{[]string{"packages"}, []string{"monorepo"}},
		{[]string{"libs"}, []string{"monorepo"}},
		{[]string{"setup.py"}, []string{"python_package"}},
		{[]string{"pyproject.toml", "src"}, []string{"python_package", "src_layout"}},
		{[]string{"package.json"}, []string{"node_project"}},
		{[]string{"Makefile"}, []string{"makefile"}},
		{[]string{"src", "Makefile"}, []string{"makefile", "src_layout"}},
		{nil, []string{}},
	}
	for _, c := range cases {
		got := detectStructures(c.names)
		if !slices.Equal(got, c.want) {
			t.Fatalf("detectStructures(%v) = %v, want %v", c.names, got, c.want)
		}
	}
}

func Test_detectStructures_sorted(t *testing.T) {
	names := []string{"src", "package.json", "Makefile", "packages", "setup.py"}
	got := detectStructures(names)
	if !slices.IsSorted(got) {
		t.Fatalf("output not sorted: %v", got)
	}
	if len(got) != 5 {
		t.Fatalf("expected all five rules to fire, got %v", got)
	}
}
