package cmd

import (
	"slices"
	"testing"
)

func Test_resolveRoots(t *testing.T) {
	restore := pathsFlag
	defer func() { pathsFlag = restore }()

	pathsFlag = nil
	if got := resolveRoots(rootCmd, nil); !slices.Equal(got, []string{"."}) {
		t.Fatalf("default root = %v, want [.]", got)
	}
	if got := resolveRoots(rootCmd, []string{"./app"}); !slices.Equal(got, []string{"./app"}) {
		t.Fatalf("positional root = %v, want [./app]", got)
	}

	pathsFlag = []string{"./a", "./b"}
	if got := resolveRoots(rootCmd, nil); !slices.Equal(got, []string{"./a", "./b"}) {
		t.Fatalf("comma-form roots = %v, want [./a ./b]", got)
	}
}

func Test_resolveRoots_positionalJoinsPaths(t *testing.T) {
	// --paths 打开时位置参数并入根集合，不得丢弃
	restore := pathsFlag
	defer func() { pathsFlag = restore }()

	pathsFlag = []string{"./frontend"}
	got := resolveRoots(rootCmd, []string{"./backend", "./shared"})
	want := []string{"./frontend", "./backend", "./shared"}
	if !slices.Equal(got, want) {
		t.Fatalf("merged roots = %v, want %v", got, want)
	}
}

func Test_resolveRoots_spaceSeparatedInvocation(t *testing.T) {
	// pflag 的 StringSliceVar 只消费 --paths 后的第一个值，
	// 帮助文本中的 `--paths ./frontend ./backend` 依赖位置参数并入
	restore := pathsFlag
	defer func() { pathsFlag = restore }()
	pathsFlag = nil

	if err := rootCmd.ParseFlags([]string{"--paths", "./frontend", "./backend"}); err != nil {
		t.Fatalf("flag parse failed: %v", err)
	}
	got := resolveRoots(rootCmd, rootCmd.Flags().Args())
	want := []string{"./frontend", "./backend"}
	if !slices.Equal(got, want) {
		t.Fatalf("space-separated invocation roots = %v, want %v", got, want)
	}
}
