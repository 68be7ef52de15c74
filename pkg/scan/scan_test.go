package scan

import (
	"os"
	"path/filepath"
	"reflect"
	"slices"
	"testing"
)

func Test_ScanDirectory_empty(t *testing.T) {
	dir := t.TempDir()
	result, err := ScanDirectory(dir, DefaultOptions())
	if err != nil {
		t.Fatalf("scan failed: %v", err)
	}
	if len(result.Languages) != 0 || len(result.Frameworks) != 0 ||
		len(result.ProjectStructures) != 0 || len(result.InfrastructureSignals) != 0 {
		t.Fatalf("empty directory must yield an empty report: %+v", result)
	}
}

func Test_ScanDirectory_notADirectory(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "file.txt", "x")
	if _, err := ScanDirectory(filepath.Join(dir, "file.txt"), DefaultOptions()); err == nil {
		t.Fatal("expected error for non-directory root")
	}
	if _, err := ScanDirectory(filepath.Join(dir, "missing"), DefaultOptions()); err == nil {
		t.Fatal("expected error for missing root")
	}
}

func Test_ScanDirectory_singleSourceFile(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "main.py", "print('hello')")
	result, err := ScanDirectory(dir, DefaultOptions())
	if err != nil {
		t.Fatalf("scan failed: %v", err)
	}
	if len(result.Languages) != 1 {
		t.Fatalf("expected 1 language, got %+v", result.Languages)
	}
	l := result.Languages[0]
	if l.Name != "Python" || l.Category != "language" || l.Percentage != 100.0 {
		t.Fatalf("unexpected entry: %+v", l)
	}
	if len(result.Frameworks) != 0 || len(result.ProjectStructures) != 0 || len(result.InfrastructureSignals) != 0 {
		t.Fatalf("all other fields must be empty: %+v", result)
	}
}

func Test_ScanDirectory_skipsBinary(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "main.py", "print('hello')")
	writeFile(t, dir, "image.png", "fakepng")
	result, err := ScanDirectory(dir, DefaultOptions())
	if err != nil {
		t.Fatalf("scan failed: %v", err)
	}
	if len(result.Languages) != 1 || result.Languages[0].Name != "Python" {
		t.Fatalf("binary file leaked into language stats: %+v", result.Languages)
	}
}

func Test_ScanDirectory_structuresAndTool(t *testing.T) {
	dir := t.TempDir()
	if err := os.Mkdir(filepath.Join(dir, "src"), 0o755); err != nil {
		t.Fatal(err)
	}
	writeFile(t, dir, "Makefile", "all:")
	result, err := ScanDirectory(dir, DefaultOptions())
	if err != nil {
		t.Fatalf("scan failed: %v", err)
	}
	want := []string{"makefile", "src_layout"}
	if !slices.Equal(result.ProjectStructures, want) {
		t.Fatalf("structures = %v, want %v", result.ProjectStructures, want)
	}
}

func Test_ScanDirectory_infraSignal(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "Dockerfile", "FROM python:3.12")
	result, err := ScanDirectory(dir, DefaultOptions())
	if err != nil {
		t.Fatalf("scan failed: %v", err)
	}
	found := false
	for _, s := range result.InfrastructureSignals {
		if s.Name == "Docker" && s.Category == "infrastructure" {
			found = true
		}
	}
	if !found {
		t.Fatalf("Docker infra signal missing: %+v", result.InfrastructureSignals)
	}
}

func Test_ScanDirectory_frameworkAndToolFromManifest(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "package.json", `{"dependencies": {"react": "^18.0.0"}}`)
	writeFile(t, dir, "webpack.config.js", "module.exports = {}")
	result, err := ScanDirectory(dir, DefaultOptions())
	if err != nil {
		t.Fatalf("scan failed: %v", err)
	}
	var haveReact, haveWebpack bool
	for _, s := range result.Frameworks {
		if s.Name == "React" && s.Category == "framework" {
			haveReact = true
		}
		if s.Name == "Webpack" && s.Category == "tool" {
			haveWebpack = true
		}
	}
	if !haveReact || !haveWebpack {
		t.Fatalf("expected React and Webpack signals: %+v", result.Frameworks)
	}
	if !slices.Contains(result.ProjectStructures, "node_project") {
		t.Fatalf("node_project tag missing: %v", result.ProjectStructures)
	}
}

func Test_ScanDirectory_hiddenIndicatorRecovery(t *testing.T) {
	dir := t.TempDir()
	if err := os.MkdirAll(filepath.Join(dir, ".github", "workflows"), 0o755); err != nil {
		t.Fatal(err)
	}
	result, err := ScanDirectory(dir, DefaultOptions())
	if err != nil {
		t.Fatalf("scan failed: %v", err)
	}
	found := false
	for _, s := range result.InfrastructureSignals {
		if s.Name == "GitHub Actions" {
			found = true
		}
	}
	if !found {
		t.Fatalf("hidden CI workflow dir must still be detected: %+v", result.InfrastructureSignals)
	}
}

func Test_ScanDirectory_respectsGitignore(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, ".gitignore", "generated\n")
	writeFile(t, dir, "main.py", "print('hello')")
	if err := os.Mkdir(filepath.Join(dir, "generated"), 0o755); err != nil {
		t.Fatal(err)
	}
	writeFile(t, filepath.Join(dir, "generated"), "big.js", "var x = 1;")

	result, err := ScanDirectory(dir, DefaultOptions())
	if err != nil {
		t.Fatalf("scan failed: %v", err)
	}
	for _, l := range result.Languages {
		if l.Name == "JavaScript" {
			t.Fatalf("gitignored path leaked into stats: %+v", result.Languages)
		}
	}
}

func Test_ScanDirectory_prunesNoisyDirs(t *testing.T) {
	// skipDirs 剪枝是权威的，不依赖忽略规则
	dir := t.TempDir()
	writeFile(t, dir, "main.py", "print('hello')")
	if err := os.Mkdir(filepath.Join(dir, "node_modules"), 0o755); err != nil {
		t.Fatal(err)
	}
	writeFile(t, filepath.Join(dir, "node_modules"), "lib.js", "var x = 1;")

	result, err := ScanDirectory(dir, Options{RespectGitignore: false})
	if err != nil {
		t.Fatalf("scan failed: %v", err)
	}
	if len(result.Languages) != 1 || result.Languages[0].Name != "Python" {
		t.Fatalf("noisy directory not pruned: %+v", result.Languages)
	}
}

func Test_ScanDirectories_byteExactMerge(t *testing.T) {
	dir1 := t.TempDir()
	dir2 := t.TempDir()
	writeFile(t, dir1, "a.py", make700())
	writeFile(t, dir2, "b.py", make300())

	result, err := ScanDirectories([]string{dir1, dir2}, DefaultOptions())
	if err != nil {
		t.Fatalf("scan failed: %v", err)
	}
	if len(result.Languages) != 1 {
		t.Fatalf("expected one merged entry, got %+v", result.Languages)
	}
	if result.Languages[0].Name != "Python" || result.Languages[0].Percentage != 100.0 {
		t.Fatalf("merge is not byte-exact: %+v", result.Languages[0])
	}
}

func Test_ScanDirectories_multipleLanguages(t *testing.T) {
	dir1 := t.TempDir()
	dir2 := t.TempDir()
	writeFile(t, dir1, "main.py", "print('hello')")
	writeFile(t, dir2, "app.rs", "fn main() {}")

	result, err := ScanDirectories([]string{dir1, dir2}, DefaultOptions())
	if err != nil {
		t.Fatalf("scan failed: %v", err)
	}
	var names []string
	for _, l := range result.Languages {
		names = append(names, l.Name)
	}
	if !slices.Contains(names, "Python") || !slices.Contains(names, "Rust") {
		t.Fatalf("expected both languages, got %v", names)
	}
}

func Test_ScanDirectories_unionSignals(t *testing.T) {
	dir1 := t.TempDir()
	dir2 := t.TempDir()
	writeFile(t, dir1, "Dockerfile", "FROM alpine")
	writeFile(t, dir2, "Dockerfile", "FROM debian")
	if err := os.Mkdir(filepath.Join(dir2, "src"), 0o755); err != nil {
		t.Fatal(err)
	}

	result, err := ScanDirectories([]string{dir1, dir2}, DefaultOptions())
	if err != nil {
		t.Fatalf("scan failed: %v", err)
	}
	count := 0
	for _, s := range result.InfrastructureSignals {
		if s.Name == "Docker" {
			count++
		}
	}
	if count != 1 {
		t.Fatalf("Docker must appear exactly once after the merge: %+v", result.InfrastructureSignals)
	}
	if !slices.Contains(result.ProjectStructures, "src_layout") {
		t.Fatalf("structure tags must be unioned: %v", result.ProjectStructures)
	}
}

func Test_ScanDirectory_idempotent(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "main.py", "print('hello')")
	writeFile(t, dir, "lib.rs", "fn lib() {}")
	writeFile(t, dir, "Dockerfile", "FROM alpine")
	writeFile(t, dir, "package.json", `{"dependencies": {"vue": "^3.0.0"}}`)

	first, err := ScanDirectory(dir, DefaultOptions())
	if err != nil {
		t.Fatalf("scan failed: %v", err)
	}
	second, err := ScanDirectory(dir, DefaultOptions())
	if err != nil {
		t.Fatalf("scan failed: %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("scans of an unmodified directory differ:\n%+v\n%+v", first, second)
	}
}

func make700() string {
	b := make([]byte, 700)
	for i := range b {
		b[i] = 'x'
	}
	return string(b)
}

func make300() string {
	b := make([]byte, 300)
	for i := range b {
		b[i] = 'y'
	}
	return string(b)
}
