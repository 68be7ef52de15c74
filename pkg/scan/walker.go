package scan

import (
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/yeisme/repoview/pkg/utils/gitignore"
)

// skipDirs 即使没有 .gitignore 也要剪枝的目录名
// 该列表是权威的：遍历在这些目录上立即停止下降，不依赖忽略规则的覆盖
var skipDirs = []string{
	"node_modules",
	"vendor",
	"__pycache__",
	"target",
	"build",
	"dist",
	".git",
}

// hiddenIndicators 具有检测价值的隐藏路径
// 遍历默认跳过隐藏条目，这些路径在遍历结束后直接 stat 补查
var hiddenIndicators = []string{
	".github/workflows",
	".gitlab-ci.yml",
	".circleci",
	".eslintrc.js",
	".eslintrc.json",
	".prettierrc",
	".travis.yml",
}

// walkRoot 递归遍历根目录，填充 raw 的顶层名称列表与按语言字节计数
//
// 策略:
//   - 跳过隐藏文件与目录（补查见 checkHiddenIndicators）
//   - 遵循 .gitignore / .git/info/exclude / 全局忽略规则（可经 Options 关闭）
//   - skipDirs 与 Options.Exclude 中的目录名立即剪枝
//   - 二进制扩展名在字节统计前整体跳过
//   - 单个条目的 I/O 错误静默丢弃，遍历尽力而为地继续
func walkRoot(root string, opts Options, raw *RawScanResult) {
	var gi *gitignore.GitIgnore
	if opts.RespectGitignore {
		gi = gitignore.LoadRepo(root)
	}

	_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			// 权限不足、断开的符号链接等：丢弃该条目继续
			if d != nil && d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if path == root {
			return nil
		}

		rel := toRelSlash(root, path)
		name := d.Name()
		hidden := strings.HasPrefix(name, ".")
		topLevel := !strings.Contains(rel, "/")

		if d.IsDir() {
			if hidden {
				return filepath.SkipDir
			}
			if gi != nil && gi.IsIgnored(rel) {
				return filepath.SkipDir
			}
			if topLevel {
				raw.TopLevel = append(raw.TopLevel, name)
			}
			if slices.Contains(skipDirs, name) || slices.Contains(opts.Exclude, name) {
				return filepath.SkipDir
			}
			return nil
		}

		if hidden {
			return nil
		}
		if gi != nil && gi.IsIgnored(rel) {
			return nil
		}
		if topLevel {
			raw.TopLevel = append(raw.TopLevel, name)
		}

		ext := filepath.Ext(name)
		if isBinaryExt(ext) {
			return nil
		}
		lang, ok := languageForExt(ext)
		if !ok {
			return nil
		}
		info, err := d.Info()
		if err != nil {
			return nil
		}
		if opts.MaxFileSizeBytes > 0 && info.Size() > opts.MaxFileSizeBytes {
			return nil
		}
		raw.BytesByLang[lang] += info.Size()
		return nil
	})
}

// toRelSlash 将绝对路径转换为相对于 root 的 `/` 分隔路径
func toRelSlash(root, path string) string {
	rel, _ := filepath.Rel(root, path)
	return filepath.ToSlash(rel)
}

// checkHiddenIndicators 补查被隐藏抑制的指示器路径并注入顶层名称集合
func checkHiddenIndicators(root string, topLevel []string) []string {
	for _, indicator := range hiddenIndicators {
		p := filepath.Join(root, filepath.FromSlash(indicator))
		if _, err := os.Stat(p); err != nil {
			continue
		}
		if !slices.Contains(topLevel, indicator) {
			topLevel = append(topLevel, indicator)
		}
	}
	return topLevel
}
