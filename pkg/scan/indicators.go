package scan

import (
	"sort"

	"github.com/yeisme/repoview/pkg/models"
)

// indicatorEntry 静态指示器表的一条记录
// Indicator 是根目录直接子项的字面名称，或一个多段隐藏路径（如 .github/workflows）
type indicatorEntry struct {
	Indicator string
	Name      string
	Category  string
}

// fileIndicators 文件/目录指示器表，按固定顺序匹配顶层条目
var fileIndicators = []indicatorEntry{
	// 基础设施
	{"Dockerfile", "Docker", models.CategoryInfrastructure},
	{"docker-compose.yml", "Docker Compose", models.CategoryInfrastructure},
	{"docker-compose.yaml", "Docker Compose", models.CategoryInfrastructure},
	{".github/workflows", "GitHub Actions", models.CategoryInfrastructure},
	{".gitlab-ci.yml", "GitLab CI", models.CategoryInfrastructure},
	{".circleci", "CircleCI", models.CategoryInfrastructure},
	{"Jenkinsfile", "Jenkins", models.CategoryInfrastructure},
	{"terraform", "Terraform", models.CategoryInfrastructure},
	{"kubernetes", "Kubernetes", models.CategoryInfrastructure},
	{"k8s", "Kubernetes", models.CategoryInfrastructure},
	{"helm", "Helm", models.CategoryInfrastructure},
	{".travis.yml", "Travis CI", models.CategoryInfrastructure},
	{"netlify.toml", "Netlify", models.CategoryInfrastructure},
	{"vercel.json", "Vercel", models.CategoryInfrastructure},
	{"fly.toml", "Fly.io", models.CategoryInfrastructure},
	{"render.yaml", "Render", models.CategoryInfrastructure},
	{"nginx.conf", "Nginx", models.CategoryInfrastructure},
	{"Vagrantfile", "Vagrant", models.CategoryInfrastructure},
	{"ansible", "Ansible", models.CategoryInfrastructure},

	// 工具 / 框架 / 语言标记
	{".eslintrc.js", "ESLint", models.CategoryTool},
	{".eslintrc.json", "ESLint", models.CategoryTool},
	{"tailwind.config.js", "Tailwind CSS", models.CategoryFramework},
	{"tailwind.config.ts", "Tailwind CSS", models.CategoryFramework},
	{"tsconfig.json", "TypeScript", models.CategoryLanguage},
	{"webpack.config.js", "Webpack", models.CategoryTool},
	{"vite.config.ts", "Vite", models.CategoryTool},
	{"vite.config.js", "Vite", models.CategoryTool},
	{".prettierrc", "Prettier", models.CategoryTool},
	{"jest.config.js", "Jest", models.CategoryTool},
	{"jest.config.ts", "Jest", models.CategoryTool},
	{"pytest.ini", "pytest", models.CategoryTool},
	{"pyproject.toml", "Python Package", models.CategoryTool},
	{"Cargo.toml", "Rust", models.CategoryLanguage},
	{"go.mod", "Go", models.CategoryLanguage},
	{"Gemfile", "Ruby", models.CategoryLanguage},
	{"composer.json", "PHP", models.CategoryLanguage},
	{"build.gradle", "Gradle", models.CategoryTool},
	{"pom.xml", "Maven", models.CategoryTool},
}

// detectFileIndicators 将指示器表与顶层名称集合做精确字符串匹配
// infrastructure 类别写入 infra，其余类别写入 frameworks
// 只检查根目录的直接子项，不会深入嵌套目录
func detectFileIndicators(topLevel []string, frameworks, infra map[string]string) {
	names := make(map[string]struct{}, len(topLevel))
	for _, n := range topLevel {
		names[n] = struct{}{}
	}
	for _, e := range fileIndicators {
		if _, ok := names[e.Indicator]; !ok {
			continue
		}
		if e.Category == models.CategoryInfrastructure {
			infra[e.Name] = e.Category
		} else {
			frameworks[e.Name] = e.Category
		}
	}
}

// sortedSignalEntries 将 name→category 累加器转换为按名称排序的 SignalEntry 列表
func sortedSignalEntries(m map[string]string) []models.SignalEntry {
	entries := make([]models.SignalEntry, 0, len(m))
	for name, category := range m {
		entries = append(entries, models.SignalEntry{Name: name, Category: category})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Name != entries[j].Name {
			return entries[i].Name < entries[j].Name
		}
		return entries[i].Category < entries[j].Category
	})
	return entries
}
